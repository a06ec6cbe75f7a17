package types

import "encoding/json"

// Tone values accepted by mention filters and curation.
const (
	ToneNegative = "negative"
	ToneNeutral  = "neutral"
	TonePositive = "positive"
)

// Source values accepted by alert definitions and mention filters.
const (
	SourceWeb      = "web"
	SourceTwitter  = "twitter"
	SourceBlogs    = "blogs"
	SourceForums   = "forums"
	SourceNews     = "news"
	SourceFacebook = "facebook"
	SourceImages   = "images"
	SourceVideos   = "videos"
)

// Folder values accepted by mention filters and curation.
// Filtering by spam or trash enables include_children on the API side.
const (
	FolderInbox   = "inbox"
	FolderArchive = "archive"
	FolderSpam    = "spam"
	FolderTrash   = "trash"
)

// Sort orders accepted when listing mentions.
const (
	SortPublishedAt     = "published_at"
	SortAuthorInfluence = "author_influence.score"
	SortDirectReach     = "direct_reach"
	SortCumulativeReach = "cumulative_reach"
	SortDomainReach     = "domain_reach"
)

// AlertQuery types. A basic query enumerates keyword lists; an advanced
// query carries a single boolean query string.
const (
	QueryTypeBasic    = "basic"
	QueryTypeAdvanced = "advanced"
)

// MonitoredWebsite restricts a basic alert query to a single domain.
type MonitoredWebsite struct {
	Domain    string `json:"domain"`
	BlockSelf bool   `json:"block_self"`
}

// AlertQuery defines what an alert searches for. Set Type to QueryTypeBasic
// and fill the keyword lists, or set Type to QueryTypeAdvanced and provide
// QueryString (e.g. `(NASA AND Discovery) OR (Arianespace AND Ariane)`).
type AlertQuery struct {
	Type             string            `json:"type"`
	IncludedKeywords []string          `json:"included_keywords,omitempty"`
	RequiredKeywords []string          `json:"required_keywords,omitempty"`
	ExcludedKeywords []string          `json:"excluded_keywords,omitempty"`
	MonitoredWebsite *MonitoredWebsite `json:"monitored_website,omitempty"`
	QueryString      string            `json:"query_string,omitempty"`
}

// AlertRequest carries the fields for creating or updating an alert.
// Name, Query and Languages are required; the remaining fields are optional
// and are omitted from the request body when empty.
type AlertRequest struct {
	// Name is the alert name shown in the Mention dashboard.
	Name string

	// Query defines what the alert searches for.
	Query *AlertQuery

	// Languages is a list of language codes, e.g. ["en"].
	Languages []string

	// Countries is a list of country codes, e.g. ["US", "RU", "XX"].
	Countries []string

	// Sources restricts tracking to the given source types.
	// Each entry must be one of the Source constants.
	Sources []string

	// BlockedSites lists sites from which mentions should not be tracked.
	BlockedSites []string

	// NoiseDetection enables noise detection when set.
	NoiseDetection *bool

	// ReviewsPages lists review pages to track.
	ReviewsPages []string
}

// MentionsRequest describes a filtered mention listing for one alert.
//
// SinceID cannot be combined with BeforeDate, NotBeforeDate or Cursor;
// Unread cannot be combined with Favorite, Folder, Query or Tone. The
// client resolves such combinations by fixed priority rather than failing:
// the winning filter is kept and the conflicting ones are dropped from the
// request.
type MentionsRequest struct {
	AccountID string
	AlertID   string

	// SinceID returns mentions ordered by id, starting after the given id.
	SinceID string

	// Limit is the number of mentions to return, capped at 1000 by the API.
	// Values above the cap are clamped; values below 1 leave the API default.
	Limit int

	// BeforeDate and NotBeforeDate bound the mention publication window.
	// Both use the "yyyy-MM-dd HH:mm" form, e.g. "2018-11-25 12:00".
	BeforeDate    string
	NotBeforeDate string

	// Source filters by source type; one of the Source constants.
	Source string

	// Unread returns only unread mentions when set.
	Unread *bool

	// Favorite returns only favorite mentions when set. Honored together
	// with Folder only when Folder is inbox or archive.
	Favorite *bool

	// Folder filters by folder; one of the Folder constants.
	Folder string

	// Tone filters by tone; one of the Tone constants.
	Tone string

	// Countries filters by country code.
	Countries string

	// IncludeChildren includes children mentions in the listing.
	IncludeChildren *bool

	// Sort orders results; one of the Sort constants.
	Sort string

	// Languages filters by language code.
	Languages string

	// Timezone adjusts date handling, e.g. "Europe/Paris".
	Timezone string

	// Query is a free-text search filter (the API's "q" parameter).
	Query string

	// Cursor continues a previous paginated listing.
	Cursor string
}

// MentionChildrenRequest describes a listing of the children of one mention.
type MentionChildrenRequest struct {
	AccountID string
	AlertID   string
	MentionID string

	// Limit is the number of children to return, capped at 1000 by the API.
	Limit int

	// BeforeDate bounds the listing, in "yyyy-MM-dd HH:mm" form.
	BeforeDate string
}

// CurateMentionRequest updates the curation state of one mention.
// Only the fields that are set are sent; everything else is left untouched.
type CurateMentionRequest struct {
	AccountID string
	AlertID   string
	MentionID string

	// Favorite marks or unmarks the mention as favorite.
	Favorite *bool

	// Trashed moves the mention in or out of the trash.
	Trashed *bool

	// Read marks the mention as read or unread.
	Read *bool

	// Tags replaces the tags attributed to the mention.
	Tags []string

	// Folder moves the mention to a folder; one of the Folder constants.
	Folder string

	// Tone overrides the detected tone; one of the Tone constants.
	Tone string
}

// AppData describes application-level reference data returned by /app/data:
// the vocabularies the API accepts for alert and mention filtering.
type AppData struct {
	Languages map[string]string `json:"languages,omitempty"`
	Countries map[string]string `json:"countries,omitempty"`
	Sources   []string          `json:"sources,omitempty"`
	Timezones []string          `json:"timezones,omitempty"`
}

// Alert is a saved search tracked by the Mention API.
type Alert struct {
	ID             json.Number `json:"id"`
	Name           string      `json:"name"`
	Query          *AlertQuery `json:"query,omitempty"`
	Languages      []string    `json:"languages,omitempty"`
	Countries      []string    `json:"countries,omitempty"`
	Sources        []string    `json:"sources,omitempty"`
	BlockedSites   []string    `json:"blocked_sites,omitempty"`
	NoiseDetection bool        `json:"noise_detection,omitempty"`
	CreatedAt      string      `json:"created_at,omitempty"`
	UpdatedAt      string      `json:"updated_at,omitempty"`
}

// Mention is a single piece of content matched by an alert.
type Mention struct {
	ID              json.Number `json:"id"`
	Title           string      `json:"title,omitempty"`
	Description     string      `json:"description,omitempty"`
	URL             string      `json:"url,omitempty"`
	SourceName      string      `json:"source_name,omitempty"`
	SourceURL       string      `json:"source_url,omitempty"`
	SourceType      string      `json:"source_type,omitempty"`
	PublishedAt     string      `json:"published_at,omitempty"`
	Tone            int         `json:"tone"`
	CountryCode     string      `json:"country_code,omitempty"`
	LanguageCode    string      `json:"language_code,omitempty"`
	Favorite        bool        `json:"favorite"`
	Trashed         bool        `json:"trashed"`
	Read            bool        `json:"read"`
	Tags            []string    `json:"tags,omitempty"`
	Folder          string      `json:"folder,omitempty"`
	DirectReach     int64       `json:"direct_reach,omitempty"`
	CumulativeReach int64       `json:"cumulative_reach,omitempty"`
	DomainReach     int64       `json:"domain_reach,omitempty"`
	ChildrenCount   int         `json:"children_count,omitempty"`
}

// AlertResponse wraps a single alert as returned by the API.
type AlertResponse struct {
	Alert *Alert `json:"alert"`
}

// AlertsResponse wraps an alert listing.
type AlertsResponse struct {
	Alerts []*Alert `json:"alerts"`
}

// MentionResponse wraps a single mention as returned by the API.
type MentionResponse struct {
	Mention *Mention `json:"mention"`
}

// MentionsResponse wraps a mention listing together with its continuation
// cursor, when the API provides one.
type MentionsResponse struct {
	Mentions []*Mention `json:"mentions"`
	Cursor   *Cursor    `json:"cursor,omitempty"`
}

// Cursor carries the continuation token for paginated mention listings.
type Cursor struct {
	Next string `json:"next,omitempty"`
}
