package mention

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/mazi76erX2/mention-go/internal"
	pkgerrs "github.com/mazi76erX2/mention-go/pkg/errors"
	"github.com/mazi76erX2/mention-go/pkg/types"
	"golang.org/x/oauth2"
)

const (
	// DefaultBaseURL is the default Mention API base URL.
	DefaultBaseURL = "https://api.mention.net/api"
	// DefaultUserAgent is the default user agent string.
	DefaultUserAgent = "mention-go/0.1"
	// DefaultTimeout is the default HTTP client timeout.
	DefaultTimeout = 30 * time.Second
)

// Config holds the configuration for the Mention client.
//
// Exactly one token source is required: either a raw AccessToken, or a
// TokenSource for callers who already manage oauth2 tokens themselves.
type Config struct {
	// AccessToken is a Mention API access token used as-is on every request.
	AccessToken string

	// TokenSource supplies tokens instead of AccessToken when set.
	// Takes precedence over AccessToken.
	TokenSource oauth2.TokenSource

	// UserAgent identifies your application to the API.
	// Defaults to DefaultUserAgent if not specified.
	UserAgent string

	// BaseURL for the Mention API.
	// Defaults to DefaultBaseURL if not specified. Usually doesn't need to
	// be changed.
	BaseURL string

	// HTTPClient to use for requests.
	// Defaults to a client with DefaultTimeout if not specified.
	HTTPClient *http.Client

	// Location is used to interpret date filters given in the
	// "yyyy-MM-dd HH:mm" form. Defaults to UTC.
	Location *time.Location

	// Logger for structured diagnostics.
	// Optional. If provided, debug information is logged during API calls.
	Logger *slog.Logger
}

// Client is the Mention API client. It is stateless apart from its
// configuration and safe for concurrent use.
type Client struct {
	client  *internal.Client
	builder *internal.Builder
	config  *Config
}

// NewClient creates a new Mention client with the provided configuration.
// It validates the configuration, fills in defaults, and returns a client
// ready to make API calls. No network activity happens here.
func NewClient(config *Config) (*Client, error) {
	if config == nil {
		return nil, &pkgerrs.ConfigError{Message: "config cannot be nil"}
	}
	if config.AccessToken == "" && config.TokenSource == nil {
		return nil, &pkgerrs.ConfigError{Field: "AccessToken", Message: "an access token or token source is required"}
	}

	if config.UserAgent == "" {
		config.UserAgent = DefaultUserAgent
	}
	if config.BaseURL == "" {
		config.BaseURL = DefaultBaseURL
	}
	if config.HTTPClient == nil {
		config.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}

	var tokens TokenProvider
	if config.TokenSource != nil {
		tokens = oauthTokenProvider{source: config.TokenSource}
	} else {
		tokens = staticTokenProvider(config.AccessToken)
	}

	client, err := internal.NewClient(config.HTTPClient, tokens, config.BaseURL, config.UserAgent, config.Logger)
	if err != nil {
		return nil, err
	}

	return &Client{
		client:  client,
		builder: internal.NewBuilder(config.Location),
		config:  config,
	}, nil
}

// do builds, issues and decodes one API call.
func (c *Client) do(ctx context.Context, op internal.Operation, args internal.Args, v any) error {
	spec, err := c.builder.Build(op, args)
	if err != nil {
		return err
	}

	req, err := c.client.NewRequest(ctx, spec)
	if err != nil {
		return err
	}

	_, err = c.client.Do(req, v)
	return err
}

// AppData retrieves application-level reference data: the vocabularies the
// API accepts for languages, countries, sources and timezones.
func (c *Client) AppData(ctx context.Context) (*types.AppData, error) {
	var out types.AppData
	if err := c.do(ctx, internal.OpAppData, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListAlerts fetches all alerts for the given account.
func (c *Client) ListAlerts(ctx context.Context, accountID string) (*types.AlertsResponse, error) {
	args := internal.Args{"account_id": accountID}

	var out types.AlertsResponse
	if err := c.do(ctx, internal.OpListAlerts, args, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetAlert retrieves details about a single alert.
func (c *Client) GetAlert(ctx context.Context, accountID, alertID string) (*types.Alert, error) {
	args := internal.Args{
		"account_id": accountID,
		"alert_id":   alertID,
	}

	var out types.AlertResponse
	if err := c.do(ctx, internal.OpGetAlert, args, &out); err != nil {
		return nil, err
	}
	return out.Alert, nil
}

// CreateAlert creates a new alert on the given account and returns it.
// Name, Query and Languages are required; see types.AlertRequest.
func (c *Client) CreateAlert(ctx context.Context, accountID string, request *types.AlertRequest) (*types.Alert, error) {
	if request == nil {
		return nil, &pkgerrs.ClientError{Message: "alert request cannot be nil"}
	}

	args := alertArgs(accountID, "", request)

	var out types.AlertResponse
	if err := c.do(ctx, internal.OpCreateAlert, args, &out); err != nil {
		return nil, err
	}
	return out.Alert, nil
}

// UpdateAlert modifies an existing alert, usually to refine its query, and
// returns the updated alert.
func (c *Client) UpdateAlert(ctx context.Context, accountID, alertID string, request *types.AlertRequest) (*types.Alert, error) {
	if request == nil {
		return nil, &pkgerrs.ClientError{Message: "alert request cannot be nil"}
	}

	args := alertArgs(accountID, alertID, request)

	var out types.AlertResponse
	if err := c.do(ctx, internal.OpUpdateAlert, args, &out); err != nil {
		return nil, err
	}
	return out.Alert, nil
}

// alertArgs maps an AlertRequest onto the wire argument bag shared by
// create and update.
func alertArgs(accountID, alertID string, request *types.AlertRequest) internal.Args {
	args := internal.Args{
		"account_id":    accountID,
		"name":          request.Name,
		"languages":     request.Languages,
		"countries":     request.Countries,
		"sources":       request.Sources,
		"blocked_sites": request.BlockedSites,
		"reviews_pages": request.ReviewsPages,
	}
	if alertID != "" {
		args["alert_id"] = alertID
	}
	if request.Query != nil {
		args["query"] = request.Query
	}
	if request.NoiseDetection != nil {
		args["noise_detection"] = *request.NoiseDetection
	}
	return args
}

// ListMentions fetches mentions for one alert, filtered and paginated per
// the request. Conflicting filters are resolved by fixed priority; see
// types.MentionsRequest.
func (c *Client) ListMentions(ctx context.Context, request *types.MentionsRequest) (*types.MentionsResponse, error) {
	if request == nil {
		return nil, &pkgerrs.ClientError{Message: "mentions request cannot be nil"}
	}

	args := internal.Args{
		"account_id":      request.AccountID,
		"alert_id":        request.AlertID,
		"since_id":        request.SinceID,
		"limit":           request.Limit,
		"before_date":     request.BeforeDate,
		"not_before_date": request.NotBeforeDate,
		"source":          request.Source,
		"folder":          request.Folder,
		"tone":            request.Tone,
		"countries":       request.Countries,
		"sort":            request.Sort,
		"languages":       request.Languages,
		"timezone":        request.Timezone,
		"q":               request.Query,
		"cursor":          request.Cursor,
	}
	if request.Unread != nil {
		args["unread"] = *request.Unread
	}
	if request.Favorite != nil {
		args["favorite"] = *request.Favorite
	}
	if request.IncludeChildren != nil {
		args["include_children"] = *request.IncludeChildren
	}

	var out types.MentionsResponse
	if err := c.do(ctx, internal.OpListMentions, args, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetMention retrieves a single mention by its ID.
func (c *Client) GetMention(ctx context.Context, accountID, alertID, mentionID string) (*types.Mention, error) {
	args := internal.Args{
		"account_id": accountID,
		"alert_id":   alertID,
		"mention_id": mentionID,
	}

	var out types.MentionResponse
	if err := c.do(ctx, internal.OpGetMention, args, &out); err != nil {
		return nil, err
	}
	return out.Mention, nil
}

// GetMentionChildren fetches the children of one mention, e.g. the replies
// in a conversation thread.
func (c *Client) GetMentionChildren(ctx context.Context, request *types.MentionChildrenRequest) (*types.MentionsResponse, error) {
	if request == nil {
		return nil, &pkgerrs.ClientError{Message: "mention children request cannot be nil"}
	}

	args := internal.Args{
		"account_id":  request.AccountID,
		"alert_id":    request.AlertID,
		"mention_id":  request.MentionID,
		"limit":       request.Limit,
		"before_date": request.BeforeDate,
	}

	var out types.MentionsResponse
	if err := c.do(ctx, internal.OpMentionChildren, args, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CurateMention updates the curation state of an existing mention: favorite,
// trashed and read flags, tags, folder and tone. Only the fields set on the
// request are sent.
func (c *Client) CurateMention(ctx context.Context, request *types.CurateMentionRequest) (*types.Mention, error) {
	if request == nil {
		return nil, &pkgerrs.ClientError{Message: "curate request cannot be nil"}
	}

	args := internal.Args{
		"account_id": request.AccountID,
		"alert_id":   request.AlertID,
		"mention_id": request.MentionID,
		"tags":       request.Tags,
		"folder":     request.Folder,
		"tone":       request.Tone,
	}
	if request.Favorite != nil {
		args["favorite"] = *request.Favorite
	}
	if request.Trashed != nil {
		args["trashed"] = *request.Trashed
	}
	if request.Read != nil {
		args["read"] = *request.Read
	}

	var out types.MentionResponse
	if err := c.do(ctx, internal.OpCurateMention, args, &out); err != nil {
		return nil, err
	}
	return out.Mention, nil
}

// MarkAllMentionsRead marks every mention of the given alert as read.
func (c *Client) MarkAllMentionsRead(ctx context.Context, accountID, alertID string) error {
	args := internal.Args{
		"account_id": accountID,
		"alert_id":   alertID,
	}
	return c.do(ctx, internal.OpMarkAllRead, args, nil)
}
