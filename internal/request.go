package internal

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	pkgerrs "github.com/mazi76erX2/mention-go/pkg/errors"
)

// Operation identifies a logical Mention API endpoint.
type Operation int

const (
	OpAppData Operation = iota
	OpListAlerts
	OpGetAlert
	OpCreateAlert
	OpUpdateAlert
	OpListMentions
	OpGetMention
	OpMentionChildren
	OpCurateMention
	OpMarkAllRead
)

// FieldKind selects the normalizer applied to a field value.
type FieldKind int

const (
	// KindString passes a string through unchanged; empty strings are elided.
	KindString FieldKind = iota
	// KindBool renders a boolean as the literal token "true" or "false".
	KindBool
	// KindDate reformats a "yyyy-MM-dd HH:mm" string into an ISO-8601
	// timestamp with a numeric offset.
	KindDate
	// KindEnum passes a string through after checking it against a fixed
	// vocabulary.
	KindEnum
	// KindLimit clamps an integer into [1, maxLimit]; values below 1 elide
	// the field.
	KindLimit
	// KindStringList passes a list of strings through; empty lists are
	// elided. Body operations only.
	KindStringList
	// KindEnumList validates each element against a fixed vocabulary.
	// Body operations only.
	KindEnumList
	// KindDocument passes a structured value through untouched.
	// Body operations only.
	KindDocument
)

// FieldSpec describes one field accepted by an operation: its wire name,
// the normalizer applied to it, the vocabulary for enum kinds, and whether
// the operation requires it.
type FieldSpec struct {
	Name     string
	Kind     FieldKind
	Enum     []string
	Required bool
}

// Vocabularies accepted by the Mention API.
var (
	Tones   = []string{"negative", "neutral", "positive"}
	Sources = []string{"web", "twitter", "blogs", "forums", "news", "facebook", "images", "videos"}
	Folders = []string{"inbox", "archive", "spam", "trash"}
	Sorts   = []string{"published_at", "author_influence.score", "direct_reach", "cumulative_reach", "domain_reach"}
)

const (
	// maxLimit is the largest page size the API accepts.
	maxLimit = 1000

	dateInputLayout = "2006-01-02 15:04"
	dateWireLayout  = "2006-01-02T15:04:05.00000-07:00"
)

// operationSpec maps one operation to its HTTP method, path template and
// the ordered set of fields it accepts. Field order in the table is the
// render order, so the same operation always serializes identically.
type operationSpec struct {
	method     string
	template   string
	pathFields []string
	fields     []FieldSpec

	// body selects JSON-body rendering instead of a query string.
	body bool

	// filtered applies the mention filter priority rules before rendering.
	filtered bool
}

var alertFields = []FieldSpec{
	{Name: "name", Kind: KindString, Required: true},
	{Name: "query", Kind: KindDocument, Required: true},
	{Name: "languages", Kind: KindStringList, Required: true},
	{Name: "countries", Kind: KindStringList},
	{Name: "sources", Kind: KindEnumList, Enum: Sources},
	{Name: "blocked_sites", Kind: KindStringList},
	{Name: "noise_detection", Kind: KindBool},
	{Name: "reviews_pages", Kind: KindStringList},
}

var mentionFilterFields = []FieldSpec{
	{Name: "since_id", Kind: KindString},
	{Name: "before_date", Kind: KindDate},
	{Name: "not_before_date", Kind: KindDate},
	{Name: "cursor", Kind: KindString},
	{Name: "unread", Kind: KindBool},
	{Name: "favorite", Kind: KindBool},
	{Name: "folder", Kind: KindEnum, Enum: Folders},
	{Name: "q", Kind: KindString},
	{Name: "tone", Kind: KindEnum, Enum: Tones},
	{Name: "limit", Kind: KindLimit},
	{Name: "source", Kind: KindEnum, Enum: Sources},
	{Name: "countries", Kind: KindString},
	{Name: "include_children", Kind: KindBool},
	{Name: "sort", Kind: KindEnum, Enum: Sorts},
	{Name: "languages", Kind: KindString},
	{Name: "timezone", Kind: KindString},
}

var childrenFields = []FieldSpec{
	{Name: "before_date", Kind: KindDate},
	{Name: "limit", Kind: KindLimit},
}

var curateFields = []FieldSpec{
	{Name: "favorite", Kind: KindBool},
	{Name: "trashed", Kind: KindBool},
	{Name: "read", Kind: KindBool},
	{Name: "tags", Kind: KindStringList},
	{Name: "folder", Kind: KindEnum, Enum: Folders},
	{Name: "tone", Kind: KindEnum, Enum: Tones},
}

var operations = map[Operation]operationSpec{
	OpAppData: {
		method:   http.MethodGet,
		template: "/app/data",
	},
	OpListAlerts: {
		method:     http.MethodGet,
		template:   "/accounts/{account_id}/alerts",
		pathFields: []string{"account_id"},
	},
	OpGetAlert: {
		method:     http.MethodGet,
		template:   "/accounts/{account_id}/alerts/{alert_id}",
		pathFields: []string{"account_id", "alert_id"},
	},
	OpCreateAlert: {
		method:     http.MethodPost,
		template:   "/accounts/{account_id}/alerts",
		pathFields: []string{"account_id"},
		fields:     alertFields,
		body:       true,
	},
	OpUpdateAlert: {
		method:     http.MethodPut,
		template:   "/accounts/{account_id}/alerts/{alert_id}",
		pathFields: []string{"account_id", "alert_id"},
		fields:     alertFields,
		body:       true,
	},
	OpListMentions: {
		method:     http.MethodGet,
		template:   "/accounts/{account_id}/alerts/{alert_id}/mentions",
		pathFields: []string{"account_id", "alert_id"},
		fields:     mentionFilterFields,
		filtered:   true,
	},
	OpGetMention: {
		method:     http.MethodGet,
		template:   "/accounts/{account_id}/alerts/{alert_id}/mentions/{mention_id}",
		pathFields: []string{"account_id", "alert_id", "mention_id"},
	},
	OpMentionChildren: {
		method:     http.MethodGet,
		template:   "/accounts/{account_id}/alerts/{alert_id}/mentions/{mention_id}/children",
		pathFields: []string{"account_id", "alert_id", "mention_id"},
		fields:     childrenFields,
	},
	OpCurateMention: {
		method:     http.MethodPut,
		template:   "/accounts/{account_id}/alerts/{alert_id}/mentions/{mention_id}",
		pathFields: []string{"account_id", "alert_id", "mention_id"},
		fields:     curateFields,
		body:       true,
	},
	OpMarkAllRead: {
		method:     http.MethodPost,
		template:   "/accounts/{account_id}/alerts/{alert_id}/mentions/markallread",
		pathFields: []string{"account_id", "alert_id"},
	},
}

// Args is the bag of named arguments for one operation. Keys are wire names;
// absent keys and zero-length values are simply not rendered.
type Args map[string]any

// RequestSpec is the transport-ready form of one API call: method, rendered
// path, encoded query string and/or JSON body. It is built fresh per call
// and never mutated afterwards.
type RequestSpec struct {
	Method string
	Path   string
	Query  string
	Body   []byte
}

// Builder turns operation arguments into RequestSpecs. It holds only the
// location used to interpret date arguments, so a single Builder is safe
// for concurrent use.
type Builder struct {
	loc *time.Location
}

// NewBuilder returns a Builder that interprets date arguments in loc.
// A nil loc defaults to UTC.
func NewBuilder(loc *time.Location) *Builder {
	if loc == nil {
		loc = time.UTC
	}
	return &Builder{loc: loc}
}

// Build renders the request for op from args. All validation happens here,
// before any network activity: malformed dates and out-of-vocabulary enum
// values return a *errors.ValidationError. Unrecognized keys in args are
// ignored.
func (b *Builder) Build(op Operation, args Args) (*RequestSpec, error) {
	spec, ok := operations[op]
	if !ok {
		return nil, &pkgerrs.ClientError{Message: fmt.Sprintf("unknown operation %d", op)}
	}

	path, err := renderPath(spec, args)
	if err != nil {
		return nil, err
	}

	params, err := b.normalize(spec, args)
	if err != nil {
		return nil, err
	}

	if spec.filtered {
		applyFilterPriority(params)
	}

	out := &RequestSpec{Method: spec.method, Path: path}
	if spec.body {
		body, err := renderBody(params)
		if err != nil {
			return nil, err
		}
		out.Body = body
	} else {
		out.Query = renderQuery(spec, params)
	}
	return out, nil
}

// renderPath substitutes the required path fields into the operation's
// template. Path fields are never subject to elision; a missing one is an
// error.
func renderPath(spec operationSpec, args Args) (string, error) {
	path := spec.template
	for _, name := range spec.pathFields {
		value, _ := args[name].(string)
		if value == "" {
			return "", &pkgerrs.ValidationError{Field: name, Message: "is required"}
		}
		if err := validatePathValue(name, value); err != nil {
			return "", err
		}
		path = strings.Replace(path, "{"+name+"}", value, 1)
	}
	return path, nil
}

// validatePathValue rejects identifier values that would alter the request
// path. Mention identifiers are plain alphanumeric tokens.
func validatePathValue(name, value string) error {
	for _, ch := range value {
		if !(ch >= '0' && ch <= '9') && !(ch >= 'a' && ch <= 'z') &&
			!(ch >= 'A' && ch <= 'Z') && ch != '_' && ch != '-' && ch != '.' {
			return &pkgerrs.ValidationError{
				Field:   name,
				Value:   value,
				Message: fmt.Sprintf("contains invalid character %q", ch),
			}
		}
	}
	return nil
}

// normalize applies each field's normalizer and collects the surviving
// values. Validation is fail-fast: a field that fails its check aborts the
// build even if a later exclusivity rule would have dropped it.
func (b *Builder) normalize(spec operationSpec, args Args) (map[string]any, error) {
	params := make(map[string]any, len(spec.fields))
	for _, f := range spec.fields {
		raw, present := args[f.Name]
		if !present {
			if f.Required {
				return nil, &pkgerrs.ValidationError{Field: f.Name, Message: "is required"}
			}
			continue
		}

		value, keep, err := b.normalizeField(f, raw)
		if err != nil {
			return nil, err
		}
		if !keep {
			if f.Required {
				return nil, &pkgerrs.ValidationError{Field: f.Name, Message: "is required"}
			}
			continue
		}
		params[f.Name] = value
	}
	return params, nil
}

func (b *Builder) normalizeField(f FieldSpec, raw any) (any, bool, error) {
	switch f.Kind {
	case KindString:
		s, err := stringArg(f.Name, raw)
		if err != nil || s == "" {
			return nil, false, err
		}
		return s, true, nil

	case KindBool:
		v, ok := raw.(bool)
		if !ok {
			return nil, false, badArgType(f.Name, raw, "bool")
		}
		return FormatBool(v), true, nil

	case KindDate:
		s, err := stringArg(f.Name, raw)
		if err != nil || s == "" {
			return nil, false, err
		}
		normalized, err := NormalizeDate(f.Name, s, b.loc)
		if err != nil {
			return nil, false, err
		}
		return normalized, true, nil

	case KindEnum:
		s, err := stringArg(f.Name, raw)
		if err != nil || s == "" {
			return nil, false, err
		}
		if err := ValidateEnum(f.Name, s, f.Enum); err != nil {
			return nil, false, err
		}
		return s, true, nil

	case KindLimit:
		n, ok := raw.(int)
		if !ok {
			return nil, false, badArgType(f.Name, raw, "int")
		}
		clamped, present := ClampLimit(n)
		if !present {
			return nil, false, nil
		}
		return strconv.Itoa(clamped), true, nil

	case KindStringList:
		list, ok := raw.([]string)
		if !ok {
			return nil, false, badArgType(f.Name, raw, "[]string")
		}
		if len(list) == 0 {
			return nil, false, nil
		}
		return list, true, nil

	case KindEnumList:
		list, ok := raw.([]string)
		if !ok {
			return nil, false, badArgType(f.Name, raw, "[]string")
		}
		if len(list) == 0 {
			return nil, false, nil
		}
		for _, v := range list {
			if err := ValidateEnum(f.Name, v, f.Enum); err != nil {
				return nil, false, err
			}
		}
		return list, true, nil

	case KindDocument:
		if raw == nil {
			return nil, false, nil
		}
		return raw, true, nil

	default:
		return nil, false, &pkgerrs.ClientError{Message: fmt.Sprintf("unknown field kind %d for %s", f.Kind, f.Name)}
	}
}

func stringArg(name string, raw any) (string, error) {
	s, ok := raw.(string)
	if !ok {
		return "", badArgType(name, raw, "string")
	}
	return s, nil
}

func badArgType(name string, raw any, want string) error {
	return &pkgerrs.ClientError{Message: fmt.Sprintf("argument %s must be a %s, got %T", name, want, raw)}
}

// applyFilterPriority collapses mutually exclusive mention filters, earlier
// rule wins:
//
//  1. since_id suppresses the date window and the pagination cursor;
//  2. unread suppresses favorite, folder, free-text and tone filters;
//  3. favorite is honored together with folder only for inbox and archive,
//     otherwise favorite is dropped and folder passes through alone.
//
// Presence decides, not value: unread=false still suppresses the filters in
// its group.
func applyFilterPriority(params map[string]any) {
	if _, ok := params["since_id"]; ok {
		delete(params, "before_date")
		delete(params, "not_before_date")
		delete(params, "cursor")
	}

	if _, ok := params["unread"]; ok {
		delete(params, "favorite")
		delete(params, "folder")
		delete(params, "q")
		delete(params, "tone")
	}

	if _, ok := params["favorite"]; ok {
		folder, _ := params["folder"].(string)
		if folder != "inbox" && folder != "archive" {
			delete(params, "favorite")
		}
	}
}

// renderQuery encodes the surviving fields in field-table order, so the same
// arguments always produce byte-identical query strings.
func renderQuery(spec operationSpec, params map[string]any) string {
	var sb strings.Builder
	for _, f := range spec.fields {
		value, ok := params[f.Name]
		if !ok {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(url.QueryEscape(f.Name))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(value.(string)))
	}
	return sb.String()
}

// renderBody serializes the surviving fields as a single JSON document.
// encoding/json emits object keys in sorted order, which keeps rebuilds
// byte-identical here too.
func renderBody(params map[string]any) ([]byte, error) {
	body, err := json.Marshal(params)
	if err != nil {
		return nil, &pkgerrs.ClientError{Operation: "encode request body", Err: err}
	}
	return body, nil
}

// FormatBool renders a boolean as the wire token the API expects.
func FormatBool(v bool) string {
	if v {
		return "true"
	}
	return "false"
}

// NormalizeDate reformats a human "yyyy-MM-dd HH:mm" date-time string into a
// fully qualified ISO-8601 timestamp with seconds, a fractional component
// and a numeric offset, e.g. "2018-11-25 12:00" in UTC becomes
// "2018-11-25T12:00:00.00000+00:00".
func NormalizeDate(field, value string, loc *time.Location) (string, error) {
	t, err := time.ParseInLocation(dateInputLayout, value, loc)
	if err != nil {
		return "", &pkgerrs.ValidationError{
			Field:   field,
			Value:   value,
			Message: `must match the "yyyy-MM-dd HH:mm" format`,
		}
	}
	return t.Format(dateWireLayout), nil
}

// ValidateEnum checks value against a fixed vocabulary.
func ValidateEnum(field, value string, allowed []string) error {
	for _, v := range allowed {
		if v == value {
			return nil
		}
	}
	return &pkgerrs.ValidationError{
		Field:   field,
		Value:   value,
		Message: "must be one of " + strings.Join(allowed, ", "),
	}
}

// ClampLimit silently corrects a page-size value: values above the API cap
// become the cap, values below 1 elide the field entirely (the API default
// applies), and everything in between passes through unchanged.
func ClampLimit(n int) (int, bool) {
	if n > maxLimit {
		return maxLimit, true
	}
	if n < 1 {
		return 0, false
	}
	return n, true
}
