// Package mention provides a Go client for the Mention social-listening API.
//
// # Overview
//
// The package wraps the Mention REST API (https://api.mention.net/api) with
// a typed interface: application metadata, alert CRUD, mention listing with
// filters, mention curation and children pagination. It handles bearer-token
// authentication headers, parameter normalization and response decoding.
//
// # Quick Start
//
// A client needs an access token obtained out of band:
//
//	client, err := mention.NewClient(&mention.Config{
//		AccessToken: os.Getenv("MENTION_ACCESS_TOKEN"),
//		UserAgent:   "myapp/1.0",
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	resp, err := client.ListMentions(ctx, &types.MentionsRequest{
//		AccountID: accountID,
//		AlertID:   alertID,
//		Limit:     50,
//		Folder:    types.FolderInbox,
//	})
//
// Callers already holding an oauth2 token source can set Config.TokenSource
// instead of AccessToken. The client only consumes tokens; acquiring and
// refreshing them is the caller's concern.
//
// # Parameter handling
//
// Filter arguments are normalized before any request is issued: booleans are
// rendered as "true"/"false" tokens, dates in "yyyy-MM-dd HH:mm" form are
// expanded to full ISO-8601 timestamps, enumerated fields are checked
// against the API's vocabularies, and page sizes are clamped to the API
// maximum of 1000. Unset fields are never sent. Mutually exclusive filter
// combinations (for example SinceID together with BeforeDate) are resolved
// by fixed priority rather than rejected; see types.MentionsRequest.
//
// Malformed dates and out-of-vocabulary values fail fast with a
// *errors.ValidationError before any network activity. Non-2xx API
// responses are returned as a *errors.APIError carrying the status code and
// raw body.
package mention
