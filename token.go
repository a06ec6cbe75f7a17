package mention

import (
	"context"

	"golang.org/x/oauth2"

	pkgerrs "github.com/mazi76erX2/mention-go/pkg/errors"
)

// TokenProvider supplies the access token attached to each request.
// Implementations may cache or rotate tokens; the client calls GetToken
// once per request.
type TokenProvider interface {
	GetToken(ctx context.Context) (string, error)
}

// staticTokenProvider returns the same access token for every request.
type staticTokenProvider string

func (t staticTokenProvider) GetToken(context.Context) (string, error) {
	return string(t), nil
}

// oauthTokenProvider adapts an oauth2.TokenSource to TokenProvider, so a
// caller who already manages token acquisition elsewhere can plug it in.
type oauthTokenProvider struct {
	source oauth2.TokenSource
}

func (p oauthTokenProvider) GetToken(context.Context) (string, error) {
	token, err := p.source.Token()
	if err != nil {
		return "", &pkgerrs.ClientError{Operation: "fetch oauth2 token", Err: err}
	}
	return token.AccessToken, nil
}
