package transport

import (
	"net/http"

	"github.com/plantdesk/portalctl/internal/core/ports"
)

// BearerAuth attaches the persisted token as a bearer credential on every
// outgoing request. Requests are forwarded unchanged when no token is held;
// the stage never blocks.
func BearerAuth(tokens ports.TokenStore) Middleware {
	return func(next Doer) Doer {
		return func(req *http.Request) (*http.Response, error) {
			if tok := tokens.Token(); tok != "" {
				req.Header.Set("Authorization", "Bearer "+tok)
			}
			return next(req)
		}
	}
}
