package transport

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/plantdesk/portalctl/internal/core/domain"
	"github.com/plantdesk/portalctl/internal/core/ports"
	"github.com/plantdesk/portalctl/internal/metrics"
)

// LoginPath is the view the 401 stage redirects to after force-ending the
// session.
const LoginPath = "/login"

// serverErrorBody is the backend's error envelope. Either a single message
// or a list of field errors may be present.
type serverErrorBody struct {
	Error  string   `json:"error"`
	Errors []string `json:"errors"`
}

// TranslateErrors classifies failed responses into the error taxonomy,
// raises exactly one notification per failure, and applies side effects:
// a 401 clears the token, nulls the session, redirects to login, and
// resolves to domain.ErrHandled so the call site never handles it again.
// All other classifications propagate a *domain.APIError to the caller.
func TranslateErrors(tokens ports.TokenStore, session ports.Session, nav ports.Navigator, notifier ports.Notifier, log zerolog.Logger) Middleware {
	return func(next Doer) Doer {
		return func(req *http.Request) (*http.Response, error) {
			resp, err := next(req)
			if err != nil {
				// Transport failure: the request never produced a response.
				msg := "Network error: " + err.Error()
				notifier.Error(msg)
				metrics.RequestsTotal.WithLabelValues(string(domain.CategoryNetwork)).Inc()
				return nil, domain.NewAPIError(domain.CategoryNetwork, 0, msg, err)
			}

			if resp.StatusCode < 400 {
				metrics.RequestsTotal.WithLabelValues("ok").Inc()
				return resp, nil
			}

			body := readErrorBody(resp)
			category, msg := classify(resp.StatusCode, resp.Status, body)
			metrics.RequestsTotal.WithLabelValues(string(category)).Inc()

			if category == domain.CategoryUnauthorized {
				metrics.AuthFailuresTotal.Inc()
				log.Warn().Str("url", req.URL.Path).Msg("401 response; ending session")
				if err := tokens.ClearToken(); err != nil {
					log.Error().Err(err).Msg("failed to clear token on 401")
				}
				session.Set(nil)
				notifier.Warn(msg)
				nav.Navigate(LoginPath)
				return nil, domain.ErrHandled
			}

			notifier.Error(msg)
			return nil, domain.NewAPIError(category, resp.StatusCode, msg, nil)
		}
	}
}

// readErrorBody drains and closes the failed response body so the
// underlying connection can be reused.
func readErrorBody(resp *http.Response) *serverErrorBody {
	defer resp.Body.Close()
	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err != nil || len(data) == 0 {
		return nil
	}
	var body serverErrorBody
	if json.Unmarshal(data, &body) != nil {
		return nil
	}
	return &body
}

func serverMessage(body *serverErrorBody) string {
	if body == nil {
		return ""
	}
	if body.Error != "" {
		return body.Error
	}
	if len(body.Errors) > 0 {
		return strings.Join(body.Errors, "; ")
	}
	return ""
}

func classify(status int, statusText string, body *serverErrorBody) (domain.ErrorCategory, string) {
	switch {
	case status == http.StatusBadRequest:
		if msg := serverMessage(body); msg != "" {
			return domain.CategoryBadRequest, msg
		}
		return domain.CategoryBadRequest, "Invalid input."
	case status == http.StatusUnauthorized:
		return domain.CategoryUnauthorized, "Your session has expired. Please sign in again."
	case status == http.StatusForbidden:
		return domain.CategoryForbidden, "You do not have permission to perform this action."
	case status == http.StatusNotFound:
		return domain.CategoryNotFound, "The requested resource was not found."
	case status == http.StatusConflict:
		if msg := serverMessage(body); msg != "" {
			return domain.CategoryConflict, msg
		}
		return domain.CategoryConflict, "The request conflicts with the current state."
	case status == http.StatusUnprocessableEntity:
		if msg := serverMessage(body); msg != "" {
			return domain.CategoryUnprocessable, msg
		}
		return domain.CategoryUnprocessable, "The request could not be processed."
	case status == http.StatusTooManyRequests:
		return domain.CategoryRateLimited, "Too many requests. Please try again in a moment."
	case status >= 500:
		return domain.CategoryServer, "Server error. Please try again later."
	default:
		return domain.CategoryUnknown, fmt.Sprintf("Request failed: %s", statusTextOr(status, statusText))
	}
}

func statusTextOr(status int, statusText string) string {
	if statusText != "" {
		return statusText
	}
	return fmt.Sprintf("%d %s", status, http.StatusText(status))
}
