package ports

// Storage keys for client-durable state. The token and the theme preference
// are independent key-value entries, not a structured file format.
const (
	KeyAuthToken = "auth_token"
	KeyTheme     = "theme"
)

// TokenStore wraps persisted-credential access. Presence of a token implies
// "possibly authenticated" only; validity is decided by server responses.
// At most one token is held per client installation.
type TokenStore interface {
	// Token returns the persisted bearer token, or "" when absent.
	Token() string
	// SetToken persists the token, replacing any previous one.
	SetToken(token string) error
	// ClearToken removes the persisted token. Clearing an absent token is
	// not an error.
	ClearToken() error

	// Theme and SetTheme manage the UI theme preference stored alongside
	// the credential under its own key.
	Theme() string
	SetTheme(theme string) error
}
