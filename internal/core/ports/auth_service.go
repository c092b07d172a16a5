package ports

import (
	"context"

	"github.com/plantdesk/portalctl/internal/core/domain"
)

// AuthService owns the client-side session lifecycle: it is the only
// component that mutates the token store and the session cell.
type AuthService interface {
	// Login authenticates, persists the token and refreshes the profile.
	// On failure nothing is mutated and the error is returned untouched.
	Login(ctx context.Context, creds Credentials) (*LoginResult, error)
	// Logout and LogoutAllDevices invoke the server endpoint but clear the
	// local token and session regardless of the server outcome: the user
	// must always be able to exit an authenticated UI state.
	Logout(ctx context.Context) error
	LogoutAllDevices(ctx context.Context) error
	// LoadProfile fetches the profile when a token is present. An
	// unfetchable profile is treated as an invalid session: the token is
	// cleared and the session nulled.
	LoadProfile(ctx context.Context) (*domain.User, error)

	RegisterAdmin(ctx context.Context, input RegisterAdminInput) (*domain.User, error)
	ChangePassword(ctx context.Context, input ChangePasswordInput) error
	ResetPassword(ctx context.Context, userID string) (*ResetPasswordResult, error)
	GetAllAdmins(ctx context.Context) ([]domain.User, error)
	GetAdminsByPlant(ctx context.Context, plantID string) ([]domain.User, error)
	DeleteAdmin(ctx context.Context, id string) error
	Sessions(ctx context.Context) ([]domain.UserToken, error)

	// IsAuthenticated reports token presence only; no network call.
	IsAuthenticated() bool
	// HasRole checks role membership on the current user; false when no
	// session is known.
	HasRole(role string) bool
}
