package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/plantdesk/portalctl/internal/core/domain"
	"github.com/plantdesk/portalctl/internal/core/ports"
)

// AuthService implements the client-side session lifecycle over the portal
// API. It is the only writer of the token store and the session cell.
type AuthService struct {
	api     ports.PortalAPI
	tokens  ports.TokenStore
	session ports.Session
	logger  zerolog.Logger
}

var _ ports.AuthService = (*AuthService)(nil)

func NewAuthService(api ports.PortalAPI, tokens ports.TokenStore, session ports.Session, logger zerolog.Logger) *AuthService {
	return &AuthService{api: api, tokens: tokens, session: session, logger: logger}
}

// Login authenticates and, on success, persists the token and refreshes the
// profile so observers see the new user. On failure nothing is mutated and
// the error is propagated untouched.
func (s *AuthService) Login(ctx context.Context, creds ports.Credentials) (*ports.LoginResult, error) {
	result, err := s.api.Login(ctx, creds)
	if err != nil {
		return nil, err
	}

	if err := s.tokens.SetToken(result.Token); err != nil {
		return nil, err
	}

	s.logger.Info().Str("email", creds.Email).Msg("login succeeded")

	if _, err := s.LoadProfile(ctx); err != nil {
		return nil, err
	}
	return result, nil
}

// Logout invokes the server endpoint, then clears local state regardless of
// the server outcome: the user must always be able to exit an authenticated
// UI state even when the network call fails.
func (s *AuthService) Logout(ctx context.Context) error {
	return s.endSession(s.api.Logout(ctx))
}

// LogoutAllDevices revokes every server-side session, then clears local
// state with the same always-effective policy as Logout.
func (s *AuthService) LogoutAllDevices(ctx context.Context) error {
	return s.endSession(s.api.LogoutAll(ctx))
}

func (s *AuthService) endSession(callErr error) error {
	if callErr != nil && !errors.Is(callErr, domain.ErrHandled) {
		s.logger.Warn().Err(callErr).Msg("logout call failed; clearing local session anyway")
	}
	if err := s.tokens.ClearToken(); err != nil {
		return err
	}
	s.session.Set(nil)
	return nil
}

// LoadProfile fetches the profile when a token is present and publishes it.
// An unfetchable profile is an invalid session: the token is cleared and
// the session nulled. A pipeline-handled failure (401) returns nil, nil
// since the user has already been notified and redirected.
func (s *AuthService) LoadProfile(ctx context.Context) (*domain.User, error) {
	if s.tokens.Token() == "" {
		return nil, nil
	}

	user, err := s.api.Profile(ctx)
	if err != nil {
		if clearErr := s.tokens.ClearToken(); clearErr != nil {
			s.logger.Error().Err(clearErr).Msg("failed to clear token after profile failure")
		}
		s.session.Set(nil)
		if errors.Is(err, domain.ErrHandled) {
			return nil, nil
		}
		return nil, err
	}

	s.session.Set(user)
	return user, nil
}

// RegisterAdmin is a pass-through; it does not touch the current session.
func (s *AuthService) RegisterAdmin(ctx context.Context, input ports.RegisterAdminInput) (*domain.User, error) {
	return s.api.RegisterAdmin(ctx, input)
}

// ChangePassword is a pass-through: the token stays valid, so no session
// mutation is needed.
func (s *AuthService) ChangePassword(ctx context.Context, input ports.ChangePasswordInput) error {
	return s.api.ChangePassword(ctx, input)
}

func (s *AuthService) ResetPassword(ctx context.Context, userID string) (*ports.ResetPasswordResult, error) {
	return s.api.ResetPassword(ctx, userID)
}

func (s *AuthService) GetAllAdmins(ctx context.Context) ([]domain.User, error) {
	return s.api.Admins(ctx)
}

func (s *AuthService) GetAdminsByPlant(ctx context.Context, plantID string) ([]domain.User, error) {
	return s.api.AdminsByPlant(ctx, plantID)
}

func (s *AuthService) DeleteAdmin(ctx context.Context, id string) error {
	return s.api.DeleteAdmin(ctx, id)
}

func (s *AuthService) Sessions(ctx context.Context) ([]domain.UserToken, error) {
	return s.api.Sessions(ctx)
}

// IsAuthenticated reports token presence only. The token is never validated
// locally; the server is the authority.
func (s *AuthService) IsAuthenticated() bool {
	return s.tokens.Token() != ""
}

// HasRole checks role membership on the current user; false when no
// session is known.
func (s *AuthService) HasRole(role string) bool {
	return s.session.Current().HasRole(role)
}
