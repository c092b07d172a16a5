package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/plantdesk/portalctl/internal/core/domain"
	"github.com/plantdesk/portalctl/internal/core/ports"
	"github.com/plantdesk/portalctl/internal/infrastructure/storage"
)

// stubAPI overrides only the calls a test needs; anything else panics via
// the embedded nil interface, which makes unexpected calls loud.
type stubAPI struct {
	ports.PortalAPI

	loginFn   func(ctx context.Context, creds ports.Credentials) (*ports.LoginResult, error)
	logoutFn  func(ctx context.Context) error
	profileFn func(ctx context.Context) (*domain.User, error)
}

func (s *stubAPI) Login(ctx context.Context, creds ports.Credentials) (*ports.LoginResult, error) {
	return s.loginFn(ctx, creds)
}

func (s *stubAPI) Logout(ctx context.Context) error { return s.logoutFn(ctx) }

func (s *stubAPI) LogoutAll(ctx context.Context) error { return s.logoutFn(ctx) }

func (s *stubAPI) Profile(ctx context.Context) (*domain.User, error) { return s.profileFn(ctx) }

func newTestAuth(api ports.PortalAPI) (*AuthService, ports.TokenStore, *SessionState) {
	tokens := storage.NewMemStore()
	session := NewSessionState()
	return NewAuthService(api, tokens, session, zerolog.Nop()), tokens, session
}

func TestLoginPersistsTokenAndPublishesProfile(t *testing.T) {
	user := &domain.User{ID: "u1", Email: "admin@example.com", Roles: []string{domain.RoleSuperAdmin}}
	api := &stubAPI{
		loginFn: func(_ context.Context, creds ports.Credentials) (*ports.LoginResult, error) {
			if creds.Email != "admin@example.com" {
				t.Fatalf("unexpected email %q", creds.Email)
			}
			return &ports.LoginResult{Token: "tok-123"}, nil
		},
		profileFn: func(context.Context) (*domain.User, error) { return user, nil },
	}
	auth, tokens, session := newTestAuth(api)

	result, err := auth.Login(context.Background(), ports.Credentials{Email: "admin@example.com", Password: "pw"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if result.Token != "tok-123" {
		t.Fatalf("unexpected token %q", result.Token)
	}
	if tokens.Token() != "tok-123" {
		t.Fatalf("token not persisted, store holds %q", tokens.Token())
	}
	if got := session.Current(); got != user {
		t.Fatalf("session should hold the fetched profile, got %+v", got)
	}
	if !auth.IsAuthenticated() {
		t.Fatal("IsAuthenticated should be true after login")
	}
	if !auth.HasRole(domain.RoleSuperAdmin) {
		t.Fatal("HasRole should see the published profile")
	}
}

func TestLoginFailureMutatesNothing(t *testing.T) {
	wantErr := domain.NewAPIError(domain.CategoryUnauthorized, 401, "bad credentials", nil)
	api := &stubAPI{
		loginFn: func(context.Context, ports.Credentials) (*ports.LoginResult, error) {
			return nil, wantErr
		},
	}
	auth, tokens, session := newTestAuth(api)

	_, err := auth.Login(context.Background(), ports.Credentials{Email: "x@example.com", Password: "pw"})
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected the API error back, got %v", err)
	}
	if tokens.Token() != "" {
		t.Fatal("failed login must not persist a token")
	}
	if session.Current() != nil {
		t.Fatal("failed login must not publish a session")
	}
}

func TestLogoutClearsLocalStateEvenWhenServerFails(t *testing.T) {
	api := &stubAPI{
		logoutFn: func(context.Context) error {
			return domain.NewAPIError(domain.CategoryServer, 500, "boom", nil)
		},
	}
	auth, tokens, session := newTestAuth(api)
	_ = tokens.SetToken("tok")
	session.Set(&domain.User{ID: "u1"})

	if err := auth.Logout(context.Background()); err != nil {
		t.Fatalf("logout must succeed locally: %v", err)
	}
	if tokens.Token() != "" {
		t.Fatal("token not cleared")
	}
	if session.Current() != nil {
		t.Fatal("session not nulled")
	}
}

func TestLoadProfileWithoutTokenIsNoop(t *testing.T) {
	auth, _, session := newTestAuth(&stubAPI{})

	published := 0
	session.Subscribe(func(*domain.User) { published++ })

	user, err := auth.LoadProfile(context.Background())
	if err != nil || user != nil {
		t.Fatalf("expected nil, nil without a token, got %v, %v", user, err)
	}
	if published != 1 { // only the subscribe replay
		t.Fatalf("no emission expected, got %d", published)
	}
}

func TestLoadProfileFailureInvalidatesSession(t *testing.T) {
	api := &stubAPI{
		profileFn: func(context.Context) (*domain.User, error) {
			return nil, domain.NewAPIError(domain.CategoryServer, 500, "boom", nil)
		},
	}
	auth, tokens, session := newTestAuth(api)
	_ = tokens.SetToken("tok")
	session.Set(&domain.User{ID: "u1"})

	_, err := auth.LoadProfile(context.Background())
	if err == nil {
		t.Fatal("expected the error to propagate")
	}
	if tokens.Token() != "" {
		t.Fatal("token should be cleared after a profile failure")
	}
	if session.Current() != nil {
		t.Fatal("session should be nulled after a profile failure")
	}
}

func TestLoadProfileHandledFailureIsSilent(t *testing.T) {
	api := &stubAPI{
		profileFn: func(context.Context) (*domain.User, error) {
			return nil, domain.ErrHandled
		},
	}
	auth, tokens, _ := newTestAuth(api)
	_ = tokens.SetToken("tok")

	user, err := auth.LoadProfile(context.Background())
	if err != nil {
		t.Fatalf("handled failures must not propagate, got %v", err)
	}
	if user != nil {
		t.Fatalf("no user expected, got %+v", user)
	}
	if tokens.Token() != "" {
		t.Fatal("token should be cleared")
	}
}
