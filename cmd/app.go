package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/plantdesk/portalctl/internal/core/domain"
	"github.com/plantdesk/portalctl/internal/core/ports"
	"github.com/plantdesk/portalctl/internal/core/service"
	"github.com/plantdesk/portalctl/internal/infrastructure/config"
	"github.com/plantdesk/portalctl/internal/infrastructure/rest"
	"github.com/plantdesk/portalctl/internal/infrastructure/storage"
	"github.com/plantdesk/portalctl/internal/nav"
	"github.com/plantdesk/portalctl/internal/notify"
	"github.com/plantdesk/portalctl/internal/transport"
)

// app is the composition root: one session cell, one token store, one
// pipeline, shared by every subcommand.
type app struct {
	cfg        *config.Config
	log        zerolog.Logger
	tokens     ports.TokenStore
	session    *service.SessionState
	tracker    *transport.BusyTracker
	notifier   ports.Notifier
	auth       *service.AuthService
	api        ports.PortalAPI
	authorizer *nav.Authorizer
}

func newApp(cfg *config.Config, log zerolog.Logger) (*app, error) {
	tokens, err := storage.NewFileStore(cfg.ConfigDir)
	if err != nil {
		return nil, err
	}

	session := service.NewSessionState()
	tracker := transport.NewBusyTracker()
	notifier := notify.NewLogNotifier(log)
	navigator := nav.NewLogNavigator(log)

	// Pipeline order: credential attachment first, busy accounting around
	// the send, error translation on settlement. The stages are
	// independent; this ordering is configuration, not necessity.
	client := rest.NewClient(cfg.APIBaseURL, &http.Client{Timeout: cfg.Timeout},
		transport.BearerAuth(tokens),
		transport.TrackBusy(tracker),
		transport.TranslateErrors(tokens, session, navigator, notifier, log),
	)

	auth := service.NewAuthService(client, tokens, session, log)

	return &app{
		cfg:        cfg,
		log:        log,
		tokens:     tokens,
		session:    session,
		tracker:    tracker,
		notifier:   notifier,
		auth:       auth,
		api:        client,
		authorizer: nav.NewAuthorizer(auth, notifier),
	}, nil
}

// requireView evaluates the guards for a protected view before a command
// runs, mirroring route activation in the browser portal. The profile is
// loaded first so role checks see the current user.
func (a *app) requireView(ctx context.Context, path string) error {
	if a.auth.IsAuthenticated() && a.session.Current() == nil {
		if _, err := a.auth.LoadProfile(ctx); err != nil {
			return err
		}
	}

	route, ok := nav.Lookup(path)
	if !ok {
		return fmt.Errorf("unknown view %q", path)
	}
	decision := a.authorizer.Authorize(route)
	if !decision.Allowed {
		return fmt.Errorf("navigation blocked; continue at %s", decision.RedirectTo)
	}
	return nil
}

// done collapses pipeline-handled failures: the user has already been
// notified and redirected, so the command has nothing left to report.
func done(err error) error {
	if errors.Is(err, domain.ErrHandled) {
		return nil
	}
	return err
}
