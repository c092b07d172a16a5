package nav

import (
	"github.com/rs/zerolog"

	"github.com/plantdesk/portalctl/internal/core/ports"
)

// LogNavigator is the CLI's ports.Navigator: there is no routing shell to
// drive, so redirects are surfaced as log lines telling the user which
// view to go to next.
type LogNavigator struct {
	log zerolog.Logger
}

func NewLogNavigator(log zerolog.Logger) *LogNavigator {
	return &LogNavigator{log: log}
}

func (n *LogNavigator) Navigate(path string) {
	n.log.Info().Str("view", path).Msg("redirecting")
}

func (n *LogNavigator) NavigateWithReturn(path, returnURL string) {
	n.log.Info().Str("view", path).Str("return_url", returnURL).Msg("redirecting")
}

// NavRecorder captures navigations for tests.
type NavRecorder struct {
	Paths      []string
	ReturnURLs []string
}

func (r *NavRecorder) Navigate(path string) {
	r.Paths = append(r.Paths, path)
	r.ReturnURLs = append(r.ReturnURLs, "")
}

func (r *NavRecorder) NavigateWithReturn(path, returnURL string) {
	r.Paths = append(r.Paths, path)
	r.ReturnURLs = append(r.ReturnURLs, returnURL)
}

var (
	_ ports.Navigator = (*LogNavigator)(nil)
	_ ports.Navigator = (*NavRecorder)(nil)
)
