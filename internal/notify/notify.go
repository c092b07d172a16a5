// Package notify provides the default ports.Notifier used by the CLI: the
// toast surface of the browser UI collapses to levelled log lines here.
package notify

import (
	"github.com/rs/zerolog"

	"github.com/plantdesk/portalctl/internal/core/ports"
)

// LogNotifier writes notifications through zerolog.
type LogNotifier struct {
	log zerolog.Logger
}

func NewLogNotifier(log zerolog.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) Info(msg string)  { n.log.Info().Msg(msg) }
func (n *LogNotifier) Warn(msg string)  { n.log.Warn().Msg(msg) }
func (n *LogNotifier) Error(msg string) { n.log.Error().Msg(msg) }

// Recorder captures notifications for tests.
type Recorder struct {
	Infos  []string
	Warns  []string
	Errors []string
}

func (r *Recorder) Info(msg string)  { r.Infos = append(r.Infos, msg) }
func (r *Recorder) Warn(msg string)  { r.Warns = append(r.Warns, msg) }
func (r *Recorder) Error(msg string) { r.Errors = append(r.Errors, msg) }

var (
	_ ports.Notifier = (*LogNotifier)(nil)
	_ ports.Notifier = (*Recorder)(nil)
)
