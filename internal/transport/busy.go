package transport

import (
	"context"
	"net/http"
	"sync"

	"github.com/plantdesk/portalctl/internal/metrics"
)

type skipBusyKey struct{}

// WithSkipBusy marks a request context so the busy-tracking stage ignores
// it. Used by background polling that must not light the global spinner.
func WithSkipBusy(ctx context.Context) context.Context {
	return context.WithValue(ctx, skipBusyKey{}, true)
}

func skipBusy(ctx context.Context) bool {
	v, _ := ctx.Value(skipBusyKey{}).(bool)
	return v
}

// BusyTracker holds the set of in-flight requests keyed by method+URL.
// The global busy indicator is true iff the set is non-empty.
type BusyTracker struct {
	mu      sync.Mutex
	pending map[string]struct{}
}

func NewBusyTracker() *BusyTracker {
	return &BusyTracker{pending: make(map[string]struct{})}
}

// Busy reports whether any tracked request is in flight.
func (t *BusyTracker) Busy() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.pending) > 0
}

func (t *BusyTracker) add(key string) {
	t.mu.Lock()
	t.pending[key] = struct{}{}
	metrics.RequestsInFlight.Set(float64(len(t.pending)))
	t.mu.Unlock()
}

func (t *BusyTracker) remove(key string) {
	t.mu.Lock()
	delete(t.pending, key)
	metrics.RequestsInFlight.Set(float64(len(t.pending)))
	t.mu.Unlock()
}

// TrackBusy registers the request before sending and removes it when the
// request settles, success or failure. The removal runs in a defer so no
// failure path can leak an entry.
func TrackBusy(tracker *BusyTracker) Middleware {
	return func(next Doer) Doer {
		return func(req *http.Request) (resp *http.Response, err error) {
			if skipBusy(req.Context()) {
				return next(req)
			}

			key := req.Method + " " + req.URL.String()
			tracker.add(key)
			defer tracker.remove(key)

			return next(req)
		}
	}
}
