package ports

import "github.com/plantdesk/portalctl/internal/core/domain"

// Observer receives every session value emitted after registration, in
// emission order, starting with the value current at subscription time.
type Observer func(*domain.User)

// Session is the process-wide broadcast cell holding the latest
// authenticated user, or nil when no session is known.
type Session interface {
	// Current returns a synchronous snapshot of the latest value.
	Current() *domain.User
	// Set publishes a new value to all subscribed observers before
	// returning. It is the only mutator and is called exclusively by the
	// auth service.
	Set(user *domain.User)
	// Subscribe registers an observer and immediately delivers the current
	// value (replay-latest). The returned function unsubscribes.
	Subscribe(fn Observer) (unsubscribe func())
}
