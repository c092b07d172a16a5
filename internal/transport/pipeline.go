// Package transport implements the client request pipeline: an explicit
// ordered list of middleware stages applied to every outgoing call to the
// portal backend. Stage composition order is configuration, not hardwired
// control flow; the stages themselves are independent of one another.
package transport

import "net/http"

// Doer sends a request and returns the response, mirroring
// http.Client.Do so the final stage can be the real network send.
type Doer func(*http.Request) (*http.Response, error)

// Middleware wraps a Doer with one pipeline stage.
type Middleware func(next Doer) Doer

// Chain composes the stages around base in declared order: the first
// middleware sees the request first and the response last.
func Chain(base Doer, stages ...Middleware) Doer {
	d := base
	for i := len(stages) - 1; i >= 0; i-- {
		d = stages[i](d)
	}
	return d
}
