package ports

// Navigator abstracts view navigation for the pieces of the core that must
// trigger redirects (the 401 pipeline stage and the route guards). The
// routing shell itself is out of scope.
type Navigator interface {
	// Navigate switches to the view at path.
	Navigate(path string)
	// NavigateWithReturn switches to path carrying the originally
	// requested target so it can be resumed after login.
	NavigateWithReturn(path, returnURL string)
}
