package domain

// Plant is an organizational site that owns submissions and to which
// admin users are assigned.
type Plant struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Code     string `json:"code,omitempty"`
	Location string `json:"location,omitempty"`
}
