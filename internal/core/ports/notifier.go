package ports

// Notifier raises user-visible notifications. The toast UI itself is an
// external collaborator; the client core only depends on this contract.
// Every classified request failure produces exactly one notification.
type Notifier interface {
	Info(msg string)
	Warn(msg string)
	Error(msg string)
}
