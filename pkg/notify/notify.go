// Package notify delivers the short user-facing status messages the
// sync layer emits: imports, skips and failures.
package notify

// Notifier receives status messages. Implementations own their
// delivery failures; a notification that cannot be delivered must
// never fail the operation that produced it.
type Notifier interface {
	Info(msg string)
	Error(msg string)
}

// Null discards all messages. It is the default wherever a Notifier is
// optional.
type Null struct{}

var _ Notifier = Null{}

func (Null) Info(msg string)  {}
func (Null) Error(msg string) {}

// Multi fans each message out to several sinks in order.
type Multi []Notifier

var _ Notifier = Multi{}

func (m Multi) Info(msg string) {
	for _, n := range m {
		n.Info(msg)
	}
}

func (m Multi) Error(msg string) {
	for _, n := range m {
		n.Error(msg)
	}
}
