package service

// Button is an inline action offered alongside a notification. Data
// carries an encoded action token.
type Button struct {
	Label string
	Data  string
}

// Notifier delivers outbound messages over the chat transport.
// Deliveries are best-effort: callers swallow errors and never block
// their primary result on them.
type Notifier interface {
	Notify(recipientID int64, text string, buttons ...Button) error
}
