package notification

import "context"

// EmailMessage is one outbound mail: the core composes content, delivery
// happens elsewhere.
type EmailMessage struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
}

// NotificationService enqueues outbound email. Enqueue is fire-and-forget
// from the caller's perspective: delivery happens asynchronously and a
// delivery failure never unwinds a booking decision already recorded.
type NotificationService interface {
	EnqueueEmail(ctx context.Context, msg EmailMessage) error
}

// Mailer performs the actual delivery of one message.
type Mailer interface {
	Send(to, subject, html string) error
}
