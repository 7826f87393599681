package ports

import "context"

// Mailer dispatches transactional email. Implementations carry no business
// logic: recipient plus HTML body in, success or failure out.
type Mailer interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}
