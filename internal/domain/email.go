package domain

import "context"

// EmailSender delivers the owner's notification for a contact submission.
// Implementations may call a remote API, so ctx bounds the request.
type EmailSender interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}
