package mail

import (
	"context"
	"errors"
)

type Message struct {
	To       string
	Subject  string
	HTMLBody string
}

// transport is unusable until credentials are supplied
var ErrNotConfigured = errors.New("mail transport not configured")

// Mailer is the outbound transport boundary. Send returns an opaque
// transport-provided message id on success.
type Mailer interface {
	Send(ctx context.Context, msg Message) (string, error)
}
