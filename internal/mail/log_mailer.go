package mail

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// LogMailer is the dev/test transport: it logs the send instead of talking to
// a provider and hands back a generated message id.
type LogMailer struct{}

func NewLogMailer() *LogMailer { return &LogMailer{} }

func (m *LogMailer) Send(ctx context.Context, msg Message) (string, error) {
	// Optional: simulate slow provider
	if msStr := os.Getenv("MAILER_SLEEP_MS"); msStr != "" {
		ms, _ := strconv.Atoi(msStr)
		if ms > 0 {
			select {
			case <-time.After(time.Duration(ms) * time.Millisecond):
			case <-ctx.Done():
				return "", ctx.Err()
			}
		}
	}

	// Optional: simulate provider outage
	if os.Getenv("MAILER_FAIL") == "1" {
		return "", fmt.Errorf("provider down (simulated)")
	}

	id := uuid.NewString()

	log.Printf("mail.send to=%s subject=%q message_id=%s bytes=%d",
		msg.To, msg.Subject, id, len(msg.HTMLBody),
	)

	return id, nil
}
