package progress

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"
)

// DefaultSubject is the NATS subject progress events are published on.
const DefaultSubject = "entityloader.progress.updated"

// Publisher is the subset of *nats.Conn the reporter needs.
type Publisher interface {
	Publish(subject string, data []byte) error
}

var _ Publisher = (*nats.Conn)(nil)

// NATSReporter publishes each event as JSON on a NATS subject.
type NATSReporter struct {
	pub     Publisher
	subject string
}

// NewNATSReporter creates a reporter publishing on subject, or DefaultSubject
// when subject is empty.
func NewNATSReporter(pub Publisher, subject string) *NATSReporter {
	if subject == "" {
		subject = DefaultSubject
	}
	return &NATSReporter{pub: pub, subject: subject}
}

// Report publishes ev. Without a publisher it does nothing.
func (r *NATSReporter) Report(ctx context.Context, ev Event) error {
	if r.pub == nil {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal progress event: %w", err)
	}
	if err := r.pub.Publish(r.subject, data); err != nil {
		return fmt.Errorf("publish progress event: %w", err)
	}
	return nil
}

// Connect dials a NATS server for progress publishing.
func Connect(url string) (*nats.Conn, error) {
	conn, err := nats.Connect(url, nats.Name("entityloader"))
	if err != nil {
		return nil, fmt.Errorf("connect to NATS: %w", err)
	}
	return conn, nil
}
