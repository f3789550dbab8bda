// Package notify pushes new-entry alerts to every live admin session.
// Delivery is best-effort: a failed recipient is logged and skipped and
// never rolls back the write that triggered the alert.
package notify

import (
	"fmt"
	"log"

	"factory-backend/internal/metrics"
	"factory-backend/internal/models"
	"factory-backend/internal/session"
)

// Sender delivers a plain text message to a chat identity. Implemented by
// the transport adapter.
type Sender interface {
	Send(identity int64, text string) error
}

type Notifier struct {
	registry *session.Registry
	sender   Sender
}

func New(registry *session.Registry, sender Sender) *Notifier {
	return &Notifier{registry: registry, sender: sender}
}

// EntryCreated fans an alert out to all admin sessions. submitter is the
// messenger handle of the worker who confirmed the entry.
func (n *Notifier) EntryCreated(e *models.ProductionEntry, submitter string) {
	if submitter == "" {
		submitter = "n/a"
	}
	text := fmt.Sprintf(
		"New production entry\nWorker: %s\nCategory: %s\nQuantity: %s\nTime: %s\nSubmitted by: @%s",
		e.Owner, e.Category, e.Quantity, e.Timestamp, submitter,
	)

	for _, id := range n.registry.AdminIdentities() {
		if err := n.sender.Send(id, text); err != nil {
			log.Printf("[Notify] delivery to admin %d failed: %v", id, err)
			metrics.NotificationsTotal.WithLabelValues("failed").Inc()
			continue
		}
		metrics.NotificationsTotal.WithLabelValues("sent").Inc()
	}
}
