package notify

import (
	"errors"
	"testing"

	"factory-backend/internal/models"
	"factory-backend/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubFlow struct{}

func (stubFlow) Name() string { return "stub" }

type recordingSender struct {
	sent    map[int64]string
	failFor map[int64]bool
}

func (s *recordingSender) Send(identity int64, text string) error {
	if s.failFor[identity] {
		return errors.New("delivery failed")
	}
	if s.sent == nil {
		s.sent = make(map[int64]string)
	}
	s.sent[identity] = text
	return nil
}

func setup() (*session.Registry, *recordingSender, *Notifier) {
	registry := session.NewRegistry()
	sender := &recordingSender{failFor: make(map[int64]bool)}
	return registry, sender, New(registry, sender)
}

func admitAdmin(r *session.Registry, id int64, login string) {
	s := r.Create(id, stubFlow{})
	s.Account = &session.AccountRef{Login: login, Name: login, Role: models.RoleAdmin}
}

func TestEntryCreatedReachesAllAdmins(t *testing.T) {
	registry, sender, n := setup()
	admitAdmin(registry, 10, "boss1")
	admitAdmin(registry, 20, "boss2")
	worker := registry.Create(30, stubFlow{})
	worker.Account = &session.AccountRef{Login: "w1", Name: "Vera", Role: models.RoleWorker}

	n.EntryCreated(&models.ProductionEntry{
		Owner: "Vera", Category: "Box-12", Quantity: "5", Timestamp: "2024-03-05 09:00:00",
	}, "vera_tg")

	require.Len(t, sender.sent, 2)
	assert.Contains(t, sender.sent[10], "Vera")
	assert.Contains(t, sender.sent[10], "Box-12")
	assert.Contains(t, sender.sent[10], "@vera_tg")
	_, workerGotIt := sender.sent[30]
	assert.False(t, workerGotIt)
}

func TestEntryCreatedSkipsFailedRecipient(t *testing.T) {
	registry, sender, n := setup()
	admitAdmin(registry, 10, "boss1")
	admitAdmin(registry, 20, "boss2")
	sender.failFor[10] = true

	n.EntryCreated(&models.ProductionEntry{Owner: "Vera", Category: "A", Quantity: "1"}, "")

	// the failure never blocks the remaining recipients
	require.Len(t, sender.sent, 1)
	assert.Contains(t, sender.sent[20], "Submitted by: @n/a")
}

func TestEntryCreatedNoAdminsOnline(t *testing.T) {
	_, sender, n := setup()
	n.EntryCreated(&models.ProductionEntry{Owner: "Vera", Category: "A", Quantity: "1"}, "vera_tg")
	assert.Empty(t, sender.sent)
}
