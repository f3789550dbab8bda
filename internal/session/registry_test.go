package session

import (
	"sync"
	"testing"

	"factory-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubFlow struct{ name string }

func (f stubFlow) Name() string { return f.name }

func TestRegistryLifecycle(t *testing.T) {
	r := NewRegistry()

	_, ok := r.Lookup(1)
	assert.False(t, ok)

	s := r.Create(1, stubFlow{name: "start"})
	require.NotNil(t, s)
	assert.Equal(t, int64(1), s.Identity)
	assert.Nil(t, s.Account)
	assert.Equal(t, 1, r.Len())

	got, ok := r.Lookup(1)
	require.True(t, ok)
	assert.Same(t, s, got)

	// creating again replaces the old session
	s2 := r.Create(1, stubFlow{name: "restart"})
	got, _ = r.Lookup(1)
	assert.Same(t, s2, got)
	assert.Equal(t, 1, r.Len())

	r.Evict(1)
	_, ok = r.Lookup(1)
	assert.False(t, ok)
	assert.Equal(t, 0, r.Len())
}

func TestAdminIdentities(t *testing.T) {
	r := NewRegistry()

	r.Create(1, stubFlow{}) // unauthenticated
	worker := r.Create(2, stubFlow{})
	worker.Account = &AccountRef{Login: "w1", Name: "Vera", Role: models.RoleWorker}
	admin := r.Create(3, stubFlow{})
	admin.Account = &AccountRef{Login: "boss", Name: "Olga", Role: models.RoleAdmin}

	ids := r.AdminIdentities()
	require.Len(t, ids, 1)
	assert.Equal(t, int64(3), ids[0])
}

func TestRegistryConcurrentAccess(t *testing.T) {
	r := NewRegistry()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			r.Create(id, stubFlow{})
			r.Lookup(id)
			r.AdminIdentities()
			r.Evict(id)
		}(int64(i))
	}
	wg.Wait()
	assert.Equal(t, 0, r.Len())
}
