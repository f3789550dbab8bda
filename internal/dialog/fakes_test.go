package dialog

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"factory-backend/internal/models"
	"factory-backend/internal/store"
)

// fakeStore is an in-memory Store that can be forced to fail.
type fakeStore struct {
	accounts   map[string]*models.Account
	categories []string
	entries    []*models.ProductionEntry
	nextID     int

	failWith error // when set, every call returns this wrapped as a StoreError
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		accounts: make(map[string]*models.Account),
		nextID:   1,
	}
}

func (f *fakeStore) fail() error {
	if f.failWith != nil {
		return &store.StoreError{Op: "fake", Err: f.failWith}
	}
	return nil
}

func (f *fakeStore) GetAccount(_ context.Context, login string) (*models.Account, error) {
	if err := f.fail(); err != nil {
		return nil, err
	}
	a, ok := f.accounts[login]
	if !ok {
		return nil, store.ErrAccountNotFound
	}
	cp := *a
	return &cp, nil
}

func (f *fakeStore) ListAccounts(_ context.Context) ([]*models.Account, error) {
	if err := f.fail(); err != nil {
		return nil, err
	}
	logins := make([]string, 0, len(f.accounts))
	for l := range f.accounts {
		logins = append(logins, l)
	}
	sort.Strings(logins)
	out := make([]*models.Account, 0, len(logins))
	for _, l := range logins {
		cp := *f.accounts[l]
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeStore) CreateAccount(_ context.Context, a *models.Account) error {
	if err := f.fail(); err != nil {
		return err
	}
	if _, exists := f.accounts[a.Login]; exists {
		return &store.StoreError{Op: "create account", Err: errors.New("duplicate login")}
	}
	cp := *a
	if cp.Role == "" {
		cp.Role = models.RoleWorker
	}
	f.accounts[a.Login] = &cp
	return nil
}

func (f *fakeStore) UpdateAccount(_ context.Context, login string, upd models.AccountUpdate) error {
	if err := f.fail(); err != nil {
		return err
	}
	a, ok := f.accounts[login]
	if !ok {
		return store.ErrAccountNotFound
	}
	if upd.Name != nil {
		a.Name = *upd.Name
	}
	if upd.Secret != nil {
		a.Secret = *upd.Secret
	}
	if upd.Blocked != nil {
		a.Blocked = *upd.Blocked
	}
	if upd.ChatID != nil {
		a.ChatID = upd.ChatID
	}
	return nil
}

func (f *fakeStore) DeleteAccount(_ context.Context, login string) error {
	if err := f.fail(); err != nil {
		return err
	}
	delete(f.accounts, login)
	return nil
}

func (f *fakeStore) ListCategories(_ context.Context) ([]string, error) {
	if err := f.fail(); err != nil {
		return nil, err
	}
	out := make([]string, len(f.categories))
	copy(out, f.categories)
	return out, nil
}

func (f *fakeStore) CreateCategory(_ context.Context, label string) error {
	if err := f.fail(); err != nil {
		return err
	}
	for _, c := range f.categories {
		if c == label {
			return nil
		}
	}
	f.categories = append(f.categories, label)
	sort.Strings(f.categories)
	return nil
}

func (f *fakeStore) DeleteCategory(_ context.Context, label string) error {
	if err := f.fail(); err != nil {
		return err
	}
	for i, c := range f.categories {
		if c == label {
			f.categories = append(f.categories[:i], f.categories[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeStore) CreateEntry(_ context.Context, e *models.ProductionEntry) (int, error) {
	if err := f.fail(); err != nil {
		return 0, err
	}
	e.ID = f.nextID
	f.nextID++
	cp := *e
	f.entries = append(f.entries, &cp)
	return e.ID, nil
}

func (f *fakeStore) ListEntries(_ context.Context) ([]*models.ProductionEntry, error) {
	if err := f.fail(); err != nil {
		return nil, err
	}
	// newest first, like the real adapter
	out := make([]*models.ProductionEntry, len(f.entries))
	for i, e := range f.entries {
		cp := *e
		out[len(f.entries)-1-i] = &cp
	}
	return out, nil
}

func (f *fakeStore) UpdateEntry(_ context.Context, id int, upd models.EntryUpdate) error {
	if err := f.fail(); err != nil {
		return err
	}
	for _, e := range f.entries {
		if e.ID == id {
			if upd.Category != nil {
				e.Category = *upd.Category
			}
			if upd.Quantity != nil {
				e.Quantity = *upd.Quantity
			}
			if upd.Model != nil {
				e.Model = *upd.Model
			}
			return nil
		}
	}
	return &store.StoreError{Op: "update entry", Err: fmt.Errorf("no entry %d", id)}
}

func (f *fakeStore) DeleteEntry(_ context.Context, id int) error {
	if err := f.fail(); err != nil {
		return err
	}
	for i, e := range f.entries {
		if e.ID == id {
			f.entries = append(f.entries[:i], f.entries[i+1:]...)
			return nil
		}
	}
	return nil
}

// fakeSender records notification deliveries.
type fakeSender struct {
	sent []sentMessage
	err  error
}

type sentMessage struct {
	identity int64
	text     string
}

func (f *fakeSender) Send(identity int64, text string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sentMessage{identity: identity, text: text})
	return nil
}
