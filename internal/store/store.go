// Package store defines the narrow CRUD boundary between the dialog layer
// and the persistent record store. The dialog never issues raw queries; it
// calls these operations with fully validated arguments.
package store

import (
	"context"
	"errors"
	"fmt"

	"factory-backend/internal/models"
)

// ErrAccountNotFound is returned by GetAccount when no account matches.
var ErrAccountNotFound = errors.New("account not found")

// StoreError wraps any adapter failure. Callers must treat it as
// "state unchanged, outcome unknown" and must not retry automatically.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store: %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

// Store is the record store adapter consumed by the dialog layer.
// Every call is synchronous and atomic with respect to the store.
type Store interface {
	GetAccount(ctx context.Context, login string) (*models.Account, error)
	ListAccounts(ctx context.Context) ([]*models.Account, error)
	CreateAccount(ctx context.Context, a *models.Account) error
	UpdateAccount(ctx context.Context, login string, upd models.AccountUpdate) error
	DeleteAccount(ctx context.Context, login string) error

	ListCategories(ctx context.Context) ([]string, error)
	CreateCategory(ctx context.Context, label string) error // idempotent
	DeleteCategory(ctx context.Context, label string) error

	CreateEntry(ctx context.Context, e *models.ProductionEntry) (int, error)
	ListEntries(ctx context.Context) ([]*models.ProductionEntry, error)
	UpdateEntry(ctx context.Context, id int, upd models.EntryUpdate) error
	DeleteEntry(ctx context.Context, id int) error
}
