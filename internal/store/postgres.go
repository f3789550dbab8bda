package store

import (
	"context"
	"errors"
	"time"

	"factory-backend/internal/cache"
	"factory-backend/internal/models"
	"factory-backend/internal/repositories"

	"github.com/jackc/pgx/v5"
)

// opTimeout bounds every store call so a stalled database surfaces as a
// StoreError instead of hanging the dispatch loop.
const opTimeout = 5 * time.Second

// Postgres implements Store on top of the pgx repositories.
type Postgres struct {
	Accounts    *repositories.AccountRepository
	Productions *repositories.ProductionRepository
	Categories  *repositories.CategoryRepository
}

func NewPostgres(
	accounts *repositories.AccountRepository,
	productions *repositories.ProductionRepository,
	categories *repositories.CategoryRepository,
) *Postgres {
	return &Postgres{
		Accounts:    accounts,
		Productions: productions,
		Categories:  categories,
	}
}

func bound(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, opTimeout)
}

func (s *Postgres) GetAccount(ctx context.Context, login string) (*models.Account, error) {
	ctx, cancel := bound(ctx)
	defer cancel()
	acct, err := s.Accounts.Get(ctx, login)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAccountNotFound
		}
		return nil, &StoreError{Op: "get account", Err: err}
	}
	return acct, nil
}

func (s *Postgres) ListAccounts(ctx context.Context) ([]*models.Account, error) {
	ctx, cancel := bound(ctx)
	defer cancel()
	accounts, err := s.Accounts.List(ctx)
	if err != nil {
		return nil, &StoreError{Op: "list accounts", Err: err}
	}
	return accounts, nil
}

func (s *Postgres) CreateAccount(ctx context.Context, a *models.Account) error {
	ctx, cancel := bound(ctx)
	defer cancel()
	if err := s.Accounts.Create(ctx, a); err != nil {
		return &StoreError{Op: "create account", Err: err}
	}
	return nil
}

func (s *Postgres) UpdateAccount(ctx context.Context, login string, upd models.AccountUpdate) error {
	ctx, cancel := bound(ctx)
	defer cancel()
	if err := s.Accounts.Update(ctx, login, upd); err != nil {
		return &StoreError{Op: "update account", Err: err}
	}
	return nil
}

func (s *Postgres) DeleteAccount(ctx context.Context, login string) error {
	ctx, cancel := bound(ctx)
	defer cancel()
	if err := s.Accounts.Delete(ctx, login); err != nil {
		return &StoreError{Op: "delete account", Err: err}
	}
	return nil
}

func (s *Postgres) ListCategories(ctx context.Context) ([]string, error) {
	if labels, ok := cache.GetCachedCategories(ctx); ok {
		return labels, nil
	}
	boundCtx, cancel := bound(ctx)
	defer cancel()
	labels, err := s.Categories.List(boundCtx)
	if err != nil {
		return nil, &StoreError{Op: "list categories", Err: err}
	}
	cache.CacheCategories(ctx, labels)
	return labels, nil
}

func (s *Postgres) CreateCategory(ctx context.Context, label string) error {
	boundCtx, cancel := bound(ctx)
	defer cancel()
	if err := s.Categories.Create(boundCtx, label); err != nil {
		return &StoreError{Op: "create category", Err: err}
	}
	cache.InvalidateCategories(ctx)
	return nil
}

func (s *Postgres) DeleteCategory(ctx context.Context, label string) error {
	boundCtx, cancel := bound(ctx)
	defer cancel()
	if err := s.Categories.Delete(boundCtx, label); err != nil {
		return &StoreError{Op: "delete category", Err: err}
	}
	cache.InvalidateCategories(ctx)
	return nil
}

func (s *Postgres) CreateEntry(ctx context.Context, e *models.ProductionEntry) (int, error) {
	ctx, cancel := bound(ctx)
	defer cancel()
	if err := s.Productions.Create(ctx, e); err != nil {
		return 0, &StoreError{Op: "create entry", Err: err}
	}
	return e.ID, nil
}

func (s *Postgres) ListEntries(ctx context.Context) ([]*models.ProductionEntry, error) {
	ctx, cancel := bound(ctx)
	defer cancel()
	entries, err := s.Productions.List(ctx)
	if err != nil {
		return nil, &StoreError{Op: "list entries", Err: err}
	}
	return entries, nil
}

func (s *Postgres) UpdateEntry(ctx context.Context, id int, upd models.EntryUpdate) error {
	ctx, cancel := bound(ctx)
	defer cancel()
	if err := s.Productions.Update(ctx, id, upd); err != nil {
		return &StoreError{Op: "update entry", Err: err}
	}
	return nil
}

func (s *Postgres) DeleteEntry(ctx context.Context, id int) error {
	ctx, cancel := bound(ctx)
	defer cancel()
	if err := s.Productions.Delete(ctx, id); err != nil {
		return &StoreError{Op: "delete entry", Err: err}
	}
	return nil
}
