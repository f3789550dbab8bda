package repositories

import (
	"context"

	"factory-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type ProductionRepository struct {
	DB *pgxpool.Pool
}

func NewProductionRepository(db *pgxpool.Pool) *ProductionRepository {
	return &ProductionRepository{DB: db}
}

// Create inserts a new production entry and fills in the assigned id
func (r *ProductionRepository) Create(ctx context.Context, e *models.ProductionEntry) error {
	return r.DB.QueryRow(ctx,
		`INSERT INTO productions(owner, category, quantity, ts, model)
         VALUES($1, $2, $3, $4, $5)
         RETURNING id`,
		e.Owner, e.Category, e.Quantity, e.Timestamp, e.Model,
	).Scan(&e.ID)
}

// List returns all entries ordered by timestamp descending
func (r *ProductionRepository) List(ctx context.Context) ([]*models.ProductionEntry, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, owner, category, quantity, ts, COALESCE(model, '')
         FROM productions ORDER BY ts DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*models.ProductionEntry
	for rows.Next() {
		var e models.ProductionEntry
		if err := rows.Scan(&e.ID, &e.Owner, &e.Category, &e.Quantity, &e.Timestamp, &e.Model); err != nil {
			return nil, err
		}
		entries = append(entries, &e)
	}
	return entries, rows.Err()
}

// Update applies a partial update; nil fields are left untouched
func (r *ProductionRepository) Update(ctx context.Context, id int, upd models.EntryUpdate) error {
	if upd.Category != nil {
		if _, err := r.DB.Exec(ctx,
			`UPDATE productions SET category=$1 WHERE id=$2`, *upd.Category, id); err != nil {
			return err
		}
	}
	if upd.Quantity != nil {
		if _, err := r.DB.Exec(ctx,
			`UPDATE productions SET quantity=$1 WHERE id=$2`, *upd.Quantity, id); err != nil {
			return err
		}
	}
	if upd.Model != nil {
		if _, err := r.DB.Exec(ctx,
			`UPDATE productions SET model=$1 WHERE id=$2`, *upd.Model, id); err != nil {
			return err
		}
	}
	return nil
}

func (r *ProductionRepository) Delete(ctx context.Context, id int) error {
	_, err := r.DB.Exec(ctx, `DELETE FROM productions WHERE id=$1`, id)
	return err
}
