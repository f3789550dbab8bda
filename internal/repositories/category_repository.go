package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type CategoryRepository struct {
	DB *pgxpool.Pool
}

func NewCategoryRepository(db *pgxpool.Pool) *CategoryRepository {
	return &CategoryRepository{DB: db}
}

// Create inserts a category label. Duplicate inserts are a no-op.
func (r *CategoryRepository) Create(ctx context.Context, label string) error {
	_, err := r.DB.Exec(ctx,
		`INSERT INTO categories(label) VALUES($1) ON CONFLICT (label) DO NOTHING`, label)
	return err
}

// List returns all category labels ordered alphabetically
func (r *CategoryRepository) List(ctx context.Context) ([]string, error) {
	rows, err := r.DB.Query(ctx, `SELECT label FROM categories ORDER BY label`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var labels []string
	for rows.Next() {
		var label string
		if err := rows.Scan(&label); err != nil {
			return nil, err
		}
		labels = append(labels, label)
	}
	return labels, rows.Err()
}

func (r *CategoryRepository) Delete(ctx context.Context, label string) error {
	_, err := r.DB.Exec(ctx, `DELETE FROM categories WHERE label=$1`, label)
	return err
}
