package repositories

import (
	"context"

	"factory-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type AccountRepository struct {
	DB *pgxpool.Pool
}

func NewAccountRepository(db *pgxpool.Pool) *AccountRepository {
	return &AccountRepository{DB: db}
}

func (r *AccountRepository) Create(ctx context.Context, a *models.Account) error {
	if a.Role == "" {
		a.Role = models.RoleWorker // Default role
	}
	_, err := r.DB.Exec(ctx,
		`INSERT INTO accounts(login, secret, name, role, blocked, chat_id)
         VALUES($1, $2, $3, $4, $5, $6)`,
		a.Login, a.Secret, a.Name, a.Role, a.Blocked, a.ChatID,
	)
	return err
}

func (r *AccountRepository) Get(ctx context.Context, login string) (*models.Account, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT login, secret, name, role, blocked, chat_id
         FROM accounts WHERE login=$1`, login)

	var acct models.Account
	err := row.Scan(&acct.Login, &acct.Secret, &acct.Name, &acct.Role, &acct.Blocked, &acct.ChatID)
	if err != nil {
		return nil, err
	}
	return &acct, nil
}

// List returns all accounts ordered by login
func (r *AccountRepository) List(ctx context.Context) ([]*models.Account, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT login, secret, name, role, blocked, chat_id
         FROM accounts ORDER BY login`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var accounts []*models.Account
	for rows.Next() {
		var acct models.Account
		if err := rows.Scan(&acct.Login, &acct.Secret, &acct.Name, &acct.Role, &acct.Blocked, &acct.ChatID); err != nil {
			return nil, err
		}
		accounts = append(accounts, &acct)
	}
	return accounts, rows.Err()
}

// Update applies a partial update; nil fields are left untouched
func (r *AccountRepository) Update(ctx context.Context, login string, upd models.AccountUpdate) error {
	if upd.Name != nil {
		if _, err := r.DB.Exec(ctx,
			`UPDATE accounts SET name=$1 WHERE login=$2`, *upd.Name, login); err != nil {
			return err
		}
	}
	if upd.Secret != nil {
		if _, err := r.DB.Exec(ctx,
			`UPDATE accounts SET secret=$1 WHERE login=$2`, *upd.Secret, login); err != nil {
			return err
		}
	}
	if upd.Blocked != nil {
		if _, err := r.DB.Exec(ctx,
			`UPDATE accounts SET blocked=$1 WHERE login=$2`, *upd.Blocked, login); err != nil {
			return err
		}
	}
	if upd.ChatID != nil {
		if _, err := r.DB.Exec(ctx,
			`UPDATE accounts SET chat_id=$1 WHERE login=$2`, *upd.ChatID, login); err != nil {
			return err
		}
	}
	return nil
}

func (r *AccountRepository) Delete(ctx context.Context, login string) error {
	_, err := r.DB.Exec(ctx, `DELETE FROM accounts WHERE login=$1`, login)
	return err
}
