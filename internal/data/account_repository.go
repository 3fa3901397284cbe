package data

import (
	"context"

	"classsync/internal/model"

	"github.com/georgysavva/scany/v2/pgxscan"
)

const profileColumns = `id, full_name, is_admin, is_banned, enrolled_classes, last_seen`

type AccountRepository struct {
	db Querier
}

func NewAccountRepository(db Querier) *AccountRepository {
	return &AccountRepository{db: db}
}

// CreateAccount stores the credentials and the profile in one statement. The
// very first profile becomes an admin.
func (r *AccountRepository) CreateAccount(ctx context.Context, input *model.RepositoryCreateAccountInput) (*model.Profile, error) {
	query := `
WITH account AS (
	INSERT INTO accounts (id, email, password_hash)
	VALUES ($1, $2, $3)
	RETURNING id
)
INSERT INTO profiles (id, full_name, is_admin)
SELECT account.id, $4, NOT EXISTS (SELECT 1 FROM profiles)
FROM account
RETURNING ` + profileColumns

	profile := &model.Profile{}
	err := pgxscan.Get(ctx, r.db, profile, query, input.ID, input.Email, input.PasswordHash, input.FullName)
	if err != nil {
		return nil, handleError(err)
	}
	return profile, nil
}

func (r *AccountRepository) GetAccountByEmail(ctx context.Context, email string) (*model.Account, error) {
	query := `SELECT id, email, password_hash FROM accounts WHERE lower(email) = lower($1)`
	account := &model.Account{}
	if err := pgxscan.Get(ctx, r.db, account, query, email); err != nil {
		return nil, handleError(err)
	}
	return account, nil
}
