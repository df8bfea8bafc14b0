package account

import (
	"context"
	"errors"
	"time"

	"github.com/Shouganaii/tdd-clean-go-api/internal/core/domain/account"
	c "github.com/Shouganaii/tdd-clean-go-api/internal/core/domain/common"
	e "github.com/Shouganaii/tdd-clean-go-api/internal/core/domain/errors"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
)

const PG_UNIQUE_CONSTRAINT_ERR_CODE = "23505"
const EMAIL_CONSTRAINT_NAME = "account_email_idx"

// DB is the subset of pgx methods the repository needs. Both *pgxpool.Pool
// and pgx.Tx satisfy it.
type DB interface {
	Exec(ctx context.Context, sql string, arguments ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

type PgxAccountRepository struct {
	db DB
}

func NewPgxAccountRepository(db DB) *PgxAccountRepository {
	if db == nil {
		panic(e.NewNilArgumentError("db"))
	}
	return &PgxAccountRepository{db: db}
}

const createAccount = `
INSERT INTO account (name, email, password_hash, created_at)
VALUES ($1, $2, $3, $4)
RETURNING id, name, email, password_hash, created_at
`

func (r *PgxAccountRepository) Create(
	ctx context.Context,
	input account.CreateAccountInput,
) (a account.Account, err error) {
	row := r.db.QueryRow(
		ctx,
		createAccount,
		input.Name,
		string(input.Email),
		string(input.PasswordHash),
		input.CreatedAt,
	)
	a, err = decodeAccount(row)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == PG_UNIQUE_CONSTRAINT_ERR_CODE && pgErr.ConstraintName == EMAIL_CONSTRAINT_NAME {
			return account.Account{}, account.ErrEmailAlreadyExists
		}
	}
	if err != nil {
		return account.Account{}, err
	}
	return a, nil
}

const getAccountByEmail = `
SELECT id, name, email, password_hash, created_at
FROM account
WHERE email = $1
`

func (r *PgxAccountRepository) GetByEmail(ctx context.Context, email c.Email) (a account.Account, err error) {
	row := r.db.QueryRow(ctx, getAccountByEmail, string(email))
	a, err = decodeAccount(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return account.Account{}, account.ErrAccountDoesNotExist
	}
	if err != nil {
		return account.Account{}, err
	}
	return a, nil
}

func decodeAccount(row pgx.Row) (a account.Account, err error) {
	var id int64
	var name string
	var email string
	var passwordHash string
	var createdAt time.Time

	err = row.Scan(&id, &name, &email, &passwordHash, &createdAt)
	if err != nil {
		return a, err
	}
	a = account.Account{
		ID:           account.ID(id),
		Name:         name,
		Email:        c.Email(email),
		PasswordHash: account.PasswordHash(passwordHash),
		CreatedAt:    createdAt,
	}
	err = a.Validate()
	if err != nil {
		return a, err
	}
	return a, nil
}
