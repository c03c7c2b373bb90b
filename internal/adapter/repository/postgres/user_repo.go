package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/obinna/walletcore/internal/domain"
)

// UserRepository implements usecase.UserRepository on PostgreSQL.
type UserRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

const userColumns = `id, email, first_name, last_name, phone_number, hashed_password, account_number, is_approved, created_at, updated_at`

// Create inserts a new user.
func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	query := `
		INSERT INTO users (` + userColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.pool.Exec(ctx, query,
		user.ID,
		user.Email,
		user.FirstName,
		user.LastName,
		user.PhoneNumber,
		user.HashedPassword,
		user.AccountNumber,
		user.IsApproved,
		user.CreatedAt,
		user.UpdatedAt,
	)

	return err
}

// FindByEmail retrieves a user by email.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return r.scanOne(r.pool.QueryRow(ctx, query, email))
}

// FindByAccountNumber retrieves a user by wallet account number.
func (r *UserRepository) FindByAccountNumber(ctx context.Context, accountNumber string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE account_number = $1`
	return r.scanOne(r.pool.QueryRow(ctx, query, accountNumber))
}

// FindExisting retrieves a user matching either email or phone number.
func (r *UserRepository) FindExisting(ctx context.Context, email, phoneNumber string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1 OR phone_number = $2`
	return r.scanOne(r.pool.QueryRow(ctx, query, email, phoneNumber))
}

// SetApproved updates a user's approval flag.
func (r *UserRepository) SetApproved(ctx context.Context, id string, approved bool) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE users SET is_approved = $2, updated_at = $3 WHERE id = $1`,
		id, approved, time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}

	return nil
}

func (r *UserRepository) scanOne(row pgx.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.FirstName,
		&user.LastName,
		&user.PhoneNumber,
		&user.HashedPassword,
		&user.AccountNumber,
		&user.IsApproved,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}
