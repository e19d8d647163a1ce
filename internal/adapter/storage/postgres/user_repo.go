package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/plnalaca/pera/internal/core/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// pgUniqueViolation is the SQLSTATE for unique constraint violations.
const pgUniqueViolation = "23505"

// UserRepo implements ports.UserRepository.
type UserRepo struct {
	pool Pool
}

// NewUserRepo creates a new UserRepo.
func NewUserRepo(pool Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

// Create inserts a new user within the registration transaction.
func (r *UserRepo) Create(ctx context.Context, tx pgx.Tx, u *domain.User) error {
	query := `INSERT INTO users (wallet_code, name, surname, created_at)
		VALUES ($1, $2, $3, $4)`

	_, err := tx.Exec(ctx, query, u.WalletCode, u.Name, u.Surname, u.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByWalletCode fetches a user by its normalized wallet code.
// Returns (nil, nil) when no user exists.
func (r *UserRepo) GetByWalletCode(ctx context.Context, walletCode string) (*domain.User, error) {
	query := `SELECT wallet_code, name, surname, created_at
		FROM users WHERE wallet_code = $1`

	u := &domain.User{}
	err := r.pool.QueryRow(ctx, query, walletCode).Scan(
		&u.WalletCode, &u.Name, &u.Surname, &u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by wallet_code: %w", err)
	}
	return u, nil
}

// IsUniqueViolation reports whether err stems from the wallet_code
// primary key. The schema constraint closes the check-then-insert race
// between concurrent registrations of the same wallet.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
