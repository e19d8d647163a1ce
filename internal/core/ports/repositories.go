package ports

import (
	"context"

	"github.com/plnalaca/pera/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// UserRepository defines persistence operations for users.
// Create runs inside the registration transaction so the user row and
// its initial lesson row commit or roll back together.
type UserRepository interface {
	Create(ctx context.Context, tx pgx.Tx, user *domain.User) error
	GetByWalletCode(ctx context.Context, walletCode string) (*domain.User, error)
}

// LessonRepository defines persistence operations for lesson records.
type LessonRepository interface {
	Create(ctx context.Context, tx pgx.Tx, record *domain.LessonRecord) error
	ListByWalletCode(ctx context.Context, walletCode string) ([]domain.LessonRecord, error)
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
