package integration

import (
	"context"
	"sort"
	"sync"

	"github.com/plnalaca/pera/internal/core/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// --- In-Memory User Repo ---

type inMemoryUserRepo struct {
	mu    sync.RWMutex
	users map[string]*domain.User
}

func newInMemoryUserRepo() *inMemoryUserRepo {
	return &inMemoryUserRepo{users: make(map[string]*domain.User)}
}

func (r *inMemoryUserRepo) Create(ctx context.Context, tx pgx.Tx, u *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[u.WalletCode]; ok {
		// Mirrors the wallet_code primary key constraint.
		return &pgconn.PgError{Code: "23505", ConstraintName: "users_pkey"}
	}
	copied := *u
	r.users[u.WalletCode] = &copied
	return nil
}

func (r *inMemoryUserRepo) GetByWalletCode(ctx context.Context, walletCode string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[walletCode]
	if !ok {
		return nil, nil
	}
	copied := *u
	return &copied, nil
}

// --- In-Memory Lesson Repo ---

type inMemoryLessonRepo struct {
	mu      sync.RWMutex
	nextID  int64
	records []domain.LessonRecord
}

func newInMemoryLessonRepo() *inMemoryLessonRepo {
	return &inMemoryLessonRepo{nextID: 1}
}

func (r *inMemoryLessonRepo) Create(ctx context.Context, tx pgx.Tx, rec *domain.LessonRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec.ID = r.nextID
	r.nextID++
	r.records = append(r.records, *rec)
	return nil
}

func (r *inMemoryLessonRepo) ListByWalletCode(ctx context.Context, walletCode string) ([]domain.LessonRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.LessonRecord, 0)
	for _, rec := range r.records {
		if rec.WalletCode == walletCode {
			out = append(out, rec)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].CreationTime.Equal(out[j].CreationTime) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreationTime.Before(out[j].CreationTime)
	})
	return out, nil
}

// --- In-Memory Transactor ---

type noopTx struct{ pgx.Tx }

func (noopTx) Commit(_ context.Context) error   { return nil }
func (noopTx) Rollback(_ context.Context) error { return nil }

type inMemoryTransactor struct{}

func newInMemoryTransactor() *inMemoryTransactor { return &inMemoryTransactor{} }

func (t *inMemoryTransactor) Begin(ctx context.Context) (pgx.Tx, error) {
	return noopTx{}, nil
}

// --- In-Memory Store Health ---

type inMemoryStoreHealth struct{}

func (inMemoryStoreHealth) Ping(ctx context.Context) error { return nil }

func (inMemoryStoreHealth) ServerVersion(ctx context.Context) (string, error) {
	return "PostgreSQL 16.3 (in-memory)", nil
}
