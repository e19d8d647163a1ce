package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/plnalaca/pera/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// LessonRepo implements ports.LessonRepository.
type LessonRepo struct {
	pool Pool
}

// NewLessonRepo creates a new LessonRepo.
func NewLessonRepo(pool Pool) *LessonRepo {
	return &LessonRepo{pool: pool}
}

// Create inserts a lesson record within a database transaction. The
// lesson payload is bound as a JSON parameter; the store assigns the id.
func (r *LessonRepo) Create(ctx context.Context, tx pgx.Tx, rec *domain.LessonRecord) error {
	payload, err := json.Marshal(rec.Lessons)
	if err != nil {
		return fmt.Errorf("marshal lesson payload: %w", err)
	}

	query := `INSERT INTO lessons (wallet_code, creation_time, lesson)
		VALUES ($1, $2, $3)
		RETURNING id`

	if err := tx.QueryRow(ctx, query, rec.WalletCode, rec.CreationTime, payload).Scan(&rec.ID); err != nil {
		return fmt.Errorf("insert lesson record: %w", err)
	}
	return nil
}

// ListByWalletCode fetches all lesson records for a wallet in ascending
// creation-time order. Ties are broken by id, so insertion order holds.
func (r *LessonRepo) ListByWalletCode(ctx context.Context, walletCode string) ([]domain.LessonRecord, error) {
	query := `SELECT id, wallet_code, creation_time, lesson
		FROM lessons WHERE wallet_code = $1
		ORDER BY creation_time ASC, id ASC`

	rows, err := r.pool.Query(ctx, query, walletCode)
	if err != nil {
		return nil, fmt.Errorf("list lesson records: %w", err)
	}
	defer rows.Close()

	records := make([]domain.LessonRecord, 0)
	for rows.Next() {
		var rec domain.LessonRecord
		var payload []byte
		if err := rows.Scan(&rec.ID, &rec.WalletCode, &rec.CreationTime, &payload); err != nil {
			return nil, fmt.Errorf("scan lesson record: %w", err)
		}
		if err := json.Unmarshal(payload, &rec.Lessons); err != nil {
			return nil, fmt.Errorf("unmarshal lesson payload: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate lesson records: %w", err)
	}
	return records, nil
}
