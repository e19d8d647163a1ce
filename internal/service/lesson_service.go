package service

import (
	"context"
	"fmt"
	"time"

	"github.com/plnalaca/pera/internal/core/domain"
	"github.com/plnalaca/pera/internal/core/ports"
	"github.com/plnalaca/pera/pkg/apperror"

	"github.com/rs/zerolog"
)

// LessonServiceImpl implements ports.LessonService.
type LessonServiceImpl struct {
	userRepo     ports.UserRepository
	lessonRepo   ports.LessonRepository
	queryTimeout time.Duration
	log          zerolog.Logger
}

// NewLessonService creates a new LessonServiceImpl.
func NewLessonService(
	userRepo ports.UserRepository,
	lessonRepo ports.LessonRepository,
	queryTimeout time.Duration,
	log zerolog.Logger,
) *LessonServiceImpl {
	return &LessonServiceImpl{
		userRepo:     userRepo,
		lessonRepo:   lessonRepo,
		queryTimeout: queryTimeout,
		log:          log,
	}
}

// CompletedLessons returns a user's lesson records in ascending
// creation-time order. User existence is checked first: lesson data is
// never returned for a wallet with no user row.
func (s *LessonServiceImpl) CompletedLessons(ctx context.Context, walletCode string) (*ports.CompletedLessonsResult, error) {
	if s.queryTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.queryTimeout)
		defer cancel()
	}

	wallet := domain.NormalizeWalletCode(walletCode)

	user, err := s.userRepo.GetByWalletCode(ctx, wallet)
	if err != nil {
		return nil, apperror.ErrStoreError(fmt.Errorf("get user: %w", err))
	}
	if user == nil {
		return &ports.CompletedLessonsResult{
			Status:     domain.StatusUserNotFound,
			WalletCode: wallet,
			Records:    []domain.LessonRecord{},
		}, nil
	}

	records, err := s.lessonRepo.ListByWalletCode(ctx, wallet)
	if err != nil {
		return nil, apperror.ErrStoreError(fmt.Errorf("list lesson records: %w", err))
	}

	return &ports.CompletedLessonsResult{
		Status:     domain.StatusSuccess,
		WalletCode: wallet,
		Records:    records,
	}, nil
}
