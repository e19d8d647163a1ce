package service

import (
	"context"
	"fmt"
	"time"

	"github.com/plnalaca/pera/internal/adapter/storage/postgres"
	"github.com/plnalaca/pera/internal/core/domain"
	"github.com/plnalaca/pera/internal/core/ports"
	"github.com/plnalaca/pera/pkg/apperror"
	"github.com/plnalaca/pera/pkg/strkey"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// UserServiceImpl implements ports.UserService.
type UserServiceImpl struct {
	userRepo     ports.UserRepository
	lessonRepo   ports.LessonRepository
	transactor   ports.DBTransactor
	queryTimeout time.Duration
	log          zerolog.Logger
}

// NewUserService creates a new UserServiceImpl. queryTimeout bounds
// every store call; zero disables the bound.
func NewUserService(
	userRepo ports.UserRepository,
	lessonRepo ports.LessonRepository,
	transactor ports.DBTransactor,
	queryTimeout time.Duration,
	log zerolog.Logger,
) *UserServiceImpl {
	return &UserServiceImpl{
		userRepo:     userRepo,
		lessonRepo:   lessonRepo,
		transactor:   transactor,
		queryTimeout: queryTimeout,
		log:          log,
	}
}

// Register creates a user keyed by a normalized wallet code, together
// with an initial empty lesson record. Both rows commit in a single
// transaction so a user never exists without its lesson history.
func (s *UserServiceImpl) Register(ctx context.Context, req ports.RegisterUserRequest) (*ports.RegisterUserResult, error) {
	ctx, cancel := s.boundedCtx(ctx)
	defer cancel()

	wallet := domain.NormalizeWalletCode(req.WalletCode)
	if !strkey.IsValidEd25519PublicKey(wallet) {
		return nil, apperror.ErrInvalidWalletCode()
	}

	existing, err := s.userRepo.GetByWalletCode(ctx, wallet)
	if err != nil {
		return nil, apperror.ErrStoreError(fmt.Errorf("check wallet uniqueness: %w", err))
	}
	if existing != nil {
		return nil, apperror.ErrDuplicateWallet()
	}

	now := time.Now().UTC()
	user := &domain.User{
		WalletCode: wallet,
		Name:       req.Name,
		Surname:    req.Surname,
		CreatedAt:  now,
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.ErrStoreError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	if err := s.userRepo.Create(ctx, dbTx, user); err != nil {
		// The wallet_code primary key closes the race between the
		// uniqueness check above and this insert.
		if postgres.IsUniqueViolation(err) {
			return nil, apperror.ErrDuplicateWallet()
		}
		return nil, apperror.ErrStoreError(fmt.Errorf("create user: %w", err))
	}

	if err := s.lessonRepo.Create(ctx, dbTx, domain.NewInitialLessonRecord(wallet, now)); err != nil {
		return nil, apperror.ErrStoreError(fmt.Errorf("create initial lesson record: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		if postgres.IsUniqueViolation(err) {
			return nil, apperror.ErrDuplicateWallet()
		}
		return nil, apperror.ErrStoreError(fmt.Errorf("commit registration: %w", err))
	}

	s.log.Info().Str("wallet_code", wallet).Msg("user registered")

	return &ports.RegisterUserResult{
		Name:       user.Name,
		Surname:    user.Surname,
		WalletCode: wallet,
		Token:      uuid.NewString(),
	}, nil
}

// Check looks up a user by wallet code. A malformed wallet code short-
// circuits before any store access; missing users are a soft status,
// not an error.
func (s *UserServiceImpl) Check(ctx context.Context, walletCode string) (*ports.CheckUserResult, error) {
	ctx, cancel := s.boundedCtx(ctx)
	defer cancel()

	wallet := domain.NormalizeWalletCode(walletCode)
	if !strkey.IsValidEd25519PublicKey(wallet) {
		return &ports.CheckUserResult{Status: domain.StatusInvalidWalletFormat}, nil
	}

	user, err := s.userRepo.GetByWalletCode(ctx, wallet)
	if err != nil {
		return nil, apperror.ErrStoreError(fmt.Errorf("get user: %w", err))
	}
	if user == nil {
		return &ports.CheckUserResult{Status: domain.StatusNotFound}, nil
	}

	return &ports.CheckUserResult{
		Status:  domain.StatusSuccess,
		Name:    user.Name,
		Surname: user.Surname,
		Token:   uuid.NewString(),
	}, nil
}

func (s *UserServiceImpl) boundedCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.queryTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.queryTimeout)
}
