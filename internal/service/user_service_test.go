package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/plnalaca/pera/internal/core/domain"
	"github.com/plnalaca/pera/internal/core/ports"
	"github.com/plnalaca/pera/internal/core/ports/mocks"
	"github.com/plnalaca/pera/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	validWallet = "GA7QYNF7SOWQ3GLR2BGMZEHXAVIRZA4KVWLTJJFC7MGXUA74P7UJVSGZ"
)

type userTestDeps struct {
	svc        *UserServiceImpl
	userRepo   *mocks.MockUserRepository
	lessonRepo *mocks.MockLessonRepository
	transactor *mocks.MockDBTransactor
	ctrl       *gomock.Controller
}

func setupUserService(t *testing.T) *userTestDeps {
	ctrl := gomock.NewController(t)
	d := &userTestDeps{
		userRepo:   mocks.NewMockUserRepository(ctrl),
		lessonRepo: mocks.NewMockLessonRepository(ctrl),
		transactor: mocks.NewMockDBTransactor(ctrl),
		ctrl:       ctrl,
	}
	// Zero timeout keeps the caller's context intact for exact matching.
	d.svc = NewUserService(d.userRepo, d.lessonRepo, d.transactor, 0, zerolog.Nop())
	return d
}

// mockTx implements pgx.Tx for testing
type mockTx struct {
	pgx.Tx
	committed  bool
	rolledBack bool
	commitErr  error
}

func (m *mockTx) Rollback(_ context.Context) error { m.rolledBack = true; return nil }
func (m *mockTx) Commit(_ context.Context) error {
	if m.commitErr != nil {
		return m.commitErr
	}
	m.committed = true
	return nil
}

// ==================== Register Tests ====================

func TestUserService_Register_Success(t *testing.T) {
	d := setupUserService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}

	d.userRepo.EXPECT().GetByWalletCode(ctx, validWallet).Return(nil, nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.userRepo.EXPECT().Create(ctx, tx, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ pgx.Tx, u *domain.User) error {
			assert.Equal(t, validWallet, u.WalletCode)
			assert.Equal(t, "Ada", u.Name)
			assert.Equal(t, "Lovelace", u.Surname)
			return nil
		})
	d.lessonRepo.EXPECT().Create(ctx, tx, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ pgx.Tx, rec *domain.LessonRecord) error {
			assert.Equal(t, validWallet, rec.WalletCode)
			assert.Empty(t, rec.Lessons)
			return nil
		})

	result, err := d.svc.Register(ctx, ports.RegisterUserRequest{
		Name:       "Ada",
		Surname:    "Lovelace",
		WalletCode: validWallet,
	})
	require.NoError(t, err)
	assert.Equal(t, "Ada", result.Name)
	assert.Equal(t, "Lovelace", result.Surname)
	assert.Equal(t, validWallet, result.WalletCode)
	assert.NotEmpty(t, result.Token)
	assert.True(t, tx.committed, "both inserts must commit together")
}

func TestUserService_Register_NormalizesWalletCode(t *testing.T) {
	d := setupUserService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}

	// The padded input must be trimmed before every store interaction.
	d.userRepo.EXPECT().GetByWalletCode(ctx, validWallet).Return(nil, nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.userRepo.EXPECT().Create(ctx, tx, gomock.Any()).Return(nil)
	d.lessonRepo.EXPECT().Create(ctx, tx, gomock.Any()).Return(nil)

	result, err := d.svc.Register(ctx, ports.RegisterUserRequest{
		Name:       "Ada",
		Surname:    "Lovelace",
		WalletCode: "  " + validWallet + "  ",
	})
	require.NoError(t, err)
	assert.Equal(t, validWallet, result.WalletCode)
}

func TestUserService_Register_InvalidWalletCode(t *testing.T) {
	d := setupUserService(t)
	defer d.ctrl.Finish()

	// No store access may happen for a malformed wallet code.
	result, err := d.svc.Register(context.Background(), ports.RegisterUserRequest{
		Name:       "Ada",
		Surname:    "Lovelace",
		WalletCode: "not-a-key",
	})
	require.Error(t, err)
	assert.Nil(t, result)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "USR_002", appErr.Code)
}

func TestUserService_Register_DuplicateWallet(t *testing.T) {
	d := setupUserService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.userRepo.EXPECT().GetByWalletCode(ctx, validWallet).Return(&domain.User{
		WalletCode: validWallet,
		Name:       "Ada",
		Surname:    "Lovelace",
	}, nil)

	result, err := d.svc.Register(ctx, ports.RegisterUserRequest{
		Name:       "Grace",
		Surname:    "Hopper",
		WalletCode: validWallet,
	})
	require.Error(t, err)
	assert.Nil(t, result)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "USR_001", appErr.Code)
}

func TestUserService_Register_DuplicateRace_UniqueViolation(t *testing.T) {
	d := setupUserService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}

	// Uniqueness check passes, but a concurrent registration wins the
	// insert; the schema constraint surfaces as a unique violation.
	d.userRepo.EXPECT().GetByWalletCode(ctx, validWallet).Return(nil, nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.userRepo.EXPECT().Create(ctx, tx, gomock.Any()).Return(
		&pgconn.PgError{Code: "23505", ConstraintName: "users_pkey"})

	result, err := d.svc.Register(ctx, ports.RegisterUserRequest{
		Name:       "Ada",
		Surname:    "Lovelace",
		WalletCode: validWallet,
	})
	require.Error(t, err)
	assert.Nil(t, result)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "USR_001", appErr.Code)
	assert.True(t, tx.rolledBack)
}

func TestUserService_Register_LessonInsertFails_RollsBack(t *testing.T) {
	d := setupUserService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{}

	d.userRepo.EXPECT().GetByWalletCode(ctx, validWallet).Return(nil, nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.userRepo.EXPECT().Create(ctx, tx, gomock.Any()).Return(nil)
	d.lessonRepo.EXPECT().Create(ctx, tx, gomock.Any()).Return(errors.New("disk full"))

	result, err := d.svc.Register(ctx, ports.RegisterUserRequest{
		Name:       "Ada",
		Surname:    "Lovelace",
		WalletCode: validWallet,
	})
	require.Error(t, err)
	assert.Nil(t, result)
	assert.False(t, tx.committed, "user row must not survive a failed lesson insert")
	assert.True(t, tx.rolledBack)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "SYS_001", appErr.Code)
}

func TestUserService_Register_CommitError(t *testing.T) {
	d := setupUserService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	tx := &mockTx{commitErr: errors.New("connection lost")}

	d.userRepo.EXPECT().GetByWalletCode(ctx, validWallet).Return(nil, nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.userRepo.EXPECT().Create(ctx, tx, gomock.Any()).Return(nil)
	d.lessonRepo.EXPECT().Create(ctx, tx, gomock.Any()).Return(nil)

	result, err := d.svc.Register(ctx, ports.RegisterUserRequest{
		Name:       "Ada",
		Surname:    "Lovelace",
		WalletCode: validWallet,
	})
	require.Error(t, err)
	assert.Nil(t, result)
}

func TestUserService_Register_StoreErrorOnUniquenessCheck(t *testing.T) {
	d := setupUserService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.userRepo.EXPECT().GetByWalletCode(ctx, validWallet).Return(nil, errors.New("timeout"))

	_, err := d.svc.Register(ctx, ports.RegisterUserRequest{
		Name:       "Ada",
		Surname:    "Lovelace",
		WalletCode: validWallet,
	})
	require.Error(t, err)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "SYS_001", appErr.Code)
}

func TestUserService_Register_FreshTokenPerCall(t *testing.T) {
	d := setupUserService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()

	tokens := make(map[string]bool)
	for i := 0; i < 2; i++ {
		tx := &mockTx{}
		d.userRepo.EXPECT().GetByWalletCode(ctx, validWallet).Return(nil, nil)
		d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
		d.userRepo.EXPECT().Create(ctx, tx, gomock.Any()).Return(nil)
		d.lessonRepo.EXPECT().Create(ctx, tx, gomock.Any()).Return(nil)

		result, err := d.svc.Register(ctx, ports.RegisterUserRequest{
			Name:       "Ada",
			Surname:    "Lovelace",
			WalletCode: validWallet,
		})
		require.NoError(t, err)
		tokens[result.Token] = true
	}
	assert.Len(t, tokens, 2, "each response carries a fresh opaque token")
}

// ==================== Check Tests ====================

func TestUserService_Check_Success(t *testing.T) {
	d := setupUserService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.userRepo.EXPECT().GetByWalletCode(ctx, validWallet).Return(&domain.User{
		WalletCode: validWallet,
		Name:       "Ada",
		Surname:    "Lovelace",
	}, nil)

	result, err := d.svc.Check(ctx, validWallet)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusSuccess, result.Status)
	assert.Equal(t, "Ada", result.Name)
	assert.Equal(t, "Lovelace", result.Surname)
	assert.NotEmpty(t, result.Token)
}

func TestUserService_Check_TrimsBeforeLookup(t *testing.T) {
	d := setupUserService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.userRepo.EXPECT().GetByWalletCode(ctx, validWallet).Return(&domain.User{
		WalletCode: validWallet,
		Name:       "Ada",
		Surname:    "Lovelace",
	}, nil)

	result, err := d.svc.Check(ctx, "  "+validWallet+"\n")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusSuccess, result.Status)
}

func TestUserService_Check_InvalidFormat_SkipsStore(t *testing.T) {
	d := setupUserService(t)
	defer d.ctrl.Finish()

	// No repo expectation: the validator must gate before any query.
	result, err := d.svc.Check(context.Background(), " not-a-key ")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusInvalidWalletFormat, result.Status)
	assert.Empty(t, result.Name)
	assert.Empty(t, result.Surname)
	assert.Empty(t, result.Token)
}

func TestUserService_Check_NotFound(t *testing.T) {
	d := setupUserService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.userRepo.EXPECT().GetByWalletCode(ctx, validWallet).Return(nil, nil)

	result, err := d.svc.Check(ctx, validWallet)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusNotFound, result.Status)
	assert.Empty(t, result.Token)
}

func TestUserService_Check_StoreError(t *testing.T) {
	d := setupUserService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.userRepo.EXPECT().GetByWalletCode(ctx, validWallet).Return(nil, errors.New("refused"))

	result, err := d.svc.Check(ctx, validWallet)
	require.Error(t, err)
	assert.Nil(t, result)
}

func TestUserService_QueryTimeout_BoundsStoreCalls(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userRepo := mocks.NewMockUserRepository(ctrl)
	svc := NewUserService(userRepo, mocks.NewMockLessonRepository(ctrl),
		mocks.NewMockDBTransactor(ctrl), 2*time.Second, zerolog.Nop())

	userRepo.EXPECT().GetByWalletCode(gomock.Any(), validWallet).DoAndReturn(
		func(ctx context.Context, _ string) (*domain.User, error) {
			deadline, ok := ctx.Deadline()
			assert.True(t, ok, "store calls must carry a deadline")
			assert.WithinDuration(t, time.Now().Add(2*time.Second), deadline, time.Second)
			return nil, nil
		})

	result, err := svc.Check(context.Background(), validWallet)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusNotFound, result.Status)
}
