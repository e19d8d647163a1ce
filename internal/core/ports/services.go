package ports

import (
	"context"

	"github.com/plnalaca/pera/internal/core/domain"
)

// UserService defines registration and lookup business logic.
type UserService interface {
	Register(ctx context.Context, req RegisterUserRequest) (*RegisterUserResult, error)
	Check(ctx context.Context, walletCode string) (*CheckUserResult, error)
}

// RegisterUserRequest holds validated input for user registration.
type RegisterUserRequest struct {
	Name       string
	Surname    string
	WalletCode string
}

// RegisterUserResult holds the created user plus a fresh session token.
// The token is opaque: generated per response, never persisted.
type RegisterUserResult struct {
	Name       string
	Surname    string
	WalletCode string
	Token      string
}

// CheckUserResult is the outcome of a wallet lookup. Name, Surname and
// Token are only set when Status is StatusSuccess.
type CheckUserResult struct {
	Status  domain.ResultStatus
	Name    string
	Surname string
	Token   string
}

// LessonService defines completed-lesson retrieval.
type LessonService interface {
	CompletedLessons(ctx context.Context, walletCode string) (*CompletedLessonsResult, error)
}

// CompletedLessonsResult holds a user's lesson history in ascending
// creation-time order. Records is empty (never nil) when Status is
// StatusUserNotFound.
type CompletedLessonsResult struct {
	Status     domain.ResultStatus
	WalletCode string
	Records    []domain.LessonRecord
}
