package repository

import (
	"alcyxob/exercise-tracker/internal/domain"
	"context"
)

// Error constants for the repository layer
var (
	ErrNotFound    = RepositoryError("not found")
	ErrDuplicateID = RepositoryError("duplicate id")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// UserRepository defines the interface for interacting with user data.
type UserRepository interface {
	// Create inserts user with its pre-assigned ID. Returns ErrDuplicateID if the ID is taken.
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	Exists(ctx context.Context, id string) (bool, error)
	// List returns every user in store order.
	List(ctx context.Context) ([]domain.User, error)
}

// LogRepository defines the interface for interacting with exercise logs.
type LogRepository interface {
	// Create inserts a log with its pre-assigned ID. Returns ErrDuplicateID if the ID is taken.
	Create(ctx context.Context, log *domain.Log) error
	GetByID(ctx context.Context, id string) (*domain.Log, error)
	// AppendEntry pushes entry onto the log and bumps its count in one atomic
	// update, returning the updated log. Returns ErrNotFound if no log has that ID.
	AppendEntry(ctx context.Context, id string, entry domain.Exercise) (*domain.Log, error)
}
