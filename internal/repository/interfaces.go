package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/mrivera/user-auth-service/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	// GetByID loads the public columns only; the password hash is never
	// selected on this path.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	// GetByEmailWithSecret loads the full row including the password
	// hash. Only the login comparison should use it.
	GetByEmailWithSecret(ctx context.Context, email string) (*domain.User, error)
	UsernameTaken(ctx context.Context, username string) (bool, error)
	EmailTaken(ctx context.Context, email string) (bool, error)
}

type Repositories struct {
	User UserRepository
}
