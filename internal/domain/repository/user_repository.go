package repository

import (
	"context"

	"github.com/quickchance/quickchance-backend/internal/domain/entity"
)

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	Get(ctx context.Context, id entity.Lookup) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	// Update persists u and refreshes it with the stored post-update document.
	Update(ctx context.Context, u *entity.User) error
}
