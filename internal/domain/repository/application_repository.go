package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/quickchance/quickchance-backend/internal/domain/entity"
)

type ApplicationRepository interface {
	// Create fails with ErrDuplicate when the (user, opportunity) pair exists.
	Create(ctx context.Context, a *entity.Application) error
	Get(ctx context.Context, id entity.Lookup) (*entity.Application, error)
	GetByPair(ctx context.Context, user, opportunity bson.ObjectID) (*entity.Application, error)
	GetDetail(ctx context.Context, id entity.Lookup) (*entity.ApplicationDetail, error)
	ListDetails(ctx context.Context) ([]entity.ApplicationDetail, error)
	Update(ctx context.Context, a *entity.Application) error
	Delete(ctx context.Context, id entity.Lookup) error
}
