package repository

import (
	"context"

	"github.com/quickchance/quickchance-backend/internal/domain/entity"
)

type OpportunityRepository interface {
	Create(ctx context.Context, o *entity.Opportunity) error
	Get(ctx context.Context, id entity.Lookup) (*entity.Opportunity, error)
	GetByTitle(ctx context.Context, title string) (*entity.Opportunity, error)
	GetDetail(ctx context.Context, id entity.Lookup) (*entity.OpportunityDetail, error)
	ListDetails(ctx context.Context) ([]entity.OpportunityDetail, error)
	Update(ctx context.Context, o *entity.Opportunity) error
	Delete(ctx context.Context, id entity.Lookup) error
}
