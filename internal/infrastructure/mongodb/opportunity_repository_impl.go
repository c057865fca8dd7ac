package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/quickchance/quickchance-backend/internal/domain/entity"
	"github.com/quickchance/quickchance-backend/internal/domain/repository"
)

const opportunitiesCollection = "opportunities"

type OpportunityRepository struct {
	coll *mongo.Collection
}

func NewOpportunityRepository(db *mongo.Database) *OpportunityRepository {
	return &OpportunityRepository{coll: db.Collection(opportunitiesCollection)}
}

// opportunityRow is what the $lookup pipeline yields.
type opportunityRow struct {
	entity.Opportunity `bson:",inline"`
	CompanyDoc         *entity.UserRef `bson:"companyDoc,omitempty"`
}

func (row opportunityRow) detail() entity.OpportunityDetail {
	return entity.OpportunityDetail{Opportunity: row.Opportunity, Company: row.CompanyDoc}
}

func (r *OpportunityRepository) Create(ctx context.Context, o *entity.Opportunity) error {
	if o.ID.IsZero() {
		o.ID = bson.NewObjectID()
	}
	_, err := r.coll.InsertOne(ctx, o)
	return translate(err)
}

func (r *OpportunityRepository) Get(ctx context.Context, id entity.Lookup) (*entity.Opportunity, error) {
	return r.findOne(ctx, lookupFilter(id, "opportunityID"))
}

func (r *OpportunityRepository) GetByTitle(ctx context.Context, title string) (*entity.Opportunity, error) {
	return r.findOne(ctx, bson.D{{Key: "title", Value: title}})
}

func (r *OpportunityRepository) findOne(ctx context.Context, filter bson.D) (*entity.Opportunity, error) {
	o := &entity.Opportunity{}
	if err := r.coll.FindOne(ctx, filter).Decode(o); err != nil {
		return nil, translate(err)
	}
	return o, nil
}

func (r *OpportunityRepository) GetDetail(ctx context.Context, id entity.Lookup) (*entity.OpportunityDetail, error) {
	rows, err := r.aggregate(ctx, lookupFilter(id, "opportunityID"))
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, repository.ErrNotFound
	}
	return &rows[0], nil
}

func (r *OpportunityRepository) ListDetails(ctx context.Context) ([]entity.OpportunityDetail, error) {
	return r.aggregate(ctx, nil)
}

func (r *OpportunityRepository) aggregate(ctx context.Context, match bson.D) ([]entity.OpportunityDetail, error) {
	pipeline := mongo.Pipeline{}
	if match != nil {
		pipeline = append(pipeline, bson.D{{Key: "$match", Value: match}})
	}
	pipeline = append(pipeline,
		bson.D{{Key: "$sort", Value: bson.D{{Key: "opportunityID", Value: 1}}}},
		lookupStage(usersCollection, "company", "companyDoc"),
		unwindStage("companyDoc"),
		bson.D{{Key: "$project", Value: bson.D{{Key: "companyDoc.password", Value: 0}}}},
	)

	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	var rows []opportunityRow
	if err := cur.All(ctx, &rows); err != nil {
		return nil, err
	}
	out := make([]entity.OpportunityDetail, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.detail())
	}
	return out, nil
}

func (r *OpportunityRepository) Update(ctx context.Context, o *entity.Opportunity) error {
	set := bson.D{
		{Key: "title", Value: o.Title},
		{Key: "description", Value: o.Description},
		{Key: "company", Value: o.Company},
		{Key: "type", Value: o.Type},
		{Key: "location", Value: o.Location},
		{Key: "deadline", Value: o.Deadline},
		{Key: "isApproved", Value: o.IsApproved},
		{Key: "updatedAt", Value: o.UpdatedAt},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := r.coll.FindOneAndUpdate(ctx, bson.D{{Key: "_id", Value: o.ID}}, bson.D{{Key: "$set", Value: set}}, opts).Decode(o)
	return translate(err)
}

func (r *OpportunityRepository) Delete(ctx context.Context, id entity.Lookup) error {
	res, err := r.coll.DeleteOne(ctx, lookupFilter(id, "opportunityID"))
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.OpportunityRepository = (*OpportunityRepository)(nil)
