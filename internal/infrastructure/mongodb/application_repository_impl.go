package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/quickchance/quickchance-backend/internal/domain/entity"
	"github.com/quickchance/quickchance-backend/internal/domain/repository"
)

const applicationsCollection = "applications"

type ApplicationRepository struct {
	coll *mongo.Collection
}

func NewApplicationRepository(db *mongo.Database) *ApplicationRepository {
	return &ApplicationRepository{coll: db.Collection(applicationsCollection)}
}

type applicationRow struct {
	entity.Application `bson:",inline"`
	UserDoc            *entity.UserRef        `bson:"userDoc,omitempty"`
	OpportunityDoc     *entity.OpportunityRef `bson:"opportunityDoc,omitempty"`
}

func (row applicationRow) detail() entity.ApplicationDetail {
	return entity.ApplicationDetail{
		Application: row.Application,
		User:        row.UserDoc,
		Opportunity: row.OpportunityDoc,
	}
}

func (r *ApplicationRepository) Create(ctx context.Context, a *entity.Application) error {
	if a.ID.IsZero() {
		a.ID = bson.NewObjectID()
	}
	_, err := r.coll.InsertOne(ctx, a)
	return translate(err)
}

func (r *ApplicationRepository) Get(ctx context.Context, id entity.Lookup) (*entity.Application, error) {
	return r.findOne(ctx, lookupFilter(id, "applicationID"))
}

func (r *ApplicationRepository) GetByPair(ctx context.Context, user, opportunity bson.ObjectID) (*entity.Application, error) {
	return r.findOne(ctx, bson.D{{Key: "user", Value: user}, {Key: "opportunity", Value: opportunity}})
}

func (r *ApplicationRepository) findOne(ctx context.Context, filter bson.D) (*entity.Application, error) {
	a := &entity.Application{}
	if err := r.coll.FindOne(ctx, filter).Decode(a); err != nil {
		return nil, translate(err)
	}
	return a, nil
}

func (r *ApplicationRepository) GetDetail(ctx context.Context, id entity.Lookup) (*entity.ApplicationDetail, error) {
	rows, err := r.aggregate(ctx, lookupFilter(id, "applicationID"))
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, repository.ErrNotFound
	}
	return &rows[0], nil
}

func (r *ApplicationRepository) ListDetails(ctx context.Context) ([]entity.ApplicationDetail, error) {
	return r.aggregate(ctx, nil)
}

func (r *ApplicationRepository) aggregate(ctx context.Context, match bson.D) ([]entity.ApplicationDetail, error) {
	pipeline := mongo.Pipeline{}
	if match != nil {
		pipeline = append(pipeline, bson.D{{Key: "$match", Value: match}})
	}
	pipeline = append(pipeline,
		bson.D{{Key: "$sort", Value: bson.D{{Key: "applicationID", Value: 1}}}},
		lookupStage(usersCollection, "user", "userDoc"),
		unwindStage("userDoc"),
		lookupStage(opportunitiesCollection, "opportunity", "opportunityDoc"),
		unwindStage("opportunityDoc"),
		bson.D{{Key: "$project", Value: bson.D{{Key: "userDoc.password", Value: 0}}}},
	)

	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	var rows []applicationRow
	if err := cur.All(ctx, &rows); err != nil {
		return nil, err
	}
	out := make([]entity.ApplicationDetail, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.detail())
	}
	return out, nil
}

func (r *ApplicationRepository) Update(ctx context.Context, a *entity.Application) error {
	set := bson.D{
		{Key: "status", Value: a.Status},
		{Key: "coverLetter", Value: a.CoverLetter},
		{Key: "updatedAt", Value: a.UpdatedAt},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := r.coll.FindOneAndUpdate(ctx, bson.D{{Key: "_id", Value: a.ID}}, bson.D{{Key: "$set", Value: set}}, opts).Decode(a)
	return translate(err)
}

func (r *ApplicationRepository) Delete(ctx context.Context, id entity.Lookup) error {
	res, err := r.coll.DeleteOne(ctx, lookupFilter(id, "applicationID"))
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.ApplicationRepository = (*ApplicationRepository)(nil)
