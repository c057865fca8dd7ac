package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/quickchance/quickchance-backend/internal/domain/entity"
	"github.com/quickchance/quickchance-backend/internal/domain/repository"
)

const usersCollection = "users"

type UserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{coll: db.Collection(usersCollection)}
}

func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	if u.ID.IsZero() {
		u.ID = bson.NewObjectID()
	}
	_, err := r.coll.InsertOne(ctx, u)
	return translate(err)
}

func (r *UserRepository) Get(ctx context.Context, id entity.Lookup) (*entity.User, error) {
	return r.findOne(ctx, lookupFilter(id, "userID"))
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.findOne(ctx, bson.D{{Key: "email", Value: entity.NormalizeEmail(email)}})
}

func (r *UserRepository) findOne(ctx context.Context, filter bson.D) (*entity.User, error) {
	u := &entity.User{}
	if err := r.coll.FindOne(ctx, filter).Decode(u); err != nil {
		return nil, translate(err)
	}
	return u, nil
}

func (r *UserRepository) Update(ctx context.Context, u *entity.User) error {
	set := bson.D{
		{Key: "name", Value: u.Name},
		{Key: "email", Value: u.Email},
		{Key: "password", Value: u.Password},
		{Key: "role", Value: u.Role},
		{Key: "isVerified", Value: u.IsVerified},
		{Key: "updatedAt", Value: u.UpdatedAt},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := r.coll.FindOneAndUpdate(ctx, bson.D{{Key: "_id", Value: u.ID}}, bson.D{{Key: "$set", Value: set}}, opts).Decode(u)
	return translate(err)
}

var _ repository.UserRepository = (*UserRepository)(nil)
