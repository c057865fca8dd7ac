package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const countersCollection = "counters"

// SequenceRepository keeps one counter document per name and bumps it with
// a single atomic $inc.
type SequenceRepository struct {
	coll *mongo.Collection
}

func NewSequenceRepository(db *mongo.Database) *SequenceRepository {
	return &SequenceRepository{coll: db.Collection(countersCollection)}
}

func (r *SequenceRepository) Next(ctx context.Context, name string) (int64, error) {
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)
	filter := bson.D{{Key: "_id", Value: name}}
	update := bson.D{{Key: "$inc", Value: bson.D{{Key: "seq", Value: int64(1)}}}}

	var doc struct {
		Seq int64 `bson:"seq"`
	}
	var err error
	// Two first-time upserts can race on the _id index; the loser retries
	// and then finds the document.
	for attempt := 0; attempt < 2; attempt++ {
		err = r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&doc)
		if !mongo.IsDuplicateKeyError(err) {
			break
		}
	}
	if err != nil {
		return 0, fmt.Errorf("next %s sequence: %w", name, err)
	}
	return doc.Seq, nil
}
