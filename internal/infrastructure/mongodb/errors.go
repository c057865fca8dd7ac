package mongodb

import (
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/quickchance/quickchance-backend/internal/domain/entity"
	"github.com/quickchance/quickchance-backend/internal/domain/repository"
)

// translate maps driver errors onto the repository sentinels.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return repository.ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return fmt.Errorf("%w: %s", repository.ErrDuplicate, err.Error())
	}
	return err
}

func lookupFilter(id entity.Lookup, seqField string) bson.D {
	if id.IsSeq() {
		return bson.D{{Key: seqField, Value: id.Seq}}
	}
	return bson.D{{Key: "_id", Value: id.ObjectID}}
}

func lookupStage(from, localField, as string) bson.D {
	return bson.D{{Key: "$lookup", Value: bson.D{
		{Key: "from", Value: from},
		{Key: "localField", Value: localField},
		{Key: "foreignField", Value: "_id"},
		{Key: "as", Value: as},
	}}}
}

func unwindStage(field string) bson.D {
	return bson.D{{Key: "$unwind", Value: bson.D{
		{Key: "path", Value: "$" + field},
		{Key: "preserveNullAndEmptyArrays", Value: true},
	}}}
}
