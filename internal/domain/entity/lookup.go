package entity

import (
	"errors"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"
)

var ErrInvalidID = errors.New("invalid id")

// Lookup addresses a single document either by its store ObjectID or by
// its human-facing sequence number. Exactly one of the two is set.
type Lookup struct {
	ObjectID bson.ObjectID
	Seq      int64
}

// ByObjectID builds a Lookup for a known store id.
func ByObjectID(id bson.ObjectID) Lookup {
	return Lookup{ObjectID: id}
}

// ParseLookup accepts a 24-character hex ObjectID or a positive integer.
func ParseLookup(raw string) (Lookup, error) {
	raw = strings.TrimSpace(raw)
	if oid, err := bson.ObjectIDFromHex(raw); err == nil {
		return Lookup{ObjectID: oid}, nil
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n <= 0 {
		return Lookup{}, ErrInvalidID
	}
	return Lookup{Seq: n}, nil
}

// IsSeq reports whether the lookup targets the sequence number.
func (l Lookup) IsSeq() bool {
	return l.ObjectID.IsZero()
}

func (l Lookup) String() string {
	if l.IsSeq() {
		return strconv.FormatInt(l.Seq, 10)
	}
	return l.ObjectID.Hex()
}
