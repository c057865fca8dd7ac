package repository

import "context"

// Counter names, one per auto-numbered collection.
const (
	SeqUsers         = "users"
	SeqOpportunities = "opportunities"
	SeqApplications  = "applications"
)

// SequenceRepository hands out strictly increasing integers per name.
// Next must be atomic: concurrent callers never receive the same value.
type SequenceRepository interface {
	Next(ctx context.Context, name string) (int64, error)
}
