package entity

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type OpportunityType string

const (
	TypeJob         OpportunityType = "job"
	TypeInternship  OpportunityType = "internship"
	TypeTraining    OpportunityType = "training"
	TypeScholarship OpportunityType = "scholarship"
)

// Opportunity is a posting owned by a company user.
type Opportunity struct {
	ID            bson.ObjectID   `bson:"_id,omitempty" json:"_id"`
	OpportunityID int64           `bson:"opportunityID" json:"opportunityID"`
	Title         string          `bson:"title" json:"title" validate:"required"`
	Description   string          `bson:"description" json:"description"`
	Company       bson.ObjectID   `bson:"company" json:"company" validate:"required"`
	Type          OpportunityType `bson:"type" json:"type" validate:"required,opptype"`
	Location      string          `bson:"location" json:"location"`
	Deadline      *time.Time      `bson:"deadline,omitempty" json:"deadline,omitempty"`
	IsApproved    bool            `bson:"isApproved" json:"isApproved"`
	CreatedAt     time.Time       `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time       `bson:"updatedAt" json:"updatedAt"`
}

// UserRef is the expanded form of a user reference: just enough to display.
type UserRef struct {
	ID    bson.ObjectID `bson:"_id" json:"_id"`
	Name  string        `bson:"name" json:"name"`
	Email string        `bson:"email" json:"email"`
}

// OpportunityDetail is an opportunity with its company expanded.
// Company is nil when the owning user no longer exists.
type OpportunityDetail struct {
	Opportunity
	Company *UserRef `json:"company"`
}

func (o *Opportunity) normalize() {
	o.Title = strings.TrimSpace(o.Title)
	o.Location = strings.TrimSpace(o.Location)
	if o.Type == "" {
		o.Type = TypeJob
	}
}

func (o *Opportunity) touch(now time.Time) {
	if o.CreatedAt.IsZero() {
		o.CreatedAt = now
	}
	o.UpdatedAt = now
}
