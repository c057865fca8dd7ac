package entity

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type ApplicationStatus string

const (
	StatusPending  ApplicationStatus = "pending"
	StatusAccepted ApplicationStatus = "accepted"
	StatusRejected ApplicationStatus = "rejected"
)

// Application is a youth user's submission against one opportunity.
// (User, Opportunity) is unique across the collection.
type Application struct {
	ID            bson.ObjectID     `bson:"_id,omitempty" json:"_id"`
	ApplicationID int64             `bson:"applicationID" json:"applicationID"`
	User          bson.ObjectID     `bson:"user" json:"user" validate:"required"`
	Opportunity   bson.ObjectID     `bson:"opportunity" json:"opportunity" validate:"required"`
	Status        ApplicationStatus `bson:"status" json:"status" validate:"required,appstatus"`
	CoverLetter   string            `bson:"coverLetter" json:"coverLetter"`
	AppliedAt     time.Time         `bson:"appliedAt" json:"appliedAt"`
	CreatedAt     time.Time         `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time         `bson:"updatedAt" json:"updatedAt"`
}

type OpportunityRef struct {
	ID    bson.ObjectID   `bson:"_id" json:"_id"`
	Title string          `bson:"title" json:"title"`
	Type  OpportunityType `bson:"type" json:"type"`
}

// ApplicationDetail is an application with applicant and opportunity expanded.
type ApplicationDetail struct {
	Application
	User        *UserRef        `json:"user"`
	Opportunity *OpportunityRef `json:"opportunity"`
}

func (a *Application) normalize() {
	a.CoverLetter = strings.TrimSpace(a.CoverLetter)
	if a.Status == "" {
		a.Status = StatusPending
	}
}

func (a *Application) touch(now time.Time) {
	if a.AppliedAt.IsZero() {
		a.AppliedAt = now
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	a.UpdatedAt = now
}
