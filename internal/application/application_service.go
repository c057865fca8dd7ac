package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/quickchance/quickchance-backend/internal/domain/entity"
	repo "github.com/quickchance/quickchance-backend/internal/domain/repository"
	"github.com/quickchance/quickchance-backend/pkg/validation"
)

type ApplicationService struct {
	Repo          repo.ApplicationRepository
	Users         repo.UserRepository
	Opportunities repo.OpportunityRepository
	Seq           repo.SequenceRepository
	Logger        *logrus.Logger
	Now           func() time.Time
}

func NewApplicationService(repo repo.ApplicationRepository, users repo.UserRepository, opportunities repo.OpportunityRepository, seq repo.SequenceRepository, logger *logrus.Logger) *ApplicationService {
	return &ApplicationService{
		Repo:          repo,
		Users:         users,
		Opportunities: opportunities,
		Seq:           seq,
		Logger:        logger,
		Now:           nowUTC,
	}
}

type CreateApplicationInput struct {
	UserID        string
	OpportunityID string
	Status        string
	CoverLetter   string
	AppliedAt     *time.Time
}

// Create submits an application. Uniqueness of (user, opportunity) is left to
// the store's compound index; a violation comes back as ErrApplicationExists.
func (s *ApplicationService) Create(ctx context.Context, in CreateApplicationInput) (*entity.Application, error) {
	fields := map[string]string{}
	user := parseRef(in.UserID, "userId", fields)
	opportunity := parseRef(in.OpportunityID, "opportunityId", fields)
	if len(fields) > 0 {
		return nil, &validation.Error{Fields: fields}
	}
	if _, err := s.Users.Get(ctx, entity.ByObjectID(user)); err != nil {
		if !errors.Is(err, repo.ErrNotFound) {
			return nil, err
		}
		fields["userId"] = "does not exist"
	}
	if _, err := s.Opportunities.Get(ctx, entity.ByObjectID(opportunity)); err != nil {
		if !errors.Is(err, repo.ErrNotFound) {
			return nil, err
		}
		fields["opportunityId"] = "does not exist"
	}
	if len(fields) > 0 {
		return nil, &validation.Error{Fields: fields}
	}

	a := &entity.Application{
		User:        user,
		Opportunity: opportunity,
		Status:      entity.ApplicationStatus(in.Status),
		CoverLetter: in.CoverLetter,
	}
	if in.AppliedAt != nil {
		a.AppliedAt = *in.AppliedAt
	}
	if err := entity.PrepareForPersist(a, nil, s.Now()); err != nil {
		return nil, err
	}

	seq, err := s.Seq.Next(ctx, repo.SeqApplications)
	if err != nil {
		return nil, err
	}
	a.ApplicationID = seq

	if err := s.Repo.Create(ctx, a); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return nil, ErrApplicationExists
		}
		return nil, fmt.Errorf("create application: %w", err)
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{
			"application_id": a.ID.Hex(),
			"seq":            a.ApplicationID,
			"user":           a.User.Hex(),
			"opportunity":    a.Opportunity.Hex(),
		}).Info("application submitted")
	}
	return a, nil
}

func parseRef(raw, field string, fields map[string]string) bson.ObjectID {
	if raw == "" {
		fields[field] = "is required"
		return bson.ObjectID{}
	}
	id, err := bson.ObjectIDFromHex(raw)
	if err != nil {
		fields[field] = "must be a valid id"
	}
	return id
}

func (s *ApplicationService) List(ctx context.Context) ([]entity.ApplicationDetail, error) {
	return s.Repo.ListDetails(ctx)
}

func (s *ApplicationService) Get(ctx context.Context, id entity.Lookup) (*entity.ApplicationDetail, error) {
	a, err := s.Repo.GetDetail(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrApplicationNotFound
	}
	return a, err
}

type UpdateApplicationInput struct {
	Status      *string
	CoverLetter *string
}

// Update changes status or cover letter and returns the expanded record.
func (s *ApplicationService) Update(ctx context.Context, id entity.Lookup, in UpdateApplicationInput) (*entity.ApplicationDetail, error) {
	a, err := s.Repo.Get(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrApplicationNotFound
	}
	if err != nil {
		return nil, err
	}
	if in.Status != nil {
		if err := validation.Var("status", *in.Status, "required,appstatus"); err != nil {
			return nil, err
		}
		a.Status = entity.ApplicationStatus(*in.Status)
	}
	if in.CoverLetter != nil {
		a.CoverLetter = *in.CoverLetter
	}
	if err := entity.PrepareForPersist(a, nil, s.Now()); err != nil {
		return nil, err
	}
	if err := s.Repo.Update(ctx, a); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, fmt.Errorf("update application: %w", err)
	}
	return s.Get(ctx, entity.ByObjectID(a.ID))
}

func (s *ApplicationService) Delete(ctx context.Context, id entity.Lookup) error {
	err := s.Repo.Delete(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return ErrApplicationNotFound
	}
	return err
}
