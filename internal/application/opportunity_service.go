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

type OpportunityService struct {
	Repo   repo.OpportunityRepository
	Users  repo.UserRepository
	Seq    repo.SequenceRepository
	Logger *logrus.Logger
	Now    func() time.Time
}

func NewOpportunityService(repo repo.OpportunityRepository, users repo.UserRepository, seq repo.SequenceRepository, logger *logrus.Logger) *OpportunityService {
	return &OpportunityService{Repo: repo, Users: users, Seq: seq, Logger: logger, Now: nowUTC}
}

type CreateOpportunityInput struct {
	Title       string
	Description string
	CompanyID   string
	Type        string
	Location    string
	Deadline    *time.Time
	IsApproved  bool
}

func (s *OpportunityService) Create(ctx context.Context, in CreateOpportunityInput) (*entity.Opportunity, error) {
	company, err := s.resolveCompany(ctx, in.CompanyID)
	if err != nil {
		return nil, err
	}
	o := &entity.Opportunity{
		Title:       in.Title,
		Description: in.Description,
		Company:     company,
		Type:        entity.OpportunityType(in.Type),
		Location:    in.Location,
		Deadline:    in.Deadline,
		IsApproved:  in.IsApproved,
	}
	if err := entity.PrepareForPersist(o, nil, s.Now()); err != nil {
		return nil, err
	}

	seq, err := s.Seq.Next(ctx, repo.SeqOpportunities)
	if err != nil {
		return nil, err
	}
	o.OpportunityID = seq

	if err := s.Repo.Create(ctx, o); err != nil {
		return nil, fmt.Errorf("create opportunity: %w", err)
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"opportunity_id": o.ID.Hex(), "seq": o.OpportunityID}).Info("opportunity created")
	}
	return o, nil
}

// resolveCompany turns the companyId field into a reference to an existing user.
func (s *OpportunityService) resolveCompany(ctx context.Context, raw string) (bson.ObjectID, error) {
	if raw == "" {
		return bson.ObjectID{}, &validation.Error{Fields: map[string]string{"companyId": "is required"}}
	}
	id, err := bson.ObjectIDFromHex(raw)
	if err != nil {
		return bson.ObjectID{}, &validation.Error{Fields: map[string]string{"companyId": "must be a valid id"}}
	}
	if _, err := s.Users.Get(ctx, entity.ByObjectID(id)); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return bson.ObjectID{}, &validation.Error{Fields: map[string]string{"companyId": "does not exist"}}
		}
		return bson.ObjectID{}, err
	}
	return id, nil
}

func (s *OpportunityService) List(ctx context.Context) ([]entity.OpportunityDetail, error) {
	return s.Repo.ListDetails(ctx)
}

func (s *OpportunityService) Get(ctx context.Context, id entity.Lookup) (*entity.OpportunityDetail, error) {
	o, err := s.Repo.GetDetail(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrOpportunityNotFound
	}
	return o, err
}

type UpdateOpportunityInput struct {
	Title       *string
	Description *string
	CompanyID   *string
	Type        *string
	Location    *string
	// ClearDeadline removes the deadline; Deadline sets a new one.
	Deadline      *time.Time
	ClearDeadline bool
	IsApproved    *bool
}

func (s *OpportunityService) Update(ctx context.Context, id entity.Lookup, in UpdateOpportunityInput) (*entity.Opportunity, error) {
	o, err := s.Repo.Get(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrOpportunityNotFound
	}
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		o.Title = *in.Title
	}
	if in.Description != nil {
		o.Description = *in.Description
	}
	if in.CompanyID != nil {
		company, err := s.resolveCompany(ctx, *in.CompanyID)
		if err != nil {
			return nil, err
		}
		o.Company = company
	}
	if in.Type != nil {
		if err := validation.Var("type", *in.Type, "required,opptype"); err != nil {
			return nil, err
		}
		o.Type = entity.OpportunityType(*in.Type)
	}
	if in.Location != nil {
		o.Location = *in.Location
	}
	if in.ClearDeadline {
		o.Deadline = nil
	} else if in.Deadline != nil {
		o.Deadline = in.Deadline
	}
	if in.IsApproved != nil {
		o.IsApproved = *in.IsApproved
	}

	if err := entity.PrepareForPersist(o, nil, s.Now()); err != nil {
		return nil, err
	}
	if err := s.Repo.Update(ctx, o); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrOpportunityNotFound
		}
		return nil, fmt.Errorf("update opportunity: %w", err)
	}
	return o, nil
}

func (s *OpportunityService) Delete(ctx context.Context, id entity.Lookup) error {
	err := s.Repo.Delete(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return ErrOpportunityNotFound
	}
	return err
}
