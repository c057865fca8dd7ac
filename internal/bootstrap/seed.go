// Package bootstrap populates a fresh database with a minimal demo data set.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/quickchance/quickchance-backend/internal/application"
	"github.com/quickchance/quickchance-backend/internal/domain/entity"
	repo "github.com/quickchance/quickchance-backend/internal/domain/repository"
	"github.com/quickchance/quickchance-backend/pkg/helpers"
)

const (
	CompanyEmail     = "company@example.com"
	YouthEmail       = "youth@example.com"
	OpportunityTitle = "Software Internship"

	seedPassword = "password123"
)

// Deps are the services and repositories the seed needs. Creation goes
// through the services so seeded records get the same hashing, numbering
// and validation as API-created ones.
type Deps struct {
	Users         *application.UserService
	Opportunities *application.OpportunityService
	Applications  *application.ApplicationService

	UserRepo        repo.UserRepository
	OpportunityRepo repo.OpportunityRepository
	ApplicationRepo repo.ApplicationRepository

	Logger *logrus.Logger
}

// Result records what a seed run did; each flag is true when the record was
// created by this run rather than found.
type Result struct {
	Company     *entity.User
	Youth       *entity.User
	Opportunity *entity.Opportunity
	Application *entity.Application

	CompanyCreated     bool
	YouthCreated       bool
	OpportunityCreated bool
	ApplicationCreated bool
}

// Seed ensures the demo records exist. Existing records are found by natural
// key (email, title, user+opportunity) and left untouched, so running it
// twice creates nothing the second time.
func Seed(ctx context.Context, d Deps) (*Result, error) {
	res := &Result{}
	var err error

	res.Company, res.CompanyCreated, err = ensureUser(ctx, d, application.CreateUserInput{
		Name:     "Test Company",
		Email:    CompanyEmail,
		Password: seedPassword,
		Role:     string(entity.RoleCompany),
	})
	if err != nil {
		return nil, fmt.Errorf("seed company: %w", err)
	}
	d.log("company", res.Company.Email, res.CompanyCreated)

	res.Youth, res.YouthCreated, err = ensureUser(ctx, d, application.CreateUserInput{
		Name:     "Test Youth",
		Email:    YouthEmail,
		Password: seedPassword,
		Role:     string(entity.RoleYouth),
	})
	if err != nil {
		return nil, fmt.Errorf("seed youth: %w", err)
	}
	d.log("youth", res.Youth.Email, res.YouthCreated)

	res.Opportunity, res.OpportunityCreated, err = ensureOpportunity(ctx, d, res.Company)
	if err != nil {
		return nil, fmt.Errorf("seed opportunity: %w", err)
	}
	d.log("opportunity", res.Opportunity.Title, res.OpportunityCreated)

	res.Application, res.ApplicationCreated, err = ensureApplication(ctx, d, res.Youth, res.Opportunity)
	if err != nil {
		return nil, fmt.Errorf("seed application: %w", err)
	}
	d.log("application", res.Application.ID.Hex(), res.ApplicationCreated)

	return res, nil
}

func ensureUser(ctx context.Context, d Deps, in application.CreateUserInput) (*entity.User, bool, error) {
	u, err := d.UserRepo.GetByEmail(ctx, in.Email)
	if err == nil {
		return u, false, nil
	}
	if !errors.Is(err, repo.ErrNotFound) {
		return nil, false, err
	}
	u, err = d.Users.CreateUser(ctx, in)
	if err != nil {
		return nil, false, err
	}
	return u, true, nil
}

func ensureOpportunity(ctx context.Context, d Deps, company *entity.User) (*entity.Opportunity, bool, error) {
	o, err := d.OpportunityRepo.GetByTitle(ctx, OpportunityTitle)
	if err == nil {
		return o, false, nil
	}
	if !errors.Is(err, repo.ErrNotFound) {
		return nil, false, err
	}
	deadline := time.Date(2025, time.October, 1, 0, 0, 0, 0, time.UTC)
	o, err = d.Opportunities.Create(ctx, application.CreateOpportunityInput{
		Title:       OpportunityTitle,
		Description: "Learn and build real-world software projects with a mentor.",
		CompanyID:   company.ID.Hex(),
		Type:        string(entity.TypeInternship),
		Location:    "Kigali",
		Deadline:    &deadline,
		IsApproved:  true,
	})
	if err != nil {
		return nil, false, err
	}
	return o, true, nil
}

func ensureApplication(ctx context.Context, d Deps, youth *entity.User, o *entity.Opportunity) (*entity.Application, bool, error) {
	a, err := d.ApplicationRepo.GetByPair(ctx, youth.ID, o.ID)
	if err == nil {
		return a, false, nil
	}
	if !errors.Is(err, repo.ErrNotFound) {
		return nil, false, err
	}
	a, err = d.Applications.Create(ctx, application.CreateApplicationInput{
		UserID:        youth.ID.Hex(),
		OpportunityID: o.ID.Hex(),
		Status:        string(entity.StatusPending),
		CoverLetter:   "I am excited to apply for this internship.",
	})
	if err != nil {
		return nil, false, err
	}
	return a, true, nil
}

func (d Deps) log(kind, key string, created bool) {
	msg := "seed " + kind + " already exists"
	if created {
		msg = "seed " + kind + " created"
	}
	helpers.LogInfo(d.Logger, msg, logrus.Fields{"kind": kind, "key": key})
}
