package bootstrap

import (
	"context"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/quickchance/quickchance-backend/internal/application"
	"github.com/quickchance/quickchance-backend/internal/domain/entity"
	"github.com/quickchance/quickchance-backend/internal/infrastructure/memory"
	"github.com/quickchance/quickchance-backend/pkg/helpers"
)

func newDeps() Deps {
	store := memory.NewStore()
	hasher := &helpers.BcryptHasher{Cost: bcrypt.MinCost}
	return Deps{
		Users:           application.NewUserService(store.Users(), store.Sequences(), hasher, helpers.NewJWTManager("x"), nil),
		Opportunities:   application.NewOpportunityService(store.Opportunities(), store.Users(), store.Sequences(), nil),
		Applications:    application.NewApplicationService(store.Applications(), store.Users(), store.Opportunities(), store.Sequences(), nil),
		UserRepo:        store.Users(),
		OpportunityRepo: store.Opportunities(),
		ApplicationRepo: store.Applications(),
	}
}

func TestSeedIsIdempotent(t *testing.T) {
	d := newDeps()
	ctx := context.Background()

	first, err := Seed(ctx, d)
	if err != nil {
		t.Fatalf("first seed: %v", err)
	}
	if !first.CompanyCreated || !first.YouthCreated || !first.OpportunityCreated || !first.ApplicationCreated {
		t.Fatalf("first run should create everything: %+v", first)
	}
	if first.Company.Role != entity.RoleCompany || first.Youth.Role != entity.RoleYouth {
		t.Fatalf("roles = %q / %q", first.Company.Role, first.Youth.Role)
	}
	if first.Opportunity.Company != first.Company.ID || first.Opportunity.Type != entity.TypeInternship {
		t.Fatalf("opportunity = %+v", first.Opportunity)
	}
	if first.Application.Status != entity.StatusPending {
		t.Fatalf("application status = %q", first.Application.Status)
	}

	second, err := Seed(ctx, d)
	if err != nil {
		t.Fatalf("second seed: %v", err)
	}
	if second.CompanyCreated || second.YouthCreated || second.OpportunityCreated || second.ApplicationCreated {
		t.Fatalf("second run should create nothing: %+v", second)
	}
	if second.Application.ID != first.Application.ID {
		t.Fatalf("application replaced on rerun")
	}

	users, _ := d.UserRepo.Get(ctx, entity.Lookup{Seq: 3})
	if users != nil {
		t.Fatalf("a third user exists after two runs")
	}
	apps, err := d.ApplicationRepo.ListDetails(ctx)
	if err != nil || len(apps) != 1 {
		t.Fatalf("applications = %d, %v", len(apps), err)
	}
}

func TestSeedUsersCanLogIn(t *testing.T) {
	d := newDeps()
	if _, err := Seed(context.Background(), d); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if _, err := d.Users.Login(context.Background(), CompanyEmail, seedPassword); err != nil {
		t.Fatalf("login as seeded company: %v", err)
	}
}
