package mongodb

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus/hooks/test"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/quickchance/quickchance-backend/internal/domain/entity"
	"github.com/quickchance/quickchance-backend/internal/domain/repository"
)

// testDB connects to MONGO_TEST_URI, creates a throwaway database with the
// migrated indexes and drops it when the test ends.
func testDB(t *testing.T) *mongo.Database {
	t.Helper()
	uri := os.Getenv("MONGO_TEST_URI")
	if uri == "" {
		t.Skip("MONGO_TEST_URI not set")
	}
	ctx := context.Background()
	name := fmt.Sprintf("quickchance_test_%d", time.Now().UnixNano())
	client, db, err := Connect(ctx, uri, name, 5*time.Second)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(func() {
		_ = db.Drop(context.Background())
		_ = client.Disconnect(context.Background())
	})

	u, err := url.Parse(uri)
	if err != nil {
		t.Fatalf("parse uri: %v", err)
	}
	u.Path = "/" + name
	logger, _ := test.NewNullLogger()
	if err := RunMigrations(u.String(), "../../../db/migrations", logger); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func newUser(seq int64, email string) *entity.User {
	now := time.Now().UTC().Truncate(time.Millisecond)
	return &entity.User{UserID: seq, Name: "U", Email: email, Password: "digest", Role: entity.RoleYouth, CreatedAt: now, UpdatedAt: now}
}

func TestSequenceConcurrent(t *testing.T) {
	seq := NewSequenceRepository(testDB(t))
	const n = 25
	var (
		mu   sync.Mutex
		seen = map[int64]bool{}
		wg   sync.WaitGroup
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := seq.Next(context.Background(), repository.SeqUsers)
			if err != nil {
				t.Errorf("next: %v", err)
				return
			}
			mu.Lock()
			seen[v] = true
			mu.Unlock()
		}()
	}
	wg.Wait()
	for i := int64(1); i <= n; i++ {
		if !seen[i] {
			t.Fatalf("missing %d in %v", i, seen)
		}
	}
}

func TestUserRepositoryUniqueEmail(t *testing.T) {
	users := NewUserRepository(testDB(t))
	ctx := context.Background()

	if err := users.Create(ctx, newUser(1, "a@example.com")); err != nil {
		t.Fatalf("create: %v", err)
	}
	err := users.Create(ctx, newUser(2, "a@example.com"))
	if !errors.Is(err, repository.ErrDuplicate) {
		t.Fatalf("err = %v, want ErrDuplicate", err)
	}

	got, err := users.Get(ctx, entity.Lookup{Seq: 1})
	if err != nil || got.Email != "a@example.com" {
		t.Fatalf("get by seq: %v, %v", got, err)
	}
	if _, err := users.GetByEmail(ctx, "missing@example.com"); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("missing email: %v", err)
	}
}

func TestApplicationRepositoryPairAndExpansion(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	users := NewUserRepository(db)
	opps := NewOpportunityRepository(db)
	apps := NewApplicationRepository(db)

	company := newUser(1, "c@example.com")
	company.Role = entity.RoleCompany
	youth := newUser(2, "y@example.com")
	for _, u := range []*entity.User{company, youth} {
		if err := users.Create(ctx, u); err != nil {
			t.Fatalf("create user: %v", err)
		}
	}
	o := &entity.Opportunity{OpportunityID: 1, Title: "Intern", Company: company.ID, Type: entity.TypeInternship}
	if err := opps.Create(ctx, o); err != nil {
		t.Fatalf("create opportunity: %v", err)
	}

	od, err := opps.GetDetail(ctx, entity.ByObjectID(o.ID))
	if err != nil || od.Company == nil || od.Company.Email != "c@example.com" {
		t.Fatalf("opportunity detail: %+v, %v", od, err)
	}

	a := &entity.Application{ApplicationID: 1, User: youth.ID, Opportunity: o.ID, Status: entity.StatusPending}
	if err := apps.Create(ctx, a); err != nil {
		t.Fatalf("create application: %v", err)
	}
	dup := &entity.Application{ApplicationID: 2, User: youth.ID, Opportunity: o.ID, Status: entity.StatusPending}
	if err := apps.Create(ctx, dup); !errors.Is(err, repository.ErrDuplicate) {
		t.Fatalf("duplicate pair: %v", err)
	}

	list, err := apps.ListDetails(ctx)
	if err != nil || len(list) != 1 {
		t.Fatalf("list: %v, %v", list, err)
	}
	if list[0].User == nil || list[0].User.Name != "U" || list[0].Opportunity == nil || list[0].Opportunity.Title != "Intern" {
		t.Fatalf("expansion: %+v", list[0])
	}

	if err := apps.Delete(ctx, entity.Lookup{Seq: 1}); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := apps.Delete(ctx, entity.Lookup{Seq: 1}); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("second delete: %v", err)
	}
	if _, err := apps.GetByPair(ctx, youth.ID, bson.NewObjectID()); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("pair lookup: %v", err)
	}
}
