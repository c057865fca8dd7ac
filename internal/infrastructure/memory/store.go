// Package memory is an in-process implementation of the repositories. It
// enforces the same unique keys as the MongoDB indexes and is used where a
// database is not available, chiefly tests.
package memory

import (
	"context"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/quickchance/quickchance-backend/internal/domain/entity"
	"github.com/quickchance/quickchance-backend/internal/domain/repository"
)

type Store struct {
	mu            sync.Mutex
	users         map[bson.ObjectID]entity.User
	opportunities map[bson.ObjectID]entity.Opportunity
	applications  map[bson.ObjectID]entity.Application
	counters      map[string]int64
}

func NewStore() *Store {
	return &Store{
		users:         map[bson.ObjectID]entity.User{},
		opportunities: map[bson.ObjectID]entity.Opportunity{},
		applications:  map[bson.ObjectID]entity.Application{},
		counters:      map[string]int64{},
	}
}

func (s *Store) Users() *UserRepository               { return &UserRepository{s: s} }
func (s *Store) Opportunities() *OpportunityRepository { return &OpportunityRepository{s: s} }
func (s *Store) Applications() *ApplicationRepository  { return &ApplicationRepository{s: s} }
func (s *Store) Sequences() *SequenceRepository        { return &SequenceRepository{s: s} }

func matches(id entity.Lookup, oid bson.ObjectID, seq int64) bool {
	if id.IsSeq() {
		return id.Seq == seq
	}
	return id.ObjectID == oid
}

type SequenceRepository struct{ s *Store }

func (r *SequenceRepository) Next(_ context.Context, name string) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.counters[name]++
	return r.s.counters[name], nil
}

type UserRepository struct{ s *Store }

func (r *UserRepository) Create(_ context.Context, u *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.users {
		if existing.Email == u.Email || existing.UserID == u.UserID {
			return repository.ErrDuplicate
		}
	}
	if u.ID.IsZero() {
		u.ID = bson.NewObjectID()
	}
	r.s.users[u.ID] = *u
	return nil
}

func (r *UserRepository) Get(_ context.Context, id entity.Lookup) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if matches(id, u.ID, u.UserID) {
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *UserRepository) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	email = entity.NormalizeEmail(email)
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *UserRepository) Update(_ context.Context, u *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	stored, ok := r.s.users[u.ID]
	if !ok {
		return repository.ErrNotFound
	}
	stored.Name = u.Name
	stored.Email = u.Email
	stored.Password = u.Password
	stored.Role = u.Role
	stored.IsVerified = u.IsVerified
	stored.UpdatedAt = u.UpdatedAt
	r.s.users[u.ID] = stored
	*u = stored
	return nil
}

func (s *Store) userRef(id bson.ObjectID) *entity.UserRef {
	u, ok := s.users[id]
	if !ok {
		return nil
	}
	return &entity.UserRef{ID: u.ID, Name: u.Name, Email: u.Email}
}

type OpportunityRepository struct{ s *Store }

func (r *OpportunityRepository) Create(_ context.Context, o *entity.Opportunity) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.opportunities {
		if existing.OpportunityID == o.OpportunityID {
			return repository.ErrDuplicate
		}
	}
	if o.ID.IsZero() {
		o.ID = bson.NewObjectID()
	}
	r.s.opportunities[o.ID] = *o
	return nil
}

func (r *OpportunityRepository) Get(_ context.Context, id entity.Lookup) (*entity.Opportunity, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	o, ok := r.s.findOpportunity(id)
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &o, nil
}

func (s *Store) findOpportunity(id entity.Lookup) (entity.Opportunity, bool) {
	for _, o := range s.opportunities {
		if matches(id, o.ID, o.OpportunityID) {
			return o, true
		}
	}
	return entity.Opportunity{}, false
}

func (r *OpportunityRepository) GetByTitle(_ context.Context, title string) (*entity.Opportunity, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, o := range r.s.sortedOpportunities() {
		if o.Title == title {
			return &o, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *OpportunityRepository) GetDetail(_ context.Context, id entity.Lookup) (*entity.OpportunityDetail, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	o, ok := r.s.findOpportunity(id)
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &entity.OpportunityDetail{Opportunity: o, Company: r.s.userRef(o.Company)}, nil
}

func (r *OpportunityRepository) ListDetails(_ context.Context) ([]entity.OpportunityDetail, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]entity.OpportunityDetail, 0, len(r.s.opportunities))
	for _, o := range r.s.sortedOpportunities() {
		out = append(out, entity.OpportunityDetail{Opportunity: o, Company: r.s.userRef(o.Company)})
	}
	return out, nil
}

func (s *Store) sortedOpportunities() []entity.Opportunity {
	out := make([]entity.Opportunity, 0, len(s.opportunities))
	for _, o := range s.opportunities {
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].OpportunityID < out[j].OpportunityID })
	return out
}

func (r *OpportunityRepository) Update(_ context.Context, o *entity.Opportunity) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	stored, ok := r.s.opportunities[o.ID]
	if !ok {
		return repository.ErrNotFound
	}
	o.OpportunityID = stored.OpportunityID
	o.CreatedAt = stored.CreatedAt
	r.s.opportunities[o.ID] = *o
	return nil
}

func (r *OpportunityRepository) Delete(_ context.Context, id entity.Lookup) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	o, ok := r.s.findOpportunity(id)
	if !ok {
		return repository.ErrNotFound
	}
	delete(r.s.opportunities, o.ID)
	return nil
}

type ApplicationRepository struct{ s *Store }

func (r *ApplicationRepository) Create(_ context.Context, a *entity.Application) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.applications {
		if existing.ApplicationID == a.ApplicationID ||
			(existing.User == a.User && existing.Opportunity == a.Opportunity) {
			return repository.ErrDuplicate
		}
	}
	if a.ID.IsZero() {
		a.ID = bson.NewObjectID()
	}
	r.s.applications[a.ID] = *a
	return nil
}

func (r *ApplicationRepository) Get(_ context.Context, id entity.Lookup) (*entity.Application, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	a, ok := r.s.findApplication(id)
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &a, nil
}

func (s *Store) findApplication(id entity.Lookup) (entity.Application, bool) {
	for _, a := range s.applications {
		if matches(id, a.ID, a.ApplicationID) {
			return a, true
		}
	}
	return entity.Application{}, false
}

func (r *ApplicationRepository) GetByPair(_ context.Context, user, opportunity bson.ObjectID) (*entity.Application, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, a := range r.s.applications {
		if a.User == user && a.Opportunity == opportunity {
			return &a, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *Store) applicationDetail(a entity.Application) entity.ApplicationDetail {
	d := entity.ApplicationDetail{Application: a, User: s.userRef(a.User)}
	if o, ok := s.opportunities[a.Opportunity]; ok {
		d.Opportunity = &entity.OpportunityRef{ID: o.ID, Title: o.Title, Type: o.Type}
	}
	return d
}

func (r *ApplicationRepository) GetDetail(_ context.Context, id entity.Lookup) (*entity.ApplicationDetail, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	a, ok := r.s.findApplication(id)
	if !ok {
		return nil, repository.ErrNotFound
	}
	d := r.s.applicationDetail(a)
	return &d, nil
}

func (r *ApplicationRepository) ListDetails(_ context.Context) ([]entity.ApplicationDetail, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]entity.ApplicationDetail, 0, len(r.s.applications))
	for _, a := range r.s.applications {
		out = append(out, r.s.applicationDetail(a))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ApplicationID < out[j].ApplicationID })
	return out, nil
}

func (r *ApplicationRepository) Update(_ context.Context, a *entity.Application) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	stored, ok := r.s.applications[a.ID]
	if !ok {
		return repository.ErrNotFound
	}
	stored.Status = a.Status
	stored.CoverLetter = a.CoverLetter
	stored.UpdatedAt = a.UpdatedAt
	r.s.applications[a.ID] = stored
	*a = stored
	return nil
}

func (r *ApplicationRepository) Delete(_ context.Context, id entity.Lookup) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	a, ok := r.s.findApplication(id)
	if !ok {
		return repository.ErrNotFound
	}
	delete(r.s.applications, a.ID)
	return nil
}

var (
	_ repository.UserRepository        = (*UserRepository)(nil)
	_ repository.OpportunityRepository = (*OpportunityRepository)(nil)
	_ repository.ApplicationRepository = (*ApplicationRepository)(nil)
	_ repository.SequenceRepository    = (*SequenceRepository)(nil)
)
