package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/quickchance/quickchance-backend/internal/domain/entity"
	repo "github.com/quickchance/quickchance-backend/internal/domain/repository"
	"github.com/quickchance/quickchance-backend/pkg/helpers"
	"github.com/quickchance/quickchance-backend/pkg/validation"
)

type UserService struct {
	Repo   repo.UserRepository
	Seq    repo.SequenceRepository
	Hasher PasswordHasher
	JWT    *helpers.JWTManager
	Logger *logrus.Logger
	Now    func() time.Time
}

func NewUserService(repo repo.UserRepository, seq repo.SequenceRepository, hasher PasswordHasher, jwt *helpers.JWTManager, logger *logrus.Logger) *UserService {
	return &UserService{
		Repo:   repo,
		Seq:    seq,
		Hasher: hasher,
		JWT:    jwt,
		Logger: logger,
		Now:    nowUTC,
	}
}

type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	User      *entity.User
}

// Authenticate validates email/password. Unknown email and wrong password
// produce the same error.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*entity.User, error) {
	u, err := s.Repo.GetByEmail(ctx, email)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if !s.Hasher.Verify(u.Password, password) {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

func (s *UserService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	u, err := s.Authenticate(ctx, email, password)
	if err != nil {
		return nil, err
	}
	token, exp, err := s.JWT.GenerateToken(u.ID.Hex(), string(u.Role))
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID.Hex()).Error("generate token failed")
		}
		return nil, err
	}
	return &LoginResult{Token: token, ExpiresAt: exp, User: u}, nil
}

type CreateUserInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

func (s *UserService) CreateUser(ctx context.Context, in CreateUserInput) (*entity.User, error) {
	if _, err := s.Repo.GetByEmail(ctx, in.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, repo.ErrNotFound) {
		return nil, err
	}

	u := &entity.User{
		Name:  in.Name,
		Email: in.Email,
		Role:  entity.Role(in.Role),
	}
	u.SetPassword(in.Password)
	if err := entity.PrepareForPersist(u, s.Hasher, s.Now()); err != nil {
		return nil, err
	}

	seq, err := s.Seq.Next(ctx, repo.SeqUsers)
	if err != nil {
		return nil, err
	}
	u.UserID = seq

	if err := s.Repo.Create(ctx, u); err != nil {
		// Lost a race with a concurrent signup for the same email.
		if errors.Is(err, repo.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"user_id": u.ID.Hex(), "seq": u.UserID, "role": u.Role}).Info("user created")
	}
	return u, nil
}

func (s *UserService) GetUser(ctx context.Context, id entity.Lookup) (*entity.User, error) {
	u, err := s.Repo.Get(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	return u, err
}

// UpdateUserInput carries only the fields the caller wants to change.
type UpdateUserInput struct {
	Name       *string
	Password   *string
	Role       *string
	IsVerified *bool
}

// UpdateUser applies a partial update. The stored digest is rehashed only
// when a new password is supplied.
func (s *UserService) UpdateUser(ctx context.Context, id entity.Lookup, in UpdateUserInput) (*entity.User, error) {
	u, err := s.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		u.Name = *in.Name
	}
	if in.Password != nil {
		u.SetPassword(*in.Password)
	}
	if in.Role != nil {
		if err := validation.Var("role", *in.Role, "required,role"); err != nil {
			return nil, err
		}
		u.Role = entity.Role(*in.Role)
	}
	if in.IsVerified != nil {
		u.IsVerified = *in.IsVerified
	}
	if err := entity.PrepareForPersist(u, s.Hasher, s.Now()); err != nil {
		return nil, err
	}
	if err := s.Repo.Update(ctx, u); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("update user: %w", err)
	}
	return u, nil
}
