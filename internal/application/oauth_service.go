package application

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
)

var (
	ErrUnknownProvider  = errors.New("unknown oauth provider")
	ErrProviderDisabled = errors.New("oauth provider not configured")
	ErrInvalidState     = errors.New("invalid or expired oauth state")
	ErrMissingCode      = errors.New("missing authorization code")
)

// StateStore keeps issued OAuth state values until the callback consumes them.
type StateStore interface {
	Save(ctx context.Context, state, provider string, ttl time.Duration) error
	Consume(ctx context.Context, state string) (provider string, ok bool, err error)
}

// OAuthService delegates sign-in to external providers. It returns the
// provider profile and does not create or link local accounts.
type OAuthService struct {
	Providers  map[string]*OAuthProvider
	States     StateStore
	StateTTL   time.Duration
	HTTPClient *http.Client
	Logger     *logrus.Logger
}

func NewOAuthService(states StateStore, ttl time.Duration, logger *logrus.Logger, providers ...*OAuthProvider) *OAuthService {
	m := make(map[string]*OAuthProvider, len(providers))
	for _, p := range providers {
		m[p.Name] = p
	}
	return &OAuthService{Providers: m, States: states, StateTTL: ttl, Logger: logger}
}

func (s *OAuthService) provider(name string) (*OAuthProvider, error) {
	p, ok := s.Providers[name]
	if !ok {
		return nil, ErrUnknownProvider
	}
	if !p.Configured() || s.States == nil {
		return nil, ErrProviderDisabled
	}
	return p, nil
}

// AuthURL issues a fresh state and returns the provider consent URL.
func (s *OAuthService) AuthURL(ctx context.Context, name string) (string, error) {
	p, err := s.provider(name)
	if err != nil {
		return "", err
	}
	state := uuid.NewString()
	if err := s.States.Save(ctx, state, p.Name, s.StateTTL); err != nil {
		return "", fmt.Errorf("save oauth state: %w", err)
	}
	return p.Config.AuthCodeURL(state), nil
}

// Complete validates the callback state, exchanges the code and fetches the
// provider profile.
func (s *OAuthService) Complete(ctx context.Context, name, state, code string) (*OAuthProfile, error) {
	p, err := s.provider(name)
	if err != nil {
		return nil, err
	}
	if state == "" {
		return nil, ErrInvalidState
	}
	issuedFor, ok, err := s.States.Consume(ctx, state)
	if err != nil {
		return nil, fmt.Errorf("consume oauth state: %w", err)
	}
	if !ok || issuedFor != p.Name {
		return nil, ErrInvalidState
	}
	if code == "" {
		return nil, ErrMissingCode
	}

	if s.HTTPClient != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, s.HTTPClient)
	}
	tok, err := p.Config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("%s token exchange: %w", p.Name, err)
	}
	prof, err := p.fetch(ctx, p.Config.Client(ctx, tok), p)
	if err != nil {
		return nil, fmt.Errorf("%s profile: %w", p.Name, err)
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"provider": p.Name, "subject": prof.ID}).Info("oauth login completed")
	}
	return prof, nil
}
