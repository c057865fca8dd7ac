package application

import (
	"errors"
	"time"

	"github.com/quickchance/quickchance-backend/internal/domain/entity"
)

var (
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrUserNotFound        = errors.New("user not found")
	ErrEmailTaken          = errors.New("email already in use")
	ErrOpportunityNotFound = errors.New("opportunity not found")
	ErrApplicationNotFound = errors.New("application not found")
	ErrApplicationExists   = errors.New("application already exists")
)

// PasswordHasher hashes on write and verifies at login.
type PasswordHasher interface {
	entity.PasswordHasher
	Verify(digest, plain string) bool
}

func nowUTC() time.Time {
	return time.Now().UTC()
}
