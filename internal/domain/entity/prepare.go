package entity

import (
	"errors"
	"fmt"
	"time"

	"github.com/quickchance/quickchance-backend/pkg/validation"
)

// PasswordHasher turns a plaintext password into a salted digest.
type PasswordHasher interface {
	Hash(plain string) (string, error)
}

// Entity is implemented by every record kept in the data store.
type Entity interface {
	normalize()
	touch(now time.Time)
}

// MaxPasswordBytes is the longest plaintext bcrypt will digest.
const MaxPasswordBytes = 72

var errNoHasher = errors.New("password hasher not configured")

// PrepareForPersist runs before every insert and update: it trims and
// lower-cases fields, fills defaults, hashes a staged password, stamps
// timestamps and finally validates the record.
func PrepareForPersist(e Entity, hasher PasswordHasher, now time.Time) error {
	e.normalize()
	if u, ok := e.(*User); ok && u.PasswordChanged() {
		if len(u.plainPassword) > MaxPasswordBytes {
			return &validation.Error{Fields: map[string]string{
				"password": fmt.Sprintf("must be at most %d bytes", MaxPasswordBytes),
			}}
		}
		if hasher == nil {
			return errNoHasher
		}
		digest, err := hasher.Hash(u.plainPassword)
		if err != nil {
			return fmt.Errorf("hash password: %w", err)
		}
		u.Password = digest
		u.plainPassword = ""
	}
	e.touch(now)
	return validation.Struct(e)
}
