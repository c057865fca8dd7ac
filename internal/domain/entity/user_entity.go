package entity

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// User is the aggregate root for accounts.
// Password always holds a bcrypt digest once the user has been prepared for
// persistence; plaintext only ever lives in the unexported staging field.
type User struct {
	ID         bson.ObjectID `bson:"_id,omitempty" json:"_id"`
	UserID     int64         `bson:"userID" json:"userID"`
	Name       string        `bson:"name" json:"name" validate:"required"`
	Email      string        `bson:"email" json:"email" validate:"required,email"`
	Password   string        `bson:"password" json:"-" validate:"required"`
	Role       Role          `bson:"role" json:"role" validate:"required,role"`
	IsVerified bool          `bson:"isVerified" json:"isVerified"`
	CreatedAt  time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time     `bson:"updatedAt" json:"updatedAt"`

	plainPassword string
}

// SetPassword stages a new plaintext password. It is hashed by
// PrepareForPersist and never stored as-is.
func (u *User) SetPassword(plain string) {
	u.plainPassword = plain
}

// PasswordChanged reports whether a plaintext password is waiting to be hashed.
func (u *User) PasswordChanged() bool {
	return u.plainPassword != ""
}

// NormalizeEmail applies the same canonical form used on stored users.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (u *User) normalize() {
	u.Name = strings.TrimSpace(u.Name)
	u.Email = NormalizeEmail(u.Email)
	if u.Role == "" {
		u.Role = RoleYouth
	}
}

func (u *User) touch(now time.Time) {
	if u.CreatedAt.IsZero() {
		u.CreatedAt = now
	}
	u.UpdatedAt = now
}
