package helpers

import "golang.org/x/crypto/bcrypt"

// PasswordCost is the bcrypt work factor used for stored passwords.
const PasswordCost = 10

// BcryptHasher hashes and verifies passwords with a per-call random salt.
type BcryptHasher struct {
	Cost int
}

func NewBcryptHasher() *BcryptHasher {
	return &BcryptHasher{Cost: PasswordCost}
}

// Hash returns the bcrypt digest of plain.
func (h *BcryptHasher) Hash(plain string) (string, error) {
	cost := h.Cost
	if cost == 0 {
		cost = PasswordCost
	}
	b, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Verify never fails loudly: a malformed digest is just a mismatch.
func (h *BcryptHasher) Verify(digest, plain string) bool {
	return CompareHashAndPassword(digest, plain)
}

// CompareHashAndPassword compares a bcrypt hash with a plain password
func CompareHashAndPassword(hash string, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
