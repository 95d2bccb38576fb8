package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrAdminDisabled is returned when no admin key hash is configured.
	ErrAdminDisabled = errors.New("admin access disabled")
	// ErrInvalidAdminKey is returned for a key that does not match the configured hash.
	ErrInvalidAdminKey = errors.New("invalid admin key")
)

// PasswordHasher defines hashing strategy for secrets.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash string, password string) error
}

// BcryptHasher uses bcrypt to hash secrets.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher creates BcryptHasher with provided cost.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

// Hash returns bcrypt hash for provided secret.
func (h *BcryptHasher) Hash(password string) (string, error) {
	encoded, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}

// Compare checks secret against stored hash.
func (h *BcryptHasher) Compare(hash string, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

// AdminVerifier checks the key presented on admin endpoints against a bcrypt hash.
type AdminVerifier struct {
	hash   string
	hasher PasswordHasher
}

// NewAdminVerifier builds a verifier; an empty hash disables admin access entirely.
func NewAdminVerifier(hash string, hasher PasswordHasher) *AdminVerifier {
	return &AdminVerifier{hash: hash, hasher: hasher}
}

// Verify reports whether key unlocks admin endpoints.
func (v *AdminVerifier) Verify(key string) error {
	if v.hash == "" {
		return ErrAdminDisabled
	}
	if key == "" {
		return ErrInvalidAdminKey
	}
	if err := v.hasher.Compare(v.hash, key); err != nil {
		return ErrInvalidAdminKey
	}
	return nil
}
