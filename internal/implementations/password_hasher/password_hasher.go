package passwordhasher

import (
	"github.com/Shouganaii/tdd-clean-go-api/internal/core/domain/account"
	"golang.org/x/crypto/bcrypt"
)

// Bcrypt hashes passwords with a server-side secret appended before hashing.
type Bcrypt struct {
	secret string
	cost   int
}

func NewBcrypt(secret string, cost int) *Bcrypt {
	return &Bcrypt{secret: secret, cost: cost}
}

func (h *Bcrypt) HashPassword(password account.RawPassword) (account.PasswordHash, error) {
	hash, err := bcrypt.GenerateFromPassword(h.salted(password), h.cost)
	if err != nil {
		return "", err
	}
	return account.PasswordHash(hash), nil
}

func (h *Bcrypt) ValidatePassword(password account.RawPassword, hash account.PasswordHash) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), h.salted(password)) == nil
}

func (h *Bcrypt) salted(password account.RawPassword) []byte {
	return []byte(string(password) + h.secret)
}
