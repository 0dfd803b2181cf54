package auth

import (
	"encoding/hex"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/crypto/sha3"
)

//go:generate mockgen -source=hash.go -destination=hash_mock.go -package=auth

type HashServiceInterface interface {
	HashPassword(password string) (string, error)
	ComparePassword(hashedPassword, password string) bool
}

type HashService struct {
	cost int
}

// NewHashService returns a bcrypt based hasher. Costs outside bcrypt's
// range fall back to bcrypt.DefaultCost.
func NewHashService(cost int) *HashService {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &HashService{cost: cost}
}

func (b *HashService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(digest(password), b.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (b *HashService) ComparePassword(hashedPassword, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), digest(password))
	return err == nil
}

// digest keeps bcrypt's input under its 72 byte limit so secrets that only
// differ after that point still hash differently.
func digest(password string) []byte {
	sum := sha3.Sum256([]byte(password))
	out := make([]byte, hex.EncodedLen(len(sum)))
	hex.Encode(out, sum[:])
	return out
}
