package auth

import "golang.org/x/crypto/bcrypt"

// DefaultCost matches the work factor of the accounts already in circulation.
const DefaultCost = 10

// Credentials hashes and verifies account passwords. Repositories own a
// Credentials and hash before anything reaches storage.
type Credentials interface {
	Hash(plain string) (string, error)
	Verify(plain, digest string) bool
}

type BcryptCredentials struct {
	Cost int
}

func NewBcryptCredentials() BcryptCredentials {
	return BcryptCredentials{Cost: DefaultCost}
}

func (b BcryptCredentials) Hash(plain string) (string, error) {
	cost := b.Cost
	if cost == 0 {
		cost = DefaultCost
	}
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(hashedBytes), nil
}

func (b BcryptCredentials) Verify(plain, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain)) == nil
}
