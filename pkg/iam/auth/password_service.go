package auth

import "golang.org/x/crypto/bcrypt"

// PasswordService hashes and verifies account passwords
type PasswordService interface {
	Hash(plain string) (string, error)
	Verify(hash, plain string) bool
}

// BcryptPasswordService implements PasswordService with bcrypt
type BcryptPasswordService struct {
	cost int
}

// NewBcryptPasswordService creates a password service with the default cost
func NewBcryptPasswordService() *BcryptPasswordService {
	return &BcryptPasswordService{cost: bcrypt.DefaultCost}
}

func (s *BcryptPasswordService) Hash(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), s.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (s *BcryptPasswordService) Verify(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
