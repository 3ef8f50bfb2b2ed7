package auth

import (
	"time"

	"github.com/Abraxas-365/stint/pkg/kernel"
	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the validated content of an access token
type TokenClaims struct {
	AccountID   kernel.AccountID
	AccountType kernel.AccountType
	ExpiresAt   time.Time
}

// TokenService issues and validates access tokens
type TokenService interface {
	GenerateAccessToken(accountID kernel.AccountID, accountType kernel.AccountType) (string, error)
	ValidateAccessToken(token string) (*TokenClaims, error)
}

// JWTService implements TokenService with HMAC-signed JWTs
type JWTService struct {
	secretKey []byte
	ttl       time.Duration
	issuer    string
}

// NewJWTService creates a JWT token service
func NewJWTService(secretKey string, ttl time.Duration, issuer string) *JWTService {
	return &JWTService{
		secretKey: []byte(secretKey),
		ttl:       ttl,
		issuer:    issuer,
	}
}

type jwtClaims struct {
	AccountType string `json:"account_type"`
	jwt.RegisteredClaims
}

func (s *JWTService) GenerateAccessToken(accountID kernel.AccountID, accountType kernel.AccountType) (string, error) {
	now := time.Now()
	claims := jwtClaims{
		AccountType: string(accountType),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   accountID.String(),
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

func (s *JWTService) ValidateAccessToken(tokenString string) (*TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwtClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken().WithDetail("alg", t.Header["alg"])
		}
		return s.secretKey, nil
	})
	if err != nil {
		return nil, ErrInvalidToken().WithCause(err)
	}

	claims, ok := token.Claims.(*jwtClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken()
	}

	accountType := kernel.AccountType(claims.AccountType)
	if !accountType.IsValid() {
		return nil, ErrInvalidToken().WithDetail("account_type", claims.AccountType)
	}

	return &TokenClaims{
		AccountID:   kernel.AccountID(claims.Subject),
		AccountType: accountType,
		ExpiresAt:   claims.ExpiresAt.Time,
	}, nil
}
