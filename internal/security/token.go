package security

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"rent-ledger-backend/internal/domain"
)

var (
	ErrInvalidToken   = errors.New("invalid token")
	ErrExpiredToken   = errors.New("token has expired")
	ErrWrongTokenType = errors.New("wrong token type for this endpoint")
)

type TokenType string

const (
	TokenTypeAccess TokenType = "access"
)

const (
	tokenIssuer   = "rent-ledger"
	tokenAudience = "ledger-api"

	DefaultAccessTokenTTL = time.Hour
)

// OwnerClaims identifies the owner a request acts for. The owner ID travels in
// the standard subject claim.
type OwnerClaims struct {
	Email string    `json:"email,omitempty"`
	Type  TokenType `json:"type"`
	jwt.RegisteredClaims
}

// Owner converts the claims into the principal passed to the services.
func (c *OwnerClaims) Owner() domain.Owner {
	return domain.Owner{ID: c.Subject, Email: c.Email}
}

type TokenManager interface {
	GenerateAccessToken(owner domain.Owner) (string, error)
	ValidateToken(tokenString string) (*OwnerClaims, error)
}

type tokenManager struct {
	secret    []byte
	accessTTL time.Duration
	now       func() time.Time
}

// NewTokenManager signs HS256 tokens with secret. A non-positive accessTTL
// falls back to DefaultAccessTokenTTL.
func NewTokenManager(secret string, accessTTL time.Duration) TokenManager {
	if accessTTL <= 0 {
		accessTTL = DefaultAccessTokenTTL
	}
	return &tokenManager{
		secret:    []byte(secret),
		accessTTL: accessTTL,
		now:       time.Now,
	}
}

func (m *tokenManager) GenerateAccessToken(owner domain.Owner) (string, error) {
	if !owner.Valid() {
		return "", domain.NewValidationError("owner_id", "is required")
	}
	now := m.now()
	claims := OwnerClaims{
		Email: owner.Email,
		Type:  TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   owner.ID,
			ExpiresAt: jwt.NewNumericDate(now.Add(m.accessTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    tokenIssuer,
			Audience:  jwt.ClaimStrings{tokenAudience},
			ID:        uuid.NewString(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

func (m *tokenManager) ValidateToken(tokenString string) (*OwnerClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &OwnerClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secret, nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithAudience(tokenAudience))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*OwnerClaims)
	if !ok || !token.Valid || claims.Subject == "" {
		return nil, ErrInvalidToken
	}
	if claims.Type != TokenTypeAccess {
		return nil, ErrWrongTokenType
	}
	return claims, nil
}
