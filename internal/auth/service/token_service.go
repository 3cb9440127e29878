package service

//go:generate mockgen -destination=../../mocks/mock_token_generator.go -package=mocks github.com/HariharanVicky/user-management-service/internal/auth/service TokenGenerator

import (
	"fmt"
	"time"

	"github.com/HariharanVicky/user-management-service/internal/user/domain"
	"github.com/golang-jwt/jwt/v5"
)

type TokenGenerator interface {
	Generate(user *domain.User) (string, time.Time, error)
	Verify(tokenString string) (*Claims, error)
}

type TokenService struct {
	Secret string
	Expiry time.Duration
}

type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
	Role   string `json:"role"`
}

func NewTokenService(secret string, expiryHours int) *TokenService {
	return &TokenService{
		Secret: secret,
		Expiry: time.Duration(expiryHours) * time.Hour,
	}
}

// Generate signs a bearer token carrying the user's email as subject.
func (ts *TokenService) Generate(user *domain.User) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(ts.Expiry)

	claims := Claims{
		UserID: user.ID,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Email,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(ts.Secret))
	if err != nil {
		return "", time.Time{}, err
	}

	return token, expiresAt, nil
}

// Verify parses and validates the given token string.
func (ts *TokenService) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(ts.Secret), nil
	})

	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}
