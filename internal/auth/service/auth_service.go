package service

import (
	"context"

	authdto "github.com/HariharanVicky/user-management-service/internal/auth/dto"
	apperror "github.com/HariharanVicky/user-management-service/internal/errors"
	"github.com/HariharanVicky/user-management-service/internal/events"
	"github.com/HariharanVicky/user-management-service/internal/user/domain"
	userdto "github.com/HariharanVicky/user-management-service/internal/user/dto"
	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	repo   domain.UserRepository
	tokens TokenGenerator
	events events.Publisher
}

func NewAuthService(repo domain.UserRepository, tokens TokenGenerator, publisher events.Publisher) *AuthService {
	return &AuthService{
		repo:   repo,
		tokens: tokens,
		events: publisher,
	}
}

// Authenticate verifies the credentials and issues a bearer token.
// An unknown email and a wrong password surface as different error
// values; the login route collapses both to 401 on the wire.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (*authdto.LoginOutput, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.ErrUserNotFound
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, apperror.ErrInvalidCredentials
	}

	token, expiresAt, err := s.tokens.Generate(user)
	if err != nil {
		return nil, err
	}

	s.events.Notify(events.New(events.UserLoggedIn, user, "user logged in"))

	return &authdto.LoginOutput{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      userdto.FromDomain(user),
	}, nil
}

func (s *AuthService) ValidateToken(tokenString string) bool {
	_, err := s.tokens.Verify(tokenString)
	return err == nil
}
