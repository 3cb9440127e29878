package strategy

import (
	"context"
	"strings"

	apperror "github.com/HariharanVicky/user-management-service/internal/errors"
	"github.com/HariharanVicky/user-management-service/internal/user/domain"
	"github.com/HariharanVicky/user-management-service/pkg/constant"
	"golang.org/x/crypto/bcrypt"
)

// EmailPassword verifies "email:password" credentials against the store.
type EmailPassword struct {
	repo domain.UserRepository
}

func NewEmailPassword(repo domain.UserRepository) *EmailPassword {
	return &EmailPassword{repo: repo}
}

func (s *EmailPassword) Authenticate(ctx context.Context, credentials string) (*domain.User, error) {
	email, password, ok := strings.Cut(credentials, ":")
	if !ok {
		return nil, apperror.Invalid("credentials must be in email:password format")
	}

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, apperror.ErrInvalidCredentials
	}

	return user, nil
}

func (s *EmailPassword) Method() string {
	return constant.AuthMethodEmailPassword
}

func (s *EmailPassword) Enabled() bool {
	return true
}
