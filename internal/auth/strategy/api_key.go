package strategy

import (
	"context"
	"crypto/subtle"
	"strings"

	apperror "github.com/HariharanVicky/user-management-service/internal/errors"
	"github.com/HariharanVicky/user-management-service/internal/user/domain"
	"github.com/HariharanVicky/user-management-service/pkg/constant"
)

// APIKey verifies "apikey:<key>" credentials against the configured
// service key and resolves to the service account. Meant for
// service-to-service calls, not end users.
type APIKey struct {
	repo         domain.UserRepository
	key          string
	serviceEmail string
}

func NewAPIKey(repo domain.UserRepository, key, serviceEmail string) *APIKey {
	return &APIKey{repo: repo, key: key, serviceEmail: serviceEmail}
}

func (s *APIKey) Authenticate(ctx context.Context, credentials string) (*domain.User, error) {
	supplied, found := strings.CutPrefix(credentials, "apikey:")
	if !found {
		return nil, apperror.Invalid("credentials must be in apikey:<key> format")
	}

	if len(supplied) < 32 || !strings.HasPrefix(supplied, "sk_") {
		return nil, apperror.ErrInvalidCredentials
	}
	if subtle.ConstantTimeCompare([]byte(supplied), []byte(s.key)) != 1 {
		return nil, apperror.ErrInvalidCredentials
	}

	user, err := s.repo.GetByEmail(ctx, s.serviceEmail)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.ErrInvalidCredentials
	}

	return user, nil
}

func (s *APIKey) Method() string {
	return constant.AuthMethodAPIKey
}

func (s *APIKey) Enabled() bool {
	return s.key != ""
}
