package service

import (
	"context"
	"time"

	apperror "github.com/HariharanVicky/user-management-service/internal/errors"
	"github.com/HariharanVicky/user-management-service/internal/events"
	"github.com/HariharanVicky/user-management-service/internal/user/domain"
	"github.com/HariharanVicky/user-management-service/internal/user/dto"
	"github.com/HariharanVicky/user-management-service/internal/validation"
	"github.com/HariharanVicky/user-management-service/pkg/constant"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	repo   domain.UserRepository
	events events.Publisher
}

func NewUserService(repo domain.UserRepository, publisher events.Publisher) *UserService {
	return &UserService{
		repo:   repo,
		events: publisher,
	}
}

func (s *UserService) Create(ctx context.Context, input dto.CreateUserInput) (*domain.User, error) {
	if v := validation.ValidateEmail(input.Email); !v.Valid {
		return nil, apperror.Invalid(v.Message)
	}
	if v := validation.ValidatePassword(input.Password); !v.Valid {
		return nil, apperror.Invalid(v.Message)
	}
	if v := validation.ValidateName(input.FirstName); !v.Valid {
		return nil, apperror.Invalid(v.Message)
	}
	if v := validation.ValidateName(input.LastName); !v.Valid {
		return nil, apperror.Invalid(v.Message)
	}

	role := input.Role
	if role == "" {
		role = constant.RoleUser
	}
	if role != constant.RoleUser && role != constant.RoleAdmin {
		return nil, apperror.Invalid("Invalid role: " + input.Role)
	}

	existing, err := s.repo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.ErrEmailAlreadyInUse
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()

	user := &domain.User{
		ID:           uuid.New().String(),
		Email:        input.Email,
		PasswordHash: string(hashed),
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Role:         role,
		Enabled:      true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	// Welcome delivery is best-effort; listener failures stay inside the
	// registry and never fail the create.
	s.events.Notify(events.New(events.UserRegistered, user, "welcome email for "+user.FirstName))

	return user, nil
}

func (s *UserService) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if v := validation.ValidateEmail(email); !v.Valid {
		return nil, apperror.Invalid(v.Message)
	}

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.ErrUserNotFound
	}

	return user, nil
}

func (s *UserService) Update(ctx context.Context, id string, input dto.UpdateUserInput) (*domain.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.ErrUserNotFound
	}

	if input.Email != nil && *input.Email != user.Email {
		if v := validation.ValidateEmail(*input.Email); !v.Valid {
			return nil, apperror.Invalid(v.Message)
		}
		taken, err := s.repo.GetByEmail(ctx, *input.Email)
		if err != nil {
			return nil, err
		}
		if taken != nil && taken.ID != user.ID {
			return nil, apperror.ErrEmailAlreadyInUse
		}
		user.Email = *input.Email
	}

	if input.FirstName != nil {
		if v := validation.ValidateName(*input.FirstName); !v.Valid {
			return nil, apperror.Invalid(v.Message)
		}
		user.FirstName = *input.FirstName
	}

	if input.LastName != nil {
		if v := validation.ValidateName(*input.LastName); !v.Valid {
			return nil, apperror.Invalid(v.Message)
		}
		user.LastName = *input.LastName
	}

	passwordChanged := false
	if input.Password != nil && *input.Password != "" {
		if v := validation.ValidatePassword(*input.Password); !v.Valid {
			return nil, apperror.Invalid(v.Message)
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hashed)
		passwordChanged = true
	}

	user.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}

	if passwordChanged {
		s.events.Notify(events.New(events.PasswordChanged, user, "password changed"))
	}

	return user, nil
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return apperror.ErrUserNotFound
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.events.Notify(events.New(events.UserDeleted, user, "user deleted"))

	return nil
}

// List returns every user with the password hash cleared. Hashes never
// leave the service layer on read paths.
func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	for _, u := range users {
		u.PasswordHash = ""
	}

	return users, nil
}
