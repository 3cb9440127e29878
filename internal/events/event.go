package events

import (
	"fmt"
	"time"

	"github.com/HariharanVicky/user-management-service/internal/user/domain"
)

type Type string

const (
	UserRegistered  Type = "USER_REGISTERED"
	UserLoggedIn    Type = "USER_LOGGED_IN"
	UserLoggedOut   Type = "USER_LOGGED_OUT"
	UserUpdated     Type = "USER_UPDATED"
	UserDeleted     Type = "USER_DELETED"
	PasswordChanged Type = "PASSWORD_CHANGED"
	AccountLocked   Type = "ACCOUNT_LOCKED"
	AccountUnlocked Type = "ACCOUNT_UNLOCKED"
)

// Event is an immutable record of a user lifecycle action. Events are
// handed to listeners synchronously and never persisted.
type Event struct {
	Type        Type
	User        *domain.User
	Timestamp   time.Time
	Description string
}

func New(t Type, user *domain.User, description string) Event {
	return Event{
		Type:        t,
		User:        user,
		Timestamp:   time.Now(),
		Description: description,
	}
}

func ParseType(s string) (Type, error) {
	switch Type(s) {
	case UserRegistered, UserLoggedIn, UserLoggedOut, UserUpdated,
		UserDeleted, PasswordChanged, AccountLocked, AccountUnlocked:
		return Type(s), nil
	}
	return "", fmt.Errorf("unknown event type: %s", s)
}
