package events

import "log"

// EmailListener delivers email-style notifications for the lifecycle
// events that warrant one. Delivery is log-only; a real mail client
// would slot in here.
type EmailListener struct{}

func NewEmailListener() *EmailListener {
	return &EmailListener{}
}

func (l *EmailListener) Handle(event Event) error {
	switch event.Type {
	case UserRegistered:
		log.Printf("sending welcome email to %s", event.User.Email)
	case PasswordChanged:
		log.Printf("sending password change notification to %s", event.User.Email)
	case AccountLocked:
		log.Printf("sending account locked notification to %s", event.User.Email)
	case AccountUnlocked:
		log.Printf("sending account unlocked notification to %s", event.User.Email)
	}
	return nil
}

func (l *EmailListener) Name() string {
	return "email-notification"
}
