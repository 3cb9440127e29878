package events

import "log"

// AuditListener writes a line for every event, whatever the type.
type AuditListener struct{}

func NewAuditListener() *AuditListener {
	return &AuditListener{}
}

func (l *AuditListener) Handle(event Event) error {
	email := ""
	if event.User != nil {
		email = event.User.Email
	}
	log.Printf("audit: %s user=%s at=%s desc=%q", event.Type, email,
		event.Timestamp.Format("2006-01-02T15:04:05Z07:00"), event.Description)
	return nil
}

func (l *AuditListener) Name() string {
	return "audit-log"
}
