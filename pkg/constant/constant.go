package constant

const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"

	MinPasswordLength = 6
	MinNameLength     = 2

	AuthMethodEmailPassword = "EMAIL_PASSWORD"
	AuthMethodAPIKey        = "API_KEY"
)
