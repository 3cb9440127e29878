package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/HariharanVicky/user-management-service/pkg/constant"
)

var emailPattern = regexp.MustCompile(`^[A-Za-z0-9+_.-]+@(.+)$`)

// Result is the outcome of a single validator. Validators stop at the
// first failing check, so Message carries exactly one reason.
type Result struct {
	Valid   bool
	Message string
}

func success() Result {
	return Result{Valid: true}
}

func failure(msg string) Result {
	return Result{Message: msg}
}

func ValidateEmail(email string) Result {
	if strings.TrimSpace(email) == "" {
		return failure("Email is required")
	}
	if !emailPattern.MatchString(email) {
		return failure("Invalid email format")
	}
	return success()
}

func ValidatePassword(password string) Result {
	if len(password) < constant.MinPasswordLength {
		return failure(fmt.Sprintf("Password must be at least %d characters", constant.MinPasswordLength))
	}
	return success()
}

func ValidateName(name string) Result {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return failure("Name is required")
	}
	if len(trimmed) < constant.MinNameLength {
		return failure(fmt.Sprintf("Name must be at least %d characters", constant.MinNameLength))
	}
	return success()
}
