package strategy

import (
	"context"

	apperror "github.com/HariharanVicky/user-management-service/internal/errors"
	"github.com/HariharanVicky/user-management-service/internal/user/domain"
)

// Authenticator is one credential-verification algorithm. Credentials
// arrive as a single opaque string; each implementation owns its format.
type Authenticator interface {
	Authenticate(ctx context.Context, credentials string) (*domain.User, error)
	Method() string
	Enabled() bool
}

// Registry selects an authenticator by method name. Selection is a map
// lookup; registration order is kept for Available.
type Registry struct {
	order    []string
	byMethod map[string]Authenticator
}

func NewRegistry(authenticators ...Authenticator) *Registry {
	r := &Registry{byMethod: make(map[string]Authenticator)}
	for _, a := range authenticators {
		if _, exists := r.byMethod[a.Method()]; !exists {
			r.order = append(r.order, a.Method())
		}
		r.byMethod[a.Method()] = a
	}
	return r
}

func (r *Registry) Authenticate(ctx context.Context, method, credentials string) (*domain.User, error) {
	a, ok := r.byMethod[method]
	if !ok {
		return nil, apperror.Invalid("unknown authentication method: " + method)
	}
	if !a.Enabled() {
		return nil, apperror.Unauthorized("authentication method disabled: " + method)
	}
	return a.Authenticate(ctx, credentials)
}

func (r *Registry) Available() []string {
	var methods []string
	for _, m := range r.order {
		if r.byMethod[m].Enabled() {
			methods = append(methods, m)
		}
	}
	return methods
}
