// Package auth turns an incoming request into an entities.Principal.
package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/SergeyBogomolovv/chef-market/internal/entities"
)

var ErrUnauthenticated = errors.New("missing or invalid credentials")

type Verifier interface {
	Verify(r *http.Request) (entities.Principal, error)
}

type principalKey struct{}

func WithPrincipal(ctx context.Context, p entities.Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

func FromContext(ctx context.Context) (entities.Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(entities.Principal)
	return p, ok
}

// HeaderVerifier trusts identity headers set by an upstream gateway.
type HeaderVerifier struct{}

func (HeaderVerifier) Verify(r *http.Request) (entities.Principal, error) {
	id := strings.TrimSpace(r.Header.Get("X-User-Id"))
	if id == "" {
		return entities.Principal{}, ErrUnauthenticated
	}

	p := entities.Principal{
		ID:    id,
		Email: strings.TrimSpace(r.Header.Get("X-User-Email")),
		Roles: []entities.Role{entities.RoleBuyer},
	}
	for _, raw := range strings.Split(r.Header.Get("X-User-Roles"), ",") {
		switch role := entities.Role(strings.TrimSpace(raw)); role {
		case entities.RoleSeller, entities.RoleAdmin:
			p.Roles = append(p.Roles, role)
		}
	}
	return p, nil
}

// RoleChecker answers role questions from the principal's flags, falling
// back to an allow-list of admin e-mails.
type RoleChecker struct {
	adminEmails map[string]struct{}
}

func NewRoleChecker(adminEmails []string) *RoleChecker {
	m := make(map[string]struct{}, len(adminEmails))
	for _, e := range adminEmails {
		m[strings.ToLower(strings.TrimSpace(e))] = struct{}{}
	}
	return &RoleChecker{adminEmails: m}
}

func (c *RoleChecker) HasRole(p entities.Principal, role entities.Role) bool {
	if p.Is(role) {
		return true
	}
	if role == entities.RoleAdmin && p.Email != "" {
		_, ok := c.adminEmails[strings.ToLower(p.Email)]
		return ok
	}
	return false
}
