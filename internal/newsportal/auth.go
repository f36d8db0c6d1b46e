package newsportal

import (
	"context"
	"crypto/subtle"
)

const (
	PermAddNews        = "add_news"
	PermChangeNews     = "change_news"
	PermDeleteNews     = "delete_news"
	PermChangeCategory = "change_category"
	PermChangeTag      = "change_tag"
	PermChangePlugin   = "change_plugin"
)

// Staff is an authenticated editor.
type Staff struct {
	Name        string
	Permissions []string
}

func (s *Staff) HasPermission(permission string) bool {
	if s == nil {
		return false
	}
	for _, p := range s.Permissions {
		if p == permission {
			return true
		}
	}
	return false
}

type staffKey struct{}

func NewStaffContext(ctx context.Context, staff *Staff) context.Context {
	return context.WithValue(ctx, staffKey{}, staff)
}

// StaffFromContext returns nil for anonymous requests.
func StaffFromContext(ctx context.Context) *Staff {
	staff, _ := ctx.Value(staffKey{}).(*Staff)
	return staff
}

// RequirePermission returns ErrPermissionDenied unless the staff in ctx has permission.
func RequirePermission(ctx context.Context, permission string) error {
	if !StaffFromContext(ctx).HasPermission(permission) {
		return ErrPermissionDenied
	}
	return nil
}

// Authenticator matches bearer tokens against the configured editors.
type Authenticator struct {
	tokens map[string]Staff
}

func NewAuthenticator(tokens map[string]Staff) *Authenticator {
	return &Authenticator{tokens: tokens}
}

func (a *Authenticator) Authenticate(token string) *Staff {
	if token == "" {
		return nil
	}

	var found *Staff
	for t, staff := range a.tokens {
		if subtle.ConstantTimeCompare([]byte(t), []byte(token)) == 1 {
			s := staff
			found = &s
		}
	}

	return found
}
