package auth

import "github.com/eduai/eduai/internal/api"

// Session combines the authenticated identity with its credential pair.
// The zero value is the logged-out state.
type Session struct {
	User         *api.User
	Token        string
	RefreshToken string
}

// IsAuthenticated reports whether both an identity and an access token are
// present. It is the single predicate gating protected views.
func (s Session) IsAuthenticated() bool {
	return s.User != nil && s.Token != ""
}

// IsAdmin is computed from the role on every read. The persisted flag is
// never trusted, so a stale record cannot grant admin access after a
// server-side role change.
func (s Session) IsAdmin() bool {
	return s.IsAuthenticated() && s.User.Role == api.RoleAdmin
}
