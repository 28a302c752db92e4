package internal

// Session represents an authenticated Arca login
type Session struct {
	AuthToken              string `json:"auth_token"`
	UserID                 string `json:"uuid"`
	PasswordUpdateRequired bool   `json:"password_update_required"`
}

// Authenticated reports whether the session carries a token.
// A session without one must not be used for any further call.
func (s *Session) Authenticated() bool {
	return s != nil && s.AuthToken != ""
}
