package domain

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is the authenticated identity held by the session store and attached
// to every view-level call. The web tier never sees credentials beyond the
// login form; the users service owns accounts and password storage.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// IsAdmin reports whether the user may reach the admin console.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
