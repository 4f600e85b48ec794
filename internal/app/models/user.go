package models

// User is an account in the `users` collection. Passwords are stored
// and compared as plain strings; this service is explicitly not an
// authentication-security design.
type User struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Password  string `json:"password,omitempty"`
	Name      string `json:"name"`
	CreatedAt string `json:"createdAt"`
}

// WithoutPassword returns the identity shape persisted under the
// active-session key and returned to clients.
func (u User) WithoutPassword() User {
	u.Password = ""
	return u
}
