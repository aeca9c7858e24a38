// ABOUTME: User domain model and public profile shape
// ABOUTME: Password hashes never leave the store layer in responses

package models

// User is a credential record. The store owns these; they are immutable at
// runtime (no registration or password-change flow exists).
type User struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"` // bcrypt, never serialized
	Email        string `json:"email,omitempty"`
}

// Profile is the public view of a user returned by the API
type Profile struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
}

// Profile returns the public fields of the user
func (u *User) Profile() Profile {
	return Profile{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
	}
}
