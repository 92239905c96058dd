package models

import "time"

// User represents an author or reader account
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Username  string    `json:"username" gorm:"uniqueIndex;size:100"`
	Email     string    `json:"email" gorm:"uniqueIndex;size:255"` // Ensure email is unique across all users
	Name      string    `json:"name"`
	Bio       string    `json:"bio"`
	Password  string    `json:"-"` // Store hashed password, ignore for JSON serialization
	Role      string    `json:"role" gorm:"size:50;default:user"`
	Verified  bool      `json:"verified"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AuthorProfile is the public subset of a user joined onto articles and
// comments in read responses.
type AuthorProfile struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Bio      string `json:"bio"`
}

// Profile returns the user's public author profile.
func (u *User) Profile() AuthorProfile {
	return AuthorProfile{
		Username: u.Username,
		Email:    u.Email,
		Name:     u.Name,
		Bio:      u.Bio,
	}
}
