// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// User roles. Promotion to admin happens out of band (seed or SQL); there is
// no endpoint for it.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents a registered account.
type User struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Name       string    `gorm:"not null" json:"name"`
	Email      string    `gorm:"uniqueIndex;not null" json:"email"`
	Password   string    `gorm:"not null" json:"-"`
	AvatarURL  string    `json:"avatarUrl"`
	LocationID *uint     `gorm:"index" json:"locationId,omitempty"`
	Location   *Location `gorm:"foreignKey:LocationID" json:"location,omitempty"`
	Role       string    `gorm:"not null;default:user" json:"role"`
	SavedPosts []Post    `gorm:"many2many:saved_posts" json:"savedPosts,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// IsAdmin reports whether the user carries the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// PublicUser is the sanitized view of another user's profile: no email, no
// role, and never the password digest.
type PublicUser struct {
	ID         uint      `json:"id"`
	Name       string    `json:"name"`
	AvatarURL  string    `json:"avatarUrl"`
	LocationID *uint     `json:"locationId,omitempty"`
	Location   *Location `json:"location,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Public returns the sanitized view of the user.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:         u.ID,
		Name:       u.Name,
		AvatarURL:  u.AvatarURL,
		LocationID: u.LocationID,
		Location:   u.Location,
		CreatedAt:  u.CreatedAt,
	}
}
