package models

import "time"

// UserRole controls access to contributor and admin routes.
type UserRole string

const (
	RoleUser        UserRole = "user"
	RoleContributor UserRole = "contributor"
	RoleAdmin       UserRole = "admin"
)

// User is a registered account. PasswordHash is a bcrypt hash and is
// never serialized in API responses.
type User struct {
	ID           string    `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"not null" json:"name"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Role         UserRole  `gorm:"default:user" json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// TableName specifies the table name for the User model.
func (User) TableName() string {
	return "users"
}
