package users

import "time"

// User is a back-office account. Password is nil for accounts created
// through Google sign-in.
type User struct {
	ID       string  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Username string  `gorm:"not null" json:"username"`
	Email    string  `gorm:"not null;uniqueIndex" json:"email"`
	Password *string `gorm:"type:text" json:"-"`

	AuthProvider string  `gorm:"not null;default:'local'" json:"auth_provider"`
	GoogleSub    *string `gorm:"uniqueIndex" json:"-"`
	Role         string  `gorm:"not null;default:'admin'" json:"role"`

	CreatedAt time.Time `json:"created_at"`
}
