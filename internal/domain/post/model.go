package post

import (
	"time"

	"gorm.io/datatypes"
)

// Post is an Instagram-style update shown on the home page.
type Post struct {
	ID          string                       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Title       string                       `gorm:"not null" json:"title"`
	Description string                       `gorm:"not null" json:"description"`
	Image       string                       `gorm:"not null" json:"image"`
	Tags        datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"tags"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
