package contact

import "time"

// Message is a submission from the public contact form.
type Message struct {
	ID      string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name    string `gorm:"not null" json:"name"`
	Email   string `gorm:"not null" json:"email"`
	Message string `gorm:"not null" json:"message"`

	CreatedAt time.Time `json:"created_at"`
}
