package carousel

import "time"

// Item is one slide of the home-page hero carousel. Black toggles the text
// overlay color so titles stay readable on bright images.
type Item struct {
	ID    string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Title string `gorm:"not null" json:"title"`
	Image string `gorm:"not null" json:"image"`
	Black bool   `gorm:"not null;default:false" json:"black"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
