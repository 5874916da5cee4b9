package team

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/vanshika704/gdg/internal/domain"
)

// Batches are the cohort years a member can belong to.
var Batches = []string{"2024-2028", "2023-2027", "2022-2026"}

// Member is a core-team member shown on the about page carousel.
type Member struct {
	ID       string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name     string `gorm:"not null" json:"name"`
	Position string `gorm:"not null" json:"position"`
	Batch    string `gorm:"not null" json:"batch"`
	Image    string `gorm:"not null" json:"image"`
	Quote    string `gorm:"not null" json:"quote"`

	CreatedAt time.Time `json:"created_at"`
}

// ValidBatch reports whether b is one of the known cohorts.
func ValidBatch(b string) bool {
	return slices.Contains(Batches, b)
}

// BeforeSave keeps the batch enum honest at the store level as well; the
// handler checks it earlier for a friendlier error.
func (m *Member) BeforeSave(tx *gorm.DB) error {
	if !ValidBatch(m.Batch) {
		return domain.NewValidationError(fmt.Sprintf("batch must be one of: %s", strings.Join(Batches, ", ")))
	}
	return nil
}
