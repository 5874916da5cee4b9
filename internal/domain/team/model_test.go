package team

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vanshika704/gdg/internal/domain"
)

func TestValidBatch(t *testing.T) {
	for _, b := range Batches {
		assert.True(t, ValidBatch(b), b)
	}
	assert.False(t, ValidBatch("2020-2024"))
	assert.False(t, ValidBatch(""))
}

func TestBeforeSaveRejectsUnknownBatch(t *testing.T) {
	m := Member{Name: "n", Position: "p", Batch: "1999-2003", Quote: "q", Image: "i"}
	err := m.BeforeSave(nil)
	require.Error(t, err)

	var verr *domain.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestBeforeSaveAcceptsKnownBatch(t *testing.T) {
	m := Member{Name: "n", Position: "p", Batch: "2024-2028", Quote: "q", Image: "i"}
	assert.NoError(t, m.BeforeSave(nil))
}
