package pdf

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sentag/internal/models"
)

func TestGenerateRequestSummary(t *testing.T) {
	// без TTF генератор откатывается на встроенный шрифт
	gen := NewRequestGenerator("")

	poolSize := "25x10"
	done := time.Date(2026, 8, 20, 14, 30, 0, 0, time.UTC)
	form := &models.RequestForm{
		ID:               7,
		Phone:            "+79990001122",
		Email:            "client@example.com",
		FullName:         "Ivan Ivanov",
		ObjectName:       "Aquapark",
		Status:           models.RequestStatusDone,
		PoolSize:         &poolSize,
		PoolSchemeURLs:   []string{"a.pdf", "b.pdf"},
		Step1CompletedAt: &done,
		CreatedAt:        done,
	}

	data, err := gen.GenerateRequestSummary(form)

	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestGenerateRequestSummaryMinimalForm(t *testing.T) {
	gen := NewRequestGenerator("no/such/font.ttf")

	data, err := gen.GenerateRequestSummary(&models.RequestForm{ID: 1, CreatedAt: time.Now()})

	require.NoError(t, err)
	assert.NotEmpty(t, data)
}
