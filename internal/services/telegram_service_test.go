package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"sentag/internal/models"
)

func TestSendWeeklyStatsWithoutCredentials(t *testing.T) {
	svc := NewTelegramService("", 0)

	err := svc.SendWeeklyStats(&models.WeeklyStats{})

	assert.ErrorIs(t, err, ErrTelegramNotConfigured)
}

func TestFormatWeeklyStats(t *testing.T) {
	stats := &models.WeeklyStats{
		From:            time.Date(2026, 8, 17, 0, 0, 0, 0, time.UTC),
		To:              time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC),
		NewRequests:     4,
		Step1Count:      4,
		Step2Count:      1,
		AvgStep1Seconds: 95,
		AvgStep2Seconds: 0,
		Clicks: []models.ButtonTotal{
			{ButtonName: "Получить расчет", ButtonLocation: "hero", TotalClicks: 12},
		},
	}

	msg := formatWeeklyStats(stats)

	assert.Contains(t, msg, "📅 17.08.2026 - 24.08.2026")
	assert.Contains(t, msg, "Новых заявок: 4")
	assert.Contains(t, msg, "Конверсия: 25.0%")
	assert.Contains(t, msg, "Шаг 1: 1:35")
	// нулевая длительность показывается как отсутствие данных
	assert.Contains(t, msg, "Шаг 2: н/д")
	assert.Contains(t, msg, "всего 12 кликов")
	assert.Contains(t, msg, "Получить расчет (hero): 12")
}

func TestFormatWeeklyStatsNoClicks(t *testing.T) {
	msg := formatWeeklyStats(&models.WeeklyStats{From: time.Now(), To: time.Now()})

	assert.Contains(t, msg, "Кликов пока не было")
	assert.NotContains(t, msg, "Конверсия")
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "н/д", formatDuration(0))
	assert.Equal(t, "0:45", formatDuration(45))
	assert.Equal(t, "2:05", formatDuration(125))
}
