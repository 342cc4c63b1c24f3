package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sentag/internal/models"
)

type fakeTelegram struct {
	sent []*models.WeeklyStats
	err  error
}

func (f *fakeTelegram) SendWeeklyStats(stats *models.WeeklyStats) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, stats)
	return nil
}

func TestTrackRequiresVisitorID(t *testing.T) {
	svc := NewAnalyticsService(&fakeAnalyticsRepo{}, &fakeTelegram{}, "sentag.ru")

	err := svc.Track(&models.TrackRequest{}, "ua", "1.1.1.1")

	assert.ErrorIs(t, err, ErrVisitorIDRequired)
}

func TestTrackFirstVisitOfDay(t *testing.T) {
	repo := &fakeAnalyticsRepo{visitsToday: map[string]bool{}}
	svc := NewAnalyticsService(repo, &fakeTelegram{}, "sentag.ru")

	err := svc.Track(&models.TrackRequest{VisitorID: "v-1"}, "ua", "1.1.1.1")

	require.NoError(t, err)
	require.Len(t, repo.visits, 1)
	// домен по умолчанию берётся из конфигурации
	assert.Equal(t, "sentag.ru", repo.visits[0].Domain)
	assert.Equal(t, []string{"v-1"}, repo.upserts)
}

func TestTrackRepeatVisitSameDayDeduped(t *testing.T) {
	repo := &fakeAnalyticsRepo{visitsToday: map[string]bool{"v-1|sentag.ru": true}}
	svc := NewAnalyticsService(repo, &fakeTelegram{}, "sentag.ru")

	err := svc.Track(&models.TrackRequest{VisitorID: "v-1"}, "ua", "1.1.1.1")

	require.NoError(t, err)
	assert.Empty(t, repo.visits)
	// карточка посетителя обновляется всегда
	assert.Equal(t, []string{"v-1"}, repo.upserts)
}

func TestTrackButtonClick(t *testing.T) {
	repo := &fakeAnalyticsRepo{visitsToday: map[string]bool{}}
	svc := NewAnalyticsService(repo, &fakeTelegram{}, "sentag.ru")

	err := svc.Track(&models.TrackRequest{
		VisitorID:      "v-1",
		ButtonName:     "Получить расчет",
		ButtonLocation: "hero",
	}, "ua", "1.1.1.1")

	require.NoError(t, err)
	require.Len(t, repo.clicks, 1)
	assert.Equal(t, "Получить расчет", repo.clicks[0].ButtonName)
	require.NotNil(t, repo.clicks[0].VisitorID)
	assert.Equal(t, "v-1", *repo.clicks[0].VisitorID)
	// клик не считается визитом
	assert.Empty(t, repo.visits)
}

func TestClickStatsConversionRounding(t *testing.T) {
	repo := &fakeAnalyticsRepo{step1: 3, step2: 1, avg1: 42.6, avg2: 0}
	svc := NewAnalyticsService(repo, &fakeTelegram{}, "sentag.ru")

	stats, err := svc.ClickStats()

	require.NoError(t, err)
	assert.Equal(t, 33.3, stats.ConversionRate)
	assert.Equal(t, 43, stats.AvgStep1Seconds)
	assert.NotNil(t, stats.TotalStats)
}

func TestClickStatsZeroStep1(t *testing.T) {
	svc := NewAnalyticsService(&fakeAnalyticsRepo{}, &fakeTelegram{}, "sentag.ru")

	stats, err := svc.ClickStats()

	require.NoError(t, err)
	assert.Zero(t, stats.ConversionRate)
}

func TestClearStats(t *testing.T) {
	repo := &fakeAnalyticsRepo{clearedClicks: 10, clearedVisits: 4}
	svc := NewAnalyticsService(repo, &fakeTelegram{}, "sentag.ru")

	clicks, visits, err := svc.ClearStats()

	require.NoError(t, err)
	assert.Equal(t, 10, clicks)
	assert.Equal(t, 4, visits)
}

func TestSendWeeklyStatsBuildsWeekWindow(t *testing.T) {
	repo := &fakeAnalyticsRepo{
		step1: 5, step2: 2,
		totals: []models.ButtonTotal{{ButtonName: "Скачать презентацию", ButtonLocation: "footer", TotalClicks: 8}},
	}
	tg := &fakeTelegram{}
	svc := NewAnalyticsService(repo, tg, "sentag.ru")

	require.NoError(t, svc.SendWeeklyStats())

	require.Len(t, tg.sent, 1)
	sent := tg.sent[0]
	assert.Equal(t, 5, sent.Step1Count)
	assert.Equal(t, 2, sent.Step2Count)
	assert.Len(t, sent.Clicks, 1)
	assert.InDelta(t, 7*24.0, sent.To.Sub(sent.From).Hours(), 0.1)
}

func TestSendWeeklyStatsUnconfigured(t *testing.T) {
	tg := &fakeTelegram{err: ErrTelegramNotConfigured}
	svc := NewAnalyticsService(&fakeAnalyticsRepo{}, tg, "sentag.ru")

	err := svc.SendWeeklyStats()

	assert.ErrorIs(t, err, ErrTelegramNotConfigured)
}
