package repositories

import (
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sentag/internal/models"
)

func TestHasVisitToday(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAnalyticsRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("DATE(visited_at) = CURRENT_DATE")).
		WithArgs("v-1", "sentag.ru").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	seen, err := repo.HasVisitToday("v-1", "sentag.ru")

	require.NoError(t, err)
	assert.True(t, seen)
}

func TestHasVisitTodayMiss(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAnalyticsRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("DATE(visited_at) = CURRENT_DATE")).
		WithArgs("v-1", "sentag.ru").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	seen, err := repo.HasVisitToday("v-1", "sentag.ru")

	require.NoError(t, err)
	assert.False(t, seen)
}

func TestUpsertVisitorConflictClause(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAnalyticsRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("ON CONFLICT (visitor_id)")).
		WithArgs("v-1", "ua", "sentag.ru").
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.UpsertVisitor("v-1", "ua", "sentag.ru"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClicksByDayGroupsByDate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAnalyticsRepository(db)

	day := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"click_date", "button_name", "button_location", "click_count"}).
		AddRow(day, "Получить расчет", "hero", 5).
		AddRow(day, "Скачать презентацию", "footer", 2).
		AddRow(day.AddDate(0, 0, -1), "Получить расчет", "hero", 1)

	mock.ExpectQuery(regexp.QuoteMeta("FROM button_clicks")).
		WillReturnRows(rows)

	byDay, err := repo.ClicksByDay(day.AddDate(0, 0, -30))

	require.NoError(t, err)
	require.Len(t, byDay, 2)
	assert.Len(t, byDay["2026-08-20"], 2)
	assert.Equal(t, 1, byDay["2026-08-19"][0].Count)
}

func TestFormCounts(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAnalyticsRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM request_forms")).
		WillReturnRows(sqlmock.NewRows([]string{"step1_count", "step2_count"}).AddRow(10, 4))

	step1, step2, err := repo.FormCounts(time.Now().AddDate(0, 0, -7))

	require.NoError(t, err)
	assert.Equal(t, 10, step1)
	assert.Equal(t, 4, step2)
}

func TestAvgStepDurationsNullSafe(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAnalyticsRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("EXTRACT(EPOCH FROM")).
		WillReturnRows(sqlmock.NewRows([]string{"avg_step1", "avg_step2"}).AddRow(nil, nil))

	avg1, avg2, err := repo.AvgStepDurations(time.Now().AddDate(0, 0, -30))

	require.NoError(t, err)
	assert.Zero(t, avg1)
	assert.Zero(t, avg2)
}

func TestFirstVisitNone(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAnalyticsRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT MIN(visited_at)")).
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows([]string{"min"}).AddRow(nil))

	first, err := repo.FirstVisit("ghost")

	require.NoError(t, err)
	assert.Nil(t, first)
}

func TestInsertClickNullableVisitor(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAnalyticsRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO button_clicks")).
		WithArgs("Получить расчет", "hero", "ua", "1.1.1.1", nil, "").
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.InsertClick(&models.ButtonClick{
		ButtonName:     "Получить расчет",
		ButtonLocation: "hero",
		UserAgent:      "ua",
		IPAddress:      "1.1.1.1",
	})

	assert.NoError(t, err)
}
