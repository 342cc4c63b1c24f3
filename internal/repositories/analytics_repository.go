package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"sentag/internal/models"
)

type AnalyticsRepository interface {
	HasVisitToday(visitorID, domain string) (bool, error)
	InsertVisit(v *models.PageVisit) error
	UpsertVisitor(visitorID, userAgent, domain string) error
	InsertClick(c *models.ButtonClick) error

	ClicksByDay(since time.Time) (map[string][]models.DayButtonStat, error)
	ClickTotals(since time.Time) ([]models.ButtonTotal, error)
	UniqueVisitors(since time.Time) (int, error)
	FormCounts(since time.Time) (step1, step2 int, err error)
	AvgStepDurations(since time.Time) (avgStep1, avgStep2 float64, err error)

	FirstVisit(visitorID string) (*time.Time, error)
	ClicksBefore(visitorID string, before time.Time) ([]models.ActivityClick, error)

	ClearClicks() (int, error)
	ClearVisits() (int, error)
}

type analyticsRepository struct {
	DB *sql.DB
}

func NewAnalyticsRepository(db *sql.DB) AnalyticsRepository {
	return &analyticsRepository{DB: db}
}

func (r *analyticsRepository) HasVisitToday(visitorID, domain string) (bool, error) {
	const q = `
		SELECT id FROM page_visits
		WHERE visitor_id = $1 AND domain = $2 AND DATE(visited_at) = CURRENT_DATE
		LIMIT 1
	`
	var id int
	err := r.DB.QueryRow(q, visitorID, domain).Scan(&id)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("check visit today: %w", err)
	}
	return true, nil
}

func (r *analyticsRepository) InsertVisit(v *models.PageVisit) error {
	const q = `
		INSERT INTO page_visits (visitor_id, user_agent, ip_address, domain)
		VALUES ($1, $2, $3, $4)
	`
	if _, err := r.DB.Exec(q, v.VisitorID, v.UserAgent, v.IPAddress, v.Domain); err != nil {
		return fmt.Errorf("insert page visit: %w", err)
	}
	return nil
}

func (r *analyticsRepository) UpsertVisitor(visitorID, userAgent, domain string) error {
	const q = `
		INSERT INTO visitors (visitor_id, user_agent, first_visit, last_activity, domain)
		VALUES ($1, $2, NOW(), NOW(), $3)
		ON CONFLICT (visitor_id)
		DO UPDATE SET last_activity = NOW(), user_agent = EXCLUDED.user_agent, domain = EXCLUDED.domain
	`
	if _, err := r.DB.Exec(q, visitorID, userAgent, domain); err != nil {
		return fmt.Errorf("upsert visitor: %w", err)
	}
	return nil
}

func (r *analyticsRepository) InsertClick(c *models.ButtonClick) error {
	const q = `
		INSERT INTO button_clicks (button_name, button_location, user_agent, ip_address, visitor_id, domain)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	if _, err := r.DB.Exec(q,
		c.ButtonName, c.ButtonLocation, c.UserAgent, c.IPAddress, c.VisitorID, c.Domain,
	); err != nil {
		return fmt.Errorf("insert button click: %w", err)
	}
	return nil
}

func (r *analyticsRepository) ClicksByDay(since time.Time) (map[string][]models.DayButtonStat, error) {
	const q = `
		SELECT DATE(clicked_at) AS click_date, button_name, button_location, COUNT(*) AS click_count
		FROM button_clicks
		WHERE clicked_at >= $1
		GROUP BY DATE(clicked_at), button_name, button_location
		ORDER BY click_date DESC, click_count DESC
	`
	rows, err := r.DB.Query(q, since)
	if err != nil {
		return nil, fmt.Errorf("clicks by day: %w", err)
	}
	defer rows.Close()

	byDay := make(map[string][]models.DayButtonStat)
	for rows.Next() {
		var day time.Time
		var s models.DayButtonStat
		if err := rows.Scan(&day, &s.ButtonName, &s.ButtonLocation, &s.Count); err != nil {
			return nil, fmt.Errorf("scan day stat: %w", err)
		}
		key := day.Format("2006-01-02")
		byDay[key] = append(byDay[key], s)
	}
	return byDay, rows.Err()
}

func (r *analyticsRepository) ClickTotals(since time.Time) ([]models.ButtonTotal, error) {
	const q = `
		SELECT button_name, button_location, COUNT(*) AS total_clicks
		FROM button_clicks
		WHERE clicked_at >= $1
		GROUP BY button_name, button_location
		ORDER BY total_clicks DESC
	`
	rows, err := r.DB.Query(q, since)
	if err != nil {
		return nil, fmt.Errorf("click totals: %w", err)
	}
	defer rows.Close()

	var res []models.ButtonTotal
	for rows.Next() {
		var t models.ButtonTotal
		if err := rows.Scan(&t.ButtonName, &t.ButtonLocation, &t.TotalClicks); err != nil {
			return nil, fmt.Errorf("scan click total: %w", err)
		}
		res = append(res, t)
	}
	return res, rows.Err()
}

func (r *analyticsRepository) UniqueVisitors(since time.Time) (int, error) {
	var n sql.NullInt64
	err := r.DB.QueryRow(
		`SELECT COUNT(DISTINCT visitor_id) FROM page_visits WHERE visited_at >= $1`, since,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("unique visitors: %w", err)
	}
	return int(n.Int64), nil
}

func (r *analyticsRepository) FormCounts(since time.Time) (int, int, error) {
	const q = `
		SELECT COUNT(*) AS step1_count,
		       COUNT(CASE WHEN step2_completed_at IS NOT NULL THEN 1 END) AS step2_count
		FROM request_forms
		WHERE created_at >= $1
	`
	var step1, step2 int
	if err := r.DB.QueryRow(q, since).Scan(&step1, &step2); err != nil {
		return 0, 0, fmt.Errorf("form counts: %w", err)
	}
	return step1, step2, nil
}

func (r *analyticsRepository) AvgStepDurations(since time.Time) (float64, float64, error) {
	const q = `
		SELECT
			AVG(EXTRACT(EPOCH FROM (step1_completed_at - step1_started_at))) AS avg_step1,
			AVG(EXTRACT(EPOCH FROM (step2_completed_at - step2_started_at))) AS avg_step2
		FROM request_forms
		WHERE created_at >= $1
		  AND step1_started_at IS NOT NULL
		  AND step2_started_at IS NOT NULL
		  AND step2_completed_at IS NOT NULL
	`
	var s1, s2 sql.NullFloat64
	if err := r.DB.QueryRow(q, since).Scan(&s1, &s2); err != nil {
		return 0, 0, fmt.Errorf("avg step durations: %w", err)
	}
	return s1.Float64, s2.Float64, nil
}

func (r *analyticsRepository) FirstVisit(visitorID string) (*time.Time, error) {
	var t sql.NullTime
	err := r.DB.QueryRow(
		`SELECT MIN(visited_at) FROM page_visits WHERE visitor_id = $1`, visitorID,
	).Scan(&t)
	if err != nil {
		return nil, fmt.Errorf("first visit: %w", err)
	}
	if !t.Valid {
		return nil, nil
	}
	return &t.Time, nil
}

func (r *analyticsRepository) ClicksBefore(visitorID string, before time.Time) ([]models.ActivityClick, error) {
	const q = `
		SELECT button_name, button_location, clicked_at
		FROM button_clicks
		WHERE visitor_id = $1 AND clicked_at < $2
		ORDER BY clicked_at ASC
	`
	rows, err := r.DB.Query(q, visitorID, before)
	if err != nil {
		return nil, fmt.Errorf("clicks before: %w", err)
	}
	defer rows.Close()

	var res []models.ActivityClick
	for rows.Next() {
		var c models.ActivityClick
		if err := rows.Scan(&c.ButtonName, &c.ButtonLocation, &c.ClickedAt); err != nil {
			return nil, fmt.Errorf("scan activity click: %w", err)
		}
		res = append(res, c)
	}
	return res, rows.Err()
}

func (r *analyticsRepository) ClearClicks() (int, error) {
	res, err := r.DB.Exec(`DELETE FROM button_clicks`)
	if err != nil {
		return 0, fmt.Errorf("clear clicks: %w", err)
	}
	n, _ := res.RowsAffected()
	return int(n), nil
}

func (r *analyticsRepository) ClearVisits() (int, error) {
	res, err := r.DB.Exec(`DELETE FROM page_visits`)
	if err != nil {
		return 0, fmt.Errorf("clear visits: %w", err)
	}
	n, _ := res.RowsAffected()
	return int(n), nil
}
