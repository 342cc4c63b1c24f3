package models

import "time"

// Visitor — анонимный посетитель; ключ генерируется на клиенте.
type Visitor struct {
	VisitorID    string    `json:"visitor_id"`
	UserAgent    string    `json:"user_agent"`
	Domain       string    `json:"domain"`
	FirstVisit   time.Time `json:"first_visit"`
	LastActivity time.Time `json:"last_activity"`
}

type PageVisit struct {
	ID        int       `json:"id"`
	VisitorID string    `json:"visitor_id"`
	UserAgent string    `json:"user_agent"`
	IPAddress string    `json:"ip_address"`
	Domain    string    `json:"domain"`
	VisitedAt time.Time `json:"visited_at"`
}

type ButtonClick struct {
	ID             int       `json:"id"`
	ButtonName     string    `json:"button_name"`
	ButtonLocation string    `json:"button_location"`
	UserAgent      string    `json:"user_agent"`
	IPAddress      string    `json:"ip_address"`
	VisitorID      *string   `json:"visitor_id"`
	Domain         string    `json:"domain"`
	ClickedAt      time.Time `json:"clicked_at"`
}

type TrackRequest struct {
	VisitorID      string `json:"visitor_id"`
	Domain         string `json:"domain"`
	ButtonName     string `json:"button_name"`
	ButtonLocation string `json:"button_location"`
}

type TrackClickRequest struct {
	ButtonName     string `json:"button_name" binding:"required"`
	ButtonLocation string `json:"button_location" binding:"required"`
}

// ClickStats — сводка за 30 дней для админ-панели.
type ClickStats struct {
	StatsByDay      map[string][]DayButtonStat `json:"stats_by_day"`
	TotalStats      []ButtonTotal              `json:"total_stats"`
	UniqueVisitors  int                        `json:"unique_visitors"`
	Step1Count      int                        `json:"step1_count"`
	Step2Count      int                        `json:"step2_count"`
	ConversionRate  float64                    `json:"conversion_rate"`
	AvgStep1Seconds int                        `json:"avg_step1_seconds"`
	AvgStep2Seconds int                        `json:"avg_step2_seconds"`
}

type DayButtonStat struct {
	ButtonName     string `json:"button_name"`
	ButtonLocation string `json:"button_location"`
	Count          int    `json:"count"`
}

type ButtonTotal struct {
	ButtonName     string `json:"button_name"`
	ButtonLocation string `json:"button_location"`
	TotalClicks    int    `json:"total_clicks"`
}

// WeeklyStats — данные для еженедельного отчета в Telegram.
type WeeklyStats struct {
	From            time.Time
	To              time.Time
	NewRequests     int
	Step1Count      int
	Step2Count      int
	AvgStep1Seconds int
	AvgStep2Seconds int
	Clicks          []ButtonTotal
}
