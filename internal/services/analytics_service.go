package services

import (
	"errors"
	"math"
	"time"

	"sentag/internal/models"
	"sentag/internal/repositories"
)

var ErrVisitorIDRequired = errors.New("visitor_id is required")

type AnalyticsService interface {
	Track(req *models.TrackRequest, userAgent, ip string) error
	TrackClick(req *models.TrackClickRequest, userAgent, ip string) error
	ClickStats() (*models.ClickStats, error)
	ClearStats() (clicks, visits int, err error)
	SendWeeklyStats() error
}

type analyticsService struct {
	repo     repositories.AnalyticsRepository
	telegram TelegramService
	domain   string
}

func NewAnalyticsService(repo repositories.AnalyticsRepository, telegram TelegramService, domain string) AnalyticsService {
	return &analyticsService{repo: repo, telegram: telegram, domain: domain}
}

// Track — посещение и/или клик одним вызовом. Визит на домен пишется не
// чаще раза в день на посетителя, карточка посетителя апсертится всегда.
func (s *analyticsService) Track(req *models.TrackRequest, userAgent, ip string) error {
	if req.VisitorID == "" {
		return ErrVisitorIDRequired
	}
	domain := req.Domain
	if domain == "" {
		domain = s.domain
	}

	if req.ButtonName == "" {
		seen, err := s.repo.HasVisitToday(req.VisitorID, domain)
		if err != nil {
			return err
		}
		if !seen {
			visit := &models.PageVisit{
				VisitorID: req.VisitorID,
				UserAgent: userAgent,
				IPAddress: ip,
				Domain:    domain,
			}
			if err := s.repo.InsertVisit(visit); err != nil {
				return err
			}
		}
		if err := s.repo.UpsertVisitor(req.VisitorID, userAgent, domain); err != nil {
			return err
		}
	}

	if req.ButtonName != "" && req.ButtonLocation != "" {
		visitorID := req.VisitorID
		click := &models.ButtonClick{
			ButtonName:     req.ButtonName,
			ButtonLocation: req.ButtonLocation,
			UserAgent:      userAgent,
			IPAddress:      ip,
			VisitorID:      &visitorID,
			Domain:         domain,
		}
		if err := s.repo.InsertClick(click); err != nil {
			return err
		}
	}
	return nil
}

func (s *analyticsService) TrackClick(req *models.TrackClickRequest, userAgent, ip string) error {
	click := &models.ButtonClick{
		ButtonName:     req.ButtonName,
		ButtonLocation: req.ButtonLocation,
		UserAgent:      userAgent,
		IPAddress:      ip,
	}
	return s.repo.InsertClick(click)
}

// ClickStats — сводка за последние 30 дней для админ-панели.
func (s *analyticsService) ClickStats() (*models.ClickStats, error) {
	since := time.Now().AddDate(0, 0, -30)

	byDay, err := s.repo.ClicksByDay(since)
	if err != nil {
		return nil, err
	}
	totals, err := s.repo.ClickTotals(since)
	if err != nil {
		return nil, err
	}
	visitors, err := s.repo.UniqueVisitors(since)
	if err != nil {
		return nil, err
	}
	step1, step2, err := s.repo.FormCounts(since)
	if err != nil {
		return nil, err
	}
	avg1, avg2, err := s.repo.AvgStepDurations(since)
	if err != nil {
		return nil, err
	}

	stats := &models.ClickStats{
		StatsByDay:      byDay,
		TotalStats:      totals,
		UniqueVisitors:  visitors,
		Step1Count:      step1,
		Step2Count:      step2,
		AvgStep1Seconds: int(math.Round(avg1)),
		AvgStep2Seconds: int(math.Round(avg2)),
	}
	if step1 > 0 {
		stats.ConversionRate = math.Round(float64(step2)/float64(step1)*1000) / 10
	}
	if stats.TotalStats == nil {
		stats.TotalStats = []models.ButtonTotal{}
	}
	return stats, nil
}

func (s *analyticsService) ClearStats() (int, int, error) {
	clicks, err := s.repo.ClearClicks()
	if err != nil {
		return 0, 0, err
	}
	visits, err := s.repo.ClearVisits()
	if err != nil {
		return clicks, 0, err
	}
	return clicks, visits, nil
}

// SendWeeklyStats — собирает недельный срез и шлёт его в Telegram-чат.
func (s *analyticsService) SendWeeklyStats() error {
	now := time.Now()
	weekAgo := now.AddDate(0, 0, -7)

	step1, step2, err := s.repo.FormCounts(weekAgo)
	if err != nil {
		return err
	}
	avg1, avg2, err := s.repo.AvgStepDurations(weekAgo)
	if err != nil {
		return err
	}
	clicks, err := s.repo.ClickTotals(weekAgo)
	if err != nil {
		return err
	}

	stats := &models.WeeklyStats{
		From:            weekAgo,
		To:              now,
		NewRequests:     step1,
		Step1Count:      step1,
		Step2Count:      step2,
		AvgStep1Seconds: int(avg1),
		AvgStep2Seconds: int(avg2),
		Clicks:          clicks,
	}
	return s.telegram.SendWeeklyStats(stats)
}
