package services

import (
	"errors"
	"fmt"
	"log"

	"sentag/internal/models"
	"sentag/internal/pdf"
	"sentag/internal/repositories"
)

var ErrRequestNotFound = errors.New("request not found")

type RequestService interface {
	SaveStep1(req *models.SaveRequestStep1) (int, error)
	SaveStep2(req *models.SaveRequestStep2) error
	List() ([]*models.RequestForm, error)
	Delete(id int) error
	ExportPDF(id int) ([]byte, string, error)
}

type requestService struct {
	requests  repositories.RequestRepository
	analytics repositories.AnalyticsRepository
	pdfGen    pdf.Generator
}

func NewRequestService(
	requests repositories.RequestRepository,
	analytics repositories.AnalyticsRepository,
	pdfGen pdf.Generator,
) RequestService {
	return &requestService{requests: requests, analytics: analytics, pdfGen: pdfGen}
}

func (s *requestService) SaveStep1(req *models.SaveRequestStep1) (int, error) {
	return s.requests.CreateStep1(req)
}

func (s *requestService) SaveStep2(req *models.SaveRequestStep2) error {
	err := s.requests.CompleteStep2(req)
	if errors.Is(err, repositories.ErrRequestNotFound) {
		return ErrRequestNotFound
	}
	return err
}

// List — сначала ретеншн (7 дней), потом выборка, потом обогащение
// каждой заявки активностью посетителя до старта формы.
func (s *requestService) List() ([]*models.RequestForm, error) {
	purged, err := s.requests.DeleteOlderThan7Days()
	if err != nil {
		return nil, err
	}
	if purged > 0 {
		log.Printf("[requests][list] purged old requests: %d", purged)
	}

	forms, err := s.requests.List()
	if err != nil {
		return nil, err
	}

	for _, f := range forms {
		f.UserActivity = s.collectActivity(f)
	}
	return forms, nil
}

// collectActivity — история до начала заполнения формы: первый визит,
// время на сайте и клики строго до step1_started_at.
func (s *requestService) collectActivity(f *models.RequestForm) *models.UserActivity {
	activity := &models.UserActivity{Clicks: []models.ActivityClick{}}

	if f.VisitorID == nil || f.Step1StartedAt == nil {
		return activity
	}

	firstVisit, err := s.analytics.FirstVisit(*f.VisitorID)
	if err != nil {
		log.Printf("[requests][list] first visit lookup failed for request=%d: %v", f.ID, err)
		return activity
	}
	if firstVisit != nil {
		activity.FirstVisit = firstVisit
		activity.TimeOnSite = int(f.Step1StartedAt.Sub(*firstVisit).Seconds())
	}

	clicks, err := s.analytics.ClicksBefore(*f.VisitorID, *f.Step1StartedAt)
	if err != nil {
		log.Printf("[requests][list] clicks lookup failed for request=%d: %v", f.ID, err)
		return activity
	}
	if clicks != nil {
		activity.Clicks = clicks
	}
	return activity
}

func (s *requestService) Delete(id int) error {
	err := s.requests.Delete(id)
	if errors.Is(err, repositories.ErrRequestNotFound) {
		return ErrRequestNotFound
	}
	return err
}

func (s *requestService) ExportPDF(id int) ([]byte, string, error) {
	form, err := s.requests.GetByID(id)
	if err != nil {
		return nil, "", err
	}
	if form == nil {
		return nil, "", ErrRequestNotFound
	}

	data, err := s.pdfGen.GenerateRequestSummary(form)
	if err != nil {
		return nil, "", err
	}
	return data, fmt.Sprintf("request_%d.pdf", form.ID), nil
}
