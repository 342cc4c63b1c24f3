package models

import "time"

const (
	RequestStatusStep1 = "step1_completed"
	RequestStatusDone  = "completed"
)

// RequestForm — двухшаговая заявка на расчет с лендинга.
// Шаг 1 — контакты и объект, шаг 2 — параметры бассейна и файлы.
// Записи старше 7 дней вычищаются при чтении списка.
type RequestForm struct {
	ID            int     `json:"id"`
	Phone         string  `json:"phone"`
	Email         string  `json:"email"`
	Company       string  `json:"company"`
	Role          string  `json:"role"`
	FullName      string  `json:"full_name"`
	ObjectName    string  `json:"object_name"`
	ObjectAddress string  `json:"object_address"`
	Consent       bool    `json:"consent"`
	MarketingOK   bool    `json:"marketing_consent"`
	VisitorsInfo  *string `json:"visitors_info"`
	PoolSize      *string `json:"pool_size"`
	Deadline      *string `json:"deadline"`

	CompanyCardURL *string  `json:"company_card_url"`
	PoolSchemeURLs []string `json:"pool_scheme_urls"`

	Status string `json:"status"`

	Step1StartedAt   *time.Time `json:"step1_started_at"`
	Step1CompletedAt *time.Time `json:"step1_completed_at"`
	Step2StartedAt   *time.Time `json:"step2_started_at"`
	Step2CompletedAt *time.Time `json:"step2_completed_at"`

	VisitorID *string   `json:"visitor_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Заполняется на чтении: активность посетителя до начала формы
	UserActivity *UserActivity `json:"user_activity,omitempty"`
}

// UserActivity — что делал посетитель на сайте до того, как начал форму.
type UserActivity struct {
	Clicks     []ActivityClick `json:"clicks"`
	FirstVisit *time.Time      `json:"first_visit"`
	TimeOnSite int             `json:"time_on_site"` // секунды от первого визита до старта формы
}

type ActivityClick struct {
	ButtonName     string    `json:"button_name"`
	ButtonLocation string    `json:"button_location"`
	ClickedAt      time.Time `json:"clicked_at"`
}

type SaveRequestStep1 struct {
	Phone         string     `json:"phone" binding:"required"`
	Email         string     `json:"email"`
	Company       string     `json:"company"`
	Role          string     `json:"role"`
	FullName      string     `json:"fullName"`
	ObjectName    string     `json:"objectName"`
	ObjectAddress string     `json:"objectAddress"`
	Consent       bool       `json:"consent"`
	MarketingOK   bool       `json:"marketingConsent"`
	VisitorID     *string    `json:"visitorId"`
	Step1Started  *time.Time `json:"step1StartedAt"`
}

type SaveRequestStep2 struct {
	RequestID      int      `json:"requestId" binding:"required"`
	VisitorsInfo   *string  `json:"visitorsInfo"`
	PoolSize       *string  `json:"poolSize"`
	Deadline       *string  `json:"deadline"`
	CompanyCardURL *string  `json:"companyCardUrl"`
	PoolSchemeURLs []string `json:"poolSchemeUrls"`
}
