package repositories

import (
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"sentag/internal/models"
)

type RequestRepository interface {
	CreateStep1(req *models.SaveRequestStep1) (int, error)
	CompleteStep2(req *models.SaveRequestStep2) error
	GetByID(id int) (*models.RequestForm, error)
	List() ([]*models.RequestForm, error)
	Delete(id int) error
	DeleteOlderThan7Days() (int, error)
}

var ErrRequestNotFound = fmt.Errorf("request form not found")

type requestRepository struct {
	DB *sql.DB
}

func NewRequestRepository(db *sql.DB) RequestRepository {
	return &requestRepository{DB: db}
}

func (r *requestRepository) CreateStep1(req *models.SaveRequestStep1) (int, error) {
	const q = `
		INSERT INTO request_forms (
			phone, email, company, role, full_name,
			object_name, object_address, consent, marketing_consent,
			visitor_id, step1_started_at, step1_completed_at, status
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,NOW(),'step1_completed')
		RETURNING id
	`
	var id int
	err := r.DB.QueryRow(q,
		req.Phone, req.Email, req.Company, req.Role, req.FullName,
		req.ObjectName, req.ObjectAddress, req.Consent, req.MarketingOK,
		req.VisitorID, req.Step1Started,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("create request step1: %w", err)
	}
	return id, nil
}

// CompleteStep2 — единственная мутация заявки: досыпаем поля второго шага
// и переводим статус в completed. Владение id — единственная проверка.
func (r *requestRepository) CompleteStep2(req *models.SaveRequestStep2) error {
	const q = `
		UPDATE request_forms
		SET visitors_info = $1,
		    pool_size = $2,
		    deadline = $3,
		    company_card_url = $4,
		    pool_scheme_urls = $5,
		    step2_completed_at = NOW(),
		    updated_at = NOW(),
		    status = 'completed'
		WHERE id = $6
	`
	res, err := r.DB.Exec(q,
		req.VisitorsInfo, req.PoolSize, req.Deadline,
		req.CompanyCardURL, pq.Array(req.PoolSchemeURLs), req.RequestID,
	)
	if err != nil {
		return fmt.Errorf("complete request step2: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("complete request step2 rows: %w", err)
	}
	if n == 0 {
		return ErrRequestNotFound
	}
	return nil
}

const requestColumns = `
	id, phone, email, company, role, full_name,
	object_name, object_address, consent, marketing_consent,
	visitors_info, pool_size, deadline, company_card_url, pool_scheme_urls,
	status, step1_started_at, step1_completed_at, step2_started_at, step2_completed_at,
	visitor_id, created_at, updated_at
`

func scanRequest(row interface {
	Scan(dest ...interface{}) error
}) (*models.RequestForm, error) {
	f := &models.RequestForm{}
	var (
		phone, email, company, role, fullName sql.NullString
		objName, objAddr                      sql.NullString
		visitorsInfo, poolSize, deadline      sql.NullString
		cardURL, visitorID                    sql.NullString
		schemes                               pq.StringArray
		s1s, s1c, s2s, s2c                    sql.NullTime
	)
	err := row.Scan(
		&f.ID, &phone, &email, &company, &role, &fullName,
		&objName, &objAddr, &f.Consent, &f.MarketingOK,
		&visitorsInfo, &poolSize, &deadline, &cardURL, &schemes,
		&f.Status, &s1s, &s1c, &s2s, &s2c,
		&visitorID, &f.CreatedAt, &f.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	f.Phone = phone.String
	f.Email = email.String
	f.Company = company.String
	f.Role = role.String
	f.FullName = fullName.String
	f.ObjectName = objName.String
	f.ObjectAddress = objAddr.String
	if visitorsInfo.Valid {
		f.VisitorsInfo = &visitorsInfo.String
	}
	if poolSize.Valid {
		f.PoolSize = &poolSize.String
	}
	if deadline.Valid {
		f.Deadline = &deadline.String
	}
	if cardURL.Valid {
		f.CompanyCardURL = &cardURL.String
	}
	if visitorID.Valid {
		f.VisitorID = &visitorID.String
	}
	f.PoolSchemeURLs = schemes
	if s1s.Valid {
		f.Step1StartedAt = &s1s.Time
	}
	if s1c.Valid {
		f.Step1CompletedAt = &s1c.Time
	}
	if s2s.Valid {
		f.Step2StartedAt = &s2s.Time
	}
	if s2c.Valid {
		f.Step2CompletedAt = &s2c.Time
	}
	return f, nil
}

func (r *requestRepository) GetByID(id int) (*models.RequestForm, error) {
	q := `SELECT ` + requestColumns + ` FROM request_forms WHERE id = $1`
	f, err := scanRequest(r.DB.QueryRow(q, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get request by id: %w", err)
	}
	return f, nil
}

func (r *requestRepository) List() ([]*models.RequestForm, error) {
	q := `SELECT ` + requestColumns + ` FROM request_forms ORDER BY created_at DESC`
	rows, err := r.DB.Query(q)
	if err != nil {
		return nil, fmt.Errorf("list requests: %w", err)
	}
	defer rows.Close()

	var res []*models.RequestForm
	for rows.Next() {
		f, err := scanRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("scan request: %w", err)
		}
		res = append(res, f)
	}
	return res, rows.Err()
}

func (r *requestRepository) Delete(id int) error {
	res, err := r.DB.Exec(`DELETE FROM request_forms WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete request: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete request rows: %w", err)
	}
	if n == 0 {
		return ErrRequestNotFound
	}
	return nil
}

// DeleteOlderThan7Days — ретеншн заявок привязан к чтению списка,
// отдельного планировщика нет.
func (r *requestRepository) DeleteOlderThan7Days() (int, error) {
	res, err := r.DB.Exec(`DELETE FROM request_forms WHERE created_at < NOW() - INTERVAL '7 days'`)
	if err != nil {
		return 0, fmt.Errorf("purge old requests: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("purge old requests rows: %w", err)
	}
	return int(n), nil
}
