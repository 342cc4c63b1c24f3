package repositories

import (
	"database/sql"
	"fmt"

	"sentag/internal/models"
)

type SessionRepository interface {
	Create(s *models.Session) error
	GetUserByToken(token string) (*models.User, error)
}

type sessionRepository struct {
	DB *sql.DB
}

func NewSessionRepository(db *sql.DB) SessionRepository {
	return &sessionRepository{DB: db}
}

func (r *sessionRepository) Create(s *models.Session) error {
	const q = `
		INSERT INTO sessions (user_id, session_token, expires_at, ip_address, user_agent)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`
	if err := r.DB.QueryRow(q, s.UserID, s.Token, s.ExpiresAt, s.IPAddress, s.UserAgent).
		Scan(&s.ID, &s.CreatedAt); err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	return nil
}

// GetUserByToken — на каждый вызов заново резолвим токен в пользователя.
// Сессия должна быть непросроченной, пользователь — активным.
func (r *sessionRepository) GetUserByToken(token string) (*models.User, error) {
	const q = `
		SELECT u.id, u.email, u.role, u.is_active, u.created_at
		FROM sessions s
		JOIN users u ON s.user_id = u.id
		WHERE s.session_token = $1 AND s.expires_at > NOW() AND u.is_active = TRUE
	`
	u := &models.User{}
	err := r.DB.QueryRow(q, token).Scan(&u.ID, &u.Email, &u.Role, &u.IsActive, &u.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by session token: %w", err)
	}
	return u, nil
}
