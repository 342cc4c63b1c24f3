package repositories

import (
	"database/sql"
	"fmt"

	"sentag/internal/models"
)

type OTPRepository interface {
	Create(otp *models.OneTimePassword) error
	GetValid(userID int, hash string) (*models.OneTimePassword, error)
	MarkUsed(id int) error
}

type otpRepository struct {
	DB *sql.DB
}

func NewOTPRepository(db *sql.DB) OTPRepository {
	return &otpRepository{DB: db}
}

func (r *otpRepository) Create(otp *models.OneTimePassword) error {
	const q = `
		INSERT INTO one_time_passwords (user_id, password_hash, expires_at)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`
	if err := r.DB.QueryRow(q, otp.UserID, otp.PasswordHash, otp.ExpiresAt).
		Scan(&otp.ID, &otp.CreatedAt); err != nil {
		return fmt.Errorf("create otp: %w", err)
	}
	return nil
}

// GetValid — последний непогашенный и непросроченный код с таким хешем.
// Старые коды не гасятся при выпуске нового, так что валидных может быть
// несколько — берём самый свежий.
func (r *otpRepository) GetValid(userID int, hash string) (*models.OneTimePassword, error) {
	const q = `
		SELECT id, user_id, password_hash, expires_at, used, created_at
		FROM one_time_passwords
		WHERE user_id = $1 AND password_hash = $2
		  AND expires_at > NOW() AND used = FALSE
		ORDER BY created_at DESC
		LIMIT 1
	`
	otp := &models.OneTimePassword{}
	err := r.DB.QueryRow(q, userID, hash).Scan(
		&otp.ID, &otp.UserID, &otp.PasswordHash, &otp.ExpiresAt, &otp.Used, &otp.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get valid otp: %w", err)
	}
	return otp, nil
}

func (r *otpRepository) MarkUsed(id int) error {
	if _, err := r.DB.Exec(`UPDATE one_time_passwords SET used = TRUE WHERE id = $1`, id); err != nil {
		return fmt.Errorf("mark otp used: %w", err)
	}
	return nil
}
