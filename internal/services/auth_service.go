package services

import (
	"errors"
	"log"
	"strings"
	"time"

	"sentag/internal/models"
	"sentag/internal/repositories"
	"sentag/internal/utils"
)

const (
	otpTTL     = 10 * time.Minute
	sessionTTL = 7 * 24 * time.Hour
)

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrUserInactive   = errors.New("user is inactive")
	ErrInvalidOTP     = errors.New("invalid or expired code")
	ErrSessionInvalid = errors.New("session is invalid or expired")
	ErrEmailDelivery  = errors.New("failed to send email")
)

type AuthService interface {
	RequestOTP(email string) error
	VerifyOTP(email, code, ip, userAgent string) (string, *models.User, error)
	VerifySession(token string) (*models.User, error)
}

type authService struct {
	users    repositories.UserRepository
	otps     repositories.OTPRepository
	sessions repositories.SessionRepository
	email    EmailService
}

func NewAuthService(
	users repositories.UserRepository,
	otps repositories.OTPRepository,
	sessions repositories.SessionRepository,
	email EmailService,
) AuthService {
	return &authService{users: users, otps: otps, sessions: sessions, email: email}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// RequestOTP — выпускает код и пытается доставить его на почту.
// Код коммитится до отправки: при сбое SMTP валидный код уже лежит в базе,
// а клиент получает ошибку. Лимита на количество запросов нет.
func (s *authService) RequestOTP(email string) error {
	user, err := s.resolveActiveUser(email)
	if err != nil {
		return err
	}

	code, err := utils.GenerateOTP()
	if err != nil {
		return err
	}

	otp := &models.OneTimePassword{
		UserID:       user.ID,
		PasswordHash: utils.HashOTP(code),
		ExpiresAt:    time.Now().UTC().Add(otpTTL),
	}
	if err := s.otps.Create(otp); err != nil {
		return err
	}

	if err := s.email.SendOTPEmail(user.Email, code); err != nil {
		log.Printf("[auth][request_otp] email delivery failed for userID=%d: %v", user.ID, err)
		return ErrEmailDelivery
	}
	return nil
}

// VerifyOTP — гасит код при первом совпадении и выдает сессию на 7 дней.
// Блокировки по числу попыток нет, перебор ограничен только сроком кода.
func (s *authService) VerifyOTP(email, code, ip, userAgent string) (string, *models.User, error) {
	user, err := s.resolveActiveUser(email)
	if err != nil {
		return "", nil, err
	}

	otp, err := s.otps.GetValid(user.ID, utils.HashOTP(strings.TrimSpace(code)))
	if err != nil {
		return "", nil, err
	}
	if otp == nil {
		return "", nil, ErrInvalidOTP
	}

	if err := s.otps.MarkUsed(otp.ID); err != nil {
		return "", nil, err
	}

	token, err := utils.NewSessionToken()
	if err != nil {
		return "", nil, err
	}
	session := &models.Session{
		UserID:    user.ID,
		Token:     token,
		ExpiresAt: time.Now().UTC().Add(sessionTTL),
		IPAddress: ip,
		UserAgent: userAgent,
	}
	if err := s.sessions.Create(session); err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *authService) VerifySession(token string) (*models.User, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, ErrSessionInvalid
	}
	user, err := s.sessions.GetUserByToken(token)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrSessionInvalid
	}
	return user, nil
}

func (s *authService) resolveActiveUser(email string) (*models.User, error) {
	user, err := s.users.GetByEmail(normalizeEmail(email))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	if !user.IsActive {
		return nil, ErrUserInactive
	}
	return user, nil
}
