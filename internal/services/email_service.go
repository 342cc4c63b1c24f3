package services

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type EmailService interface {
	SendOTPEmail(email, code string) error
}

type emailService struct {
	dialer *gomail.Dialer
	from   string
}

func NewEmailService(smtpHost string, smtpPort int, smtpUser, smtpPassword, fromEmail string) EmailService {
	dialer := gomail.NewDialer(smtpHost, smtpPort, smtpUser, smtpPassword)
	return &emailService{
		dialer: dialer,
		from:   fromEmail,
	}
}

func (s *emailService) SendOTPEmail(email, code string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", email)
	m.SetHeader("Subject", "Ваш код доступа в админ-панель Sentag")

	body := fmt.Sprintf(`
		<html>
		  <body style="font-family: Arial, sans-serif; padding: 20px;">
			<div style="max-width: 600px; margin: 0 auto;">
			  <h2 style="color: #0EA5E9;">Код доступа в админ-панель</h2>
			  <p>Ваш одноразовый код для входа:</p>
			  <div style="background: #f1f5f9; padding: 20px; text-align: center; font-size: 32px; font-weight: bold; letter-spacing: 8px; color: #1e293b; border-radius: 8px;">
				%s
			  </div>
			  <p style="color: #64748b; margin-top: 20px;">Код действителен 10 минут.</p>
			  <p style="color: #64748b;">Если вы не запрашивали код, просто проигнорируйте это письмо.</p>
			</div>
		  </body>
		</html>
	`, code)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send otp email: %w", err)
	}

	return nil
}
