package models

import "time"

// OneTimePassword — одноразовый код для входа в админ-панель.
// Храним только хеш кода; сам код живёт 10 минут и гасится при первом
// успешном входе.
type OneTimePassword struct {
	ID           int       `json:"id"`
	UserID       int       `json:"user_id"`
	PasswordHash string    `json:"-"`
	ExpiresAt    time.Time `json:"expires_at"`
	Used         bool      `json:"used"`
	CreatedAt    time.Time `json:"created_at"`
}
