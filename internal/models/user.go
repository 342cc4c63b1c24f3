package models

import "time"

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

type User struct {
	ID        int       `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedBy *int      `json:"created_by,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateUserRequest struct {
	Email string `json:"new_email" binding:"required,email"`
	Role  string `json:"new_role"`
}

// UpdateUserRequest — частичное обновление: меняем только присланные поля
type UpdateUserRequest struct {
	UserID   int     `json:"user_id"`
	Role     *string `json:"role"`
	IsActive *bool   `json:"is_active"`
}
