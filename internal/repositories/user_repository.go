package repositories

import (
	"database/sql"
	"fmt"

	"sentag/internal/models"
)

type UserRepository interface {
	GetByEmail(email string) (*models.User, error)
	GetByID(id int) (*models.User, error)
	List() ([]*models.User, error)
	Create(user *models.User) error
	UpdateRole(id int, role string) error
	UpdateActive(id int, active bool) error
}

type userRepository struct {
	DB *sql.DB
}

func NewUserRepository(db *sql.DB) UserRepository {
	return &userRepository{DB: db}
}

func (r *userRepository) GetByEmail(email string) (*models.User, error) {
	const q = `
		SELECT id, email, role, is_active, created_by, created_at
		FROM users
		WHERE email = $1
	`
	u := &models.User{}
	var createdBy sql.NullInt64
	err := r.DB.QueryRow(q, email).Scan(
		&u.ID, &u.Email, &u.Role, &u.IsActive, &createdBy, &u.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	if createdBy.Valid {
		v := int(createdBy.Int64)
		u.CreatedBy = &v
	}
	return u, nil
}

func (r *userRepository) GetByID(id int) (*models.User, error) {
	const q = `
		SELECT id, email, role, is_active, created_by, created_at
		FROM users
		WHERE id = $1
	`
	u := &models.User{}
	var createdBy sql.NullInt64
	err := r.DB.QueryRow(q, id).Scan(
		&u.ID, &u.Email, &u.Role, &u.IsActive, &createdBy, &u.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by id: %w", err)
	}
	if createdBy.Valid {
		v := int(createdBy.Int64)
		u.CreatedBy = &v
	}
	return u, nil
}

func (r *userRepository) List() ([]*models.User, error) {
	const q = `
		SELECT id, email, role, is_active, created_by, created_at
		FROM users
		ORDER BY created_at DESC
	`
	rows, err := r.DB.Query(q)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var res []*models.User
	for rows.Next() {
		u := &models.User{}
		var createdBy sql.NullInt64
		if err := rows.Scan(&u.ID, &u.Email, &u.Role, &u.IsActive, &createdBy, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		if createdBy.Valid {
			v := int(createdBy.Int64)
			u.CreatedBy = &v
		}
		res = append(res, u)
	}
	return res, rows.Err()
}

func (r *userRepository) Create(user *models.User) error {
	const q = `
		INSERT INTO users (email, role, created_by)
		VALUES ($1, $2, $3)
		RETURNING id, is_active, created_at
	`
	var createdBy interface{}
	if user.CreatedBy != nil {
		createdBy = *user.CreatedBy
	}
	if err := r.DB.QueryRow(q, user.Email, user.Role, createdBy).
		Scan(&user.ID, &user.IsActive, &user.CreatedAt); err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (r *userRepository) UpdateRole(id int, role string) error {
	if _, err := r.DB.Exec(`UPDATE users SET role = $1 WHERE id = $2`, role, id); err != nil {
		return fmt.Errorf("update user role: %w", err)
	}
	return nil
}

func (r *userRepository) UpdateActive(id int, active bool) error {
	if _, err := r.DB.Exec(`UPDATE users SET is_active = $1 WHERE id = $2`, active, id); err != nil {
		return fmt.Errorf("update user active flag: %w", err)
	}
	return nil
}
