package services

import (
	"errors"
	"strings"

	"sentag/internal/models"
	"sentag/internal/repositories"
)

var ErrEmailRequired = errors.New("email is required")

type UserService interface {
	ListUsers() ([]*models.User, error)
	CreateUser(email, role string, createdBy int) (*models.User, error)
	UpdateUser(req *models.UpdateUserRequest) error
}

type userService struct {
	repo repositories.UserRepository
}

func NewUserService(repo repositories.UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) ListUsers() ([]*models.User, error) {
	users, err := s.repo.List()
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []*models.User{}
	}
	return users, nil
}

func (s *userService) CreateUser(email, role string, createdBy int) (*models.User, error) {
	email = normalizeEmail(email)
	if email == "" {
		return nil, ErrEmailRequired
	}
	if strings.TrimSpace(role) == "" {
		role = models.RoleUser
	}

	user := &models.User{
		Email:     email,
		Role:      role,
		CreatedBy: &createdBy,
	}
	if err := s.repo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateUser — частичное обновление: трогаем только присланные поля.
func (s *userService) UpdateUser(req *models.UpdateUserRequest) error {
	if req.Role != nil {
		if err := s.repo.UpdateRole(req.UserID, *req.Role); err != nil {
			return err
		}
	}
	if req.IsActive != nil {
		if err := s.repo.UpdateActive(req.UserID, *req.IsActive); err != nil {
			return err
		}
	}
	return nil
}
