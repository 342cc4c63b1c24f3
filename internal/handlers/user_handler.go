package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"sentag/internal/middleware"
	"sentag/internal/models"
	"sentag/internal/services"
)

type UserHandler struct {
	users services.UserService
}

func NewUserHandler(users services.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// @Summary      Список пользователей админ-панели
// @Tags         Users
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  map[string]string
// @Router       /api/users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.users.ListUsers()
	if err != nil {
		log.Printf("[users][list] failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Внутренняя ошибка сервера"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

// @Summary      Создать пользователя
// @Tags         Users
// @Accept       json
// @Produce      json
// @Param        body  body      models.CreateUserRequest  true  "Новый пользователь"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /api/users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	caller := middleware.CurrentUser(c)

	var req models.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email обязателен"})
		return
	}

	user, err := h.users.CreateUser(req.Email, req.Role, caller.ID)
	if err != nil {
		log.Printf("[users][create] failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось создать пользователя"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Пользователь создан", "user_id": user.ID})
}

// UpdateUser — частичное обновление: роль и/или флаг активности.
// Пользователи не удаляются, только деактивируются.
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный ID пользователя"})
		return
	}

	var req models.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректное тело запроса"})
		return
	}
	req.UserID = id

	if err := h.users.UpdateUser(&req); err != nil {
		log.Printf("[users][update] failed for user_id=%d: %v", req.UserID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось обновить пользователя"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Пользователь обновлен"})
}
