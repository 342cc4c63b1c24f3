package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"sentag/internal/middleware"
	"sentag/internal/services"
)

type AuthHandler struct {
	auth services.AuthService
}

func NewAuthHandler(auth services.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// authAction — исторический формат фронта: одна точка входа,
// действие в теле.
type authAction struct {
	Action string `json:"action" binding:"required"`
	Email  string `json:"email"`
	OTP    string `json:"otp"`
}

// @Summary      Авторизация по одноразовому коду
// @Description  request_otp — выслать код на email, verify_otp — обменять код на сессию
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        body  body      authAction  true  "Действие"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/auth [post]
func (h *AuthHandler) Dispatch(c *gin.Context) {
	var req authAction
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Неизвестное действие"})
		return
	}

	switch req.Action {
	case "request_otp":
		h.requestOTP(c, req.Email)
	case "verify_otp":
		h.verifyOTP(c, req.Email, req.OTP)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Неизвестное действие"})
	}
}

func (h *AuthHandler) requestOTP(c *gin.Context, email string) {
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email обязателен"})
		return
	}

	err := h.auth.RequestOTP(email)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"message": "Код отправлен на email"})
	case errors.Is(err, services.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Пользователь не найден"})
	case errors.Is(err, services.ErrUserInactive):
		c.JSON(http.StatusForbidden, gin.H{"error": "Пользователь деактивирован"})
	case errors.Is(err, services.ErrEmailDelivery):
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось отправить email"})
	default:
		log.Printf("[auth][request_otp] failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Внутренняя ошибка сервера"})
	}
}

func (h *AuthHandler) verifyOTP(c *gin.Context, email, code string) {
	if email == "" || code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email и код обязательны"})
		return
	}

	token, user, err := h.auth.VerifyOTP(email, code, c.ClientIP(), c.Request.UserAgent())
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{
			"session_token": token,
			"user":          gin.H{"id": user.ID, "email": user.Email, "role": user.Role},
		})
	case errors.Is(err, services.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Пользователь не найден"})
	case errors.Is(err, services.ErrUserInactive):
		c.JSON(http.StatusForbidden, gin.H{"error": "Пользователь деактивирован"})
	case errors.Is(err, services.ErrInvalidOTP):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Неверный или истекший код"})
	default:
		log.Printf("[auth][verify_otp] failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Внутренняя ошибка сервера"})
	}
}

// VerifySession — проверка токена для фронта админки.
func (h *AuthHandler) VerifySession(c *gin.Context) {
	token := middleware.ExtractToken(c)
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Токен не предоставлен"})
		return
	}

	user, err := h.auth.VerifySession(token)
	if err != nil {
		if errors.Is(err, services.ErrSessionInvalid) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Сессия недействительна"})
			return
		}
		log.Printf("[auth][verify_session] failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Внутренняя ошибка сервера"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{"id": user.ID, "email": user.Email, "role": user.Role},
	})
}
