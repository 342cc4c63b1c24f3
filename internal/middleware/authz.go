package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sentag/internal/models"
)

// CurrentUser — пользователь, которого положил в контекст SessionMiddleware.
func CurrentUser(c *gin.Context) *models.User {
	v, exists := c.Get(ContextUser)
	if !exists {
		return nil
	}
	user, _ := v.(*models.User)
	return user
}

// RequireAdmin — операции над пользователями и чистка статистики
// доступны только роли admin.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Токен не предоставлен"})
			return
		}
		if user.Role != models.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Доступ запрещен"})
			return
		}
		c.Next()
	}
}
