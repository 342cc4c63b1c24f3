package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"sentag/internal/services"
)

const (
	ContextUser = "current_user"
)

// ExtractToken — токен исторически ходит в трёх заголовках: админка шлёт
// X-Authorization, часть клиентов — Authorization, удаление документов —
// X-Auth-Token. Принимаем все три, префикс Bearer необязателен.
func ExtractToken(c *gin.Context) string {
	for _, header := range []string{"X-Authorization", "Authorization", "X-Auth-Token"} {
		v := strings.TrimSpace(c.GetHeader(header))
		if v == "" {
			continue
		}
		v = strings.TrimSpace(strings.TrimPrefix(v, "Bearer "))
		if v != "" {
			return v
		}
	}
	return ""
}

// SessionMiddleware — каждый вызов заново резолвит токен в пользователя,
// кеша нет.
func SessionMiddleware(auth services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}

		token := ExtractToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Токен не предоставлен"})
			return
		}

		user, err := auth.VerifySession(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Сессия недействительна"})
			return
		}

		c.Set(ContextUser, user)
		c.Next()
	}
}
