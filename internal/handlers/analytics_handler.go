package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"sentag/internal/models"
	"sentag/internal/services"
)

type AnalyticsHandler struct {
	analytics services.AnalyticsService
}

func NewAnalyticsHandler(analytics services.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analytics: analytics}
}

// @Summary      Трекинг посещения или клика
// @Tags         Analytics
// @Accept       json
// @Produce      json
// @Param        body  body      models.TrackRequest  true  "Событие"
// @Success      200   {object}  map[string]bool
// @Failure      400   {object}  map[string]string
// @Router       /api/track [post]
func (h *AnalyticsHandler) Track(c *gin.Context) {
	var req models.TrackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректное тело запроса"})
		return
	}

	err := h.analytics.Track(&req, c.GetHeader("User-Agent"), c.ClientIP())
	if err != nil {
		if errors.Is(err, services.ErrVisitorIDRequired) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "visitor_id обязателен"})
			return
		}
		log.Printf("[analytics][track] failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Внутренняя ошибка сервера"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *AnalyticsHandler) TrackClick(c *gin.Context) {
	var req models.TrackClickRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "button_name и button_location обязательны"})
		return
	}

	if err := h.analytics.TrackClick(&req, c.GetHeader("User-Agent"), c.ClientIP()); err != nil {
		log.Printf("[analytics][click] failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Внутренняя ошибка сервера"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// @Summary      Статистика кликов за 30 дней
// @Tags         Analytics
// @Produce      json
// @Security     ApiKeyAuth
// @Success      200  {object}  models.ClickStats
// @Failure      401  {object}  map[string]string
// @Router       /api/stats/clicks [get]
func (h *AnalyticsHandler) ClickStats(c *gin.Context) {
	stats, err := h.analytics.ClickStats()
	if err != nil {
		log.Printf("[analytics][stats] failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Внутренняя ошибка сервера"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *AnalyticsHandler) ClearStats(c *gin.Context) {
	clicks, visits, err := h.analytics.ClearStats()
	if err != nil {
		log.Printf("[analytics][clear] failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось очистить статистику"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":        "Статистика очищена",
		"deleted_clicks": clicks,
		"deleted_visits": visits,
	})
}

// SendWeeklyStats запускает недельный отчет в Telegram вручную.
func (h *AnalyticsHandler) SendWeeklyStats(c *gin.Context) {
	if err := h.analytics.SendWeeklyStats(); err != nil {
		if errors.Is(err, services.ErrTelegramNotConfigured) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Telegram не настроен"})
			return
		}
		log.Printf("[analytics][telegram] send failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось отправить отчет"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Отчет отправлен"})
}
