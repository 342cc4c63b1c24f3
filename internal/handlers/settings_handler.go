package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"sentag/internal/models"
	"sentag/internal/services"
)

type SettingsHandler struct {
	settings services.SettingsService
}

func NewSettingsHandler(settings services.SettingsService) *SettingsHandler {
	return &SettingsHandler{settings: settings}
}

// @Summary      Настройки сайта
// @Tags         Settings
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /api/settings [get]
func (h *SettingsHandler) GetAll(c *gin.Context) {
	settings, err := h.settings.GetAll()
	if err != nil {
		log.Printf("[settings][get] failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Внутренняя ошибка сервера"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"settings": settings})
}

func (h *SettingsHandler) Update(c *gin.Context) {
	var req models.UpdateSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "key обязателен"})
		return
	}

	if err := h.settings.Update(req.Key, req.Value); err != nil {
		log.Printf("[settings][update] failed for key=%q: %v", req.Key, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось сохранить настройку"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Настройка сохранена", "key": req.Key})
}
