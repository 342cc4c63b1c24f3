package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"sentag/internal/models"
	"sentag/internal/services"
)

type RequestHandler struct {
	requests services.RequestService
}

func NewRequestHandler(requests services.RequestService) *RequestHandler {
	return &RequestHandler{requests: requests}
}

// Save принимает оба шага воронки. Шаг определяется полем step в теле,
// по умолчанию шаг 1.
// @Summary      Сохранить шаг заявки
// @Tags         Requests
// @Accept       json
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/requests [post]
func (h *RequestHandler) Save(c *gin.Context) {
	var envelope struct {
		Step int `json:"step"`
	}
	raw, err := c.GetRawData()
	if err != nil || len(raw) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Пустое тело запроса"})
		return
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный JSON"})
		return
	}

	switch envelope.Step {
	case 0, 1:
		h.saveStep1(c, raw)
	case 2:
		h.saveStep2(c, raw)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Неизвестный шаг заявки"})
	}
}

func (h *RequestHandler) saveStep1(c *gin.Context, raw []byte) {
	var req models.SaveRequestStep1
	if err := json.Unmarshal(raw, &req); err != nil || req.Phone == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Телефон обязателен"})
		return
	}

	id, err := h.requests.SaveStep1(&req)
	if err != nil {
		log.Printf("[requests][step1] save failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось сохранить заявку"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "requestId": id})
}

func (h *RequestHandler) saveStep2(c *gin.Context, raw []byte) {
	var req models.SaveRequestStep2
	if err := json.Unmarshal(raw, &req); err != nil || req.RequestID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "requestId обязателен"})
		return
	}

	if err := h.requests.SaveStep2(&req); err != nil {
		if errors.Is(err, services.ErrRequestNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Заявка не найдена"})
			return
		}
		log.Printf("[requests][step2] save failed for request=%d: %v", req.RequestID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось сохранить заявку"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "requestId": req.RequestID})
}

// @Summary      Список заявок
// @Tags         Requests
// @Produce      json
// @Security     ApiKeyAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]string
// @Router       /api/requests [get]
func (h *RequestHandler) List(c *gin.Context) {
	forms, err := h.requests.List()
	if err != nil {
		log.Printf("[requests][list] failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Внутренняя ошибка сервера"})
		return
	}
	if forms == nil {
		forms = []*models.RequestForm{}
	}
	c.JSON(http.StatusOK, gin.H{"requests": forms})
}

func (h *RequestHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный ID заявки"})
		return
	}

	if err := h.requests.Delete(id); err != nil {
		if errors.Is(err, services.ErrRequestNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Заявка не найдена"})
			return
		}
		log.Printf("[requests][delete] failed for request=%d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось удалить заявку"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Заявка удалена"})
}

// ExportPDF отдает сводку заявки как вложение.
func (h *RequestHandler) ExportPDF(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный ID заявки"})
		return
	}

	data, filename, err := h.requests.ExportPDF(id)
	if err != nil {
		if errors.Is(err, services.ErrRequestNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Заявка не найдена"})
			return
		}
		log.Printf("[requests][pdf] export failed for request=%d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось сформировать PDF"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, "application/pdf", data)
}
