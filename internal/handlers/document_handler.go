package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"sentag/internal/models"
	"sentag/internal/services"
)

type DocumentHandler struct {
	documents services.DocumentService
}

func NewDocumentHandler(documents services.DocumentService) *DocumentHandler {
	return &DocumentHandler{documents: documents}
}

// @Summary      Публичный список документов
// @Tags         Documents
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /api/documents [get]
func (h *DocumentHandler) List(c *gin.Context) {
	docs, err := h.documents.List()
	if err != nil {
		log.Printf("[documents][list] failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Внутренняя ошибка сервера"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"documents": docs})
}

func (h *DocumentHandler) Upload(c *gin.Context) {
	var req models.DocumentUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title, fileName и fileContent обязательны"})
		return
	}

	doc, err := h.documents.Upload(c.Request.Context(), &req)
	if err != nil {
		log.Printf("[documents][upload] failed for %q: %v", req.FileName, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось загрузить документ"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Документ загружен", "document": doc})
}

func (h *DocumentHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный ID документа"})
		return
	}

	if err := h.documents.Delete(id); err != nil {
		if errors.Is(err, services.ErrDocumentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Документ не найден"})
			return
		}
		log.Printf("[documents][delete] failed for document=%d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось удалить документ"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Документ удален"})
}
