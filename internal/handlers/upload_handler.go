package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"sentag/internal/services"
)

type UploadHandler struct {
	uploads services.UploadService
}

func NewUploadHandler(uploads services.UploadService) *UploadHandler {
	return &UploadHandler{uploads: uploads}
}

type uploadFileRequest struct {
	RequestID   int    `json:"requestId" binding:"required"`
	Category    string `json:"category"`
	FileName    string `json:"fileName" binding:"required"`
	FileType    string `json:"fileType"`
	FileContent string `json:"fileContent" binding:"required"` // base64
}

// @Summary      Загрузка файла заявки
// @Tags         Upload
// @Accept       json
// @Produce      json
// @Param        body  body      uploadFileRequest  true  "Файл"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]string
// @Router       /api/upload [post]
func (h *UploadHandler) Upload(c *gin.Context) {
	var req uploadFileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "requestId, fileName и fileContent обязательны"})
		return
	}

	file, err := h.uploads.UploadRequestFile(
		c.Request.Context(), req.RequestID, req.Category, req.FileName, req.FileType, req.FileContent,
	)
	if err != nil {
		log.Printf("[upload] failed for request=%d file=%q: %v", req.RequestID, req.FileName, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось загрузить файл"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "url": file.URL, "key": file.Key})
}
