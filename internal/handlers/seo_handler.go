package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"sentag/internal/services"
)

type SEOHandler struct {
	seo  services.SEOService
	ping services.SearchPingService
}

func NewSEOHandler(seo services.SEOService, ping services.SearchPingService) *SEOHandler {
	return &SEOHandler{seo: seo, ping: ping}
}

// UpdateIndex перезаписывает мета-теги index.html в хранилище
// значениями из настроек сайта.
func (h *SEOHandler) UpdateIndex(c *gin.Context) {
	title, err := h.seo.UpdateIndexHTML(c.Request.Context())
	if err != nil {
		log.Printf("[seo][update-index] failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось обновить index.html"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "SEO мета-теги обновлены", "title": title})
}

// @Summary      Уведомить поисковики об обновлении sitemap
// @Tags         SEO
// @Produce      json
// @Security     ApiKeyAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /api/notify-search-engines [post]
func (h *SEOHandler) NotifySearchEngines(c *gin.Context) {
	results, anySuccess := h.ping.NotifyAll()

	// ни один поисковик не ответил успехом — это ошибка, а не результат
	status := http.StatusOK
	if !anySuccess {
		status = http.StatusInternalServerError
	}
	c.JSON(status, gin.H{"success": anySuccess, "results": results})
}
