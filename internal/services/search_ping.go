package services

import (
	"fmt"
	"log"
	"net/http"
	"net/url"
	"time"
)

// PingResult — исход уведомления одной поисковой системы.
type PingResult struct {
	Success    bool   `json:"success"`
	StatusCode int    `json:"status_code,omitempty"`
	Error      string `json:"error,omitempty"`
	Message    string `json:"message"`
}

type SearchPingService interface {
	NotifyAll() (map[string]PingResult, bool)
}

type searchEngine struct {
	name    string
	pingURL string
	okMsg   string
	failMsg string
}

var defaultSearchEngines = []searchEngine{
	{"google", "https://www.google.com/ping?sitemap=%s", "Google уведомлён об обновлении sitemap", "Не удалось уведомить Google"},
	{"yandex", "https://webmaster.yandex.ru/ping?sitemap=%s", "Яндекс уведомлён об обновлении sitemap", "Не удалось уведомить Яндекс"},
	{"bing", "https://www.bing.com/ping?sitemap=%s", "Bing уведомлён об обновлении sitemap", "Не удалось уведомить Bing"},
}

type searchPingService struct {
	sitemapURL string
	client     *http.Client
	engines    []searchEngine
}

func NewSearchPingService(sitemapURL string) SearchPingService {
	return &searchPingService{
		sitemapURL: sitemapURL,
		client:     &http.Client{Timeout: 10 * time.Second},
		engines:    defaultSearchEngines,
	}
}

// NotifyAll — пингует Google, Яндекс и Bing об обновлении sitemap.
// Ретраев нет: неудача просто фиксируется в ответе. Ответ 4xx/5xx
// считается неудачей наравне с сетевой ошибкой.
func (s *searchPingService) NotifyAll() (map[string]PingResult, bool) {
	results := make(map[string]PingResult, len(s.engines))
	anySuccess := false

	for _, e := range s.engines {
		pingURL := fmt.Sprintf(e.pingURL, url.QueryEscape(s.sitemapURL))
		resp, err := s.client.Get(pingURL)
		if err != nil {
			log.Printf("[seo][ping] %s failed: %v", e.name, err)
			results[e.name] = PingResult{Success: false, Error: err.Error(), Message: e.failMsg}
			continue
		}
		resp.Body.Close()

		if resp.StatusCode >= http.StatusBadRequest {
			log.Printf("[seo][ping] %s returned %d", e.name, resp.StatusCode)
			results[e.name] = PingResult{Success: false, StatusCode: resp.StatusCode, Message: e.failMsg}
			continue
		}

		results[e.name] = PingResult{Success: true, StatusCode: resp.StatusCode, Message: e.okMsg}
		anySuccess = true
	}
	return results, anySuccess
}
