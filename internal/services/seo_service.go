package services

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"sentag/internal/repositories"
)

const indexHTMLKey = "index.html"

// SEOService — переписывает мета-теги в index.html, лежащем в хранилище,
// актуальными значениями из site_settings.
type SEOService interface {
	UpdateIndexHTML(ctx context.Context) (string, error)
}

type seoService struct {
	settings repositories.SettingsRepository
	storage  StorageService
}

func NewSEOService(settings repositories.SettingsRepository, storage StorageService) SEOService {
	return &seoService{settings: settings, storage: storage}
}

func (s *seoService) UpdateIndexHTML(ctx context.Context) (string, error) {
	values, err := s.settings.GetByKeys([]string{
		"seo_title", "seo_description", "seo_keywords", "og_image_url",
	})
	if err != nil {
		return "", err
	}

	html, err := s.storage.Get(ctx, indexHTMLKey)
	if err != nil {
		return "", fmt.Errorf("load index.html: %w", err)
	}

	page := string(html)
	title := values["seo_title"]
	description := values["seo_description"]
	keywords := values["seo_keywords"]
	ogImage := values["og_image_url"]

	if title != "" {
		page = replaceTitle(page, title)
		page = replaceOG(page, "og:title", title)
		page = replaceMeta(page, "twitter:title", title)
	}
	if description != "" {
		page = replaceMeta(page, "description", description)
		page = replaceOG(page, "og:description", description)
		page = replaceMeta(page, "twitter:description", description)
	}
	if keywords != "" {
		page = replaceMeta(page, "keywords", keywords)
	}
	if ogImage != "" {
		page = replaceOG(page, "og:image", ogImage)
		page = replaceMeta(page, "twitter:image", ogImage)
	}

	if err := s.storage.Put(ctx, indexHTMLKey, []byte(page), "text/html; charset=utf-8"); err != nil {
		return "", fmt.Errorf("store index.html: %w", err)
	}
	return title, nil
}

func replaceMeta(html, name, content string) string {
	re := regexp.MustCompile(`(<meta\s+name="` + regexp.QuoteMeta(name) + `"\s+content=")[^"]*(")`)
	return re.ReplaceAllString(html, "${1}"+templateEscape(content)+"${2}")
}

func replaceOG(html, prop, content string) string {
	re := regexp.MustCompile(`(<meta\s+property="` + regexp.QuoteMeta(prop) + `"\s+content=")[^"]*(")`)
	return re.ReplaceAllString(html, "${1}"+templateEscape(content)+"${2}")
}

func replaceTitle(html, title string) string {
	re := regexp.MustCompile(`(<title>)[^<]*(</title>)`)
	return re.ReplaceAllString(html, "${1}"+templateEscape(title)+"${2}")
}

// templateEscape — значение настройки вставляется дословно: $ в тексте
// (цены в маркетинговых описаниях) не должен читаться как ссылка на группу.
func templateEscape(s string) string {
	return strings.ReplaceAll(s, "$", "$$")
}
