package services

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/google/uuid"
)

type UploadedFile struct {
	URL string `json:"url"`
	Key string `json:"key"`
}

type UploadService interface {
	UploadRequestFile(ctx context.Context, requestID int, category, name, contentType, contentBase64 string) (*UploadedFile, error)
}

type uploadService struct {
	storage StorageService
}

func NewUploadService(storage StorageService) UploadService {
	return &uploadService{storage: storage}
}

// UploadRequestFile — файлы заявки (карточка компании, схемы бассейна).
// Короткий uuid в ключе разводит одноимённые файлы одной заявки.
func (s *uploadService) UploadRequestFile(ctx context.Context, requestID int, category, name, contentType, contentBase64 string) (*UploadedFile, error) {
	data, err := base64.StdEncoding.DecodeString(contentBase64)
	if err != nil {
		return nil, fmt.Errorf("decode file content: %w", err)
	}

	if category == "" {
		category = "other"
	}
	shortID := uuid.New().String()[:8]
	key := fmt.Sprintf("request-forms/%d/%s_%s_%s", requestID, category, shortID, name)

	if err := s.storage.Put(ctx, key, data, contentType); err != nil {
		return nil, err
	}
	return &UploadedFile{URL: s.storage.PublicURL(key), Key: key}, nil
}
