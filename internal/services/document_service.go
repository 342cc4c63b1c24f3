package services

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"sentag/internal/models"
	"sentag/internal/repositories"
)

var ErrDocumentNotFound = errors.New("document not found")

type DocumentService interface {
	Upload(ctx context.Context, req *models.DocumentUploadRequest) (*models.Document, error)
	List() ([]*models.Document, error)
	Delete(id int) error
}

type documentService struct {
	repo    repositories.DocumentRepository
	storage StorageService
}

func NewDocumentService(repo repositories.DocumentRepository, storage StorageService) DocumentService {
	return &documentService{repo: repo, storage: storage}
}

// Upload — файл уходит в хранилище под ключом documents/{timestamp}_{имя},
// метаданные — в базу. Дублей по имени не проверяем, timestamp разводит их.
func (s *documentService) Upload(ctx context.Context, req *models.DocumentUploadRequest) (*models.Document, error) {
	data, err := base64.StdEncoding.DecodeString(req.FileContent)
	if err != nil {
		return nil, fmt.Errorf("decode file content: %w", err)
	}

	key := fmt.Sprintf("documents/%s_%s", time.Now().Format("20060102_150405"), req.FileName)
	if err := s.storage.Put(ctx, key, data, req.FileType); err != nil {
		return nil, err
	}

	iconName := req.IconName
	if iconName == "" {
		iconName = "FileText"
	}

	doc := &models.Document{
		Title:       req.Title,
		Description: req.Description,
		IconName:    iconName,
		FileURL:     s.storage.PublicURL(key),
		FileName:    req.FileName,
		FileType:    req.FileType,
		FileSize:    int64(len(data)),
	}
	if err := s.repo.Create(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (s *documentService) List() ([]*models.Document, error) {
	docs, err := s.repo.List()
	if err != nil {
		return nil, err
	}
	if docs == nil {
		docs = []*models.Document{}
	}
	return docs, nil
}

func (s *documentService) Delete(id int) error {
	deleted, err := s.repo.Delete(id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrDocumentNotFound
	}
	return nil
}
