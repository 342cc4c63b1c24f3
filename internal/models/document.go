package models

import "time"

// Document — файл из секции «Документы и сертификаты» на сайте.
type Document struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	IconName    string    `json:"iconName"`
	FileURL     string    `json:"fileUrl"`
	FileName    string    `json:"fileName"`
	FileType    string    `json:"fileType"`
	FileSize    int64     `json:"fileSize"`
	CreatedAt   time.Time `json:"createdAt"`
}

type DocumentUploadRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	IconName    string `json:"iconName"`
	FileName    string `json:"fileName" binding:"required"`
	FileType    string `json:"fileType"`
	FileContent string `json:"fileContent" binding:"required"` // base64
}
