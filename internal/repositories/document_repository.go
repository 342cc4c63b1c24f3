package repositories

import (
	"database/sql"
	"fmt"

	"sentag/internal/models"
)

type DocumentRepository interface {
	Create(doc *models.Document) error
	List() ([]*models.Document, error)
	Delete(id int) (bool, error)
}

type documentRepository struct {
	DB *sql.DB
}

func NewDocumentRepository(db *sql.DB) DocumentRepository {
	return &documentRepository{DB: db}
}

func (r *documentRepository) Create(doc *models.Document) error {
	const q = `
		INSERT INTO documents (title, description, icon_name, file_url, file_name, file_type, file_size)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`
	if err := r.DB.QueryRow(q,
		doc.Title, doc.Description, doc.IconName,
		doc.FileURL, doc.FileName, doc.FileType, doc.FileSize,
	).Scan(&doc.ID, &doc.CreatedAt); err != nil {
		return fmt.Errorf("create document: %w", err)
	}
	return nil
}

func (r *documentRepository) List() ([]*models.Document, error) {
	const q = `
		SELECT id, title, description, icon_name, file_url, file_name, file_type, file_size, created_at
		FROM documents
		ORDER BY created_at DESC
	`
	rows, err := r.DB.Query(q)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()

	var res []*models.Document
	for rows.Next() {
		d := &models.Document{}
		var description, fileType sql.NullString
		if err := rows.Scan(
			&d.ID, &d.Title, &description, &d.IconName,
			&d.FileURL, &d.FileName, &fileType, &d.FileSize, &d.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		d.Description = description.String
		d.FileType = fileType.String
		res = append(res, d)
	}
	return res, rows.Err()
}

func (r *documentRepository) Delete(id int) (bool, error) {
	res, err := r.DB.Exec(`DELETE FROM documents WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete document: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete document rows: %w", err)
	}
	return n > 0, nil
}
