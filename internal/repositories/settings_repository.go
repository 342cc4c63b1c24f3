package repositories

import (
	"database/sql"
	"fmt"

	"github.com/lib/pq"
)

type SettingsRepository interface {
	GetAll() (map[string]string, error)
	GetByKeys(keys []string) (map[string]string, error)
	Upsert(key, value string) error
}

type settingsRepository struct {
	DB *sql.DB
}

func NewSettingsRepository(db *sql.DB) SettingsRepository {
	return &settingsRepository{DB: db}
}

func (r *settingsRepository) GetAll() (map[string]string, error) {
	rows, err := r.DB.Query(`SELECT key, value FROM site_settings`)
	if err != nil {
		return nil, fmt.Errorf("get settings: %w", err)
	}
	defer rows.Close()

	settings := make(map[string]string)
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return nil, fmt.Errorf("scan setting: %w", err)
		}
		settings[k] = v
	}
	return settings, rows.Err()
}

func (r *settingsRepository) GetByKeys(keys []string) (map[string]string, error) {
	rows, err := r.DB.Query(`SELECT key, value FROM site_settings WHERE key = ANY($1)`, pq.Array(keys))
	if err != nil {
		return nil, fmt.Errorf("get settings by keys: %w", err)
	}
	defer rows.Close()

	settings := make(map[string]string)
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return nil, fmt.Errorf("scan setting: %w", err)
		}
		settings[k] = v
	}
	return settings, rows.Err()
}

func (r *settingsRepository) Upsert(key, value string) error {
	const q = `
		INSERT INTO site_settings (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key)
		DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()
	`
	if _, err := r.DB.Exec(q, key, value); err != nil {
		return fmt.Errorf("upsert setting: %w", err)
	}
	return nil
}
