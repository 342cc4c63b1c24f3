package services

import (
	"fmt"
	"strings"

	"sentag/internal/repositories"
)

type SettingsService interface {
	GetAll() (map[string]interface{}, error)
	Update(key string, value interface{}) error
}

type settingsService struct {
	repo repositories.SettingsRepository
}

func NewSettingsService(repo repositories.SettingsRepository) SettingsService {
	return &settingsService{repo: repo}
}

// GetAll — значения хранятся строками; "true"/"false" отдаём булевыми,
// фронт на это рассчитывает.
func (s *settingsService) GetAll() (map[string]interface{}, error) {
	raw, err := s.repo.GetAll()
	if err != nil {
		return nil, err
	}

	settings := make(map[string]interface{}, len(raw))
	for k, v := range raw {
		switch strings.ToLower(v) {
		case "true":
			settings[k] = true
		case "false":
			settings[k] = false
		default:
			settings[k] = v
		}
	}
	return settings, nil
}

func (s *settingsService) Update(key string, value interface{}) error {
	var str string
	switch v := value.(type) {
	case bool:
		if v {
			str = "true"
		} else {
			str = "false"
		}
	case string:
		str = v
	default:
		str = fmt.Sprintf("%v", v)
	}
	return s.repo.Upsert(key, str)
}
