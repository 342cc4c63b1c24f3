package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSettingsRepo struct {
	values map[string]string
}

func (f *fakeSettingsRepo) GetAll() (map[string]string, error) {
	return f.values, nil
}

func (f *fakeSettingsRepo) GetByKeys(keys []string) (map[string]string, error) {
	res := make(map[string]string)
	for _, k := range keys {
		if v, ok := f.values[k]; ok {
			res[k] = v
		}
	}
	return res, nil
}

func (f *fakeSettingsRepo) Upsert(key, value string) error {
	if f.values == nil {
		f.values = map[string]string{}
	}
	f.values[key] = value
	return nil
}

func TestGetAllCoercesBooleans(t *testing.T) {
	repo := &fakeSettingsRepo{values: map[string]string{
		"show_documents": "true",
		"dark_mode":      "False",
		"seo_title":      "Sentag — системы безопасности бассейнов",
	}}
	svc := NewSettingsService(repo)

	settings, err := svc.GetAll()

	require.NoError(t, err)
	assert.Equal(t, true, settings["show_documents"])
	assert.Equal(t, false, settings["dark_mode"])
	assert.Equal(t, "Sentag — системы безопасности бассейнов", settings["seo_title"])
}

func TestUpdateStringifiesValues(t *testing.T) {
	repo := &fakeSettingsRepo{}
	svc := NewSettingsService(repo)

	require.NoError(t, svc.Update("show_documents", true))
	require.NoError(t, svc.Update("seo_title", "Sentag"))
	require.NoError(t, svc.Update("max_items", 15))

	assert.Equal(t, "true", repo.values["show_documents"])
	assert.Equal(t, "Sentag", repo.values["seo_title"])
	assert.Equal(t, "15", repo.values["max_items"])
}
