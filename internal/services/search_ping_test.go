package services

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPingTestService(t *testing.T, engines []searchEngine) *searchPingService {
	t.Helper()
	return &searchPingService{
		sitemapURL: "https://sentag.ru/sitemap.xml",
		client:     &http.Client{Timeout: time.Second},
		engines:    engines,
	}
}

func pingServer(t *testing.T, status int) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestNotifyAllMixedResults(t *testing.T) {
	ok := pingServer(t, http.StatusOK)
	broken := pingServer(t, http.StatusInternalServerError)

	svc := newPingTestService(t, []searchEngine{
		{"google", ok.URL + "/ping?sitemap=%s", "ок", "не ок"},
		{"yandex", broken.URL + "/ping?sitemap=%s", "ок", "не ок"},
	})

	results, anySuccess := svc.NotifyAll()

	assert.True(t, anySuccess)
	require.Len(t, results, 2)
	assert.True(t, results["google"].Success)
	assert.Equal(t, http.StatusOK, results["google"].StatusCode)
	// HTTP-ошибка поисковика — это неудача, а не успех с кодом
	assert.False(t, results["yandex"].Success)
	assert.Equal(t, http.StatusInternalServerError, results["yandex"].StatusCode)
}

func TestNotifyAllAllFailed(t *testing.T) {
	notFound := pingServer(t, http.StatusNotFound)
	dead := pingServer(t, http.StatusOK)
	dead.Close()

	svc := newPingTestService(t, []searchEngine{
		{"google", notFound.URL + "/ping?sitemap=%s", "ок", "не ок"},
		{"bing", dead.URL + "/ping?sitemap=%s", "ок", "не ок"},
	})

	results, anySuccess := svc.NotifyAll()

	assert.False(t, anySuccess)
	assert.False(t, results["google"].Success)
	assert.Equal(t, http.StatusNotFound, results["google"].StatusCode)
	assert.False(t, results["bing"].Success)
	assert.NotEmpty(t, results["bing"].Error)
}

func TestNotifyAllEscapesSitemapURL(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
	}))
	t.Cleanup(srv.Close)

	svc := newPingTestService(t, []searchEngine{
		{"google", srv.URL + "/ping?sitemap=%s", "ок", "не ок"},
	})

	_, anySuccess := svc.NotifyAll()

	assert.True(t, anySuccess)
	assert.Equal(t, "sitemap=https%3A%2F%2Fsentag.ru%2Fsitemap.xml", gotQuery)
}
