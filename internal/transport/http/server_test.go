package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	broadcastDomain "github.com/reshetovitsme/telegram-ad-broadcaster/internal/modules/broadcast/domain"
	"github.com/reshetovitsme/telegram-ad-broadcaster/internal/modules/broadcast/repository"
	broadcastService "github.com/reshetovitsme/telegram-ad-broadcaster/internal/modules/broadcast/service"
	feedService "github.com/reshetovitsme/telegram-ad-broadcaster/internal/modules/feed/service"
	"github.com/reshetovitsme/telegram-ad-broadcaster/internal/shared/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) (*Server, *broadcastService.Service) {
	t.Helper()
	docs, err := repository.NewFileStorage(t.TempDir())
	require.NoError(t, err)
	repo := repository.New(docs)

	broadcast := broadcastService.New(repo, broadcastDomain.NewControl())
	cfg := &config.Config{HTTPPort: "0", WebhookPath: "/webhook"}
	return New(cfg, broadcast, feedService.New(repo)), broadcast
}

func TestServer_Health(t *testing.T) {
	server, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestServer_Status(t *testing.T) {
	server, broadcast := newTestServer(t)
	ctx := context.Background()
	require.NoError(t, broadcast.AddChannel(ctx, "@a"))
	require.NoError(t, broadcast.SetAdVideo(ctx, "clip"))
	broadcast.Pause()

	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/status", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp statusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Paused)
	assert.Equal(t, []string{"@a"}, resp.Channels)
	assert.Equal(t, "clip", resp.Ad.VideoRef)
	assert.Equal(t, broadcastDomain.AdKindVideo, resp.Kind)
}

func TestServer_Feed(t *testing.T) {
	server, broadcast := newTestServer(t)
	require.NoError(t, broadcast.SetAdText(context.Background(), "Fresh <deal>"))

	req := httptest.NewRequest(http.MethodGet, "/feed", nil)
	req.Host = "ads.example.com"
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Header().Get("Content-Type"), "application/rss+xml"))
	assert.Contains(t, rec.Body.String(), "<rss")
	assert.Contains(t, rec.Body.String(), "http://ads.example.com/feed")
}

func TestServer_Webhook(t *testing.T) {
	server, _ := newTestServer(t)

	var called bool
	server.SetWebhookHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	}))
	handler := server.Handler()

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader(`{}`)))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, called)

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/webhook", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestServer_ShutdownBeforeStart(t *testing.T) {
	server, _ := newTestServer(t)
	assert.NoError(t, server.Shutdown(context.Background()))
}

func TestServer_WebhookModeGuardsStatusAndFeed(t *testing.T) {
	server, _ := newTestServer(t)
	server.cfg.WebhookSecret = "s3cret"
	server.SetWebhookHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	handler := server.Handler()

	for _, path := range []string{"/status", "/feed"} {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code, path)

		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.Header.Set("Authorization", "Bearer wrong")
		rec = httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, path)

		req = httptest.NewRequest(http.MethodGet, path, nil)
		req.Header.Set("Authorization", "Bearer s3cret")
		rec = httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestServer_WebhookModeWithoutSecretHidesStatusAndFeed(t *testing.T) {
	server, _ := newTestServer(t)
	server.SetWebhookHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	handler := server.Handler()

	for _, path := range []string{"/status", "/feed"} {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusNotFound, rec.Code, path)
	}
}
