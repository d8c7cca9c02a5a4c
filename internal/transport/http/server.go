package http

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	broadcastDomain "github.com/reshetovitsme/telegram-ad-broadcaster/internal/modules/broadcast/domain"
	broadcastService "github.com/reshetovitsme/telegram-ad-broadcaster/internal/modules/broadcast/service"
	feedService "github.com/reshetovitsme/telegram-ad-broadcaster/internal/modules/feed/service"
	"github.com/reshetovitsme/telegram-ad-broadcaster/internal/shared/config"
	sloghttp "github.com/samber/slog-http"
)

// Server serves the Telegram webhook plus health, status and feed endpoints
type Server struct {
	cfg       *config.Config
	broadcast *broadcastService.Service
	feed      *feedService.Service
	webhook   http.Handler
	logger    *slog.Logger

	mu     sync.Mutex
	server *http.Server
}

type statusResponse struct {
	Paused   bool                   `json:"paused"`
	Channels []string               `json:"channels"`
	Ad       broadcastDomain.Ad     `json:"ad"`
	Kind     broadcastDomain.AdKind `json:"kind"`
}

// New creates a new HTTP server
func New(cfg *config.Config, broadcast *broadcastService.Service, feed *feedService.Service) *Server {
	return &Server{
		cfg:       cfg,
		broadcast: broadcast,
		feed:      feed,
		logger:    slog.Default(),
	}
}

// SetLogger sets the logger
func (s *Server) SetLogger(logger *slog.Logger) {
	s.logger = logger
}

// SetWebhookHandler mounts the bot's webhook handler at the configured path
func (s *Server) SetWebhookHandler(h http.Handler) {
	s.webhook = h
}

// Handler builds the routed handler wrapped in the logging middleware
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", s.handleHealth)

	switch {
	case s.webhook == nil:
		mux.HandleFunc("GET /status", s.handleStatus)
		mux.HandleFunc("GET /feed", s.handleFeed)
	case s.cfg.WebhookSecret != "":
		// The port is public in webhook mode; status and feed expose channels and file ids
		mux.Handle("POST "+s.cfg.WebhookPath, s.webhook)
		mux.HandleFunc("GET /status", s.requireSecret(s.handleStatus))
		mux.HandleFunc("GET /feed", s.requireSecret(s.handleFeed))
	default:
		mux.Handle("POST "+s.cfg.WebhookPath, s.webhook)
	}

	handler := sloghttp.Recovery(mux)
	handler = sloghttp.New(s.logger)(handler)
	return handler
}

// Start starts the HTTP server and blocks until it is shut down
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%s", s.cfg.HTTPPort)
	s.logger.Info("HTTP server starting", "addr", addr, "webhook", s.webhook != nil)

	server := &http.Server{
		Addr:         addr,
		Handler:      s.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	s.mu.Lock()
	s.server = server
	s.mu.Unlock()

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting requests and waits for active ones
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	server := s.server
	s.mu.Unlock()

	if server == nil {
		return nil
	}
	return server.Shutdown(ctx)
}

// requireSecret admits requests carrying "Authorization: Bearer <webhook_secret>".
func (s *Server) requireSecret(next http.HandlerFunc) http.HandlerFunc {
	want := []byte("Bearer " + s.cfg.WebhookSecret)
	return func(w http.ResponseWriter, r *http.Request) {
		got := []byte(r.Header.Get("Authorization"))
		if subtle.ConstantTimeCompare(got, want) != 1 {
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}
		next(w, r)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	ad := s.broadcast.Ad(r.Context())
	resp := statusResponse{
		Paused:   s.broadcast.Paused(),
		Channels: s.broadcast.Channels(r.Context()),
		Ad:       ad,
		Kind:     ad.Kind(),
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		s.logger.Error("Error encoding status", "error", err)
	}
}

func (s *Server) handleFeed(w http.ResponseWriter, r *http.Request) {
	baseURL := fmt.Sprintf("%s://%s", getScheme(r), r.Host)
	feed := s.feed.Generate(r.Context(), baseURL)

	rss, err := feed.ToRss()
	if err != nil {
		s.logger.Error("Error converting feed to RSS", "error", err)
		http.Error(w, "Failed to generate RSS", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(rss))
}

func getScheme(r *http.Request) string {
	if r.TLS != nil {
		return "https"
	}
	if scheme := r.Header.Get("X-Forwarded-Proto"); scheme != "" {
		return scheme
	}
	return "http"
}
