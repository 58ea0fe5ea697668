package server

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxviazov/league-registry/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{Port: 0},
		HTTP: config.HTTPConfig{
			ReadTimeout:    5,
			WriteTimeout:   7,
			AllowedOrigins: []string{"https://stats.example.com"},
		},
	}
}

func TestNew_AppliesTimeouts(t *testing.T) {
	srv := New(testConfig(), http.NotFoundHandler())
	assert.Equal(t, ":0", srv.Addr)
	assert.Equal(t, 5*time.Second, srv.ReadTimeout)
	assert.Equal(t, 7*time.Second, srv.WriteTimeout)
}

func TestNew_CORS(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
	srv := New(testConfig(), ok)

	req := httptest.NewRequest(http.MethodGet, "/api/leagues", nil)
	req.Header.Set("Origin", "https://stats.example.com")
	w := httptest.NewRecorder()
	srv.Handler.ServeHTTP(w, req)
	assert.Equal(t, "https://stats.example.com", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/api/leagues", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	w = httptest.NewRecorder()
	srv.Handler.ServeHTTP(w, req)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRun_StopsOnCancel(t *testing.T) {
	srv := &http.Server{Addr: "127.0.0.1:0", Handler: http.NotFoundHandler()}
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- Run(ctx, srv, time.Second, zerolog.New(io.Discard)) }()
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
