package server

import (
	"ai_digest/shared"
	"context"
	"github.com/charmbracelet/log"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"go.uber.org/fx/fxtest"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestTrimSlashHandler(t *testing.T) {
	scenarios := []struct {
		in       string
		expected string
	}{
		{"/", "/"},
		{"/api/status/", "/api/status"},
		{"/api/status", "/api/status"},
		{"/metrics/", "/metrics"},
	}
	for _, sc := range scenarios {
		var got string
		h := trimSlashHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got = r.URL.Path
		}))
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", sc.in, nil))
		assert.Equal(t, sc.expected, got, sc.in)
	}
}

func TestHTTPServerLifecycle(t *testing.T) {
	cfg := shared.NewDefaultConfig()
	cfg.ServicePort = 0
	lc := fxtest.NewLifecycle(t)
	srv := NewHTTPServer(cfg, log.New(io.Discard), lc, mux.NewRouter())
	assert.Equal(t, ":0", srv.Addr)
	assert.NoError(t, lc.Start(context.Background()))
	assert.NoError(t, lc.Stop(context.Background()))
}
