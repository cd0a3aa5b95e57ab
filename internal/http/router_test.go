package http

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type pinger struct{ err error }

func (p pinger) Ping(context.Context) error { return p.err }

// deadlinePinger запоминает, был ли у контекста проверки дедлайн.
type deadlinePinger struct{ left time.Duration }

func (p *deadlinePinger) Ping(ctx context.Context) error {
	if dl, ok := ctx.Deadline(); ok {
		p.left = time.Until(dl)
	}
	return nil
}

func do(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
	return rr
}

func TestRouter_Probes(t *testing.T) {
	opts := Options{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}

	ok := NewRouter(pinger{}, opts)
	require.Equal(t, http.StatusOK, do(t, ok, "/livez").Code)
	require.Equal(t, http.StatusOK, do(t, ok, "/healthz").Code)
	require.NotEmpty(t, do(t, ok, "/livez").Header().Get("X-Request-Id"))

	down := NewRouter(pinger{err: errors.New("mongo down")}, opts)
	require.Equal(t, http.StatusOK, do(t, down, "/livez").Code)
	require.Equal(t, http.StatusServiceUnavailable, do(t, down, "/healthz").Code)
}

func TestRouter_Metrics(t *testing.T) {
	custom := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("odysee_up 1\n"))
	})

	h := NewRouter(pinger{}, Options{Logger: slog.New(slog.NewTextHandler(io.Discard, nil)), Metrics: custom})
	rr := do(t, h, "/metrics")
	require.Equal(t, http.StatusOK, rr.Code)
	require.Contains(t, rr.Body.String(), "odysee_up")

	def := NewRouter(pinger{}, Options{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))})
	require.Contains(t, do(t, def, "/metrics").Body.String(), "go_goroutines")

	require.Equal(t, http.StatusNotFound, do(t, def, "/nope").Code)
}

func TestRouter_HealthzHasDeadline(t *testing.T) {
	p := &deadlinePinger{}
	h := NewRouter(p, Options{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))})

	require.Equal(t, http.StatusOK, do(t, h, "/healthz").Code)
	require.Greater(t, p.left, time.Duration(0))
	require.LessOrEqual(t, p.left, readyTimeout)
}
