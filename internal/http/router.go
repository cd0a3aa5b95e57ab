// http — служебный HTTP-сервер comments-service: liveness, readiness, метрики.
package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pribylovaa/odysee-comments/internal/http/middleware"
	logctx "github.com/pribylovaa/odysee-comments/pkg/log"
)

// readyTimeout — дедлайн проверки хранилища в /healthz.
const readyTimeout = 2 * time.Second

// Pinger — зависимость, без которой сервис не готов (хранилище).
type Pinger interface {
	Ping(ctx context.Context) error
}

// Options — параметры сборки HTTP-роутера.
type Options struct {
	Logger *slog.Logger
	// Metrics — обработчик /metrics; по умолчанию promhttp.Handler().
	Metrics http.Handler
}

// NewRouter собирает http.Handler с chi и подключёнными middleware/роутами.
func NewRouter(ready Pinger, opts Options) http.Handler {
	r := chi.NewRouter()

	// Внешний -> внутренний: request id нужен логированию, recover пишет 500
	// внутри логирования, чтобы статус попал в запись.
	r.Use(
		middleware.RequestID(),
		middleware.Logging(opts.Logger),
		middleware.Recover(),
	)

	metrics := opts.Metrics
	if metrics == nil {
		metrics = promhttp.Handler()
	}

	r.Get("/livez", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.With(middleware.Timeout(readyTimeout)).Get("/healthz", healthz(ready))
	r.Method(http.MethodGet, "/metrics", metrics)

	return r
}

func healthz(ready Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := ready.Ping(r.Context()); err != nil {
			logctx.From(r.Context()).Warn("readiness_failed", slog.String("err", err.Error()))
			http.Error(w, "not ready", http.StatusServiceUnavailable)
			return
		}

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}
}
