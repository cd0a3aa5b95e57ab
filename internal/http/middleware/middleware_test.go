package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// capHandler — тестовый slog.Handler: копит базовые attrs из With(...) и
// attrs последней записи.
type capHandler struct {
	mu      sync.Mutex
	base    []slog.Attr
	lastMsg string
	lastLvl slog.Level
	attrs   map[string]any
	count   int
}

func (h *capHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h *capHandler) Handle(_ context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := make(map[string]any, len(h.base)+8)
	for _, a := range h.base {
		out[a.Key] = a.Value.Any()
	}
	r.Attrs(func(a slog.Attr) bool {
		out[a.Key] = a.Value.Any()
		return true
	})

	h.count++
	h.lastMsg = r.Message
	h.lastLvl = r.Level
	h.attrs = out

	return nil
}

func (h *capHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.base = append(h.base, attrs...)
	return h
}

func (h *capHandler) WithGroup(string) slog.Handler { return h }

func TestChain_Order(t *testing.T) {
	order := []string{}

	mk := func(name string) Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name+"-begin")
				next.ServeHTTP(w, r)
				order = append(order, name+"-end")
			})
		}
	}

	final := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		order = append(order, "handler")
		w.WriteHeader(http.StatusTeapot)
	})

	rr := httptest.NewRecorder()
	Chain(final, mk("m1"), mk("m2")).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/chain", nil))

	require.Equal(t, []string{"m1-begin", "m2-begin", "handler", "m2-end", "m1-end"}, order)
	require.Equal(t, http.StatusTeapot, rr.Code)
}

func TestRequestID_GenerateAndPropagate(t *testing.T) {
	var seen string
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.Header.Get(HeaderRequestID)
	})

	rr := httptest.NewRecorder()
	Chain(h, RequestID()).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/rid", nil))

	got := rr.Header().Get(HeaderRequestID)
	require.Len(t, got, 36)
	require.Equal(t, got, seen)
}

func TestRequestID_UseExisting(t *testing.T) {
	const given = "abc123-existing-id"

	req := httptest.NewRequest(http.MethodGet, "/rid", nil)
	req.Header.Set(HeaderRequestID, given)
	rr := httptest.NewRecorder()
	Chain(http.NotFoundHandler(), RequestID()).ServeHTTP(rr, req)

	require.Equal(t, given, rr.Header().Get(HeaderRequestID))
}

func TestLogging_WritesRecordWithRequestID(t *testing.T) {
	ch := &capHandler{}
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
		_, _ = w.Write([]byte("hey"))
	})

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(HeaderRequestID, "rid-1")
	Chain(h, Logging(slog.New(ch))).ServeHTTP(httptest.NewRecorder(), req)

	require.Equal(t, 1, ch.count)
	require.Equal(t, "http", ch.lastMsg)
	require.Equal(t, "rid-1", ch.attrs["request_id"])
	require.Equal(t, int64(http.StatusAccepted), ch.attrs["status"])
	require.Equal(t, int64(3), ch.attrs["bytes"])
	require.Equal(t, "/x", ch.attrs["path"])
}

func TestRecover_Returns500AndLogs(t *testing.T) {
	ch := &capHandler{}
	boom := http.HandlerFunc(func(http.ResponseWriter, *http.Request) { panic("boom") })

	rr := httptest.NewRecorder()
	Chain(boom, Logging(slog.New(ch)), Recover()).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/p", nil))

	require.Equal(t, http.StatusInternalServerError, rr.Code)
	require.NotContains(t, rr.Body.String(), "boom")
	// panic + итоговая запись http со статусом 500.
	require.Equal(t, 2, ch.count)
	require.Equal(t, int64(http.StatusInternalServerError), ch.attrs["status"])
}

func TestTimeout_SetsDeadline(t *testing.T) {
	var left time.Duration
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if dl, ok := r.Context().Deadline(); ok {
			left = time.Until(dl)
		}
	})

	Chain(h, Timeout(50*time.Millisecond)).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/t", nil))

	require.Greater(t, left, time.Duration(0))
	require.LessOrEqual(t, left, 50*time.Millisecond)
}

func TestTimeout_KeepsExistingDeadline(t *testing.T) {
	parent, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	var got time.Time
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = r.Context().Deadline()
	})

	req := httptest.NewRequest(http.MethodGet, "/t", nil).WithContext(parent)
	Chain(h, Timeout(time.Second)).ServeHTTP(httptest.NewRecorder(), req)

	want, _ := parent.Deadline()
	require.Equal(t, want, got)
}

func TestTimeout_ZeroIsNoop(t *testing.T) {
	var has bool
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, has = r.Context().Deadline()
	})

	Chain(h, Timeout(0)).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/t", nil))
	require.False(t, has)
}
