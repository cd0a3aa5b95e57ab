package interceptors

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/pribylovaa/odysee-comments/pkg/log"
)

type capHandler struct {
	base    []slog.Attr
	lastMsg string
	lastLvl slog.Level
	attrs   map[string]any
	count   map[string]int
}

func (h *capHandler) Enabled(context.Context, slog.Level) bool { return true }
func (h *capHandler) Handle(_ context.Context, r slog.Record) error {
	out := make(map[string]any, len(h.base)+8)
	for _, a := range h.base {
		out[a.Key] = a.Value.Any()
	}
	r.Attrs(func(a slog.Attr) bool {
		out[a.Key] = a.Value.Any()
		return true
	})
	if h.count == nil {
		h.count = make(map[string]int)
	}
	h.count[r.Message]++
	h.lastMsg = r.Message
	h.lastLvl = r.Level
	h.attrs = out
	return nil
}

func (h *capHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	h.base = append(h.base, attrs...)
	return h
}

func (h *capHandler) WithGroup(string) slog.Handler { return h }

func captureMD(out *metadata.MD) grpc.UnaryInvoker {
	return func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
		*out, _ = metadata.FromOutgoingContext(ctx)
		return nil
	}
}

func TestClientMetadata_AppendsHeaders(t *testing.T) {
	t.Parallel()

	ctx := context.WithValue(context.Background(), CtxRequestID, "rid-123")
	ctx = WithAuthToken(ctx, "ctx-token")

	var md metadata.MD
	err := ClientWithMetadata("comments-client", "default-token")(ctx, "/commentsv1.Comments/React", nil, nil, nil, captureMD(&md))
	require.NoError(t, err)

	require.Equal(t, []string{"rid-123"}, md.Get("x-request-id"))
	require.Equal(t, []string{"Bearer ctx-token"}, md.Get("authorization"))
	require.Equal(t, []string{"comments-client"}, md.Get("user-agent"))
}

func TestClientMetadata_DefaultToken(t *testing.T) {
	t.Parallel()

	var md metadata.MD
	err := ClientWithMetadata("", "acc-1")(context.Background(), "/commentsv1.Comments/ChannelList", nil, nil, nil, captureMD(&md))
	require.NoError(t, err)

	require.Equal(t, []string{"Bearer acc-1"}, md.Get("authorization"))
	require.Empty(t, md.Get("x-request-id"))
	require.Empty(t, md.Get("user-agent"))
}

func TestClientMetadata_SkipEmptyValues(t *testing.T) {
	t.Parallel()

	var md metadata.MD
	err := ClientWithMetadata("", "")(context.Background(), "/commentsv1.Comments/Resolve", nil, nil, nil, captureMD(&md))
	require.NoError(t, err)
	require.Empty(t, md.Get("authorization"))
}

func TestClientWithTimeout_SetsDeadline(t *testing.T) {
	t.Parallel()

	const d = 40 * time.Millisecond
	start := time.Now()
	err := ClientWithTimeout(d, nil)(context.Background(), "/commentsv1.Comments/React", nil, nil, nil,
		func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
			<-ctx.Done()
			return ctx.Err()
		})
	require.ErrorIs(t, err, context.DeadlineExceeded)
	require.GreaterOrEqual(t, time.Since(start), d)
}

func TestClientWithTimeout_Override(t *testing.T) {
	t.Parallel()

	const list = "/commentsv1.Comments/CommentList"
	inter := ClientWithTimeout(time.Millisecond, map[string]time.Duration{list: time.Hour})

	var left time.Duration
	err := inter(context.Background(), list, nil, nil, nil,
		func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
			dl, ok := ctx.Deadline()
			require.True(t, ok)
			left = time.Until(dl)
			return nil
		})
	require.NoError(t, err)
	require.Greater(t, left, time.Minute)
}

func TestClientWithTimeout_DoesNotOverrideExistingDeadline(t *testing.T) {
	t.Parallel()

	parent, cancel := context.WithTimeout(context.Background(), 25*time.Millisecond)
	defer cancel()
	parentDL, _ := parent.Deadline()

	var childDL time.Time
	err := ClientWithTimeout(time.Second, nil)(parent, "/commentsv1.Comments/React", nil, nil, nil,
		func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
			childDL, _ = ctx.Deadline()
			return nil
		})
	require.NoError(t, err)
	require.WithinDuration(t, parentDL, childDL, time.Millisecond)
}

func TestClientWithTimeout_ZeroDuration_PassThrough(t *testing.T) {
	t.Parallel()

	var hasDL bool
	err := ClientWithTimeout(0, nil)(context.Background(), "/commentsv1.Comments/React", nil, nil, nil,
		func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
			_, hasDL = ctx.Deadline()
			return nil
		})
	require.NoError(t, err)
	require.False(t, hasDL)
}

func TestClientLogging_OK(t *testing.T) {
	t.Parallel()

	h := &capHandler{}
	inter := ClientUnaryLoggingInterceptor(slog.New(h))

	var md metadata.MD
	err := inter(context.Background(), "/commentsv1.Comments/CommentList", nil, nil, nil,
		func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
			log.From(ctx).Info("probe")
			md, _ = metadata.FromOutgoingContext(ctx)
			return nil
		})
	require.NoError(t, err)

	require.Equal(t, 1, h.count["probe"])
	require.Equal(t, "grpc_call", h.lastMsg)
	require.Equal(t, slog.LevelDebug, h.lastLvl)
	require.Equal(t, "OK", h.attrs["code"])
	require.Equal(t, "/commentsv1.Comments/CommentList", h.attrs["method"])
	require.Len(t, md.Get("x-request-id"), 1)
	require.Equal(t, md.Get("x-request-id")[0], h.attrs["request_id"])
}

func TestClientLogging_ErrorIsWarn(t *testing.T) {
	t.Parallel()

	h := &capHandler{}
	inter := ClientUnaryLoggingInterceptor(slog.New(h))

	ctx := metadata.AppendToOutgoingContext(context.Background(), "x-request-id", "rid-7")
	err := inter(ctx, "/commentsv1.Comments/React", nil, nil, nil,
		func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
			return status.Error(codes.Unavailable, "down")
		})
	require.Error(t, err)
	require.False(t, errors.Is(err, context.Canceled))

	require.Equal(t, slog.LevelWarn, h.lastLvl)
	require.Equal(t, "Unavailable", h.attrs["code"])
	require.Equal(t, "rid-7", h.attrs["request_id"])
}
