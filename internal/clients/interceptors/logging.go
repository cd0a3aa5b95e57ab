// interceptors — клиентские gRPC-интерсепторы comments-client.
package interceptors

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/pribylovaa/odysee-comments/pkg/log"
)

// ClientUnaryLoggingInterceptor — логирование исходящих unary-вызовов.
//   - x-request-id берётся из исходящего metadata или генерируется;
//   - логгер с request_id/method/target прокладывается в контекст (pkg/log);
//   - итоговая запись "grpc_call": Debug при OK, Warn при ошибке.
//
// Payload и заголовки авторизации не логируются.
func ClientUnaryLoggingInterceptor(base *slog.Logger) grpc.UnaryClientInterceptor {
	if base == nil {
		base = slog.Default()
	}

	return func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
		start := time.Now()

		var rid string
		if md, ok := metadata.FromOutgoingContext(ctx); ok {
			if v := md.Get("x-request-id"); len(v) > 0 && v[0] != "" {
				rid = v[0]
			}
		}
		if rid == "" {
			rid = uuid.NewString()
			ctx = metadata.AppendToOutgoingContext(ctx, "x-request-id", rid)
		}

		target := "-"
		if cc != nil && cc.Target() != "" {
			target = cc.Target()
		}

		l := base.With(
			slog.String("request_id", rid),
			slog.String("method", method),
			slog.String("target", target),
		)
		ctx = log.Into(ctx, l)

		err := invoker(ctx, method, req, reply, cc, opts...)

		code := status.Code(err)
		lvl := slog.LevelDebug
		if code != codes.OK {
			lvl = slog.LevelWarn
		}
		l.Log(ctx, lvl, "grpc_call",
			slog.String("code", code.String()),
			slog.Duration("dur", time.Since(start)),
		)

		return err
	}
}
