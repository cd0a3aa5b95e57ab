// interceptors предоставляет набор gRPC-интерсепторов для серверной стороны.
package interceptors

import (
	"context"
	"time"

	"google.golang.org/grpc"
)

// WithTimeout возвращает unary-интерсептор, который навешивает таймаут на контекст
// запроса при его отсутствии. Существующий дедлайн не переопределяется.
//
// overrides задаёт таймауты для отдельных FullMethod (например, CommentList
// с page_size=99999 заметно тяжелее остальных вызовов). Если метода нет в
// overrides, используется d.
//
// Контракт:
//  1. итоговый таймаут <= 0 — handler вызывается без изменения контекста;
//  2. deadline уже задан во входящем ctx — не модифицирует его;
//  3. иначе — оборачивает ctx через context.WithTimeout и гарантированно вызывает cancel().
func WithTimeout(d time.Duration, overrides map[string]time.Duration) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		timeout := d
		if info != nil {
			if o, ok := overrides[info.FullMethod]; ok {
				timeout = o
			}
		}

		if timeout <= 0 {
			return handler(ctx, req)
		}

		if _, ok := ctx.Deadline(); ok {
			return handler(ctx, req)
		}

		ctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()

		return handler(ctx, req)
	}
}
