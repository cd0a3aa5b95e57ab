package interceptors

import (
	"context"
	"time"

	"google.golang.org/grpc"
)

// ClientWithTimeout навешивает таймаут на исходящий вызов, если у контекста
// ещё нет дедлайна. Для методов из overrides используется свой таймаут
// (CommentList забирает сразу все комментарии и может идти дольше).
//
//  1. таймаут <= 0 — контекст не меняется;
//  2. у ctx уже есть deadline — оставляет как есть;
//  3. иначе — context.WithTimeout с гарантированным cancel().
func ClientWithTimeout(d time.Duration, overrides map[string]time.Duration) grpc.UnaryClientInterceptor {
	return func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
		timeout := d
		if v, ok := overrides[method]; ok {
			timeout = v
		}

		if timeout <= 0 {
			return invoker(ctx, method, req, reply, cc, opts...)
		}
		if _, ok := ctx.Deadline(); ok {
			return invoker(ctx, method, req, reply, cc, opts...)
		}

		cctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()

		return invoker(cctx, method, req, reply, cc, opts...)
	}
}
