package interceptors

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

type CtxKey string

const (
	CtxRequestID CtxKey = "request_id"
	CtxAuthToken CtxKey = "auth_token"
)

// WithAuthToken кладёт токен учётной записи в контекст вызова.
func WithAuthToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, CtxAuthToken, token)
}

// ClientWithMetadata — добавляет в исходящий gRPC вызов заголовки:
//   - x-request-id (если есть в контексте);
//   - authorization: Bearer <token>: токен из контекста, иначе defaultToken;
//   - user-agent (если передан параметром).
func ClientWithMetadata(userAgent, defaultToken string) grpc.UnaryClientInterceptor {
	return func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
		var pairs []string

		if rid, _ := ctx.Value(CtxRequestID).(string); rid != "" {
			pairs = append(pairs, "x-request-id", rid)
		}

		tok, _ := ctx.Value(CtxAuthToken).(string)
		if tok == "" {
			tok = defaultToken
		}
		if tok != "" {
			pairs = append(pairs, "authorization", "Bearer "+tok)
		}

		if userAgent != "" {
			pairs = append(pairs, "user-agent", userAgent)
		}
		if len(pairs) > 0 {
			ctx = metadata.AppendToOutgoingContext(ctx, pairs...)
		}

		return invoker(ctx, method, req, reply, cc, opts...)
	}
}
