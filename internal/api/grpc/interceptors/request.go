package interceptors

import (
	"context"
	"log/slog"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// LoggingUnaryInterceptor логирует каждый unary RPC: метод, длительность, код/ошибка (аналог HTTP request logger).
// Успешные вызовы пишутся на Debug: health-чеки приходят часто.
func LoggingUnaryInterceptor(log *slog.Logger) grpc.UnaryServerInterceptor {
	if log == nil {
		log = slog.Default()
	}
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)

		attrs := []any{"method", info.FullMethod, "latency_ms", time.Since(start).Milliseconds()}
		if err != nil {
			st := status.Convert(err)
			attrs = append(attrs, "grpc_code", st.Code().String(), "error", st.Message())
			log.WarnContext(ctx, "grpc request", attrs...)
			return resp, err
		}
		attrs = append(attrs, "grpc_code", codes.OK.String())
		log.DebugContext(ctx, "grpc request", attrs...)
		return resp, nil
	}
}
