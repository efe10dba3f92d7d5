package middleware

import (
	"context"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/clubhouse/internal/metrics"
)

// MetricsInterceptor records the count and latency of every RPC by result code.
func MetricsInterceptor() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			start := time.Now()
			resp, err := next(ctx, req)

			metrics.RecordRPC(req.Spec().Procedure, codeString(err), time.Since(start))
			return resp, err
		}
	}
}
