package middleware

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"connectrpc.com/connect"
)

// LoggingInterceptor returns a Connect interceptor that logs every RPC call
// with its procedure, caller, duration and, on failure, the Connect code.
// Client-side errors (bad input, missing auth) log at Warn; everything that
// maps to an internal or unknown code logs at Error.
func LoggingInterceptor(logger *slog.Logger) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			start := time.Now()
			procedure := req.Spec().Procedure

			resp, err := next(ctx, req)

			attrs := []any{
				"procedure", procedure,
				"user_id", GetUserID(ctx), // empty if logged ahead of auth
				"duration_ms", time.Since(start).Milliseconds(),
			}
			if err == nil {
				logger.InfoContext(ctx, "RPC ok", attrs...)
				return resp, nil
			}

			code := connect.CodeOf(err)
			var connectErr *connect.Error
			message := err.Error()
			if errors.As(err, &connectErr) {
				message = connectErr.Message()
			}
			attrs = append(attrs, "code", code.String(), "error", message)

			switch code {
			case connect.CodeInternal, connect.CodeUnknown, connect.CodeDataLoss, connect.CodeUnavailable:
				logger.ErrorContext(ctx, "RPC error", attrs...)
			default:
				logger.WarnContext(ctx, "RPC error", attrs...)
			}
			return resp, err
		}
	}
}
