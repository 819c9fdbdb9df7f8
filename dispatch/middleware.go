package dispatch

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/TannerPerrien/deeplink/link"
)

// Recovery returns a middleware that recovers from panics in downstream
// handlers and converts them into errors, so a broken handler cannot crash
// the host's navigation loop.
func Recovery() Middleware {
	return func(next HandlerFunc) HandlerFunc {
		return func(ctx context.Context, m link.Match) (err error) {
			defer func() {
				if v := recover(); v != nil {
					err = fmt.Errorf("dispatch: panic in handler for %q: %v", m.Destination, v)
				}
			}()

			return next(ctx, m)
		}
	}
}

// Logging returns a middleware that logs each dispatch with its destination,
// parameter count, duration, and outcome. When logger is nil, slog.Default()
// is used.
func Logging(logger *slog.Logger) Middleware {
	if logger == nil {
		logger = slog.Default()
	}

	return func(next HandlerFunc) HandlerFunc {
		return func(ctx context.Context, m link.Match) error {
			start := time.Now()
			err := next(ctx, m)

			attrs := []slog.Attr{
				slog.String("destination", m.Destination),
				slog.Int("params", len(m.Params)),
				slog.Duration("duration", time.Since(start)),
			}

			if err != nil {
				attrs = append(attrs, slog.String("error", err.Error()))
				logger.LogAttrs(ctx, slog.LevelError, "link dispatch failed", attrs...)
			} else {
				logger.LogAttrs(ctx, slog.LevelInfo, "link dispatched", attrs...)
			}

			return err
		}
	}
}
