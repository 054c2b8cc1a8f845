package logging

import (
	"context"

	"github.com/rs/zerolog"
)

type contextKey struct{}

// WithLogger stores a logger in the context. A nil logger stores the
// process default.
func WithLogger(ctx context.Context, logger *zerolog.Logger) context.Context {
	if logger == nil {
		logger = Default()
	}
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext returns the context's logger, falling back to the process
// default so callers never get a nil logger back.
func FromContext(ctx context.Context) *zerolog.Logger {
	if ctx != nil {
		if logger, ok := ctx.Value(contextKey{}).(*zerolog.Logger); ok && logger != nil {
			return logger
		}
	}
	return Default()
}

// Ctx is shorthand for FromContext.
func Ctx(ctx context.Context) *zerolog.Logger {
	return FromContext(ctx)
}

// WithField derives a context whose logger carries one extra field.
func WithField(ctx context.Context, key string, value any) context.Context {
	logger := FromContext(ctx).With().Interface(key, value).Logger()
	return WithLogger(ctx, &logger)
}

// WithModel tags the context's logger with a model variant ID.
func WithModel(ctx context.Context, id string) context.Context {
	return WithField(ctx, "model_id", id)
}

// WithCollection tags the context's logger with a collection name.
func WithCollection(ctx context.Context, name string) context.Context {
	return WithField(ctx, "collection", name)
}
