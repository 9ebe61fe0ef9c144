package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// FromContext returns the logger carried by ctx, or a disabled logger.
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// WithContext attaches logger to ctx.
func WithContext(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}

// WithComponent tags every later log line with the component name.
func WithComponent(ctx context.Context, component string) context.Context {
	return withField(ctx, "component", component)
}

// WithRule tags every later log line with the rule being edited.
func WithRule(ctx context.Context, rule string) context.Context {
	return withField(ctx, "rule", rule)
}

func withField(ctx context.Context, key, value string) context.Context {
	return WithContext(ctx, FromContext(ctx).With().Str(key, value).Logger())
}
