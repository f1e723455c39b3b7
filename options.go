package kokoro

import "log/slog"

// Option configures a Splitter.
type Option func(*config)

type config struct {
	logger *slog.Logger
	extra  map[string]any
}

func defaultConfig() config {
	return config{
		logger: slog.Default(),
	}
}

// WithLogger sets the logger (default: slog.Default()). The splitter only
// logs lifecycle misuse, never per-sentence activity.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithOption records a named option value. No named options currently change
// splitting behavior; unrecognized names are accepted without error so that
// callers can pass options targeting future versions.
func WithOption(name string, value any) Option {
	return func(c *config) {
		if c.extra == nil {
			c.extra = make(map[string]any)
		}
		c.extra[name] = value
	}
}
