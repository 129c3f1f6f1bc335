package fixedarray

import "go.uber.org/zap"

type config struct {
	logger *zap.Logger
}

type Option func(*config)

// WithLogger sets the logger used to report rejected writes.
// A nil logger keeps the default no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

func newConfig(opts []Option) config {
	c := config{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&c)
	}
	c.logger = c.logger.Named("fixedarray")
	return c
}
