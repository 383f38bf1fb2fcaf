package rubikscube

// Option configures a Tracker or a scramble.
type Option func(*config)

type config struct {
	metric  Metric
	history bool
}

func defaultConfig() *config {
	return &config{
		metric:  HalfTurnMetric,
		history: true,
	}
}

func newConfig(opts []Option) *config {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithMetric selects the turn metric. Scrambles draw only from the metric's
// generators and trackers count turns under it. Default HalfTurnMetric.
func WithMetric(m Metric) Option {
	return func(c *config) {
		c.metric = m
	}
}

// WithHistory enables or disables turn history on a Tracker.
// When enabled (default), turns are stored and can be undone.
// Disable this for long sessions to reduce memory usage.
func WithHistory(enabled bool) Option {
	return func(c *config) {
		c.history = enabled
	}
}
