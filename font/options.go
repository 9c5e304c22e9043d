package font

// Option configures SFNT creation.
type Option func(*config)

type config struct {
	cacheLimit int
	name       string
}

func defaultConfig() config {
	return config{
		cacheLimit: 1024,
	}
}

// WithCacheLimit sets the maximum number of cached glyph metrics.
// A value of 0 disables the cache limit.
func WithCacheLimit(n int) Option {
	return func(c *config) {
		c.cacheLimit = n
	}
}

// WithName overrides the family name read from the font's name table.
func WithName(name string) Option {
	return func(c *config) {
		c.name = name
	}
}
