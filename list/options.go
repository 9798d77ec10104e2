package list

// Config carries the configuration of a List.
type Config struct {
	// When Debug is true, the list validates the preconditions of the link
	// and unlink operations and panics when they are violated. Validation
	// walks the list, turning those operations from O(1) into O(n).
	Debug bool
}

// DefaultConfig constructs a new Config instance initialized with the default
// configuration.
func DefaultConfig() *Config {
	return &Config{
		Debug: false,
	}
}

// Apply applies the list of options passed as arguments to c.
func (c *Config) Apply(options ...Option) {
	for _, opt := range options {
		opt.Configure(c)
	}
}

// Option is an interface implemented by options allowing configuration of new
// List instances.
type Option interface {
	Configure(*Config)
}

type option func(*Config)

func (opt option) Configure(config *Config) { opt(config) }

// Debug is a configuration option enabling validation of anchors and nodes
// passed to LinkAfter, InsertAfter and UnlinkAfter.
//
// Default: false
func Debug(enabled bool) Option {
	return option(func(config *Config) { config.Debug = enabled })
}
