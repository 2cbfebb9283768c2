package config

type (
	NET struct {
		// Addr is the address the listener binds, host:port.
		Addr string `mapstructure:"addr"`
	}

	Pool struct {
		// Workers is the number of long-lived connection handlers. Fixed for
		// the lifetime of the server, must be at least 1.
		Workers int `mapstructure:"workers"`
		// QueueDepth caps the number of accepted connections waiting for a
		// free worker before the accept loop itself starts blocking.
		QueueDepth int `mapstructure:"queue_depth"`
	}

	FS struct {
		// Directory is the base directory the file routes resolve against.
		// Forwarded to the router untouched; empty by default.
		Directory string `mapstructure:"directory"`
	}
)

// Config holds the settings shared across the server parts. Always start
// from Default() and override, zero values are filled back in by Fill.
type Config struct {
	NET  NET  `mapstructure:"net"`
	Pool Pool `mapstructure:"pool"`
	FS   FS   `mapstructure:"fs"`
}

func Default() Config {
	return Config{
		NET: NET{
			Addr: "127.0.0.1:4221",
		},
		Pool: Pool{
			Workers:    4,
			QueueDepth: 256,
		},
	}
}

// Fill replaces zero values of the passed config with defaults.
func Fill(cfg Config) Config {
	defaults := Default()

	cfg.NET.Addr = stror(cfg.NET.Addr, defaults.NET.Addr)
	cfg.Pool.Workers = intor(cfg.Pool.Workers, defaults.Pool.Workers)
	cfg.Pool.QueueDepth = intor(cfg.Pool.QueueDepth, defaults.Pool.QueueDepth)

	return cfg
}

func stror(value, or string) string {
	if len(value) == 0 {
		return or
	}

	return value
}

func intor(value, or int) int {
	if value == 0 {
		return or
	}

	return value
}
