package config

const (
	defaultHashWidth     = 8
	defaultHashHeight    = 8
	defaultHashFilter    = "triangle"
	defaultWorkerCount   = 0
	defaultOutputFormat  = "text"
	defaultLogFormat     = "console"
	defaultLogLevel      = "info"
	defaultConfigPath    = "~/.config/avghash/config.toml"
	defaultProjectConfig = "avghash.toml"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Hash: Hash{
			Width:  defaultHashWidth,
			Height: defaultHashHeight,
			Filter: defaultHashFilter,
		},
		Workers: Workers{
			Count: defaultWorkerCount,
		},
		Output: Output{
			Format:   defaultOutputFormat,
			Progress: true,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
