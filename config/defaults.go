package config

const (
	defaultLogLevel  = "info"
	defaultLogFormat = "auto"
)

// Default returns a Config populated with repository defaults: no tool
// overrides and auto-detected console/JSON logging at info level.
func Default() Config {
	return Config{
		Logging: Logging{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}
