package config

// Args holds the parsed command line arguments of the cookiegen command.
type Args struct {
	// ConfigFile is the TOML config file path ("none" disables file lookup).
	ConfigFile string
	// FilesStr lists captured record files to decode instead of stdin,
	// comma separated.
	FilesStr string
	// Logger selects the logger ("none" or "stderr").
	Logger string
	// LogLevel selects the log level.
	LogLevel string
}
