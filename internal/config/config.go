// Package config provides configuration management for the cookiegen
// command. It handles hierarchical configuration from a TOML config file,
// environment variables, and command-line arguments.
//
// Configuration precedence (highest to lowest):
// 1. Command-line arguments
// 2. Environment variables (XZSPIDER2_ prefix)
// 3. Configuration file
// 4. Default values
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/Cycloctane/xzspider2/internal/acw"
)

const (
	// DefaultLogger specifies the default logger. Stdout carries the cookie
	// stream and the parent process expects the adapter to be silent
	// otherwise, so logging is off unless asked for.
	DefaultLogger string = "none"
	// DefaultLogLevel specifies the default log level (obviously).
	DefaultLogLevel string = "info"
	// ConfigFileEnvVar overrides the config file path.
	ConfigFileEnvVar string = "XZSPIDER2_CONFIG"
)

// Common holds the common cookiegen configuration.
// This global variable provides access to shared settings after
// configuration initialization.
var Common *CommonConfig

// Decoder holds the cookie decoder configuration.
var Decoder *DecoderConfig

// CommonConfig holds settings shared by all run modes.
type CommonConfig struct {
	Logger   string `toml:"logger"`
	LogLevel string `toml:"log_level"`
}

// DecoderConfig holds the acw_sc__v2 scramble constants. The site rotates
// them occasionally; overriding them here beats waiting for a release.
type DecoderConfig struct {
	Positions []int  `toml:"positions"`
	Mask      string `toml:"mask"`
}

// fileConfig is the layout of the TOML config file.
type fileConfig struct {
	Common  CommonConfig  `toml:"common"`
	Decoder DecoderConfig `toml:"decoder"`
}

type initializer struct {
	Common  *CommonConfig
	Decoder *DecoderConfig
}

// Setup initializes the cookiegen configuration from all sources and makes
// the final configuration available via the global variables. It panics on
// configuration errors so the tool cannot start half-configured.
func Setup(args *Args) {
	ini := initializer{
		Common:  newDefaultCommonConfig(),
		Decoder: newDefaultDecoderConfig(),
	}
	if err := ini.parseConfig(args); err != nil {
		panic(err)
	}
	if err := ini.transformConfig(args); err != nil {
		panic(err)
	}

	// Make config accessible globally
	Common = ini.Common
	Decoder = ini.Decoder
}

func newDefaultCommonConfig() *CommonConfig {
	return &CommonConfig{
		Logger:   DefaultLogger,
		LogLevel: DefaultLogLevel,
	}
}

func newDefaultDecoderConfig() *DecoderConfig {
	return &DecoderConfig{
		Positions: acw.DefaultPositions,
		Mask:      acw.DefaultMask,
	}
}

// parseConfig overlays the TOML config file, when there is one, onto the
// defaults. Fields absent from the file keep their current values.
func (i *initializer) parseConfig(args *Args) error {
	path := args.ConfigFile
	if path == "" {
		path = os.Getenv(ConfigFileEnvVar)
	}
	if path == "" || path == "none" {
		return nil
	}

	fc := fileConfig{Common: *i.Common, Decoder: *i.Decoder}
	if _, err := toml.DecodeFile(path, &fc); err != nil {
		return fmt.Errorf("unable to parse config file %s: %v", path, err)
	}
	*i.Common = fc.Common
	*i.Decoder = fc.Decoder
	return nil
}

// transformConfig applies environment variables and command line arguments
// on top of the file values and validates the result.
func (i *initializer) transformConfig(args *Args) error {
	if v := os.Getenv("XZSPIDER2_LOGGER"); v != "" {
		i.Common.Logger = v
	}
	if v := os.Getenv("XZSPIDER2_LOG_LEVEL"); v != "" {
		i.Common.LogLevel = v
	}
	if Env("XZSPIDER2_DEBUG") {
		i.Common.Logger = "stderr"
		i.Common.LogLevel = "debug"
	}

	if args.Logger != "" {
		i.Common.Logger = args.Logger
	}
	if args.LogLevel != "" {
		i.Common.LogLevel = args.LogLevel
	}

	switch i.Common.Logger {
	case "none", "stderr":
	default:
		return fmt.Errorf("unknown logger %q", i.Common.Logger)
	}
	switch i.Common.LogLevel {
	case "none", "error", "warn", "info", "debug":
	default:
		return fmt.Errorf("unknown log level %q", i.Common.LogLevel)
	}
	return nil
}
