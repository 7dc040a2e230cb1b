package config

import (
	"testing"

	"github.com/Cycloctane/xzspider2/internal/acw"
	"github.com/Cycloctane/xzspider2/internal/testutil"
)

func TestSetupDefaults(t *testing.T) {
	Setup(&Args{ConfigFile: "none"})

	testutil.AssertEqual(t, DefaultLogger, Common.Logger)
	testutil.AssertEqual(t, DefaultLogLevel, Common.LogLevel)
	testutil.AssertEqual(t, acw.DefaultMask, Decoder.Mask)
	testutil.AssertEqual(t, len(acw.DefaultPositions), len(Decoder.Positions))
}

func TestSetupConfigFile(t *testing.T) {
	path := testutil.TempFile(t, `
[common]
logger = "stderr"
log_level = "debug"

[decoder]
positions = [2, 1]
mask = "0f"
`)

	Setup(&Args{ConfigFile: path})

	testutil.AssertEqual(t, "stderr", Common.Logger)
	testutil.AssertEqual(t, "debug", Common.LogLevel)
	testutil.AssertEqual(t, "0f", Decoder.Mask)
	testutil.AssertEqual(t, 2, len(Decoder.Positions))
}

func TestSetupPartialConfigFileKeepsDefaults(t *testing.T) {
	path := testutil.TempFile(t, `
[common]
logger = "stderr"
`)

	Setup(&Args{ConfigFile: path})

	testutil.AssertEqual(t, "stderr", Common.Logger)
	testutil.AssertEqual(t, DefaultLogLevel, Common.LogLevel)
	testutil.AssertEqual(t, acw.DefaultMask, Decoder.Mask)
}

func TestSetupEnvOverridesFile(t *testing.T) {
	path := testutil.TempFile(t, `
[common]
log_level = "warn"
`)
	t.Setenv("XZSPIDER2_LOG_LEVEL", "error")

	Setup(&Args{ConfigFile: path})

	testutil.AssertEqual(t, "error", Common.LogLevel)
}

func TestSetupArgsOverrideEnv(t *testing.T) {
	t.Setenv("XZSPIDER2_LOG_LEVEL", "error")
	t.Setenv("XZSPIDER2_LOGGER", "stderr")

	Setup(&Args{ConfigFile: "none", LogLevel: "debug"})

	testutil.AssertEqual(t, "debug", Common.LogLevel)
	testutil.AssertEqual(t, "stderr", Common.Logger)
}

func TestSetupDebugEnv(t *testing.T) {
	t.Setenv("XZSPIDER2_DEBUG", "yes")

	Setup(&Args{ConfigFile: "none"})

	testutil.AssertEqual(t, "stderr", Common.Logger)
	testutil.AssertEqual(t, "debug", Common.LogLevel)
}

func TestSetupConfigFileFromEnv(t *testing.T) {
	path := testutil.TempFile(t, `
[common]
logger = "stderr"
`)
	t.Setenv(ConfigFileEnvVar, path)

	Setup(&Args{})

	testutil.AssertEqual(t, "stderr", Common.Logger)
}

func TestSetupPanicsOnInvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		args Args
	}{
		{"unknown logger", Args{ConfigFile: "none", Logger: "syslog"}},
		{"unknown log level", Args{ConfigFile: "none", LogLevel: "verbose"}},
		{"missing config file", Args{ConfigFile: "/nonexistent/cookiegen.toml"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected Setup to panic")
				}
			}()
			Setup(&tt.args)
		})
	}
}
