package log_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/scribe/log"
)

func TestConfigRegisterFlags(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		args []string
		want log.Config
	}{
		"defaults": {
			args: nil,
			want: log.Config{ID: "main", Level: "info", File: "", Color: "auto"},
		},
		"all flags": {
			args: []string{
				"--log-id=Mod",
				"--log-level=trace",
				"--log-file=app.log",
				"--log-color=never",
			},
			want: log.Config{ID: "Mod", Level: "trace", File: "app.log", Color: "never"},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			cfg := log.NewConfig()
			flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
			cfg.RegisterFlags(flags)

			require.NoError(t, flags.Parse(tc.args))

			assert.Equal(t, tc.want.ID, cfg.ID)
			assert.Equal(t, tc.want.Level, cfg.Level)
			assert.Equal(t, tc.want.File, cfg.File)
			assert.Equal(t, tc.want.Color, cfg.Color)
		})
	}
}

func TestConfigCustomFlagNames(t *testing.T) {
	t.Parallel()

	cfg := log.Flags{ID: "id", Level: "level", File: "file", Color: "color"}.NewConfig()
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	cfg.RegisterFlags(flags)

	require.NoError(t, flags.Parse([]string{"--level=warn", "--id=svc"}))
	assert.Equal(t, "warn", cfg.Level)
	assert.Equal(t, "svc", cfg.ID)
}

func TestRegisterCompletions(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		flag string
		want []string
	}{
		"log-level completions": {
			flag: "log-level",
			want: log.GetAllLevelStrings(),
		},
		"log-color completions": {
			flag: "log-color",
			want: log.GetAllColorModeStrings(),
		},
	}

	cfg := log.NewConfig()

	cmd := &cobra.Command{Use: "test"}
	cfg.RegisterFlags(cmd.Flags())

	err := cfg.RegisterCompletions(cmd)
	require.NoError(t, err)

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			completionFn, ok := cmd.GetFlagCompletionFunc(tc.flag)
			require.True(t, ok)

			values, directive := completionFn(cmd, nil, "")
			assert.Equal(t, cobra.ShellCompDirectiveNoFileComp, directive)
			assert.Equal(t, tc.want, values)
		})
	}
}

func TestConfigLoadYAML(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input       string
		want        log.Config
		expectError bool
	}{
		"overrides present keys": {
			input: "id: Examples/Main\nlevel: trace\n",
			want:  log.Config{ID: "Examples/Main", Level: "trace", Color: "auto"},
		},
		"all keys": {
			input: "id: svc\nlevel: error\nfile: out.log\ncolor: always\n",
			want:  log.Config{ID: "svc", Level: "error", File: "out.log", Color: "always"},
		},
		"empty document keeps values": {
			input: "",
			want:  log.Config{ID: "main", Level: "info", Color: "auto"},
		},
		"unknown key": {
			input:       "id: svc\nrotate: daily\n",
			expectError: true,
		},
		"malformed": {
			input:       "id: [unterminated\n",
			expectError: true,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			cfg := log.NewConfig()

			err := cfg.LoadYAML([]byte(tc.input))
			if tc.expectError {
				require.ErrorIs(t, err, log.ErrInvalidConfig)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want.ID, cfg.ID)
			assert.Equal(t, tc.want.Level, cfg.Level)
			assert.Equal(t, tc.want.File, cfg.File)
			assert.Equal(t, tc.want.Color, cfg.Color)
		})
	}
}

func TestConfigLoadFile(t *testing.T) {
	t.Parallel()

	t.Run("file overrides flags", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "scribe.yaml")
		require.NoError(t, os.WriteFile(path, []byte("level: warn\n"), 0o600))

		cfg := log.NewConfig()
		flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
		cfg.RegisterFlags(flags)
		require.NoError(t, flags.Parse([]string{"--log-level=debug", "--log-id=cli"}))

		require.NoError(t, cfg.LoadFile(path))
		assert.Equal(t, "warn", cfg.Level)
		assert.Equal(t, "cli", cfg.ID)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		cfg := log.NewConfig()
		err := cfg.LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
		require.ErrorIs(t, err, log.ErrInvalidConfig)
	})
}

func TestConfigNewLogger(t *testing.T) {
	t.Parallel()

	t.Run("console only", func(t *testing.T) {
		t.Parallel()

		var console bytes.Buffer

		cfg := log.NewConfig()
		cfg.ID = "Mod"
		cfg.Level = "warn"

		logger, closer, err := cfg.NewLogger(log.WithConsole(&console), log.WithClock(fixedClock))
		require.NoError(t, err)
		require.NotNil(t, closer)

		assert.Equal(t, "Mod", logger.ID())
		assert.Equal(t, log.LevelWarn, logger.Level())
		assert.False(t, logger.WritesFile())

		logger.Info("dropped")
		logger.Warn("kept")

		assert.Equal(t, "[12:34:56] [WARN ] [Mod]: kept\n", console.String())
		require.NoError(t, closer.Close())
	})

	t.Run("with file", func(t *testing.T) {
		t.Parallel()

		var console bytes.Buffer

		path := filepath.Join(t.TempDir(), "app.log")

		cfg := log.NewConfig()
		cfg.ID = "Mod"
		cfg.File = path
		cfg.Color = "always"

		logger, closer, err := cfg.NewLogger(log.WithConsole(&console), log.WithClock(fixedClock))
		require.NoError(t, err)
		assert.True(t, logger.WritesFile())

		logger.Error("disk")
		require.NoError(t, closer.Close())

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "[12:34:56] [ERROR] [Mod]: disk\n", string(data))
		assert.Contains(t, console.String(), "\x1b[91m")
	})

	t.Run("invalid values", func(t *testing.T) {
		t.Parallel()

		tcs := map[string]struct {
			mutate func(*log.Config)
			target error
		}{
			"bad level": {
				mutate: func(c *log.Config) { c.Level = "loud" },
				target: log.ErrUnknownLogLevel,
			},
			"bad color": {
				mutate: func(c *log.Config) { c.Color = "rainbow" },
				target: log.ErrUnknownColorMode,
			},
			"unopenable file": {
				mutate: func(c *log.Config) { c.File = filepath.Join(t.TempDir(), "no", "such", "dir.log") },
				target: log.ErrInvalidArgument,
			},
		}

		for name, tc := range tcs {
			t.Run(name, func(t *testing.T) {
				t.Parallel()

				cfg := log.NewConfig()
				tc.mutate(cfg)

				logger, closer, err := cfg.NewLogger()
				require.ErrorIs(t, err, log.ErrInvalidArgument)
				require.ErrorIs(t, err, tc.target)
				assert.Nil(t, logger)
				assert.Nil(t, closer)
			})
		}
	})
}
