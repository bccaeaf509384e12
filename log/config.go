package log

import (
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Flags holds CLI flag names for log configuration, allowing callers to
// customize flag names while keeping sensible defaults via [NewConfig].
type Flags struct {
	ID    string
	Level string
	File  string
	Color string
}

// NewConfig creates a new [Config] embedding these flag names.
func (f Flags) NewConfig() *Config {
	return &Config{
		Flags: f,
		ID:    "main",
		Level: "info",
		Color: string(ColorAuto),
	}
}

// Config holds the construction parameters of a [Logger], from CLI flags
// and/or a YAML file.
//
// Create instances with [NewConfig], register CLI flags with
// [Config.RegisterFlags], optionally overlay a file with [Config.LoadFile],
// then build the logger with [Config.NewLogger].
type Config struct {
	ID    string `json:"id"    yaml:"id"`
	Level string `json:"level" yaml:"level"`
	File  string `json:"file"  yaml:"file"`
	Color string `json:"color" yaml:"color"`
	Flags Flags  `json:"-"     yaml:"-"`
}

// NewConfig returns a new [Config] with default flag names and values.
func NewConfig() *Config {
	f := Flags{
		ID:    "log-id",
		Level: "log-level",
		File:  "log-file",
		Color: "log-color",
	}

	return f.NewConfig()
}

// RegisterFlags adds logging flags to the given [*pflag.FlagSet].
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.StringVar(&c.ID, c.Flags.ID, c.ID,
		"component identifier printed on every line")
	flags.StringVar(&c.Level, c.Flags.Level, c.Level,
		fmt.Sprintf("minimum log level, one of: %s", GetAllLevelStrings()))
	flags.StringVar(&c.File, c.Flags.File, c.File,
		"also append plain lines to this file")
	flags.StringVar(&c.Color, c.Flags.Color, c.Color,
		fmt.Sprintf("console colors, one of: %s", GetAllColorModeStrings()))
}

// RegisterCompletions registers shell completions for log flags on cmd.
func (c *Config) RegisterCompletions(cmd *cobra.Command) error {
	err := cmd.RegisterFlagCompletionFunc(c.Flags.Level,
		cobra.FixedCompletions(GetAllLevelStrings(), cobra.ShellCompDirectiveNoFileComp))
	if err != nil {
		return fmt.Errorf("registering %s completion: %w", c.Flags.Level, err)
	}

	err = cmd.RegisterFlagCompletionFunc(c.Flags.Color,
		cobra.FixedCompletions(GetAllColorModeStrings(), cobra.ShellCompDirectiveNoFileComp))
	if err != nil {
		return fmt.Errorf("registering %s completion: %w", c.Flags.Color, err)
	}

	err = cmd.RegisterFlagCompletionFunc(c.Flags.ID, cobra.NoFileCompletions)
	if err != nil {
		return fmt.Errorf("registering %s completion: %w", c.Flags.ID, err)
	}

	return nil
}

// fileConfig mirrors [Config] with optional fields so that only keys
// present in a file override existing values.
type fileConfig struct {
	ID    *string `yaml:"id"`
	Level *string `yaml:"level"`
	File  *string `yaml:"file"`
	Color *string `yaml:"color"`
}

// LoadFile overlays the YAML file at path onto c.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path) //nolint:gosec // Config path comes from a CLI flag.
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return c.LoadYAML(data)
}

// LoadYAML overlays YAML data onto c. Keys absent from data keep their
// current values; unknown keys are rejected.
func (c *Config) LoadYAML(data []byte) error {
	var fc fileConfig

	err := yaml.UnmarshalWithOptions(data, &fc, yaml.DisallowUnknownField())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	if fc.ID != nil {
		c.ID = *fc.ID
	}

	if fc.Level != nil {
		c.Level = *fc.Level
	}

	if fc.File != nil {
		c.File = *fc.File
	}

	if fc.Color != nil {
		c.Color = *fc.Color
	}

	return nil
}

// NewLogger validates c and builds a [Logger]. When c.File is set the file
// is opened for appending and file output is enabled; the returned closer
// closes it. Otherwise the closer does nothing.
func (c *Config) NewLogger(opts ...Option) (*Logger, io.Closer, error) {
	level, err := ParseLevel(c.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	mode, err := ParseColorMode(c.Color)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	opts = append([]Option{WithColor(mode)}, opts...)

	if c.File == "" {
		return New(c.ID, level, false, nil, opts...), nopCloser{}, nil
	}

	f, err := OpenFile(c.File)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	return New(c.ID, level, true, NewSharedFile(f), opts...), f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
