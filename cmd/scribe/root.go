package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	charmlog "charm.land/log/v2"
	"github.com/spf13/cobra"

	"go.jacobcolvin.com/scribe/log"
	"go.jacobcolvin.com/scribe/profile"
	"go.jacobcolvin.com/scribe/version"
)

type app struct {
	stdout     io.Writer
	diag       *charmlog.Logger
	logCfg     *log.Config
	configPath string
	verbose    bool
}

func newRootCmd(stdout io.Writer, diag *charmlog.Logger) *cobra.Command {
	a := &app{
		stdout: stdout,
		diag:   diag,
		logCfg: log.NewConfig(),
	}

	rootCmd := &cobra.Command{
		Use:           "scribe",
		Short:         "Emit leveled log lines to the console and a file",
		Version:       version.String(),
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return a.loadConfig()
		},
	}

	rootCmd.SetOut(stdout)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "YAML file overriding the log flags")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "print scribe's own debug diagnostics")
	a.logCfg.RegisterFlags(flags)

	err := a.logCfg.RegisterCompletions(rootCmd)
	if err != nil {
		diag.Warn("register completions", "err", err)
	}

	rootCmd.AddCommand(
		a.newEmitCmd(),
		a.newDemoCmd(),
		a.newStressCmd(),
		a.newSchemaCmd(),
		a.newVersionCmd(),
	)

	return rootCmd
}

func (a *app) loadConfig() error {
	if a.verbose {
		a.diag.SetLevel(charmlog.DebugLevel)
	}

	if a.configPath == "" {
		return nil
	}

	err := a.logCfg.LoadFile(a.configPath)
	if err != nil {
		return err
	}

	a.diag.Debug("loaded config", "path", a.configPath, "id", a.logCfg.ID, "level", a.logCfg.Level)

	return nil
}

// newLogger builds the configured logger. The returned func closes the log
// file, reporting failures as diagnostics.
func (a *app) newLogger(opts ...log.Option) (*log.Logger, func(), error) {
	opts = append([]log.Option{log.WithConsole(a.stdout)}, opts...)

	logger, closer, err := a.logCfg.NewLogger(opts...)
	if err != nil {
		return nil, nil, err
	}

	a.diag.Debug("logger ready", "logger", logger, "file", a.logCfg.File)

	return logger, func() {
		cerr := closer.Close()
		if cerr != nil {
			a.diag.Error("close log file", "path", a.logCfg.File, "err", cerr)
		}
	}, nil
}

func (a *app) newEmitCmd() *cobra.Command {
	severity := "info"

	cmd := &cobra.Command{
		Use:   "emit [flags] <message...>",
		Short: "Emit one line at the given severity",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			level, err := log.ParseLevel(severity)
			if err != nil {
				return fmt.Errorf("%w: %w", log.ErrInvalidArgument, err)
			}

			logger, closeFile, err := a.newLogger()
			if err != nil {
				return err
			}
			defer closeFile()

			logger.Log(level, strings.Join(args, " "))

			return nil
		},
	}

	cmd.Flags().StringVarP(&severity, "severity", "s", severity,
		fmt.Sprintf("severity of the line, one of: %s", log.GetAllLevelStrings()))

	err := cmd.RegisterFlagCompletionFunc("severity",
		cobra.FixedCompletions(log.GetAllLevelStrings(), cobra.ShellCompDirectiveNoFileComp))
	if err != nil {
		a.diag.Warn("register completions", "err", err)
	}

	return cmd
}

func (a *app) newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Install the configured logger as default and log at every severity",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			logger, closeFile, err := a.newLogger()
			if err != nil {
				return err
			}
			defer closeFile()

			err = log.SetDefault(logger)

			var setErr *log.DefaultSetError
			if errors.As(err, &setErr) {
				a.diag.Warn("default logger already installed", "rejected", setErr.Rejected)
			} else if err != nil {
				return err
			}

			log.Info("Starting...")
			log.Debug("Executing...")
			log.Warn("Unable to get specific resource.")
			log.Error("Cannot initialize.")
			log.Fatal("Corruption detected, exiting.")
			log.Trace("Cleaning resource cache 3.")

			again := log.NewDefault("second", log.WithConsole(io.Discard))

			err = log.SetDefault(again)
			if err != nil {
				log.Infof("second default rejected: %v", err)
			}

			return nil
		},
	}
}

func (a *app) newStressCmd() *cobra.Command {
	var (
		goroutines int
		lines      int
		tapBuffer  int
		quiet      bool
	)

	profCfg := profile.NewConfig()

	cmd := &cobra.Command{
		Use:   "stress",
		Short: "Append lines from many goroutines through one logger",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if goroutines < 1 || lines < 1 {
				return fmt.Errorf("%w: --goroutines and --lines must be positive", log.ErrInvalidArgument)
			}

			pub := log.NewPublisher(log.WithBufferSize(tapBuffer))
			tap := pub.Subscribe(log.LevelTrace)

			opts := []log.Option{log.WithPublisher(pub)}
			if quiet {
				opts = append(opts, log.WithConsole(io.Discard))
			}

			logger, closeFile, err := a.newLogger(opts...)
			if err != nil {
				return err
			}
			defer closeFile()

			prof := profCfg.NewProfiler()

			err = prof.Start()
			if err != nil {
				return fmt.Errorf("start profiling: %w", err)
			}

			ctx := cmd.Context()
			start := time.Now()

			var (
				wg      sync.WaitGroup
				tapWG   sync.WaitGroup
				written atomic.Int64
				tapped  int
			)

			tapWG.Go(func() {
				for range tap.C() {
					tapped++
				}
			})

			for g := range goroutines {
				wg.Go(func() {
					for i := range lines {
						if ctx.Err() != nil {
							return
						}

						logger.Infof("worker %d line %d", g, i)
						written.Add(1)
					}
				})
			}

			wg.Wait()

			err = pub.Close()
			if err != nil {
				return fmt.Errorf("close tap: %w", err)
			}

			tapWG.Wait()

			a.diag.Info("stress finished",
				"goroutines", goroutines,
				"lines", written.Load(),
				"elapsed", time.Since(start).Round(time.Millisecond),
			)

			_, err = fmt.Fprintf(a.stdout, "tapped %d entries, dropped %d\n", tapped, tap.Dropped())
			if err != nil {
				return fmt.Errorf("write summary: %w", err)
			}

			err = prof.Stop()
			if err != nil {
				return fmt.Errorf("stop profiling: %w", err)
			}

			return ctx.Err()
		},
	}

	flags := cmd.Flags()
	flags.IntVarP(&goroutines, "goroutines", "g", 8, "number of concurrent writers")
	flags.IntVarP(&lines, "lines", "n", 100, "lines per writer")
	flags.IntVar(&tapBuffer, "tap-buffer", 64, "entries queued for the summary tap before the oldest is dropped")
	flags.BoolVarP(&quiet, "quiet", "q", false, "discard console output")
	profCfg.RegisterFlags(flags)

	err := profCfg.RegisterCompletions(cmd)
	if err != nil {
		a.diag.Warn("register completions", "err", err)
	}

	return cmd
}

func (a *app) newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema of the --config file",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			out, err := json.MarshalIndent(log.ConfigSchema(), "", "  ")
			if err != nil {
				return fmt.Errorf("marshal schema: %w", err)
			}

			out = append(out, '\n')

			_, err = a.stdout.Write(out)
			if err != nil {
				return fmt.Errorf("write schema: %w", err)
			}

			return nil
		},
	}
}

func (a *app) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(a.stdout, version.String())
			if err != nil {
				return fmt.Errorf("write version: %w", err)
			}

			return nil
		},
	}
}
