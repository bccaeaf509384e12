// Command scribe drives the scribe logger from the command line.
//
// It builds a logger from flags and an optional YAML file, then emits lines
// through it:
//
//	scribe emit --log-id Mod --severity warn "disk almost full"
//	scribe demo --log-level trace --log-file app.log
//	scribe stress --goroutines 64 --lines 1000 --log-file app.log --mutex-profile mutex.prof
//	scribe schema > scribe.schema.json
//
// Diagnostics about scribe itself go to stderr; log lines go to stdout and
// the configured file.
package main

import (
	"context"
	"io"
	"os"
	"os/signal"

	charmlog "charm.land/log/v2"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	diag := newDiag(os.Stderr)

	err := newRootCmd(os.Stdout, diag).ExecuteContext(ctx)
	if err != nil {
		diag.Error("command failed", "err", err)

		return 1
	}

	return 0
}

func newDiag(w io.Writer) *charmlog.Logger {
	return charmlog.NewWithOptions(w, charmlog.Options{
		Prefix: "scribe",
		Level:  charmlog.InfoLevel,
	})
}
