package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/stdinfile/stdinfile/internal/cmd"
	"github.com/stdinfile/stdinfile/internal/errors"
	"github.com/stdinfile/stdinfile/internal/msg"
)

func main() {
	// A closed stdout must surface as EPIPE instead of killing the process.
	signal.Ignore(syscall.SIGPIPE)
	setupLogging(os.Stderr, false, !isTerm(os.Stderr.Fd()))

	root := cmd.Command(func(c *cobra.Command, _ []string) {
		verbose, _ := c.Flags().GetBool("verbose")
		noColor, _ := c.Flags().GetBool("no-color")
		setupLogging(os.Stderr, verbose, noColor || !isTerm(os.Stderr.Fd()))
	})

	err := root.ExecuteContext(newContext())
	if err != nil {
		log.Debug().Err(err).Str("kind", errors.KindOf(err).String()).Msg("Exiting with error.")
		msg.Error(os.Stderr, err)
	}
	os.Exit(errors.ExitCode(err))
}

// setupLogging sends logs to w, which must not be stdout: stdout carries the
// file path only.
func setupLogging(w io.Writer, verbose bool, noColor bool) {
	color.NoColor = noColor
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	zerolog.DurationFieldInteger = true
	timeFormat := "15:04:05"
	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		zerolog.TimeFieldFormat = time.RFC3339Nano
		timeFormat = "15:04:05.000"
	}

	zerolog.TimestampFunc = func() time.Time {
		return time.Now().In(time.Local)
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: w, TimeFormat: timeFormat, NoColor: noColor})
}

func isTerm(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// newContext returns a new context that is canceled when a SIGINT or SIGTERM
// is received. A second signal exits right away.
func newContext() context.Context {
	ctx, cancel := context.WithCancel(context.Background())
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)

	go func() {
		for range signals {
			if ctx.Err() != nil {
				os.Exit(errors.ExitInterrupted)
			}
			cancel()
		}
	}()

	return ctx
}
