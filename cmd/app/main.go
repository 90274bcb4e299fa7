package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/akyairhashvil/tock/internal/config"
	"github.com/akyairhashvil/tock/internal/notify"
	"github.com/akyairhashvil/tock/internal/timer"
	"github.com/akyairhashvil/tock/internal/tui"
	"github.com/akyairhashvil/tock/internal/util"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var errNotATerminal = errors.New("stdout is not a terminal")

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:           config.AppName,
		Short:         "Countdown timer with a desktop notification when it ends",
		Version:       tui.VersionLabel(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !term.IsTerminal(int(os.Stdout.Fd())) {
				return errNotATerminal
			}
			closeLog := setupLogging(util.DataDir(config.AppName))
			defer closeLog()
			return run(cmd.Context())
		},
	}
}

func run(ctx context.Context) error {
	notifier := notify.NewDBusNotifier()
	defer func() { util.LogError("close notifier", notifier.Close()) }()

	clock := util.SystemClock{}
	t, err := timer.NewRunning(config.DefaultDuration, config.DefaultLabel, notifier, clock.Now())
	if err != nil {
		return err
	}
	backend := tui.NewTerminalBackend()
	loop := tui.NewEventLoop(t, backend, backend, notifier, tui.WithClock(clock))
	log.Printf("started %q for %s", t.Label(), t.Duration())
	return loop.Run(ctx)
}

// setupLogging sends the standard logger to a file under dir, because the
// terminal belongs to the renderer. Logging is discarded if that fails.
func setupLogging(dir string) func() {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		util.DiscardLogs()
		return func() {}
	}
	f, err := tea.LogToFile(filepath.Join(dir, config.LogFileName), config.AppName)
	if err != nil {
		util.DiscardLogs()
		return func() {}
	}
	return func() {
		_ = f.Close()
		log.SetOutput(io.Discard)
	}
}
