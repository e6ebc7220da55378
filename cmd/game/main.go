package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/tomz197/rockfall/internal/config"
	"github.com/tomz197/rockfall/internal/loop"
	lconfig "github.com/tomz197/rockfall/internal/loop/config"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	logger, closeLog, err := newLogger()
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer closeLog()

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("enable raw mode: %w", err)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := loop.Options{
		Logger:     logger,
		Seed:       config.GetEnvUint64("ROCKFALL_SEED", 0),
		FPS:        config.GetEnvInt("ROCKFALL_FPS", lconfig.DefaultFPS),
		Background: config.GetEnv("ROCKFALL_BACKGROUND", ""),
	}
	return loop.Run(ctx, bufio.NewReader(os.Stdin), os.Stdout, opts)
}

// newLogger logs to ROCKFALL_LOG_FILE when set. The terminal belongs to
// the game, so logs are discarded otherwise.
func newLogger() (*log.Logger, func(), error) {
	level, err := config.GetEnvLogLevel("ROCKFALL_LOG_LEVEL", log.InfoLevel)
	if err != nil {
		return nil, nil, err
	}

	path := config.GetEnv("ROCKFALL_LOG_FILE", "")
	if path == "" {
		return log.New(io.Discard), func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	logger := log.NewWithOptions(f, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          "rockfall",
	})
	return logger, func() { _ = f.Close() }, nil
}
