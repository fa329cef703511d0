// Package main is the entry point. Its only job is the composition root:
// read configuration, build the logger, wire the registries, index, and
// service together, seed the demo catalog, and hand control to the shell.
// All behavior lives in the internal packages.
package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/viper"

	"github.com/kavya/mytube/internal/config"
	"github.com/kavya/mytube/internal/ident"
	"github.com/kavya/mytube/internal/menu"
	"github.com/kavya/mytube/internal/registry/memory"
	"github.com/kavya/mytube/internal/search"
	"github.com/kavya/mytube/internal/service"
	"github.com/kavya/mytube/internal/timing"
)

func main() {
	// Logs go to stderr so the menu conversation on stdout stays clean
	// enough to pipe or read back.
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	config.Init(logger)
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: config.LogLevel(),
	}))

	index, err := search.Open()
	if err != nil {
		logger.Error("failed to open search index", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer index.Close()

	perf := &timing.Toggle{}
	perf.Set(viper.GetBool("perf.enabled"))

	tube := service.New(
		memory.NewUsers(),
		memory.NewChannels(),
		memory.NewVideos(),
		index,
		&ident.Generator{},
		perf,
		logger,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if viper.GetBool("seed.enabled") {
		seed(ctx, tube, logger)
	}

	shell := menu.New(tube, os.Stdin, os.Stdout, viper.GetString("prompt"), logger)
	if err := shell.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("shell error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// seed creates the demo channels and videos so a fresh run has something to
// watch. Failures here are bugs in the seed data, not runtime conditions,
// so they are logged and skipped rather than fatal.
func seed(ctx context.Context, tube *service.Tube, logger *slog.Logger) {
	channels := []struct {
		name, owner, description string
	}{
		{"KavyaTech", "system", "C++ tutorials"},
		{"IndieMusic", "system", "Music channel"},
	}
	videos := []struct {
		channel, title string
		duration       int
	}{
		{"KavyaTech", "C++ OOP Deep Dive", 900},
		{"KavyaTech", "Data Structures Overview", 720},
		{"IndieMusic", "Chill Loops", 300},
	}

	for _, c := range channels {
		if res := tube.CreateChannel(c.name, c.owner, c.description); !res.OK() {
			logger.Warn("seed channel skipped",
				slog.String("channel", c.name),
				slog.String("reason", res.Message),
			)
		}
	}
	for _, v := range videos {
		if res := tube.Upload(ctx, v.channel, v.title, v.duration); !res.OK() {
			logger.Warn("seed video skipped",
				slog.String("title", v.title),
				slog.String("reason", res.Message),
			)
		}
	}
}
