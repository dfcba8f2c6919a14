// Command quotecanvas edits quote cards in the terminal and exports them
// as PNG images.
//
// Usage:
//
//	quotecanvas                         # interactive editor
//	quotecanvas -o card.png             # render the configured card and exit
//	quotecanvas -o card.png -container square -image bg.jpg -effect blur
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"

	"github.com/gogpu/quotecanvas"
	"github.com/gogpu/quotecanvas/config"
	"github.com/gogpu/quotecanvas/editor"
	"github.com/gogpu/quotecanvas/internal/tui"
)

func main() {
	var (
		configPath = flag.String("config", "", "config file (default: user config dir)")
		output     = flag.String("o", "", "render the card to this PNG file and exit")
		container  = flag.String("container", "", "container style: portrait, square, landscape, reel")
		image      = flag.String("image", "", "background image file")
		effect     = flag.String("effect", "", "background effect: none, blur, grain, radial-shadow, darkOverlay")
		logPath    = flag.String("log", "", "write logs to this file")
		debug      = flag.Bool("debug", false, "log debug details")
	)
	flag.Parse()
	log.SetFlags(0)

	closeLog, err := setupLogging(*logPath, *debug, *output != "")
	if err != nil {
		log.Fatalf("quotecanvas: %v", err)
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, *configPath, *output, *container, *image, *effect); err != nil {
		stop()
		closeLog()
		log.Fatalf("quotecanvas: %v", err)
	}
}

func run(ctx context.Context, configPath, output, container, image, effect string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	e, err := cfg.NewEditor()
	if err != nil {
		return err
	}
	if err := applyFlags(e, container, image, effect); err != nil {
		return err
	}

	if output == "" {
		return tui.Run(ctx, e)
	}
	return renderTo(ctx, e, output)
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFromPath(path)
	}
	return config.Load()
}

func applyFlags(e *editor.Editor, container, image, effect string) error {
	if container != "" {
		style := quotecanvas.ContainerStyle(container)
		if !style.Known() {
			return fmt.Errorf("unknown container %q", container)
		}
		if err := e.Apply(quotecanvas.SetContainerStyle{Style: style}); err != nil {
			return err
		}
	}
	if effect != "" {
		fx, err := quotecanvas.ParseBackgroundEffect(effect)
		if err != nil {
			return err
		}
		if err := e.Apply(quotecanvas.SetBackgroundEffect{Effect: fx}); err != nil {
			return err
		}
	}
	if image != "" {
		if err := e.LoadBackgroundImage(image); err != nil {
			return fmt.Errorf("background image: %w", err)
		}
	}
	return nil
}

// renderTo captures the card and writes it to path, overwriting it.
func renderTo(ctx context.Context, e *editor.Editor, path string) error {
	p, err := e.Preview()
	if err != nil {
		return err
	}
	data, err := e.Pipeline().Capture(ctx, p)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return err
	}
	slog.Info("wrote image", "path", path, "bytes", len(data))
	return nil
}

// setupLogging installs the process logger. The editor owns the terminal,
// so interactive sessions only log to a file.
func setupLogging(path string, debug, headless bool) (func(), error) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	var w io.Writer
	closeFn := func() {}
	switch {
	case path != "":
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
		if err != nil {
			return nil, err
		}
		w = f
		closeFn = func() { _ = f.Close() }
	case headless:
		w = os.Stderr
	default:
		return closeFn, nil
	}

	l := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(l)
	quotecanvas.SetLogger(l)
	return closeFn, nil
}
