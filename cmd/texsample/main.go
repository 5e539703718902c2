// Command texsample resamples a texture into a BMP or PNG file.
//
// Usage:
//
//	texsample -in sky.png -out sky.bmp -width 1024 -height 512 -exposure 0.8
//
// Settings can also come from a TOML file given with -config; explicit flags
// take precedence over the file.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/gogpu/texel"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func run(args []string, stderr io.Writer) int {
	cfg, err := parseArgs(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "texsample: %v\n", err)
		return 2
	}

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	texel.SetLogger(logger)
	defer texel.SetLogger(nil)

	tex, err := texel.Load(cfg.In)
	if err != nil {
		fmt.Fprintf(stderr, "texsample: %s\n", texel.ErrorDescription(err))
		return 1
	}

	width, height := cfg.Width, cfg.Height
	if width == 0 {
		width = tex.Width()
	}
	if height == 0 {
		height = tex.Height()
	}

	fb := texel.NewFrame(width, height)
	fb.Resample(tex, cfg.Workers, cfg.Exposure)

	if err := fb.Save(cfg.Out); err != nil {
		fmt.Fprintf(stderr, "texsample: %v\n", err)
		return 1
	}

	logger.Info("resampled texture",
		"in", cfg.In,
		"out", cfg.Out,
		"size", fmt.Sprintf("%dx%d", width, height))
	return 0
}
