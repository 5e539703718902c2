package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// config holds the resampling settings. Zero Width or Height means "same as
// the input texture".
type config struct {
	In       string  `toml:"in"`
	Out      string  `toml:"out"`
	Width    int     `toml:"width"`
	Height   int     `toml:"height"`
	Exposure float64 `toml:"exposure"`
	Workers  int     `toml:"workers"`
	Verbose  bool    `toml:"verbose"`
}

func defaultConfig() config {
	return config{
		Out:      "out.bmp",
		Exposure: 1,
	}
}

// loadConfig reads a TOML file over the defaults.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return cfg, fmt.Errorf("config %s:%d:%d: %w", path, row, col, err)
		}
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c config) validate() error {
	switch {
	case c.In == "":
		return errors.New("no input texture (-in)")
	case c.Out == "":
		return errors.New("no output file (-out)")
	case c.Width < 0 || c.Height < 0:
		return fmt.Errorf("invalid output size %dx%d", c.Width, c.Height)
	}
	return nil
}

// parseArgs builds the configuration from command-line arguments. Values
// from -config are applied first; flags given explicitly override them.
func parseArgs(args []string) (config, error) {
	fs := flag.NewFlagSet("texsample", flag.ContinueOnError)

	var (
		cfgPath = fs.String("config", "", "TOML configuration file")
		flags   = defaultConfig()
	)
	fs.StringVar(&flags.In, "in", flags.In, "input texture (png, jpeg, gif, bmp, tiff, webp)")
	fs.StringVar(&flags.Out, "out", flags.Out, "output file (.bmp or .png)")
	fs.IntVar(&flags.Width, "width", flags.Width, "output width (0 = texture width)")
	fs.IntVar(&flags.Height, "height", flags.Height, "output height (0 = texture height)")
	fs.Float64Var(&flags.Exposure, "exposure", flags.Exposure, "linear scale applied to every sample")
	fs.IntVar(&flags.Workers, "workers", flags.Workers, "worker goroutines (0 = GOMAXPROCS)")
	fs.BoolVar(&flags.Verbose, "v", flags.Verbose, "debug logging")

	if err := fs.Parse(args); err != nil {
		return config{}, err
	}

	cfg := flags
	if *cfgPath != "" {
		var err error
		if cfg, err = loadConfig(*cfgPath); err != nil {
			return config{}, err
		}
		fs.Visit(func(f *flag.Flag) {
			switch f.Name {
			case "in":
				cfg.In = flags.In
			case "out":
				cfg.Out = flags.Out
			case "width":
				cfg.Width = flags.Width
			case "height":
				cfg.Height = flags.Height
			case "exposure":
				cfg.Exposure = flags.Exposure
			case "workers":
				cfg.Workers = flags.Workers
			case "v":
				cfg.Verbose = flags.Verbose
			}
		})
	}

	return cfg, cfg.validate()
}
