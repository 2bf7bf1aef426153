// Command smoothpath replaces the corner of a three-point polyline with a
// clothoid transition and prints the resulting waypoints.
//
// Usage:
//
//	smoothpath [-config file] [-format latex|csv|json] [-spacing ds] [-v]
//
// The corner is read from a YAML or TOML file. Without -config, a built-in
// example corner is used. Flags take precedence over the file.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"honnef.co/go/clothoid"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, "smoothpath:", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("smoothpath", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		configPath = fs.String("config", "", "YAML or TOML file describing the corner")
		format     = fs.String("format", "", "output format: latex, csv or json")
		spacing    = fs.Float64("spacing", 0, "distance between waypoints")
		verbose    = fs.Bool("v", false, "log how the corner was solved")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %q", fs.Args())
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "format":
			cfg.Format = *format
		case "spacing":
			cfg.Spacing = *spacing
		}
	})
	if err := cfg.validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	clothoid.SetLogger(logger)
	defer clothoid.SetLogger(nil)

	j := newJoint(cfg)
	if !j.Fits() {
		logger.Warn("transition is longer than the legs, path doubles back",
			"offset", j.Offset())
	}
	pts := j.Waypoints(cfg.Spacing)
	logger.Debug("sampled joint", "waypoints", len(pts), "length", j.Length())

	if err := writers[cfg.Format](stdout, pts); err != nil {
		return fmt.Errorf("writing waypoints: %w", err)
	}
	return nil
}

func newJoint(cfg Config) *clothoid.Joint {
	start := clothoid.Pt(cfg.Start[0], cfg.Start[1])
	corner := clothoid.Pt(cfg.Corner[0], cfg.Corner[1])
	end := clothoid.Pt(cfg.End[0], cfg.End[1])
	return clothoid.NewJoint(&start, &corner, &end, clothoid.JointOpts{
		Sharpness:    cfg.Sharpness,
		MaxCurvature: cfg.MaxCurvature,
	})
}
