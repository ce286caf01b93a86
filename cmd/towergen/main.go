// towergen generates stacked-frustum building meshes as Wavefront OBJ files.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/towergen/internal/config"
	"github.com/Faultbox/towergen/internal/logger"
)

func main() {
	flag.Usage = printUsage

	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if path := config.SaveConfigPath(); path != "" {
		if err := cfg.SaveTo(path); err != nil {
			fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Config written to %s\n", path)
		return
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}

	logger.Sugar.Debugf("Config: %+v", cfg)

	path, err := run(cfg, config.PresetPath(), config.OutputFile(), config.Args())
	if err != nil {
		logger.Error("generation failed", zap.Error(err))
		logger.Sync()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Sync()

	fmt.Printf("OBJ file saved as %s\n", path)
}

func printUsage() {
	fmt.Fprintf(flag.CommandLine.Output(), `towergen - stacked frustum building generator

Usage:
  towergen [flags] [sides height radiusBottom radiusTop [levels (height radiusBottom radiusTop)...]]

Defaults: sides=8 height=6.0 radiusBottom=1.0 radiusTop=0.8 levels=0
Sides must be between 3 and 36; heights and radii must be positive.

Examples:
  towergen 8 6.0 1.0 0.8
  towergen 8 6.0 1.0 0.8 2 4.0 0.8 0.8 3.0 0.6 0.6
  towergen -preset tower.yaml -o tower.obj

Flags:
`)
	flag.PrintDefaults()
}
