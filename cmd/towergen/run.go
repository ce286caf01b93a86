package main

import (
	"path/filepath"

	"go.uber.org/zap"

	"github.com/Faultbox/towergen/internal/cli"
	"github.com/Faultbox/towergen/internal/config"
	"github.com/Faultbox/towergen/internal/logger"
	"github.com/Faultbox/towergen/pkg/building"
	"github.com/Faultbox/towergen/pkg/formats"
)

// run resolves the building description, generates it and writes the
// OBJ file. It returns the path written.
func run(cfg *config.Config, presetPath, outputFile string, args []string) (string, error) {
	req, err := resolveRequest(cfg, presetPath, args)
	if err != nil {
		return "", err
	}

	path := outputFile
	if path == "" {
		path = filepath.Join(cfg.Output.Dir, req.FileName())
	}

	if _, err := generate(req, building.Options{Winding: cfg.Output.Winding()}, path); err != nil {
		return "", err
	}
	return path, nil
}

// resolveRequest reads the building from a preset file when one is
// given, otherwise from positional arguments.
func resolveRequest(cfg *config.Config, presetPath string, args []string) (*cli.Request, error) {
	if presetPath != "" {
		if len(args) > 0 {
			logger.Warn("positional arguments ignored in favour of preset",
				zap.String("preset", presetPath), zap.Strings("args", args))
		}
		p, err := building.LoadPreset(presetPath)
		if err != nil {
			return nil, err
		}
		return &cli.Request{Sides: p.Sides, Levels: p.Levels}, nil
	}

	return cli.ParseArgs(args, cli.Defaults{Sides: cfg.Mesh.Sides, Base: cfg.Mesh.Level()})
}

// generate builds the mesh and writes it to path.
func generate(req *cli.Request, opts building.Options, path string) (*building.Mesh, error) {
	logger.Debug("building mesh",
		zap.Int("sides", req.Sides),
		zap.Int("levels", len(req.Levels)),
		zap.Stringer("winding", opts.Winding))

	m, err := building.Build(req.Sides, req.Levels, opts)
	if err != nil {
		return nil, err
	}

	logger.Debug("mesh built",
		zap.Int("vertices", len(m.Vertices)),
		zap.Int("faces", len(m.Faces)),
		zap.Float64("height", m.TotalHeight()))

	if err := formats.WriteOBJFile(path, m); err != nil {
		return nil, err
	}

	logger.Info("OBJ written",
		zap.String("path", path),
		zap.Int("vertices", len(m.Vertices)),
		zap.Int("normals", len(m.Normals)),
		zap.Int("faces", len(m.Faces)))
	return m, nil
}
