package config

import "flag"

var (
	flagConfig      = flag.String("config", "", "Path to config file")
	flagDebug       = flag.Bool("debug", false, "Enable debug logging")
	flagOutDir      = flag.String("out", "", "Output directory for the generated OBJ")
	flagOutput      = flag.String("o", "", "Output file (overrides the derived name)")
	flagPreset      = flag.String("preset", "", "Building preset file (.yaml, .yml or .toml)")
	flagLogFile     = flag.String("log-file", "", "Write logs to this file as well")
	flagOutwardCaps = flag.Bool("outward-caps", false, "Wind cap triangles so their normals face outward")
	flagSaveConfig  = flag.String("save-config", "", "Write the effective config to this path and exit")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// PresetPath returns the preset file given via --preset, if any.
func PresetPath() string {
	return *flagPreset
}

// OutputFile returns the explicit output file given via -o, if any.
func OutputFile() string {
	return *flagOutput
}

// SaveConfigPath returns the path given via --save-config, if any.
func SaveConfigPath() string {
	return *flagSaveConfig
}

// Args returns the positional arguments left after flag parsing.
func Args() []string {
	return flag.Args()
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagOutDir != "" {
		cfg.Output.Dir = *flagOutDir
	}
	if *flagLogFile != "" {
		cfg.Logging.LogFile = *flagLogFile
	}
	if *flagOutwardCaps {
		cfg.Output.OutwardCaps = true
	}
}
