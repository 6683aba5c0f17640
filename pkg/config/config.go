package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

const (
	// ConstantConfigFilename is the default env file location.
	ConstantConfigFilename = "/etc/default/alderlake-e-cores"

	// Probe modes selectable via ECD_PROBE_MODE or --mode.
	ProbeModeConcurrent = "concurrent"
	ProbeModeSequential = "sequential"
	ProbeModeNative     = "native"

	DefaultTasksetPath = "taskset"
	DefaultProbeMode   = ProbeModeConcurrent
	DefaultLogLevel    = "warn"
)

// Config carries everything the detection pipeline needs to know about
// its environment. SelfPath is the executable the taskset probers
// re-invoke in single-core report mode; it is an explicit value here so
// callers and tests can substitute it instead of the prober inspecting
// its own argv.
type Config struct {
	TasksetPath string
	SelfPath    string
	ProbeMode   string
	LogLevel    string
}

func (c *Config) Validate() error {
	switch c.ProbeMode {
	case ProbeModeConcurrent, ProbeModeSequential, ProbeModeNative:
	default:
		return fmt.Errorf("unknown probe mode %q (want %s, %s or %s)",
			c.ProbeMode, ProbeModeConcurrent, ProbeModeSequential, ProbeModeNative)
	}
	if c.SelfPath == "" && c.ProbeMode != ProbeModeNative {
		return fmt.Errorf("self path is empty, cannot re-invoke the reporter child")
	}
	return nil
}

// Load reads the optional env file and then the environment. A missing
// file is not an error; environment variables always win.
func Load(filename string) *Config {
	if filename == "" {
		filename = ConstantConfigFilename
	}
	_ = godotenv.Load(filename)

	return &Config{
		TasksetPath: getEnv("ECD_TASKSET", DefaultTasksetPath),
		SelfPath:    getEnv("ECD_SELF_PATH", defaultSelfPath()),
		ProbeMode:   getEnv("ECD_PROBE_MODE", DefaultProbeMode),
		LogLevel:    getEnv("ECD_LOG_LEVEL", DefaultLogLevel),
	}
}

// defaultSelfPath resolves the running executable, falling back to
// argv[0] when the OS cannot tell us.
func defaultSelfPath() string {
	if exe, err := os.Executable(); err == nil {
		return exe
	}
	if len(os.Args) > 0 {
		return os.Args[0]
	}
	return ""
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
