package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/resdev/eclman/internal/release"
	"github.com/resdev/eclman/internal/simulator"
	"github.com/resdev/eclman/internal/viewer"
	"github.com/spf13/viper"
)

// Config holds application configuration
type Config struct {
	// Global settings
	Format  string `mapstructure:"format"`
	Quiet   bool   `mapstructure:"quiet"`
	Verbose bool   `mapstructure:"verbose"`

	// ECLPath is the root holding one directory per installed release.
	ECLPath string `mapstructure:"eclpath"`

	Release    ReleaseConfig    `mapstructure:"release"`
	Viewers    []string         `mapstructure:"viewers"`
	Simulators SimulatorsConfig `mapstructure:"simulators"`
}

// ReleaseConfig controls version detection and manual lookup
type ReleaseConfig struct {
	ReportCommand  []string      `mapstructure:"report_command" json:"report_command"`
	DefaultVersion string        `mapstructure:"default_version" json:"default_version"`
	ManualSuffix   string        `mapstructure:"manual_suffix" json:"manual_suffix"`
	Timeout        time.Duration `mapstructure:"timeout" json:"timeout"`
}

// SimulatorsConfig controls reservoir simulator discovery
type SimulatorsConfig struct {
	Candidates    []string `mapstructure:"candidates" json:"candidates"`
	ExtraPaths    []string `mapstructure:"extra_paths" json:"extra_paths"`
	EclipseMarker string   `mapstructure:"eclipse_marker" json:"eclipse_marker"`
}

// Meta records where configuration values came from
type Meta struct {
	ConfigFile string
	FileKeys   []string
	EnvKeys    []string
}

// Default returns a Config with default values
func Default() *Config {
	return &Config{
		Format:  "text",
		Quiet:   false,
		Verbose: false,
		Release: ReleaseConfig{
			ReportCommand:  append([]string(nil), release.DefaultReportCommand...),
			DefaultVersion: release.DefaultVersion,
			ManualSuffix:   release.DefaultManualSuffix,
			Timeout:        release.DefaultTimeout,
		},
		Viewers: viewer.DefaultPaths(),
		Simulators: SimulatorsConfig{
			Candidates:    append([]string(nil), simulator.DefaultFlowCandidates...),
			ExtraPaths:    append([]string(nil), simulator.DefaultExtraPaths...),
			EclipseMarker: simulator.DefaultEclipseMarker,
		},
	}
}

// Load loads configuration from files and environment
// Config file search order (highest precedence first):
// 1. ./.eclman.yaml or ./.eclman.yml
// 2. ~/.eclman.yaml or ~/.eclman.yml
// 3. $XDG_CONFIG_HOME/eclman/config.yaml (or ~/.config/eclman/config.yaml)
// 4. /etc/eclman/config.yaml
func Load() (*Config, error) {
	cfg, _, err := LoadWithMeta()
	return cfg, err
}

// LoadWithMeta is Load plus provenance for every value read from a file or
// the environment.
func LoadWithMeta() (*Config, *Meta, error) {
	cfg := Default()
	meta := &Meta{}

	// Try to find and load config file in order of precedence
	configFile := findConfigFile()
	if configFile != "" {
		v, err := readFile(configFile)
		if err != nil {
			return nil, nil, err
		}

		cfg = &Config{}
		if err := v.Unmarshal(cfg); err != nil {
			return nil, nil, err
		}
		meta.ConfigFile = configFile
		for _, k := range v.AllKeys() {
			if v.InConfig(k) {
				meta.FileKeys = append(meta.FileKeys, k)
			}
		}
	}

	// Override with environment variables
	meta.EnvKeys = applyEnvOverrides(cfg)

	return cfg, meta, nil
}

// systemConfigDir holds the machine-wide config.yaml.
var systemConfigDir = "/etc/eclman"

// findConfigFile searches for config file in standard locations.
// The working directory and $HOME only match eclman-named files; a bare
// config.yaml is accepted only inside an eclman directory.
func findConfigFile() string {
	names := []string{".eclman.yaml", ".eclman.yml", "eclman.yaml", "eclman.yml"}

	var candidates []string

	// 1. Current directory
	if cwd, err := os.Getwd(); err == nil {
		for _, name := range names {
			candidates = append(candidates, filepath.Join(cwd, name))
		}
	}

	// 2. Home directory
	if home, err := os.UserHomeDir(); err == nil {
		for _, name := range names {
			candidates = append(candidates, filepath.Join(home, name))
		}
	}

	// 3. Config directory (e.g., ~/.config/eclman/config.yaml)
	if configDir, err := os.UserConfigDir(); err == nil {
		candidates = append(candidates, filepath.Join(configDir, "eclman", "config.yaml"))
	}

	// 4. System config
	candidates = append(candidates, filepath.Join(systemConfigDir, "config.yaml"))

	for _, path := range candidates {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}

	return ""
}

// applyEnvOverrides applies environment variable overrides to config and
// returns the config keys it touched.
func applyEnvOverrides(cfg *Config) []string {
	var keys []string
	if v := os.Getenv("ECLPATH"); v != "" {
		cfg.ECLPath = v
		keys = append(keys, "eclpath")
	}
	if v := os.Getenv("ECLMAN_FORMAT"); v != "" {
		cfg.Format = v
		keys = append(keys, "format")
	}
	if v := os.Getenv("ECLMAN_QUIET"); v == "true" || v == "1" {
		cfg.Quiet = true
		keys = append(keys, "quiet")
	}
	if v := os.Getenv("ECLMAN_VERBOSE"); v == "true" || v == "1" {
		cfg.Verbose = true
		keys = append(keys, "verbose")
	}
	if v := os.Getenv("ECLMAN_DEFAULT_VERSION"); v != "" {
		cfg.Release.DefaultVersion = v
		keys = append(keys, "release.default_version")
	}
	if v := os.Getenv("ECLMAN_VIEWERS"); v != "" {
		cfg.Viewers = filepath.SplitList(v)
		keys = append(keys, "viewers")
	}
	return keys
}

// LoadFromFile loads configuration from a specific file
func LoadFromFile(path string) (*Config, error) {
	v, err := readFile(path)
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// readFile reads path into a viper instance seeded with Default values.
// Lists from the file replace the defaults rather than merging into them.
func readFile(path string) (*viper.Viper, error) {
	v := viper.New()
	d := Default()
	v.SetDefault("format", d.Format)
	v.SetDefault("quiet", d.Quiet)
	v.SetDefault("verbose", d.Verbose)
	v.SetDefault("eclpath", d.ECLPath)
	v.SetDefault("release.report_command", d.Release.ReportCommand)
	v.SetDefault("release.default_version", d.Release.DefaultVersion)
	v.SetDefault("release.manual_suffix", d.Release.ManualSuffix)
	v.SetDefault("release.timeout", d.Release.Timeout)
	v.SetDefault("viewers", d.Viewers)
	v.SetDefault("simulators.candidates", d.Simulators.Candidates)
	v.SetDefault("simulators.extra_paths", d.Simulators.ExtraPaths)
	v.SetDefault("simulators.eclipse_marker", d.Simulators.EclipseMarker)

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}
	return v, nil
}

// ConfigFile returns the path to the config file that would be loaded
func ConfigFile() string {
	return findConfigFile()
}

// ComputeSources maps each top-level setting to "flag", "env", "file" or
// "default". flagsSet holds the names of flags given on the command line.
func ComputeSources(meta *Meta, flagsSet map[string]bool) map[string]string {
	settings := []string{"format", "quiet", "verbose", "eclpath", "release", "viewers", "simulators"}
	sources := make(map[string]string, len(settings))
	for _, s := range settings {
		sources[s] = "default"
	}

	if meta != nil {
		for _, k := range meta.FileKeys {
			sources[topLevel(k)] = "file"
		}
		for _, k := range meta.EnvKeys {
			sources[topLevel(k)] = "env"
		}
	}
	for name := range flagsSet {
		if _, ok := sources[name]; ok {
			sources[name] = "flag"
		}
	}
	return sources
}

func topLevel(key string) string {
	if i := strings.IndexByte(key, '.'); i >= 0 {
		return key[:i]
	}
	return key
}
