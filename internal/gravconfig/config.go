// Package gravconfig loads and checks configuration for gravity change and
// subsidence map modelling.
package gravconfig

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/multierr"
)

const (
	// GravityPrefix starts every delta gravity surface name.
	GravityPrefix = "all--delta_gravity_"
	// SubsidencePrefix starts every subsidence surface name.
	SubsidencePrefix = "all--subsidence"

	dateLayout = "2006-01-02"
)

// AllowedPhases are the phases a gravity map can be computed for.
var AllowedPhases = []string{"oil", "gas", "water", "total"}

// Config is a map modelling configuration
type Config struct {
	Input        Input        `mapstructure:"input" json:"input"`
	Calculations Calculations `mapstructure:"calculations" json:"calculations"`
}

// Input names the surveys to difference and the map template
type Input struct {
	Diffdates [][]string `mapstructure:"diffdates" json:"diffdates"`
	SeabedMap string     `mapstructure:"seabed_map" json:"seabed_map"`
}

// Calculations holds modelling parameters
type Calculations struct {
	PoissonRatio float64  `mapstructure:"poisson_ratio" json:"poisson_ratio"`
	Coarsening   *int     `mapstructure:"coarsening" json:"coarsening,omitempty"`
	Phases       []string `mapstructure:"phases" json:"phases"`
}

var requiredKeys = []string{
	"input.diffdates",
	"input.seabed_map",
	"calculations.poisson_ratio",
	"calculations.phases",
}

// Load reads a YAML config. Missing required keys are reported together.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	var missing error
	for _, key := range requiredKeys {
		if !v.IsSet(key) {
			missing = multierr.Append(missing, fmt.Errorf("missing required key %s", key))
		}
	}
	if missing != nil {
		return nil, missing
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return &cfg, nil
}

// Validate checks value ranges and that the seabed map exists. Relative map
// paths are taken relative to baseDir.
func (c *Config) Validate(baseDir string) error {
	var err error

	if len(c.Input.Diffdates) == 0 {
		err = multierr.Append(err, fmt.Errorf("input.diffdates: at least one date pair is required"))
	}
	for i, pair := range c.Input.Diffdates {
		if len(pair) != 2 {
			err = multierr.Append(err, fmt.Errorf("input.diffdates[%d]: want [monitor, base], got %d dates", i, len(pair)))
			continue
		}
		for _, d := range pair {
			if _, perr := time.Parse(dateLayout, d); perr != nil {
				err = multierr.Append(err, fmt.Errorf("input.diffdates[%d]: invalid date %q", i, d))
			}
		}
	}

	seabed := c.Input.SeabedMap
	if seabed != "" && !filepath.IsAbs(seabed) {
		seabed = filepath.Join(baseDir, seabed)
	}
	if info, serr := os.Stat(seabed); serr != nil || !info.Mode().IsRegular() {
		err = multierr.Append(err, fmt.Errorf("input.seabed_map: no such file %q", c.Input.SeabedMap))
	}

	if r := c.Calculations.PoissonRatio; r < 0 || r > 0.5 {
		err = multierr.Append(err, fmt.Errorf("calculations.poisson_ratio: %g is outside [0, 0.5]", r))
	}
	if co := c.Calculations.Coarsening; co != nil && *co < 1 {
		err = multierr.Append(err, fmt.Errorf("calculations.coarsening: must be at least 1, got %d", *co))
	}
	if len(c.Calculations.Phases) == 0 {
		err = multierr.Append(err, fmt.Errorf("calculations.phases: at least one phase is required"))
	}
	for _, p := range c.Calculations.Phases {
		if !slices.Contains(AllowedPhases, p) {
			err = multierr.Append(err, fmt.Errorf("calculations.phases: allowed phases are %v, got %q", AllowedPhases, p))
		}
	}
	return err
}

// SurfaceNames lists the surface files a modelling run writes, gravity maps
// first (per date pair, per phase) and then one subsidence map per date pair.
func (c *Config) SurfaceNames() []string {
	var names []string
	pairs := c.compactPairs()
	for _, pair := range pairs {
		for _, phase := range c.Calculations.Phases {
			names = append(names, GravityPrefix+phase+"--"+pair[0]+"_"+pair[1]+".gri")
		}
	}
	for _, pair := range pairs {
		names = append(names, SubsidencePrefix+"--"+pair[0]+"_"+pair[1]+".gri")
	}
	return names
}

// SurveyDates returns the distinct survey dates, YYYYMMDD, in first-use order.
func (c *Config) SurveyDates() []string {
	var dates []string
	for _, pair := range c.compactPairs() {
		for _, d := range pair {
			if !slices.Contains(dates, d) {
				dates = append(dates, d)
			}
		}
	}
	return dates
}

// compactPairs converts well-formed date pairs to YYYYMMDD, skipping bad ones.
func (c *Config) compactPairs() [][2]string {
	var out [][2]string
	for _, pair := range c.Input.Diffdates {
		if len(pair) != 2 {
			continue
		}
		a, errA := time.Parse(dateLayout, pair[0])
		b, errB := time.Parse(dateLayout, pair[1])
		if errA != nil || errB != nil {
			continue
		}
		out = append(out, [2]string{a.Format("20060102"), b.Format("20060102")})
	}
	return out
}
