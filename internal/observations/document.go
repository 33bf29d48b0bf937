// Package observations reads and checks summary observation fixtures: history
// vector pairings (smryh) and dated point observations (smry).
package observations

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// DateLayout is the ISO date form used for observation dates and time indices.
const DateLayout = "2006-01-02"

// TimeIndex selects which simulated timesteps a history vector is compared at.
// It is one of the named resolutions or an ISO date.
type TimeIndex string

const (
	TimeIndexMonthly TimeIndex = "monthly"
	TimeIndexYearly  TimeIndex = "yearly"
	TimeIndexDaily   TimeIndex = "daily"
	TimeIndexRaw     TimeIndex = "raw"
	TimeIndexLast    TimeIndex = "last"
)

// NamedTimeIndices lists the non-date time indices.
var NamedTimeIndices = []TimeIndex{
	TimeIndexMonthly, TimeIndexYearly, TimeIndexDaily, TimeIndexRaw, TimeIndexLast,
}

// IsNamed reports whether t is one of NamedTimeIndices.
func (t TimeIndex) IsNamed() bool {
	for _, n := range NamedTimeIndices {
		if t == n {
			return true
		}
	}
	return false
}

// Date returns the date a date-valued index refers to.
func (t TimeIndex) Date() (time.Time, bool) {
	d, err := time.Parse(DateLayout, string(t))
	return d, err == nil
}

// Validate checks that t is named or an ISO date.
func (t TimeIndex) Validate() error {
	if t.IsNamed() {
		return nil
	}
	if _, ok := t.Date(); ok {
		return nil
	}
	return fmt.Errorf("invalid time_index %q: want monthly, yearly, daily, raw, last or YYYY-MM-DD", string(t))
}

// Document is a full observation fixture
type Document struct {
	Smryh []HistoryVector      `yaml:"smryh,omitempty" json:"smryh,omitempty"`
	Smry  []SummaryObservation `yaml:"smry,omitempty" json:"smry,omitempty"`
}

// HistoryVector pairs a simulated summary vector with its history counterpart
type HistoryVector struct {
	Key       string    `yaml:"key" json:"key"`
	Histvec   string    `yaml:"histvec" json:"histvec"`
	TimeIndex TimeIndex `yaml:"time_index,omitempty" json:"time_index,omitempty"`
}

// SummaryObservation holds point observations for one summary vector
type SummaryObservation struct {
	Key          string  `yaml:"key" json:"key"`
	Comment      string  `yaml:"comment,omitempty" json:"comment,omitempty"`
	Observations []Point `yaml:"observations" json:"observations"`
}

// Point is a single dated observation with its error
type Point struct {
	Value   *float64 `yaml:"value" json:"value"`
	Error   *float64 `yaml:"error" json:"error"`
	Date    string   `yaml:"date" json:"date"`
	Comment string   `yaml:"comment,omitempty" json:"comment,omitempty"`
}

// Parse decodes a fixture. Unknown keys are rejected.
func Parse(data []byte) (*Document, error) {
	var doc Document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse observations: %w", err)
	}
	return &doc, nil
}

// Load reads and parses a fixture file.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Marshal encodes doc with two-space indentation.
func Marshal(doc *Document) ([]byte, error) {
	return encode(doc)
}

// Counts returns the number of history vectors, summary keys and points.
func (d *Document) Counts() (vectors, keys, points int) {
	for _, s := range d.Smry {
		points += len(s.Observations)
	}
	return len(d.Smryh), len(d.Smry), points
}
