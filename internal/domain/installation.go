package domain

// VersionSource records how a release version was chosen
type VersionSource string

const (
	VersionSourceFlag     VersionSource = "flag"
	VersionSourceDetected VersionSource = "detected"
	VersionSourceDefault  VersionSource = "default"
)

// Installation is one installed release of the simulator suite
type Installation struct {
	Version      string `json:"version"`
	Root         string `json:"root"`
	ManualPath   string `json:"manual_path"`
	ManualExists bool   `json:"manual_exists"`
	Latest       bool   `json:"latest,omitempty"`
}

// Resolution is the outcome of picking a release version
type Resolution struct {
	Version string        `json:"version"`
	Source  VersionSource `json:"source"`
}
