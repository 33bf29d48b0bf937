package domain

// ViewerStatus describes one PDF viewer candidate on this machine
type ViewerStatus struct {
	Name       string `json:"name"`
	Path       string `json:"path"`
	Executable bool   `json:"executable"`
	Selected   bool   `json:"selected,omitempty"`
	Priority   int    `json:"priority"`
}

// SimulatorBinary is a reservoir simulator executable found on this machine
type SimulatorBinary struct {
	Kind string `json:"kind"` // "flow" or "eclipse"
	Name string `json:"name"`
	Path string `json:"path"`
}
