package embedfiles

import _ "embed"

// ObservationsExample is a complete observation fixture.
//
//go:embed docs/observations.example.yml
var ObservationsExample []byte

// GravExample is a gravity/subsidence map configuration.
//
//go:embed docs/grav_subs_maps.example.yml
var GravExample []byte
