// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Result is the outcome of one import: the normalized channel collection
// plus the derived vectors downstream plotting and referencing code
// consume.
type Result struct {
	// Channels is the normalized record collection, already filtered to the
	// requested subset when one was given.
	Channels []Channel `json:"channels" yaml:"channels"`

	// Labels lists every channel's label, including channels that carry no
	// location data at all.
	Labels []string `json:"labels" yaml:"labels"`

	// Theta and Radius are aligned one-to-one with Channels. A channel
	// contributes its real values only when it has both a polar angle and a
	// Cartesian X; otherwise both entries are NaN.
	Theta  []float64 `json:"theta" yaml:"theta"`
	Radius []float64 `json:"radius" yaml:"radius"`

	// Indices lists, ascending and 1-based, the channels whose Theta/Radius
	// entries are real.
	Indices []int `json:"indices" yaml:"indices"`

	// Format is the resolved format tag the file was read with, after
	// detection and ambiguity resolution. Empty for channel and position
	// inputs that never touched a file.
	Format string `json:"format,omitempty" yaml:"format,omitempty"`

	// ImportMode echoes Options.ImportMode for downstream consumers.
	ImportMode string `json:"import_mode,omitempty" yaml:"import_mode,omitempty"`

	// Notices collects the non-fatal issues encountered during the import:
	// column-count mismatches, failed conversions, ambiguous extensions,
	// header self-healing.
	Notices []string `json:"notices,omitempty" yaml:"notices,omitempty"`
}
