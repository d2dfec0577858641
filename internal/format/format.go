// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package format holds the static registry of supported channel-location
// file formats and resolves which format applies to a given import.
package format

import (
	"fmt"

	"github.com/pdiddy/chanlocs/pkg/types"
)

// Tag identifies one supported file format.
type Tag string

// The closed set of recognized format tags.
const (
	TagLoc      Tag = "loc"      // EEGLAB polar .loc/.locs/.eloc
	TagSph      Tag = "sph"      // Matlab spherical .sph
	TagSfp      Tag = "sfp"      // BESA/EGI Cartesian .sfp
	TagXyz      Tag = "xyz"      // Cartesian .xyz
	TagBesa     Tag = "besa"     // BESA spherical .elp/.eps
	TagChanedit Tag = "chanedit" // EEGLAB channel-editor .ced
	TagTxt      Tag = "txt"      // plain Cartesian table with header
	TagTsv      Tag = "tsv"      // BIDS electrodes.tsv
	TagCustom   Tag = "custom"   // caller-supplied column layout
	TagPolhemus Tag = "polhemus" // Polhemus digitizer .elp (delegated)
	TagAsc      Tag = "asc"      // Neuroscan .asc (delegated)
	TagDat      Tag = "dat"      // Neuroscan .dat (delegated)
	TagElc      Tag = "elc"      // EETrak .elc (delegated)
	TagMat      Tag = "mat"      // exported channel-set struct file (delegated)
	TagLay      Tag = "lay"      // FieldTrip 2-D layout (delegated)
)

// Descriptor is the static metadata for one format. Descriptors are built
// once at package init, shared by reference, and never mutated.
type Descriptor struct {
	Tag         Tag
	Name        string
	Description string

	// Layout is the ordered column-role list for column-literal formats.
	// Nil when the format is handled by a delegated reader instead.
	Layout []string

	// SkipLines is the number of header lines the loader skips. Descriptors
	// default to 1; formats documented as headerless set 0.
	SkipLines int

	// Delegated marks formats read by a dedicated reader rather than the
	// column parser.
	Delegated bool
}

// registry is the process-lifetime format table. Order matters only for
// introspection output.
var registry = []Descriptor{
	{
		Tag:         TagLoc,
		Name:        "EEGLAB polar",
		Description: "channel number, polar angle (degrees), arc-length radius, label",
		Layout:      []string{"channum", "theta", "radius", "labels"},
		SkipLines:   0,
	},
	{
		Tag:         TagSph,
		Name:        "Matlab spherical",
		Description: "channel number, spherical azimuth and elevation (degrees), label",
		Layout:      []string{"channum", "sph_theta", "sph_phi", "labels"},
		SkipLines:   0,
	},
	{
		Tag:         TagSfp,
		Name:        "BESA/EGI Cartesian",
		Description: "label then Cartesian coordinates; BESA axis order needs a -Y flip and X/Y swap",
		Layout:      []string{"labels", "-Y", "X", "Z"},
		SkipLines:   0,
	},
	{
		Tag:         TagXyz,
		Name:        "Cartesian",
		Description: "channel number then Cartesian coordinates in BESA axis order, label",
		Layout:      []string{"channum", "-Y", "X", "Z", "labels"},
		SkipLines:   0,
	},
	{
		Tag:         TagBesa,
		Name:        "BESA spherical",
		Description: "type, label, BESA spherical angles and radius; one header row in most dialects",
		Layout:      []string{"type", "labels", "sph_theta_besa", "sph_phi_besa", "sph_radius"},
		SkipLines:   1,
	},
	{
		Tag:         TagChanedit,
		Name:        "EEGLAB channel editor",
		Description: "full field set as written by the EEGLAB channel editor (.ced)",
		Layout: []string{"channum", "labels", "theta", "radius", "X", "Y", "Z",
			"sph_theta", "sph_phi", "sph_radius", "type"},
		SkipLines: 1,
	},
	{
		Tag:         TagTxt,
		Name:        "Cartesian text table",
		Description: "label, Cartesian coordinates, optional type; one header row",
		Layout:      []string{"labels", "X", "Y", "Z", "type"},
		SkipLines:   1,
	},
	{
		Tag:         TagTsv,
		Name:        "BIDS electrodes.tsv",
		Description: "tab-separated label, Cartesian coordinates, optional type; one header row",
		Layout:      []string{"labels", "X", "Y", "Z", "type"},
		SkipLines:   1,
	},
	{
		Tag:         TagCustom,
		Name:        "custom layout",
		Description: "caller-supplied ordered list of column roles",
		SkipLines:   1,
	},
	{
		Tag:         TagPolhemus,
		Name:        "Polhemus digitizer",
		Description: "Polhemus FastTrak .elp recording, X or Y sensor orientation",
		SkipLines:   0,
		Delegated:   true,
	},
	{
		Tag:         TagAsc,
		Name:        "Neuroscan 3-D ascii",
		Description: "Neuroscan .asc scanned electrode positions",
		SkipLines:   0,
		Delegated:   true,
	},
	{
		Tag:         TagDat,
		Name:        "Neuroscan tabulated",
		Description: "Neuroscan .dat tabulated electrode positions",
		SkipLines:   0,
		Delegated:   true,
	},
	{
		Tag:         TagElc,
		Name:        "EETrak scanned",
		Description: "EETrak .elc sectioned positions and labels",
		SkipLines:   0,
		Delegated:   true,
	},
	{
		Tag:         TagMat,
		Name:        "channel-set struct file",
		Description: "channel array exported by analysis tools (YAML or JSON body)",
		SkipLines:   0,
		Delegated:   true,
	},
	{
		Tag:         TagLay,
		Name:        "FieldTrip layout",
		Description: "2-D plotting layout: number, x, y, width, height, label",
		SkipLines:   0,
		Delegated:   true,
	},
}

var byTag = func() map[Tag]*Descriptor {
	m := make(map[Tag]*Descriptor, len(registry))
	for i := range registry {
		m[registry[i].Tag] = &registry[i]
	}
	return m
}()

// Lookup returns the descriptor for tag. Unknown tags are a configuration
// error.
func Lookup(tag Tag) (*Descriptor, error) {
	d, ok := byTag[tag]
	if !ok {
		return nil, fmt.Errorf("unknown format tag %q: %w", tag, types.ErrConfig)
	}
	return d, nil
}

// All returns the full registry in declaration order, for introspection by
// configuration tooling. It performs no I/O.
func All() []Descriptor {
	out := make([]Descriptor, len(registry))
	copy(out, registry)
	return out
}
