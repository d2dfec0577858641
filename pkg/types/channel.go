// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the chanlocs import
// pipeline: the per-channel location record, import options, the import
// result, and the error sentinels used across stages.
package types

import "math"

// Channel is one imported electrode or sensor location. Every field is
// optional: a nil pointer (or empty string) means the source file did not
// provide the value and no conversion has produced it yet.
//
// Coordinate conventions:
//   - Theta/Radius: polar angle in degrees and arc-length radius, with the
//     head disk normalized to radius 0.5.
//   - X/Y/Z: Cartesian, X toward the nose, Y toward the left ear, Z toward
//     the vertex.
//   - SphTheta/SphPhi/SphRadius: azimuth/elevation/radius, Matlab spherical
//     convention.
//   - BesaTheta/BesaPhi: BESA spherical convention. These are scratch fields
//     used only to drive normalization and are cleared afterwards.
type Channel struct {
	Label string `json:"label,omitempty" yaml:"label,omitempty"`

	// Number is the raw channel-number token from the source file. It is a
	// scratch field: resequencing consumes it and clears it.
	Number string `json:"channum,omitempty" yaml:"channum,omitempty"`

	Theta  *float64 `json:"theta,omitempty" yaml:"theta,omitempty"`
	Radius *float64 `json:"radius,omitempty" yaml:"radius,omitempty"`

	X *float64 `json:"x,omitempty" yaml:"x,omitempty"`
	Y *float64 `json:"y,omitempty" yaml:"y,omitempty"`
	Z *float64 `json:"z,omitempty" yaml:"z,omitempty"`

	SphTheta  *float64 `json:"sph_theta,omitempty" yaml:"sph_theta,omitempty"`
	SphPhi    *float64 `json:"sph_phi,omitempty" yaml:"sph_phi,omitempty"`
	SphRadius *float64 `json:"sph_radius,omitempty" yaml:"sph_radius,omitempty"`

	BesaTheta *float64 `json:"sph_theta_besa,omitempty" yaml:"sph_theta_besa,omitempty"`
	BesaPhi   *float64 `json:"sph_phi_besa,omitempty" yaml:"sph_phi_besa,omitempty"`

	// Type categorizes the channel: "EEG", "REF", "FID", and so on.
	Type string `json:"type,omitempty" yaml:"type,omitempty"`

	Gain  *float64 `json:"gain,omitempty" yaml:"gain,omitempty"`
	Calib *float64 `json:"calib,omitempty" yaml:"calib,omitempty"`

	// Custom1..Custom4 are opaque passthrough fields carried verbatim from
	// the source file.
	Custom1 string `json:"custom1,omitempty" yaml:"custom1,omitempty"`
	Custom2 string `json:"custom2,omitempty" yaml:"custom2,omitempty"`
	Custom3 string `json:"custom3,omitempty" yaml:"custom3,omitempty"`
	Custom4 string `json:"custom4,omitempty" yaml:"custom4,omitempty"`
}

// Float returns a pointer to v, for populating optional Channel fields.
func Float(v float64) *float64 {
	return &v
}

// Value dereferences an optional field, returning NaN when the field is
// absent.
func Value(p *float64) float64 {
	if p == nil {
		return math.NaN()
	}
	return *p
}

// HasPolar reports whether the channel carries a polar angle and radius.
func (c *Channel) HasPolar() bool {
	return c.Theta != nil && c.Radius != nil
}

// HasCartesian reports whether the channel carries all three Cartesian
// coordinates.
func (c *Channel) HasCartesian() bool {
	return c.X != nil && c.Y != nil && c.Z != nil
}

// HasSpherical reports whether the channel carries spherical azimuth and
// elevation.
func (c *Channel) HasSpherical() bool {
	return c.SphTheta != nil && c.SphPhi != nil
}

// HasBesa reports whether the channel carries BESA spherical angles.
func (c *Channel) HasBesa() bool {
	return c.BesaTheta != nil && c.BesaPhi != nil
}
