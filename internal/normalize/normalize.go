// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package normalize reconciles whichever coordinate family a location file
// provided into the full polar + spherical + Cartesian field set, then
// post-processes labels, ordering, and fiducial types.
package normalize

import (
	"fmt"
	"math"
	"strconv"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pdiddy/chanlocs/internal/coords"
	"github.com/pdiddy/chanlocs/pkg/types"
)

// Normalize picks the conversion pipeline for the record set and runs it.
// Exactly one primary family drives the conversion, chosen by priority:
// BESA spherical, then standard spherical, then Cartesian, then polar.
// Conversion problems are reported as notices, never as errors.
func Normalize(chans []types.Channel) []string {
	var notices []string

	switch {
	case anyBesa(chans):
		notices = append(notices, reshuffleLegacyBesa(chans)...)
		notices = append(notices, BesaToAll(chans)...)
		// A second polar pass repairs non-BESA files that land in this
		// branch: their theta/radius survive and overwrite the BESA-derived
		// values.
		notices = append(notices, PolarToAll(chans)...)
		for i := range chans {
			chans[i].BesaTheta = nil
			chans[i].BesaPhi = nil
		}
	case anySpherical(chans):
		notices = append(notices, SphToAll(chans)...)
	case anyCartesian(chans):
		notices = append(notices, CartToAll(chans)...)
	default:
		notices = append(notices, PolarToAll(chans)...)
	}

	return notices
}

func anyBesa(chans []types.Channel) bool {
	for i := range chans {
		if chans[i].BesaTheta != nil || chans[i].BesaPhi != nil {
			return true
		}
	}
	return false
}

func anySpherical(chans []types.Channel) bool {
	for i := range chans {
		if chans[i].SphTheta != nil {
			return true
		}
	}
	return false
}

func anyCartesian(chans []types.Channel) bool {
	for i := range chans {
		if chans[i].X != nil {
			return true
		}
	}
	return false
}

// reshuffleLegacyBesa detects the two legacy BESA column conventions and
// moves their values into canonical positions. The detection is a
// heuristic: a numeric token sitting in a slot that should hold text means
// the file had fewer columns than the modern five-column convention.
// Genuinely numeric labels under the modern convention will be
// misclassified; that matches upstream behavior.
func reshuffleLegacyBesa(chans []types.Channel) []string {
	if len(chans) == 0 {
		return nil
	}

	switch {
	case allNumeric(chans, func(c *types.Channel) string { return c.Type }):
		// Elec | Theta | Phi: the electrode number landed in the type slot,
		// theta in the label slot, phi in the theta slot.
		for i := range chans {
			c := &chans[i]
			c.BesaPhi = c.BesaTheta
			c.BesaTheta = parseOpt(c.Label)
			c.Label = c.Type
			c.Type = ""
			c.SphRadius = types.Float(1)
		}
		return []string{"BESA legacy 4-field convention detected (elec | theta | phi); columns reshuffled"}
	case allNumeric(chans, func(c *types.Channel) string { return c.Label }):
		// Theta | Phi only: no labels at all.
		for i := range chans {
			c := &chans[i]
			c.BesaPhi = c.BesaTheta
			c.BesaTheta = parseOpt(c.Label)
			c.Label = ""
			c.SphRadius = types.Float(1)
		}
		return []string{"BESA legacy 3-field convention detected (theta | phi); columns reshuffled"}
	}
	return nil
}

// allNumeric reports whether every record's selected text slot holds a
// parseable number. Empty slots disqualify.
func allNumeric(chans []types.Channel, field func(*types.Channel) string) bool {
	for i := range chans {
		s := field(&chans[i])
		if s == "" {
			return false
		}
		if _, err := strconv.ParseFloat(s, 64); err != nil {
			return false
		}
	}
	return true
}

func parseOpt(s string) *float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

// BesaToAll converts BESA spherical angles into the standard spherical,
// polar, and Cartesian fields for every channel that carries them.
func BesaToAll(chans []types.Channel) []string {
	var notices []string
	for i := range chans {
		c := &chans[i]
		if !c.HasBesa() {
			continue
		}
		sphTheta, sphPhi := coords.BesaToSph(*c.BesaTheta, *c.BesaPhi)
		c.SphTheta = types.Float(sphTheta)
		c.SphPhi = types.Float(sphPhi)
		if c.SphRadius == nil {
			c.SphRadius = types.Float(1)
		}
		if err := sphFanOut(c); err != nil {
			notices = append(notices, conversionNotice(i, c, err))
		}
	}
	return notices
}

// SphToAll converts standard spherical coordinates into the polar and
// Cartesian fields.
func SphToAll(chans []types.Channel) []string {
	var notices []string
	for i := range chans {
		c := &chans[i]
		if !c.HasSpherical() {
			continue
		}
		if err := sphFanOut(c); err != nil {
			notices = append(notices, conversionNotice(i, c, err))
		}
	}
	return notices
}

// CartToAll converts Cartesian coordinates into the spherical and polar
// fields.
func CartToAll(chans []types.Channel) []string {
	var notices []string
	for i := range chans {
		c := &chans[i]
		if !c.HasCartesian() {
			continue
		}
		theta, phi, radius := coords.CartToSph(r3.Vec{X: *c.X, Y: *c.Y, Z: *c.Z})
		if !finite(theta, phi, radius) {
			notices = append(notices, conversionNotice(i, c, fmt.Errorf("non-finite spherical result")))
			continue
		}
		c.SphTheta = types.Float(theta)
		c.SphPhi = types.Float(phi)
		c.SphRadius = types.Float(radius)
		t, r := coords.SphToTopo(theta, phi)
		c.Theta = types.Float(t)
		c.Radius = types.Float(r)
	}
	return notices
}

// PolarToAll treats the polar angle and radius as authoritative and
// derives the spherical and Cartesian fields. Channels without polar data
// are left untouched.
func PolarToAll(chans []types.Channel) []string {
	var notices []string
	for i := range chans {
		c := &chans[i]
		if !c.HasPolar() {
			continue
		}
		sphTheta, sphPhi := coords.TopoToSph(*c.Theta, *c.Radius)
		c.SphTheta = types.Float(sphTheta)
		c.SphPhi = types.Float(sphPhi)
		if c.SphRadius == nil {
			c.SphRadius = types.Float(1)
		}
		v := coords.SphToCart(sphTheta, sphPhi, *c.SphRadius)
		if !finite(v.X, v.Y, v.Z) {
			notices = append(notices, conversionNotice(i, c, fmt.Errorf("non-finite Cartesian result")))
			continue
		}
		c.X = types.Float(v.X)
		c.Y = types.Float(v.Y)
		c.Z = types.Float(v.Z)
	}
	return notices
}

// sphFanOut fills the polar and Cartesian fields from the channel's
// spherical fields. The channel is left unchanged on failure.
func sphFanOut(c *types.Channel) error {
	radius := 1.0
	if c.SphRadius != nil {
		radius = *c.SphRadius
	}
	theta, r := coords.SphToTopo(*c.SphTheta, *c.SphPhi)
	v := coords.SphToCart(*c.SphTheta, *c.SphPhi, radius)
	if !finite(theta, r) || !finite(v.X, v.Y, v.Z) {
		return fmt.Errorf("non-finite conversion result")
	}
	c.Theta = types.Float(theta)
	c.Radius = types.Float(r)
	c.X = types.Float(v.X)
	c.Y = types.Float(v.Y)
	c.Z = types.Float(v.Z)
	return nil
}

func finite(vals ...float64) bool {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func conversionNotice(i int, c *types.Channel, err error) string {
	label := c.Label
	if label == "" {
		label = fmt.Sprintf("#%d", i+1)
	}
	return fmt.Sprintf("coordinate conversion failed for channel %s: %v; fields left unset", label, err)
}
