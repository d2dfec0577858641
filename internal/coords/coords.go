// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package coords implements the coordinate conversions between the polar,
// spherical, BESA-spherical, and Cartesian electrode conventions. All
// angles are degrees; Cartesian triples follow the EEGLAB convention
// (X toward the nose, Y toward the left ear, Z toward the vertex).
package coords

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

const degToRad = math.Pi / 180

// HeadRadius is the normalized arc-length radius of the head disk in
// polar coordinates.
const HeadRadius = 0.5

// SphToCart converts spherical azimuth/elevation/radius to a Cartesian
// vector.
func SphToCart(theta, phi, radius float64) r3.Vec {
	t := theta * degToRad
	p := phi * degToRad
	return r3.Vec{
		X: radius * math.Cos(p) * math.Cos(t),
		Y: radius * math.Cos(p) * math.Sin(t),
		Z: radius * math.Sin(p),
	}
}

// CartToSph converts a Cartesian vector to spherical
// azimuth/elevation/radius.
func CartToSph(v r3.Vec) (theta, phi, radius float64) {
	radius = r3.Norm(v)
	theta = math.Atan2(v.Y, v.X) / degToRad
	phi = math.Atan2(v.Z, math.Hypot(v.X, v.Y)) / degToRad
	return theta, phi, radius
}

// SphToTopo converts spherical azimuth/elevation to the polar plotting
// angle and arc-length radius (head disk normalized to HeadRadius).
func SphToTopo(sphTheta, sphPhi float64) (theta, radius float64) {
	return -sphTheta, HeadRadius - sphPhi/180
}

// TopoToSph converts the polar plotting angle and arc-length radius back
// to spherical azimuth/elevation.
func TopoToSph(theta, radius float64) (sphTheta, sphPhi float64) {
	return -theta, (HeadRadius - radius) * 180
}

// BesaToSph converts BESA spherical angles to the Matlab spherical
// convention: BESA measures its first angle from the vertex down and its
// second around the head with the opposite rotation sign.
func BesaToSph(besaTheta, besaPhi float64) (sphTheta, sphPhi float64) {
	return -besaPhi, 90 - besaTheta
}
