// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package format

import (
	"fmt"
	"strings"

	"github.com/pdiddy/chanlocs/pkg/types"
)

// Role is one semantic column role from the closed vocabulary.
type Role string

// The recognized column roles. RoleIgnore consumes a column without
// storing it.
const (
	RoleLabels    Role = "labels"
	RoleChannum   Role = "channum"
	RoleTheta     Role = "theta"
	RoleRadius    Role = "radius"
	RoleX         Role = "X"
	RoleY         Role = "Y"
	RoleZ         Role = "Z"
	RoleSphTheta  Role = "sph_theta"
	RoleSphPhi    Role = "sph_phi"
	RoleSphRadius Role = "sph_radius"
	RoleBesaTheta Role = "sph_theta_besa"
	RoleBesaPhi   Role = "sph_phi_besa"
	RoleType      Role = "type"
	RoleGain      Role = "gain"
	RoleCalib     Role = "calib"
	RoleCustom1   Role = "custom1"
	RoleCustom2   Role = "custom2"
	RoleCustom3   Role = "custom3"
	RoleCustom4   Role = "custom4"
	RoleIgnore    Role = "ignore"
)

var knownRoles = map[Role]bool{
	RoleLabels: true, RoleChannum: true, RoleTheta: true, RoleRadius: true,
	RoleX: true, RoleY: true, RoleZ: true,
	RoleSphTheta: true, RoleSphPhi: true, RoleSphRadius: true,
	RoleBesaTheta: true, RoleBesaPhi: true,
	RoleType: true, RoleGain: true, RoleCalib: true,
	RoleCustom1: true, RoleCustom2: true, RoleCustom3: true, RoleCustom4: true,
	RoleIgnore: true,
}

// textRoles hold string values; every other role parses as a number.
var textRoles = map[Role]bool{
	RoleLabels: true, RoleType: true, RoleIgnore: true,
	RoleCustom1: true, RoleCustom2: true, RoleCustom3: true, RoleCustom4: true,
}

// Roles returns the closed role vocabulary, unsigned forms only, for
// introspection.
func Roles() []string {
	out := make([]string, 0, len(knownRoles))
	for _, r := range []Role{
		RoleLabels, RoleChannum, RoleTheta, RoleRadius,
		RoleX, RoleY, RoleZ,
		RoleSphTheta, RoleSphPhi, RoleSphRadius,
		RoleBesaTheta, RoleBesaPhi,
		RoleType, RoleGain, RoleCalib,
		RoleCustom1, RoleCustom2, RoleCustom3, RoleCustom4,
		RoleIgnore,
	} {
		out = append(out, string(r))
	}
	return out
}

// ResolveRole maps a layout token to its canonical role and sign
// multiplier. A leading "-" on a numeric role inverts the sign ("-X" is
// RoleX with multiplier -1). Tokens outside the vocabulary, and signed
// forms of text roles, are configuration errors.
func ResolveRole(token string) (Role, float64, error) {
	sign := 1.0
	name := token
	if strings.HasPrefix(name, "-") {
		sign = -1.0
		name = name[1:]
	}
	role := Role(name)
	if !knownRoles[role] {
		return "", 0, fmt.Errorf("unrecognized column role %q: %w", token, types.ErrConfig)
	}
	if sign < 0 && textRoles[role] {
		return "", 0, fmt.Errorf("column role %q cannot be sign-inverted: %w", token, types.ErrConfig)
	}
	return role, sign, nil
}

// IsTextRole reports whether role stores a string value.
func IsTextRole(role Role) bool {
	return textRoles[role]
}
