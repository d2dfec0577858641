// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package parse drives the tabular loader according to a format
// descriptor's column layout and maps each column onto a Channel field.
package parse

import (
	"fmt"
	"strconv"

	"github.com/pdiddy/chanlocs/internal/format"
	"github.com/pdiddy/chanlocs/internal/tabular"
	"github.com/pdiddy/chanlocs/pkg/types"
)

// column is one resolved layout position: a canonical role plus the sign
// multiplier applied to numeric values.
type column struct {
	role format.Role
	sign float64
}

// File parses a column-literal location file. The layout is the
// descriptor's column-role list (or the caller's custom layout) and skip
// is the effective header-line count. Column-count mismatches are
// notices; unknown role tokens are fatal.
func File(path string, tag format.Tag, layout []string, skip int) ([]types.Channel, []string, error) {
	cols, err := resolveLayout(layout)
	if err != nil {
		return nil, nil, err
	}

	var notices []string

	rows, err := tabular.LoadFile(path, skip)
	if err != nil {
		return nil, nil, err
	}

	// Self-healing header retry: an empty second field on the first
	// retained row means the skip count swallowed a data line (seen with
	// headerless BESA dialects). Re-read with one fewer header line,
	// at most twice.
	for attempt := 0; attempt < 2 && misdetectedHeader(rows) && skip > 0; attempt++ {
		skip--
		notices = append(notices,
			fmt.Sprintf("header misdetected; re-reading %s with %d header line(s)", path, skip))
		rows, err = tabular.LoadFile(path, skip)
		if err != nil {
			return nil, nil, err
		}
	}

	width := tableWidth(rows)

	// Files with the xyz tag sometimes omit the leading channel-number
	// column; shift every column right by one so the layout still lines
	// up.
	offset := 0
	if tag == format.TagXyz && width == len(layout)-1 {
		offset = 1
		notices = append(notices,
			"4-column xyz file: synthesizing implicit channel-number column")
	} else if width != len(layout) {
		notices = append(notices, fmt.Sprintf(
			"column count mismatch: file has %d columns, layout %q expects %d; extra columns ignored, missing fields left unset",
			width, tag, len(layout)))
	}

	chans := make([]types.Channel, len(rows))
	for i, row := range rows {
		for j, token := range row {
			pos := j + offset
			if pos >= len(cols) {
				break
			}
			assign(&chans[i], cols[pos], token)
		}
		if offset == 1 {
			chans[i].Number = strconv.Itoa(i + 1)
		}
	}

	return chans, notices, nil
}

// resolveLayout maps every layout token to a canonical role up front, so
// bad custom layouts fail before any file content is interpreted.
func resolveLayout(layout []string) ([]column, error) {
	cols := make([]column, len(layout))
	for i, token := range layout {
		role, sign, err := format.ResolveRole(token)
		if err != nil {
			return nil, err
		}
		cols[i] = column{role: role, sign: sign}
	}
	return cols, nil
}

func misdetectedHeader(rows [][]string) bool {
	if len(rows) == 0 {
		return false
	}
	first := rows[0]
	return len(first) < 2 || first[1] == ""
}

func tableWidth(rows [][]string) int {
	w := 0
	for _, row := range rows {
		if len(row) > w {
			w = len(row)
		}
	}
	return w
}

// assign stores one token into the channel field selected by the column
// role. Numeric tokens that fail to parse leave the field unset, matching
// the tolerant loaders this replaces.
func assign(c *types.Channel, col column, token string) {
	if token == "" {
		return
	}

	if format.IsTextRole(col.role) {
		switch col.role {
		case format.RoleLabels:
			c.Label = token
		case format.RoleType:
			c.Type = token
		case format.RoleCustom1:
			c.Custom1 = token
		case format.RoleCustom2:
			c.Custom2 = token
		case format.RoleCustom3:
			c.Custom3 = token
		case format.RoleCustom4:
			c.Custom4 = token
		case format.RoleIgnore:
			// Consumed, never stored.
		}
		return
	}

	if col.role == format.RoleChannum {
		c.Number = token
		return
	}

	v, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return
	}
	v *= col.sign

	switch col.role {
	case format.RoleTheta:
		c.Theta = &v
	case format.RoleRadius:
		c.Radius = &v
	case format.RoleX:
		c.X = &v
	case format.RoleY:
		c.Y = &v
	case format.RoleZ:
		c.Z = &v
	case format.RoleSphTheta:
		c.SphTheta = &v
	case format.RoleSphPhi:
		c.SphPhi = &v
	case format.RoleSphRadius:
		c.SphRadius = &v
	case format.RoleBesaTheta:
		c.BesaTheta = &v
	case format.RoleBesaPhi:
		c.BesaPhi = &v
	case format.RoleGain:
		c.Gain = &v
	case format.RoleCalib:
		c.Calib = &v
	}
}
