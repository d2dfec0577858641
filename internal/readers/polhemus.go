// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package readers

import (
	"fmt"
	"strconv"

	"github.com/pdiddy/chanlocs/internal/tabular"
	"github.com/pdiddy/chanlocs/pkg/types"
)

// readPolhemus reads a Polhemus FastTrak .elp digitizer recording. Each
// retained row is either a bare coordinate triple (electrode digitized
// without a name) or a name followed by a coordinate triple; extra sensor
// columns between name and coordinates are tolerated by taking the last
// three numeric fields.
//
// With the X sensor orientation the digitizer frame has x toward the
// right ear and y toward the nose; coordinates are remapped into the
// EEGLAB frame (X nose, Y left ear). Recordings made with the Y sensor
// orientation are already nose-aligned and remap with a sign flip only.
// The orientation comes from Options.PolhemusOrient.
func readPolhemus(path string, opts types.Options) ([]types.Channel, []string, error) {
	rows, err := tabular.LoadFile(path, 0)
	if err != nil {
		return nil, nil, err
	}

	orient := opts.PolhemusOrientation()

	var chans []types.Channel
	for _, row := range rows {
		c, ok := digitizedRow(row, orient)
		if !ok {
			continue
		}
		chans = append(chans, c)
	}

	if len(chans) == 0 {
		return nil, nil, fmt.Errorf("no digitized positions found in %s", path)
	}
	return chans, nil, nil
}

// digitizedRow extracts a channel from one digitizer row: the last three
// parseable numbers are the position, a leading non-numeric token is the
// name. Rows without three trailing numbers are headers or sensor
// bookkeeping and are skipped.
func digitizedRow(row []string, orient string) (types.Channel, bool) {
	var c types.Channel
	if len(row) < 3 {
		return c, false
	}

	coords := make([]float64, 0, 3)
	for i := len(row) - 1; i >= 0 && len(coords) < 3; i-- {
		v, err := strconv.ParseFloat(row[i], 64)
		if err != nil {
			break
		}
		coords = append(coords, v)
	}
	if len(coords) < 3 {
		return c, false
	}
	// coords was filled back-to-front.
	x, y, z := coords[2], coords[1], coords[0]

	if _, err := strconv.ParseFloat(row[0], 64); err != nil && len(row) > 3 {
		c.Label = row[0]
	}

	if orient == types.PolhemusY {
		// Y orientation is already nose-aligned; only the left-ear axis
		// needs its sign flipped.
		c.X = types.Float(x)
		c.Y = types.Float(-y)
	} else {
		// X orientation: digitizer frame (x right, y nose) to EEGLAB frame
		// (X nose, Y left).
		c.X = types.Float(y)
		c.Y = types.Float(-x)
	}
	c.Z = types.Float(z)
	return c, true
}
