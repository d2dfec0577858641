// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package readers

import (
	"fmt"
	"strconv"

	"github.com/pdiddy/chanlocs/internal/tabular"
	"github.com/pdiddy/chanlocs/pkg/types"
)

// Neuroscan files use x toward the right ear and y toward the nose;
// nsToEEGLab remaps into the EEGLAB frame.
func nsToEEGLab(c *types.Channel, x, y, z float64) {
	c.X = types.Float(y)
	c.Y = types.Float(-x)
	c.Z = types.Float(z)
}

// readNeuroscanAsc reads a Neuroscan 3-D ascii (.asc) export: a label
// followed by coordinates, with optional intervening columns. Rows that
// do not end in three numbers are skipped.
func readNeuroscanAsc(path string, opts types.Options) ([]types.Channel, []string, error) {
	rows, err := tabular.LoadFile(path, 0)
	if err != nil {
		return nil, nil, err
	}

	var chans []types.Channel
	for _, row := range rows {
		if len(row) < 4 {
			continue
		}
		x, y, z, ok := trailingTriple(row)
		if !ok {
			continue
		}
		var c types.Channel
		c.Label = row[0]
		nsToEEGLab(&c, x, y, z)
		chans = append(chans, c)
	}
	if len(chans) == 0 {
		return nil, nil, fmt.Errorf("no electrode rows found in %s", path)
	}
	return chans, nil, nil
}

// readNeuroscanDat reads the tabulated Neuroscan .dat dialect: channel
// number, label, then coordinates.
func readNeuroscanDat(path string, opts types.Options) ([]types.Channel, []string, error) {
	rows, err := tabular.LoadFile(path, 0)
	if err != nil {
		return nil, nil, err
	}

	var chans []types.Channel
	for _, row := range rows {
		if len(row) < 5 {
			continue
		}
		if _, err := strconv.ParseFloat(row[0], 64); err != nil {
			continue
		}
		x, y, z, ok := trailingTriple(row)
		if !ok {
			continue
		}
		var c types.Channel
		c.Number = row[0]
		c.Label = row[1]
		nsToEEGLab(&c, x, y, z)
		chans = append(chans, c)
	}
	if len(chans) == 0 {
		return nil, nil, fmt.Errorf("no electrode rows found in %s", path)
	}
	return chans, nil, nil
}

func trailingTriple(row []string) (x, y, z float64, ok bool) {
	n := len(row)
	vals := make([]float64, 3)
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseFloat(row[n-3+i], 64)
		if err != nil {
			return 0, 0, 0, false
		}
		vals[i] = v
	}
	return vals[0], vals[1], vals[2], true
}
