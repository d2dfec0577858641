// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package readers

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pdiddy/chanlocs/internal/tabular"
	"github.com/pdiddy/chanlocs/pkg/types"
)

// readLayout reads a FieldTrip .lay 2-D plotting layout: channel number,
// x, y, box width, box height, label. Only the channel number, the 2-D
// position, and the label carry over; box dimensions are plotting
// metadata with no place in the record model.
func readLayout(path string, opts types.Options) ([]types.Channel, []string, error) {
	rows, err := tabular.LoadFile(path, 0)
	if err != nil {
		return nil, nil, err
	}

	var chans []types.Channel
	for _, row := range rows {
		if len(row) < 6 {
			continue
		}
		x, errX := strconv.ParseFloat(row[1], 64)
		y, errY := strconv.ParseFloat(row[2], 64)
		if errX != nil || errY != nil {
			continue
		}
		var c types.Channel
		c.Number = row[0]
		c.X = types.Float(x)
		c.Y = types.Float(y)
		// Labels may contain spaces in .lay files; everything past the box
		// dimensions is the name.
		c.Label = strings.Join(row[5:], " ")
		chans = append(chans, c)
	}
	if len(chans) == 0 {
		return nil, nil, fmt.Errorf("no layout rows found in %s", path)
	}
	return chans, nil, nil
}
