// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package normalize

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/pdiddy/chanlocs/pkg/types"
)

// fiducialNames is the fixed set of landmark labels whose channels get
// type FID. Matching is case-insensitive and exact.
var fiducialNames = map[string]bool{
	"nz": true, "lpa": true, "rpa": true, "nasion": true,
	"left": true, "right": true, "nazion": true,
	"fidnz": true, "fidt9": true, "fidt10": true,
	"cms": true, "drl": true, "nas": true,
	"lht": true, "rht": true, "lhj": true, "rhj": true,
}

// PostProcess repairs labels, reorders by the channel-number field,
// tags fiducial channels, and clears the scratch fields. Only a
// non-numeric channel-number field is fatal.
func PostProcess(chans []types.Channel) ([]types.Channel, error) {
	if noLabels(chans) {
		for i := range chans {
			chans[i].Label = "E" + strconv.Itoa(i+1)
		}
	} else {
		// Legacy fixed-width writers pad short labels with dots.
		for i := range chans {
			chans[i].Label = strings.TrimRight(chans[i].Label, ".")
		}
	}

	chans, err := resequence(chans)
	if err != nil {
		return nil, err
	}

	for i := range chans {
		if fiducialNames[strings.ToLower(chans[i].Label)] {
			chans[i].Type = "FID"
		}
	}

	return chans, nil
}

func noLabels(chans []types.Channel) bool {
	for i := range chans {
		if chans[i].Label != "" {
			return false
		}
	}
	return true
}

// resequence stably reorders the records by their channel-number field
// when the sequence is not already ascending, then deletes the field. An
// empty channel-number token counts as absent: a file with gaps in the
// number column still imports, it just keeps its file order. Only a
// non-empty, non-numeric channel number is a configuration error.
func resequence(chans []types.Channel) ([]types.Channel, error) {
	complete := len(chans) > 0
	present := false
	nums := make([]float64, len(chans))
	for i := range chans {
		if chans[i].Number == "" {
			complete = false
			continue
		}
		present = true
		v, err := strconv.ParseFloat(chans[i].Number, 64)
		if err != nil {
			return nil, fmt.Errorf("channel-number field %q is not numeric: %w",
				chans[i].Number, types.ErrConfig)
		}
		nums[i] = v
	}
	if !present {
		return chans, nil
	}

	if complete && !sort.Float64sAreSorted(nums) {
		idx := make([]int, len(chans))
		for i := range idx {
			idx[i] = i
		}
		sort.SliceStable(idx, func(a, b int) bool { return nums[idx[a]] < nums[idx[b]] })
		reordered := make([]types.Channel, len(chans))
		for i, j := range idx {
			reordered[i] = chans[j]
		}
		chans = reordered
	}

	for i := range chans {
		chans[i].Number = ""
	}
	return chans, nil
}
