// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package importer wires the import pipeline together: format detection,
// column parsing or delegated reading, coordinate normalization,
// post-processing, and output projection.
package importer

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pdiddy/chanlocs/internal/format"
	"github.com/pdiddy/chanlocs/internal/normalize"
	"github.com/pdiddy/chanlocs/internal/parse"
	"github.com/pdiddy/chanlocs/internal/readers"
	"github.com/pdiddy/chanlocs/pkg/types"
)

// ImportFile imports a channel-location file. The format comes from the
// options (explicit tag or custom layout) or the file extension. All
// non-fatal issues accumulate on Result.Notices; only usage,
// configuration, and I/O failures return an error.
func ImportFile(path string, opts types.Options) (*types.Result, error) {
	if path == "" {
		return nil, fmt.Errorf("no location file given: %w", types.ErrUsage)
	}

	desc, notices, err := format.Detect(path, opts)
	if err != nil {
		return nil, err
	}

	var chans []types.Channel
	if desc.Delegated {
		var rdNotices []string
		chans, rdNotices, err = readDelegated(path, desc, opts)
		notices = append(notices, rdNotices...)
		if err != nil {
			return nil, err
		}
	} else {
		layout := desc.Layout
		if desc.Tag == format.TagCustom {
			layout = opts.CustomLayout
			if len(layout) == 0 {
				return nil, fmt.Errorf("custom format requires a column layout: %w", types.ErrConfig)
			}
		}
		skip := desc.SkipLines
		if opts.SkipLines != nil {
			skip = *opts.SkipLines
		}
		var parseNotices []string
		chans, parseNotices, err = parse.File(path, desc.Tag, layout, skip)
		notices = append(notices, parseNotices...)
		if err != nil {
			return nil, err
		}
	}

	notices = append(notices, normalize.Normalize(chans)...)

	chans, err = normalize.PostProcess(chans)
	if err != nil {
		return nil, err
	}

	res, err := project(chans, opts, notices)
	if err != nil {
		return nil, err
	}
	res.Format = string(desc.Tag)
	return res, nil
}

// readDelegated invokes the dedicated reader for a non-column format. A
// Polhemus read failure triggers one fallback re-read under a forced BESA
// interpretation, since both conventions share the .elp extension.
func readDelegated(path string, desc *format.Descriptor, opts types.Options) ([]types.Channel, []string, error) {
	rd, ok := readers.For(desc.Tag)
	if !ok {
		return nil, nil, fmt.Errorf("no reader registered for format %q: %w", desc.Tag, types.ErrConfig)
	}

	chans, notices, err := rd(path, opts)
	if err == nil || desc.Tag != format.TagPolhemus {
		return chans, notices, err
	}

	notices = append(notices,
		fmt.Sprintf("polhemus read failed (%v); retrying as BESA spherical", err))
	besa, lookupErr := format.Lookup(format.TagBesa)
	if lookupErr != nil {
		return nil, notices, lookupErr
	}
	chans, parseNotices, err := parse.File(path, besa.Tag, besa.Layout, besa.SkipLines)
	return chans, append(notices, parseNotices...), err
}

// ImportChannels passes an already-shaped record collection through the
// output projection unchanged: no parsing, no normalization.
func ImportChannels(chans []types.Channel, opts types.Options) (*types.Result, error) {
	if len(chans) == 0 {
		return nil, fmt.Errorf("no channels given: %w", types.ErrUsage)
	}
	copied := make([]types.Channel, len(chans))
	copy(copied, chans)
	return project(copied, opts, nil)
}

// ImportPositions converts a foreign position/label array pair into
// channel records and runs a Cartesian-to-all pass plus post-processing.
// Vectors follow the EEGLAB frame (X nose, Y left ear, Z vertex). labels
// may be nil or shorter than positions.
func ImportPositions(positions []r3.Vec, labels []string, opts types.Options) (*types.Result, error) {
	if len(positions) == 0 {
		return nil, fmt.Errorf("no positions given: %w", types.ErrUsage)
	}

	chans := make([]types.Channel, len(positions))
	for i, v := range positions {
		if i < len(labels) {
			chans[i].Label = labels[i]
		}
		chans[i].X = types.Float(v.X)
		chans[i].Y = types.Float(v.Y)
		chans[i].Z = types.Float(v.Z)
	}

	notices := normalize.CartToAll(chans)
	chans, err := normalize.PostProcess(chans)
	if err != nil {
		return nil, err
	}
	return project(chans, opts, notices)
}

// project applies the channel subset and builds the derived output
// vectors. A channel contributes real polar values only when both its
// polar angle and its Cartesian X are populated; otherwise both vectors
// report NaN for it and it is absent from Indices.
func project(chans []types.Channel, opts types.Options, notices []string) (*types.Result, error) {
	if len(opts.Subset) > 0 {
		filtered := make([]types.Channel, 0, len(opts.Subset))
		for _, idx := range opts.Subset {
			if idx < 1 || idx > len(chans) {
				return nil, fmt.Errorf("channel index %d out of range 1..%d: %w",
					idx, len(chans), types.ErrConfig)
			}
			filtered = append(filtered, chans[idx-1])
		}
		chans = filtered
	}

	res := &types.Result{
		Channels:   chans,
		Labels:     make([]string, len(chans)),
		Theta:      make([]float64, len(chans)),
		Radius:     make([]float64, len(chans)),
		ImportMode: opts.ImportMode,
		Notices:    notices,
	}

	for i := range chans {
		res.Labels[i] = chans[i].Label
		if chans[i].Theta != nil && chans[i].X != nil {
			res.Theta[i] = *chans[i].Theta
			res.Radius[i] = types.Value(chans[i].Radius)
			res.Indices = append(res.Indices, i+1)
		} else {
			res.Theta[i] = math.NaN()
			res.Radius[i] = math.NaN()
		}
	}

	return res, nil
}
