// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package readers holds the dedicated readers for location formats that
// are not column-literal: digitizer recordings, scanned positions,
// Neuroscan dialects, exported channel-set struct files, and 2-D plotting
// layouts. The import engine dispatches to them by format tag and only
// post-processes their output (label and type normalization).
package readers

import (
	"github.com/pdiddy/chanlocs/internal/format"
	"github.com/pdiddy/chanlocs/pkg/types"
)

// Func reads one location file into channel records.
type Func func(path string, opts types.Options) ([]types.Channel, []string, error)

var byTag = map[format.Tag]Func{
	format.TagPolhemus: readPolhemus,
	format.TagAsc:      readNeuroscanAsc,
	format.TagDat:      readNeuroscanDat,
	format.TagElc:      readElc,
	format.TagMat:      readStructFile,
	format.TagLay:      readLayout,
}

// For returns the delegated reader for tag, if one exists.
func For(tag format.Tag) (Func, bool) {
	f, ok := byTag[tag]
	return f, ok
}
