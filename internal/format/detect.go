// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package format

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pdiddy/chanlocs/pkg/types"
)

// extensionTags maps lowercased file extensions (without the dot) to
// format tags. The ambiguous extensions .xyz and .elp get special
// treatment in Detect.
var extensionTags = map[string]Tag{
	"loc":  TagLoc,
	"locs": TagLoc,
	"eloc": TagLoc,
	"xyz":  TagXyz,
	"sph":  TagSph,
	"ced":  TagChanedit,
	"asc":  TagAsc,
	"dat":  TagDat,
	"elc":  TagElc,
	"eps":  TagBesa,
	"txt":  TagTxt,
	"sfp":  TagSfp,
	"tsv":  TagTsv,
	"mat":  TagMat,
	"lay":  TagLay,
}

// Detect resolves the effective format for an import. Resolution order: an
// explicit custom layout forces "custom"; then an explicit tag; then the
// file extension; otherwise a configuration error. The returned notices
// flag ambiguous extensions.
func Detect(path string, opts types.Options) (*Descriptor, []string, error) {
	if len(opts.CustomLayout) > 0 {
		d, err := Lookup(TagCustom)
		return d, nil, err
	}

	if opts.Format != "" && opts.Format != types.FormatAuto {
		d, err := Lookup(Tag(opts.Format))
		return d, nil, err
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))

	var notices []string
	switch ext {
	case "xyz":
		// EGI Cartesian exports commonly use .xyz as well; those need the
		// "sfp" tag instead.
		notices = append(notices,
			"extension .xyz assumed Cartesian with channel numbers; EGI exports use this extension too and need format sfp")
	case "elp":
		tag := TagBesa
		if opts.ElpFormat() == types.ElpPolhemus {
			tag = TagPolhemus
		}
		d, err := Lookup(tag)
		return d, notices, err
	}

	if tag, ok := extensionTags[ext]; ok {
		d, err := Lookup(tag)
		return d, notices, err
	}

	return nil, nil, fmt.Errorf(
		"cannot determine format for %q: unknown extension %q and no custom layout given: %w",
		path, ext, types.ErrConfig)
}
