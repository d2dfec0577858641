// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// FormatAuto requests extension-based format detection.
const FormatAuto = "autodetect"

// ElpDefault values for resolving the ambiguous .elp extension.
const (
	ElpBesa     = "besa"
	ElpPolhemus = "polhemus"
)

// Polhemus digitizer sensor orientations. With the X orientation the
// digitizer's x axis points toward the right ear; with the Y orientation
// it already points toward the nose.
const (
	PolhemusX = "x"
	PolhemusY = "y"
)

// Options controls a single import call. The zero value autodetects the
// format from the file extension, resolves .elp to BESA, and applies each
// descriptor's own header-skip count.
type Options struct {
	// Format is an explicit format tag, or FormatAuto (or empty) to detect
	// from the file extension.
	Format string `yaml:"format"`

	// CustomLayout is an ordered list of column-role tokens. When set it
	// forces the "custom" format regardless of Format.
	CustomLayout []string `yaml:"custom_layout,omitempty"`

	// SkipLines overrides the descriptor's header-line count. Nil keeps the
	// descriptor default.
	SkipLines *int `yaml:"skip_lines,omitempty"`

	// DefaultElp resolves the ambiguous .elp extension: ElpBesa or
	// ElpPolhemus. Empty means ElpBesa.
	DefaultElp string `yaml:"default_elp,omitempty"`

	// PolhemusOrient selects the digitizer sensor orientation for Polhemus
	// recordings: PolhemusX or PolhemusY. Empty means PolhemusX.
	PolhemusOrient string `yaml:"polhemus_orient,omitempty"`

	// Subset restricts the output to these 1-based channel indices, in the
	// requested order. Empty keeps all channels.
	Subset []int `yaml:"subset,omitempty"`

	// ImportMode records which axis convention downstream consumers should
	// assume ("eeglab" or "native"). It is passthrough metadata: the
	// pipeline copies it into the result without transforming coordinates.
	ImportMode string `yaml:"import_mode,omitempty"`
}

// ElpFormat returns the effective .elp resolution, defaulting to BESA.
func (o Options) ElpFormat() string {
	if o.DefaultElp == ElpPolhemus {
		return ElpPolhemus
	}
	return ElpBesa
}

// PolhemusOrientation returns the effective sensor orientation, defaulting
// to the X orientation.
func (o Options) PolhemusOrientation() string {
	if o.PolhemusOrient == PolhemusY {
		return PolhemusY
	}
	return PolhemusX
}
