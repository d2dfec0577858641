// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package format

import (
	"errors"
	"testing"

	"github.com/pdiddy/chanlocs/pkg/types"
)

func TestDetectByExtension(t *testing.T) {
	tests := []struct {
		path string
		want Tag
	}{
		{path: "cap.loc", want: TagLoc},
		{path: "cap.locs", want: TagLoc},
		{path: "cap.eloc", want: TagLoc},
		{path: "CAP.LOCS", want: TagLoc},
		{path: "cap.xyz", want: TagXyz},
		{path: "cap.sph", want: TagSph},
		{path: "cap.ced", want: TagChanedit},
		{path: "cap.elp", want: TagBesa},
		{path: "cap.asc", want: TagAsc},
		{path: "cap.dat", want: TagDat},
		{path: "cap.elc", want: TagElc},
		{path: "cap.eps", want: TagBesa},
		{path: "cap.txt", want: TagTxt},
		{path: "cap.sfp", want: TagSfp},
		{path: "cap.tsv", want: TagTsv},
		{path: "cap.mat", want: TagMat},
		{path: "cap.lay", want: TagLay},
	}

	for _, tt := range tests {
		d, _, err := Detect(tt.path, types.Options{})
		if err != nil {
			t.Errorf("Detect(%q): %v", tt.path, err)
			continue
		}
		if d.Tag != tt.want {
			t.Errorf("Detect(%q) = %q, want %q", tt.path, d.Tag, tt.want)
		}
	}
}

func TestDetectElpDefault(t *testing.T) {
	d, _, err := Detect("digitized.elp", types.Options{DefaultElp: types.ElpPolhemus})
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}
	if d.Tag != TagPolhemus {
		t.Errorf("Detect(.elp, polhemus default) = %q, want polhemus", d.Tag)
	}
}

func TestDetectXyzAmbiguityNotice(t *testing.T) {
	_, notices, err := Detect("cap.xyz", types.Options{})
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}
	if len(notices) != 1 {
		t.Fatalf("len(notices) = %d, want 1", len(notices))
	}
}

func TestDetectCustomLayoutWins(t *testing.T) {
	// An explicit layout forces "custom" even when a tag and a known
	// extension are given.
	opts := types.Options{
		Format:       string(TagLoc),
		CustomLayout: []string{"labels", "-X", "Y", "Z"},
	}
	d, _, err := Detect("cap.sfp", opts)
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}
	if d.Tag != TagCustom {
		t.Errorf("Detect with custom layout = %q, want custom", d.Tag)
	}
}

func TestDetectExplicitTagBeatsExtension(t *testing.T) {
	d, _, err := Detect("cap.xyz", types.Options{Format: string(TagSfp)})
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}
	if d.Tag != TagSfp {
		t.Errorf("Detect(explicit sfp) = %q, want sfp", d.Tag)
	}
}

func TestDetectUnknownExtension(t *testing.T) {
	_, _, err := Detect("cap.bin", types.Options{})
	if !errors.Is(err, types.ErrConfig) {
		t.Errorf("Detect(.bin) error = %v, want ErrConfig", err)
	}
}

func TestDetectAutodetectKeyword(t *testing.T) {
	d, _, err := Detect("cap.loc", types.Options{Format: types.FormatAuto})
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}
	if d.Tag != TagLoc {
		t.Errorf("Detect(autodetect, .loc) = %q, want loc", d.Tag)
	}
}
