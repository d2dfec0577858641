// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package readers

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pdiddy/chanlocs/internal/format"
	"github.com/pdiddy/chanlocs/pkg/types"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestForCoversDelegatedFormats(t *testing.T) {
	for _, d := range format.All() {
		_, ok := For(d.Tag)
		if d.Delegated && !ok {
			t.Errorf("no reader registered for delegated format %q", d.Tag)
		}
		if !d.Delegated && ok {
			t.Errorf("column format %q should not have a delegated reader", d.Tag)
		}
	}
}

func TestReadPolhemus(t *testing.T) {
	content := "% digitizer session\n" +
		"Fp1 1 2.0 8.0 0.5\n" +
		"3.0 -1.0 0.25\n"
	path := writeFile(t, "session.elp", content)

	chans, _, err := readPolhemus(path, types.Options{})
	if err != nil {
		t.Fatalf("readPolhemus: %v", err)
	}
	if len(chans) != 2 {
		t.Fatalf("len(chans) = %d, want 2", len(chans))
	}

	// Named row: last three numbers (2, 8, 0.5) are the digitizer
	// position; the frame remap gives X=8, Y=-2, Z=0.5.
	if chans[0].Label != "Fp1" {
		t.Errorf("Label = %q, want Fp1", chans[0].Label)
	}
	if *chans[0].X != 8 || *chans[0].Y != -2 || *chans[0].Z != 0.5 {
		t.Errorf("pos = (%v,%v,%v), want (8,-2,0.5)", *chans[0].X, *chans[0].Y, *chans[0].Z)
	}

	// Bare triple: no label.
	if chans[1].Label != "" {
		t.Errorf("bare triple Label = %q, want empty", chans[1].Label)
	}
	if *chans[1].X != -1 || *chans[1].Y != -3 {
		t.Errorf("pos = (%v,%v), want (-1,-3)", *chans[1].X, *chans[1].Y)
	}
}

func TestReadPolhemusYOrientation(t *testing.T) {
	path := writeFile(t, "session.elp", "Fp1 1 2.0 8.0 0.5\n")

	chans, _, err := readPolhemus(path, types.Options{PolhemusOrient: types.PolhemusY})
	if err != nil {
		t.Fatalf("readPolhemus: %v", err)
	}
	if len(chans) != 1 {
		t.Fatalf("len(chans) = %d, want 1", len(chans))
	}

	// Y orientation keeps the nose axis in place and only flips the
	// left-ear axis: X=2, Y=-8.
	if *chans[0].X != 2 || *chans[0].Y != -8 || *chans[0].Z != 0.5 {
		t.Errorf("pos = (%v,%v,%v), want (2,-8,0.5)", *chans[0].X, *chans[0].Y, *chans[0].Z)
	}
}

func TestReadPolhemusEmpty(t *testing.T) {
	path := writeFile(t, "empty.elp", "header only\n")
	if _, _, err := readPolhemus(path, types.Options{}); err == nil {
		t.Error("want error for file without digitized positions")
	}
}

func TestReadNeuroscanAsc(t *testing.T) {
	content := "Fp1 21 2.0 8.0 0.5\nC3 22 6.0 -1.0 4.0\n"
	path := writeFile(t, "scan.asc", content)

	chans, _, err := readNeuroscanAsc(path, types.Options{})
	if err != nil {
		t.Fatalf("readNeuroscanAsc: %v", err)
	}
	if len(chans) != 2 {
		t.Fatalf("len(chans) = %d, want 2", len(chans))
	}
	if chans[0].Label != "Fp1" {
		t.Errorf("Label = %q, want Fp1", chans[0].Label)
	}
	// Neuroscan (x right, y nose) to EEGLAB (X nose, Y left): X=8, Y=-2.
	if *chans[0].X != 8 || *chans[0].Y != -2 || *chans[0].Z != 0.5 {
		t.Errorf("pos = (%v,%v,%v), want (8,-2,0.5)", *chans[0].X, *chans[0].Y, *chans[0].Z)
	}
}

func TestReadNeuroscanDat(t *testing.T) {
	content := "1 Fp1 2.0 8.0 0.5\n2 C3 6.0 -1.0 4.0\n"
	path := writeFile(t, "scan.dat", content)

	chans, _, err := readNeuroscanDat(path, types.Options{})
	if err != nil {
		t.Fatalf("readNeuroscanDat: %v", err)
	}
	if len(chans) != 2 {
		t.Fatalf("len(chans) = %d, want 2", len(chans))
	}
	if chans[0].Number != "1" || chans[0].Label != "Fp1" {
		t.Errorf("chans[0] = %+v, want number 1 label Fp1", chans[0])
	}
}

func TestReadElc(t *testing.T) {
	content := `# ASA electrode file
ReferenceLabel avg
UnitPosition mm
NumberPositions= 2
Positions
30.5 70.2 10.0
-30.5 70.2 10.0
Labels
Fp1
Fp2
`
	path := writeFile(t, "cap.elc", content)

	chans, notices, err := readElc(path, types.Options{})
	if err != nil {
		t.Fatalf("readElc: %v", err)
	}
	if len(notices) != 0 {
		t.Errorf("notices = %v, want none", notices)
	}
	if len(chans) != 2 {
		t.Fatalf("len(chans) = %d, want 2", len(chans))
	}
	if chans[0].Label != "Fp1" || chans[1].Label != "Fp2" {
		t.Errorf("labels = %q, %q", chans[0].Label, chans[1].Label)
	}
	if *chans[0].X != 30.5 || *chans[1].X != -30.5 {
		t.Errorf("X = %v, %v", *chans[0].X, *chans[1].X)
	}
}

func TestReadElcCountMismatch(t *testing.T) {
	content := "Positions\n1 2 3\n4 5 6\nLabels\nFp1\n"
	path := writeFile(t, "cap.elc", content)

	chans, notices, err := readElc(path, types.Options{})
	if err != nil {
		t.Fatalf("readElc: %v", err)
	}
	if len(chans) != 1 {
		t.Errorf("len(chans) = %d, want 1 (shorter side wins)", len(chans))
	}
	if len(notices) != 1 {
		t.Errorf("notices = %v, want one mismatch notice", notices)
	}
}

func TestReadLayout(t *testing.T) {
	content := "1 -0.4 0.8 0.1 0.1 Fp1\n2 0.4 0.8 0.1 0.1 Fp 2\n"
	path := writeFile(t, "cap.lay", content)

	chans, _, err := readLayout(path, types.Options{})
	if err != nil {
		t.Fatalf("readLayout: %v", err)
	}
	if len(chans) != 2 {
		t.Fatalf("len(chans) = %d, want 2", len(chans))
	}
	if chans[0].Label != "Fp1" {
		t.Errorf("Label = %q, want Fp1", chans[0].Label)
	}
	if chans[1].Label != "Fp 2" {
		t.Errorf("Label = %q, want \"Fp 2\" (spaces preserved)", chans[1].Label)
	}
	if *chans[0].X != -0.4 || *chans[0].Y != 0.8 {
		t.Errorf("pos = (%v,%v), want (-0.4, 0.8)", *chans[0].X, *chans[0].Y)
	}
}

func TestReadStructFileYAML(t *testing.T) {
	content := `channels:
  - label: Fp1
    theta: -18
    radius: 0.511
  - label: Fp2
    theta: 18
    radius: 0.511
`
	path := writeFile(t, "cap.mat", content)

	chans, _, err := readStructFile(path, types.Options{})
	if err != nil {
		t.Fatalf("readStructFile: %v", err)
	}
	if len(chans) != 2 {
		t.Fatalf("len(chans) = %d, want 2", len(chans))
	}
	if chans[0].Label != "Fp1" || chans[0].Theta == nil || *chans[0].Theta != -18 {
		t.Errorf("chans[0] = %+v", chans[0])
	}
}

func TestReadStructFileBareList(t *testing.T) {
	content := "- label: Cz\n  sph_phi: 90\n"
	path := writeFile(t, "cap.mat", content)

	chans, _, err := readStructFile(path, types.Options{})
	if err != nil {
		t.Fatalf("readStructFile: %v", err)
	}
	if len(chans) != 1 || chans[0].Label != "Cz" {
		t.Errorf("chans = %+v, want single Cz", chans)
	}
}

func TestReadStructFileGarbage(t *testing.T) {
	path := writeFile(t, "cap.mat", "{{not yaml")
	if _, _, err := readStructFile(path, types.Options{}); err == nil {
		t.Error("want error for unparseable struct file")
	}
}
