// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package normalize

import (
	"errors"
	"testing"

	"github.com/pdiddy/chanlocs/pkg/types"
)

func TestPostProcessSynthesizesLabels(t *testing.T) {
	chans := []types.Channel{{}, {}, {}}

	chans, err := PostProcess(chans)
	if err != nil {
		t.Fatalf("PostProcess: %v", err)
	}

	want := []string{"E1", "E2", "E3"}
	for i := range chans {
		if chans[i].Label != want[i] {
			t.Errorf("chans[%d].Label = %q, want %q", i, chans[i].Label, want[i])
		}
	}
}

func TestPostProcessNoSynthesisWhenAnyLabelPresent(t *testing.T) {
	chans := []types.Channel{{Label: "Fp1"}, {}}

	chans, err := PostProcess(chans)
	if err != nil {
		t.Fatalf("PostProcess: %v", err)
	}
	if chans[1].Label != "" {
		t.Errorf("chans[1].Label = %q, want empty (no synthesis)", chans[1].Label)
	}
}

func TestPostProcessStripsTrailingDots(t *testing.T) {
	chans := []types.Channel{{Label: "Fp1..."}, {Label: "C3."}, {Label: "F.z"}}

	chans, err := PostProcess(chans)
	if err != nil {
		t.Fatalf("PostProcess: %v", err)
	}
	if chans[0].Label != "Fp1" || chans[1].Label != "C3" {
		t.Errorf("labels = %q, %q, want Fp1, C3", chans[0].Label, chans[1].Label)
	}
	if chans[2].Label != "F.z" {
		t.Errorf("interior dots must survive, got %q", chans[2].Label)
	}
}

func TestPostProcessResequences(t *testing.T) {
	chans := []types.Channel{
		{Label: "b", Number: "2"},
		{Label: "a", Number: "1"},
		{Label: "c", Number: "3"},
	}

	chans, err := PostProcess(chans)
	if err != nil {
		t.Fatalf("PostProcess: %v", err)
	}

	want := []string{"a", "b", "c"}
	for i := range chans {
		if chans[i].Label != want[i] {
			t.Errorf("chans[%d].Label = %q, want %q", i, chans[i].Label, want[i])
		}
		if chans[i].Number != "" {
			t.Errorf("chans[%d].Number = %q, want deleted", i, chans[i].Number)
		}
	}
}

func TestPostProcessResequenceIsStable(t *testing.T) {
	chans := []types.Channel{
		{Label: "first", Number: "2"},
		{Label: "second", Number: "2"},
		{Label: "zero", Number: "1"},
	}

	chans, err := PostProcess(chans)
	if err != nil {
		t.Fatalf("PostProcess: %v", err)
	}
	if chans[1].Label != "first" || chans[2].Label != "second" {
		t.Errorf("equal keys reordered: %q, %q", chans[1].Label, chans[2].Label)
	}
}

func TestPostProcessSortedNumbersStillDeleted(t *testing.T) {
	chans := []types.Channel{
		{Label: "a", Number: "1"},
		{Label: "b", Number: "2"},
	}

	chans, err := PostProcess(chans)
	if err != nil {
		t.Fatalf("PostProcess: %v", err)
	}
	if chans[0].Label != "a" || chans[1].Label != "b" {
		t.Error("already-sorted records must keep their order")
	}
	if chans[0].Number != "" || chans[1].Number != "" {
		t.Error("channel-number field must be deleted even without reordering")
	}
}

func TestPostProcessBlankChannelNumberIsAbsent(t *testing.T) {
	chans := []types.Channel{
		{Label: "b", Number: "2"},
		{Label: "a", Number: ""},
		{Label: "c", Number: "1"},
	}

	chans, err := PostProcess(chans)
	if err != nil {
		t.Fatalf("PostProcess: %v", err)
	}

	// A gap in the number column keeps the file order and never aborts.
	want := []string{"b", "a", "c"}
	for i := range chans {
		if chans[i].Label != want[i] {
			t.Errorf("chans[%d].Label = %q, want %q", i, chans[i].Label, want[i])
		}
		if chans[i].Number != "" {
			t.Errorf("chans[%d].Number = %q, want deleted", i, chans[i].Number)
		}
	}
}

func TestPostProcessNonNumericChannelNumber(t *testing.T) {
	chans := []types.Channel{{Label: "a", Number: "one"}}

	_, err := PostProcess(chans)
	if !errors.Is(err, types.ErrConfig) {
		t.Errorf("error = %v, want ErrConfig", err)
	}
}

func TestPostProcessFiducialTagging(t *testing.T) {
	chans := []types.Channel{
		{Label: "NASION"},
		{Label: "lpa"},
		{Label: "Rpa"},
		{Label: "FidT9"},
		{Label: "Nasion_extra"},
		{Label: "Fp1"},
	}

	chans, err := PostProcess(chans)
	if err != nil {
		t.Fatalf("PostProcess: %v", err)
	}

	wantFID := []bool{true, true, true, true, false, false}
	for i := range chans {
		got := chans[i].Type == "FID"
		if got != wantFID[i] {
			t.Errorf("chans[%d] (%q) FID = %v, want %v", i, chans[i].Label, got, wantFID[i])
		}
	}
}
