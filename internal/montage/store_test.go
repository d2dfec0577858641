// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package montage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/chanlocs/pkg/types"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleChannels() []types.Channel {
	return []types.Channel{
		{Label: "Fp1", Type: "EEG", Theta: types.Float(-18), Radius: types.Float(0.511),
			X: types.Float(0.9), Y: types.Float(0.3), Z: types.Float(-0.03)},
		{Label: "Nz", Type: "FID", X: types.Float(1), Y: types.Float(0), Z: types.Float(0)},
		{Label: "EXG1"},
	}
}

func TestSaveAndGet(t *testing.T) {
	s := testStore(t)

	require.NoError(t, s.Save("cap64", "cap.loc", "loc", sampleChannels()))

	chans, err := s.Get("cap64")
	require.NoError(t, err)
	require.Len(t, chans, 3)

	assert.Equal(t, "Fp1", chans[0].Label)
	assert.Equal(t, "EEG", chans[0].Type)
	require.NotNil(t, chans[0].Theta)
	assert.Equal(t, -18.0, *chans[0].Theta)

	// Absent fields stay absent through the round trip.
	assert.Nil(t, chans[2].Theta)
	assert.Nil(t, chans[2].X)
}

func TestSaveReplacesExisting(t *testing.T) {
	s := testStore(t)

	require.NoError(t, s.Save("cap", "a.loc", "loc", sampleChannels()))
	require.NoError(t, s.Save("cap", "b.loc", "loc", sampleChannels()[:1]))

	chans, err := s.Get("cap")
	require.NoError(t, err)
	assert.Len(t, chans, 1)
}

func TestSaveRequiresName(t *testing.T) {
	s := testStore(t)
	err := s.Save("", "a.loc", "loc", sampleChannels())
	assert.ErrorIs(t, err, types.ErrUsage)
}

func TestList(t *testing.T) {
	s := testStore(t)

	require.NoError(t, s.Save("cap64", "cap.loc", "loc", sampleChannels()))
	require.NoError(t, s.Save("cap32", "cap.sfp", "sfp", sampleChannels()[:2]))

	infos, err := s.List()
	require.NoError(t, err)
	require.Len(t, infos, 2)

	byName := map[string]Info{}
	for _, info := range infos {
		byName[info.Name] = info
	}
	assert.Equal(t, 3, byName["cap64"].Channels)
	assert.Equal(t, 2, byName["cap32"].Channels)
	assert.Equal(t, "sfp", byName["cap32"].Format)
}

func TestGetMissing(t *testing.T) {
	s := testStore(t)
	_, err := s.Get("nonesuch")
	assert.Error(t, err)
}

func TestDelete(t *testing.T) {
	s := testStore(t)

	require.NoError(t, s.Save("cap", "a.loc", "loc", sampleChannels()))
	require.NoError(t, s.Delete("cap"))

	_, err := s.Get("cap")
	assert.Error(t, err)

	assert.Error(t, s.Delete("cap"), "deleting twice must fail")
}

func TestExportYAMLRoundTrip(t *testing.T) {
	s := testStore(t)
	require.NoError(t, s.Save("cap", "a.loc", "loc", sampleChannels()))

	path := filepath.Join(t.TempDir(), "cap.yaml")
	require.NoError(t, s.Export("cap", path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc struct {
		Name     string          `yaml:"name"`
		Channels []types.Channel `yaml:"channels"`
	}
	require.NoError(t, yaml.Unmarshal(data, &doc))
	assert.Equal(t, "cap", doc.Name)
	require.Len(t, doc.Channels, 3)
	assert.Equal(t, "Fp1", doc.Channels[0].Label)
}
