// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package montage

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/chanlocs/pkg/types"
)

// exportDoc is the on-disk shape of an exported montage. The channel list
// round-trips through the "mat" struct-file reader.
type exportDoc struct {
	Name     string          `json:"name" yaml:"name"`
	Channels []types.Channel `json:"channels" yaml:"channels"`
}

// Export writes the montage stored under name to path. The format follows
// the path extension: .json writes JSON, anything else YAML.
func (s *Store) Export(name, path string) error {
	chans, err := s.Get(name)
	if err != nil {
		return err
	}

	doc := exportDoc{Name: name, Channels: chans}

	var data []byte
	if strings.HasSuffix(strings.ToLower(path), ".json") {
		data, err = json.MarshalIndent(doc, "", "  ")
	} else {
		data, err = yaml.Marshal(doc)
	}
	if err != nil {
		return fmt.Errorf("marshaling montage %q: %w", name, err)
	}

	return os.WriteFile(path, data, 0o644)
}
