// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package readers

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/chanlocs/pkg/types"
)

// readStructFile reads a channel-set struct file: a channel array exported
// by analysis tools (or by the montage export here), serving the "mat"
// tag. The body is YAML; JSON bodies parse as well since YAML is a
// superset. Both a bare channel list and a document with a "channels" key
// are accepted.
func readStructFile(path string, opts types.Options) ([]types.Channel, []string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading channel-set file: %w", err)
	}

	var list []types.Channel
	if err := yaml.Unmarshal(data, &list); err == nil && len(list) > 0 {
		return list, nil, nil
	}

	var doc struct {
		Channels []types.Channel `yaml:"channels"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, nil, fmt.Errorf("parsing channel-set file %s: %w", path, err)
	}
	if len(doc.Channels) == 0 {
		return nil, nil, fmt.Errorf("no channels found in %s", path)
	}
	return doc.Channels, nil, nil
}
