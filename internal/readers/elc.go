// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package readers

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pdiddy/chanlocs/pkg/types"
)

// readElc reads an EETrak/ASA .elc file: a small key/value header, a
// Positions section of coordinate triples, and a Labels section with one
// name per line. Position count and label count may disagree in damaged
// exports; the shorter of the two wins with a notice.
func readElc(path string, opts types.Options) ([]types.Channel, []string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening location file: %w", err)
	}
	defer f.Close()

	var (
		positions [][3]float64
		labels    []string
		section   string
	)

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		lower := strings.ToLower(line)
		switch {
		case strings.HasPrefix(lower, "positions"):
			section = "positions"
			continue
		case strings.HasPrefix(lower, "labels"):
			section = "labels"
			continue
		case strings.Contains(line, "=") || strings.HasPrefix(lower, "referencelabel") ||
			strings.HasPrefix(lower, "unitposition"):
			// Header bookkeeping.
			continue
		}

		switch section {
		case "positions":
			fields := strings.Fields(strings.ReplaceAll(line, ":", " "))
			if len(fields) < 3 {
				continue
			}
			var pos [3]float64
			ok := true
			for i := 0; i < 3; i++ {
				v, err := strconv.ParseFloat(fields[len(fields)-3+i], 64)
				if err != nil {
					ok = false
					break
				}
				pos[i] = v
			}
			if ok {
				positions = append(positions, pos)
			}
		case "labels":
			labels = append(labels, strings.Fields(line)...)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("reading %s: %w", path, err)
	}

	if len(positions) == 0 {
		return nil, nil, fmt.Errorf("no Positions section found in %s", path)
	}

	var notices []string
	n := len(positions)
	if len(labels) > 0 && len(labels) != n {
		if len(labels) < n {
			n = len(labels)
		}
		notices = append(notices, fmt.Sprintf(
			"%s: %d positions but %d labels; keeping first %d channels",
			path, len(positions), len(labels), n))
	}

	chans := make([]types.Channel, n)
	for i := 0; i < n; i++ {
		if i < len(labels) {
			chans[i].Label = labels[i]
		}
		chans[i].X = types.Float(positions[i][0])
		chans[i].Y = types.Float(positions[i][1])
		chans[i].Z = types.Float(positions[i][2])
	}
	return chans, notices, nil
}
