// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package tabular loads column-oriented text files into rows of string
// fields. It strips comments, skips header lines, and tokenizes either on
// tabs (preserving empty fields) or on runs of whitespace.
package tabular

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Comment markers: everything on a line after either marker is discarded.
// '%' is the marker used by the Matlab-heritage location formats, '#' by
// the plain-text ones.
const commentMarkers = "%#"

// Load reads rows from r, skipping the first skip raw lines. Lines that
// are blank after comment stripping are dropped. A line containing a tab
// is split on tabs with fields trimmed (empty fields preserved, so header
// misdetection stays observable); otherwise the line splits on whitespace
// runs.
func Load(r io.Reader, skip int) ([][]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var rows [][]string
	line := 0
	for scanner.Scan() {
		line++
		if line <= skip {
			continue
		}
		text := stripComment(scanner.Text())
		if strings.TrimSpace(text) == "" {
			continue
		}
		rows = append(rows, splitFields(text))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading line %d: %w", line, err)
	}
	return rows, nil
}

// LoadFile opens path and delegates to Load. The wrapped fs error
// propagates to the caller unchanged.
func LoadFile(path string, skip int) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening location file: %w", err)
	}
	defer f.Close()
	return Load(f, skip)
}

func stripComment(s string) string {
	if i := strings.IndexAny(s, commentMarkers); i >= 0 {
		return s[:i]
	}
	return s
}

func splitFields(s string) []string {
	if strings.ContainsRune(s, '\t') {
		parts := strings.Split(s, "\t")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts
	}
	return strings.Fields(s)
}
