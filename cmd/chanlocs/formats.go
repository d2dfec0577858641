// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/pdiddy/chanlocs/internal/format"
)

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List the supported formats and column roles",
	Long: `Formats prints the static format registry: every recognized format tag
with its column layout and header-skip default, plus the closed vocabulary
of column-role tokens usable in a custom layout. No file is touched.`,
	Run: runFormats,
}

func runFormats(cmd *cobra.Command, args []string) {
	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "TAG\tNAME\tSKIP\tLAYOUT")
	for _, d := range format.All() {
		layout := strings.Join(d.Layout, " ")
		if d.Delegated {
			layout = "(dedicated reader)"
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", d.Tag, d.Name, d.SkipLines, layout)
	}
	w.Flush()

	fmt.Println()
	fmt.Println("Column roles:", strings.Join(format.Roles(), " "))
	fmt.Println(`Prefix a numeric role with "-" to invert its sign (e.g. -X).`)
}

func init() {
	rootCmd.AddCommand(formatsCmd)
}
