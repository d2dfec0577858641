// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/chanlocs/internal/importer"
	"github.com/pdiddy/chanlocs/pkg/types"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a channel-location file into the normalized model",
	Long: `Import reads one location file, resolves its format from the --format flag
or the file extension, normalizes whichever coordinate family the file
provides into polar + spherical + Cartesian fields, and prints the result.

Ambiguous extensions: .elp defaults to BESA spherical (set --elp-default
polhemus for digitizer recordings), and .xyz assumes a leading channel-number
column (EGI exports need --format sfp).`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func runImport(cmd *cobra.Command, args []string) error {
	opts, err := optionsFromFlags(cmd)
	if err != nil {
		return err
	}

	res, err := importer.ImportFile(args[0], opts)
	if err != nil {
		return err
	}

	for _, notice := range res.Notices {
		fmt.Fprintln(os.Stderr, "notice:", notice)
	}

	asJSON, _ := cmd.Flags().GetBool("json")
	if asJSON {
		data, err := json.MarshalIndent(res, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling result: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	data, err := yaml.Marshal(res)
	if err != nil {
		return fmt.Errorf("marshaling result: %w", err)
	}
	fmt.Print(string(data))
	return nil
}

// optionsFromFlags builds import options from flags, falling back to the
// config file for the .elp default and import mode.
func optionsFromFlags(cmd *cobra.Command) (types.Options, error) {
	var opts types.Options

	opts.Format, _ = cmd.Flags().GetString("format")

	if layout, _ := cmd.Flags().GetString("layout"); layout != "" {
		opts.CustomLayout = strings.Fields(layout)
	}

	if cmd.Flags().Changed("skiplines") {
		n, _ := cmd.Flags().GetInt("skiplines")
		if n < 0 {
			return opts, fmt.Errorf("--skiplines must be non-negative: %w", types.ErrConfig)
		}
		opts.SkipLines = &n
	}

	opts.DefaultElp, _ = cmd.Flags().GetString("elp-default")
	if opts.DefaultElp == "" {
		opts.DefaultElp = viper.GetString("default_elp")
	}

	opts.PolhemusOrient, _ = cmd.Flags().GetString("polhemus-orient")
	if opts.PolhemusOrient == "" {
		opts.PolhemusOrient = viper.GetString("polhemus_orient")
	}

	opts.ImportMode, _ = cmd.Flags().GetString("import-mode")
	if opts.ImportMode == "" {
		opts.ImportMode = viper.GetString("import_mode")
	}

	subset, _ := cmd.Flags().GetIntSlice("subset")
	for _, idx := range subset {
		if idx < 1 {
			return opts, fmt.Errorf("--subset indices must be positive, got %d: %w", idx, types.ErrConfig)
		}
	}
	opts.Subset = subset

	return opts, nil
}

func init() {
	importCmd.Flags().String("format", types.FormatAuto, "format tag, or autodetect from the extension")
	importCmd.Flags().String("layout", "", "custom column layout as space-separated role tokens (forces format custom)")
	importCmd.Flags().Int("skiplines", 0, "override the format's header-line count")
	importCmd.Flags().String("elp-default", "", "resolution for the ambiguous .elp extension: besa or polhemus")
	importCmd.Flags().String("polhemus-orient", "", "Polhemus digitizer sensor orientation: x or y")
	importCmd.Flags().String("import-mode", "", "axis convention downstream consumers assume: eeglab or native")
	importCmd.Flags().IntSlice("subset", nil, "restrict output to these 1-based channel indices")
	importCmd.Flags().Bool("json", false, "output the result as JSON instead of YAML")

	rootCmd.AddCommand(importCmd)
}
