// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/chanlocs/internal/importer"
	"github.com/pdiddy/chanlocs/internal/montage"
)

var montageCmd = &cobra.Command{
	Use:   "montage",
	Short: "Manage stored montages (save, list, show, export, delete)",
	Long: `Montage persists imported channel sets in a local SQLite database so a
digitized montage can be reused without re-importing the source file.
Exports round-trip through the "mat" struct-file format.`,
}

// montageDir resolves the database directory: flag, then config, then
// ./montages.
func montageDir(cmd *cobra.Command) string {
	if dir, _ := cmd.Flags().GetString("dir"); dir != "" {
		return dir
	}
	if dir := viper.GetString("montage_dir"); dir != "" {
		return dir
	}
	return "montages"
}

func openStore(cmd *cobra.Command) (*montage.Store, error) {
	return montage.NewStore(montageDir(cmd))
}

var montageSaveCmd = &cobra.Command{
	Use:   "save <file> <name>",
	Short: "Import a location file and store it under a montage name",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
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

		store, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.Save(args[1], args[0], res.Format, res.Channels); err != nil {
			return err
		}
		fmt.Printf("stored montage %q (%d channels)\n", args[1], len(res.Channels))
		return nil
	},
}

var montageListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored montages",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer store.Close()

		infos, err := store.List()
		if err != nil {
			return err
		}
		if len(infos) == 0 {
			fmt.Println("no montages stored")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tCHANNELS\tFORMAT\tSOURCE\tIMPORTED")
		for _, info := range infos {
			fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%s\n",
				info.Name, info.Channels, info.Format, info.SourceFile,
				info.ImportedAt.Format("2006-01-02 15:04"))
		}
		return w.Flush()
	},
}

var montageShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Print a stored montage as YAML",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer store.Close()

		chans, err := store.Get(args[0])
		if err != nil {
			return err
		}
		data, err := yaml.Marshal(chans)
		if err != nil {
			return fmt.Errorf("marshaling montage: %w", err)
		}
		fmt.Print(string(data))
		return nil
	},
}

var montageExportCmd = &cobra.Command{
	Use:   "export <name> <path>",
	Short: "Export a stored montage to a YAML or JSON channel-set file",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.Export(args[0], args[1]); err != nil {
			return err
		}
		fmt.Printf("exported montage %q to %s\n", args[0], args[1])
		return nil
	},
}

var montageDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a stored montage",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer store.Close()
		return store.Delete(args[0])
	},
}

func init() {
	montageCmd.PersistentFlags().String("dir", "", "montage database directory (default: ./montages)")

	// The save subcommand accepts the same import options as "import".
	montageSaveCmd.Flags().String("format", "autodetect", "format tag, or autodetect from the extension")
	montageSaveCmd.Flags().String("layout", "", "custom column layout as space-separated role tokens")
	montageSaveCmd.Flags().Int("skiplines", 0, "override the format's header-line count")
	montageSaveCmd.Flags().String("elp-default", "", "resolution for the ambiguous .elp extension: besa or polhemus")
	montageSaveCmd.Flags().String("polhemus-orient", "", "Polhemus digitizer sensor orientation: x or y")
	montageSaveCmd.Flags().String("import-mode", "", "axis convention downstream consumers assume")
	montageSaveCmd.Flags().IntSlice("subset", nil, "restrict the stored set to these 1-based channel indices")

	montageCmd.AddCommand(montageSaveCmd, montageListCmd, montageShowCmd,
		montageExportCmd, montageDeleteCmd)
	rootCmd.AddCommand(montageCmd)
}
