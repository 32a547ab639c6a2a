package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Print the navigation catalog in display order",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		c, err := cfg.ResolveCatalog(os.DirFS(cfg.DocsDir))
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(c)
		}

		tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "NAME\tFILE\tTITLE")
		for _, e := range c {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", e.DisplayName, e.Filename, c.FriendlyTitle(e.Filename))
		}
		return tw.Flush()
	},
}

func init() {
	catalogCmd.Flags().Bool("json", false, "print the catalog as JSON")
	rootCmd.AddCommand(catalogCmd)
}
