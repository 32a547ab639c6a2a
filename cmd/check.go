package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/docviewer/internal/check"
	"github.com/ziadkadry99/docviewer/internal/progress"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Load every catalog document and report the ones that fail",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		a, err := buildApp(cfg, true)
		if err != nil {
			return err
		}
		defer a.Close()

		reporter := progress.NewReporter(os.Stderr, "Checking documents")
		report, err := check.Run(cmd.Context(), a.controller, reporter)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			if err := enc.Encode(report); err != nil {
				return err
			}
		} else {
			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "DOCUMENT\tFILE\tSTATE")
			for _, r := range report.Results {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", r.DisplayName, r.Filename, r.State)
			}
			tw.Flush()
		}

		if report.Failed > 0 {
			return fmt.Errorf("%d of %d documents failed to load", report.Failed, len(report.Results))
		}
		return nil
	},
}

func init() {
	checkCmd.Flags().Bool("json", false, "print the report as JSON")
	rootCmd.AddCommand(checkCmd)
}
