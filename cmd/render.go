package cmd

import (
	"fmt"
	"net/url"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/docviewer/internal/viewer"
)

var renderCmd = &cobra.Command{
	Use:   "render [doc]",
	Short: "Render one document to HTML on stdout",
	Long: `Runs a single viewer cycle for doc (default: the first catalog entry) and
prints the content region. The page title goes to stderr. Exits non-zero when
the document could not be loaded.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		a, err := buildApp(cfg, false)
		if err != nil {
			return err
		}
		defer a.Close()

		search := ""
		if len(args) == 1 {
			search = "?" + url.Values{viewer.DocParam: {args[0]}}.Encode()
		}

		page := &viewer.Page{}
		state := a.controller.Run(cmd.Context(), search, page)

		fmt.Fprintln(cmd.ErrOrStderr(), page.Title())
		fmt.Fprintln(cmd.OutOrStdout(), page.Content())

		if state == viewer.Errored {
			return fmt.Errorf("document %q failed to load", viewer.ResolveActiveFilename(search, a.catalog))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(renderCmd)
}
