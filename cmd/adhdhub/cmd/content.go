package cmd

import (
	"fmt"

	"github.com/nfrund/adhdhub/internal/content"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// contentCmd groups the content catalog commands.
var contentCmd = &cobra.Command{
	Use:   "content",
	Short: "Work with the content catalog",
}

var contentValidateCmd = &cobra.Command{
	Use:   "validate [dir]",
	Short: "Validate a content catalog",
	Long: `Validate the catalog.yaml in dir, or the catalog compiled into the
binary when no directory is given.

Every tab (symptoms, strengths, strategies) must have a titled section with
at least one group, and every group needs at least one item.

Examples:
  adhdhub content validate             # Check the built-in catalog
  adhdhub content validate ./content   # Check ./content/catalog.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fs, dir := content.EmbeddedFS(), "."
		if len(args) == 1 {
			fs, dir = afero.NewOsFs(), args[0]
		}

		catalog, err := content.Load(fs, dir)
		if err != nil {
			fmt.Fprintf(cmd.OutOrStdout(), "❌ Catalog validation failed: %v\n", err)
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), "✅ Catalog is valid")
		for _, tab := range content.Tabs() {
			section, _ := catalog.Section(tab)
			fmt.Fprintf(cmd.OutOrStdout(), "   %-10s %s (%d items)\n", tab.Label()+":", section.Title, catalog.ItemCount(tab))
		}
		return nil
	},
}

func init() {
	contentCmd.AddCommand(contentValidateCmd)
	rootCmd.AddCommand(contentCmd)
}
