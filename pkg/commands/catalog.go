package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/blocks/pkg/commands/options"
	"tableflip.dev/blocks/pkg/runner/catalog"
)

func addCatalog(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}
	cmd := &cobra.Command{
		Use:   "catalog [/filter]",
		Short: "List the block types offered by the slash menu",
		Example: `
blocks catalog
blocks catalog /h
blocks catalog --json
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := catalog.Catalog{JSON: oo.JSON, Out: cmd.OutOrStdout()}
			if len(args) > 0 {
				c.Filter = args[0]
			}
			oo.Out = cmd.OutOrStdout()
			return oo.HandleError(c.Do(context.Background()))
		},
	}
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
