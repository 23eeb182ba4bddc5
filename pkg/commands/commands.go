package commands

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/blocks/pkg/config"
)

// New builds the blocks command tree.
func New() *cobra.Command {
	return NewWithConfig(config.New())
}

// NewWithConfig builds the command tree around an existing viper instance.
func NewWithConfig(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "blocks",
		Short: base.Wrap80("A block-based rich text editor for the terminal. Type '/' in any block to turn it into a heading, list, to-do, quote or code block."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		SilenceUsage: true,
	}

	AddCommands(cmd, v)
	return cmd
}

// AddCommands registers every subcommand on topLevel.
func AddCommands(topLevel *cobra.Command, v *viper.Viper) {
	addEdit(topLevel, v)
	addCatalog(topLevel)
	addVersion(topLevel)
}
