package commands

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"tableflip.dev/blocks/pkg/config"
	"tableflip.dev/blocks/pkg/runner/edit"
)

func addEdit(topLevel *cobra.Command, v *viper.Viper) {
	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Open a new page in the block editor",
		Example: `
blocks edit
blocks edit --debug --log-file ~/.blocks/blocks.log
`,
		ValidArgs: []string{},
		Args:      cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}
			e := edit.Edit{Config: cfg}
			return e.Do(context.Background())
		},
	}

	cmd.Flags().String("log-file", "", "Append diagnostics to this file.")
	cmd.Flags().String("log-level", "", "Minimum log level (debug, info, warn, error).")
	cmd.Flags().Bool("debug", false, "Show the event log pane on start (toggle with ctrl+g).")
	cmd.Flags().Bool("mouse", true, "Enable mouse support.")
	_ = v.BindPFlag(config.KeyLogFile, cmd.Flags().Lookup("log-file"))
	_ = v.BindPFlag(config.KeyLogLevel, cmd.Flags().Lookup("log-level"))
	_ = v.BindPFlag(config.KeyDebug, cmd.Flags().Lookup("debug"))
	_ = v.BindPFlag(config.KeyMouse, cmd.Flags().Lookup("mouse"))

	topLevel.AddCommand(cmd)
}
