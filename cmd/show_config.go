package cmd

import (
	"os"

	"github.com/git-l10n/git-po-writer/flag"
	"github.com/git-l10n/git-po-writer/util"
	"github.com/spf13/cobra"
)

type showConfigCommand struct {
	cmd *cobra.Command
}

func (v *showConfigCommand) Command() *cobra.Command {
	if v.cmd != nil {
		return v.cmd
	}

	v.cmd = &cobra.Command{
		Use:   "show-config",
		Short: "Show the merged configuration in YAML format",
		RunE: func(cmd *cobra.Command, args []string) error {
			return v.Execute(args)
		},
	}
	return v.cmd
}

func (v showConfigCommand) Execute(args []string) error {
	if len(args) > 0 {
		return NewErrorWithUsage("show-config command takes no argument")
	}
	return util.CmdShowConfig(os.Stdout, flag.ConfigFile())
}

var showConfigCmd = showConfigCommand{}

func init() {
	rootCmd.AddCommand(showConfigCmd.Command())
}
