package cmd

import (
	"github.com/git-l10n/git-po-writer/util"
	"github.com/spf13/cobra"
)

type headerCommand struct {
	cmd *cobra.Command
}

func (v *headerCommand) Command() *cobra.Command {
	if v.cmd != nil {
		return v.cmd
	}

	v.cmd = &cobra.Command{
		Use:   "header [-o <output>]",
		Short: "Write a PO file holding only the header entry",
		Long: `Write the header entry resolved from the built-in defaults, the
configuration files and --header options. Use it to check the header
before writing catalogs, or to start an empty PO file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return v.Execute(args)
		},
	}

	fs := v.cmd.Flags()
	fs.SortFlags = false
	fs.StringP("output", "o", "",
		"write output to file (use - for stdout); default is stdout")
	_ = fs.SetAnnotation("output", groupAnnotationKey, []string{"General options"})
	addHeaderFlags(v.cmd)
	v.cmd.SetUsageTemplate(groupedUsageTemplate)
	v.cmd.PreRun = func(cmd *cobra.Command, args []string) {
		bindFlags(cmd, "output", "to-code", "plural-keyword")
	}
	return v.cmd
}

func (v headerCommand) Execute(args []string) error {
	if len(args) > 0 {
		return NewErrorWithUsage("header command takes no argument")
	}
	opts, err := writeOptions(v.cmd)
	if err != nil {
		return err
	}
	return util.CmdHeader(opts)
}

var headerCmd = headerCommand{}

func init() {
	rootCmd.AddCommand(headerCmd.Command())
}
