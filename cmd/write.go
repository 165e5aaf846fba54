package cmd

import (
	"github.com/git-l10n/git-po-writer/flag"
	"github.com/git-l10n/git-po-writer/po"
	"github.com/git-l10n/git-po-writer/util"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type writeCommand struct {
	cmd *cobra.Command
}

func (v *writeCommand) Command() *cobra.Command {
	if v.cmd != nil {
		return v.cmd
	}

	v.cmd = &cobra.Command{
		Use:   "write [-o <output>] [inputfile]...",
		Short: "Write a PO file from JSON or MO catalogs",
		Long: `Read one or more catalogs (gettext JSON or compiled MO files) and write
their messages as a single PO file. The format is detected by content
(starts with '{' or '[', or the MO magic number) or by extension. Without
inputfile, a JSON catalog is read from stdin.

Messages keep the order in which they are read. A message whose msgid
appears again in a later catalog replaces the earlier one in place.

The header is built from the built-in defaults, the headers found in the
catalogs, the configuration files and --header options, in increasing
priority. Last-Translator defaults to user.name and user.email of git.

Write result to the file given by -o; use -o - or omit -o to write to stdout.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return v.Execute(args)
		},
	}

	fs := v.cmd.Flags()
	fs.SortFlags = false

	// General options
	fs.StringP("output", "o", "",
		"write output to file (use - for stdout); default is stdout")
	fs.Bool("progress", false,
		"show a progress bar on a terminal for large catalogs")
	_ = fs.SetAnnotation("output", groupAnnotationKey, []string{"General options"})
	_ = fs.SetAnnotation("progress", groupAnnotationKey, []string{"General options"})

	addHeaderFlags(v.cmd)

	v.cmd.PreRun = func(cmd *cobra.Command, args []string) {
		bindFlags(cmd, "output", "progress", "to-code", "plural-keyword")
	}
	v.cmd.SetUsageTemplate(groupedUsageTemplate)

	return v.cmd
}

// addHeaderFlags adds the options shared by the write and header commands.
func addHeaderFlags(c *cobra.Command) {
	fs := c.Flags()
	fs.StringArray("header", nil,
		"set header field as Key=Value, can be given more than once")
	fs.String("to-code", "",
		"charset of the output file, converted with iconv")
	fs.String("plural-keyword", "",
		"keyword before the plural msgid: '"+po.PluralKeyword+"' (default) or '"+po.GettextPluralKeyword+"'")
	for _, name := range []string{"header", "to-code", "plural-keyword"} {
		_ = fs.SetAnnotation(name, groupAnnotationKey, []string{"Output format"})
	}
}

// bindFlags binds the named local flags of c in viper. The write and header
// commands share option names, so binding happens when a command is run.
func bindFlags(c *cobra.Command, names ...string) {
	for _, name := range names {
		_ = viper.BindPFlag(name, c.Flags().Lookup(name))
	}
}

// writeOptions collects the options of c. The repeatable --header is read
// from the flag set as viper flattens string arrays into one string.
func writeOptions(c *cobra.Command) (util.WriteOptions, error) {
	headers, err := c.Flags().GetStringArray("header")
	if err != nil {
		return util.WriteOptions{}, err
	}
	return util.WriteOptions{
		Output:        flag.Output(),
		Headers:       headers,
		ToCode:        flag.ToCode(),
		PluralKeyword: flag.PluralKeyword(),
		Progress:      flag.Progress(),
		ConfigFile:    flag.ConfigFile(),
	}, nil
}

func (v writeCommand) Execute(args []string) error {
	inputs, err := util.ResolveInputs(args)
	if err != nil {
		return NewErrorWithUsageF("%v", err)
	}
	opts, err := writeOptions(v.cmd)
	if err != nil {
		return err
	}
	return util.CmdWrite(inputs, opts)
}

var writeCmd = writeCommand{}

func init() {
	rootCmd.AddCommand(writeCmd.Command())
}
