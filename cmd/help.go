package cmd

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const groupAnnotationKey = "group"

// groupedUsageTemplate is the cobra usage template with local flags printed
// by flagUsagesByGroup.
const groupedUsageTemplate = `Usage:{{if .Runnable}}
  {{.UseLine}}{{end}}{{if .HasAvailableSubCommands}}
  {{.CommandPath}} [command]{{end}}{{if gt (len .Aliases) 0}}

Aliases:
  {{.NameAndAliases}}{{end}}{{if .HasExample}}

Examples:
{{.Example}}{{end}}{{if .HasAvailableSubCommands}}

Available Commands:{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{end}}{{if .HasAvailableLocalFlags}}

Flags:
{{flagUsagesByGroup . | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableInheritedFlags}}

Global Flags:
{{.InheritedFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasHelpSubCommands}}

Additional help topics:{{range .Commands}}{{if .IsAdditionalHelpTopicCommand}}
  {{rpad .CommandPath .CommandPathPadding}} {{.Short}}{{end}}{{end}}{{end}}{{if .HasAvailableSubCommands}}

Use "{{.CommandPath}} [command] --help" for more information about a command.{{end}}
`

// flagUsagesByGroup prints local flags under the section named by their
// "group" annotation, sections in first-seen order. Flags without a group
// go to "Other options", except --help which joins "General options".
func flagUsagesByGroup(cmd *cobra.Command) string {
	fs := cmd.LocalFlags()
	if fs == nil || !cmd.HasAvailableLocalFlags() {
		return ""
	}

	var groupOrder []string
	groups := make(map[string][]*pflag.Flag)
	fs.VisitAll(func(f *pflag.Flag) {
		if f.Hidden {
			return
		}
		group := flagGroup(f)
		if _, seen := groups[group]; !seen {
			groupOrder = append(groupOrder, group)
		}
		groups[group] = append(groups[group], f)
	})
	if len(groupOrder) == 1 && groupOrder[0] == "Other options" {
		return fs.FlagUsages()
	}

	var buf bytes.Buffer
	for i, group := range groupOrder {
		if i > 0 {
			buf.WriteByte('\n')
		}
		fmt.Fprintf(&buf, "%s:\n", group)
		formatFlags(&buf, groups[group])
	}
	return buf.String()
}

func flagGroup(f *pflag.Flag) string {
	if g := f.Annotations[groupAnnotationKey]; len(g) > 0 {
		return g[0]
	}
	if f.Name == "help" {
		return "General options"
	}
	return "Other options"
}

// flagsWithoutEnv are not bound in viper, so no environment variable
// applies to them.
var flagsWithoutEnv = map[string]bool{
	"help":   true,
	"header": true,
}

// envName returns the environment variable viper reads for flag name.
func envName(name string) string {
	return EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(name, "-", "_"))
}

func formatFlags(buf *bytes.Buffer, flags []*pflag.Flag) {
	heads := make([]string, len(flags))
	width := 0
	for i, f := range flags {
		head := "      --" + f.Name
		if f.Shorthand != "" && f.ShorthandDeprecated == "" {
			head = fmt.Sprintf("  -%s, --%s", f.Shorthand, f.Name)
		}
		if varname, _ := pflag.UnquoteUsage(f); varname != "" {
			head += " " + varname
		}
		heads[i] = head
		if len(head) > width {
			width = len(head)
		}
	}

	for i, f := range flags {
		_, usage := pflag.UnquoteUsage(f)
		if !isZeroValue(f) {
			if f.Value.Type() == "string" {
				usage += fmt.Sprintf(" (default %q)", f.DefValue)
			} else {
				usage += fmt.Sprintf(" (default %s)", f.DefValue)
			}
		}
		if !flagsWithoutEnv[f.Name] {
			usage += fmt.Sprintf(" [$%s]", envName(f.Name))
		}
		fmt.Fprintf(buf, "%-*s   %s\n", width, heads[i], usage)
	}
}

func isZeroValue(f *pflag.Flag) bool {
	switch f.DefValue {
	case "false", "", "0", "<nil>", "[]":
		return true
	}
	return false
}

func init() {
	cobra.AddTemplateFunc("flagUsagesByGroup", flagUsagesByGroup)
}
