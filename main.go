package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/git-l10n/git-po-writer/cmd"
)

const (
	// Program is name for this project
	Program = "git-po-writer"

	// exitUsage follows git, which exits with 129 on bad usage.
	exitUsage   = 129
	exitFailure = 1
)

func main() {
	resp := cmd.Execute()
	if resp.Err == nil {
		return
	}
	os.Exit(reportError(resp.Cmd.ErrOrStderr(), resp))
}

// reportError prints resp.Err and returns the exit status.
func reportError(errOut io.Writer, resp cmd.Response) int {
	if resp.IsUserError() {
		fmt.Fprintf(errOut, "ERROR: %s\n\n", strings.TrimSpace(resp.Err.Error()))
		fmt.Fprint(errOut, resp.Cmd.UsageString())
		return exitUsage
	}
	fmt.Fprintf(errOut, "ERROR: %s\n", resp.Err)
	// "git-po-writer write" => "write"
	subCmdPath := strings.TrimPrefix(resp.Cmd.CommandPath(), Program+" ")
	if subCmdPath == "" {
		subCmdPath = resp.Cmd.Name()
	}
	fmt.Fprintf(errOut, "ERROR: fail to execute \"%s %s\"\n", Program, subCmdPath)
	return exitFailure
}
