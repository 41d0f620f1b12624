package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

const shellHelp = `Commands: log <mood> | day [--date D] | summary [--date D] [--week]
          edit <row|id> <mood> | delete <row|id> | hide <row|id>
          export [--format f] | moods | help | exit
Rows refer to the numbers printed by the last "day".`

func newShellCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Start an interactive session sharing one in-memory mood log",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(a, cmd)
		},
	}
}

func runShell(a *app, cmd *cobra.Command) error {
	a.inShell = true
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "tmt shell – moods are kept until you exit.")
	fmt.Fprintln(out, shellHelp)

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for {
		fmt.Fprint(out, "tmt> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			break
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if fields[0] == "exit" || fields[0] == "quit" {
			break
		}

		line := newRootCmd(a)
		line.SetArgs(fields)
		line.SetIn(cmd.InOrStdin())
		line.SetOut(out)
		line.SetErr(cmd.ErrOrStderr())
		if err := line.Execute(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "error: %v\n", err)
		}
	}
	return scanner.Err()
}
