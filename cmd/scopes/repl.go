package main

import (
	"fmt"
	"io"
	"os"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/storyfeet/scope-store/internal/shell"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Interactive scope shell",
	Long:  "Reads shell commands line by line. The prompt shows the current frame depth. Control-C clears the line; Control-D exits.",
	Args:  cobra.NoArgs,
	RunE:  runREPL,
}

func runREPL(cmd *cobra.Command, args []string) error {
	rl, err := readline.New("scopes:0> ")
	if err != nil {
		return fmt.Errorf("readline: %w", err)
	}
	defer rl.Close()

	sh := shell.New(os.Stdout)
	for {
		rl.SetPrompt(fmt.Sprintf("scopes:%d> ", sh.Depth()))
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		// Command failures are reported and the loop continues; only
		// readline itself can end the session.
		if err := sh.Eval(line); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}
}
