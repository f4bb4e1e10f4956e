// Command scopes drives a scope tree from the command line: an interactive
// REPL and a script runner over the shell command set (let, set, global,
// get, append, push, pop, depth, dump).
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/storyfeet/scope-store/internal/shell"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "scopes",
	Short:         "Explore hierarchical binding scopes interactively",
	Long:          "Scopes drives a shared, mutable scope tree: declare bindings per frame, assign through ancestor frames, write globals at the root, and inspect the chain.",
	SilenceErrors: true,
	SilenceUsage:  true,
	// No Run — prints help by default.
}

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(replCmd)
}

var runCmd = &cobra.Command{
	Use:   "run FILE",
	Short: "Run a scope script",
	Long:  "Executes shell commands from FILE, one per line. Pass - to read from stdin.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFile(args[0], os.Stdout)
	},
}

// runFile executes the script at path against a fresh scope tree, writing
// command output to out. "-" reads the script from stdin.
func runFile(path string, out io.Writer) error {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("open script: %w", err)
		}
		defer f.Close()
		r = f
	}
	return shell.New(out).Run(r)
}
