// Package cmd implements the command-line interface for stax.
package cmd

import (
	"io"
	"os"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stax-cli/stax/color"
	"github.com/stax-cli/stax/key"
	"github.com/stax-cli/stax/script"
	"github.com/stax-cli/stax/style"
)

func init() {
	rootCmd.AddCommand(evalCmd)
	evalCmd.Flags().BoolP("json", "j", false, "Format the output as a JSON document")
	evalCmd.Flags().Bool("schema", false, "Print the JSON schema of the output document and exit")
	evalCmd.SetOut(os.Stdout)
}

// evalCmd runs a stack script non-interactively.
var evalCmd = &cobra.Command{
	Use:   "eval [script...]",
	Short: "Evaluate a stack script non-interactively",
	Long: `Evaluate a semicolon- or newline-separated stack script against a fresh stack.
The script is read from the arguments, or from standard input when no arguments are given.`,
	Example: `  stax eval "push 1; push 2; list"
  echo "extend 1 2 3; repeat 2; items" | stax eval --json`,
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("schema")) {
			schema, err := script.Schema()
			handleErr(err)
			cmd.Println(string(schema))
			return
		}

		text := strings.Join(args, " ")
		if len(args) == 0 {
			raw, err := io.ReadAll(cmd.InOrStdin())
			handleErr(err)
			text = string(raw)
		}

		result, err := script.Evaluate(text)
		handleErr(err)

		asJson := lo.Must(cmd.Flags().GetBool("json")) ||
			viper.GetString(key.EvalFormat) == "json"

		if asJson {
			raw, err := script.AsJson(text, result)
			handleErr(err)
			cmd.Println(string(raw))
			return
		}

		for _, entry := range result.Transcript {
			cmd.Printf("%s %s\n",
				style.Faint("> "+entry.Input),
				style.Fg(color.Green)(entry.Output),
			)
		}
		cmd.Println(result.Stack.String())
	},
}
