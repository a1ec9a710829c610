// Package cmd implements the command-line interface for stax.
package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	"github.com/spf13/cobra"
	"github.com/stax-cli/stax/color"
	"github.com/stax-cli/stax/icon"
	"github.com/stax-cli/stax/selftest"
	"github.com/stax-cli/stax/style"
	"github.com/stax-cli/stax/util"
)

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().BoolP("quiet", "q", false, "Report only the summary and any failures")
	checkCmd.SetOut(os.Stdout)
}

// checkCmd runs the container's self-test battery and renders a report.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Run the stack self-test battery",
	Long:  "Exercise every operation of the stack container and report per-check pass/fail results.",
	Run: func(cmd *cobra.Command, args []string) {
		quiet, _ := cmd.Flags().GetBool("quiet")

		width := 80
		if w, _, err := util.TerminalSize(); err == nil {
			width = util.Min(w, 100)
		}

		report := selftest.RunAll()

		for _, res := range report.Results {
			if res.Err == nil {
				if !quiet {
					cmd.Printf("%s %s\n", style.Fg(color.Green)(icon.Get(icon.Success)), res.Name)
				}
				continue
			}

			cmd.Printf("%s %s\n", style.Fg(color.Red)(icon.Get(icon.Fail)), style.Bold(res.Name))
			cmd.Println(style.Faint(wordwrap.String("  "+res.Err.Error(), width)))
		}

		cmd.Println(renderSummary(report, width))

		if !report.Ok() {
			os.Exit(1)
		}
	},
}

// renderSummary draws the pass/fail totals in a bordered box.
func renderSummary(report selftest.Report, width int) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 2).
		Margin(1, 0)

	if report.Ok() {
		box = box.BorderForeground(color.Green)
		return box.Render(fmt.Sprintf(
			"%s All %s passed",
			icon.Get(icon.Success),
			util.Quantify(report.Passed(), "check", "checks"),
		))
	}

	box = box.BorderForeground(color.HiRed)
	body := fmt.Sprintf(
		"%s %s failed (%d passed)",
		icon.Get(icon.Fail),
		util.Quantify(report.Failed(), "check", "checks"),
		report.Passed(),
	)
	return box.Render(wordwrap.String(body, width-6))
}
