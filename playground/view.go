// Package playground implements the interactive terminal playground for the stack container.
package playground

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/stax-cli/stax/color"
	"github.com/stax-cli/stax/style"
	"github.com/stax-cli/stax/util"
)

// stackPanelItems is the number of items rendered in the stack panel
// before the remainder is elided.
const stackPanelItems = 8

var (
	headerStyle = style.Title
	topStyle    = style.Colored(color.New("230"), color.New("62")).Padding(0, 1)
	itemStyle   = style.New().Foreground(color.Gray).Padding(0, 1)
	inputStyle  = style.Fg(color.Cyan)
	outputStyle = style.Fg(color.Green)
	errStyle    = style.Fg(color.Red)
	hintStyle   = style.Faint
)

func renderInput(line string) string {
	return inputStyle("> " + line)
}

func renderOutput(output string) string {
	return outputStyle("  " + output)
}

func renderError(err error) string {
	return errStyle("  " + err.Error())
}

// chromeHeight is the vertical space consumed by everything except the
// transcript viewport: header, stack panel, input and hint lines.
func chromeHeight(stackPanel int) int {
	return stackPanel + 4
}

// stackPanelHeight returns the rendered height of the stack panel for
// the current stack.
func (m *model) stackPanelHeight() int {
	return util.Min(m.stack.Len(), stackPanelItems+1) + 1
}

// renderStack draws the stack top-down, the top item highlighted.
func (m *model) renderStack() string {
	if m.stack.IsEmpty() {
		return hintStyle("(empty stack)")
	}

	var lines []string
	rendered := 0
	for item := range m.stack.All() {
		if rendered == stackPanelItems {
			lines = append(lines, hintStyle("… "+util.Quantify(m.stack.Len()-rendered, "more item", "more items")))
			break
		}
		if rendered == 0 {
			lines = append(lines, topStyle.Render(item)+hintStyle(" ← top"))
		} else {
			lines = append(lines, itemStyle.Render(item))
		}
		rendered++
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m *model) syncTranscript() {
	if m.ready {
		m.transcript.SetContent(strings.Join(m.lines, "\n"))
	}
}

func (m *model) View() string {
	if !m.ready {
		return "initializing..."
	}

	hint := hintStyle("enter run · tab complete · ctrl+l clear · ctrl+c quit")
	if suggestion, ok := m.suggestion.Get(); ok {
		hint = hintStyle("tab → " + suggestion)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		headerStyle("stax playground"),
		m.renderStack(),
		m.transcript.View(),
		m.input.View(),
		hint,
	)
}
