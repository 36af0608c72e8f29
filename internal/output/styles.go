package output

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette. Never use inline lipgloss.Color literals elsewhere.
var (
	// ColorCyan is used for identifiable nouns: directories, template names.
	ColorCyan = lipgloss.Color("14")

	// ColorGreen is used for success headlines.
	ColorGreen = lipgloss.Color("82")

	// ColorGreenCheck is used for the completion checkmark.
	ColorGreenCheck = lipgloss.Color("10")

	// ColorRed is used for cancellation notices.
	ColorRed = lipgloss.Color("196")

	// ColorDimGray is used for arrows and other structural chrome.
	ColorDimGray = lipgloss.Color("240")
)

// Semantic styles.
var (
	// StyleNoun styles identifiable nouns (directories, template names).
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleNounBold is StyleNoun for headline positions.
	StyleNounBold = lipgloss.NewStyle().Foreground(ColorCyan).Bold(true)

	// StyleSuccess styles the completion headline.
	StyleSuccess = lipgloss.NewStyle().Foreground(ColorGreen).Bold(true)

	// StyleDim styles structural chrome and commands in the next-steps list.
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleChrome styles arrows and separators.
	StyleChrome = lipgloss.NewStyle().Foreground(ColorDimGray)

	// StyleCancel styles cancellation notices.
	StyleCancel = lipgloss.NewStyle().Foreground(ColorRed)

	// StyleSummary styles tree roots and summary lines.
	StyleSummary = lipgloss.NewStyle().Bold(true)
)

// FormatCheckmark renders a green checkmark with a message.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	return check + " " + msg
}

// FormatCancel renders a cancellation notice.
func FormatCancel(msg string) string {
	return StyleCancel.Render("■") + "  " + msg
}

// NextStep is one shell command of the post-create instructions.
type NextStep struct {
	Command string
	Arg     string
}

// FormatSummary renders the post-create summary: a headline, the project
// directory and the commands to run next.
func FormatSummary(dir string, steps []NextStep) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(FormatCheckmark(StyleSuccess.Render("Project created successfully!")))
	b.WriteString("\n")
	b.WriteString(StyleChrome.Render("→") + " " + StyleNounBold.Render(dir))
	b.WriteString("\n\n")
	b.WriteString(StyleDim.Render("Next steps:"))
	b.WriteString("\n")

	for _, s := range steps {
		b.WriteString("  ")
		b.WriteString(StyleDim.Render(s.Command))
		if s.Arg != "" {
			b.WriteString(" ")
			b.WriteString(StyleNoun.Render(s.Arg))
		}
		b.WriteString("\n")
	}

	return b.String()
}
