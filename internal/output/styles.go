package output

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette for all ANSI 256 colors used in the CLI.
var (
	// ColorCyan is used for identifiable nouns: directories, package names.
	ColorCyan = lipgloss.Color("14")

	// ColorGreen is used for headlines announcing progress and success.
	ColorGreen = lipgloss.Color("82")

	// ColorYellow is used for commands and options the user can type.
	ColorYellow = lipgloss.Color("220")

	// ColorRed is used for errors written to stderr.
	ColorRed = lipgloss.Color("196")

	// ColorGreenCheck is used for the step completion checkmark.
	ColorGreenCheck = lipgloss.Color("10")
)

// Semantic styles.
var (
	// StyleNoun styles identifiable nouns.
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleHeadline styles progress and success headlines.
	StyleHeadline = lipgloss.NewStyle().Foreground(ColorGreen)

	// StyleCommand styles commands, flags and anything else to type.
	StyleCommand = lipgloss.NewStyle().Foreground(ColorYellow)

	// StyleError styles error output.
	StyleError = lipgloss.NewStyle().Foreground(ColorRed)

	// StyleDim styles structural chrome.
	StyleDim = lipgloss.NewStyle().Faint(true)
)

// FormatCheckmark renders a green checkmark with a message.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	return check + " " + msg
}

// FormatCross renders a red cross with a message.
func FormatCross(msg string) string {
	cross := lipgloss.NewStyle().Foreground(ColorRed).Render("✖")
	return cross + " " + msg
}

// FormatError renders an error message for stderr.
func FormatError(msg string) string {
	return StyleError.Render(msg)
}
