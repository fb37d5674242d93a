package util

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Help styles using lipgloss
var (
	lightGreen  = lipgloss.Color("#90EE90")
	gray        = lipgloss.Color("#A9A9A9")
	darkGray    = lipgloss.Color("#5A5A5A")
	brightGreen = lipgloss.Color("#00FF7F")
	blue        = lipgloss.Color("#6366F1") // matches logger prefix

	titleStyle = lipgloss.NewStyle().
			Foreground(blue).
			Bold(true).
			PaddingBottom(1).
			MarginLeft(2)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(gray).
			Italic(true).
			PaddingBottom(1).
			MarginLeft(2)

	sectionTitleStyle = lipgloss.NewStyle().
				Foreground(lightGreen).
				Bold(true).
				PaddingLeft(2)

	commandStyle = lipgloss.NewStyle().
			Foreground(brightGreen).
			Bold(true).
			PaddingLeft(4)

	parameterStyle = lipgloss.NewStyle().
			Foreground(gray).
			Italic(true)

	descriptionStyle = lipgloss.NewStyle().
				Foreground(gray).
				PaddingLeft(6).
				Width(80 - 6)

	separatorStyle = lipgloss.NewStyle().
			Foreground(darkGray)
)

// Helper writes the help message to w
func Helper(w io.Writer) {
	var help strings.Builder

	help.WriteString(titleStyle.Render("fliphash - digest puzzle solver"))
	help.WriteString("\n")
	help.WriteString(subtitleStyle.Render("Recovers the hidden flag one character at a time from known MD5 digests."))
	help.WriteString("\n\n")

	help.WriteString(separatorStyle.Render(strings.Repeat("─", 80)))
	help.WriteString("\n")
	help.WriteString(sectionTitleStyle.Render("Usage:"))
	help.WriteString("\n")
	addEntry(&help, "fliphash", "Recover the flag from the built-in digest list")
	addEntry(&help, "fliphash "+parameterStyle.Render("[options]"), "Recover with a custom digest list or starting buffer")
	addEntry(&help, "fliphash -flip N "+parameterStyle.Render("[text]"), "Rotate text right by N and print its digest")
	help.WriteString("\n")

	help.WriteString(separatorStyle.Render(strings.Repeat("─", 80)))
	help.WriteString("\n")
	help.WriteString(sectionTitleStyle.Render("Options:"))
	help.WriteString("\n")
	addEntry(&help, "-debug", "Enable debug logging and per-step timing on stderr.")
	addEntry(&help, "-help / -h", "Display this help message.")
	addEntry(&help, "-version", "Show version information.")
	addEntry(&help, "-digests FILE", "Read target digests from FILE, one per line. Lines starting with # are ignored.")
	addEntry(&help, "-buffer TEXT", "Start from TEXT instead of the built-in buffer.")
	addEntry(&help, "-flip N", "Run the rotation helper with shift N.")
	addEntry(&help, "-i", "Ask for the rotation shift interactively.")
	help.WriteString("\n")

	help.WriteString(separatorStyle.Render(strings.Repeat("─", 80)))
	help.WriteString("\n")

	_, _ = fmt.Fprint(w, help.String())
}

func addEntry(builder *strings.Builder, cmd, desc string) {
	builder.WriteString(commandStyle.Render("  " + cmd))
	builder.WriteString("\n")
	builder.WriteString(descriptionStyle.Render("    " + desc))
	builder.WriteString("\n")
}
