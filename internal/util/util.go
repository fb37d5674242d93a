package util

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/manifoldco/promptui"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
)

var (
	IsDebug bool

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF4757")).
			Bold(true)

	debugErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#FF4757")).
			Padding(1, 2)

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFA726")).
			Bold(true)

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF69B4")).
			Bold(true)
)

// SetDebugMode sets the debug mode, which also turns on perf tracking
func SetDebugMode(debug bool) {
	IsDebug = debug
	PerfEnabled = debug
}

// ErrorHandler returns a stylized error message
func ErrorHandler(err error) string {
	if IsDebug {
		header := errorStyle.Render("🚨 DEBUG ERROR 🔍")
		return fmt.Sprintf("%s\n%s", header, debugErrorStyle.Render(fmt.Sprintf("%+v", err)))
	}

	styledError := errorStyle.Render(fmt.Sprintf("❌ %v", err))
	styledHint := warningStyle.Render("💡 run the program with -debug to see details")
	return fmt.Sprintf("%s\n%s", styledError, styledHint)
}

// ParseShift converts user input into a rotation amount
func ParseShift(input string) (int, error) {
	input = strings.TrimSpace(input)
	n, err := strconv.Atoi(input)
	if err != nil {
		return 0, errors.Errorf("shift must be a whole number, you entered: %q", input)
	}
	return n, nil
}

// PromptShift asks how far to flip. A terminal gets a promptui prompt;
// Windows consoles and anything else get a plain line read from in.
func PromptShift(in io.Reader, out io.Writer) (int, error) {
	const label = "how much do you want to flip? (please enter a digit)"

	f, ok := in.(*os.File)
	// Use simpler input method on Windows to avoid readline ANSI issues
	if !ok || !IsTerminal(f) || runtime.GOOS == "windows" {
		return ReadShift(label, in, out)
	}

	prompt := promptui.Prompt{
		Label: promptStyle.Render("🔄 " + label),
		Stdin: f,
		Validate: func(s string) error {
			_, err := ParseShift(s)
			return err
		},
	}
	if wc, ok := out.(io.WriteCloser); ok {
		prompt.Stdout = wc
	}

	result, err := prompt.Run()
	if err != nil {
		return 0, errors.Wrap(err, "failed to read shift")
	}
	return ParseShift(result)
}

// IsTerminal reports whether w is a terminal
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// ReadShift prints label to out and reads one line from in
func ReadShift(label string, in io.Reader, out io.Writer) (int, error) {
	_, _ = fmt.Fprint(out, promptStyle.Render(label+": "))

	reader := bufio.NewReader(in)
	line, err := reader.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return 0, errors.Wrap(err, "failed to read shift")
	}
	return ParseShift(line)
}
