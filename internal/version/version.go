package version

import (
	"fmt"
	"io"
)

const (
	Version = "1.0"
)

// HasVersionArg reports whether the first argument asks for the version
func HasVersionArg(args []string) bool {
	if len(args) > 0 {
		arg := args[0]
		return arg == "--version" || arg == "-version" || arg == "-v" || arg == "--v" || arg == "version"
	}
	return false
}

func ShowVersion(w io.Writer) {
	_, _ = fmt.Fprintf(w, "fliphash v%s\n", Version)
}
