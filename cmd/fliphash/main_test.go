package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alvarorichard/fliphash/internal/digest"
)

func runCmd(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	return runCmdInput(t, "", args...)
}

func runCmdInput(t *testing.T, input string, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, strings.NewReader(input), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRunDefaultTranscript(t *testing.T) {
	code, out, _ := runCmd(t)
	require.Equal(t, 0, code)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 22)
	assert.Equal(t, "1", lines[0])
	assert.Equal(t, "1pst3R}"+strings.Repeat("$", 19), lines[1])
	assert.Equal(t, "f", lines[20])
	assert.Equal(t, "fL1pp1N_fl1pst3R}$$$$$$$$$", lines[21])
}

func TestRunVersion(t *testing.T) {
	code, out, _ := runCmd(t, "-version")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "fliphash v")

	code, out, _ = runCmd(t, "--version")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "fliphash v")
}

func TestRunHelp(t *testing.T) {
	code, out, _ := runCmd(t, "-h")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "-digests FILE")
}

func TestRunFlip(t *testing.T) {
	code, out, _ := runCmd(t, "-flip", "5", "hello-world!")
	require.Equal(t, 0, code)
	assert.Equal(t, "o r l d ! h e l l o - w\nf32fb9c8acaa53c6f1f2b1c2325188f8\n", out)

	code, out, _ = runCmd(t, "-flip", "3")
	require.Equal(t, 0, code)
	assert.Equal(t, "e _ } B r a i n d e a d { t h i s _ i s _ n o t _ t h\n540f24471938b41ae62139785efa4ae1\n", out)
}

func TestRunCustomDigests(t *testing.T) {
	path := filepath.Join(t.TempDir(), "digests.txt")
	content := "# first two steps\n91a7eff3b86a47773ff5b69fdfbb77f3\n00000000000000000000000000000000\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	code, out, _ := runCmd(t, "-digests", path)
	require.Equal(t, 0, code)
	buf := "1pst3R}" + strings.Repeat("$", 19)
	assert.Equal(t, "1\n"+buf+"\n"+buf+"\n", out)
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"missing digest file", []string{"-digests", filepath.Join(t.TempDir(), "nope.txt")}},
		{"empty buffer", []string{"-buffer", ""}},
		{"unknown flag", []string{"-nope"}},
		{"bad shift", []string{"-flip", "x"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			code, out, errOut := runCmd(t, tc.args...)
			assert.Equal(t, 1, code)
			assert.Empty(t, out)
			assert.NotEmpty(t, errOut)
		})
	}
}

func TestRunDebugKeepsStdoutClean(t *testing.T) {
	code, out, errOut := runCmd(t, "-debug", "-digests", writeDigests(t, "91a7eff3b86a47773ff5b69fdfbb77f3"))
	require.Equal(t, 0, code)
	assert.Equal(t, "1\n1pst3R}"+strings.Repeat("$", 19)+"\n", out)
	assert.Contains(t, errOut, "PERFORMANCE REPORT")
}

func writeDigests(t *testing.T, digests ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "digests.txt")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(digests, "\n")), 0o600))
	return path
}

func TestRunInteractiveFlip(t *testing.T) {
	code, out, _ := runCmdInput(t, "5\n", "-i", "hello-world!")
	require.Equal(t, 0, code)

	assert.True(t, strings.HasPrefix(out, "welcome to fliphash!\n"))
	assert.Contains(t, out, "e.g. flip(\"hello-world!\", 5) = f32fb9c8acaa53c6f1f2b1c2325188f8\n")
	assert.True(t, strings.HasSuffix(out, "o r l d ! h e l l o - w\nf32fb9c8acaa53c6f1f2b1c2325188f8\n"))
}

func TestRunInteractiveFlipIgnoresBadShift(t *testing.T) {
	code, out, _ := runCmdInput(t, "not a number\n", "-i")
	require.Equal(t, 0, code)

	// only the example flip is printed
	assert.Equal(t, 1, strings.Count(out, "f32fb9c8acaa53c6f1f2b1c2325188f8"))
	assert.NotContains(t, out, "540f24471938b41ae62139785efa4ae1")
}

func TestRunTabCandidateIsPrintedRaw(t *testing.T) {
	path := writeDigests(t, digest.MD5Hex("\tab$"))

	code, out, _ := runCmd(t, "-buffer", "ab$", "-digests", path)
	require.Equal(t, 0, code)
	assert.Equal(t, "\t\n\tab\n", out)
}
