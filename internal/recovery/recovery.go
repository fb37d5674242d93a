// Package recovery rebuilds the hidden flag one character at a time.
//
// Every step prepends a candidate code point to the current buffer, hashes
// it, and compares the result with the step's target digest. The first
// candidate that matches is kept and the buffer's last character dropped,
// so the buffer never changes length. A step with no match leaves the
// buffer as it was and the next step runs anyway.
package recovery

import (
	"fmt"
	"unicode/utf8"

	"github.com/pkg/errors"

	"github.com/alvarorichard/fliphash/internal/digest"
	"github.com/alvarorichard/fliphash/internal/util"
)

// DefaultMaxCode is the highest code point tried, inclusive.
const DefaultMaxCode rune = 128

// DefaultInitial is the known tail of the flag padded with placeholders.
const DefaultInitial = "pst3R}$$$$$$$$$$$$$$$$$$$$"

// DefaultDigests are the puzzle's targets, consumed front to back.
var DefaultDigests = []string{
	"91a7eff3b86a47773ff5b69fdfbb77f3",
	"f2ef1ecce8dae08d2c2a87126d509319",
	"1dd582a46b092569a1498b6e03118aaf",
	"a45966d55b62b59b493782164d36ca19",
	"2fe90b312749c4709a208612e95d9eeb",
	"9f1755cce355b6f999fcf550199f6c92",
	"d9346e8f38b2bc1d2db76fc8699dc258",
	"2d8010c5117c4df9f42a45c876e53eee",
	"a84988c14ee945e03dfbec391a1a0c97",
	"b06b5852e635c7b3cc4757965b54b10e",
	"81d421f3a94c41442c2fd8e02406320a",
}

// Config describes one recovery run.
type Config struct {
	Digests []string
	Initial string
	MaxCode rune
}

// DefaultConfig returns the puzzle as shipped.
func DefaultConfig() Config {
	digests := make([]string, len(DefaultDigests))
	copy(digests, DefaultDigests)
	return Config{
		Digests: digests,
		Initial: DefaultInitial,
		MaxCode: DefaultMaxCode,
	}
}

// Validate checks the config and replaces Digests with normalised copies.
func (c *Config) Validate() error {
	if c.Initial == "" {
		return errors.New("initial buffer must not be empty")
	}
	if !utf8.ValidString(c.Initial) {
		return errors.New("initial buffer is not valid UTF-8")
	}
	if c.MaxCode < 0 || c.MaxCode > utf8.MaxRune {
		return errors.Errorf("max code point %d out of range", c.MaxCode)
	}
	digests := make([]string, len(c.Digests))
	for i, d := range c.Digests {
		parsed, err := digest.Parse(d)
		if err != nil {
			return errors.Wrapf(err, "digest %d", i+1)
		}
		digests[i] = parsed
	}
	c.Digests = digests
	return nil
}

// Reporter receives progress while Run works through the digests.
type Reporter interface {
	// Found is called when step's digest matched candidate r.
	Found(step int, r rune)
	// Buffer is called after every step with the current buffer.
	Buffer(step int, buf string)
}

// Step is the outcome of one digest.
type Step struct {
	Index   int
	Target  string
	Char    rune
	Matched bool
	Buffer  string
}

// Result holds the final buffer and every step that led to it.
type Result struct {
	Final string
	Steps []Step
}

// Search returns the first code point in [0, maxCode] whose prepend to
// buffer hashes to target.
func Search(target, buffer string, maxCode rune) (rune, bool) {
	r, ok, _ := search(target, buffer, maxCode)
	return r, ok
}

func search(target, buffer string, maxCode rune) (rune, bool, int64) {
	var attempts int64
	for r := rune(0); r <= maxCode; r++ {
		attempts++
		if digest.MD5Hex(string(r)+buffer) == target {
			return r, true, attempts
		}
	}
	return 0, false, attempts
}

// Advance prepends r to buf and drops buf's last character.
func Advance(buf []rune, r rune) []rune {
	if len(buf) == 0 {
		return []rune{r}
	}
	next := make([]rune, len(buf))
	next[0] = r
	copy(next[1:], buf[:len(buf)-1])
	return next
}

// Run works through cfg.Digests in order. reporter may be nil.
func Run(cfg Config, reporter Reporter) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, errors.Wrap(err, "invalid recovery config")
	}

	timer := util.StartTimer("recovery")
	defer timer.StopAndLog()

	buf := []rune(cfg.Initial)
	result := Result{Steps: make([]Step, 0, len(cfg.Digests))}

	for i, target := range cfg.Digests {
		stepTimer := util.StartTimer("recovery step")
		r, ok, attempts := search(target, string(buf), cfg.MaxCode)
		stepTimer.Stop()
		util.PerfCount("digest attempts", attempts)

		step := Step{Index: i, Target: target}
		if ok {
			buf = Advance(buf, r)
			step.Char = r
			step.Matched = true
			util.Debug("digest matched", "step", i+1, "char", fmt.Sprintf("%q", r), "attempts", attempts)
			if reporter != nil {
				reporter.Found(i, r)
			}
		} else {
			util.Debug("no candidate matched", "step", i+1, "target", target)
		}
		step.Buffer = string(buf)
		result.Steps = append(result.Steps, step)

		if reporter != nil {
			reporter.Buffer(i, step.Buffer)
		}
	}

	result.Final = string(buf)
	return result, nil
}
