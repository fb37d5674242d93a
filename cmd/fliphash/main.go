package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/alvarorichard/fliphash/internal/console"
	"github.com/alvarorichard/fliphash/internal/digest"
	"github.com/alvarorichard/fliphash/internal/flip"
	"github.com/alvarorichard/fliphash/internal/recovery"
	"github.com/alvarorichard/fliphash/internal/util"
	"github.com/alvarorichard/fliphash/internal/version"
)

// decoyFlag is what -flip rotates when no text is given.
const decoyFlag = "Braindead{this_is_not_the_}"

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

type options struct {
	debug       bool
	help        bool
	version     bool
	digestsPath string
	buffer      string
	flipShift   int
	flip        bool
	interactive bool
	text        string
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("fliphash", flag.ContinueOnError)
	fs.SetOutput(stderr)

	// Define all flags in one place
	fs.BoolVar(&opts.version, "version", false, "show version information")
	fs.BoolVar(&opts.debug, "debug", false, "enable debug mode")
	fs.BoolVar(&opts.help, "help", false, "show help message")
	fs.BoolVar(&opts.help, "h", false, "show help message")
	fs.StringVar(&opts.digestsPath, "digests", "", "file with one target digest per line")
	fs.StringVar(&opts.buffer, "buffer", recovery.DefaultInitial, "initial buffer")
	fs.IntVar(&opts.flipShift, "flip", 0, "rotate text by N instead of recovering the flag")
	fs.BoolVar(&opts.interactive, "i", false, "prompt for the rotation shift")

	if err := fs.Parse(args); err != nil {
		return opts, errors.Wrap(err, "invalid arguments")
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "flip" {
			opts.flip = true
		}
	})
	if opts.interactive {
		opts.flip = true
	}
	opts.text = strings.Join(fs.Args(), " ")
	return opts, nil
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if version.HasVersionArg(args) {
		version.ShowVersion(stdout)
		return 0
	}

	opts, err := parseFlags(args, stderr)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, util.ErrorHandler(err))
		return 1
	}

	if opts.version {
		version.ShowVersion(stdout)
		return 0
	}
	if opts.help {
		util.Helper(stdout)
		return 0
	}

	util.SetDebugMode(opts.debug)
	util.InitLoggerTo(stderr)
	util.Debugf("--- fliphash v%s debug mode ---", version.Version)

	if opts.flip {
		err = runFlip(opts, stdin, stdout)
	} else {
		err = runCheck(opts, stdout)
	}
	if err != nil {
		_, _ = fmt.Fprintln(stderr, util.ErrorHandler(err))
		return 1
	}

	if util.IsDebug {
		util.GetPerfTracker().WriteReport(stderr)
	}
	return 0
}

func runCheck(opts options, stdout io.Writer) error {
	cfg := recovery.DefaultConfig()
	cfg.Initial = opts.buffer

	if opts.digestsPath != "" {
		digests, err := digest.LoadFile(opts.digestsPath)
		if err != nil {
			return errors.Wrap(err, "failed to load digests")
		}
		cfg.Digests = digests
		util.Debug("loaded digests", "path", opts.digestsPath, "count", len(digests))
	}

	res, err := recovery.Run(cfg, console.NewPrinter(stdout, flip.Placeholder))
	if err != nil {
		return err
	}

	matched := 0
	for _, step := range res.Steps {
		if step.Matched {
			matched++
		}
	}
	util.Debug("recovery finished",
		"matched", matched,
		"steps", len(res.Steps),
		"attempts", util.GetPerfTracker().GetCounter("digest attempts"),
		"final", res.Final)
	return nil
}

func runFlip(opts options, stdin io.Reader, stdout io.Writer) error {
	text := opts.text
	if text == "" {
		text = decoyFlag
	}

	shift := opts.flipShift
	if opts.interactive {
		_, _ = fmt.Fprintln(stdout, "welcome to fliphash!")
		example := flip.Flip(stdout, "hello-world!", 5)
		_, _ = fmt.Fprintf(stdout, "e.g. flip(\"hello-world!\", 5) = %s\n", example)
		n, err := util.PromptShift(stdin, stdout)
		if err != nil {
			// unreadable shifts end the session quietly
			util.Debug("ignoring shift input", "err", err)
			return nil
		}
		shift = n
	}

	_, _ = fmt.Fprintln(stdout, flip.Flip(stdout, text, shift))
	return nil
}
