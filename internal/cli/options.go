package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/pflag"
)

// Options is the parsed flag surface.
//
// Expression and Command are positional: the first argument is the
// schedule phrase, everything after it (conventionally separated with
// "--") is the command to schedule.
type Options struct {
	Expression string
	Command    []string

	Comment string
	Env     []string

	File   string
	Write  bool
	DryRun bool

	JSON         bool
	NoColor      bool
	Next         int
	ListPatterns bool

	ConfigPath string
	LogLevel   string
}

const usageText = `Translate natural language schedules into cron entries.

Usage:
  cronspeak [flags] <expression> -- <command...>
  cronspeak --list-patterns

Flags:
`

func newFlagSet(opts *Options, errOut io.Writer) *pflag.FlagSet {
	fs := pflag.NewFlagSet("cronspeak", pflag.ContinueOnError)
	fs.SetOutput(errOut)
	fs.SortFlags = false

	fs.StringVarP(&opts.Comment, "comment", "c", "", "comment placed above the cron entry")
	fs.StringArrayVar(&opts.Env, "env", nil, "key=value pair to set before the entry (repeatable)")
	fs.StringVarP(&opts.File, "file", "f", "", "cron file to append the entry to (implies --write target)")
	fs.BoolVar(&opts.Write, "write", false, "write the entry to the cron file (auto-detected unless --file is given)")
	fs.BoolVar(&opts.DryRun, "dry-run", false, "preview without writing")
	fs.BoolVar(&opts.JSON, "json", false, "emit JSON describing the entry")
	fs.BoolVar(&opts.NoColor, "no-color", false, "disable color")
	fs.IntVar(&opts.Next, "next", -1, "number of upcoming run times to preview")
	fs.BoolVar(&opts.ListPatterns, "list-patterns", false, "show phrasing patterns and quit")
	fs.StringVar(&opts.ConfigPath, "config", "", "config file (default ~/.config/cronspeak/config.yaml)")
	fs.StringVar(&opts.LogLevel, "log-level", "", "diagnostics level on stderr (trace..error)")

	fs.Usage = func() {
		fmt.Fprint(errOut, usageText)
		fmt.Fprintln(errOut, fs.FlagUsages())
	}
	return fs
}

// parseArgs parses argv (without the program name) into Options.
func parseArgs(argv []string, errOut io.Writer) (Options, error) {
	var opts Options
	fs := newFlagSet(&opts, errOut)
	if err := fs.Parse(argv); err != nil {
		return Options{}, err
	}

	rest := fs.Args()
	if len(rest) > 0 {
		opts.Expression = rest[0]
		opts.Command = rest[1:]
	}

	if opts.ListPatterns {
		return opts, nil
	}
	if opts.Expression == "" {
		fs.Usage()
		return Options{}, errors.New("an expression is required unless --list-patterns is used")
	}
	if len(opts.Command) == 0 {
		fs.Usage()
		return Options{}, errors.New("a command to schedule is required")
	}
	if opts.File != "" && !opts.Write && !opts.DryRun {
		return Options{}, errors.New("--file requires --write (or --dry-run)")
	}
	return opts, nil
}
