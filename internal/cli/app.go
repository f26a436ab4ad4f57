package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"cronspeak/internal/config"
	"cronspeak/internal/crontab"
	"cronspeak/internal/preview"
	"cronspeak/internal/translate"
	"cronspeak/pkg/logx"
)

// Exit codes. Parse failures get their own code so scripts can tell
// "bad phrase" apart from "bad invocation".
const (
	ExitOK    = 0
	ExitError = 1
	ExitParse = 2
)

// Run executes cronspeak with the given argv (program name excluded) and
// returns the process exit code. stdout carries the translation output;
// stderr carries usage, diagnostics, and error reports.
func Run(argv []string, stdout, stderr io.Writer) int {
	opts, err := parseArgs(argv, stderr)
	if err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return ExitError
	}

	cfgPath := opts.ConfigPath
	if cfgPath == "" {
		cfgPath = config.DefaultPath()
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return ExitError
	}

	level := opts.LogLevel
	if level == "" {
		level = cfg.Logging.Level
	}
	log := logx.NewConsole(level)

	paint := newStyles(colorEnabled(cfg.Output.Color, opts.NoColor))

	if opts.ListPatterns {
		printGuide(stdout, paint)
		return ExitOK
	}

	expr, desc, err := translate.Translate(opts.Expression)
	if err != nil {
		var perr *translate.ParseError
		if errors.As(err, &perr) {
			if opts.JSON {
				_ = writeJSON(stderr, newErrorReport(perr))
			} else {
				fmt.Fprintln(stderr, paint.Warn("error:"), perr)
			}
			return ExitParse
		}
		fmt.Fprintln(stderr, "error:", err)
		return ExitError
	}
	log.Debug("phrase translated",
		logx.String("phrase", opts.Expression),
		logx.String("cron", expr.String()))

	env := make([]crontab.EnvVar, 0, len(opts.Env))
	for _, raw := range opts.Env {
		pair, err := crontab.ParseEnvVar(raw)
		if err != nil {
			fmt.Fprintf(stderr, "error: invalid --env %q: %v\n", raw, err)
			return ExitError
		}
		env = append(env, pair)
	}

	entry := crontab.Entry{
		Schedule: expr.String(),
		Command:  crontab.QuoteCommand(opts.Command),
		Comment:  opts.Comment,
		Env:      env,
	}
	block := entry.Render()

	targetFile := ""
	wrote := false
	if opts.Write || opts.File != "" {
		targetFile = opts.File
		if targetFile == "" {
			targetFile = cfg.Crontab.File
		}
		if targetFile == "" {
			targetFile = crontab.Detect()
		}
		if opts.Write && !opts.DryRun {
			if err := crontab.Append(targetFile, block); err != nil {
				log.Error("append failed", logx.String("file", targetFile), logx.Err(err))
				fmt.Fprintln(stderr, "error:", err)
				return ExitError
			}
			wrote = true
			log.Info("entry written", logx.String("file", targetFile))
		}
	}

	nextCount := opts.Next
	if nextCount < 0 {
		nextCount = cfg.Output.NextRuns
	}
	nextRuns, err := preview.Next(expr, time.Now(), nextCount)
	if err != nil {
		// Well-formed but unschedulable raw expressions land here;
		// translation already succeeded, so only warn.
		log.Warn("next-run preview unavailable", logx.String("cron", expr.String()), logx.Err(err))
		nextRuns = nil
	}

	if opts.JSON {
		report := Report{
			Cron:        expr.String(),
			Fields:      expr.FieldList(),
			Description: desc,
			Entry:       entry,
			File:        targetFile,
			WroteFile:   wrote,
			DryRun:      opts.DryRun,
			NextRuns:    nextRuns,
		}
		if err := writeJSON(stdout, report); err != nil {
			fmt.Fprintln(stderr, "error:", err)
			return ExitError
		}
		return ExitOK
	}

	printSummary(stdout, paint, summary{
		opts:     opts,
		entry:    entry,
		block:    block,
		cronLine: expr.String(),
		desc:     desc,
		file:     targetFile,
		wrote:    wrote,
		nextRuns: nextRuns,
	})
	return ExitOK
}

// printGuide renders the --list-patterns table.
func printGuide(w io.Writer, paint styles) {
	fmt.Fprintln(w, paint.Accent("Supported phrasing samples:"))
	for _, p := range translate.Guide() {
		fmt.Fprintf(w, "  - %-28s %s\n", p.Shape, paint.Success("e.g. "+p.Example))
	}
}

type summary struct {
	opts     Options
	entry    crontab.Entry
	block    string
	cronLine string
	desc     string
	file     string
	wrote    bool
	nextRuns []time.Time
}

func printSummary(w io.Writer, paint styles, s summary) {
	fmt.Fprintln(w, paint.Accent("Parsed Input"))
	fmt.Fprintf(w, "  Schedule : %s  (%s)\n", paint.Success(s.cronLine), s.desc)
	fmt.Fprintf(w, "  Command  : %s\n", s.entry.Command)
	if s.entry.Comment != "" {
		fmt.Fprintf(w, "  Comment  : %s\n", s.entry.Comment)
	}
	if len(s.entry.Env) > 0 {
		pairs := make([]string, 0, len(s.entry.Env))
		for _, pair := range s.entry.Env {
			pairs = append(pairs, pair.Key+"="+pair.Value)
		}
		fmt.Fprintf(w, "  Env      : %s\n", strings.Join(pairs, ", "))
	}
	if s.file != "" {
		status := paint.Warn("skipped")
		if s.opts.DryRun {
			status = paint.Warn("dry run - not written")
		} else if s.wrote {
			status = paint.Success("written")
		}
		fmt.Fprintf(w, "  File     : %s (%s)\n", s.file, status)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, paint.Accent("Preview Output"))
	fmt.Fprintln(w, s.block)

	if len(s.nextRuns) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, paint.Accent("Next Runs"))
		for _, at := range s.nextRuns {
			fmt.Fprintf(w, "  %s\n", at.Format("2006-01-02 15:04"))
		}
	}
}
