package cli

import (
	"encoding/json"
	"io"
	"time"

	"cronspeak/internal/crontab"
	"cronspeak/internal/translate"
)

// Report is the machine-readable result of a translation run.
// Keep it compact and schema-stable.
type Report struct {
	Cron        string        `json:"cron"`
	Fields      []string      `json:"fields"`
	Description string        `json:"description"`
	Entry       crontab.Entry `json:"entry"`
	File        string        `json:"file,omitempty"`
	WroteFile   bool          `json:"wrote_file"`
	DryRun      bool          `json:"dry_run"`
	NextRuns    []time.Time   `json:"next_runs,omitempty"`
}

// errorReport is the JSON rendering of a translation failure. It carries
// the structured kind and offending text so consumers never re-parse the
// human message.
type errorReport struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Kind   string `json:"kind"`
	Input  string `json:"input"`
	Reason string `json:"reason"`
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newErrorReport(perr *translate.ParseError) errorReport {
	return errorReport{Error: errorDetail{
		Kind:   perr.Kind.String(),
		Input:  perr.Input,
		Reason: perr.Reason,
	}}
}
