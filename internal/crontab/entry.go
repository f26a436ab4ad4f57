package crontab

import (
	"errors"
	"strings"
)

// EnvVar is a KEY=value assignment placed above the cron entry.
type EnvVar struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// ParseEnvVar splits a raw "key=value" flag argument.
func ParseEnvVar(raw string) (EnvVar, error) {
	key, value, found := strings.Cut(raw, "=")
	if !found {
		return EnvVar{}, errors.New("expected key=value")
	}
	if strings.TrimSpace(key) == "" {
		return EnvVar{}, errors.New("environment key cannot be empty")
	}
	return EnvVar{Key: strings.TrimSpace(key), Value: strings.TrimSpace(value)}, nil
}

// Entry is one renderable crontab block.
//
// Schedule is the five-field cron expression; Command is the already-quoted
// command line. Keep it compact and schema-stable: it is serialized as-is
// into the JSON report.
type Entry struct {
	Schedule string   `json:"schedule"`
	Command  string   `json:"command"`
	Comment  string   `json:"comment,omitempty"`
	Env      []EnvVar `json:"env,omitempty"`
}

// Render produces the crontab block without a trailing newline:
// optional "# comment" first, env assignments next, the entry line last.
func (e Entry) Render() string {
	var lines []string
	if e.Comment != "" {
		lines = append(lines, "# "+e.Comment)
	}
	for _, env := range e.Env {
		lines = append(lines, env.Key+"="+env.Value)
	}
	lines = append(lines, e.Schedule+" "+e.Command)
	return strings.Join(lines, "\n")
}

// QuoteCommand joins argv segments into a single crontab-safe command
// line, quoting segments that contain shell metacharacters.
func QuoteCommand(argv []string) string {
	quoted := make([]string, 0, len(argv))
	for _, arg := range argv {
		quoted = append(quoted, quoteArg(arg))
	}
	return strings.Join(quoted, " ")
}

// quoteArg single-quotes an argument unless it is entirely shell-safe.
// Embedded single quotes use the standard '\'' dance.
func quoteArg(arg string) string {
	if arg == "" {
		return "''"
	}
	if isShellSafe(arg) {
		return arg
	}
	return "'" + strings.ReplaceAll(arg, "'", `'\''`) + "'"
}

func isShellSafe(arg string) bool {
	for _, r := range arg {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case strings.ContainsRune("@%+=:,./-_", r):
		default:
			return false
		}
	}
	return true
}
