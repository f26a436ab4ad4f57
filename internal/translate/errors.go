package translate

import "fmt"

// ErrorKind classifies a ParseError.
//
// All kinds are user-input errors, never internal faults. The CLI maps
// them to exit codes and the JSON formatter serializes them by name.
type ErrorKind int

const (
	ErrNoMatch ErrorKind = iota
	ErrInvalidTime
	ErrInvalidDateList
	ErrInvalidInterval
	ErrMalformedRawCron
)

func (k ErrorKind) String() string {
	switch k {
	case ErrNoMatch:
		return "no_match"
	case ErrInvalidTime:
		return "invalid_time"
	case ErrInvalidDateList:
		return "invalid_date_list"
	case ErrInvalidInterval:
		return "invalid_interval"
	case ErrMalformedRawCron:
		return "malformed_raw_cron"
	default:
		return "unknown"
	}
}

// ParseError reports why a phrase could not be translated.
//
// Input carries the offending substring (the whole phrase for ErrNoMatch)
// so formatters can render both human and machine representations without
// re-parsing.
type ParseError struct {
	Kind   ErrorKind
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	if e.Kind == ErrNoMatch {
		return fmt.Sprintf("unsupported phrasing %q: %s", e.Input, e.Reason)
	}
	return fmt.Sprintf("%s %q: %s", e.kindLabel(), e.Input, e.Reason)
}

func (e *ParseError) kindLabel() string {
	switch e.Kind {
	case ErrInvalidTime:
		return "invalid time"
	case ErrInvalidDateList:
		return "invalid date list"
	case ErrInvalidInterval:
		return "invalid interval"
	case ErrMalformedRawCron:
		return "malformed cron expression"
	default:
		return "invalid input"
	}
}

func noMatch(phrase string) error {
	return &ParseError{
		Kind:   ErrNoMatch,
		Input:  phrase,
		Reason: "use --list-patterns to list supported shapes",
	}
}

func invalidTime(input, reason string) error {
	return &ParseError{Kind: ErrInvalidTime, Input: input, Reason: reason}
}

func invalidDateList(input, reason string) error {
	return &ParseError{Kind: ErrInvalidDateList, Input: input, Reason: reason}
}

func invalidInterval(input, reason string) error {
	return &ParseError{Kind: ErrInvalidInterval, Input: input, Reason: reason}
}

func malformedRawCron(input, reason string) error {
	return &ParseError{Kind: ErrMalformedRawCron, Input: input, Reason: reason}
}
