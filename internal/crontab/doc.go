// Package crontab renders cron entries and appends them to cron files.
//
// It currently supports:
//   - Entry rendering (comment line, environment lines, schedule + command)
//   - Cron file auto-detection ($CRONTAB, the usual spool paths, ~/.crontab)
//   - Newline-safe appends (never glues onto an unterminated last line)
package crontab
