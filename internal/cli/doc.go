// Package cli is the cronspeak command driver.
//
// It owns everything the translator core deliberately does not: flag
// parsing, config defaults, colorized text output, the JSON report, and
// writing entries through the crontab package. Exit codes: 0 on success,
// 1 for usage or I/O failures, 2 when the phrase does not translate.
package cli
