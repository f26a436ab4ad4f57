// Package logx configures cronspeak's structured logging.
//
// This repo uses a small wrapper (logx.Logger) on top of zerolog to keep:
//   - Console output readable (short timestamp + short caller)
//   - Diagnostics on stderr, away from the translated output on stdout
package logx
