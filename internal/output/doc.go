// Package output provides structured output handling for the joist CLI.
//
// The Printer is the single way commands talk to the user. It switches
// between human-readable and JSON output based on the --json flag and
// disables lipgloss styling when the destination is not a terminal:
//
//	printer := output.NewPrinter(cmd.OutOrStdout(), jsonMode, isTTY)
//	printer.Success(map[string]any{"message": "done"})
//	printer.Error(err)
//
// In JSON mode every command emits exactly one JSON document, so agent
// callers can parse output without scraping styled text.
//
// Errors carry exit codes via ExitError:
//
//	output.ExitSuccess     // 0: success (also: run finished with per-file failures)
//	output.ExitUserError   // 1: bad arguments, invalid manifest
//	output.ExitSystemError // 2: I/O failure outside the per-file loop
//
// GetExitCode at the top of main translates the returned error into the
// process exit status.
package output
