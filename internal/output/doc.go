// Package output provides structured output and error handling for the
// daybook CLI.
//
// This package handles both human-readable and JSON output formats, so every
// command works equally well on a terminal and in a pipeline.
//
// # Printer
//
// The Printer is the primary interface for command output. It automatically
// handles format switching based on the --json flag and TTY detection:
//
//	printer := output.NewPrinter(cmd.OutOrStdout(), jsonMode, output.IsTTY(cmd.OutOrStdout()))
//
//	// For success output
//	printer.Success(map[string]any{"message": "entry added to journal"})
//
//	// For error output
//	printer.Error(err)
//
//	// For raw output
//	printer.Println("Some text")
//	printer.Print("Formatted: %s\n", value)
//
// # JSON Mode
//
// When JSON mode is enabled (via --json flag), all output is structured:
//
//	// Success: {"message": "...", ...}
//	// Error: {"error": "message", "code": N}
//
// # Exit Codes
//
// The package defines standard exit codes and error types:
//
//	output.ExitSuccess     // 0: Success
//	output.ExitUserError   // 1: User error (bad args, unknown export format)
//	output.ExitSystemError // 2: System error (I/O failure)
//	output.ExitConflict    // 3: Conflict (journal state mismatch)
//
// # Error Types
//
// Use the error constructors to create properly-coded errors:
//
//	output.NewUserError("can't export to \"pdf\"")
//	output.NewSystemError("writing journal file failed")
//	output.NewConflictError("journal changed on disk")
//
// These errors carry exit codes that are used for both JSON error output
// and process exit codes.
//
// # Styling
//
// For human-readable output, the package provides lipgloss-based styling
// that automatically disables when output is piped.
package output
