// Package logger provides leveled logging for git-identity CLI commands.
//
// The logger supports multiple verbosity levels controlled by command-line
// flags. Output is formatted with semantic prefixes and colors.
//
// # Verbosity Levels
//
//   - --verbose: Shows info messages
//   - --debug: Shows all messages including debug details
//
// Without flags, only warnings and errors are shown.
//
// # Usage
//
// Create a logger with the desired verbosity:
//
//	log := Logger{Verbose: verbose, Debug: debug}
//	log.Infof("Activating identity %s", name)
//
// The root command creates a logger in its PersistentPreRun and the
// command handlers use it directly.
package logger
