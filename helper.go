package consolekit

import "os"

// ExitFunc is the function RunOrExit uses to terminate the process.
type ExitFunc func(int)

var osExit ExitFunc = os.Exit
var stderrWriter StdWriter = os.Stderr
var stdoutWriter StdWriter = os.Stdout

// StdWriter is the interface for the default stdout/stderr sinks.
type StdWriter interface {
	Write([]byte) (int, error)
}

// SetStderrWriter allows overriding the stderr writer for testing or custom output
func SetStderrWriter(writer StdWriter) {
	stderrWriter = writer
}

// SetStdoutWriter allows overriding the stdout writer for testing or custom output
func SetStdoutWriter(writer StdWriter) {
	stdoutWriter = writer
}

// SetExitFunc allows overriding the exit function for testing
func SetExitFunc(exitFunc ExitFunc) {
	osExit = exitFunc
}
