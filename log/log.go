// Package log provides the application loggers, a debug mode with render
// profiling, and trace helpers. Enable debug mode by setting WP_DEBUG=1.
package log

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
)

var (
	InfoLog    = log.New(io.Discard, "", 0)
	WarningLog = log.New(io.Discard, "", 0)
	ErrorLog   = log.New(os.Stderr, "ERROR:", log.Ldate|log.Ltime)
)

var logFileName = filepath.Join(os.TempDir(), "webpreview.log")

var globalLogFile *os.File

// LogFileName returns the path of the application log file.
func LogFileName() string {
	return logFileName
}

// Initialize opens the log file and points the package loggers at it. The
// terminal is owned by the UI, so nothing is written to stdout. Call Close
// when done.
func Initialize(quiet bool) {
	f, err := os.OpenFile(logFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		panic(fmt.Sprintf("could not open log file: %s", err))
	}

	fmtS := "%s"
	if quiet {
		fmtS = "[quiet] %s"
	}

	InfoLog = log.New(f, fmt.Sprintf(fmtS, "INFO:"), log.Ldate|log.Ltime|log.Lshortfile)
	WarningLog = log.New(f, fmt.Sprintf(fmtS, "WARNING:"), log.Ldate|log.Ltime|log.Lshortfile)
	ErrorLog = log.New(f, fmt.Sprintf(fmtS, "ERROR:"), log.Ldate|log.Ltime|log.Lshortfile)

	globalLogFile = f

	InitDebug()
}

// Close closes the log files.
func Close() {
	CloseDebug()
	if globalLogFile != nil {
		_ = globalLogFile.Close()
		globalLogFile = nil
		fmt.Println("wrote logs to " + logFileName)
	}
}
