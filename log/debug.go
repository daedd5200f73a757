package log

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync/atomic"
)

// DebugEnv is the environment variable that turns on debug mode.
const DebugEnv = "WP_DEBUG"

var (
	DebugEnabled bool
	DebugLog     = log.New(io.Discard, "", 0)
	debugLogFile *os.File

	// profiling turns the render profiler on without debug logging. The
	// dev-tools overlay enables it on demand.
	profiling atomic.Bool
)

var debugLogFileName = filepath.Join(os.TempDir(), "webpreview-debug.log")

// InitDebug enables debug logging when WP_DEBUG=1. Initialize calls it.
func InitDebug() {
	DebugLog = log.New(io.Discard, "", 0)
	DebugEnabled = os.Getenv(DebugEnv) == "1"
	if !DebugEnabled {
		return
	}

	f, err := os.OpenFile(debugLogFileName, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0666)
	if err != nil {
		ErrorLog.Printf("could not open debug log file: %s", err)
		return
	}
	DebugLog = log.New(f, "DEBUG:", log.Ldate|log.Ltime|log.Lmicroseconds)
	debugLogFile = f
	DebugLog.Printf("debug log: %s", debugLogFileName)
}

// CloseDebug closes the debug log file.
func CloseDebug() {
	if debugLogFile == nil {
		return
	}
	_ = debugLogFile.Close()
	debugLogFile = nil
	DebugLog = log.New(io.Discard, "", 0)
	fmt.Println("wrote debug logs to " + debugLogFileName)
}

// SetProfiling turns the render profiler on or off independently of debug mode.
func SetProfiling(enabled bool) {
	profiling.Store(enabled)
}

// ProfilingEnabled reports whether render timings are being recorded.
func ProfilingEnabled() bool {
	return DebugEnabled || profiling.Load()
}

func trace(tag, format string, v ...interface{}) {
	if !DebugEnabled || DebugLog == nil {
		return
	}
	DebugLog.Printf("["+tag+"] "+format, v...)
}

// LayoutTrace logs geometry and layout decisions.
func LayoutTrace(format string, v ...interface{}) {
	trace("LAYOUT", format, v...)
}

// RenderTrace logs render events of one component.
func RenderTrace(component, format string, v ...interface{}) {
	trace("RENDER:"+component, format, v...)
}

// InputTrace logs key and mouse routing.
func InputTrace(format string, v ...interface{}) {
	trace("INPUT", format, v...)
}
