package log

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
)

// Loggers discard until Initialize runs so library callers never see nil.
var (
	WarningLog = log.New(io.Discard, "", 0)
	InfoLog    = log.New(io.Discard, "", 0)
	ErrorLog   = log.New(io.Discard, "", 0)
)

var logFileName = filepath.Join(os.TempDir(), "payments-charts.log")

var globalLogFile *os.File

// Initialize should be called once at the beginning of the program to set up
// logging. When verbose is set, records are mirrored to stderr. Stdout is
// never written to since `render` streams SVG there.
func Initialize(verbose bool) {
	var out io.Writer = io.Discard

	f, err := os.OpenFile(logFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not open log file %s: %s\n", logFileName, err)
	} else {
		globalLogFile = f
		out = f
	}
	if verbose {
		out = io.MultiWriter(out, os.Stderr)
	}

	InfoLog = log.New(out, "INFO:", log.Ldate|log.Ltime|log.Lshortfile)
	WarningLog = log.New(out, "WARNING:", log.Ldate|log.Ltime|log.Lshortfile)
	ErrorLog = log.New(out, "ERROR:", log.Ldate|log.Ltime|log.Lshortfile)

	InitDebug()
}

// Close flushes the log file and the debug log.
func Close() {
	CloseDebug()
	if globalLogFile == nil {
		return
	}
	_ = globalLogFile.Close()
	globalLogFile = nil
	fmt.Fprintln(os.Stderr, "wrote logs to "+logFileName)
}

// LogFileName returns the path of the main log file.
func LogFileName() string {
	return logFileName
}
