package errors

import (
	"fmt"
	"io"
	"os"

	"github.com/julianstephens/lifedash/internal/logger"
)

const prefix = "Error: "

// Format renders err for the terminal. A nil error renders as "".
func Format(err error) string {
	if err == nil {
		return ""
	}
	return prefix + err.Error()
}

func Formatf(format string, args ...any) string {
	return prefix + fmt.Sprintf(format, args...)
}

// Print writes a formatted error to w and logs it. It reports whether
// anything was written.
func Print(w io.Writer, err error) bool {
	if err == nil {
		return false
	}
	logger.Error("command failed", "error", err)
	fmt.Fprintln(w, Format(err))
	return true
}

// Fatal prints err to stderr and exits with status 1. Nil is ignored.
func Fatal(err error) {
	if Print(os.Stderr, err) {
		os.Exit(1)
	}
}

func Fatalf(format string, args ...any) {
	Fatal(fmt.Errorf(format, args...))
}
