package errors

import (
	"fmt"
	"os"

	"github.com/julianstephens/sportlog/internal/logger"
)

// prefixed formats an error message with a consistent "Error: " prefix
func prefixed(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// prefixedf formats an error message with a consistent "Error: " prefix using a format string
func prefixedf(format string, args ...interface{}) string {
	return fmt.Sprintf("Error: "+format, args...)
}

// Fatal logs an error and exits the program with exit code 1
func Fatal(err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", prefixed(err))
		os.Exit(1)
	}
}

// Fatalf logs and formats an error message, then exits the program with exit code 1
func Fatalf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	logger.Error("Command execution failed", "error", msg)
	fmt.Fprintf(os.Stderr, "%s\n", prefixedf(format, args...))
	os.Exit(1)
}
