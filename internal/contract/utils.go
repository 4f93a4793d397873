package contract

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
)

// Verdict label constants. Final scores are on a 0-10 scale.
const (
	StrongValue    = "Strong"
	PromisingValue = "Promising"
	WatchValue     = "Watch"
	PassValue      = "Pass"
)

// Color variables for console output.
var (
	StrongColor    = color.New(color.FgGreen, color.Bold) // strongColor marks top-conviction deals.
	PromisingColor = color.New(color.FgCyan, color.Bold)  // promisingColor marks deals worth a partner look.
	WatchColor     = color.New(color.FgYellow)            // watchColor represents a tracking-only signal.
	PassColor      = color.New(color.FgRed)               // passColor represents a below-bar score.
)

// GetPlainLabel returns a plain text verdict label based on the repository's
// final score. This is the core logic used for CSV, JSON, and table printing.
func GetPlainLabel(score float64) string {
	switch {
	case score >= 8:
		return StrongValue
	case score >= 6:
		return PromisingValue
	case score >= 4:
		return WatchValue
	default:
		return PassValue
	}
}

// GetColorLabel returns a colored verdict label for console output (table).
// It uses GetPlainLabel to determine the string, and then applies the
// appropriate color.
func GetColorLabel(score float64) string {
	text := GetPlainLabel(score)

	switch text {
	case StrongValue:
		return StrongColor.Sprint(text)
	case PromisingValue:
		return PromisingColor.Sprint(text)
	case WatchValue:
		return WatchColor.Sprint(text)
	default: // "Pass"
		return PassColor.Sprint(text)
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. It falls back to os.Stdout when no path is given.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// GetCacheDBFilePath returns the path to the SQLite DB file for scan cache storage.
func GetCacheDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".dealflow_cache.db"
	}
	return filepath.Join(homeDir, ".dealflow_cache.db")
}

// TruncateName shortens a repository name to maxLen runes, keeping the tail
// (the org prefix is the least distinctive part of long names).
func TruncateName(name string, maxLen int) string {
	if maxLen <= 0 || len(name) <= maxLen {
		return name
	}
	if maxLen <= 3 {
		return name[len(name)-maxLen:]
	}
	return "..." + name[len(name)-(maxLen-3):]
}
