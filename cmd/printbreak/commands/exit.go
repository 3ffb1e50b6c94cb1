package commands

import (
	"fmt"
	"sort"
	"strings"

	"github.com/arthur-debert/printbreak/pkg/errors"
)

// Exit codes follow sysexits.h where one fits.
const (
	ExitFailure = 1
	ExitUsage   = 64
	ExitNoInput = 66
	ExitIOError = 74
	ExitConfig  = 78
)

// ExitCode maps an error from Execute to a process exit status.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	switch errors.GetErrorCode(err) {
	case errors.ErrInvalidInput:
		return ExitUsage
	case errors.ErrInputRead:
		return ExitNoInput
	case errors.ErrOutputWrite:
		return ExitIOError
	case errors.ErrConfigLoad, errors.ErrConfigParse:
		return ExitConfig
	default:
		return ExitFailure
	}
}

// ErrorMessage formats err for the terminal, listing its details.
func ErrorMessage(err error) string {
	msg := fmt.Sprintf("Error: %v", err)
	details := errors.GetErrorDetails(err)
	if len(details) == 0 {
		return msg
	}
	keys := make([]string, 0, len(details))
	for k := range details {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s=%v", k, details[k])
	}
	return msg + " (" + strings.Join(parts, ", ") + ")"
}
