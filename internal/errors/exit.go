package errors

import (
	"errors"
)

// ExitCode maps any error to the process exit code a command should
// terminate with. A nil error exits 0, a structured error exits by its
// code, and anything else is treated as internal.
func ExitCode(err error) int {
	if err == nil {
		return CodeOK.ExitCode()
	}

	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Code.ExitCode()
	}

	return CodeInternal.ExitCode()
}
