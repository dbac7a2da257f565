package main

import (
	"errors"
	"fmt"

	vexysvgo "github.com/gwen-lg/vexy-svgo"
)

// cliUsageError marks an error that should exit 64 (invalid usage) rather
// than the generic optimization/configuration codes.
type cliUsageError struct{ error }

func usageErrorf(format string, args ...any) error {
	return cliUsageError{fmt.Errorf(format, args...)}
}

func exitCodeFor(err error) int {
	if err == nil {
		return exitOK
	}
	var usage cliUsageError
	if errors.As(err, &usage) {
		return exitUsageErr
	}
	if errors.Is(err, vexysvgo.ErrConfig) {
		return exitConfigErr
	}
	return exitOptimizeErr
}
