// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package cli

import (
	"errors"

	"github.com/specialistvlad/uigraph/internal/uierr"
)

// Exit codes.
const (
	ExitFailure  = 1
	ExitUsage    = 2
	ExitNotFound = 3
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func usageError(err error) error {
	return &ExitError{Code: ExitUsage, Message: err.Error()}
}

// failure maps an operation error to its exit code.
func failure(err error) error {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return err
	}
	if errors.Is(err, uierr.ErrNotFound) {
		return &ExitError{Code: ExitNotFound, Message: err.Error()}
	}
	return &ExitError{Code: ExitFailure, Message: err.Error()}
}
