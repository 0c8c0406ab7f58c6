// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/taibuivan/lookeasy/internal/platform/apperr"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // Domain failure (validation, stock, credentials) or degraded health
	ExitCommandError = 2 // Command error (bad flags, store unreachable, corrupted data)
)

// ExitError carries the process exit code of a failed command.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates an ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps err with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode maps err onto a process exit code.
//
// STORAGE_FAILURE is a command error, every other [apperr.AppError] is a
// domain failure.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	if apperr.Is(err, apperr.CodeStorageFailure) {
		return ExitCommandError
	}
	return ExitFailure
}

// # Output

// Response is the JSON envelope of every command.
type Response struct {
	Status string         `json:"status"`
	Data   any            `json:"data,omitempty"`
	Error  *ResponseError `json:"error,omitempty"`
}

// ResponseError is the error part of a [Response].
type ResponseError struct {
	Code    string              `json:"code"`
	Message string              `json:"message"`
	Details []apperr.FieldError `json:"details,omitempty"`
}

// Formatter writes command results as JSON or as aligned text.
type Formatter struct {
	Format string
	Writer io.Writer
}

// Success writes data. In text mode render draws it onto a tab-aligned writer.
func (f *Formatter) Success(data any, render func(w io.Writer)) error {
	if f.Format == "json" {
		return encode(f.Writer, Response{Status: "ok", Data: data})
	}

	tw := tabwriter.NewWriter(f.Writer, 0, 0, 2, ' ', 0)
	render(tw)
	return tw.Flush()
}

// WriteError reports err on w in the given format.
func WriteError(w io.Writer, format string, err error) {
	re := describe(err)
	if format == "json" {
		_ = encode(w, Response{Status: "error", Error: re})
		return
	}

	fmt.Fprintf(w, "Erro [%s]: %s\n", re.Code, re.Message)
	for _, d := range re.Details {
		fmt.Fprintf(w, "  - %s: %s\n", d.Field, d.Message)
	}
}

// describe flattens err into a ResponseError. Causes of storage failures stay in the logs.
func describe(err error) *ResponseError {
	if ae := apperr.As(err); ae != nil {
		return &ResponseError{Code: ae.Code, Message: ae.Message, Details: ae.Details}
	}
	return &ResponseError{Code: "COMMAND_ERROR", Message: err.Error()}
}

func encode(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
