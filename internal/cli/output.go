package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spektr-org/stemfolio/contact"
	"github.com/spektr-org/stemfolio/engine"
	"github.com/spektr-org/stemfolio/formula"
	"github.com/spektr-org/stemfolio/publications"
	"github.com/spektr-org/stemfolio/site"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // User error shown on the page (invalid input, missing field, bad upload)
	ExitCommandError = 2 // Command error (bad flags, unreadable config)
)

// Error codes reported in JSON output.
const (
	ErrCodeGeneric         = "E001" // Generic/unknown error
	ErrCodeInvalidDomain   = "E101" // Formula input outside its domain
	ErrCodeInvalidRange    = "E102" // Range with low > high or NaN bound
	ErrCodeColumn          = "E103" // Unknown or non-numeric column
	ErrCodeMissingField    = "E104" // Blank required contact field
	ErrCodeUnknownSubject  = "E105" // Contact subject not offered
	ErrCodeUnsupportedFile = "E106" // Upload not usable
)

// ExitError represents an error with a specific exit code.
type ExitError struct {
	Code    int    // Exit code (use ExitFailure or ExitCommandError)
	Message string // Error message
	Err     error  // Underlying error (optional)

	// Reported is set when the error was already written to the output.
	Reported bool
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

// NewExitError creates a new ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitFailure (1) if the error is not an ExitError.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// ErrorCode maps a domain error to its JSON error code.
func ErrorCode(err error) string {
	switch {
	case errors.Is(err, formula.ErrInvalidDomain), errors.Is(err, formula.ErrUnknownParam):
		return ErrCodeInvalidDomain
	case errors.Is(err, engine.ErrInvalidRange):
		return ErrCodeInvalidRange
	case errors.Is(err, engine.ErrColumnNotFound), errors.Is(err, engine.ErrColumnNotNumeric):
		return ErrCodeColumn
	case errors.Is(err, contact.ErrMissingField):
		return ErrCodeMissingField
	case errors.Is(err, contact.ErrUnknownSubject):
		return ErrCodeUnknownSubject
	case errors.Is(err, publications.ErrUnsupportedFile), errors.Is(err, publications.ErrTooLarge):
		return ErrCodeUnsupportedFile
	}
	return ErrCodeGeneric
}

// OutputFormatter writes views and errors in the configured format.
type OutputFormatter struct {
	Format    string
	Writer    io.Writer
	ErrWriter io.Writer // Separate writer for verbose/diagnostic output (defaults to Writer)
	Verbose   bool
}

// CLIResponse is the standard JSON response format for CLI output.
type CLIResponse struct {
	Status string    `json:"status"`          // "ok" or "error"
	Data   any       `json:"data,omitempty"`  // success payload
	Error  *CLIError `json:"error,omitempty"` // error details
}

// CLIError is the error structure for CLI responses.
type CLIError struct {
	Code    string `json:"code"`              // "E001", "E101", etc.
	Message string `json:"message"`           // human-readable message
	Details any    `json:"details,omitempty"` // additional context
}

// Render writes a page. A view carrying a user error is written in full and
// then reported as an ExitError with ExitFailure.
func (f *OutputFormatter) Render(v *site.View) error {
	var err error
	switch f.Format {
	case "json":
		resp := CLIResponse{Status: "ok", Data: v}
		if v.Err != nil {
			resp.Status = "error"
			resp.Error = &CLIError{Code: ErrorCode(v.Err), Message: v.Err.Error()}
		}
		err = f.encode(resp)
	case "csv":
		err = writeCSV(f.Writer, v)
	default:
		err = writeText(f.Writer, v)
	}
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to write output", err)
	}

	if v.Err != nil {
		f.VerboseLog("page error: %v", v.Err)
		return &ExitError{Code: ExitFailure, Message: v.Title, Err: v.Err, Reported: true}
	}
	return nil
}

// Error outputs an error in the configured format.
func (f *OutputFormatter) Error(code, message string, details any) error {
	if f.Format == "json" {
		return f.encode(CLIResponse{
			Status: "error",
			Error: &CLIError{
				Code:    code,
				Message: message,
				Details: details,
			},
		})
	}

	fmt.Fprintf(f.Writer, "Error [%s]: %s\n", code, message)
	if f.Verbose && details != nil {
		fmt.Fprintf(f.Writer, "Details: %v\n", details)
	}
	return nil
}

// Reject writes a command error through Error and returns it as an
// ExitError that is already reported.
func (f *OutputFormatter) Reject(code, message string, err error) error {
	if werr := f.Error(code, fmt.Sprintf("%s: %v", message, err), nil); werr != nil {
		return WrapExitError(ExitCommandError, "failed to write output", werr)
	}
	return &ExitError{Code: ExitCommandError, Message: message, Err: err, Reported: true}
}

func (f *OutputFormatter) encode(v any) error {
	enc := json.NewEncoder(f.Writer)
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// VerboseLog outputs a message only if verbose mode is enabled.
// Uses ErrWriter if set, otherwise falls back to Writer.
func (f *OutputFormatter) VerboseLog(format string, args ...any) {
	if !f.Verbose {
		return
	}
	fmt.Fprintf(f.GetErrWriter(), format+"\n", args...)
}

// GetErrWriter returns the appropriate writer for diagnostic output.
func (f *OutputFormatter) GetErrWriter() io.Writer {
	if f.ErrWriter != nil {
		return f.ErrWriter
	}
	return f.Writer
}
