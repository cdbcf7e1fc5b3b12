// Package diagnostics defines the coded errors reported by the transformation stages.
package diagnostics

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/ts-plus/typescript-sub002/internal/token"
)

type ErrorCode string

const (
	// Transformation errors
	ErrT001 ErrorCode = "T001" // no import path mapping for a declaring file
	ErrT002 ErrorCode = "T002" // no export name for an operator extension
	ErrT003 ErrorCode = "T003" // fluent call without a fluent signature
	ErrT004 ErrorCode = "T004" // import ledger refcount invariant

	// Configuration errors
	ErrC001 ErrorCode = "C001" // config could not be loaded
	ErrC002 ErrorCode = "C002" // config is invalid
)

var errorMessages = map[ErrorCode]string{
	ErrT001: "cannot get import path for file %s, make sure to add it in your tsplus.config.json",
	ErrT002: "cannot find export name for operator extension %s",
	ErrT003: "cannot find fluent signature for call to %s",
	ErrT004: "import ledger invariant violated: %s",
	ErrC001: "cannot load config: %s",
	ErrC002: "invalid config: %s",
}

// DiagnosticError is an error tied to a source position.
type DiagnosticError struct {
	Code    ErrorCode
	Token   token.Token
	File    string
	Message string
	cause   error
}

// NewError formats the message registered for code with args.
func NewError(code ErrorCode, tok token.Token, args ...interface{}) *DiagnosticError {
	msg, ok := errorMessages[code]
	if !ok {
		msg = "%v"
	}
	return &DiagnosticError{Code: code, Token: tok, Message: fmt.Sprintf(msg, args...)}
}

// NewInvariantError is NewError with a stack-carrying cause attached. Invariant
// violations point at a disagreement between the resolver and the rewriter, so the
// stack is kept for whoever has to debug it.
func NewInvariantError(code ErrorCode, tok token.Token, args ...interface{}) *DiagnosticError {
	d := NewError(code, tok, args...)
	d.cause = errors.WithStack(errors.New(d.Message))
	return d
}

// WithFile returns d annotated with the file it was reported for.
func (d *DiagnosticError) WithFile(file string) *DiagnosticError {
	d.File = file
	return d
}

func (d *DiagnosticError) Error() string {
	loc := d.File
	if d.Token.HasPosition() {
		loc = fmt.Sprintf("%s:%d:%d", d.File, d.Token.Line, d.Token.Column)
	}
	if loc == "" {
		return fmt.Sprintf("error [%s]: %s", d.Code, d.Message)
	}
	return fmt.Sprintf("%s: error [%s]: %s", loc, d.Code, d.Message)
}

// Cause returns the underlying error, if any. It makes the diagnostic work with
// errors.Cause and %+v stack formatting.
func (d *DiagnosticError) Cause() error {
	return d.cause
}

func (d *DiagnosticError) Unwrap() error {
	return d.cause
}

// Wrap reports err under code, keeping err as the cause.
func Wrap(code ErrorCode, err error) *DiagnosticError {
	d := NewError(code, token.Token{}, err.Error())
	d.cause = err
	return d
}
