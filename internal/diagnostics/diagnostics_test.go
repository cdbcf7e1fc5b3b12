package diagnostics

import (
	"fmt"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/ts-plus/typescript-sub002/internal/token"
)

func TestErrorFormatting(t *testing.T) {
	tests := []struct {
		name     string
		err      *DiagnosticError
		expected string
	}{
		{
			"position",
			NewError(ErrT001, token.Token{Line: 3, Column: 7}, "lib/a.ts").WithFile("src/main.ts"),
			"src/main.ts:3:7: error [T001]: cannot get import path for file lib/a.ts, make sure to add it in your tsplus.config.json",
		},
		{
			"file only",
			NewError(ErrC002, token.Token{}, "empty pattern").WithFile("tsplus.config.json"),
			"tsplus.config.json: error [C002]: invalid config: empty pattern",
		},
		{
			"nowhere",
			NewError(ErrT003, token.Synthetic("("), "map"),
			"error [T003]: cannot find fluent signature for call to map",
		},
		{
			"unknown code",
			NewError(ErrorCode("X999"), token.Token{}, "raw"),
			"error [X999]: raw",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestInvariantErrorCarriesStack(t *testing.T) {
	d := NewInvariantError(ErrT004, token.Token{}, "import x retracted below zero")
	assert.NotNil(t, d.Cause())
	assert.Contains(t, fmt.Sprintf("%+v", d.Cause()), "TestInvariantErrorCarriesStack")
	assert.Nil(t, NewError(ErrT004, token.Token{}, "x").Cause())
}

func TestWrapKeepsCause(t *testing.T) {
	reset := errors.New("connection reset")
	d := Wrap(ErrC001, errors.Wrap(reset, "reading mem://x"))

	assert.Equal(t, ErrC001, d.Code)
	assert.Equal(t, "cannot load config: reading mem://x: connection reset", d.Message)
	assert.Equal(t, reset, errors.Cause(d))
	assert.True(t, errors.Is(d, reset))

	var target *DiagnosticError
	assert.True(t, errors.As(fmt.Errorf("stage: %w", d), &target))
	assert.Same(t, d, target)
}
