package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuote(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"", `""`},
		{`say "hi"`, `"say \"hi\""`},
		{`C:\dir`, `"C:\\dir"`},
		{"a\nb\tc\r", `"a\nb\tc\r"`},
		{"\b\f\v", `"\b\f\v"`},
		{"bell\a nul\x00 del\x7f", `"bell\u0007 nul\u0000 del\u007f"`},
		{"line\u2028sep", `"line\u2028sep"`},
		{"tag\U000e0001", `"tag\udb40\udc01"`},
		{"héllo 世界 🙂", `"héllo 世界 🙂"`},
	}
	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, Quote(tt.in))
		})
	}
}

func TestNewStringLiteralLexeme(t *testing.T) {
	assert.Equal(t, `"bell\u0007"`, NewStringLiteral("bell\a").TokenLiteral())
}
