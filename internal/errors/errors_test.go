package errors

import (
	"strings"
	"testing"

	"github.com/semcore-lang/semcore/pkg/ast"
)

func TestCompilerErrorFormat(t *testing.T) {
	tests := []struct {
		name        string
		pos         Position
		message     string
		source      string
		file        string
		wantContain []string
	}{
		{
			name:    "simple error with file",
			pos:     Position{Line: 1, Column: 10},
			message: "value not found: x",
			source:  "return x + 5;",
			file:    "program.ast.json",
			wantContain: []string{
				"Error in program.ast.json:1:10",
				"   1 | return x + 5;",
				"^",
				"value not found: x",
			},
		},
		{
			name:    "error without file",
			pos:     Position{Line: 5, Column: 15},
			message: "type mismatch",
			source:  "line1\nline2\nline3\nline4\nline5 with error here\nline6",
			file:    "",
			wantContain: []string{
				"Error at line 5:15",
				"   5 | line5 with error here",
				"^",
				"type mismatch",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewCompilerError(tt.pos, tt.message, tt.source, tt.file)
			got := err.Format(false)

			for _, want := range tt.wantContain {
				if !strings.Contains(got, want) {
					t.Errorf("Format() output missing expected string\nwant substring: %q\ngot:\n%s", want, got)
				}
			}
		})
	}
}

func TestCompilerErrorGetSourceLine(t *testing.T) {
	source := "line1\nline2\nline3\nline4"

	tests := []struct {
		name    string
		lineNum int
		want    string
	}{
		{"first line", 1, "line1"},
		{"middle line", 2, "line2"},
		{"last line", 4, "line4"},
		{"out of range high", 10, ""},
		{"out of range zero", 0, ""},
		{"out of range negative", -1, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewCompilerError(Position{}, "", source, "")
			if got := err.getSourceLine(tt.lineNum); got != tt.want {
				t.Errorf("getSourceLine(%d) = %q, want %q", tt.lineNum, got, tt.want)
			}
		})
	}
}

func TestCompilerErrorGetSourceContext(t *testing.T) {
	source := "line1\nline2\nline3\nline4\nline5"

	tests := []struct {
		name          string
		lineNum       int
		contextBefore int
		contextAfter  int
		want          []string
	}{
		{"middle with 1 context", 3, 1, 1, []string{"line2", "line3", "line4"}},
		{"first line with context", 1, 1, 2, []string{"line1", "line2", "line3"}},
		{"last line with context", 5, 2, 1, []string{"line3", "line4", "line5"}},
		{"no context", 3, 0, 0, []string{"line3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewCompilerError(Position{}, "", source, "")
			got := err.getSourceContext(tt.lineNum, tt.contextBefore, tt.contextAfter)

			if len(got) != len(tt.want) {
				t.Fatalf("getSourceContext() returned %d lines, want %d", len(got), len(tt.want))
			}
			for i, line := range got {
				if line != tt.want[i] {
					t.Errorf("getSourceContext() line %d = %q, want %q", i, line, tt.want[i])
				}
			}
		})
	}
}

func TestFormatErrors(t *testing.T) {
	if got := FormatErrors(nil, false); got != "" {
		t.Errorf("FormatErrors(nil) = %q, want empty string", got)
	}

	single := []*CompilerError{NewCompilerError(Position{Line: 1, Column: 5}, "syntax error", "var x", "test.json")}
	if got := FormatErrors(single, false); !strings.Contains(got, "Error in test.json:1:5") || !strings.Contains(got, "syntax error") {
		t.Errorf("FormatErrors() single = %q, missing expected content", got)
	}

	multi := []*CompilerError{
		NewCompilerError(Position{Line: 1, Column: 5}, "first error", "var x", "test.json"),
		NewCompilerError(Position{Line: 3, Column: 10}, "second error", "line1\nline2\ny := 10", "test.json"),
	}
	got := FormatErrors(multi, false)
	for _, want := range []string{"Compilation failed with 2 error(s)", "[Error 1 of 2]", "first error", "[Error 2 of 2]", "second error"} {
		if !strings.Contains(got, want) {
			t.Errorf("FormatErrors() multi missing %q, got:\n%s", want, got)
		}
	}
}

func TestCompilerErrorInterface(t *testing.T) {
	err := NewCompilerError(Position{Line: 1, Column: 5}, "test error", "var x", "test.json")
	var _ error = err
	if !strings.Contains(err.Error(), "test error") {
		t.Errorf("Error() should contain 'test error', got: %s", err.Error())
	}
}

func TestCompilerErrorFormatWithColor(t *testing.T) {
	err := NewCompilerError(Position{Line: 1, Column: 5}, "test error", "var x := 10;", "test.json")

	if colorOutput := err.Format(true); !strings.Contains(colorOutput, "\033[") {
		t.Error("Format(true) should contain ANSI color codes")
	}
	if plainOutput := err.Format(false); strings.Contains(plainOutput, "\033[") {
		t.Error("Format(false) should not contain ANSI color codes")
	}
}

func TestPositionFromIdent(t *testing.T) {
	source := "let x = 1;\nreturn x;"

	// byte index 11 is the 'r' of return, right after the newline at 10.
	pos := PositionFromIdent(ast.Ident{Line: 2, Offset: 11}, source)
	if pos.Line != 2 || pos.Column != 1 {
		t.Errorf("PositionFromIdent() = %+v, want {Line:2 Column:1}", pos)
	}

	// with no source text, Column always falls back to 1.
	pos = PositionFromIdent(ast.Ident{Line: 7, Offset: 42}, "")
	if pos.Line != 7 || pos.Column != 1 {
		t.Errorf("PositionFromIdent() with no source = %+v, want {Line:7 Column:1}", pos)
	}
}
