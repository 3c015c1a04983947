package errors

import (
	"fmt"
	"log/slog"
	"testing"
)

func TestCLIErrorAdapter_ExitCodeFor(t *testing.T) {
	adapter := NewCLIErrorAdapter(false, slog.Default())

	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "nil error", err: nil, expected: 0},
		{name: "validation", err: ValidationError("unknown cell").Build(), expected: 2},
		{name: "config", err: ConfigError("bad config").Build(), expected: 7},
		{name: "synthesis", err: SynthesisError("no entry point").Build(), expected: 10},
		{name: "build", err: BuildError("cargo build failed").Build(), expected: 11},
		{name: "execution", err: ExecutionError("stdout not empty").Build(), expected: 12},
		{name: "artifact", err: ArtifactError("binary missing").Build(), expected: 13},
		{name: "render", err: RenderError("template failed").Build(), expected: 14},
		{
			name:     "wrapped classified error",
			err:      fmt.Errorf("stage execute: %w", ExecutionError("stdout not empty").Build()),
			expected: 12,
		},
		{name: "unclassified error", err: &customError{msg: "unknown error"}, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := adapter.ExitCodeFor(tt.err)
			if got != tt.expected {
				t.Errorf("ExitCodeFor() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestCLIErrorAdapter_FormatError(t *testing.T) {
	adapter := NewCLIErrorAdapter(false, slog.Default())

	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil error", err: nil, want: ""},
		{
			name: "classified error names category and cell",
			err:  ExecutionError("example wrote to stdout").WithContext("cell", "io_debug").Build(),
			want: "Error [execution]: example wrote to stdout (cell=io_debug)",
		},
		{
			name: "unclassified error",
			err:  &customError{msg: "unknown error"},
			want: "Error: unknown error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := adapter.FormatError(tt.err); got != tt.want {
				t.Errorf("FormatError() = %q, want %q", got, tt.want)
			}
		})
	}
}

type customError struct {
	msg string
}

func (e *customError) Error() string {
	return e.msg
}
