// Package errors provides the classified error primitives used across errmatrix.
//
// Every failure of a generation run maps onto one category: a synthesized
// program without an entry point (synthesis), a failed compile (build), an
// example writing to stdout or exiting with the wrong class (execution), or
// an expected binary, source or captured run that is absent (artifact).
// The CLI adapter turns the category into the process exit code.
//
// Example usage:
//
//	err := errors.ExecutionError("example wrote to stdout").
//		WithContext("cell", "io_unwrap").
//		WithCause(originalErr).
//		Build()
package errors
