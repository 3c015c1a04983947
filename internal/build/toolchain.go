package build

import (
	"context"
	"strings"

	ferrors "git.home.luguber.info/inful/errmatrix/internal/foundation/errors"
	"git.home.luguber.info/inful/errmatrix/internal/runner"
)

// Toolchain queries the compiler for the version string shown on pages.
type Toolchain struct {
	Rustc  string
	runner runner.Runner
}

// NewToolchain returns a Toolchain. An empty rustc defaults to "rustc".
func NewToolchain(r runner.Runner, rustc string) *Toolchain {
	if rustc == "" {
		rustc = "rustc"
	}
	return &Toolchain{Rustc: rustc, runner: r}
}

// Version returns the trimmed first line of `rustc --version`.
func (t *Toolchain) Version(ctx context.Context) (string, error) {
	cmd := runner.Command{Path: t.Rustc, Args: []string{"--version"}}
	res, err := t.runner.Run(ctx, cmd)
	if err != nil {
		return "", ferrors.WrapError(err, ferrors.CategoryBuild, "query toolchain version").
			Fatal().
			WithContext("command", cmd.String()).
			Build()
	}
	if res.ExitCode != 0 {
		return "", ferrors.BuildError("toolchain version query failed").
			WithContext("command", cmd.String()).
			WithContext("exit_code", res.ExitCode).
			WithContext("stderr", string(res.Stderr)).
			Build()
	}
	line, _, _ := strings.Cut(strings.TrimSpace(string(res.Stdout)), "\n")
	if line == "" {
		return "", ferrors.BuildError("toolchain reported an empty version").
			WithContext("command", cmd.String()).
			Build()
	}
	return line, nil
}
