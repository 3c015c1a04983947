package main

import (
	"log/slog"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/errmatrix/cmd/errmatrix/commands"
	ferrors "git.home.luguber.info/inful/errmatrix/internal/foundation/errors"
	"git.home.luguber.info/inful/errmatrix/internal/version"
)

func main() {
	cli := &commands.CLI{}
	parser := kong.Parse(cli,
		kong.Name("errmatrix"),
		kong.Description("Generate Rust error-handling examples and document what each one prints."),
		kong.Vars{"version": version.String()},
		kong.UsageOnError(),
	)
	if err := parser.Run(&commands.Global{Logger: slog.Default()}, cli); err != nil {
		ferrors.NewCLIErrorAdapter(cli.Verbose, slog.Default()).HandleError(err)
	}
}
