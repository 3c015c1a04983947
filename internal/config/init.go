package config

import (
	"errors"
	"io/fs"
	"os"

	ferrors "git.home.luguber.info/inful/errmatrix/internal/foundation/errors"
)

const exampleConfig = `# errmatrix configuration
project:
  # Keep the Cargo project between runs. Requires dir.
  # dir: ./build
  # keep: true
  package_name: errmatrix-examples
  dependencies:
    anyhow: "1"
    color-eyre: "0.6"

toolchain:
  cargo: cargo
  rustc: rustc
  format: true

run:
  env:
    RUST_BACKTRACE: "0"
    RUST_LIB_BACKTRACE: "0"

output:
  dir: docs
  format: html # html | markdown
  title: Rust error handling
  highlight_style: github

normalize:
  project_placeholder: "<project>"
  home_placeholder: "~"
  rustc_hash: true

# metrics:
#   textfile: ./errmatrix.prom
`

// Init writes an example configuration to path. An existing file is only
// replaced when force is set.
func Init(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return ferrors.ConfigError("configuration file already exists").
			WithContext("path", path).
			WithContext("hint", "use --force to overwrite").
			Build()
	} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return ferrors.FileSystemError("stat configuration file").WithCause(err).WithContext("path", path).Build()
	}
	if err := os.WriteFile(path, []byte(exampleConfig), 0o600); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryFileSystem, "write configuration").
			Fatal().
			WithContext("path", path).
			Build()
	}
	return nil
}
