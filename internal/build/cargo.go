package build

import (
	"bytes"

	"github.com/BurntSushi/toml"

	ferrors "git.home.luguber.info/inful/errmatrix/internal/foundation/errors"
)

// DefaultDependencies pins the crates the ErrorKinds need.
var DefaultDependencies = map[string]string{
	"anyhow":     "1",
	"color-eyre": "0.6",
}

type cargoManifest struct {
	Package      cargoPackage      `toml:"package"`
	Dependencies map[string]string `toml:"dependencies"`
}

type cargoPackage struct {
	Name    string `toml:"name"`
	Version string `toml:"version"`
	Edition string `toml:"edition"`
	Publish bool   `toml:"publish"`
}

// CargoManifest renders Cargo.toml for the scratch project.
func CargoManifest(name string, deps map[string]string) (string, error) {
	if name == "" {
		return "", ferrors.ValidationError("package name is required").Build()
	}
	if len(deps) == 0 {
		deps = DefaultDependencies
	}
	m := cargoManifest{
		Package: cargoPackage{
			Name:    name,
			Version: "0.1.0",
			Edition: "2021",
			Publish: false,
		},
		Dependencies: deps,
	}
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(m); err != nil {
		return "", ferrors.WrapError(err, ferrors.CategoryInternal, "encode Cargo.toml").Fatal().Build()
	}
	return buf.String(), nil
}
