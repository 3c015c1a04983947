package config

import "path/filepath"

// Defaults.
const (
	DefaultPackageName    = "errmatrix-examples"
	DefaultCargo          = "cargo"
	DefaultRustc          = "rustc"
	DefaultOutputDir      = "docs"
	DefaultOutputFormat   = FormatHTML
	DefaultTitle          = "Rust error handling"
	DefaultHighlightStyle = "github"

	DefaultProjectPlaceholder = "<project>"
	DefaultHomePlaceholder    = "~"
)

// DefaultEnv disables backtraces so captured output is stable.
var DefaultEnv = map[string]string{
	"RUST_BACKTRACE":     "0",
	"RUST_LIB_BACKTRACE": "0",
}

// DefaultDependencies are the crates the examples use.
var DefaultDependencies = map[string]string{
	"anyhow":     "1",
	"color-eyre": "0.6",
}

// Default returns a fully defaulted configuration.
func Default() *Config {
	c := &Config{}
	ApplyDefaults(c)
	return c
}

// ApplyDefaults fills every unset field. Missing run.env keys are added
// without replacing configured values.
func ApplyDefaults(c *Config) {
	if c.Project.PackageName == "" {
		c.Project.PackageName = DefaultPackageName
	}
	if len(c.Project.Dependencies) == 0 {
		c.Project.Dependencies = copyMap(DefaultDependencies)
	}
	if c.Project.Dir != "" {
		c.Project.Dir = filepath.Clean(c.Project.Dir)
	}
	if c.Toolchain.Cargo == "" {
		c.Toolchain.Cargo = DefaultCargo
	}
	if c.Toolchain.Rustc == "" {
		c.Toolchain.Rustc = DefaultRustc
	}
	if c.Toolchain.Format == nil {
		c.Toolchain.Format = boolPtr(true)
	}
	if c.Run.Env == nil {
		c.Run.Env = map[string]string{}
	}
	for k, v := range DefaultEnv {
		if _, ok := c.Run.Env[k]; !ok {
			c.Run.Env[k] = v
		}
	}
	if c.Output.Dir == "" {
		c.Output.Dir = DefaultOutputDir
	}
	if c.Output.Format == "" {
		c.Output.Format = DefaultOutputFormat
	}
	if c.Output.Title == "" {
		c.Output.Title = DefaultTitle
	}
	if c.Output.HighlightStyle == "" {
		c.Output.HighlightStyle = DefaultHighlightStyle
	}
	if c.Normalize.ProjectPlaceholder == "" {
		c.Normalize.ProjectPlaceholder = DefaultProjectPlaceholder
	}
	if c.Normalize.HomePlaceholder == "" {
		c.Normalize.HomePlaceholder = DefaultHomePlaceholder
	}
	if c.Normalize.RustcHash == nil {
		c.Normalize.RustcHash = boolPtr(true)
	}
}

func boolPtr(v bool) *bool { return &v }

func copyMap(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
