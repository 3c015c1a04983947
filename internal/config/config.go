// Package config loads the generator's YAML configuration.
package config

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"io/fs"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	ferrors "git.home.luguber.info/inful/errmatrix/internal/foundation/errors"
)

// DefaultPath is read when no --config flag is given. Its absence is not an error.
const DefaultPath = "errmatrix.yaml"

// Config represents the application configuration.
type Config struct {
	Project   ProjectConfig   `yaml:"project"`
	Toolchain ToolchainConfig `yaml:"toolchain"`
	Run       RunConfig       `yaml:"run"`
	Output    OutputConfig    `yaml:"output"`
	Normalize NormalizeConfig `yaml:"normalize"`
	Metrics   MetricsConfig   `yaml:"metrics"`
}

// ProjectConfig describes the Cargo scratch project.
type ProjectConfig struct {
	// Dir is the workspace base for ephemeral runs, or the workspace itself when Keep is set.
	Dir          string            `yaml:"dir,omitempty"`
	Keep         bool              `yaml:"keep,omitempty"`
	PackageName  string            `yaml:"package_name"`
	Dependencies map[string]string `yaml:"dependencies"`
}

// ToolchainConfig names the external tools.
type ToolchainConfig struct {
	Cargo string `yaml:"cargo"`
	Rustc string `yaml:"rustc"`
	// Format runs `cargo fmt` before building; nil means true.
	Format *bool `yaml:"format,omitempty"`
}

// RunConfig controls how examples are executed.
type RunConfig struct {
	Env map[string]string `yaml:"env"`
}

// OutputConfig controls the rendered pages.
type OutputConfig struct {
	Dir            string `yaml:"dir"`
	Format         string `yaml:"format"`
	Title          string `yaml:"title"`
	HighlightStyle string `yaml:"highlight_style"`
}

// NormalizeConfig sets the placeholders substituted into captured output.
type NormalizeConfig struct {
	ProjectPlaceholder string `yaml:"project_placeholder"`
	HomePlaceholder    string `yaml:"home_placeholder"`
	// RustcHash rewrites toolchain commit hashes; nil means true.
	RustcHash *bool `yaml:"rustc_hash,omitempty"`
}

// MetricsConfig enables the Prometheus textfile dump.
type MetricsConfig struct {
	Textfile string `yaml:"textfile,omitempty"`
}

// Load reads configPath, expands ${VAR} references, normalizes, applies
// defaults and validates. When required is false a missing file yields the
// defaults. .env files are loaded first without overriding the environment.
func Load(configPath string, required bool) (*Config, []string, error) {
	loadEnvFiles()

	cfg := &Config{}
	data, err := os.ReadFile(configPath) // #nosec G304 -- user supplied config path
	switch {
	case err == nil:
		if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), cfg); err != nil {
			return nil, nil, ferrors.WrapError(err, ferrors.CategoryConfig, "parse configuration").
				Fatal().
				WithContext("path", configPath).
				Build()
		}
	case errors.Is(err, fs.ErrNotExist) && !required:
	case errors.Is(err, fs.ErrNotExist):
		return nil, nil, ferrors.ConfigError("configuration file not found").WithContext("path", configPath).Build()
	default:
		return nil, nil, ferrors.WrapError(err, ferrors.CategoryConfig, "read configuration").
			Fatal().
			WithContext("path", configPath).
			Build()
	}

	warnings, err := cfg.Finalize()
	if err != nil {
		return nil, nil, err
	}
	return cfg, warnings, nil
}

// Finalize normalizes, defaults and validates cfg in place. It is called by
// Load and again after command-line overrides.
func (c *Config) Finalize() ([]string, error) {
	res := Normalize(c)
	ApplyDefaults(c)
	if err := Validate(c); err != nil {
		return nil, err
	}
	return res.Warnings, nil
}

// FormatEnabled reports whether sources are run through the formatter.
func (c *Config) FormatEnabled() bool {
	return c.Toolchain.Format == nil || *c.Toolchain.Format
}

// RustcHashEnabled reports whether toolchain hashes are normalized.
func (c *Config) RustcHashEnabled() bool {
	return c.Normalize.RustcHash == nil || *c.Normalize.RustcHash
}

// EnvList renders run.env as sorted KEY=VALUE entries.
func (c *Config) EnvList() []string {
	keys := make([]string, 0, len(c.Run.Env))
	for k := range c.Run.Env {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, k+"="+c.Run.Env[k])
	}
	return out
}

// Hash is the SHA-256 of the effective configuration. yaml.v3 sorts map
// keys, so equal configurations hash equally.
func (c *Config) Hash() (string, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return "", ferrors.WrapError(err, ferrors.CategoryInternal, "marshal configuration").Fatal().Build()
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}
