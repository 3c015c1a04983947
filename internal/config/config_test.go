package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	ferrors "git.home.luguber.info/inful/errmatrix/internal/foundation/errors"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "errmatrix.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_MissingOptionalFileUsesDefaults(t *testing.T) {
	cfg, warnings, err := Load(filepath.Join(t.TempDir(), "absent.yaml"), false)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
	if cfg.Output.Format != FormatHTML || cfg.Output.Dir != DefaultOutputDir {
		t.Fatalf("defaults not applied: %+v", cfg.Output)
	}
	if cfg.Run.Env["RUST_BACKTRACE"] != "0" || cfg.Run.Env["RUST_LIB_BACKTRACE"] != "0" {
		t.Fatalf("backtrace env not defaulted: %v", cfg.Run.Env)
	}
	if !cfg.FormatEnabled() || !cfg.RustcHashEnabled() {
		t.Fatalf("toggles should default to enabled")
	}
	if cfg.Project.Dependencies["anyhow"] != "1" || cfg.Project.Dependencies["color-eyre"] != "0.6" {
		t.Fatalf("dependencies = %v", cfg.Project.Dependencies)
	}
}

func TestLoad_MissingRequiredFile(t *testing.T) {
	_, _, err := Load(filepath.Join(t.TempDir(), "absent.yaml"), true)
	if !ferrors.HasCategory(err, ferrors.CategoryConfig) {
		t.Fatalf("expected config error, got %v", err)
	}
}

func TestLoad_ParsesAndExpandsEnv(t *testing.T) {
	t.Setenv("ERRMATRIX_TEST_OUT", "/srv/site")
	path := writeConfig(t, `
project:
  dir: ./build/
  keep: true
toolchain:
  format: false
run:
  env:
    RUST_BACKTRACE: "1"
    CARGO_TERM_COLOR: never
output:
  dir: ${ERRMATRIX_TEST_OUT}
  format: " MD "
  highlight_style: Monokai
normalize:
  rustc_hash: false
`)
	cfg, warnings, err := Load(path, true)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Output.Dir != "/srv/site" {
		t.Errorf("output.dir = %q", cfg.Output.Dir)
	}
	if cfg.Output.Format != FormatMarkdown {
		t.Errorf("output.format = %q", cfg.Output.Format)
	}
	if len(warnings) != 1 || !strings.Contains(warnings[0], "output.format") {
		t.Errorf("warnings = %v", warnings)
	}
	if cfg.Output.HighlightStyle != "monokai" {
		t.Errorf("highlight_style = %q", cfg.Output.HighlightStyle)
	}
	if cfg.Project.Dir != "build" || !cfg.Project.Keep {
		t.Errorf("project = %+v", cfg.Project)
	}
	if cfg.FormatEnabled() || cfg.RustcHashEnabled() {
		t.Errorf("explicit false toggles ignored")
	}
	if cfg.Run.Env["RUST_BACKTRACE"] != "1" {
		t.Errorf("configured env overwritten: %v", cfg.Run.Env)
	}
	if cfg.Run.Env["RUST_LIB_BACKTRACE"] != "0" {
		t.Errorf("missing default env key: %v", cfg.Run.Env)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "output: [unclosed\n")
	_, _, err := Load(path, true)
	if !ferrors.HasCategory(err, ferrors.CategoryConfig) {
		t.Fatalf("expected config error, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"unknown format", func(c *Config) { c.Output.Format = "pdf" }},
		{"keep without dir", func(c *Config) { c.Project.Keep = true; c.Project.Dir = "" }},
		{"package name with space", func(c *Config) { c.Project.PackageName = "my pkg" }},
		{"dependency without version", func(c *Config) { c.Project.Dependencies["serde"] = "" }},
		{"env key with equals", func(c *Config) { c.Run.Env["A=B"] = "x" }},
		{"same placeholders", func(c *Config) {
			c.Normalize.ProjectPlaceholder = "/x"
			c.Normalize.HomePlaceholder = "/x"
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := Validate(cfg)
			if !ferrors.HasCategory(err, ferrors.CategoryConfig) {
				t.Fatalf("expected config error, got %v", err)
			}
		})
	}

	if err := Validate(Default()); err != nil {
		t.Fatalf("defaults invalid: %v", err)
	}
}

func TestEnvList_Sorted(t *testing.T) {
	cfg := Default()
	cfg.Run.Env["A_FIRST"] = "1"
	got := cfg.EnvList()
	want := []string{"A_FIRST=1", "RUST_BACKTRACE=0", "RUST_LIB_BACKTRACE=0"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Fatalf("EnvList = %v, want %v", got, want)
	}
}

func TestHash_StableAndSensitive(t *testing.T) {
	a, err := Default().Hash()
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	b, _ := Default().Hash()
	if a != b || len(a) != 64 {
		t.Fatalf("hash not stable: %s vs %s", a, b)
	}
	other := Default()
	other.Output.Title = "Different"
	c, _ := other.Hash()
	if c == a {
		t.Fatalf("hash ignores title")
	}
}

func TestInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "errmatrix.yaml")
	if err := Init(path, false); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if err := Init(path, false); !ferrors.HasCategory(err, ferrors.CategoryConfig) {
		t.Fatalf("second Init should refuse, got %v", err)
	}
	if err := Init(path, true); err != nil {
		t.Fatalf("forced Init: %v", err)
	}

	cfg, _, err := Load(path, true)
	if err != nil {
		t.Fatalf("example config does not load: %v", err)
	}
	def, _ := Default().Hash()
	got, _ := cfg.Hash()
	if def != got {
		t.Fatalf("example config differs from defaults")
	}
}

