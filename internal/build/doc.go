// Package build turns synthesized programs into a Cargo scratch project and
// compiles every binary with a single cargo invocation.
//
// The driver writes Cargo.toml and one src/bin/{id}.rs per program, formats
// the tree best-effort, then builds all binaries. The resulting Handle
// resolves binary and source paths by program id. Sources are read back from
// disk after formatting so callers see the code that was actually compiled.
package build
