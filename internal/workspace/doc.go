// Package workspace manages the scratch directory that holds the generated
// Cargo project, in ephemeral (timestamped, removed afterwards) or persistent
// (fixed path, kept) mode.
//
// A persistent workspace lets cargo reuse its target directory between runs.
// Every run still rewrites all sources and rebuilds.
package workspace
