// Package normalize removes host-specific details from captured output so
// that generated pages are identical across machines.
package normalize

import (
	"path/filepath"
	"regexp"
	"strings"

	"git.home.luguber.info/inful/errmatrix/internal/capture"
	ferrors "git.home.luguber.info/inful/errmatrix/internal/foundation/errors"
)

// Default placeholders.
const (
	DefaultProjectPlaceholder = "<project>"
	DefaultHomePlaceholder    = "~"
	HashPlaceholder           = "<hash>"
)

var rustcHash = regexp.MustCompile(`(/rustc/)[0-9a-f]{40}/`)

// Rule replaces every occurrence of Source with Placeholder.
type Rule struct {
	Name        string
	Source      string
	Placeholder string
}

// Options configures ForHost.
type Options struct {
	ProjectDir         string
	HomeDir            string
	ProjectPlaceholder string
	HomePlaceholder    string
	// RustcHash rewrites toolchain commit hashes in standard library paths.
	RustcHash bool
}

// Normalizer applies an ordered rule set in a single pass. Earlier rules win
// where sources overlap at the same position.
type Normalizer struct {
	rules     []Rule
	replacer  *strings.Replacer
	rustcHash bool
}

// New validates rules and builds a Normalizer. Rules with an empty Source, or
// whose Source already equals the Placeholder, are skipped. A rule set in which a placeholder could reintroduce any source is
// rejected, so Normalize is idempotent.
func New(rules []Rule, rewriteRustcHash bool) (*Normalizer, error) {
	active := make([]Rule, 0, len(rules))
	for _, r := range rules {
		if r.Source == "" || r.Source == r.Placeholder {
			continue
		}
		if strings.Trim(r.Source, `/\`) == "" {
			return nil, ferrors.ConfigError("normalization source is a filesystem root").
				WithContext("rule", r.Name).
				Build()
		}
		active = append(active, r)
	}

	placeholders := make([]string, 0, len(active)+1)
	for _, r := range active {
		placeholders = append(placeholders, r.Placeholder)
	}
	if rewriteRustcHash {
		placeholders = append(placeholders, HashPlaceholder)
	}
	for _, r := range active {
		for _, p := range placeholders {
			if overlaps(r.Source, p) {
				return nil, ferrors.ConfigError("normalization placeholder overlaps a source").
					WithContext("rule", r.Name).
					WithContext("source", r.Source).
					WithContext("placeholder", p).
					Build()
			}
		}
	}
	for _, p := range placeholders {
		if rewriteRustcHash && rustcHash.MatchString(p) {
			return nil, ferrors.ConfigError("normalization placeholder contains a toolchain hash").
				WithContext("placeholder", p).
				Build()
		}
	}

	pairs := make([]string, 0, 2*len(active))
	for _, r := range active {
		pairs = append(pairs, r.Source, r.Placeholder)
	}
	return &Normalizer{
		rules:     active,
		replacer:  strings.NewReplacer(pairs...),
		rustcHash: rewriteRustcHash,
	}, nil
}

// ForHost builds the standard rule set: the scratch project path first, then
// the home directory.
func ForHost(opts Options) (*Normalizer, error) {
	if opts.ProjectPlaceholder == "" {
		opts.ProjectPlaceholder = DefaultProjectPlaceholder
	}
	if opts.HomePlaceholder == "" {
		opts.HomePlaceholder = DefaultHomePlaceholder
	}
	return New([]Rule{
		{Name: "project", Source: cleanDir(opts.ProjectDir), Placeholder: opts.ProjectPlaceholder},
		{Name: "home", Source: cleanDir(opts.HomeDir), Placeholder: opts.HomePlaceholder},
	}, opts.RustcHash)
}

// Rules returns the active rules in priority order.
func (n *Normalizer) Rules() []Rule {
	out := make([]Rule, len(n.rules))
	copy(out, n.rules)
	return out
}

// Normalize rewrites raw. Text that matches no rule is left untouched.
func (n *Normalizer) Normalize(raw string) string {
	out := n.replacer.Replace(raw)
	if n.rustcHash {
		out = rustcHash.ReplaceAllString(out, "${1}"+HashPlaceholder+"/")
	}
	return out
}

// Apply returns run with its stderr normalized.
func (n *Normalizer) Apply(run capture.CapturedRun) capture.CapturedRun {
	run.Stderr = n.Normalize(run.Stderr)
	return run
}

// overlaps reports whether placeholder text could form an occurrence of
// source next to surrounding text: either contains the other, or a proper
// suffix of one is a prefix of the other.
func overlaps(source, placeholder string) bool {
	if placeholder == "" {
		return false
	}
	if strings.Contains(placeholder, source) || strings.Contains(source, placeholder) {
		return true
	}
	for i := 1; i < len(placeholder); i++ {
		if strings.HasPrefix(source, placeholder[i:]) {
			return true
		}
	}
	for i := 1; i < len(placeholder); i++ {
		if strings.HasSuffix(source, placeholder[:i]) {
			return true
		}
	}
	return false
}

func cleanDir(dir string) string {
	if dir == "" {
		return ""
	}
	return filepath.Clean(dir)
}
