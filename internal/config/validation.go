package config

import (
	"strings"

	ferrors "git.home.luguber.info/inful/errmatrix/internal/foundation/errors"
)

// Validate rejects configurations the pipeline cannot run with.
func Validate(c *Config) error {
	if !formatNormalizer.IsValid(c.Output.Format) {
		return ferrors.ConfigError("invalid output.format").
			WithContext("value", c.Output.Format).
			WithContext("valid", strings.Join(formatNormalizer.ValidValues(), ",")).
			Build()
	}
	if c.Project.Keep && c.Project.Dir == "" {
		return ferrors.ConfigError("project.keep requires project.dir").Build()
	}
	if strings.ContainsAny(c.Project.PackageName, " /\\") {
		return ferrors.ConfigError("invalid project.package_name").
			WithContext("value", c.Project.PackageName).
			Build()
	}
	for name, v := range c.Project.Dependencies {
		if name == "" || v == "" {
			return ferrors.ConfigError("project.dependencies entries need a name and a version").
				WithContext("name", name).
				Build()
		}
	}
	for k := range c.Run.Env {
		if k == "" || strings.Contains(k, "=") {
			return ferrors.ConfigError("invalid run.env key").WithContext("key", k).Build()
		}
	}
	if c.Normalize.ProjectPlaceholder == c.Normalize.HomePlaceholder {
		return ferrors.ConfigError("normalize placeholders must differ").Build()
	}
	return nil
}
