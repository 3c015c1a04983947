package frontmatter

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSerializeYAML_EmptyMap_ReturnsEmpty(t *testing.T) {
	out, err := SerializeYAML(map[string]any{})
	require.NoError(t, err)
	require.Empty(t, out)
}

func TestSerializeYAML_DeterministicOrder(t *testing.T) {
	fields := map[string]any{
		"weight": 1,
		"title":  "std::io::Error",
		"draft":  false,
		"tags":   []string{"rust", "errors"},
	}
	want := "draft: false\ntags:\n  - rust\n  - errors\ntitle: std::io::Error\nweight: 1\n"

	for range 5 {
		out, err := SerializeYAML(fields)
		require.NoError(t, err)
		require.Equal(t, want, string(out))
	}
}

func TestSerializeYAML_NestedMap_SortsKeysRecursively(t *testing.T) {
	out, err := SerializeYAML(map[string]any{
		"params": map[string]any{"toolchain": "rustc 1.79.0", "cells": 6},
	})
	require.NoError(t, err)
	require.Equal(t, "params:\n  cells: 6\n  toolchain: rustc 1.79.0\n", string(out))
}

func TestSerializeYAML_UnsupportedType(t *testing.T) {
	_, err := SerializeYAML(map[string]any{"ch": make(chan int)})
	require.Error(t, err)
}
