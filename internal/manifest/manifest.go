// Package manifest records what a generation run used and produced.
package manifest

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
)

// FileName is the manifest's name inside the output directory.
const FileName = "manifest.json"

// RunManifest is a complete record of one run's inputs and outputs.
type RunManifest struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Inputs    Inputs    `json:"inputs"`
	Outputs   Outputs   `json:"outputs"`
	Status    string    `json:"status"`
	Duration  int64     `json:"duration_ms"`
}

// Inputs captures everything that determines page content.
type Inputs struct {
	Toolchain  string   `json:"toolchain"`
	ConfigHash string   `json:"config_hash"`
	Cells      []string `json:"cells"`
}

// Outputs maps each written page file to its SHA-256.
type Outputs struct {
	Format     string            `json:"format"`
	PageHashes map[string]string `json:"page_hashes"`
}

// New starts a manifest with a fresh run ID.
func New(now time.Time) *RunManifest {
	return &RunManifest{
		ID:        uuid.NewString(),
		Timestamp: now.UTC(),
		Outputs:   Outputs{PageHashes: map[string]string{}},
	}
}

// AddPage records the hash of a written page under its file name.
func (m *RunManifest) AddPage(name string, content []byte) {
	if m.Outputs.PageHashes == nil {
		m.Outputs.PageHashes = map[string]string{}
	}
	m.Outputs.PageHashes[name] = HashBytes(content)
}

// Pages lists recorded page names in sorted order.
func (m *RunManifest) Pages() []string {
	names := make([]string, 0, len(m.Outputs.PageHashes))
	for n := range m.Outputs.PageHashes {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// ToJSON serializes the manifest to JSON.
func (m *RunManifest) ToJSON() ([]byte, error) {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal manifest: %w", err)
	}
	return data, nil
}

// FromJSON deserializes a manifest from JSON.
func FromJSON(data []byte) (*RunManifest, error) {
	var m RunManifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("unmarshal manifest: %w", err)
	}
	return &m, nil
}

// ContentHash identifies the run's deterministic content: inputs and page
// hashes, excluding run ID, timestamp and duration. Two runs on the same
// toolchain and config produce the same value.
func (m *RunManifest) ContentHash() (string, error) {
	hashInput := struct {
		Inputs  Inputs  `json:"inputs"`
		Outputs Outputs `json:"outputs"`
	}{m.Inputs, m.Outputs}

	data, err := json.Marshal(hashInput)
	if err != nil {
		return "", fmt.Errorf("marshal for hash: %w", err)
	}
	return HashBytes(data), nil
}

// HashBytes returns the hex SHA-256 of data.
func HashBytes(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
