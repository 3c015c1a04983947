package manifest

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleManifest() *RunManifest {
	m := New(time.Date(2026, 10, 18, 12, 0, 0, 0, time.FixedZone("CEST", 2*3600)))
	m.Inputs = Inputs{
		Toolchain:  "rustc 1.79.0 (129f3b996 2024-06-10)",
		ConfigHash: "cfg",
		Cells:      []string{"io_debug", "io_display"},
	}
	m.Outputs.Format = "html"
	m.AddPage("io.html", []byte("<html>io</html>"))
	m.AddPage("panic.html", []byte("<html>panic</html>"))
	m.Status = "success"
	m.Duration = 4200
	return m
}

func TestNew(t *testing.T) {
	m := sampleManifest()
	_, err := uuid.Parse(m.ID)
	require.NoError(t, err)
	assert.Equal(t, time.UTC, m.Timestamp.Location())
	assert.Equal(t, 10, m.Timestamp.Hour())
}

func TestManifestSerialization(t *testing.T) {
	m := sampleManifest()

	data, err := m.ToJSON()
	require.NoError(t, err)

	restored, err := FromJSON(data)
	require.NoError(t, err)
	assert.Equal(t, m.ID, restored.ID)
	assert.True(t, m.Timestamp.Equal(restored.Timestamp))
	assert.Equal(t, m.Inputs, restored.Inputs)
	assert.Equal(t, m.Outputs, restored.Outputs)
	assert.Equal(t, []string{"io.html", "panic.html"}, restored.Pages())

	_, err = FromJSON([]byte("{"))
	assert.Error(t, err)
}

func TestContentHash_IgnoresRunIdentity(t *testing.T) {
	a, b := sampleManifest(), sampleManifest()
	b.Timestamp = b.Timestamp.Add(time.Hour)
	b.Duration = 1
	require.NotEqual(t, a.ID, b.ID)

	ha, err := a.ContentHash()
	require.NoError(t, err)
	hb, err := b.ContentHash()
	require.NoError(t, err)
	assert.Equal(t, ha, hb)

	b.AddPage("io.html", []byte("<html>changed</html>"))
	hc, err := b.ContentHash()
	require.NoError(t, err)
	assert.NotEqual(t, ha, hc)
}

func TestHashBytes(t *testing.T) {
	assert.Equal(t, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", HashBytes(nil))
}
