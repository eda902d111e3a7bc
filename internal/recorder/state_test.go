package recorder

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "state.json")

	sf, err := NewStateFile(path)
	require.NoError(t, err)
	assert.Empty(t, sf.LastDeviceID())

	require.NoError(t, sf.SetLastDevice("AA:BB:CC", "GoCube_1234"))

	reloaded, err := NewStateFile(path)
	require.NoError(t, err)
	assert.Equal(t, "AA:BB:CC", reloaded.LastDeviceID())
	assert.Equal(t, "GoCube_1234", reloaded.State().LastDeviceName)
}

func TestStateFileCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := NewStateFile(path)
	assert.Error(t, err)
}
