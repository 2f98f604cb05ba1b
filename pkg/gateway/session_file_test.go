package gateway

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionFileRoundTrip(t *testing.T) {
	sf := NewSessionFile(filepath.Join(t.TempDir(), "session.json"))

	assert.Empty(t, sf.Load(), "missing file reads as no session")

	require.NoError(t, sf.Save("0196c5a8-9999-7000-8000-aabbccddeeff"))
	assert.Equal(t, "0196c5a8-9999-7000-8000-aabbccddeeff", sf.Load())

	require.NoError(t, sf.Clear())
	assert.Empty(t, sf.Load())

	// Clearing twice is fine.
	require.NoError(t, sf.Clear())
}

func TestSessionFileToleratesGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	sf := NewSessionFile(path)
	assert.Empty(t, sf.Load())
}

func TestRecoveryLocks(t *testing.T) {
	now := time.Now()
	locks := NewRecoveryLocks()
	locks.now = func() time.Time { return now }

	assert.False(t, locks.Held("tracker-sync"))

	locks.Arm("tracker-sync", time.Minute)
	assert.True(t, locks.Held("tracker-sync"))

	// Re-arming with a shorter window never shrinks the hold.
	locks.Arm("tracker-sync", time.Second)
	now = now.Add(30 * time.Second)
	assert.True(t, locks.Held("tracker-sync"))

	now = now.Add(31 * time.Second)
	assert.False(t, locks.Held("tracker-sync"))

	locks.Arm("tracker-sync", time.Minute)
	locks.Release("tracker-sync")
	assert.False(t, locks.Held("tracker-sync"))
}
