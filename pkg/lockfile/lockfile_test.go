package lockfile

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lockPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "bot.lock")
}

func TestAcquireAndRelease(t *testing.T) {
	path := lockPath(t)

	lock, err := Acquire(path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("%d\n", os.Getpid()), string(data))

	require.NoError(t, lock.Release())
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	// Double release is fine.
	require.NoError(t, lock.Release())
}

func TestAcquire_LivePIDRejected(t *testing.T) {
	path := lockPath(t)
	// Our own PID is definitely alive.
	require.NoError(t, os.WriteFile(path, []byte(fmt.Sprintf("%d\n", os.Getpid())), 0o644))

	_, err := Acquire(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "another instance")
}

func TestAcquire_StalePIDReclaimed(t *testing.T) {
	path := lockPath(t)
	// PIDs wrap around far below this on Linux defaults.
	require.NoError(t, os.WriteFile(path, []byte("999999999\n"), 0o644))

	lock, err := Acquire(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = lock.Release() })

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("%d\n", os.Getpid()), string(data))
}

func TestAcquire_GarbageFileReclaimed(t *testing.T) {
	path := lockPath(t)
	require.NoError(t, os.WriteFile(path, []byte("not a pid"), 0o644))

	lock, err := Acquire(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = lock.Release() })

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("%d\n", os.Getpid()), string(data))
}
