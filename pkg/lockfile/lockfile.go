// Package lockfile enforces single-instance operation through a PID
// file. Two relays polling the same bot token would steal each other's
// updates, so a second instance must refuse to start.
package lockfile

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"syscall"
)

// Lock is a held PID file.
type Lock struct {
	path string
}

// Acquire writes the current PID to path. If the file exists and its PID
// belongs to a live process, Acquire fails; a stale file left by a
// crashed instance is reclaimed.
func Acquire(path string) (*Lock, error) {
	if _, err := os.Stat(path); err == nil {
		pid, ok := readPID(path)
		if ok && processAlive(pid) {
			return nil, fmt.Errorf("another instance is running (pid %d, lock %s)", pid, path)
		}
		// Dead PID or unreadable file: a crashed instance left it behind.
		slog.Default().With("component", "lockfile").
			Info("reclaiming stale lock", "path", path, "stale_pid", pid)
		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to remove stale lock %s: %w", path, err)
		}
	}

	// O_EXCL closes the race between two instances starting at once.
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to create lock %s: %w", path, err)
	}
	defer f.Close()

	if _, err := fmt.Fprintf(f, "%d\n", os.Getpid()); err != nil {
		_ = os.Remove(path)
		return nil, fmt.Errorf("failed to write pid to %s: %w", path, err)
	}
	return &Lock{path: path}, nil
}

// Release removes the PID file. Safe to call on shutdown paths that may
// run twice.
func (l *Lock) Release() error {
	if l == nil {
		return nil
	}
	err := os.Remove(l.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

func readPID(path string) (int, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, false
	}
	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || pid <= 0 {
		return 0, false
	}
	return pid, true
}

// processAlive probes a PID with signal 0.
func processAlive(pid int) bool {
	proc, err := os.FindProcess(pid)
	if err != nil {
		return false
	}
	err = proc.Signal(syscall.Signal(0))
	if err == nil {
		return true
	}
	// EPERM means the process exists but belongs to another user.
	return errors.Is(err, syscall.EPERM)
}
