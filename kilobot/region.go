package kilobot

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"
)

// shmDir is where named POSIX shared memory objects live on Linux.
const shmDir = "/dev/shm"

// RegionKey derives the name of the shared memory object for one robot. The
// parent process identity makes the key unique across simulator runs, the
// robot identity across sibling robots of the same run.
func RegionKey(parentPID int, robotID string) string {
	return fmt.Sprintf("%d_%s", parentPID, robotID)
}

// A Region is a named shared memory object mapped into the simulator's
// address space. It holds exactly one encoded RobotState and is shared with
// the robot's behavior process.
type Region struct {
	key  string
	file *os.File
	data []byte
}

// CreateRegion allocates the named shared memory object, sizes it to hold a
// RobotState, maps it read-write, and zero-fills it. The object is removed
// again by Destroy.
func CreateRegion(key string) (*Region, error) {
	r := &Region{key: key}

	f, err := os.OpenFile(
		filepath.Join(shmDir, key), os.O_RDWR|os.O_CREATE, 0600)
	if err != nil {
		return nil, fmt.Errorf("creating shared memory object %s: %w", key, err)
	}
	r.file = f

	if err := unix.Ftruncate(int(f.Fd()), StateSize); err != nil {
		r.Destroy()
		return nil, fmt.Errorf("resizing shared memory object %s: %w", key, err)
	}

	data, err := unix.Mmap(
		int(f.Fd()), 0, StateSize,
		unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		r.Destroy()
		return nil, fmt.Errorf("mmapping shared memory object %s: %w", key, err)
	}
	r.data = data

	r.Zero()

	return r, nil
}

// OpenRegion maps an already existing shared memory object. This is the
// behavior-process side of CreateRegion and does not remove the object on
// Destroy ownership grounds; the region is still unmapped and unlinked the
// same way, so Destroy stays idempotent on both sides.
func OpenRegion(key string) (*Region, error) {
	r := &Region{key: key}

	f, err := os.OpenFile(filepath.Join(shmDir, key), os.O_RDWR, 0600)
	if err != nil {
		return nil, fmt.Errorf("opening shared memory object %s: %w", key, err)
	}
	r.file = f

	data, err := unix.Mmap(
		int(f.Fd()), 0, StateSize,
		unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		r.Destroy()
		return nil, fmt.Errorf("mmapping shared memory object %s: %w", key, err)
	}
	r.data = data

	return r, nil
}

// Key returns the name of the underlying shared memory object.
func (r *Region) Key() string {
	return r.key
}

// Bytes exposes the mapped region. Both processes address the state through
// this slice; access is serialized by the pause/resume handshake, not by
// locking.
func (r *Region) Bytes() []byte {
	return r.data
}

// Zero clears every byte of the region.
func (r *Region) Zero() {
	for i := range r.data {
		r.data[i] = 0
	}
}

// Destroy unmaps the region and removes the named object. It is safe to call
// on a partially created region and safe to call more than once; steps that
// were never taken, or were already undone, are skipped.
func (r *Region) Destroy() {
	if r.data != nil {
		_ = unix.Munmap(r.data)
		r.data = nil
	}

	if r.file != nil {
		_ = r.file.Close()
		_ = os.Remove(filepath.Join(shmDir, r.key))
		r.file = nil
	}
}
