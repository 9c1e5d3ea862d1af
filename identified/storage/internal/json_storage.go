package internal

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/arthur-debert/identified/types"
	"github.com/gofrs/flock"
)

const snapshotVersion = "1.0"

// Snapshot is the JSON file structure.
type Snapshot struct {
	Items    []types.Item `json:"items"`
	Metadata Metadata     `json:"metadata"`
}

// Metadata contains snapshot bookkeeping.
type Metadata struct {
	Version   string    `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// JSONStorage persists snapshots to a JSON file. A flock-based lock file
// guards against concurrent writers in other processes; the mutex guards
// against concurrent use within this process.
type JSONStorage struct {
	filePath string
	fileLock *flock.Flock
	mu       sync.Mutex
}

// NewJSONStorage creates a JSON file storage for the given path.
func NewJSONStorage(filePath string) *JSONStorage {
	return &JSONStorage{
		filePath: filePath,
		fileLock: flock.New(filePath + ".lock"),
	}
}

// Load reads the snapshot from disk. A missing or empty file yields an
// empty snapshot.
func (s *JSONStorage) Load() (*Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	unlock, err := s.acquireLock()
	if err != nil {
		return nil, err
	}
	defer unlock()

	if _, err := os.Stat(s.filePath); os.IsNotExist(err) {
		return emptySnapshot(), nil
	}

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if len(data) == 0 {
		return emptySnapshot(), nil
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	return &snap, nil
}

// Save writes the snapshot to disk atomically: marshal, write to a temp
// file, rename over the target.
func (s *JSONStorage) Save(snap *Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	unlock, err := s.acquireLock()
	if err != nil {
		return err
	}
	defer unlock()

	snap.Metadata.Version = snapshotVersion
	snap.Metadata.UpdatedAt = time.Now()
	if snap.Metadata.CreatedAt.IsZero() {
		snap.Metadata.CreatedAt = snap.Metadata.UpdatedAt
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	tmpFile := s.filePath + ".tmp"
	if err := os.WriteFile(tmpFile, data, 0644); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := os.Rename(tmpFile, s.filePath); err != nil {
		_ = os.Remove(tmpFile)
		return fmt.Errorf("failed to rename file: %w", err)
	}
	return nil
}

// Close removes the lock file.
func (s *JSONStorage) Close() error {
	_ = os.Remove(s.filePath + ".lock")
	return nil
}

// acquireLock takes the cross-process file lock with a bounded retry loop.
// The returned function releases the lock.
func (s *JSONStorage) acquireLock() (func(), error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	locked, err := s.fileLock.TryLockContext(ctx, 100*time.Millisecond)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire lock: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("could not acquire file lock")
	}
	return func() { _ = s.fileLock.Unlock() }, nil
}

func emptySnapshot() *Snapshot {
	now := time.Now()
	return &Snapshot{
		Items: []types.Item{},
		Metadata: Metadata{
			Version:   snapshotVersion,
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
}
