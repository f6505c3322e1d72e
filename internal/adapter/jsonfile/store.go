// Package jsonfile keeps the whole memo board in a single JSON file.
//
// Every operation reads the complete collection and, for writes, replaces
// the complete file. Reads and writes run under an in-process mutex and an
// advisory lock on "<file>.lock", so one load-mutate-save cycle never
// interleaves with another, even across processes sharing the file.
package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gofrs/flock"

	"github.com/heartmarshall/memoboard/internal/domain"
)

// ErrCorrupt is returned when the data file exists but cannot be decoded.
var ErrCorrupt = errors.New("data file is corrupt")

const (
	defaultLockTimeout = 3 * time.Second
	lockRetryDelay     = 50 * time.Millisecond
	filePerm           = 0o644
	dirPerm            = 0o755
)

// Options tune the store's behaviour.
type Options struct {
	// LockTimeout bounds how long an operation waits for the file lock.
	LockTimeout time.Duration
	// QuarantineCorrupt renames an undecodable file to
	// "<file>.corrupt-<unix>" and continues with an empty collection.
	QuarantineCorrupt bool
}

// Store is a file-backed memo collection.
type Store struct {
	path        string
	fileLock    *flock.Flock
	lockTimeout time.Duration
	quarantine  bool
	log         *slog.Logger
	now         func() time.Time

	mu             sync.Mutex
	quarantines    int
	lastQuarantine string
}

// New creates a Store for the file at path. Nothing touches the disk until
// Ensure or the first operation.
func New(log *slog.Logger, path string, opts Options) *Store {
	path = filepath.Clean(strings.TrimSpace(path))
	timeout := opts.LockTimeout
	if timeout <= 0 {
		timeout = defaultLockTimeout
	}
	return &Store{
		path:        path,
		fileLock:    flock.New(path + ".lock"),
		lockTimeout: timeout,
		quarantine:  opts.QuarantineCorrupt,
		log:         log.With("adapter", "jsonfile"),
		now:         time.Now,
	}
}

// Path returns the data file location.
func (s *Store) Path() string { return s.path }

// Ensure creates the directory holding the data file.
func (s *Store) Ensure(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return fmt.Errorf("create data dir %s: %w", dir, err)
	}
	return nil
}

// Load returns the full collection in file order.
func (s *Store) Load(ctx context.Context) ([]domain.Memo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	unlock, err := s.lockFile(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	return s.readLocked(s.quarantine)
}

// Update runs one load-mutate-save cycle. fn receives the current
// collection and returns the collection to persist. If fn returns an error
// nothing is written and the error is returned unchanged.
func (s *Store) Update(ctx context.Context, fn func(memos []domain.Memo) ([]domain.Memo, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	unlock, err := s.lockFile(ctx)
	if err != nil {
		return err
	}
	defer unlock()

	memos, err := s.readLocked(s.quarantine)
	if err != nil {
		return err
	}

	next, err := fn(memos)
	if err != nil {
		return err
	}

	return s.writeLocked(next)
}

// Inspect locks and decodes the data file without modifying it, even when
// quarantine is enabled. A corrupt file is reported as an error wrapping
// ErrCorrupt; the returned stats are filled in as far as they are known.
func (s *Store) Inspect(ctx context.Context) (domain.StorageStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := domain.StorageStats{
		Path:           s.path,
		Quarantines:    s.quarantines,
		LastQuarantine: s.lastQuarantine,
	}

	unlock, err := s.lockFile(ctx)
	if err != nil {
		return stats, err
	}
	defer unlock()

	fi, err := os.Stat(s.path)
	switch {
	case err == nil:
		stats.Exists = true
		stats.SizeBytes = fi.Size()
		stats.ModifiedAt = fi.ModTime().UTC()
	case !errors.Is(err, os.ErrNotExist):
		return stats, fmt.Errorf("stat %s: %w", s.path, err)
	}

	memos, err := s.readLocked(false)
	if err != nil {
		return stats, err
	}
	stats.Memos = len(memos)
	return stats, nil
}

// Close releases the file lock handle. The lock file stays on disk so that
// every process keeps locking the same inode.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.fileLock.Close(); err != nil {
		return fmt.Errorf("release file lock: %w", err)
	}
	return nil
}

func (s *Store) lockFile(ctx context.Context) (func(), error) {
	if err := os.MkdirAll(filepath.Dir(s.path), dirPerm); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	lockCtx, cancel := context.WithTimeout(ctx, s.lockTimeout)
	defer cancel()

	locked, err := s.fileLock.TryLockContext(lockCtx, lockRetryDelay)
	if err != nil {
		return nil, fmt.Errorf("acquire file lock: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("acquire file lock: timed out after %s", s.lockTimeout)
	}

	return func() {
		if err := s.fileLock.Unlock(); err != nil {
			s.log.Warn("file_unlock_failed", slog.String("error", err.Error()))
		}
	}, nil
}

func (s *Store) readLocked(quarantine bool) ([]domain.Memo, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []domain.Memo{}, nil
		}
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return []domain.Memo{}, nil
	}

	var records []memoRecord
	if err := json.Unmarshal(data, &records); err != nil {
		if quarantine {
			return s.quarantineLocked(err)
		}
		return nil, fmt.Errorf("decode %s: %w: %v", s.path, ErrCorrupt, err)
	}

	memos := make([]domain.Memo, len(records))
	for i, r := range records {
		memos[i] = toDomain(r)
	}
	return memos, nil
}

func (s *Store) quarantineLocked(cause error) ([]domain.Memo, error) {
	target := fmt.Sprintf("%s.corrupt-%d", s.path, s.now().Unix())
	if err := os.Rename(s.path, target); err != nil {
		return nil, fmt.Errorf("quarantine %s: %w", s.path, err)
	}
	s.quarantines++
	s.lastQuarantine = target
	s.log.Error("data_file_quarantined",
		slog.String("path", s.path),
		slog.String("moved_to", target),
		slog.String("error", cause.Error()),
	)
	return []domain.Memo{}, nil
}

func (s *Store) writeLocked(memos []domain.Memo) error {
	records := make([]memoRecord, len(memos))
	for i, m := range memos {
		records[i] = fromDomain(m)
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal memos: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp.*")
	if err != nil {
		return fmt.Errorf("create temp file in %s: %w", dir, err)
	}
	tmpPath := tmp.Name()
	defer func() {
		_ = os.Remove(tmpPath)
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp file %s: %w", tmpPath, err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("sync temp file %s: %w", tmpPath, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file %s: %w", tmpPath, err)
	}
	if err := os.Chmod(tmpPath, filePerm); err != nil {
		return fmt.Errorf("chmod temp file %s: %w", tmpPath, err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		return fmt.Errorf("rename temp file to %s: %w", s.path, err)
	}
	return nil
}
