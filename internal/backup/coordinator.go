// Package backup keeps a remote object store consistent with the local
// store-of-record file: full snapshots after every write, restore of the
// newest snapshot when the local file is missing at startup.
package backup

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"weightbot/internal/domain"
)

const (
	artifactPrefix  = "weights_backup_"
	artifactSuffix  = ".db"
	timestampLayout = "20060102_150405"

	snapshotTimeout = 30 * time.Second
)

// Coordinator snapshots the store file to a remote object store and restores
// the most recent snapshot. All methods are nil-store safe: with no remote
// configured every call is a no-op.
type Coordinator struct {
	store  domain.ObjectStore
	dbPath string
	now    func() time.Time
	log    *zap.SugaredLogger
	wg     sync.WaitGroup
}

// New creates a Coordinator for the store file at dbPath. store may be nil,
// which disables backups.
func New(store domain.ObjectStore, dbPath string, log *zap.SugaredLogger) *Coordinator {
	return &Coordinator{store: store, dbPath: dbPath, now: time.Now, log: log}
}

// Snapshot uploads a full copy of the store file under a timestamped name
// and returns the artifact name. Returns "" without error when backups are
// disabled or the store file does not exist yet. The timestamp is UTC and
// fixed width, so lexicographic order of artifact names is chronological.
func (c *Coordinator) Snapshot(ctx context.Context) (string, error) {
	if c.store == nil {
		return "", nil
	}
	if _, err := os.Stat(c.dbPath); err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", err
	}

	data, err := snapshotFile(c.dbPath)
	if err != nil {
		return "", fmt.Errorf("snapshot %s: %w", c.dbPath, err)
	}
	name := artifactPrefix + c.now().UTC().Format(timestampLayout) + artifactSuffix
	if err := c.store.Upload(ctx, name, data); err != nil {
		return "", fmt.Errorf("upload %s: %w", name, err)
	}
	return name, nil
}

// SnapshotAsync runs Snapshot in the background with a bounded timeout.
// Failures are logged and dropped; the triggering write is never rolled
// back. Wait blocks until all snapshots started this way have finished.
func (c *Coordinator) SnapshotAsync() {
	if c.store == nil {
		return
	}
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), snapshotTimeout)
		defer cancel()
		name, err := c.Snapshot(ctx)
		switch {
		case err != nil:
			c.log.Warnw("backup snapshot failed", "error", err)
		case name != "":
			c.log.Infow("backup created", "artifact", name)
		}
	}()
}

// Wait blocks until in-flight snapshots complete. Called at shutdown.
func (c *Coordinator) Wait() {
	c.wg.Wait()
}

// RestoreLatest downloads the newest recognised artifact and overwrites the
// local store file, creating parent directories as needed. Reports whether a
// restore occurred.
func (c *Coordinator) RestoreLatest(ctx context.Context) (bool, error) {
	if c.store == nil {
		return false, nil
	}
	names, err := c.store.List(ctx)
	if err != nil {
		return false, fmt.Errorf("list backups: %w", err)
	}
	var latest string
	for _, n := range names {
		if strings.HasPrefix(n, artifactPrefix) && n > latest {
			latest = n
		}
	}
	if latest == "" {
		return false, nil
	}

	data, err := c.store.Download(ctx, latest)
	if err != nil {
		return false, fmt.Errorf("download %s: %w", latest, err)
	}
	if err := os.MkdirAll(filepath.Dir(c.dbPath), 0o755); err != nil {
		return false, err
	}
	if err := os.WriteFile(c.dbPath, data, 0o644); err != nil {
		return false, err
	}
	c.log.Infow("store restored", "artifact", latest, "bytes", len(data))
	return true, nil
}

// RestoreIfMissing restores the latest snapshot when the local store file is
// absent. It is the only automatic restore entry point and must run before
// the store is opened; restoration is never triggered mid-run.
func (c *Coordinator) RestoreIfMissing(ctx context.Context) (bool, error) {
	if _, err := os.Stat(c.dbPath); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, err
	}
	return c.RestoreLatest(ctx)
}

// snapshotFile copies the store file to a temporary location and returns
// those bytes, so the upload reads a stable copy even if a write lands
// mid-transfer.
func snapshotFile(path string) ([]byte, error) {
	src, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	tmp, err := os.CreateTemp("", "weights-snapshot-*.db")
	if err != nil {
		return nil, err
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, src); err != nil {
		tmp.Close()
		return nil, err
	}
	if err := tmp.Close(); err != nil {
		return nil, err
	}
	return os.ReadFile(tmp.Name())
}
