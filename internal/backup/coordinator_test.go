package backup

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap"

	"weightbot/internal/adapter/memory"
	"weightbot/internal/domain"
)

func testCoordinator(t *testing.T, store domain.ObjectStore) (*Coordinator, string) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "data", "weights.db")
	return New(store, dbPath, zap.NewNop().Sugar()), dbPath
}

func writeStore(t *testing.T, path string, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write store: %v", err)
	}
}

func TestSnapshotNamesAndUploads(t *testing.T) {
	store := memory.NewObjectStore()
	c, dbPath := testCoordinator(t, store)
	writeStore(t, dbPath, "payload")
	c.now = func() time.Time {
		return time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)
	}

	name, err := c.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if name != "weights_backup_20240601_120000.db" {
		t.Fatalf("artifact name %q", name)
	}
	data, err := store.Download(context.Background(), name)
	if err != nil {
		t.Fatalf("download: %v", err)
	}
	if string(data) != "payload" {
		t.Fatalf("artifact content %q, want store bytes", data)
	}
}

func TestSnapshotWithoutStoreFile(t *testing.T) {
	c, _ := testCoordinator(t, memory.NewObjectStore())

	name, err := c.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if name != "" {
		t.Fatalf("got artifact %q for a missing store file", name)
	}
}

func TestSnapshotDisabled(t *testing.T) {
	c, dbPath := testCoordinator(t, nil)
	writeStore(t, dbPath, "payload")

	name, err := c.Snapshot(context.Background())
	if err != nil || name != "" {
		t.Fatalf("disabled snapshot must be a no-op, got %q / %v", name, err)
	}
}

func TestSnapshotAsyncCompletesBeforeWaitReturns(t *testing.T) {
	store := memory.NewObjectStore()
	c, dbPath := testCoordinator(t, store)
	writeStore(t, dbPath, "payload")

	c.SnapshotAsync()
	c.Wait()
	names, err := store.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(names) != 1 {
		t.Fatalf("got %d artifacts after Wait, want 1", len(names))
	}
}

func TestRestoreLatestPicksLexicographicMax(t *testing.T) {
	store := memory.NewObjectStore()
	for name, content := range map[string]string{
		"weights_backup_20240101_000000.db": "old",
		"weights_backup_20240601_000000.db": "new",
		"unrelated.txt":                     "junk",
	} {
		if err := store.Upload(context.Background(), name, []byte(content)); err != nil {
			t.Fatalf("upload: %v", err)
		}
	}
	c, dbPath := testCoordinator(t, store)

	restored, err := c.RestoreLatest(context.Background())
	if err != nil {
		t.Fatalf("restore: %v", err)
	}
	if !restored {
		t.Fatal("expected a restore")
	}
	data, err := os.ReadFile(dbPath)
	if err != nil {
		t.Fatalf("read restored store: %v", err)
	}
	if string(data) != "new" {
		t.Fatalf("restored %q, want the newest artifact", data)
	}
}

func TestRestoreLatestNoRecognisedArtifacts(t *testing.T) {
	store := memory.NewObjectStore()
	if err := store.Upload(context.Background(), "unrelated.txt", []byte("junk")); err != nil {
		t.Fatalf("upload: %v", err)
	}
	c, _ := testCoordinator(t, store)

	restored, err := c.RestoreLatest(context.Background())
	if err != nil {
		t.Fatalf("restore: %v", err)
	}
	if restored {
		t.Fatal("restored from an unrecognised artifact")
	}
}

func TestRestoreIfMissingSkipsExistingStore(t *testing.T) {
	store := memory.NewObjectStore()
	if err := store.Upload(context.Background(), "weights_backup_20240601_000000.db", []byte("remote")); err != nil {
		t.Fatalf("upload: %v", err)
	}
	c, dbPath := testCoordinator(t, store)
	writeStore(t, dbPath, "local")

	restored, err := c.RestoreIfMissing(context.Background())
	if err != nil {
		t.Fatalf("restore: %v", err)
	}
	if restored {
		t.Fatal("restore ran although the local store exists")
	}
	data, _ := os.ReadFile(dbPath)
	if string(data) != "local" {
		t.Fatalf("local store overwritten: %q", data)
	}
}

func TestRestoreIfMissingRestoresNewest(t *testing.T) {
	store := memory.NewObjectStore()
	for name, content := range map[string]string{
		"weights_backup_20240101_000000.db": "old",
		"weights_backup_20240601_000000.db": "new",
	} {
		if err := store.Upload(context.Background(), name, []byte(content)); err != nil {
			t.Fatalf("upload: %v", err)
		}
	}
	c, dbPath := testCoordinator(t, store)

	restored, err := c.RestoreIfMissing(context.Background())
	if err != nil {
		t.Fatalf("restore: %v", err)
	}
	if !restored {
		t.Fatal("expected a restore for a missing store file")
	}
	data, err := os.ReadFile(dbPath)
	if err != nil {
		t.Fatalf("read restored store: %v", err)
	}
	if string(data) != "new" {
		t.Fatalf("restored %q, want newest artifact content", data)
	}
}
