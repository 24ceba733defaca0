package dcosutil_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/reoring/dcosutil"
)

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func TestWithTempDir_RemovedAfterUse(t *testing.T) {
	var seen string
	err := dcosutil.WithTempDir(func(dir string) error {
		seen = dir
		if err := os.MkdirAll(filepath.Join(dir, "nested", "deeper"), 0o755); err != nil {
			return err
		}
		return os.WriteFile(filepath.Join(dir, "nested", "f.txt"), []byte("x"), 0o644)
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if seen == "" || exists(seen) {
		t.Fatalf("temp dir %q should be removed", seen)
	}
}

func TestWithTempDir_RemovedOnError(t *testing.T) {
	boom := errors.New("boom")
	var seen string
	err := dcosutil.WithTempDir(func(dir string) error {
		seen = dir
		if !exists(dir) {
			t.Fatalf("temp dir should exist inside the scope")
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected fn error, got %v", err)
	}
	if exists(seen) {
		t.Fatalf("temp dir %q should be removed on error", seen)
	}
}

func TestWithTempDir_RemovedOnPanic(t *testing.T) {
	var seen string
	func() {
		defer func() { _ = recover() }()
		_ = dcosutil.WithTempDir(func(dir string) error {
			seen = dir
			panic("boom")
		})
	}()
	if seen == "" || exists(seen) {
		t.Fatalf("temp dir %q should be removed on panic", seen)
	}
}

func TestNewTempDir_CleanupIdempotent(t *testing.T) {
	dir, cleanup, err := dcosutil.NewTempDir()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !exists(dir) {
		t.Fatalf("expected %q to exist", dir)
	}
	cleanup()
	cleanup()
	if exists(dir) {
		t.Fatalf("expected %q to be removed", dir)
	}
}
