package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, path, data string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestWatcherReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	writeConfig(t, path, "[editor]\ntab_width = 4\n")

	reloads := make(chan Config, 1)
	w, err := NewWatcher(path,
		func(cfg Config) {
			select {
			case reloads <- cfg:
			default:
			}
		},
		func(err error) { t.Logf("watch error: %v", err) },
	)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	writeConfig(t, path, "[editor]\ntab_width = 8\n")

	select {
	case cfg := <-reloads:
		if cfg.Editor.TabWidth != 8 {
			t.Errorf("TabWidth = %d, want 8", cfg.Editor.TabWidth)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no reload observed")
	}
}

func TestWatcherReportsBadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	writeConfig(t, path, "[editor]\ntab_width = 4\n")

	errs := make(chan error, 1)
	w, err := NewWatcher(path,
		func(Config) { t.Error("reload fired for invalid config") },
		func(err error) {
			select {
			case errs <- err:
			default:
			}
		},
	)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	writeConfig(t, path, "[editor]\ntab_width = 99\n")

	select {
	case <-errs:
	case <-time.After(5 * time.Second):
		t.Fatal("no error observed")
	}
}

func TestWatcherIgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	writeConfig(t, path, "[editor]\ntab_width = 4\n")

	reloads := make(chan Config, 1)
	w, err := NewWatcher(path,
		func(cfg Config) { reloads <- cfg },
		nil,
	)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	writeConfig(t, filepath.Join(dir, "other.toml"), "x = 1\n")

	select {
	case <-reloads:
		t.Fatal("reload fired for a sibling file")
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcherCloseIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	writeConfig(t, path, "")

	w, err := NewWatcher(path, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
}
