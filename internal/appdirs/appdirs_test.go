package appdirs

import (
	"path/filepath"
	"testing"
)

func TestEnvOverridesWin(t *testing.T) {
	t.Setenv("DOMINIK_HOME", "/tmp/dominik-home")
	t.Setenv("DOMINIK_LOG_DIR", "/tmp/dominik-logs")
	t.Setenv("DOMINIK_DOWNLOAD_DIR", "/tmp/dominik-dl")

	if dir, err := BaseDir(); err != nil || dir != "/tmp/dominik-home" {
		t.Errorf("BaseDir = %q, %v", dir, err)
	}
	if dir, err := LogsDir(); err != nil || dir != "/tmp/dominik-logs" {
		t.Errorf("LogsDir = %q, %v", dir, err)
	}
	if dir, err := DownloadsDir(); err != nil || dir != "/tmp/dominik-dl" {
		t.Errorf("DownloadsDir = %q, %v", dir, err)
	}
}

func TestDerivedDirsNestUnderBase(t *testing.T) {
	t.Setenv("DOMINIK_HOME", "/tmp/base")
	t.Setenv("DOMINIK_USER_DATA_DIR", "")
	t.Setenv("DOMINIK_LOG_DIR", "")
	t.Setenv("DOMINIK_DOWNLOAD_DIR", "")

	if dir, _ := UserDataDir(); dir != filepath.Join("/tmp/base", "user_data") {
		t.Errorf("UserDataDir = %q", dir)
	}
	if dir, _ := LogsDir(); dir != filepath.Join("/tmp/base", "logs") {
		t.Errorf("LogsDir = %q", dir)
	}
	if dir, _ := DownloadsDir(); dir != filepath.Join("/tmp/base", "user_data", "downloads") {
		t.Errorf("DownloadsDir = %q", dir)
	}
	if path, _ := HistoryFile(); path != filepath.Join("/tmp/base", "history") {
		t.Errorf("HistoryFile = %q", path)
	}
}

func TestEnsureDirRejectsEmptyPath(t *testing.T) {
	if err := EnsureDir("  "); err == nil {
		t.Errorf("expected error for blank path")
	}
	if err := EnsureDir(filepath.Join(t.TempDir(), "a", "b")); err != nil {
		t.Errorf("EnsureDir failed: %v", err)
	}
}
