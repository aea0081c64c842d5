package platform

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCreateDirectoryIfNotExists(t *testing.T) {
	tempDir := t.TempDir()
	testDir := filepath.Join(tempDir, "new", "nested", "dir")

	if err := CreateDirectoryIfNotExists(testDir); err != nil {
		t.Fatalf("CreateDirectoryIfNotExists failed: %v", err)
	}

	info, err := os.Stat(testDir)
	if err != nil {
		t.Fatalf("Directory should exist after creation: %v", err)
	}
	if !info.IsDir() {
		t.Error("Created path should be a directory")
	}

	// Calling again on an existing directory should succeed
	if err := CreateDirectoryIfNotExists(testDir); err != nil {
		t.Errorf("CreateDirectoryIfNotExists on existing dir failed: %v", err)
	}
}

func TestGetDataDir(t *testing.T) {
	dir, err := GetDataDir()
	if err != nil {
		t.Fatalf("GetDataDir failed: %v", err)
	}
	if dir == "" {
		t.Error("Data directory should not be empty")
	}
	if filepath.Base(dir) != "opacapp" {
		t.Errorf("Data directory should end in opacapp, got %s", dir)
	}
}

func TestOpenURLInBrowserRejectsNonHTTP(t *testing.T) {
	cases := []string{
		"ftp://example.org/file",
		"file:///etc/passwd",
		"javascript:alert(1)",
		"",
	}

	for _, rawURL := range cases {
		if err := OpenURLInBrowser(rawURL); err == nil {
			t.Errorf("OpenURLInBrowser(%q) should be rejected", rawURL)
		}
	}
}
