package settings

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSettings_Clear(t *testing.T) {
	s := &Settings{
		Cloud:        "production",
		Region:       "melbourne-qh2",
		AllResources: true,
	}

	s.Clear()

	if s.Cloud != "" || s.Region != "" || s.AllResources {
		t.Error("Clear() should reset all fields")
	}
}

func TestSettings_SaveLoad(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "settings.yaml")

	s := &Settings{
		Cloud:        "nectar",
		Region:       "melbourne-qh2",
		AllResources: true,
	}
	if err := s.SaveTo(path); err != nil {
		t.Fatalf("SaveTo() error: %v", err)
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error: %v", err)
	}

	if loaded.Cloud != s.Cloud {
		t.Errorf("Cloud = %q, want %q", loaded.Cloud, s.Cloud)
	}
	if loaded.Region != s.Region {
		t.Errorf("Region = %q, want %q", loaded.Region, s.Region)
	}
	if loaded.AllResources != s.AllResources {
		t.Errorf("AllResources = %v, want %v", loaded.AllResources, s.AllResources)
	}
}

func TestSettings_LoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does-not-exist.yaml")

	s, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() on missing file should not error: %v", err)
	}
	if *s != (Settings{}) {
		t.Errorf("missing file should load zero settings, got %+v", s)
	}
}

func TestSettings_SaveCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "settings.yaml")

	s := &Settings{Cloud: "test"}
	if err := s.SaveTo(path); err != nil {
		t.Fatalf("SaveTo() error: %v", err)
	}

	if _, err := os.Stat(path); err != nil {
		t.Errorf("settings file not created: %v", err)
	}
}

func TestSettings_LoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(path, []byte("cloud: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadFrom(path); err == nil {
		t.Error("LoadFrom() should fail on invalid YAML")
	}
}
