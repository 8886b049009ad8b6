package config

import (
	"path/filepath"
	"testing"

	"spotisonic/internal/testsupport"
)

func TestGetStoredValue(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	store := New(path)

	got, err := store.Get(KeyMinLikedForArtist, nil)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got != float64(1) {
		t.Errorf("Get(%s) = %v, want 1", KeyMinLikedForArtist, got)
	}
}

func TestGetMissingKeyReturnsFallback(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	store := New(path)

	got, err := store.Get("non_existent_key", "default_value")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got != "default_value" {
		t.Errorf("Get = %v, want %q", got, "default_value")
	}

	got, err = store.Get("non_existent_key", nil)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got != nil {
		t.Errorf("Get = %v, want nil", got)
	}
}

func TestSetPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	store := New(path)

	if err := store.Set(KeyMinLikedForArtist, 5); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	cfg, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got := cfg[KeyMinLikedForArtist]; got != float64(5) {
		t.Errorf("%s = %v, want 5", KeyMinLikedForArtist, got)
	}

	// The file itself reflects the update too.
	onDisk := testsupport.ReadJSON(t, path)
	if got := onDisk[KeyMinLikedForArtist]; got != float64(5) {
		t.Errorf("on-disk %s = %v, want 5", KeyMinLikedForArtist, got)
	}
}

func TestSetPreservesSiblings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	store := New(path)

	if err := store.Set("setting_one", "value_one"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := store.Set("setting_two", "value_two"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := store.Set("setting_one", "updated_value"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	cfg, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got := cfg["setting_one"]; got != "updated_value" {
		t.Errorf("setting_one = %v, want %q", got, "updated_value")
	}
	if got := cfg["setting_two"]; got != "value_two" {
		t.Errorf("setting_two = %v, want %q", got, "value_two")
	}
}

func TestGetInt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	store := New(path)

	got, err := store.GetInt(KeyPreviewLength, -1)
	if err != nil {
		t.Fatalf("GetInt failed: %v", err)
	}
	if got != 30 {
		t.Errorf("GetInt(%s) = %d, want 30", KeyPreviewLength, got)
	}

	// Missing key yields the fallback.
	got, err = store.GetInt("non_existent_key", 7)
	if err != nil {
		t.Fatalf("GetInt failed: %v", err)
	}
	if got != 7 {
		t.Errorf("GetInt = %d, want 7", got)
	}
}

func TestGetIntRejectsNonIntegral(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	testsupport.WriteDocument(t, path, []byte(`{"ratio": 1.5, "label": "text"}`))
	store := New(path)

	got, err := store.GetInt("ratio", 9)
	if err != nil {
		t.Fatalf("GetInt failed: %v", err)
	}
	if got != 9 {
		t.Errorf("GetInt(ratio) = %d, want fallback 9", got)
	}

	got, err = store.GetInt("label", 9)
	if err != nil {
		t.Fatalf("GetInt failed: %v", err)
	}
	if got != 9 {
		t.Errorf("GetInt(label) = %d, want fallback 9", got)
	}
}

func TestGetBool(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	store := New(path)

	got, err := store.GetBool(KeyShuffle, false)
	if err != nil {
		t.Fatalf("GetBool failed: %v", err)
	}
	if !got {
		t.Errorf("GetBool(%s) = false, want true", KeyShuffle)
	}

	got, err = store.GetBool("non_existent_key", true)
	if err != nil {
		t.Fatalf("GetBool failed: %v", err)
	}
	if !got {
		t.Error("GetBool should return the fallback for a missing key")
	}
}

func TestGetString(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	store := New(path)

	if err := store.Set("server_name", "navidrome"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	got, err := store.GetString("server_name", "")
	if err != nil {
		t.Fatalf("GetString failed: %v", err)
	}
	if got != "navidrome" {
		t.Errorf("GetString = %q, want %q", got, "navidrome")
	}

	got, err = store.GetString(KeyShuffle, "fallback")
	if err != nil {
		t.Fatalf("GetString failed: %v", err)
	}
	if got != "fallback" {
		t.Errorf("GetString on a bool key = %q, want fallback", got)
	}
}

func TestGetPropagatesLoadError(t *testing.T) {
	store := New(t.TempDir()) // a directory cannot be read as a document

	if _, err := store.Get("any", nil); err == nil {
		t.Fatal("expected Get to propagate the read error")
	}
	if err := store.Set("any", 1); err == nil {
		t.Fatal("expected Set to propagate the read error")
	}
}
