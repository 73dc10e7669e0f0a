package store

import (
	"os"
	"path/filepath"
	"testing"
)

type doc struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestJSON_RoundTripCreatesDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "doc.json")
	if err := SaveJSON(path, doc{Name: "a", Count: 2}); err != nil {
		t.Fatalf("SaveJSON: %v", err)
	}
	var got doc
	found, err := LoadJSON(path, &got)
	if err != nil || !found {
		t.Fatalf("LoadJSON: found=%v err=%v", found, err)
	}
	if got.Name != "a" || got.Count != 2 {
		t.Fatalf("unexpected doc: %+v", got)
	}
	entries, _ := os.ReadDir(filepath.Dir(path))
	if len(entries) != 1 {
		t.Fatalf("temp files left behind: %v", entries)
	}
}

func TestLoadJSON_MissingAndCorrupt(t *testing.T) {
	dir := t.TempDir()
	got := doc{Name: "keep"}
	found, err := LoadJSON(filepath.Join(dir, "none.json"), &got)
	if err != nil || found || got.Name != "keep" {
		t.Fatalf("missing file: found=%v err=%v doc=%+v", found, err, got)
	}
	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte("{"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadJSON(bad, &got); err == nil {
		t.Fatalf("expected decode error")
	}
	if err := SaveJSON("  ", doc{}); err == nil {
		t.Fatalf("expected error for empty path")
	}
}
