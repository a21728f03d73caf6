package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type doc struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestWriteJSON_RoundTrip(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "nested", "doc.json")

	want := doc{Name: "algebra", Count: 3}
	if err := WriteJSON(path, want); err != nil {
		t.Fatalf("WriteJSON failed: %v", err)
	}

	var got doc
	if !ReadJSON(path, &got) {
		t.Fatal("ReadJSON returned false")
	}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestWriteFileAtomic_NoTempLeftBehind(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "doc.json")

	if err := WriteFileAtomic(path, []byte("{}")); err != nil {
		t.Fatalf("WriteFileAtomic failed: %v", err)
	}

	entries, err := os.ReadDir(tmpDir)
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".tmp") {
			t.Errorf("temp file left behind: %s", e.Name())
		}
	}
}

func TestReadJSON_MissingFile(t *testing.T) {
	var got doc
	if ReadJSON(filepath.Join(t.TempDir(), "absent.json"), &got) {
		t.Error("ReadJSON(missing) = true, want false")
	}
}

func TestReadJSON_Malformed(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "bad.json")
	if err := os.WriteFile(path, []byte("{truncated"), 0600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	var got doc
	if ReadJSON(path, &got) {
		t.Error("ReadJSON(malformed) = true, want false")
	}
}
