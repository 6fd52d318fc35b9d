package bench

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadDocument(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "sample.txt", "# comment line\nfirst line\n\n  \nsecond line\n")

	doc, err := LoadDocument(path)
	if err != nil {
		t.Fatalf("LoadDocument failed: %v", err)
	}

	if doc.ID != "sample" {
		t.Errorf("ID = %q, want %q", doc.ID, "sample")
	}
	want := []string{"first line", "second line"}
	if !reflect.DeepEqual(doc.Lines, want) {
		t.Errorf("Lines = %q, want %q", doc.Lines, want)
	}
	if doc.Bytes != len("first line")+len("second line") {
		t.Errorf("Bytes = %d, want %d", doc.Bytes, len("first line")+len("second line"))
	}
}

func TestLoadDocument_Empty(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "empty.txt", "# only a comment\n\n")

	if _, err := LoadDocument(path); err == nil {
		t.Error("expected error for file without input lines")
	}
}

func TestLoadCorpus(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.txt", "alpha\n")
	writeFile(t, dir, "b.txt", "beta\n")
	writeFile(t, dir, "ignored.md", "not a corpus file\n")

	docs, err := LoadCorpus(dir)
	if err != nil {
		t.Fatalf("LoadCorpus failed: %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("loaded %d documents, want 2", len(docs))
	}
	if docs[0].ID != "a" || docs[1].ID != "b" {
		t.Errorf("IDs = %q, %q, want a, b", docs[0].ID, docs[1].ID)
	}
}

func TestLoadCorpus_MissingDir(t *testing.T) {
	if _, err := LoadCorpus(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("expected error for missing directory")
	}
}
