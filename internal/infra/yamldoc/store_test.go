package yamldoc

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aalvaropc/pomyaml/internal/domain"
)

func TestSaveDocument_WritesFile(t *testing.T) {
	tmp := t.TempDir()
	store := NewStore()

	path, err := store.SaveDocument(tmp, "pom.yml", []byte("artifactId: demo\n"))
	if err != nil {
		t.Fatalf("SaveDocument error: %v", err)
	}
	if want := filepath.Join(tmp, "pom.yml"); path != want {
		t.Fatalf("expected path %s, got %s", want, path)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read file: %v", err)
	}
	if string(b) != "artifactId: demo\n" {
		t.Fatalf("unexpected content: %q", b)
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Fatalf("expected no leftover tmp file, stat err=%v", err)
	}
}

func TestSaveDocument_CreatesSubdirectories(t *testing.T) {
	tmp := t.TempDir()
	path, err := NewStore().SaveDocument(tmp, filepath.Join("org.example", "demo", "pom.yml"), []byte("a: b\n"))
	if err != nil {
		t.Fatalf("SaveDocument error: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected file at %s: %v", path, err)
	}
}

func TestSaveDocument_Overwrites(t *testing.T) {
	tmp := t.TempDir()
	store := NewStore()
	if _, err := store.SaveDocument(tmp, "pom.yml", []byte("v: 1\n")); err != nil {
		t.Fatalf("first save: %v", err)
	}
	path, err := store.SaveDocument(tmp, "pom.yml", []byte("v: 2\n"))
	if err != nil {
		t.Fatalf("second save: %v", err)
	}
	b, _ := os.ReadFile(path)
	if string(b) != "v: 2\n" {
		t.Fatalf("expected overwritten content, got %q", b)
	}
}

func TestSaveDocument_RejectsEscapingNames(t *testing.T) {
	tmp := t.TempDir()
	for _, name := range []string{"../out.yml", "/etc/out.yml", ""} {
		_, err := NewStore().SaveDocument(tmp, name, []byte("a: b\n"))
		if !domain.IsKind(err, domain.KindInvalidConfig) {
			t.Errorf("%q: expected invalid config, got %v", name, err)
		}
	}
}

func TestSaveDocument_ValidatesYAML(t *testing.T) {
	tmp := t.TempDir()
	_, err := NewStore().SaveDocument(tmp, "bad.yml", []byte("a: [unclosed\n"))
	if err == nil {
		t.Fatalf("expected validation error")
	}
	if _, statErr := os.Stat(filepath.Join(tmp, "bad.yml")); !os.IsNotExist(statErr) {
		t.Fatalf("expected nothing written")
	}

	if _, err := NewStore(WithValidation(false)).SaveDocument(tmp, "raw.yml", []byte("a: [unclosed\n")); err != nil {
		t.Fatalf("expected unvalidated write to succeed, got %v", err)
	}
}

func TestReadDocument(t *testing.T) {
	tmp := t.TempDir()
	store := NewStore()
	path, err := store.SaveDocument(tmp, "pom.yml", []byte("k: v\n"))
	if err != nil {
		t.Fatalf("SaveDocument error: %v", err)
	}

	b, err := store.ReadDocument(path)
	if err != nil {
		t.Fatalf("ReadDocument error: %v", err)
	}
	if string(b) != "k: v\n" {
		t.Fatalf("unexpected content %q", b)
	}

	_, err = store.ReadDocument(filepath.Join(tmp, "missing.yml"))
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
