package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSetup_WritesToProjectLogFile(t *testing.T) {
	root := t.TempDir()

	cleanup, err := Setup(Config{Root: root})
	if err != nil {
		t.Fatalf("Setup error: %v", err)
	}
	want := filepath.Join(root, ".pomyaml", "logs", "pomyaml.log")
	if Path() != want {
		t.Fatalf("expected path %s, got %s", want, Path())
	}
	if err := IsReady(); err != nil {
		t.Fatalf("expected ready logger: %v", err)
	}

	L().Info("convert.done", "output", "pom.yml")
	if err := cleanup(); err != nil {
		t.Fatalf("cleanup error: %v", err)
	}

	b, err := os.ReadFile(want)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(b), `"msg":"convert.done"`) {
		t.Fatalf("expected event in log, got:\n%s", b)
	}
	if IsReady() == nil {
		t.Fatalf("expected logger reset after cleanup")
	}
}

func TestSetup_WriterAndDebugLevel(t *testing.T) {
	var buf bytes.Buffer
	cleanup, err := Setup(Config{Writer: &buf, Debug: true})
	if err != nil {
		t.Fatalf("Setup error: %v", err)
	}
	defer cleanup()

	L().Debug("represent.field", "name", "groupId")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected init and debug lines, got %d:\n%s", len(lines), buf.String())
	}
	var rec map[string]any
	if err := json.Unmarshal([]byte(lines[1]), &rec); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if rec["msg"] != "represent.field" || rec["level"] != "DEBUG" {
		t.Fatalf("unexpected record: %v", rec)
	}
	if ts, _ := rec["time"].(string); !strings.HasSuffix(ts, "Z") {
		t.Fatalf("expected UTC timestamp, got %v", rec["time"])
	}
	if Path() != "" {
		t.Fatalf("expected no file path with a writer")
	}
}
