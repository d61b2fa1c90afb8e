package engine

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, rel string, body []byte) string {
	t.Helper()
	p := filepath.Join(dir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(p, body, 0o644); err != nil {
		t.Fatalf("write %s: %v", rel, err)
	}
	return p
}

func testConfig(root string) Config {
	cfg := DefaultConfig(root)
	cfg.Threads = 4
	return cfg
}
