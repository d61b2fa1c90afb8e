package engine

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
)

func TestTargets_PrunesDenylistedDirs(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "src/app.js", []byte("a"))
	writeFile(t, dir, ".env", []byte("a"))
	writeFile(t, dir, ".config/hidden.sh", []byte("a"))
	for name := range defaultExcludeDirs {
		writeFile(t, dir, name+"/inner/file.js", []byte("a"))
	}

	paths, err := Targets(context.Background(), testConfig(dir))
	if err != nil {
		t.Fatal(err)
	}
	var rels []string
	for _, p := range paths {
		rel, _ := filepath.Rel(dir, p)
		rels = append(rels, filepath.ToSlash(rel))
		for _, seg := range strings.Split(filepath.ToSlash(rel), "/") {
			if defaultExcludeDirs[seg] {
				t.Fatalf("denylisted segment %q in %s", seg, rel)
			}
		}
	}
	sort.Strings(rels)
	want := []string{".config/hidden.sh", ".env", "src/app.js"}
	if strings.Join(rels, ",") != strings.Join(want, ",") {
		t.Fatalf("got %v want %v", rels, want)
	}
}

func TestIsDefaultDirExcluded_ExactMatch(t *testing.T) {
	for _, name := range []string{"Build", "node_modules2", "my.git", "venv-old"} {
		if isDefaultDirExcluded(name) {
			t.Fatalf("%q must not be excluded", name)
		}
	}
	for _, name := range ExcludedDirs() {
		if !isDefaultDirExcluded(name) {
			t.Fatalf("%q should be excluded", name)
		}
	}
}

func TestTargets_SkipsSymlinks(t *testing.T) {
	dir := t.TempDir()
	target := writeFile(t, dir, "real.txt", []byte("a"))
	if err := os.Symlink(target, filepath.Join(dir, "link.txt")); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}
	if err := os.Symlink(dir, filepath.Join(dir, "loop")); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}
	paths, err := Targets(context.Background(), testConfig(dir))
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) != 1 || paths[0] != target {
		t.Fatalf("expected only the regular file, got %v", paths)
	}
}

func TestTargets_SymlinkedRoot(t *testing.T) {
	base := t.TempDir()
	realDir := filepath.Join(base, "real")
	writeFile(t, realDir, "evil.js", []byte("x"+strings.Repeat(" ", 60)+"y"))
	writeFile(t, realDir, "sub/inner.txt", []byte("a"))
	if err := os.Symlink(filepath.Join(realDir, "sub"), filepath.Join(realDir, "alias")); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}
	link := filepath.Join(base, "home")
	if err := os.Symlink(realDir, link); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	paths, err := Targets(context.Background(), testConfig(link))
	if err != nil {
		t.Fatal(err)
	}
	sort.Strings(paths)
	want := []string{filepath.Join(link, "evil.js"), filepath.Join(link, "sub", "inner.txt")}
	if strings.Join(paths, ",") != strings.Join(want, ",") {
		t.Fatalf("got %v want %v", paths, want)
	}

	res, err := ScanWithStats(context.Background(), testConfig(link))
	if err != nil {
		t.Fatal(err)
	}
	if res.FilesScanned != 2 || len(res.Findings) != 1 {
		t.Fatalf("expected 2 files and 1 finding through the link, got %d and %d", res.FilesScanned, len(res.Findings))
	}
	if res.Findings[0].Path != filepath.Join(link, "evil.js") {
		t.Fatalf("finding should use the given root, got %s", res.Findings[0].Path)
	}
}

func TestTargets_IncludeGlobs(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a/b/c.js", []byte("a"))
	writeFile(t, dir, "a/b/c.go", []byte("a"))
	writeFile(t, dir, "top.js", []byte("a"))

	cfg := testConfig(dir)
	cfg.IncludeGlobs = "**/*.js"
	paths, err := Targets(context.Background(), cfg)
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) != 2 {
		t.Fatalf("expected 2 js files, got %v", paths)
	}
}

func TestTargets_RootErrors(t *testing.T) {
	if _, err := Targets(context.Background(), testConfig(filepath.Join(t.TempDir(), "missing"))); err == nil {
		t.Fatal("expected error for missing root")
	}
}

func TestTargets_RootIsFile(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "one.txt", []byte("a"))
	paths, err := Targets(context.Background(), testConfig(p))
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) != 1 || paths[0] != p {
		t.Fatalf("expected the root file itself, got %v", paths)
	}
}

func TestTargets_UnreadableSubdirSkipped(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root ignores directory permissions")
	}
	dir := t.TempDir()
	writeFile(t, dir, "ok.txt", []byte("a"))
	locked := filepath.Join(dir, "locked")
	writeFile(t, dir, "locked/secret.txt", []byte("a"))
	if err := os.Chmod(locked, 0o000); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chmod(locked, 0o755) })

	paths, err := Targets(context.Background(), testConfig(dir))
	if err != nil {
		t.Fatalf("walk should not fail on unreadable subdir: %v", err)
	}
	if len(paths) != 1 {
		t.Fatalf("expected 1 path, got %v", paths)
	}
}
