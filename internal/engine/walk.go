package engine

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Walk traverses the tree under cfg.Root and invokes handle for each regular
// file that survives the directory denylist and include globs. Ignore files
// are not consulted and dotfiles are visited. Errors on individual entries
// are skipped; only a root that cannot be walked at all is reported.
func Walk(ctx context.Context, cfg Config, handle func(path string)) error {
	info, err := os.Stat(cfg.Root)
	if err != nil {
		return fmt.Errorf("cannot walk %s: %w", cfg.Root, err)
	}
	includes := parseGlobsList(cfg.IncludeGlobs)
	if info.Mode().IsRegular() {
		if allowedByGlobs(filepath.Base(cfg.Root), includes) {
			handle(cfg.Root)
		}
		return nil
	}
	if !info.IsDir() {
		return fmt.Errorf("cannot walk %s: not a directory or regular file", cfg.Root)
	}
	// WalkDir does not descend into a symlinked root, so walk its target and
	// report paths under the name the operator gave. Links below the root are
	// still never followed.
	walkRoot, err := filepath.EvalSymlinks(cfg.Root)
	if err != nil {
		return fmt.Errorf("cannot walk %s: %w", cfg.Root, err)
	}
	return filepath.WalkDir(walkRoot, func(p string, d fs.DirEntry, err error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err != nil {
			if p == walkRoot {
				return fmt.Errorf("cannot walk %s: %w", cfg.Root, err)
			}
			return nil
		}
		if d.IsDir() {
			if p != walkRoot && isDefaultDirExcluded(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		rel, err := filepath.Rel(walkRoot, p)
		if err != nil {
			return nil
		}
		if !allowedByGlobs(rel, includes) {
			return nil
		}
		handle(filepath.Join(cfg.Root, rel))
		return nil
	})
}

// Targets returns every candidate file under cfg.Root in walk order.
func Targets(ctx context.Context, cfg Config) ([]string, error) {
	var paths []string
	err := Walk(ctx, cfg, func(p string) {
		paths = append(paths, p)
	})
	if err != nil {
		return nil, err
	}
	return paths, nil
}
