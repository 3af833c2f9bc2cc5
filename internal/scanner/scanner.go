// Package scanner implements the scan engine: concurrent traversal of the
// configured roots, prune-on-match classification of directory names, and
// size aggregation for every match.
package scanner

import (
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/IGLOU-EU/go-wildcard"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/crlotwhite/devjunk/internal/junk"
)

// Progress carries incremental counters emitted during a scan.
type Progress struct {
	DirsVisited int64
	BytesFound  int64
	ItemsFound  int64
	CurrentPath string
}

// ProgressFunc receives periodic progress updates. Roots are scanned
// concurrently, so the callback may be invoked from multiple goroutines
// and must not block. The engine does no rate limiting of its own;
// callers that need throttling (e.g. a UI) throttle on their side.
type ProgressFunc func(Progress)

// progressInterval is the number of visited directories between callback
// invocations.
const progressInterval = 64

// Scan validates the configured roots, walks each of them concurrently,
// and returns every matched junk directory sorted by size descending.
// Any invalid root fails the whole call before traversal begins.
func Scan(cfg *junk.ScanConfig) (*junk.ScanResult, error) {
	return ScanWithProgress(cfg, nil)
}

// ScanWithProgress is Scan with a progress callback. fn may be nil.
func ScanWithProgress(cfg *junk.ScanConfig, fn ProgressFunc) (*junk.ScanResult, error) {
	if err := validateRoots(cfg.Roots); err != nil {
		return nil, err
	}

	kinds := cfg.Kinds()
	tracker := &progressTracker{fn: fn}

	// One walker per root; each produces an independent partial result
	// that is merged after all walkers finish.
	partials := make([][]junk.ScanItem, len(cfg.Roots))
	g := new(errgroup.Group)
	g.SetLimit(runtime.NumCPU())
	for i, root := range cfg.Roots {
		g.Go(func() error {
			start := time.Now()
			partials[i] = scanRoot(root, cfg, kinds, tracker)
			zap.L().Debug("scanned root",
				zap.String("root", root),
				zap.Int("items", len(partials[i])),
				zap.Duration("elapsed", time.Since(start)))
			return nil
		})
	}
	// Walkers are best-effort once validation passed; they never return
	// errors.
	_ = g.Wait()

	result := &junk.ScanResult{}
	for _, items := range partials {
		result.Items = append(result.Items, items...)
	}
	result.SortBySize()

	tracker.flush()
	return result, nil
}

func validateRoots(roots []string) error {
	for _, root := range roots {
		info, err := os.Stat(root)
		if err != nil {
			if os.IsNotExist(err) {
				return &junk.PathNotFoundError{Path: root}
			}
			if os.IsPermission(err) {
				return &junk.PermissionError{Path: root, Err: err}
			}
			return &junk.TraversalError{Path: root, Err: err}
		}
		if !info.IsDir() {
			return &junk.NotADirectoryError{Path: root}
		}
	}
	return nil
}

// scanRoot walks a single root. Unreadable entries are skipped so that
// one bad subtree never hides junk in its siblings. Symlinks are never
// followed.
func scanRoot(root string, cfg *junk.ScanConfig, kinds []junk.Kind, tracker *progressTracker) []junk.ScanItem {
	var items []junk.ScanItem

	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			zap.L().Debug("skipping unreadable entry", zap.String("path", path), zap.Error(err))
			return nil
		}
		if !d.IsDir() {
			return nil
		}

		name := d.Name()

		if isExcluded(path, cfg.ExcludePaths) || matchesExcludeName(name, cfg.ExcludeNames) {
			if path == root {
				return filepath.SkipAll
			}
			return fs.SkipDir
		}

		// Hidden directories are not descended into unless asked for,
		// except when the name matches an active junk pattern (.venv,
		// .next, ...). The root itself is exempt: the caller asked for
		// it explicitly.
		if path != root && !cfg.IncludeHidden &&
			strings.HasPrefix(name, ".") && !matchesAnyKind(name, kinds) {
			return fs.SkipDir
		}

		if kind, ok := junk.ClassifyIn(name, kinds); ok {
			size, files := DirStats(path)
			items = append(items, junk.ScanItem{
				Path:      path,
				Kind:      kind,
				SizeBytes: size,
				FileCount: files,
			})
			tracker.addItem(size, path)
			// The matched tree is opaque from here on.
			return fs.SkipDir
		}

		tracker.visit(path)

		if cfg.MaxDepth > 0 && depthBelow(root, path) >= cfg.MaxDepth {
			return fs.SkipDir
		}
		return nil
	})

	return items
}

// isExcluded reports whether path equals or is nested under any of the
// exclude paths.
func isExcluded(path string, excludes []string) bool {
	for _, exc := range excludes {
		if pathWithin(path, exc) {
			return true
		}
	}
	return false
}

// pathWithin reports whether path equals prefix or lives beneath it.
func pathWithin(path, prefix string) bool {
	if path == prefix {
		return true
	}
	return strings.HasPrefix(path, prefix+string(filepath.Separator))
}

func matchesExcludeName(name string, patterns []string) bool {
	for _, p := range patterns {
		if wildcard.Match(p, name) {
			return true
		}
	}
	return false
}

func matchesAnyKind(name string, kinds []junk.Kind) bool {
	for _, k := range kinds {
		if k.Matches(name) {
			return true
		}
	}
	return false
}

// depthBelow returns how many directory levels path sits below root.
func depthBelow(root, path string) int {
	rel, err := filepath.Rel(root, path)
	if err != nil || rel == "." {
		return 0
	}
	return strings.Count(rel, string(filepath.Separator)) + 1
}
