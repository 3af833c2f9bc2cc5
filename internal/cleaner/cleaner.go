// Package cleaner builds and executes deletion plans for scanned junk
// directories.
package cleaner

import (
	"os"

	"go.uber.org/zap"

	"github.com/crlotwhite/devjunk/internal/junk"
	"github.com/crlotwhite/devjunk/internal/scanner"
)

// BuildPlan filters a scan result down to the selected paths, preserving
// scan-result order. Selection entries that are not part of the scan
// result are silently dropped: a plan can never target an unscanned
// path, and partial or stale selections are normal rather than errors.
func BuildPlan(result *junk.ScanResult, selection []string, dryRun bool) *junk.CleanPlan {
	selected := make(map[string]struct{}, len(selection))
	for _, p := range selection {
		selected[p] = struct{}{}
	}

	plan := &junk.CleanPlan{DryRun: dryRun}
	for _, item := range result.Items {
		if _, ok := selected[item.Path]; ok {
			plan.Paths = append(plan.Paths, item.Path)
		}
	}
	return plan
}

// Execute deletes (or, for a dry run, simulates deleting) every path in
// the plan. Paths nested under an already-deleted plan entry are skipped
// as implicitly covered, paths that vanished since the scan are skipped
// silently, and a failure on one path never stops the rest of the batch.
// BytesFreed reflects only paths that were actually (or simulated-)
// deleted.
func Execute(plan *junk.CleanPlan) (*junk.CleanResult, error) {
	result := &junk.CleanResult{WasDryRun: plan.DryRun}

	// Paths removed during this execution; anything beneath one of them
	// is already gone.
	var removed []string

	for _, path := range plan.Paths {
		if coveredBy(path, removed) {
			continue
		}

		if plan.DryRun {
			if _, err := os.Lstat(path); err != nil {
				continue
			}
			size, _ := scanner.DirStats(path)
			result.BytesFreed += size
			result.Deleted = append(result.Deleted, path)
			removed = append(removed, path)
			continue
		}

		if _, err := os.Lstat(path); os.IsNotExist(err) {
			// Removed out-of-band since the scan; the desired end state
			// already holds.
			continue
		}

		// Size is read before removal so BytesFreed can be reported.
		size, _ := scanner.DirStats(path)
		if err := os.RemoveAll(path); err != nil {
			delErr := &junk.DeletionError{Path: path, Err: err}
			zap.L().Debug("deletion failed", zap.String("path", path), zap.Error(err))
			result.Failed = append(result.Failed, junk.CleanFailure{
				Path:  path,
				Error: delErr.Error(),
			})
			continue
		}

		result.BytesFreed += size
		result.Deleted = append(result.Deleted, path)
		removed = append(removed, path)
	}

	return result, nil
}

// coveredBy reports whether path equals or is nested under any of the
// given ancestors.
func coveredBy(path string, ancestors []string) bool {
	for _, anc := range ancestors {
		if pathWithinDir(path, anc) {
			return true
		}
	}
	return false
}

func pathWithinDir(path, dir string) bool {
	if path == dir {
		return true
	}
	return len(path) > len(dir) && path[:len(dir)] == dir && path[len(dir)] == os.PathSeparator
}
