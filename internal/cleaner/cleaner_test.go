package cleaner

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/crlotwhite/devjunk/internal/junk"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func scanResultFor(items ...junk.ScanItem) *junk.ScanResult {
	return &junk.ScanResult{Items: items}
}

func TestBuildPlanFiltersSelection(t *testing.T) {
	result := scanResultFor(
		junk.ScanItem{Path: "/a/node_modules", Kind: junk.NodeModules, SizeBytes: 1000, FileCount: 10},
		junk.ScanItem{Path: "/b/target", Kind: junk.RustTarget, SizeBytes: 2000, FileCount: 20},
		junk.ScanItem{Path: "/c/__pycache__", Kind: junk.PythonCache, SizeBytes: 500, FileCount: 5},
	)

	plan := BuildPlan(result, []string{"/c/__pycache__", "/a/node_modules"}, true)

	if plan.Count() != 2 {
		t.Fatalf("plan has %d paths, want 2", plan.Count())
	}
	// Scan-result order is preserved regardless of selection order.
	if plan.Paths[0] != "/a/node_modules" || plan.Paths[1] != "/c/__pycache__" {
		t.Errorf("plan order = %v", plan.Paths)
	}
	if !plan.DryRun {
		t.Error("dry-run flag not carried into the plan")
	}
}

func TestBuildPlanDropsUnknownSelection(t *testing.T) {
	result := scanResultFor(
		junk.ScanItem{Path: "/a/node_modules", Kind: junk.NodeModules},
	)

	// Stale or bogus selections are dropped silently, not errored.
	plan := BuildPlan(result, []string{"/a/node_modules", "/never/scanned"}, false)
	if plan.Count() != 1 || plan.Paths[0] != "/a/node_modules" {
		t.Errorf("plan = %v, want only the scanned path", plan.Paths)
	}
}

func TestExecuteDryRunDoesNotDelete(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "node_modules")
	writeFile(t, filepath.Join(dir, "file.txt"), "test content")

	plan := &junk.CleanPlan{Paths: []string{dir}, DryRun: true}
	result, err := Execute(plan)
	if err != nil {
		t.Fatal(err)
	}

	if !result.WasDryRun {
		t.Error("WasDryRun = false")
	}
	if result.DeletedCount() != 1 {
		t.Errorf("deleted count = %d, want 1", result.DeletedCount())
	}
	if result.BytesFreed != int64(len("test content")) {
		t.Errorf("bytes freed = %d, want %d", result.BytesFreed, len("test content"))
	}
	if _, err := os.Stat(dir); err != nil {
		t.Error("dry run removed the directory")
	}
}

func TestExecuteDeletes(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "target")
	writeFile(t, filepath.Join(dir, "debug", "bin"), "binary")

	plan := &junk.CleanPlan{Paths: []string{dir}}
	result, err := Execute(plan)
	if err != nil {
		t.Fatal(err)
	}

	if result.WasDryRun {
		t.Error("WasDryRun = true for a real run")
	}
	if result.DeletedCount() != 1 {
		t.Errorf("deleted count = %d, want 1", result.DeletedCount())
	}
	if result.BytesFreed != int64(len("binary")) {
		t.Errorf("bytes freed = %d, want %d", result.BytesFreed, len("binary"))
	}
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Error("directory still exists after clean")
	}
	if !result.IsSuccess() {
		t.Errorf("unexpected failures: %+v", result.Failed)
	}
}

func TestExecuteSkipsPathsCoveredByDeletedAncestor(t *testing.T) {
	root := t.TempDir()
	parent := filepath.Join(root, "node_modules")
	child := filepath.Join(parent, "dep", "node_modules")
	writeFile(t, filepath.Join(child, "x.js"), "x")

	// Parent first, then a descendant that the parent's deletion already
	// removes.
	plan := &junk.CleanPlan{Paths: []string{parent, child}}
	result, err := Execute(plan)
	if err != nil {
		t.Fatal(err)
	}

	if result.DeletedCount() != 1 {
		t.Errorf("deleted count = %d, want 1 (child is covered, not deleted)", result.DeletedCount())
	}
	if result.FailedCount() != 0 {
		t.Errorf("child reported as failure: %+v", result.Failed)
	}
}

func TestExecuteSkipsVanishedPaths(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "dist")
	writeFile(t, filepath.Join(dir, "bundle.js"), "bundle")

	// Deleted out-of-band between scan and execute.
	if err := os.RemoveAll(dir); err != nil {
		t.Fatal(err)
	}

	plan := &junk.CleanPlan{Paths: []string{dir}}
	result, err := Execute(plan)
	if err != nil {
		t.Fatal(err)
	}

	if result.DeletedCount() != 0 || result.FailedCount() != 0 {
		t.Errorf("vanished path must be neither deleted nor failed: %+v", result)
	}
	if result.BytesFreed != 0 {
		t.Errorf("bytes freed = %d, want 0", result.BytesFreed)
	}
}

func TestExecuteContinuesPastFailures(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission checks do not apply to root")
	}

	root := t.TempDir()
	ok1 := filepath.Join(root, "ok1", "node_modules")
	writeFile(t, filepath.Join(ok1, "a.js"), "aa")
	ok2 := filepath.Join(root, "ok2", "node_modules")
	writeFile(t, filepath.Join(ok2, "b.js"), "bbb")

	// A directory whose parent is read-only cannot be removed.
	locked := filepath.Join(root, "locked")
	stuck := filepath.Join(locked, "node_modules")
	if err := os.MkdirAll(stuck, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.Chmod(locked, 0o555); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chmod(locked, 0o755) })

	plan := &junk.CleanPlan{Paths: []string{ok1, stuck, ok2}}
	result, err := Execute(plan)
	if err != nil {
		t.Fatal(err)
	}

	if result.DeletedCount() != 2 {
		t.Errorf("deleted count = %d, want 2", result.DeletedCount())
	}
	if result.FailedCount() != 1 {
		t.Fatalf("failed count = %d, want 1: %+v", result.FailedCount(), result.Failed)
	}
	if result.Failed[0].Path != stuck {
		t.Errorf("failed path = %q, want %q", result.Failed[0].Path, stuck)
	}
	if result.IsSuccess() {
		t.Error("IsSuccess() = true despite a failure")
	}
	// Only successful deletions count toward bytes freed.
	if result.BytesFreed != int64(len("aa")+len("bbb")) {
		t.Errorf("bytes freed = %d, want %d", result.BytesFreed, len("aa")+len("bbb"))
	}
}

func TestExecuteEmptyPlan(t *testing.T) {
	result, err := Execute(&junk.CleanPlan{})
	if err != nil {
		t.Fatal(err)
	}
	if result.DeletedCount() != 0 || result.FailedCount() != 0 || result.BytesFreed != 0 {
		t.Errorf("empty plan produced a non-empty result: %+v", result)
	}
	if !result.IsSuccess() {
		t.Error("empty plan should be a success")
	}
}
