package junk

import "sort"

// ScanConfig describes a single scan invocation. It is built by the
// caller, validated by the orchestrator, and never mutated afterwards.
type ScanConfig struct {
	// Roots are the directories to scan. Each must exist and be a
	// directory; validation happens before any traversal starts.
	Roots []string

	// IncludeKinds restricts which catalog kinds are searched for.
	// Empty means all known kinds.
	IncludeKinds []Kind

	// ExcludePaths are absolute paths whose subtrees are skipped
	// entirely.
	ExcludePaths []string

	// ExcludeNames are directory-name glob patterns (wildcard syntax)
	// whose subtrees are skipped entirely.
	ExcludeNames []string

	// MaxDepth bounds how many directory levels below each root are
	// visited. Zero means unlimited.
	MaxDepth int

	// IncludeHidden controls descent into dot-directories. Directories
	// matching an active junk pattern are inspected regardless, so
	// .venv is still found with this off.
	IncludeHidden bool
}

// NewScanConfig returns a config that searches the given roots for all
// known kinds.
func NewScanConfig(roots ...string) *ScanConfig {
	return &ScanConfig{
		Roots:        roots,
		IncludeKinds: AllKinds(),
	}
}

// Kinds returns the active kind set, defaulting to the full catalog when
// IncludeKinds is empty.
func (c *ScanConfig) Kinds() []Kind {
	if len(c.IncludeKinds) == 0 {
		return AllKinds()
	}
	return c.IncludeKinds
}

// ScanItem is one matched junk directory. Immutable after creation.
type ScanItem struct {
	Path      string `json:"path"`
	Kind      Kind   `json:"kind"`
	SizeBytes int64  `json:"size_bytes"`
	FileCount int64  `json:"file_count"`
}

// ScanResult is the ordered set of items found by a scan. Totals are
// computed on demand so they always agree with Items.
type ScanResult struct {
	Items []ScanItem `json:"items"`
}

// TotalSizeBytes sums the size of every item.
func (r *ScanResult) TotalSizeBytes() int64 {
	var total int64
	for _, it := range r.Items {
		total += it.SizeBytes
	}
	return total
}

// TotalFileCount sums the file count of every item.
func (r *ScanResult) TotalFileCount() int64 {
	var total int64
	for _, it := range r.Items {
		total += it.FileCount
	}
	return total
}

// ItemCount returns the number of items.
func (r *ScanResult) ItemCount() int {
	return len(r.Items)
}

// SortBySize orders items largest first. Tie order is unspecified.
func (r *ScanResult) SortBySize() {
	sort.Slice(r.Items, func(i, j int) bool {
		return r.Items[i].SizeBytes > r.Items[j].SizeBytes
	})
}

// SortByPath orders items lexicographically by path.
func (r *ScanResult) SortByPath() {
	sort.Slice(r.Items, func(i, j int) bool {
		return r.Items[i].Path < r.Items[j].Path
	})
}

// Paths returns the item paths in result order.
func (r *ScanResult) Paths() []string {
	out := make([]string, len(r.Items))
	for i, it := range r.Items {
		out[i] = it.Path
	}
	return out
}

// CleanPlan is an ordered list of paths selected for deletion. Plans are
// built from a ScanResult, so they can never target an unscanned path.
type CleanPlan struct {
	Paths  []string `json:"paths"`
	DryRun bool     `json:"dry_run"`
}

// Count returns the number of paths in the plan.
func (p *CleanPlan) Count() int {
	return len(p.Paths)
}

// CleanFailure records one path that could not be deleted.
type CleanFailure struct {
	Path  string `json:"path"`
	Error string `json:"error"`
}

// CleanResult accumulates the outcome of executing a CleanPlan. Deleted
// and the paths behind Failed are disjoint; every plan path lands in
// exactly one of deleted, failed, or skipped-as-already-covered.
type CleanResult struct {
	Deleted    []string       `json:"deleted"`
	Failed     []CleanFailure `json:"failed"`
	BytesFreed int64          `json:"bytes_freed"`
	WasDryRun  bool           `json:"was_dry_run"`
}

// DeletedCount returns the number of successfully deleted paths.
func (r *CleanResult) DeletedCount() int {
	return len(r.Deleted)
}

// FailedCount returns the number of failed paths.
func (r *CleanResult) FailedCount() int {
	return len(r.Failed)
}

// IsSuccess reports whether every attempted deletion succeeded.
func (r *CleanResult) IsSuccess() bool {
	return len(r.Failed) == 0
}
