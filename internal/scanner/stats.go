package scanner

import (
	"io/fs"
	"path/filepath"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// parallelStatsThreshold is the number of visited entries at which
// aggregation switches from sequential to parallel. Below it the
// dispatch overhead outweighs the win. Both paths produce identical
// output.
const parallelStatsThreshold = 1000

type statEntry struct {
	path  string
	entry fs.DirEntry
}

// DirStats returns the total byte size and count of regular files
// beneath path. Symlinks are never followed, and entries whose metadata
// cannot be read contribute zero to both sums.
func DirStats(path string) (sizeBytes, fileCount int64) {
	var entries []statEntry
	_ = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		entries = append(entries, statEntry{path: p, entry: d})
		return nil
	})

	if len(entries) < parallelStatsThreshold {
		return sumStats(entries)
	}
	return sumStatsParallel(entries)
}

func sumStats(entries []statEntry) (sizeBytes, fileCount int64) {
	for _, e := range entries {
		if !e.entry.Type().IsRegular() {
			continue
		}
		info, err := e.entry.Info()
		if err != nil {
			continue
		}
		sizeBytes += info.Size()
		fileCount++
	}
	return sizeBytes, fileCount
}

// sumStatsParallel partitions the entries across workers and reduces the
// partial sums on the calling goroutine. Each worker writes only its own
// slot, so no locking is needed.
func sumStatsParallel(entries []statEntry) (sizeBytes, fileCount int64) {
	workers := runtime.NumCPU()
	if workers > len(entries) {
		workers = len(entries)
	}
	chunk := (len(entries) + workers - 1) / workers

	type partial struct {
		bytes int64
		files int64
	}
	partials := make([]partial, workers)

	g := new(errgroup.Group)
	for w := range workers {
		lo := w * chunk
		hi := min(lo+chunk, len(entries))
		if lo >= hi {
			break
		}
		g.Go(func() error {
			b, f := sumStats(entries[lo:hi])
			partials[w] = partial{bytes: b, files: f}
			return nil
		})
	}
	_ = g.Wait()

	for _, p := range partials {
		sizeBytes += p.bytes
		fileCount += p.files
	}
	return sizeBytes, fileCount
}
