package scanner

import "sync/atomic"

// progressTracker accumulates scan-wide counters across the per-root
// walkers and relays them to the caller's callback. Counters are atomic;
// no other state is shared between walkers.
type progressTracker struct {
	fn    ProgressFunc
	dirs  atomic.Int64
	bytes atomic.Int64
	items atomic.Int64
}

func (t *progressTracker) visit(path string) {
	if t.dirs.Add(1)%progressInterval == 0 {
		t.emit(path)
	}
}

func (t *progressTracker) addItem(size int64, path string) {
	t.items.Add(1)
	t.bytes.Add(size)
	t.emit(path)
}

// flush emits a final snapshot once all walkers are done.
func (t *progressTracker) flush() {
	t.emit("")
}

func (t *progressTracker) emit(path string) {
	if t.fn == nil {
		return
	}
	t.fn(Progress{
		DirsVisited: t.dirs.Load(),
		BytesFound:  t.bytes.Load(),
		ItemsFound:  t.items.Load(),
		CurrentPath: path,
	})
}
