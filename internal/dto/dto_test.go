package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crlotwhite/devjunk/internal/junk"
)

func TestFromScanResult(t *testing.T) {
	result := &junk.ScanResult{
		Items: []junk.ScanItem{
			{Path: "/p/node_modules", Kind: junk.NodeModules, SizeBytes: 1024, FileCount: 12},
			{Path: "/p/target", Kind: junk.RustTarget, SizeBytes: 500, FileCount: 3},
		},
	}

	d := FromScanResult(result)

	require.Len(t, d.Items, 2)
	assert.Equal(t, "/p/node_modules", d.Items[0].Path)
	assert.Equal(t, "node_modules", d.Items[0].Kind)
	assert.Equal(t, "Node Modules", d.Items[0].KindDisplay)
	assert.Equal(t, "1.00 KB", d.Items[0].SizeDisplay)
	assert.Equal(t, "500 B", d.Items[1].SizeDisplay)
	assert.Equal(t, int64(1524), d.TotalSizeBytes)
	assert.Equal(t, int64(15), d.TotalFileCount)
	assert.Equal(t, 2, d.ItemCount)
}

func TestFromCleanResult(t *testing.T) {
	result := &junk.CleanResult{
		Deleted:    []string{"/p/node_modules"},
		Failed:     []junk.CleanFailure{{Path: "/p/target", Error: "permission denied"}},
		BytesFreed: 2048,
		WasDryRun:  true,
	}

	d := FromCleanResult(result)

	assert.Equal(t, 1, d.DeletedCount)
	assert.Equal(t, 1, d.FailedCount)
	assert.Equal(t, "2.00 KB", d.BytesFreedDisplay)
	assert.True(t, d.WasDryRun)
	assert.False(t, d.IsSuccess)
}

func TestScanItemJSONShape(t *testing.T) {
	item := FromScanItem(junk.ScanItem{
		Path: "/p/.venv", Kind: junk.PythonVenv, SizeBytes: 10, FileCount: 1,
	})

	raw, err := json.Marshal(item)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	for _, key := range []string{"path", "kind", "kindDisplay", "sizeBytes", "sizeDisplay", "fileCount"} {
		assert.Contains(t, decoded, key)
	}
	assert.Equal(t, "python_venv", decoded["kind"])
}

func TestKindsCatalog(t *testing.T) {
	kinds := Kinds()

	require.Len(t, kinds, len(junk.AllKinds()))
	assert.Equal(t, "python_venv", kinds[0].ID)
	assert.Equal(t, "Python Venv", kinds[0].DisplayName)
	assert.Equal(t, []string{".venv", "venv"}, kinds[0].Patterns)
}
