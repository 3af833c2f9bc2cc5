// Package dto converts engine result types into UI-facing records:
// string paths, stable kind identifiers, and precomputed display strings.
// These records are what the JSON output and any graphical shell consume.
package dto

import (
	"github.com/crlotwhite/devjunk/internal/junk"
	"github.com/crlotwhite/devjunk/pkg/format"
)

// ScanItem is the serializable form of one matched junk directory.
type ScanItem struct {
	Path        string `json:"path"`
	Kind        string `json:"kind"`
	KindDisplay string `json:"kindDisplay"`
	SizeBytes   int64  `json:"sizeBytes"`
	SizeDisplay string `json:"sizeDisplay"`
	FileCount   int64  `json:"fileCount"`
}

// ScanResult is the serializable form of a scan result, with totals
// precomputed.
type ScanResult struct {
	Items            []ScanItem `json:"items"`
	TotalSizeBytes   int64      `json:"totalSizeBytes"`
	TotalSizeDisplay string     `json:"totalSizeDisplay"`
	TotalFileCount   int64      `json:"totalFileCount"`
	ItemCount        int        `json:"itemCount"`
}

// CleanFailure is one failed deletion.
type CleanFailure struct {
	Path  string `json:"path"`
	Error string `json:"error"`
}

// CleanResult is the serializable form of a clean result.
type CleanResult struct {
	Deleted           []string       `json:"deleted"`
	DeletedCount      int            `json:"deletedCount"`
	Failed            []CleanFailure `json:"failed"`
	FailedCount       int            `json:"failedCount"`
	BytesFreed        int64          `json:"bytesFreed"`
	BytesFreedDisplay string         `json:"bytesFreedDisplay"`
	WasDryRun         bool           `json:"wasDryRun"`
	IsSuccess         bool           `json:"isSuccess"`
}

// KindInfo describes one catalog entry.
type KindInfo struct {
	ID          string   `json:"id"`
	DisplayName string   `json:"displayName"`
	Patterns    []string `json:"patterns"`
}

// FromScanItem converts a single scan item.
func FromScanItem(item junk.ScanItem) ScanItem {
	return ScanItem{
		Path:        item.Path,
		Kind:        string(item.Kind),
		KindDisplay: item.Kind.DisplayName(),
		SizeBytes:   item.SizeBytes,
		SizeDisplay: format.Bytes(item.SizeBytes),
		FileCount:   item.FileCount,
	}
}

// FromScanResult converts a scan result.
func FromScanResult(result *junk.ScanResult) *ScanResult {
	items := make([]ScanItem, len(result.Items))
	for i, item := range result.Items {
		items[i] = FromScanItem(item)
	}
	return &ScanResult{
		Items:            items,
		TotalSizeBytes:   result.TotalSizeBytes(),
		TotalSizeDisplay: format.Bytes(result.TotalSizeBytes()),
		TotalFileCount:   result.TotalFileCount(),
		ItemCount:        result.ItemCount(),
	}
}

// FromCleanResult converts a clean result.
func FromCleanResult(result *junk.CleanResult) *CleanResult {
	failed := make([]CleanFailure, len(result.Failed))
	for i, f := range result.Failed {
		failed[i] = CleanFailure{Path: f.Path, Error: f.Error}
	}
	deleted := make([]string, len(result.Deleted))
	copy(deleted, result.Deleted)
	return &CleanResult{
		Deleted:           deleted,
		DeletedCount:      result.DeletedCount(),
		Failed:            failed,
		FailedCount:       result.FailedCount(),
		BytesFreed:        result.BytesFreed,
		BytesFreedDisplay: format.Bytes(result.BytesFreed),
		WasDryRun:         result.WasDryRun,
		IsSuccess:         result.IsSuccess(),
	}
}

// Kinds returns the full catalog in stable order.
func Kinds() []KindInfo {
	all := junk.AllKinds()
	out := make([]KindInfo, len(all))
	for i, k := range all {
		out[i] = KindInfo{
			ID:          string(k),
			DisplayName: k.DisplayName(),
			Patterns:    k.Patterns(),
		}
	}
	return out
}
