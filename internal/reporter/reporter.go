// Package reporter renders scan and clean results as tables, summaries,
// or JSON on an io.Writer.
package reporter

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/crlotwhite/devjunk/internal/dto"
	"github.com/crlotwhite/devjunk/internal/junk"
	"github.com/crlotwhite/devjunk/pkg/format"
)

// OutputFormat selects how results are rendered.
type OutputFormat string

const (
	FormatTable   OutputFormat = "table"
	FormatJSON    OutputFormat = "json"
	FormatSummary OutputFormat = "summary"
)

// Reporter writes formatted reports.
type Reporter struct {
	w      io.Writer
	format OutputFormat
}

// New creates a Reporter writing to w in the given format.
func New(w io.Writer, f OutputFormat) *Reporter {
	return &Reporter{w: w, format: f}
}

// ScanReport renders a scan result.
func (r *Reporter) ScanReport(result *junk.ScanResult) error {
	switch r.format {
	case FormatTable:
		return r.scanTable(result)
	case FormatJSON:
		return r.writeJSON(dto.FromScanResult(result))
	case FormatSummary:
		return r.scanSummary(result)
	default:
		return fmt.Errorf("unsupported format: %s", r.format)
	}
}

// CleanReport renders a clean result.
func (r *Reporter) CleanReport(result *junk.CleanResult) error {
	switch r.format {
	case FormatJSON:
		return r.writeJSON(dto.FromCleanResult(result))
	case FormatTable, FormatSummary:
		return r.cleanSummary(result)
	default:
		return fmt.Errorf("unsupported format: %s", r.format)
	}
}

func (r *Reporter) scanTable(result *junk.ScanResult) error {
	if result.ItemCount() == 0 {
		fmt.Fprintln(r.w, "No junk directories found.")
		return nil
	}

	fmt.Fprintln(r.w)
	fmt.Fprintf(r.w, "%-60s %-15s %12s %10s\n", "Path", "Type", "Size", "Files")
	fmt.Fprintln(r.w, strings.Repeat("-", 100))

	for _, item := range result.Items {
		fmt.Fprintf(r.w, "%-60s %-15s %12s %10d\n",
			truncatePath(item.Path, 58),
			item.Kind.DisplayName(),
			format.Bytes(item.SizeBytes),
			item.FileCount)
	}

	fmt.Fprintln(r.w, strings.Repeat("-", 100))
	fmt.Fprintf(r.w, "Total: %d directories, %s, %d files\n",
		result.ItemCount(),
		format.Bytes(result.TotalSizeBytes()),
		result.TotalFileCount())
	fmt.Fprintln(r.w)
	return nil
}

func (r *Reporter) scanSummary(result *junk.ScanResult) error {
	fmt.Fprintf(r.w, "Found %d junk directories (%s, %d files)\n",
		result.ItemCount(),
		format.Bytes(result.TotalSizeBytes()),
		result.TotalFileCount())

	for kind, sub := range groupByKind(result) {
		fmt.Fprintf(r.w, "  %s: %d directories, %s\n",
			kind.DisplayName(), sub.ItemCount(), format.Bytes(sub.TotalSizeBytes()))
	}
	return nil
}

func (r *Reporter) cleanSummary(result *junk.CleanResult) error {
	fmt.Fprintln(r.w)
	if result.WasDryRun {
		fmt.Fprintln(r.w, "DRY RUN - no directories were deleted")
		fmt.Fprintln(r.w)
	}

	if len(result.Deleted) > 0 {
		action := "Deleted"
		if result.WasDryRun {
			action = "Would delete"
		}
		fmt.Fprintf(r.w, "%s: %d directories (%s)\n",
			action, result.DeletedCount(), format.Bytes(result.BytesFreed))
	}

	if len(result.Failed) > 0 {
		fmt.Fprintf(r.w, "Failed to delete %d directories:\n", result.FailedCount())
		for _, f := range result.Failed {
			fmt.Fprintf(r.w, "  %s - %s\n", f.Path, f.Error)
		}
	}

	fmt.Fprintln(r.w)
	return nil
}

func (r *Reporter) writeJSON(v any) error {
	enc := json.NewEncoder(r.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// groupByKind splits a result into per-kind sub-results.
func groupByKind(result *junk.ScanResult) map[junk.Kind]*junk.ScanResult {
	grouped := make(map[junk.Kind]*junk.ScanResult)
	for _, item := range result.Items {
		sub, ok := grouped[item.Kind]
		if !ok {
			sub = &junk.ScanResult{}
			grouped[item.Kind] = sub
		}
		sub.Items = append(sub.Items, item)
	}
	return grouped
}

func truncatePath(path string, width int) string {
	if len(path) <= width {
		return path
	}
	return "..." + path[len(path)-width+3:]
}
