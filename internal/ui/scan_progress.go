// Package ui provides the interactive terminal view shown while a scan
// is running.
package ui

import (
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/crlotwhite/devjunk/internal/junk"
	"github.com/crlotwhite/devjunk/internal/scanner"
	"github.com/crlotwhite/devjunk/internal/ui/styles"
	"github.com/crlotwhite/devjunk/pkg/format"
)

// emitEvery throttles progress updates relayed to the view. The engine
// makes no throttling guarantee, so the consumer side rate-limits.
const emitEvery = 50 * time.Millisecond

type progressMsg scanner.Progress

type scanDoneMsg struct {
	result *junk.ScanResult
	err    error
}

// ScanModel renders a spinner plus live counters while the scan engine
// runs in the background.
type ScanModel struct {
	cfg      *junk.ScanConfig
	spinner  spinner.Model
	progress scanner.Progress
	updates  chan scanner.Progress
	start    time.Time
	done     bool

	result *junk.ScanResult
	err    error
}

// NewScanModel creates a model that will scan with the given config when
// run.
func NewScanModel(cfg *junk.ScanConfig) *ScanModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.SpinnerStyle

	return &ScanModel{
		cfg:     cfg,
		spinner: s,
		updates: make(chan scanner.Progress, 16),
		start:   time.Now(),
	}
}

// Result returns the scan result once the program has finished.
func (m *ScanModel) Result() *junk.ScanResult { return m.result }

// Err returns the scan error, if any, once the program has finished.
func (m *ScanModel) Err() error { return m.err }

func (m *ScanModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.runScan, m.nextProgress)
}

// runScan executes the scan off the UI loop, feeding throttled progress
// snapshots into the updates channel.
func (m *ScanModel) runScan() tea.Msg {
	var lastEmit atomic.Int64

	result, err := scanner.ScanWithProgress(m.cfg, func(p scanner.Progress) {
		now := time.Now().UnixNano()
		last := lastEmit.Load()
		if now-last < int64(emitEvery) {
			return
		}
		if !lastEmit.CompareAndSwap(last, now) {
			return
		}
		select {
		case m.updates <- p:
		default:
		}
	})

	return scanDoneMsg{result: result, err: err}
}

func (m *ScanModel) nextProgress() tea.Msg {
	return progressMsg(<-m.updates)
}

func (m *ScanModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case progressMsg:
		m.progress = scanner.Progress(msg)
		return m, m.nextProgress

	case scanDoneMsg:
		m.done = true
		m.result = msg.result
		m.err = msg.err
		return m, tea.Quit

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m *ScanModel) View() string {
	if m.done {
		return ""
	}

	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render("Scanning for junk directories"))
	b.WriteString("\n\n")

	b.WriteString(m.spinner.View())
	b.WriteString(" ")
	b.WriteString(styles.DimStyle.Render(fmt.Sprintf("(%s)", format.Duration(time.Since(m.start)))))
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("  Directories visited: %d\n", m.progress.DirsVisited))
	b.WriteString(fmt.Sprintf("  Junk found: %d (%s)\n",
		m.progress.ItemsFound,
		styles.FileSizeStyle.Render(format.Bytes(m.progress.BytesFound))))

	if m.progress.CurrentPath != "" {
		b.WriteString("\n")
		b.WriteString(styles.DimStyle.Render("  Current: "))
		b.WriteString(styles.FilePathStyle.Render(truncatePath(m.progress.CurrentPath, 60)))
		b.WriteString("\n")
	}

	return b.String()
}

func truncatePath(path string, width int) string {
	if len(path) <= width {
		return path
	}
	return "..." + path[len(path)-width+3:]
}
