package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/crlotwhite/devjunk/internal/cleaner"
	"github.com/crlotwhite/devjunk/internal/config"
	"github.com/crlotwhite/devjunk/internal/junk"
	"github.com/crlotwhite/devjunk/internal/logging"
	"github.com/crlotwhite/devjunk/internal/reporter"
	"github.com/crlotwhite/devjunk/internal/scanner"
	"github.com/crlotwhite/devjunk/internal/ui"
	"github.com/crlotwhite/devjunk/pkg/format"
)

var (
	Version = "0.1.0"
)

var (
	cfgPath       string
	verbose       bool
	maxDepth      int
	includeHidden bool
	jsonOut       bool
	excludePaths  []string
	excludeNames  []string
	kindFilters   []string
	dryRun        bool
	assumeYes     bool
	noProgress    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "devjunk",
	Short: "Scan and clean development junk directories",
	Long: `DevJunk finds regenerable development artifacts (node_modules, target,
__pycache__, virtual environments, build outputs) beneath your project
trees, reports how much disk they occupy, and optionally deletes them.`,
	Version: Version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Init(verbose)
		if !isatty.IsTerminal(os.Stdout.Fd()) {
			color.NoColor = true
		}
	},
}

var scanCmd = &cobra.Command{
	Use:   "scan [paths...]",
	Short: "Scan directories for development junk",
	Long:  `Scans the given paths (default: current directory) and reports every junk directory found, largest first.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		scanCfg, err := buildScanConfig(args)
		if err != nil {
			return err
		}

		result, err := runScan(scanCfg)
		if err != nil {
			return err
		}

		f := reporter.FormatTable
		if jsonOut {
			f = reporter.FormatJSON
		}
		return reporter.New(os.Stdout, f).ScanReport(result)
	},
}

var cleanCmd = &cobra.Command{
	Use:   "clean [paths...]",
	Short: "Delete development junk directories",
	Long:  `Scans the given paths and deletes every junk directory found, after confirmation.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		scanCfg, err := buildScanConfig(args)
		if err != nil {
			return err
		}

		result, err := runScan(scanCfg)
		if err != nil {
			return err
		}

		if result.ItemCount() == 0 {
			fmt.Println("No junk directories found.")
			return nil
		}

		rptr := reporter.New(os.Stdout, reporter.FormatTable)
		if !jsonOut {
			if err := rptr.ScanReport(result); err != nil {
				return err
			}
		}

		plan := cleaner.BuildPlan(result, result.Paths(), dryRun)

		if !assumeYes && !dryRun {
			color.Yellow("This will delete %d directories (%s).",
				plan.Count(), format.Bytes(result.TotalSizeBytes()))
			if !confirm("Continue?") {
				fmt.Println("Aborted.")
				return nil
			}
		}

		cleanResult, err := cleaner.Execute(plan)
		if err != nil {
			return err
		}

		if jsonOut {
			return reporter.New(os.Stdout, reporter.FormatJSON).CleanReport(cleanResult)
		}
		if err := rptr.CleanReport(cleanResult); err != nil {
			return err
		}
		if cleanResult.IsSuccess() {
			if !cleanResult.WasDryRun && cleanResult.DeletedCount() > 0 {
				color.Green("Freed %s.", format.Bytes(cleanResult.BytesFreed))
			}
		} else {
			color.Red("%d directories could not be deleted.", cleanResult.FailedCount())
		}
		return nil
	},
}

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List supported junk directory types",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Printf("%-20s %-15s %s\n", "Type", "ID", "Patterns")
		fmt.Println(strings.Repeat("-", 60))
		for _, k := range junk.AllKinds() {
			fmt.Printf("%-20s %-15s %s\n",
				k.DisplayName(), string(k), strings.Join(k.Patterns(), ", "))
		}
		fmt.Println()
	},
}

// buildScanConfig merges the config file with command-line flags and
// resolves the scan roots to absolute paths.
func buildScanConfig(args []string) (*junk.ScanConfig, error) {
	path := cfgPath
	if path == "" {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			return nil, err
		}
	}

	fileCfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	if maxDepth > 0 {
		fileCfg.MaxDepth = maxDepth
	}
	if includeHidden {
		fileCfg.IncludeHidden = true
	}
	if len(kindFilters) > 0 {
		fileCfg.Kinds = kindFilters
	}
	fileCfg.ExcludeNames = append(fileCfg.ExcludeNames, excludeNames...)

	if len(args) == 0 {
		args = []string{"."}
	}
	roots := make([]string, len(args))
	for i, a := range args {
		abs, err := filepath.Abs(a)
		if err != nil {
			return nil, err
		}
		roots[i] = abs
	}

	for _, exc := range excludePaths {
		abs, err := filepath.Abs(exc)
		if err != nil {
			return nil, err
		}
		fileCfg.ExcludePaths = append(fileCfg.ExcludePaths, abs)
	}

	return fileCfg.ScanConfig(roots)
}

// runScan runs the scan with a live progress view on a TTY, or plainly
// otherwise.
func runScan(cfg *junk.ScanConfig) (*junk.ScanResult, error) {
	interactive := isatty.IsTerminal(os.Stdout.Fd()) && !jsonOut && !noProgress
	if !interactive {
		return scanner.Scan(cfg)
	}

	model := ui.NewScanModel(cfg)
	if _, err := tea.NewProgram(model).Run(); err != nil {
		// The progress view is cosmetic; fall back to a plain scan.
		return scanner.Scan(cfg)
	}
	if model.Err() != nil {
		return nil, model.Err()
	}
	if model.Result() == nil {
		// Interrupted before the scan finished.
		os.Exit(130)
	}
	return model.Result(), nil
}

func confirm(prompt string) bool {
	fmt.Printf("%s [y/N] ", prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(line), "y")
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	for _, cmd := range []*cobra.Command{scanCmd, cleanCmd} {
		cmd.Flags().IntVarP(&maxDepth, "max-depth", "d", 0, "maximum depth to scan (0 = unlimited)")
		cmd.Flags().BoolVar(&includeHidden, "include-hidden", false, "descend into hidden directories")
		cmd.Flags().BoolVar(&jsonOut, "json", false, "output in JSON format")
		cmd.Flags().StringSliceVar(&excludePaths, "exclude", nil, "paths to exclude from scanning")
		cmd.Flags().StringSliceVar(&excludeNames, "exclude-name", nil, "directory-name globs to exclude")
		cmd.Flags().StringSliceVarP(&kindFilters, "kind", "k", nil, "junk kind IDs to search for (default all)")
		cmd.Flags().BoolVar(&noProgress, "no-progress", false, "disable the live progress view")
	}

	cleanCmd.Flags().BoolVar(&dryRun, "dry-run", false, "report what would be deleted without deleting")
	cleanCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "skip the confirmation prompt")

	rootCmd.AddCommand(scanCmd, cleanCmd, typesCmd)
}
