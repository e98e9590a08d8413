package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"plancheck-hq/plancheck/pkg/checklist"
	"plancheck-hq/plancheck/pkg/cli"
	"plancheck-hq/plancheck/pkg/compliance"
	"plancheck-hq/plancheck/pkg/config"
	"plancheck-hq/plancheck/pkg/extract"
)

var checkFlags struct {
	file      string
	dir       string
	checklist string
	format    string
	maxPages  int
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Evaluate building plan PDFs locally",
	Long: `Evaluate one or more building plan PDFs against the active checklist
without starting a server.

Each document is scored the same way the /analyze endpoint scores it:
text is extracted from the PDF, lowercased, and matched against every
checklist rule, yielding a pass rate and the list of failed criteria.

Examples:
  # Check a single plan
  plancheck check --file plan.pdf

  # Check every PDF in a directory
  plancheck check --dir plans/

  # Use a custom checklist
  plancheck check --file plan.pdf --checklist checklists/dbc-2021.yaml

  # JSON output for CI/CD
  plancheck check --file plan.pdf --format json`,
	RunE: checkPlans,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVarP(&checkFlags.file, "file", "f", "", "plan PDF to evaluate")
	checkCmd.Flags().StringVarP(&checkFlags.dir, "dir", "d", "", "directory of plan PDFs")
	checkCmd.Flags().StringVar(&checkFlags.checklist, "checklist", "", "checklist file (default: built-in Dubai Building Code 2021)")
	checkCmd.Flags().StringVar(&checkFlags.format, "format", "text", "output format: text, json")
	checkCmd.Flags().IntVar(&checkFlags.maxPages, "max-pages", config.DefaultExtractionMaxPages, "maximum pages to extract per document")
}

// CheckResult is the evaluation outcome for a single document.
type CheckResult struct {
	File     string               `json:"file"`
	PassRate int                  `json:"pass_rate"`
	Failed   []compliance.Failure `json:"failed"`
	Error    string               `json:"error,omitempty"`
}

func checkPlans(cmd *cobra.Command, args []string) error {
	if checkFlags.file == "" && checkFlags.dir == "" {
		return fmt.Errorf("either --file or --dir must be specified")
	}

	var files []string
	if checkFlags.file != "" {
		files = append(files, checkFlags.file)
	}
	if checkFlags.dir != "" {
		matches, err := filepath.Glob(filepath.Join(checkFlags.dir, "*.pdf"))
		if err != nil {
			return fmt.Errorf("failed to list plan files: %w", err)
		}
		files = append(files, matches...)
	}
	if len(files) == 0 {
		return fmt.Errorf("no plan files found")
	}

	reg, err := loadCheckRegistry()
	if err != nil {
		return cli.NewConfigError("checklist", err.Error())
	}

	// Keep extraction noise out of the report output.
	quiet := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	extractor := extract.New(checkFlags.maxPages, quiet)

	var progress cli.ProgressReporter
	if checkFlags.format == "text" && len(files) > 1 {
		progress = cli.NewProgressReporter(os.Stderr)
		progress.Start(int64(len(files)))
	}

	results := make([]CheckResult, 0, len(files))
	failures := 0
	for i, file := range files {
		result := evaluateFile(file, extractor, reg)
		if result.Error != "" || result.PassRate < 100 {
			failures++
		}
		results = append(results, result)
		if progress != nil {
			progress.Update(int64(i + 1))
		}
	}
	if progress != nil {
		progress.Finish()
	}

	formatter := cli.NewFormatter(cli.OutputFormat(checkFlags.format))
	if checkFlags.format == "json" {
		if err := formatter.FormatTo(os.Stdout, results); err != nil {
			return cli.NewCommandError("check", err)
		}
	} else {
		printCheckResults(results)
	}

	if failures > 0 {
		return cli.NewCommandError("check", fmt.Errorf("%d of %d document(s) failed screening", failures, len(files)))
	}
	return nil
}

func loadCheckRegistry() (*checklist.Registry, error) {
	if checkFlags.checklist == "" {
		return checklist.DefaultRegistry(), nil
	}
	return checklist.LoadFile(checkFlags.checklist)
}

func evaluateFile(path string, extractor *extract.Extractor, reg *checklist.Registry) CheckResult {
	result := CheckResult{File: path, Failed: []compliance.Failure{}}

	data, err := os.ReadFile(path)
	if err != nil {
		result.Error = fmt.Sprintf("failed to read file: %v", err)
		return result
	}

	text, err := extractor.Text(data)
	if err != nil {
		result.Error = fmt.Sprintf("failed to extract text: %v", err)
		return result
	}

	report := compliance.Evaluate(extract.Normalize(text), reg)
	result.PassRate = report.PassRate
	result.Failed = report.Failed
	return result
}

func printCheckResults(results []CheckResult) {
	for _, result := range results {
		if result.Error != "" {
			fmt.Printf("✗ %s: %s\n\n", result.File, result.Error)
			continue
		}

		marker := "✓"
		if result.PassRate < 100 {
			marker = "✗"
		}
		fmt.Printf("%s %s: %d%% pass rate, %d failed\n", marker, result.File, result.PassRate, len(result.Failed))
		for _, failure := range result.Failed {
			fmt.Printf("    [%s] %s\n", failure.Code, failure.Description)
		}
		fmt.Println()
	}
}
