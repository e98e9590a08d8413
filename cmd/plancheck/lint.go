package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"plancheck-hq/plancheck/pkg/checklist"
	"plancheck-hq/plancheck/pkg/cli"
)

var lintFlags struct {
	file   string
	dir    string
	format string
}

var lintCmd = &cobra.Command{
	Use:   "lint",
	Short: "Validate checklist files",
	Long: `Validate checklist YAML files for syntax and structural errors.

The lint command parses checklist files and performs validation:
  - YAML syntax validation
  - Rule structure validation (codes, criteria)
  - Detector validation (regex patterns compile, phrase lists non-empty)

Examples:
  # Lint single file
  plancheck lint --file checklists/dbc-2021.yaml

  # Lint directory
  plancheck lint --dir checklists/

  # JSON output for CI/CD
  plancheck lint --file checklists/dbc-2021.yaml --format json`,
	RunE: lintChecklists,
}

func init() {
	rootCmd.AddCommand(lintCmd)

	lintCmd.Flags().StringVarP(&lintFlags.file, "file", "f", "", "checklist file to validate")
	lintCmd.Flags().StringVarP(&lintFlags.dir, "dir", "d", "", "directory of checklist files")
	lintCmd.Flags().StringVar(&lintFlags.format, "format", "text", "output format: text, json")
}

// LintResult represents the validation result for a single checklist file.
type LintResult struct {
	File  string `json:"file"`
	Valid bool   `json:"valid"`
	Rules int    `json:"rules,omitempty"`
	Error string `json:"error,omitempty"`
}

func lintChecklists(cmd *cobra.Command, args []string) error {
	if lintFlags.file == "" && lintFlags.dir == "" {
		return fmt.Errorf("either --file or --dir must be specified")
	}

	var files []string

	if lintFlags.file != "" {
		files = append(files, lintFlags.file)
	}

	if lintFlags.dir != "" {
		for _, pattern := range []string{"*.yaml", "*.yml"} {
			matches, err := filepath.Glob(filepath.Join(lintFlags.dir, pattern))
			if err != nil {
				return fmt.Errorf("failed to list checklist files: %w", err)
			}
			files = append(files, matches...)
		}
	}

	if len(files) == 0 {
		return fmt.Errorf("no checklist files found")
	}

	results := make([]LintResult, 0, len(files))
	for _, file := range files {
		results = append(results, validateChecklistFile(file))
	}

	if lintFlags.format == "json" {
		return outputLintJSON(results)
	}
	return outputLintText(results)
}

func validateChecklistFile(path string) LintResult {
	result := LintResult{File: path}

	reg, err := checklist.LoadFile(path)
	if err != nil {
		result.Error = err.Error()
		return result
	}

	result.Valid = true
	result.Rules = reg.Len()
	return result
}

func outputLintText(results []LintResult) error {
	totalErrors := 0

	for _, result := range results {
		fmt.Printf("Validating %s...\n", result.File)

		if result.Valid {
			fmt.Println("✓ Syntax valid")
			fmt.Printf("✓ All %d rules have valid detectors\n", result.Rules)
		} else {
			fmt.Printf("✗ Error: %s\n", result.Error)
			totalErrors++
		}

		fmt.Println()
	}

	fmt.Println("Summary:")
	fmt.Printf("  %d error(s) in %d file(s)\n", totalErrors, len(results))

	if totalErrors > 0 {
		return cli.NewCommandError("lint", fmt.Errorf("validation failed"))
	}
	return nil
}

func outputLintJSON(results []LintResult) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(results)
}
