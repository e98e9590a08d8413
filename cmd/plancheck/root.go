package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "plancheck",
	Short: "Plancheck - building plan compliance screening service",
	Long: `Plancheck screens building plan documents against the Dubai Building
Code 2021 and answers narrative compliance questions through an AI provider.

It exposes an HTTP API providing:
  - Deterministic checklist evaluation of uploaded PDF plans
  - Pass-rate scoring with per-rule failure descriptions
  - Hot-reloadable YAML checklists
  - An AI chat endpoint for compliance questions
  - Health, readiness, and Prometheus metrics endpoints`,
	Version: Version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global persistent flags (available to all subcommands)
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "config.yaml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
