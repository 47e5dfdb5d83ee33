// Package main implements the structor-validator CLI tool. It validates
// questionnaire document snapshots and checks FHIR questionnaires before
// import.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	structor "github.com/helsenorge/structor-export-sub000"
)

// exitError carries a process exit code without printing anything more.
type exitError struct{ code int }

func (e exitError) Error() string { return fmt.Sprintf("exit status %d", e.code) }

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		if e, ok := err.(exitError); ok {
			os.Exit(e.code)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "structor-validator",
		Short:         "Questionnaire validator for the Structor form builder",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().String("config", "", "Config file (yaml, json or toml)")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn, error, none")
	rootCmd.PersistentFlags().String("log-format", "console", "Log format: console, json")
	rootCmd.PersistentFlags().String("lang", "", "Message language, e.g. nb-NO (default English)")
	rootCmd.PersistentFlags().StringSlice("languages", nil, "Supported questionnaire languages")
	rootCmd.PersistentFlags().String("output", string(OutputText), "Output format: text, json")
	rootCmd.PersistentFlags().Bool("strict", false, "Treat warnings as errors")
	rootCmd.PersistentFlags().Int("workers", 0, "Files validated in parallel (default one per CPU)")

	rootCmd.AddCommand(validateCmd())
	rootCmd.AddCommand(importCheckCmd())
	rootCmd.AddCommand(versionCmd())
	return rootCmd
}

func validateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <snapshot.json>...",
		Short: "Validate questionnaire document snapshots",
		Long: `Validate questionnaire document snapshots.

Use "-" to read a snapshot from stdin. Arguments may be glob patterns.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return exitCode(runValidate(cfg, args, cmd.OutOrStdout()))
		},
	}
	cmd.Flags().String("url-prefix", "", "Expected questionnaire url prefix")
	cmd.Flags().Bool("check-expressions", false, "Compile calculated expressions with FHIRPath")
	return cmd
}

func importCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import-check <questionnaire-or-bundle.json>...",
		Short: "Check language and bundle rules of FHIR questionnaires before import",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return exitCode(runImportCheck(cfg, args, cmd.OutOrStdout()))
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the validator version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "structor-validator v%s\n", structor.Version)
		},
	}
}

func exitCode(code int) error {
	if code == 0 {
		return nil
	}
	return exitError{code: code}
}
