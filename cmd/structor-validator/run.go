package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/helsenorge/structor-export-sub000/pkg/issue"
	"github.com/helsenorge/structor-export-sub000/pkg/snapshot"
	"github.com/helsenorge/structor-export-sub000/pkg/validator"
	"github.com/helsenorge/structor-export-sub000/pkg/worker"
)

// ValidationOutput represents the JSON output for one input file.
type ValidationOutput struct {
	Resource          string                  `json:"resource"`
	Valid             bool                    `json:"valid"`
	Errors            int                     `json:"errors"`
	Warnings          int                     `json:"warnings"`
	Issues            []issue.ValidationError `json:"issues"`
	TranslationErrors map[string]int          `json:"translationErrors,omitempty"`
	MarkdownAttention bool                    `json:"markdownAttention,omitempty"`
	Duration          string                  `json:"duration,omitempty"`
	Failure           string                  `json:"failure,omitempty"`
}

// input is one file (or stdin) to process.
type input struct {
	name string
	data []byte
	err  error
}

// readInputs expands glob patterns and reads every matching file. "-" reads
// stdin.
func readInputs(args []string) []input {
	var inputs []input
	for _, arg := range args {
		if arg == "-" {
			data, err := io.ReadAll(os.Stdin)
			inputs = append(inputs, input{name: "stdin", data: data, err: err})
			continue
		}
		matches, err := filepath.Glob(arg)
		if err != nil {
			inputs = append(inputs, input{name: arg, err: fmt.Errorf("bad pattern: %w", err)})
			continue
		}
		if len(matches) == 0 {
			inputs = append(inputs, input{name: arg, err: fmt.Errorf("no files match pattern")})
			continue
		}
		for _, m := range matches {
			data, err := os.ReadFile(m)
			inputs = append(inputs, input{name: m, data: data, err: err})
		}
	}
	return inputs
}

func runValidate(cfg *Config, args []string, w io.Writer) int {
	opts, err := cfg.validatorOptions()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	v := validator.New(opts...)

	batch := worker.NewBatch(func(_ context.Context, in input) ValidationOutput {
		return validateInput(v, in)
	}, cfg.Workers)
	return finish(cfg, w, batch.Run(context.Background(), readInputs(args)).Results)
}

func validateInput(v *validator.Validator, in input) ValidationOutput {
	out := ValidationOutput{Resource: in.name, Issues: []issue.ValidationError{}}
	if in.err != nil {
		out.Failure = fmt.Sprintf("failed to read input: %v", in.err)
		return out
	}
	start := time.Now()
	report, err := v.ValidateJSON(in.data)
	if err != nil {
		out.Failure = err.Error()
		return out
	}
	out.Valid = !report.HasErrors()
	out.Errors = report.ErrorCount()
	out.Warnings = report.WarningCount()
	out.Issues = report.Errors
	out.TranslationErrors = report.TranslationErrors
	out.MarkdownAttention = report.MarkdownAttention
	out.Duration = time.Since(start).Round(time.Microsecond).String()
	return out
}

func runImportCheck(cfg *Config, args []string, w io.Writer) int {
	opts, err := cfg.validatorOptions()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	v := validator.New(opts...)

	batch := worker.NewBatch(func(_ context.Context, in input) ValidationOutput {
		return checkImportInput(v, in)
	}, cfg.Workers)
	return finish(cfg, w, batch.Run(context.Background(), readInputs(args)).Results)
}

func checkImportInput(v *validator.Validator, in input) ValidationOutput {
	out := ValidationOutput{Resource: in.name, Issues: []issue.ValidationError{}}
	if in.err != nil {
		out.Failure = fmt.Sprintf("failed to read input: %v", in.err)
		return out
	}
	errs, err := v.ValidateImport(in.data)
	if err != nil {
		out.Failure = err.Error()
		return out
	}
	out.Issues = errs
	out.Errors = issue.CountLevel(errs, issue.LevelError)
	out.Warnings = issue.CountLevel(errs, issue.LevelWarning)
	out.Valid = out.Errors == 0
	return out
}

// finish writes the outputs and returns the process exit code.
func finish(cfg *Config, w io.Writer, outputs []ValidationOutput) int {
	writeOutputs(cfg, w, outputs)
	for _, out := range outputs {
		if !out.Valid || (cfg.Strict && out.Warnings > 0) {
			return 1
		}
	}
	return 0
}

func writeOutputs(cfg *Config, w io.Writer, outputs []ValidationOutput) {
	if cfg.Output == OutputJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		_ = enc.Encode(outputs)
		return
	}
	for i := range outputs {
		printText(w, &outputs[i])
	}
}

func printText(w io.Writer, out *ValidationOutput) {
	fmt.Fprintf(w, "== %s ==\n", out.Resource)
	if out.Failure != "" {
		fmt.Fprintf(w, "Status: FAILED\n  %s\n\n", out.Failure)
		return
	}
	status := "VALID"
	if !out.Valid {
		status = "INVALID"
	}
	fmt.Fprintf(w, "Status: %s\n", status)
	fmt.Fprintf(w, "Errors: %d, Warnings: %d\n", out.Errors, out.Warnings)
	if out.Duration != "" {
		fmt.Fprintf(w, "Duration: %s\n", out.Duration)
	}
	for _, lang := range sortedLanguages(out.TranslationErrors) {
		fmt.Fprintf(w, "Translation errors [%s]: %d\n", lang, out.TranslationErrors[lang])
	}
	if out.MarkdownAttention {
		fmt.Fprintln(w, "Markdown contains HTML that will be removed when rendered")
	}
	if len(out.Issues) > 0 {
		fmt.Fprintln(w, "\nIssues:")
		for _, e := range out.Issues {
			fmt.Fprintf(w, "  %s\n", e.String())
		}
	}
	fmt.Fprintln(w)
}

func sortedLanguages(counts map[string]int) []string {
	return snapshot.SortedKeys(counts)
}
