// Package validator runs every questionnaire rule over a document and
// collects the results into a Report.
package validator

import (
	"fmt"
	"regexp"
	"time"

	"github.com/helsenorge/structor-export-sub000/pkg/calculated"
	"github.com/helsenorge/structor-export-sub000/pkg/choice"
	"github.com/helsenorge/structor-export-sub000/pkg/expression"
	"github.com/helsenorge/structor-export-sub000/pkg/group"
	"github.com/helsenorge/structor-export-sub000/pkg/issue"
	"github.com/helsenorge/structor-export-sub000/pkg/metadata"
	"github.com/helsenorge/structor-export-sub000/pkg/model"
	"github.com/helsenorge/structor-export-sub000/pkg/receiver"
	"github.com/helsenorge/structor-export-sub000/pkg/settings"
	"github.com/helsenorge/structor-export-sub000/pkg/snapshot"
	"github.com/helsenorge/structor-export-sub000/pkg/structural"
	"github.com/helsenorge/structor-export-sub000/pkg/table"
	"github.com/helsenorge/structor-export-sub000/pkg/translation"
	"github.com/helsenorge/structor-export-sub000/pkg/walker"
)

var htmlTag = regexp.MustCompile(`</?[A-Za-z][A-Za-z0-9]*(\s[^<>]*)?/?>`)

// Validator validates questionnaire documents. It holds no per-document
// state and is safe for concurrent use.
type Validator struct {
	config  *Config
	checker *expression.Checker
	metrics *Metrics
}

// New creates a validator.
func New(opts ...Option) *Validator {
	config := DefaultConfig()
	for _, opt := range opts {
		opt(config)
	}
	v := &Validator{config: config, metrics: NewMetrics()}
	if config.ExpressionCheck {
		v.checker = expression.NewChecker()
	}
	return v
}

// Config returns the validator configuration.
func (v *Validator) Config() *Config {
	return v.config
}

// Metrics returns the metrics collected across all passes of this validator.
func (v *Validator) Metrics() *Metrics {
	return v.metrics
}

// run invokes one rule concern and records its metrics.
func (v *Validator) run(name string, rule func() []issue.ValidationError) []issue.ValidationError {
	start := time.Now()
	errs := rule()
	v.metrics.RecordConcern(name, time.Since(start), len(errs))
	return errs
}

// Validate runs one validation pass. The document must not be mutated while
// the pass runs; it is never modified by the pass.
func (v *Validator) Validate(doc *model.Document) *Report {
	start := time.Now()
	tr := v.config.Translator
	snap := snapshot.New(doc)

	report := &Report{Errors: []issue.ValidationError{}}
	nodes := 0
	walker.Walk(snap.Order(), func(ctx walker.NodeContext) bool {
		nodes++
		report.Errors = append(report.Errors, v.validateNode(tr, ctx.Node, snap)...)
		if item := snap.Item(ctx.Node.LinkID); item != nil && htmlTag.MatchString(snap.TraitsOf(item).Markdown) {
			report.MarkdownAttention = true
		}
		return true
	})

	report.Errors = append(report.Errors, v.run(ConcernOrder, func() []issue.ValidationError {
		return structural.ValidateOrder(tr, snap)
	})...)
	report.Errors = append(report.Errors, v.run(ConcernMetadata, func() []issue.ValidationError {
		return metadata.Validate(tr, snap, v.config.QuestionnaireURLPrefix)
	})...)
	report.Errors = append(report.Errors, v.run(ConcernSettings, func() []issue.ValidationError {
		return settings.Validate(tr, snap)
	})...)
	report.Errors = append(report.Errors, v.run(ConcernLanguage, func() []issue.ValidationError {
		return metadata.ValidateLanguage(tr, snap.Questionnaire().Language, v.config.SupportedLanguages)
	})...)
	var counts map[string]int
	report.Errors = append(report.Errors, v.run(ConcernTranslation, func() []issue.ValidationError {
		var errs []issue.ValidationError
		errs, counts = translation.Validate(tr, snap)
		return errs
	})...)
	report.TranslationErrors = counts

	report.Stats = &Stats{
		Items:     len(snap.Document().Items),
		Nodes:     nodes,
		Languages: len(counts),
		Duration:  time.Since(start),
	}
	v.metrics.RecordPass(report.Stats.Duration, report.Errors)
	v.config.Logger.Debug("validated %d nodes: %d errors, %d warnings in %v",
		nodes, report.ErrorCount(), report.WarningCount(), report.Stats.Duration)
	return report
}

// validateNode runs the per-item rules in a fixed order. A node without an
// item only gets the structural error for the missing item.
func (v *Validator) validateNode(tr issue.Translator, node *model.OrderItem, snap *snapshot.Snapshot) []issue.ValidationError {
	item := snap.Item(node.LinkID)
	if item == nil {
		return v.run(ConcernStructural, func() []issue.ValidationError { return structural.ValidateNode(tr, node, snap) })
	}
	var errs []issue.ValidationError
	errs = append(errs, v.run(ConcernGroup, func() []issue.ValidationError { return group.Validate(tr, item, snap) })...)
	errs = append(errs, v.run(ConcernChoice, func() []issue.ValidationError { return choice.Validate(tr, item, snap) })...)
	errs = append(errs, v.run(ConcernTable, func() []issue.ValidationError { return table.Validate(tr, item, snap) })...)
	errs = append(errs, v.run(ConcernCalculated, func() []issue.ValidationError {
		return calculated.Validate(tr, item, snap, v.checker)
	})...)
	errs = append(errs, v.run(ConcernReceiver, func() []issue.ValidationError { return receiver.Validate(tr, item, snap) })...)
	errs = append(errs, v.run(ConcernStructural, func() []issue.ValidationError {
		return structural.ValidateNode(tr, node, snap)
	})...)
	return errs
}

// ValidateJSON parses a document snapshot and validates it.
func (v *Validator) ValidateJSON(data []byte) (*Report, error) {
	doc, err := model.ParseDocument(data)
	if err != nil {
		return nil, err
	}
	return v.Validate(doc), nil
}

// ValidateImport runs the bundle and language checks over a raw FHIR
// Questionnaire or Bundle of Questionnaires.
func (v *Validator) ValidateImport(data []byte) ([]issue.ValidationError, error) {
	imp, err := metadata.ParseImport(data)
	if err != nil {
		return nil, fmt.Errorf("import check: %w", err)
	}
	errs := metadata.ValidateImport(v.config.Translator, imp, v.config.SupportedLanguages)
	v.config.Logger.Debug("import check of %d questionnaires: %d findings", len(imp.Questionnaires), len(errs))
	if errs == nil {
		errs = []issue.ValidationError{}
	}
	return errs, nil
}
