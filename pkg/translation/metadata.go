package translation

import (
	"strings"

	"github.com/helsenorge/structor-export-sub000/pkg/issue"
	"github.com/helsenorge/structor-export-sub000/pkg/model"
	"github.com/helsenorge/structor-export-sub000/pkg/predicate"
)

// MetadataProperty describes one translatable questionnaire property.
type MetadataProperty struct {
	Name string
	// Required reports whether the property needs a translation.
	Required func(q *model.Questionnaire) bool
	// Valid reports whether a translated value is acceptable. Nil accepts
	// any non-empty value.
	Valid func(value string) bool
}

func nonEmpty(field func(*model.Questionnaire) string) func(*model.Questionnaire) bool {
	return func(q *model.Questionnaire) bool { return field(q) != "" }
}

func singleLine(v string) bool {
	return !strings.ContainsAny(v, "\n\r\t")
}

// MetadataProperties lists the translatable questionnaire properties in the
// order they are checked.
var MetadataProperties = []MetadataProperty{
	{Name: "title", Required: nonEmpty(func(q *model.Questionnaire) string { return q.Title }), Valid: singleLine},
	{Name: "description", Required: nonEmpty(func(q *model.Questionnaire) string { return q.Description })},
	{Name: "purpose", Required: nonEmpty(func(q *model.Questionnaire) string { return q.Purpose })},
	{Name: "publisher", Required: nonEmpty(func(q *model.Questionnaire) string { return q.Publisher })},
	{Name: "copyright", Required: nonEmpty(func(q *model.Questionnaire) string { return q.Copyright })},
}

func validateMetadata(tr issue.Translator, q *model.Questionnaire, t *model.Translation) []issue.ValidationError {
	var errs []issue.ValidationError
	for _, p := range MetadataProperties {
		if !p.Required(q) {
			continue
		}
		v := t.Metadata[p.Name]
		switch {
		case v == "":
			errs = append(errs, issue.Error("", issue.PropMetadata, tr(issue.MsgTranslationMetadata, p.Name)))
		case p.Valid != nil && !p.Valid(v):
			errs = append(errs, issue.Error("", issue.PropMetadata, tr(issue.MsgTranslationMetadataInvalid, p.Name)))
		}
	}
	return errs
}

// translatableSettings are questionnaire extensions holding free text.
var translatableSettings = []string{
	model.ExtInformationMessage,
	model.ExtGuidanceText,
}

func validateSettings(tr issue.Translator, q *model.Questionnaire, t *model.Translation) []issue.ValidationError {
	var errs []issue.ValidationError
	for _, url := range translatableSettings {
		base, ok := predicate.ExtensionString(q.Extension, url)
		if !ok || base == "" {
			continue
		}
		if t.Settings[url] == "" {
			errs = append(errs, issue.Error("", issue.PropSettings, tr(issue.MsgTranslationSetting, url)))
		}
	}
	return errs
}
