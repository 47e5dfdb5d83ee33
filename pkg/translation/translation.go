// Package translation checks that every additional language of a
// questionnaire carries the translations the renderer needs.
package translation

import (
	"github.com/helsenorge/structor-export-sub000/pkg/issue"
	"github.com/helsenorge/structor-export-sub000/pkg/model"
	"github.com/helsenorge/structor-export-sub000/pkg/predicate"
	"github.com/helsenorge/structor-export-sub000/pkg/snapshot"
)

// Validate checks every additional language, in language code order, and
// returns the errors together with the number of errors per language. Every
// translation language has an entry in the counts, zero included.
func Validate(tr issue.Translator, snap *snapshot.Snapshot) ([]issue.ValidationError, map[string]int) {
	var errs []issue.ValidationError
	counts := make(map[string]int)
	for _, lang := range snap.Languages() {
		t := snap.Document().Translations[lang]
		if t == nil {
			t = &model.Translation{}
		}
		langErrs := ValidateLanguage(tr, snap, t)
		for i := range langErrs {
			langErrs[i] = langErrs[i].InLanguage(lang)
		}
		counts[lang] = len(langErrs)
		errs = append(errs, langErrs...)
	}
	return errs, counts
}

// ValidateLanguage checks one translation set. Items are visited in
// pre-order, then contained value sets, metadata and settings.
func ValidateLanguage(tr issue.Translator, snap *snapshot.Snapshot, t *model.Translation) []issue.ValidationError {
	var errs []issue.ValidationError
	seen := make(map[string]bool)
	for _, id := range snap.Preorder() {
		if seen[id] {
			continue
		}
		seen[id] = true
		item := snap.Item(id)
		if item == nil {
			continue
		}
		errs = append(errs, validateItem(tr, item, snap.TraitsOf(item), t)...)
	}
	errs = append(errs, validateValueSets(tr, snap, t)...)
	errs = append(errs, validateMetadata(tr, snap.Questionnaire(), t)...)
	errs = append(errs, validateSettings(tr, snap.Questionnaire(), t)...)
	return errs
}

// itemField is a translatable item property that is only required when the
// base value is set.
type itemField struct {
	prop   issue.Property
	key    string
	base   func(*model.Item, *predicate.Traits) string
	target func(model.ItemTranslation) string
}

var conditionalFields = []itemField{
	{
		prop:   issue.PropPrefix,
		key:    issue.MsgTranslationPrefix,
		base:   func(i *model.Item, _ *predicate.Traits) string { return i.Prefix },
		target: func(t model.ItemTranslation) string { return t.Prefix },
	},
	{
		prop:   issue.PropExtension,
		key:    issue.MsgTranslationSublabel,
		base:   func(_ *model.Item, t *predicate.Traits) string { return t.Sublabel },
		target: func(t model.ItemTranslation) string { return t.Sublabel },
	},
	{
		prop:   issue.PropRepeats,
		key:    issue.MsgTranslationRepeatsText,
		base:   func(_ *model.Item, t *predicate.Traits) string { return t.RepeatsText },
		target: func(t model.ItemTranslation) string { return t.RepeatsText },
	},
	{
		prop:   issue.PropExtension,
		key:    issue.MsgTranslationValidationText,
		base:   func(_ *model.Item, t *predicate.Traits) string { return t.ValidationText },
		target: func(t model.ItemTranslation) string { return t.ValidationText },
	},
	{
		prop:   issue.PropExtension,
		key:    issue.MsgTranslationEntryFormat,
		base:   func(_ *model.Item, t *predicate.Traits) string { return t.EntryFormat },
		target: func(t model.ItemTranslation) string { return t.EntryFormat },
	},
	{
		prop:   issue.PropInitial,
		key:    issue.MsgTranslationInitial,
		base:   func(i *model.Item, _ *predicate.Traits) string { return initialText(i) },
		target: func(t model.ItemTranslation) string { return t.InitialValue },
	},
}

func validateItem(tr issue.Translator, item *model.Item, traits *predicate.Traits, t *model.Translation) []issue.ValidationError {
	var errs []issue.ValidationError
	sidebar := traits.HasControl(model.ControlSidebar)
	it := t.Items[item.LinkID]

	if !traits.Hidden && !sidebar {
		if item.Text != "" && it.Text == "" {
			errs = append(errs, issue.Error(item.LinkID, issue.PropText, tr(issue.MsgTranslationText)))
		}
		for _, f := range conditionalFields {
			if f.base(item, traits) != "" && f.target(it) == "" {
				errs = append(errs, issue.Error(item.LinkID, f.prop, tr(f.key)))
			}
		}
	}

	if sidebar && (item.Text != "" || traits.Markdown != "") && t.Sidebar[item.LinkID] == "" {
		errs = append(errs, issue.Error(item.LinkID, issue.PropSidebar, tr(issue.MsgTranslationSidebar)))
	}

	if !traits.HasCopy && !traits.IsDataReceiver() {
		options := t.Options[item.LinkID]
		for i := range item.AnswerOption {
			coding := item.AnswerOption[i].ValueCoding
			if coding == nil || coding.Code == "" {
				continue
			}
			if options[coding.Code] == "" {
				errs = append(errs, issue.Error(item.LinkID, issue.PropAnswerOption,
					tr(issue.MsgTranslationOption, coding.Code)).At(i))
			}
		}
	}
	return errs
}

func initialText(item *model.Item) string {
	for i := range item.Initial {
		if s := item.Initial[i].ValueString; s != nil && *s != "" {
			return *s
		}
	}
	return ""
}

func validateValueSets(tr issue.Translator, snap *snapshot.Snapshot, t *model.Translation) []issue.ValidationError {
	var errs []issue.ValidationError
	contained := snap.Document().Contained
	for i := range contained {
		vs := &contained[i]
		if vs.Id == nil || *vs.Id == "" {
			continue
		}
		id := *vs.Id
		vt, ok := t.ValueSets[id]
		if !ok || vt.Name == "" {
			errs = append(errs, issue.Error("", issue.PropValueSet, tr(issue.MsgTranslationValueSet, id)))
		}
		for _, c := range model.ValueSetConcepts(vs) {
			if c.Code != "" && vt.Concepts[c.Code] == "" {
				errs = append(errs, issue.Error("", issue.PropValueSet, tr(issue.MsgTranslationConcept, c.Code, id)))
			}
		}
	}
	return errs
}
