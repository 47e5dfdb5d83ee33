package structural

import (
	"github.com/helsenorge/structor-export-sub000/pkg/issue"
	"github.com/helsenorge/structor-export-sub000/pkg/model"
	"github.com/helsenorge/structor-export-sub000/pkg/predicate"
)

func validateCodes(tr issue.Translator, item *model.Item) []issue.ValidationError {
	var errs []issue.ValidationError
	for i, c := range item.Code {
		if c.Code == "" {
			errs = append(errs, issue.Error(item.LinkID, issue.PropCode, tr(issue.MsgCodeMissingCode)).At(i))
		}
		switch {
		case c.System == "":
			errs = append(errs, issue.Error(item.LinkID, issue.PropCode, tr(issue.MsgCodeMissingSystem)).At(i))
		case !predicate.IsValidURI(c.System):
			errs = append(errs, issue.Error(item.LinkID, issue.PropCode, tr(issue.MsgCodeInvalidSystem, c.System)).At(i))
		}
	}
	return errs
}

func validateAnswerOptionSystem(tr issue.Translator, item *model.Item) []issue.ValidationError {
	if len(item.AnswerOption) == 0 || item.AnswerOption[0].ValueCoding == nil {
		return nil
	}
	system := item.AnswerOption[0].ValueCoding.System
	if predicate.IsValidURI(system) {
		return nil
	}
	return []issue.ValidationError{
		issue.Error(item.LinkID, issue.PropAnswerOption, tr(issue.MsgAnswerOptionSystem, system)).At(0),
	}
}

// validateExtensions requires a url and exactly one value on every
// extension. Complex extensions carrying nested extensions and no value are
// accepted.
func validateExtensions(tr issue.Translator, item *model.Item) []issue.ValidationError {
	var errs []issue.ValidationError
	for i := range item.Extension {
		ext := &item.Extension[i]
		if ext.URL == "" {
			errs = append(errs, issue.Error(item.LinkID, issue.PropExtension, tr(issue.MsgExtensionURL)).At(i))
		}
		n := ext.ValueCount()
		if n == 1 || (n == 0 && len(ext.Extension) > 0) {
			continue
		}
		errs = append(errs, issue.Error(item.LinkID, issue.PropExtension, tr(issue.MsgExtensionValue, ext.URL)).At(i))
	}
	return errs
}
