// Package choice validates the answer options of choice items.
package choice

import (
	"strconv"

	"github.com/helsenorge/structor-export-sub000/pkg/issue"
	"github.com/helsenorge/structor-export-sub000/pkg/model"
	"github.com/helsenorge/structor-export-sub000/pkg/snapshot"
)

// Validate checks that every coded answer option has code and display, and
// that all options share one system. Copy fields and data receivers take
// their options from the source item and are skipped.
func Validate(tr issue.Translator, item *model.Item, snap *snapshot.Snapshot) []issue.ValidationError {
	if item == nil || len(item.AnswerOption) == 0 {
		return nil
	}
	traits := snap.TraitsOf(item)
	if traits.IsDataReceiver() || traits.HasCopy {
		return nil
	}

	var errs []issue.ValidationError
	systems := make(map[string]bool)
	for i := range item.AnswerOption {
		coding := item.AnswerOption[i].ValueCoding
		if coding == nil {
			continue
		}
		if coding.Code == "" || coding.Display == "" {
			errs = append(errs, issue.Error(item.LinkID, issue.PropAnswerOption,
				tr(issue.MsgAnswerOptionCodeDisplay, strconv.Itoa(i+1))).At(i))
		}
		systems[coding.System] = true
	}
	if len(systems) > 1 {
		errs = append(errs, issue.Error(item.LinkID, issue.PropAnswerOption, tr(issue.MsgAnswerOptionSystems)))
	}
	return errs
}
