package structural

import (
	"strconv"
	"strings"

	"github.com/helsenorge/structor-export-sub000/pkg/issue"
	"github.com/helsenorge/structor-export-sub000/pkg/model"
	"github.com/helsenorge/structor-export-sub000/pkg/snapshot"
)

// validateInitial checks that coded initial values are permitted answers,
// either among the answer options or in the referenced value set.
func validateInitial(tr issue.Translator, item *model.Item, snap *snapshot.Snapshot) []issue.ValidationError {
	var errs []issue.ValidationError
	for i := range item.Initial {
		coding := item.Initial[i].ValueCoding
		if coding == nil {
			continue
		}
		switch {
		case len(item.AnswerOption) > 0:
			if !inOptions(coding, item.AnswerOption) {
				errs = append(errs, issue.Error(item.LinkID, issue.PropInitial, tr(issue.MsgInitialNotInOptions, coding.Code)).At(i))
			}
		case isContainedRef(item.AnswerValueSet):
			concepts, ok := valueSetConcepts(snap, item.AnswerValueSet)
			if !ok {
				errs = append(errs, issue.Error(item.LinkID, issue.PropAnswerValueSet, tr(issue.MsgValueSetMissing, item.AnswerValueSet)))
				continue
			}
			if !inCodings(coding, concepts) {
				errs = append(errs, issue.Error(item.LinkID, issue.PropInitial,
					tr(issue.MsgInitialNotInValueSet, coding.Code, item.AnswerValueSet)).At(i))
			}
		}
	}
	return errs
}

// isContainedRef reports whether an answerValueSet refers to a value set
// contained in the questionnaire. External canonical urls are not resolved.
func isContainedRef(ref string) bool {
	return strings.HasPrefix(ref, "#") && len(ref) > 1
}

func valueSetConcepts(snap *snapshot.Snapshot, ref string) ([]model.Coding, bool) {
	vs := snap.Document().ValueSet(ref)
	if vs == nil {
		return nil, false
	}
	return model.ValueSetConcepts(vs), true
}

// sameCoding matches on code, and on system when both sides carry one.
func sameCoding(a, b *model.Coding) bool {
	if a.Code != b.Code {
		return false
	}
	return a.System == "" || b.System == "" || a.System == b.System
}

func inOptions(coding *model.Coding, options []model.AnswerOption) bool {
	for i := range options {
		if options[i].ValueCoding != nil && sameCoding(coding, options[i].ValueCoding) {
			return true
		}
	}
	return false
}

func inCodings(coding *model.Coding, codings []model.Coding) bool {
	for i := range codings {
		if sameCoding(coding, &codings[i]) {
			return true
		}
	}
	return false
}

func itoa(i int) string { return strconv.Itoa(i) }
