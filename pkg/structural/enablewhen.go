package structural

import (
	"github.com/helsenorge/structor-export-sub000/pkg/issue"
	"github.com/helsenorge/structor-export-sub000/pkg/model"
	"github.com/helsenorge/structor-export-sub000/pkg/snapshot"
)

// enableWhenKeys is question, operator and exactly one answer[x].
const enableWhenKeys = 3

func validateEnableWhen(tr issue.Translator, item *model.Item, snap *snapshot.Snapshot) []issue.ValidationError {
	var errs []issue.ValidationError
	for i := range item.EnableWhen {
		ew := &item.EnableWhen[i]
		if !snap.Exists(ew.Question) {
			errs = append(errs, issue.Error(item.LinkID, issue.PropEnableWhen, tr(issue.MsgEnableWhenQuestion, ew.Question)).At(i))
			continue
		}
		if ew.KeyCount() != enableWhenKeys {
			errs = append(errs, issue.Error(item.LinkID, issue.PropEnableWhen, tr(issue.MsgEnableWhenKeys)).At(i))
		}
		if e, ok := validateEnableWhenAnswer(tr, item.LinkID, ew, snap); ok {
			errs = append(errs, e.At(i))
		}
	}
	if len(item.EnableWhen) > 1 && item.EnableBehavior == "" {
		errs = append(errs, issue.Error(item.LinkID, issue.PropEnableBehavior, tr(issue.MsgEnableBehavior)))
	}
	return errs
}

// validateEnableWhenAnswer matches the answer against what the target item
// can actually hold.
func validateEnableWhenAnswer(tr issue.Translator, linkID string, ew *model.EnableWhen, snap *snapshot.Snapshot) (issue.ValidationError, bool) {
	target := snap.Item(ew.Question)
	if target == nil {
		return issue.ValidationError{}, false
	}

	switch target.Type {
	case model.ItemTypeQuantity:
		unit := snap.TraitsOf(target).Unit
		if ew.AnswerQuantity == nil || unit == nil {
			break
		}
		if ew.AnswerQuantity.Code != unit.Code || ew.AnswerQuantity.System != unit.System {
			return issue.Error(linkID, issue.PropEnableWhen, tr(issue.MsgEnableWhenUnit, target.LinkID)), true
		}

	case model.ItemTypeChoice, model.ItemTypeOpenChoice:
		answer := ew.AnswerCoding
		if answer == nil {
			break
		}
		if len(target.AnswerOption) > 0 {
			if !inOptions(answer, target.AnswerOption) {
				return issue.Error(linkID, issue.PropEnableWhen, tr(issue.MsgEnableWhenCoding, answer.Code, target.LinkID)), true
			}
			break
		}
		if !isContainedRef(target.AnswerValueSet) {
			break
		}
		concepts, ok := valueSetConcepts(snap, target.AnswerValueSet)
		if !ok {
			return issue.Error(linkID, issue.PropEnableWhen, tr(issue.MsgValueSetMissing, target.AnswerValueSet)), true
		}
		if !inCodings(answer, concepts) {
			return issue.Error(linkID, issue.PropEnableWhen, tr(issue.MsgEnableWhenValueSet, answer.Code, target.LinkID)), true
		}
	}
	return issue.ValidationError{}, false
}
