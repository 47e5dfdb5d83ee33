package structural

import (
	"github.com/helsenorge/structor-export-sub000/pkg/issue"
	"github.com/helsenorge/structor-export-sub000/pkg/model"
	"github.com/helsenorge/structor-export-sub000/pkg/predicate"
	"github.com/helsenorge/structor-export-sub000/pkg/snapshot"
)

func validateScoring(tr issue.Translator, item *model.Item, traits *predicate.Traits, snap *snapshot.Snapshot) []issue.ValidationError {
	var errs []issue.ValidationError
	switch traits.ScoringFormula {
	case model.CodeSectionScore, model.CodeTotalScore:
		if traits.ScoringFormula == model.CodeSectionScore {
			parent := snap.ParentItem(item.LinkID)
			if parent == nil || parent.Type != model.ItemTypeGroup {
				errs = append(errs, issue.Error(item.LinkID, issue.PropScoring, tr(issue.MsgSectionScoreNotInGroup)))
			}
		}
		if !snap.AnyItem(isFormula(model.CodeQuestionScore)) {
			errs = append(errs, issue.Error(item.LinkID, issue.PropScoring, tr(issue.MsgScoreNeedsQuestion)))
		}
		if traits.HasCalculated {
			errs = append(errs, issue.Error(item.LinkID, issue.PropCalculatedExpression, tr(issue.MsgScoreCalculated)))
		}

	case model.CodeQuestionScore:
		if !hasSectionScoreSibling(item.LinkID, snap) && !snap.AnyItem(isFormula(model.CodeTotalScore)) {
			errs = append(errs, issue.Error(item.LinkID, issue.PropScoring, tr(issue.MsgQuestionScoreNeedsSum)))
		}
		for i := range item.AnswerOption {
			if !predicate.HasExtension(item.AnswerOption[i].Extension, model.ExtOrdinalValue) {
				errs = append(errs, issue.Error(item.LinkID, issue.PropAnswerOption,
					tr(issue.MsgQuestionScoreOrdinal, itoa(i+1))).At(i))
			}
		}
	}
	return errs
}

func isFormula(code string) func(*model.Item, *predicate.Traits) bool {
	return func(_ *model.Item, t *predicate.Traits) bool { return t.ScoringFormula == code }
}

func hasSectionScoreSibling(linkID string, snap *snapshot.Snapshot) bool {
	for _, id := range snap.Siblings(linkID) {
		if snap.Traits(id).ScoringFormula == model.CodeSectionScore {
			return true
		}
	}
	return false
}
