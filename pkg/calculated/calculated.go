// Package calculated validates items carrying a calculated expression.
package calculated

import (
	"github.com/helsenorge/structor-export-sub000/pkg/expression"
	"github.com/helsenorge/structor-export-sub000/pkg/issue"
	"github.com/helsenorge/structor-export-sub000/pkg/model"
	"github.com/helsenorge/structor-export-sub000/pkg/snapshot"
)

// Validate checks a calculated item: no min/max limits, every referenced
// linkId exists (each missing one reported once), and a numeric type.
// A non-nil checker additionally reports expressions that do not compile.
func Validate(tr issue.Translator, item *model.Item, snap *snapshot.Snapshot, checker *expression.Checker) []issue.ValidationError {
	if item == nil {
		return nil
	}
	traits := snap.TraitsOf(item)
	if !traits.HasCalculated {
		return nil
	}
	var errs []issue.ValidationError

	if traits.HasMinValue || traits.HasMaxValue {
		errs = append(errs, issue.Error(item.LinkID, issue.PropExtension, tr(issue.MsgCalculatedMinMax)))
	}
	for _, ref := range expression.ExtractLinkIDs(traits.CalculatedExpression) {
		if !snap.Exists(ref) {
			errs = append(errs, issue.Error(item.LinkID, issue.PropCalculatedExpression, tr(issue.MsgCalculatedMissingLinkID, ref)))
		}
	}
	switch item.Type {
	case model.ItemTypeQuantity, model.ItemTypeDecimal, model.ItemTypeInteger:
	default:
		errs = append(errs, issue.Error(item.LinkID, issue.PropType, tr(issue.MsgCalculatedType)))
	}
	if checker != nil && traits.CalculatedExpression != "" {
		if err := checker.Check(traits.CalculatedExpression); err != nil {
			errs = append(errs, issue.Warning(item.LinkID, issue.PropCalculatedExpression, tr(issue.MsgCalculatedSyntax, err.Error())))
		}
	}
	return errs
}
