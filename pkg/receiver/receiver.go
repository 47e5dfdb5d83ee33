// Package receiver validates data receivers: items that copy their answer
// from another item through a copy expression.
package receiver

import (
	"github.com/helsenorge/structor-export-sub000/pkg/expression"
	"github.com/helsenorge/structor-export-sub000/pkg/issue"
	"github.com/helsenorge/structor-export-sub000/pkg/model"
	"github.com/helsenorge/structor-export-sub000/pkg/predicate"
	"github.com/helsenorge/structor-export-sub000/pkg/snapshot"
)

// Validate checks a data receiver's wiring and flags.
func Validate(tr issue.Translator, item *model.Item, snap *snapshot.Snapshot) []issue.ValidationError {
	if item == nil {
		return nil
	}
	traits := snap.TraitsOf(item)
	if !traits.IsDataReceiver() {
		return nil
	}
	var errs []issue.ValidationError

	var source *model.Item
	sourceID := expression.FirstLinkID(traits.CopyExpression)
	switch {
	case !traits.HasCopy || traits.CopyExpression == "":
		errs = append(errs, issue.Error(item.LinkID, issue.PropCopyExpression, tr(issue.MsgReceiverNoCopy)))
	case sourceID == "" || !snap.Exists(sourceID):
		errs = append(errs, issue.Error(item.LinkID, issue.PropCopyExpression, tr(issue.MsgReceiverMissingSource, sourceID)))
	default:
		source = snap.Item(sourceID)
	}

	if !item.ReadOnly {
		errs = append(errs, issue.Error(item.LinkID, issue.PropReadOnly, tr(issue.MsgReceiverReadOnly)))
	}
	if item.Required && !isGTableColumn(item, snap) {
		errs = append(errs, issue.Error(item.LinkID, issue.PropRequired, tr(issue.MsgReceiverMandatory)))
	}
	if traits.IsScoreItem() {
		errs = append(errs, issue.Error(item.LinkID, issue.PropScoring, tr(issue.MsgReceiverScoring)))
	}
	if source != nil {
		sourceTraits := snap.TraitsOf(source)
		if traits.HasCalculated != sourceTraits.HasCalculated ||
			traits.CalculatedExpression != sourceTraits.CalculatedExpression {
			errs = append(errs, issue.Error(item.LinkID, issue.PropCalculatedExpression, tr(issue.MsgReceiverCalculatedMismatch, sourceID)))
		}
	}
	return errs
}

// isGTableColumn reports whether the item is a direct child of a gtable,
// where columns must be required.
func isGTableColumn(item *model.Item, snap *snapshot.Snapshot) bool {
	parent := snap.ParentItem(item.LinkID)
	return parent != nil && predicate.IsTableGroup(parent, snap.TraitsOf(parent)) &&
		snap.TraitsOf(parent).TableKind() == model.ControlGTable
}
