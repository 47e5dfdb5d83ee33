// Package structural holds the broad per-item sweep of structural rules
// (linkIds, flags, codes, extensions, scoring, initial values, enableWhen,
// extraction context) and the consistency check between the item map and
// the order tree.
package structural

import (
	"github.com/helsenorge/structor-export-sub000/pkg/issue"
	"github.com/helsenorge/structor-export-sub000/pkg/model"
	"github.com/helsenorge/structor-export-sub000/pkg/predicate"
	"github.com/helsenorge/structor-export-sub000/pkg/snapshot"
)

// ValidateNode runs every structural rule for one order tree node. A node
// whose item is missing from the item map yields a single error.
func ValidateNode(tr issue.Translator, node *model.OrderItem, snap *snapshot.Snapshot) []issue.ValidationError {
	if node == nil {
		return nil
	}
	item := snap.Item(node.LinkID)
	if item == nil {
		return []issue.ValidationError{
			issue.Error(node.LinkID, issue.PropLinkID, tr(issue.MsgOrderItemMissing, node.LinkID)),
		}
	}

	var errs []issue.ValidationError
	errs = append(errs, validateLinkID(tr, node, item, snap)...)
	errs = append(errs, ValidateItem(tr, item, snap)...)
	return errs
}

// ValidateItem runs the structural rules that depend on the item alone.
func ValidateItem(tr issue.Translator, item *model.Item, snap *snapshot.Snapshot) []issue.ValidationError {
	if item == nil {
		return nil
	}
	traits := snap.TraitsOf(item)

	var errs []issue.ValidationError
	if !item.Type.IsKnown() {
		errs = append(errs, issue.Error(item.LinkID, issue.PropType, tr(issue.MsgUnknownItemType, string(item.Type))))
	}
	errs = append(errs, validateFlags(tr, item, traits)...)
	errs = append(errs, validateDateLimits(tr, item, traits)...)
	errs = append(errs, validateCodes(tr, item)...)
	errs = append(errs, validateScoring(tr, item, traits, snap)...)
	errs = append(errs, validateAnswerOptionSystem(tr, item)...)
	errs = append(errs, validateExtensions(tr, item)...)
	errs = append(errs, validateInitial(tr, item, snap)...)
	errs = append(errs, validateEnableWhen(tr, item, snap)...)
	errs = append(errs, validateExtraction(tr, item, traits, snap)...)
	return errs
}

// ValidateOrder reports items of the item map that the order tree never
// places. It runs once per document.
func ValidateOrder(tr issue.Translator, snap *snapshot.Snapshot) []issue.ValidationError {
	var errs []issue.ValidationError
	for _, key := range snapshot.SortedKeys(snap.Document().Items) {
		if !snap.Exists(key) {
			errs = append(errs, issue.Error(key, issue.PropLinkID, tr(issue.MsgItemNotInOrder, key)))
		}
	}
	return errs
}

// validateLinkID reports an empty linkId and, once per duplicated linkId at
// its first pre-order occurrence, a duplicate.
func validateLinkID(tr issue.Translator, node *model.OrderItem, item *model.Item, snap *snapshot.Snapshot) []issue.ValidationError {
	if item.LinkID == "" {
		return []issue.ValidationError{issue.Error(node.LinkID, issue.PropLinkID, tr(issue.MsgLinkIDMissing))}
	}
	id := predicate.EffectiveLinkID(node, snap.Document().Items)
	if snap.Occurrences(id) > 1 && snap.IsFirstOccurrence(node) {
		return []issue.ValidationError{issue.Error(id, issue.PropLinkID, tr(issue.MsgDuplicateLinkID, id))}
	}
	return nil
}
