// Package table validates the four table presentations of a group (table,
// table-hn1, table-hn2 and gtable) and the table codes that configure them.
//
// The variants share the rules in common.go and the allowed-item predicate
// from package predicate; each variant adds its own rules on top.
package table

import (
	"github.com/helsenorge/structor-export-sub000/pkg/issue"
	"github.com/helsenorge/structor-export-sub000/pkg/model"
	"github.com/helsenorge/structor-export-sub000/pkg/predicate"
	"github.com/helsenorge/structor-export-sub000/pkg/snapshot"
)

type variantFunc func(tr issue.Translator, item *model.Item, snap *snapshot.Snapshot) []issue.ValidationError

var variants = map[string]variantFunc{
	model.ControlTable:    validateTable,
	model.ControlTableHN1: validateHN1,
	model.ControlTableHN2: validateHN2,
	model.ControlGTable:   validateGTable,
}

// Validate runs the common table rules and the rules of the item's table
// variant. Items that are neither table groups nor carry table codes yield
// nothing.
func Validate(tr issue.Translator, item *model.Item, snap *snapshot.Snapshot) []issue.ValidationError {
	if item == nil {
		return nil
	}
	traits := snap.TraitsOf(item)
	isTable := predicate.IsTableGroup(item, traits)

	var errs []issue.ValidationError
	if predicate.HasTableCodes(item) && !isTable {
		errs = append(errs, issue.Error(item.LinkID, issue.PropCode, tr(issue.MsgTableCodesOnNonTable)))
	}
	if !isTable {
		return errs
	}

	errs = append(errs, validateCommon(tr, item, snap)...)
	if fn, ok := variants[traits.TableKind()]; ok {
		errs = append(errs, fn(tr, item, snap)...)
	}
	return errs
}

// directItems returns the items of the direct children that exist.
func directItems(item *model.Item, snap *snapshot.Snapshot) []*model.Item {
	var items []*model.Item
	for _, id := range snap.Children(item.LinkID) {
		if child := snap.Item(id); child != nil {
			items = append(items, child)
		}
	}
	return items
}

// descendantItems returns the items of all descendants that exist, in pre-order.
func descendantItems(item *model.Item, snap *snapshot.Snapshot) []*model.Item {
	var items []*model.Item
	for _, id := range snap.Descendants(item.LinkID) {
		if d := snap.Item(id); d != nil {
			items = append(items, d)
		}
	}
	return items
}

// notAllowed reports every item of the list that fails the shared
// allowed-table-item predicate.
func notAllowed(tr issue.Translator, table *model.Item, items []*model.Item, snap *snapshot.Snapshot) []issue.ValidationError {
	var errs []issue.ValidationError
	for _, child := range items {
		if !predicate.IsAllowedTableItem(child, snap.TraitsOf(child)) {
			errs = append(errs, issue.Error(table.LinkID, issue.PropItem, tr(issue.MsgTableItemNotAllowed, child.LinkID)))
		}
	}
	return errs
}
