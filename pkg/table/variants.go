package table

import (
	"github.com/helsenorge/structor-export-sub000/pkg/expression"
	"github.com/helsenorge/structor-export-sub000/pkg/issue"
	"github.com/helsenorge/structor-export-sub000/pkg/model"
	"github.com/helsenorge/structor-export-sub000/pkg/predicate"
	"github.com/helsenorge/structor-export-sub000/pkg/snapshot"
)

// validateTable checks the plain table: choice columns that are pre-filled
// or copied, and a single value set when the group is an answer option table.
func validateTable(tr issue.Translator, item *model.Item, snap *snapshot.Snapshot) []issue.ValidationError {
	var errs []issue.ValidationError

	for _, child := range directItems(item, snap) {
		if child.Type != model.ItemTypeChoice && child.Type != model.ItemTypeOpenChoice {
			errs = append(errs, issue.Error(item.LinkID, issue.PropType, tr(issue.MsgTableChildChoice, child.LinkID)))
		}
		if !child.HasInitialValue() && !snap.TraitsOf(child).IsDataReceiver() {
			errs = append(errs, issue.Error(item.LinkID, issue.PropInitial, tr(issue.MsgTableChildInitialOrReceiver, child.LinkID)))
		}
	}

	descendants := descendantItems(item, snap)
	errs = append(errs, notAllowed(tr, item, descendants, snap)...)

	if predicate.HasCode(item, model.SystemTableType, model.CodeTableAnswerOptions) {
		valueSets := make(map[string]bool)
		for _, d := range descendants {
			valueSets[d.AnswerValueSet] = true
		}
		if len(valueSets) > 1 {
			errs = append(errs, issue.Error(item.LinkID, issue.PropAnswerValueSet, tr(issue.MsgTableValueSets)))
		}
	}
	return errs
}

// validateHN1 checks the HN1 table, which can not be sorted.
func validateHN1(tr issue.Translator, item *model.Item, snap *snapshot.Snapshot) []issue.ValidationError {
	var errs []issue.ValidationError
	if predicate.HasAnyCodeSystem(item, model.SystemTableOrderingColumn, model.SystemTableOrderingFunctions) {
		errs = append(errs, issue.Error(item.LinkID, issue.PropCode, tr(issue.MsgTableHN1Ordering)))
	}
	errs = append(errs, notAllowed(tr, item, directItems(item, snap), snap)...)
	return errs
}

// validateHN2 checks the HN2 table, where the group names the columns and
// every descendant declares its column.
func validateHN2(tr issue.Translator, item *model.Item, snap *snapshot.Snapshot) []issue.ValidationError {
	errs := notAllowed(tr, item, directItems(item, snap), snap)

	if !predicate.HasCodeWithDisplay(item, model.SystemTableColumnName) {
		errs = append(errs, issue.Error(item.LinkID, issue.PropCode, tr(issue.MsgTableHN2ColumnName)))
	}
	for _, d := range descendantItems(item, snap) {
		if !predicate.HasCodeWithDisplay(d, model.SystemTableColumn) {
			errs = append(errs, issue.Error(item.LinkID, issue.PropCode, tr(issue.MsgTableHN2Column, d.LinkID)))
		}
	}
	return errs
}

// validateGTable checks the gtable, whose columns are required data receivers
// copying from required source items.
func validateGTable(tr issue.Translator, item *model.Item, snap *snapshot.Snapshot) []issue.ValidationError {
	var errs []issue.ValidationError
	for _, child := range directItems(item, snap) {
		traits := snap.TraitsOf(child)
		if child.Text == "" {
			errs = append(errs, issue.Error(child.LinkID, issue.PropText, tr(issue.MsgGTableText, child.LinkID)))
		}
		if !traits.IsConfiguredDataReceiver() {
			errs = append(errs, issue.Error(child.LinkID, issue.PropItemControl, tr(issue.MsgGTableReceiver, child.LinkID)))
		}
		if !child.Required {
			errs = append(errs, issue.Error(child.LinkID, issue.PropRequired, tr(issue.MsgGTableRequired, child.LinkID)))
		}
	}
	errs = append(errs, validateGTableSources(tr, item, snap)...)
	return errs
}

// validateGTableSources resolves each column's copy source in the whole
// document and requires it to be required.
func validateGTableSources(tr issue.Translator, item *model.Item, snap *snapshot.Snapshot) []issue.ValidationError {
	var errs []issue.ValidationError
	for _, child := range directItems(item, snap) {
		traits := snap.TraitsOf(child)
		if !traits.IsConfiguredDataReceiver() {
			continue
		}
		source := snap.Item(expression.FirstLinkID(traits.CopyExpression))
		if source == nil || source.Required {
			continue
		}
		errs = append(errs, issue.Error(child.LinkID, issue.PropRequired, tr(issue.MsgGTableSourceRequired, child.LinkID)))
	}
	return errs
}
