package predicate

import "github.com/helsenorge/structor-export-sub000/pkg/model"

// IsAllowedTableItem reports whether an item may be placed inside a table: it
// is a display item, a configured data receiver, carries an initial value, a
// fhirpath enrichment, a calculated expression, or is a scoring item.
//
// All table variants share this one implementation.
func IsAllowedTableItem(item *model.Item, traits *Traits) bool {
	if item == nil {
		return false
	}
	if traits == nil {
		traits = Decode(item)
	}
	return item.Type == model.ItemTypeDisplay ||
		traits.IsConfiguredDataReceiver() ||
		item.HasInitialValue() ||
		traits.HasFhirPath ||
		traits.HasCalculated ||
		traits.IsScoreItem()
}

// HasTableCodes reports whether the item carries any table-specific code
// (column name, ordering column or ordering functions).
func HasTableCodes(item *model.Item) bool {
	return HasAnyCodeSystem(item,
		model.SystemTableColumnName,
		model.SystemTableOrderingColumn,
		model.SystemTableOrderingFunctions,
	)
}

// IsTableGroup reports whether the item is a group with one of the table controls.
func IsTableGroup(item *model.Item, traits *Traits) bool {
	if item == nil || item.Type != model.ItemTypeGroup {
		return false
	}
	if traits == nil {
		traits = Decode(item)
	}
	return traits.TableKind() != ""
}
