// Package predicate holds the side-effect-free queries every validation rule
// is composed from: extension lookup, item-control and code-system membership,
// order tree queries and the typed decode of an item's extensions.
//
// All functions are total. Nil items and missing slices are treated as empty.
package predicate

import "github.com/helsenorge/structor-export-sub000/pkg/model"

// FindExtension returns the first extension with the given URL, or nil.
func FindExtension(exts []model.Extension, url string) *model.Extension {
	for i := range exts {
		if exts[i].URL == url {
			return &exts[i]
		}
	}
	return nil
}

// HasExtension reports whether an extension with the given URL is present.
func HasExtension(exts []model.Extension, url string) bool {
	return FindExtension(exts, url) != nil
}

// ItemHasExtension reports whether the item carries an extension with the given URL.
func ItemHasExtension(item *model.Item, url string) bool {
	if item == nil {
		return false
	}
	return HasExtension(item.Extension, url)
}

// ExtensionString returns the string-like value (string, markdown, code, uri)
// of the first extension with the given URL.
func ExtensionString(exts []model.Extension, url string) (string, bool) {
	ext := FindExtension(exts, url)
	if ext == nil {
		return "", false
	}
	switch {
	case ext.ValueString != nil:
		return *ext.ValueString, true
	case ext.ValueMarkdown != nil:
		return *ext.ValueMarkdown, true
	case ext.ValueCode != nil:
		return *ext.ValueCode, true
	case ext.ValueURI != nil:
		return *ext.ValueURI, true
	}
	return "", false
}

// ExtensionInteger returns the integer value of the first extension with the given URL.
func ExtensionInteger(exts []model.Extension, url string) (int, bool) {
	ext := FindExtension(exts, url)
	if ext == nil || ext.ValueInteger == nil {
		return 0, false
	}
	return *ext.ValueInteger, true
}

// ExtensionBoolean returns the boolean value of the first extension with the given URL.
func ExtensionBoolean(exts []model.Extension, url string) (bool, bool) {
	ext := FindExtension(exts, url)
	if ext == nil || ext.ValueBoolean == nil {
		return false, false
	}
	return *ext.ValueBoolean, true
}

// ExtensionCoding returns the Coding value of the first extension with the
// given URL. A CodeableConcept value yields its first coding.
func ExtensionCoding(exts []model.Extension, url string) (model.Coding, bool) {
	ext := FindExtension(exts, url)
	if ext == nil {
		return model.Coding{}, false
	}
	if ext.ValueCoding != nil {
		return *ext.ValueCoding, true
	}
	if ext.ValueCodeableConcept != nil && len(ext.ValueCodeableConcept.Coding) > 0 {
		return ext.ValueCodeableConcept.Coding[0], true
	}
	return model.Coding{}, false
}

// ExtensionReference returns the reference string of the first extension with the given URL.
func ExtensionReference(exts []model.Extension, url string) (string, bool) {
	ext := FindExtension(exts, url)
	if ext == nil || ext.ValueReference == nil {
		return "", false
	}
	return ext.ValueReference.Reference, true
}

// ExtensionExpression returns the expression text of the first extension with
// the given URL. A plain string value is accepted as well.
func ExtensionExpression(exts []model.Extension, url string) (string, bool) {
	ext := FindExtension(exts, url)
	if ext == nil {
		return "", false
	}
	if ext.ValueExpression != nil {
		return ext.ValueExpression.Expression, true
	}
	if ext.ValueString != nil {
		return *ext.ValueString, true
	}
	return "", false
}
