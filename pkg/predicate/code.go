package predicate

import (
	"net/url"
	"strings"

	"github.com/helsenorge/structor-export-sub000/pkg/model"
)

// ItemControlCodes returns the item-control codes carried by the item, in
// declaration order.
func ItemControlCodes(item *model.Item) []string {
	if item == nil {
		return nil
	}
	var codes []string
	for i := range item.Extension {
		ext := &item.Extension[i]
		if ext.URL != model.ExtItemControl || ext.ValueCodeableConcept == nil {
			continue
		}
		for _, c := range ext.ValueCodeableConcept.Coding {
			if c.Code != "" {
				codes = append(codes, c.Code)
			}
		}
	}
	return codes
}

// HasItemControl reports whether the item is tagged with the given control code.
func HasItemControl(item *model.Item, code string) bool {
	for _, c := range ItemControlCodes(item) {
		if c == code {
			return true
		}
	}
	return false
}

// HasAnyItemControl reports whether the item is tagged with one or more of the codes.
func HasAnyItemControl(item *model.Item, codes ...string) bool {
	for _, code := range codes {
		if HasItemControl(item, code) {
			return true
		}
	}
	return false
}

// HasCodeSystem reports whether one of the item's codes uses the system.
func HasCodeSystem(item *model.Item, system string) bool {
	if item == nil {
		return false
	}
	for _, c := range item.Code {
		if c.System == system {
			return true
		}
	}
	return false
}

// HasAnyCodeSystem reports whether one of the item's codes uses one of the systems.
func HasAnyCodeSystem(item *model.Item, systems ...string) bool {
	for _, system := range systems {
		if HasCodeSystem(item, system) {
			return true
		}
	}
	return false
}

// HasCodeWithDisplay reports whether the item has a code with the system whose
// code and display are both populated.
func HasCodeWithDisplay(item *model.Item, system string) bool {
	if item == nil {
		return false
	}
	for _, c := range item.Code {
		if c.System == system && c.Code != "" && c.Display != "" {
			return true
		}
	}
	return false
}

// CodesWithSystem returns the item's codes that use the system.
func CodesWithSystem(item *model.Item, system string) []model.Coding {
	if item == nil {
		return nil
	}
	var codings []model.Coding
	for _, c := range item.Code {
		if c.System == system {
			codings = append(codings, c)
		}
	}
	return codings
}

// HasCode reports whether the item has the exact system and code.
func HasCode(item *model.Item, system, code string) bool {
	for _, c := range CodesWithSystem(item, system) {
		if c.Code == code {
			return true
		}
	}
	return false
}

// IsValidURI reports whether s is an absolute URI (scheme plus authority or
// opaque part), e.g. "http://snomed.info/sct" or "urn:oid:2.16.578".
func IsValidURI(s string) bool {
	if s == "" || strings.ContainsAny(s, " \t\r\n") {
		return false
	}
	u, err := url.Parse(s)
	if err != nil || u.Scheme == "" {
		return false
	}
	return u.Host != "" || u.Opaque != ""
}
