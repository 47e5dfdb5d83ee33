package structural

import (
	"strings"

	"github.com/helsenorge/structor-export-sub000/pkg/issue"
	"github.com/helsenorge/structor-export-sub000/pkg/model"
	"github.com/helsenorge/structor-export-sub000/pkg/predicate"
)

// requiredForbiddenControls are presentations that can never be answered.
var requiredForbiddenControls = []string{
	model.ControlInline,
	model.ControlHighlight,
	model.ControlHelp,
	model.ControlSidebar,
}

func validateFlags(tr issue.Translator, item *model.Item, traits *predicate.Traits) []issue.ValidationError {
	var errs []issue.ValidationError

	hasLengthLimits := item.MaxLength != nil || traits.HasMinLength
	if item.ReadOnly && hasLengthLimits && !traits.HasControl(model.ControlHelp) {
		errs = append(errs, issue.Error(item.LinkID, issue.PropReadOnly, tr(issue.MsgReadOnlyValidation)))
	}

	if item.Required {
		forbidden := item.Type == model.ItemTypeGroup ||
			item.Type == model.ItemTypeDisplay ||
			traits.Hidden ||
			traits.HasAnyControl(requiredForbiddenControls...)
		if forbidden {
			errs = append(errs, issue.Error(item.LinkID, issue.PropRequired, tr(issue.MsgRequiredNotAllowed)))
		}
	}
	return errs
}

// validateDateLimits checks that fhirpath date limits are either a single
// term ("today()") or a term with an offset ("today() - 7 days").
func validateDateLimits(tr issue.Translator, item *model.Item, traits *predicate.Traits) []issue.ValidationError {
	var errs []issue.ValidationError
	check := func(has bool, expr string) {
		if !has {
			return
		}
		if n := len(strings.Fields(expr)); n != 1 && n != 4 {
			errs = append(errs, issue.Error(item.LinkID, issue.PropExtension, tr(issue.MsgDateFhirPath, expr)))
		}
	}
	check(traits.HasMinDateFhirPath, traits.MinDateFhirPath)
	check(traits.HasMaxDateFhirPath, traits.MaxDateFhirPath)
	return errs
}
