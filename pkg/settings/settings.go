// Package settings validates the questionnaire security label and the
// coded settings extensions (authentication, performers, buttons,
// navigator).
package settings

import (
	"github.com/helsenorge/structor-export-sub000/pkg/issue"
	"github.com/helsenorge/structor-export-sub000/pkg/model"
	"github.com/helsenorge/structor-export-sub000/pkg/predicate"
	"github.com/helsenorge/structor-export-sub000/pkg/snapshot"
)

// Codes of the settings value sets.
const (
	AuthenticationAnonymous = "1"
	AuthenticationOptional  = "2"
	AuthenticationRequired  = "3"

	PerformedBySelf   = "1"
	PerformedByOthers = "2"
	PerformedByNone   = "3"
)

// SecurityCodes are the known helsenorge security label codes.
var SecurityCodes = []string{"1", "2", "3", "4"}

// Setting is a coded questionnaire extension and its permitted codes.
type Setting struct {
	URL    string
	System string
	Codes  []string
}

// Settings lists the coded settings extensions in the order they are checked.
var Settings = []Setting{
	{
		URL:    model.ExtAuthenticationRequirement,
		System: model.SystemAuthenticationRequired,
		Codes:  []string{AuthenticationAnonymous, AuthenticationOptional, AuthenticationRequired},
	},
	{
		URL:    model.ExtCanBePerformedBy,
		System: model.SystemCanBePerformedBy,
		Codes:  []string{PerformedBySelf, PerformedByOthers, PerformedByNone},
	},
	{
		URL:    model.ExtPresentationButtons,
		System: model.SystemPresentationButtons,
		Codes:  []string{"none", "static", "sticky"},
	},
	{
		URL:    model.ExtNavigator,
		System: model.SystemNavigator,
		Codes:  []string{"navigator"},
	},
}

// Validate checks the security labels and the settings extensions.
func Validate(tr issue.Translator, snap *snapshot.Snapshot) []issue.ValidationError {
	q := snap.Questionnaire()
	var errs []issue.ValidationError
	errs = append(errs, validateSecurity(tr, q)...)
	for _, s := range Settings {
		errs = append(errs, validateSetting(tr, q, s)...)
	}

	auth, _ := predicate.ExtensionCoding(q.Extension, model.ExtAuthenticationRequirement)
	performer, _ := predicate.ExtensionCoding(q.Extension, model.ExtCanBePerformedBy)
	if auth.Code == AuthenticationAnonymous && performer.Code == PerformedByOthers {
		errs = append(errs, issue.Error("", issue.PropSettings, tr(issue.MsgSettingAnonymousOthers)))
	}
	return errs
}

func validateSecurity(tr issue.Translator, q *model.Questionnaire) []issue.ValidationError {
	if q.Meta == nil || len(q.Meta.Security) == 0 {
		return []issue.ValidationError{issue.Warning("", issue.PropSecurity, tr(issue.MsgSecurityMissing))}
	}
	var errs []issue.ValidationError
	for i, label := range q.Meta.Security {
		if label.System != model.SystemSecurityLabel || !contains(SecurityCodes, label.Code) {
			errs = append(errs, issue.Error("", issue.PropSecurity, tr(issue.MsgSecurityInvalid, label.Code)).At(i))
		}
	}
	return errs
}

func validateSetting(tr issue.Translator, q *model.Questionnaire, s Setting) []issue.ValidationError {
	if !predicate.HasExtension(q.Extension, s.URL) {
		return nil
	}
	coding, ok := predicate.ExtensionCoding(q.Extension, s.URL)
	if ok && (coding.System == "" || coding.System == s.System) && contains(s.Codes, coding.Code) {
		return nil
	}
	return []issue.ValidationError{issue.Error("", issue.PropSettings, tr(issue.MsgSettingInvalid, s.URL, coding.Code))}
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
