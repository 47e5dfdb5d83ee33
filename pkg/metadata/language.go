package metadata

import (
	"strings"

	"golang.org/x/text/language"

	"github.com/helsenorge/structor-export-sub000/pkg/issue"
)

// DefaultSupportedLanguages are the languages the renderer ships with.
var DefaultSupportedLanguages = []string{"nb-NO", "nn-NO", "en-GB", "se-NO"}

// ValidateLanguage checks a questionnaire language code: absent or
// malformed is an error, outside the supported list is a warning.
func ValidateLanguage(tr issue.Translator, code string, supported []string) []issue.ValidationError {
	if strings.TrimSpace(code) == "" {
		return []issue.ValidationError{issue.Error("", issue.PropLanguage, tr(issue.MsgLanguageMissing))}
	}
	if _, err := language.Parse(code); err != nil {
		return []issue.ValidationError{issue.Error("", issue.PropLanguage, tr(issue.MsgLanguageInvalid, code))}
	}
	if !IsSupportedLanguage(code, supported) {
		return []issue.ValidationError{issue.Warning("", issue.PropLanguage, tr(issue.MsgLanguageUnsupported, code))}
	}
	return nil
}

// IsSupportedLanguage reports whether code is in supported, ignoring case.
func IsSupportedLanguage(code string, supported []string) bool {
	for _, s := range supported {
		if strings.EqualFold(s, code) {
			return true
		}
	}
	return false
}
