// Package metadata validates questionnaire-level details: id, title, name,
// url, the endpoint and print-version references, the language code, and
// bundles of questionnaires on import.
package metadata

import (
	"regexp"
	"strings"

	"github.com/helsenorge/structor-export-sub000/pkg/issue"
	"github.com/helsenorge/structor-export-sub000/pkg/model"
	"github.com/helsenorge/structor-export-sub000/pkg/predicate"
	"github.com/helsenorge/structor-export-sub000/pkg/snapshot"
)

var (
	idPattern   = regexp.MustCompile(`^[A-Za-z0-9\-.]{1,64}$`)
	namePattern = regexp.MustCompile(`^[A-Z][A-Za-z0-9_]{0,254}$`)
)

// Reference prefixes of the questionnaire reference extensions.
const (
	EndpointPrefix     = "Endpoint/"
	PrintVersionPrefix = "Binary/"
)

// Validate checks the questionnaire details. urlPrefix is the expected
// start of the questionnaire url.
func Validate(tr issue.Translator, snap *snapshot.Snapshot, urlPrefix string) []issue.ValidationError {
	q := snap.Questionnaire()
	var errs []issue.ValidationError
	errs = append(errs, validateDetails(tr, q)...)
	errs = append(errs, validateURL(tr, q, urlPrefix)...)
	errs = append(errs, validateReference(tr, q, model.ExtEndpoint, issue.PropEndpoint, EndpointPrefix)...)
	errs = append(errs, validateReference(tr, q, model.ExtPrintVersion, issue.PropPrintVersion, PrintVersionPrefix)...)
	return errs
}

// IsValidID reports whether id is a valid FHIR resource id.
func IsValidID(id string) bool {
	return idPattern.MatchString(id)
}

func validateDetails(tr issue.Translator, q *model.Questionnaire) []issue.ValidationError {
	var errs []issue.ValidationError

	switch {
	case q.ID == "":
		errs = append(errs, issue.Error("", issue.PropID, tr(issue.MsgIDMissing)))
	case !IsValidID(q.ID):
		errs = append(errs, issue.Error("", issue.PropID, tr(issue.MsgIDInvalid, q.ID)))
	}

	switch {
	case strings.TrimSpace(q.Title) == "":
		errs = append(errs, issue.Error("", issue.PropTitle, tr(issue.MsgTitleMissing)))
	case strings.ContainsAny(q.Title, "\n\r\t"):
		errs = append(errs, issue.Error("", issue.PropTitle, tr(issue.MsgTitleInvalid)))
	}

	switch {
	case q.Name == "":
		errs = append(errs, issue.Error("", issue.PropName, tr(issue.MsgNameMissing)))
	case !namePattern.MatchString(q.Name):
		errs = append(errs, issue.Warning("", issue.PropName, tr(issue.MsgNameInvalid, q.Name)))
	}
	return errs
}

// validateURL warns about a missing url or prefix. A trailing segment that
// differs from the id is an error.
func validateURL(tr issue.Translator, q *model.Questionnaire, prefix string) []issue.ValidationError {
	if q.URL == "" {
		return []issue.ValidationError{issue.Warning("", issue.PropURL, tr(issue.MsgURLMissing))}
	}
	var errs []issue.ValidationError
	if prefix != "" && !strings.HasPrefix(q.URL, prefix) {
		errs = append(errs, issue.Warning("", issue.PropURL, tr(issue.MsgURLPrefix, prefix)))
	}
	if lastSegment(q.URL) != q.ID {
		errs = append(errs, issue.Error("", issue.PropURL, tr(issue.MsgURLID, q.ID)))
	}
	return errs
}

func validateReference(tr issue.Translator, q *model.Questionnaire, url string, prop issue.Property, prefix string) []issue.ValidationError {
	ext := predicate.FindExtension(q.Extension, url)
	if ext == nil {
		return nil
	}
	ref, _ := predicate.ExtensionReference(q.Extension, url)
	name := string(prop)
	if ref == "" {
		return []issue.ValidationError{issue.Warning("", prop, tr(issue.MsgReferenceEmpty, name))}
	}
	var errs []issue.ValidationError
	if !strings.HasPrefix(ref, prefix) {
		errs = append(errs, issue.Warning("", prop, tr(issue.MsgReferencePrefix, name, prefix)))
	}
	if !IsValidID(lastSegment(ref)) {
		errs = append(errs, issue.Error("", prop, tr(issue.MsgReferenceID, ref)))
	}
	return errs
}

func lastSegment(s string) string {
	s = strings.TrimRight(s, "/")
	if i := strings.LastIndex(s, "/"); i >= 0 {
		return s[i+1:]
	}
	return s
}
