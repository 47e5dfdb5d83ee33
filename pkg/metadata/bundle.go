package metadata

import (
	"encoding/json"
	"fmt"

	"github.com/helsenorge/structor-export-sub000/pkg/issue"
)

const (
	resourceQuestionnaire = "Questionnaire"
	resourceBundle        = "Bundle"
)

// ImportedQuestionnaire is the part of a raw FHIR Questionnaire the import
// checks read.
type ImportedQuestionnaire struct {
	ID       string `json:"id"`
	Language string `json:"language"`
}

// Import is a parsed import file: a single questionnaire or a bundle.
type Import struct {
	IsBundle       bool
	Questionnaires []ImportedQuestionnaire
}

type rawResource struct {
	ResourceType string `json:"resourceType"`
	ID           string `json:"id"`
	Language     string `json:"language"`
	Entry        []struct {
		Resource json.RawMessage `json:"resource"`
	} `json:"entry"`
}

// ParseImport decodes a FHIR Questionnaire or a Bundle of Questionnaires.
// Bundle entries of other resource types are ignored.
func ParseImport(data []byte) (*Import, error) {
	var root rawResource
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("failed to parse import resource: %w", err)
	}
	switch root.ResourceType {
	case resourceQuestionnaire:
		return &Import{Questionnaires: []ImportedQuestionnaire{{ID: root.ID, Language: root.Language}}}, nil
	case resourceBundle:
		imp := &Import{IsBundle: true}
		for i, entry := range root.Entry {
			if len(entry.Resource) == 0 {
				continue
			}
			var res rawResource
			if err := json.Unmarshal(entry.Resource, &res); err != nil {
				return nil, fmt.Errorf("failed to parse bundle entry %d: %w", i, err)
			}
			if res.ResourceType == resourceQuestionnaire {
				imp.Questionnaires = append(imp.Questionnaires, ImportedQuestionnaire{ID: res.ID, Language: res.Language})
			}
		}
		return imp, nil
	default:
		return nil, fmt.Errorf("unsupported resource type %q", root.ResourceType)
	}
}

// ValidateImport runs the bundle and language checks over a parsed import.
func ValidateImport(tr issue.Translator, imp *Import, supported []string) []issue.ValidationError {
	if imp == nil {
		return nil
	}
	var errs []issue.ValidationError
	if imp.IsBundle {
		errs = append(errs, ValidateBundle(tr, imp.Questionnaires)...)
	}
	for _, q := range imp.Questionnaires {
		for _, e := range ValidateLanguage(tr, q.Language, supported) {
			e.LinkID = q.ID
			errs = append(errs, e)
		}
	}
	return errs
}

// ValidateBundle reports an empty bundle, and each questionnaire id used
// more than once, in order of first use.
func ValidateBundle(tr issue.Translator, qs []ImportedQuestionnaire) []issue.ValidationError {
	if len(qs) == 0 {
		return []issue.ValidationError{issue.Error("", issue.PropID, tr(issue.MsgBundleEmpty))}
	}
	counts := make(map[string]int, len(qs))
	var order []string
	for _, q := range qs {
		if counts[q.ID] == 0 {
			order = append(order, q.ID)
		}
		counts[q.ID]++
	}
	var errs []issue.ValidationError
	for _, id := range order {
		if counts[id] > 1 {
			errs = append(errs, issue.Error(id, issue.PropID, tr(issue.MsgBundleDuplicateID, id)))
		}
	}
	return errs
}
