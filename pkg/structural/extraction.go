package structural

import (
	"strings"

	"github.com/helsenorge/structor-export-sub000/pkg/issue"
	"github.com/helsenorge/structor-export-sub000/pkg/model"
	"github.com/helsenorge/structor-export-sub000/pkg/predicate"
	"github.com/helsenorge/structor-export-sub000/pkg/snapshot"
)

// validateExtraction checks the resource type named by the item definition
// against the nearest extraction context (item, ancestors, questionnaire).
func validateExtraction(tr issue.Translator, item *model.Item, traits *predicate.Traits, snap *snapshot.Snapshot) []issue.ValidationError {
	resource := DefinitionResourceType(item.Definition)
	if resource == "" {
		return nil
	}
	context := extractionContext(item, traits, snap)
	if context == "" {
		if resource == model.ResourceServiceRequest {
			return []issue.ValidationError{
				issue.Error(item.LinkID, issue.PropDefinition, tr(issue.MsgExtractionContext)),
			}
		}
		return nil
	}
	if resource != context {
		return []issue.ValidationError{
			issue.Error(item.LinkID, issue.PropDefinition, tr(issue.MsgDefinitionResourceType, resource, context)),
		}
	}
	return nil
}

// DefinitionResourceType returns the resource type of an item definition
// such as "http://hl7.org/fhir/StructureDefinition/ServiceRequest#ServiceRequest.code",
// or "" when the definition does not name an element path.
func DefinitionResourceType(definition string) string {
	_, path, ok := strings.Cut(definition, "#")
	if !ok || path == "" {
		return ""
	}
	resource, _, _ := strings.Cut(path, ".")
	return resource
}

func extractionContext(item *model.Item, traits *predicate.Traits, snap *snapshot.Snapshot) string {
	if traits.ExtractionContext != "" {
		return contextResource(traits.ExtractionContext)
	}
	id := item.LinkID
	for {
		parent, ok := snap.Parent(id)
		if !ok {
			break
		}
		if t := snap.Traits(parent); t.ExtractionContext != "" {
			return contextResource(t.ExtractionContext)
		}
		id = parent
	}
	if v, ok := predicate.ExtensionString(snap.Questionnaire().Extension, model.ExtExtractionContext); ok && v != "" {
		return contextResource(v)
	}
	return ""
}

// contextResource accepts a bare resource code or a canonical
// StructureDefinition url and returns the resource type.
func contextResource(v string) string {
	if i := strings.LastIndex(v, "/"); i >= 0 {
		return v[i+1:]
	}
	return v
}
