package model

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/gofhir/fhir/r4"
)

// Meta holds the questionnaire's meta element.
type Meta struct {
	Security []Coding `json:"security,omitempty"`
}

// Questionnaire holds the document-level metadata of a questionnaire.
type Questionnaire struct {
	ID          string      `json:"id,omitempty"`
	Title       string      `json:"title,omitempty"`
	Name        string      `json:"name,omitempty"`
	URL         string      `json:"url,omitempty"`
	Language    string      `json:"language,omitempty"`
	Status      string      `json:"status,omitempty"`
	Version     string      `json:"version,omitempty"`
	Description string      `json:"description,omitempty"`
	Publisher   string      `json:"publisher,omitempty"`
	Purpose     string      `json:"purpose,omitempty"`
	Copyright   string      `json:"copyright,omitempty"`
	Code        []Coding    `json:"code,omitempty"`
	Meta        *Meta       `json:"meta,omitempty"`
	Extension   []Extension `json:"extension,omitempty"`
}

// ItemTranslation holds the translated text fields of one item.
type ItemTranslation struct {
	Text           string `json:"text,omitempty"`
	Prefix         string `json:"prefix,omitempty"`
	Sublabel       string `json:"sublabel,omitempty"`
	RepeatsText    string `json:"repeatsText,omitempty"`
	ValidationText string `json:"validationText,omitempty"`
	EntryFormat    string `json:"entryFormat,omitempty"`
	InitialValue   string `json:"initialValue,omitempty"`
}

// ValueSetTranslation holds the translations of one contained value set.
type ValueSetTranslation struct {
	Name     string            `json:"name,omitempty"`
	Concepts map[string]string `json:"concepts,omitempty"`
}

// Translation is the translation set of one additional language.
type Translation struct {
	Items     map[string]ItemTranslation     `json:"items,omitempty"`
	Options   map[string]map[string]string   `json:"options,omitempty"`
	Sidebar   map[string]string              `json:"sidebar,omitempty"`
	Metadata  map[string]string              `json:"metadata,omitempty"`
	ValueSets map[string]ValueSetTranslation `json:"valueSets,omitempty"`
	Settings  map[string]string              `json:"settings,omitempty"`
}

// Document is a snapshot of a questionnaire being edited. The validation
// engine only reads it.
type Document struct {
	Questionnaire Questionnaire           `json:"questionnaire"`
	Items         map[string]*Item        `json:"items"`
	Order         []*OrderItem            `json:"order"`
	Translations  map[string]*Translation `json:"translations,omitempty"`
	Contained     []r4.ValueSet           `json:"contained,omitempty"`
}

// ParseDocument decodes a JSON snapshot of the document model.
func ParseDocument(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse document snapshot: %w", err)
	}
	if doc.Items == nil {
		doc.Items = make(map[string]*Item)
	}
	return &doc, nil
}

// ValueSet returns the contained value set referenced by answerValueSet
// ("#id" or "id"), or nil.
func (d *Document) ValueSet(ref string) *r4.ValueSet {
	id := strings.TrimPrefix(ref, "#")
	if id == "" {
		return nil
	}
	for i := range d.Contained {
		if d.Contained[i].Id != nil && *d.Contained[i].Id == id {
			return &d.Contained[i]
		}
	}
	return nil
}

// ValueSetConcepts flattens the compose and expansion concepts of a value set.
func ValueSetConcepts(vs *r4.ValueSet) []Coding {
	if vs == nil {
		return nil
	}
	var codings []Coding
	if vs.Compose != nil {
		for i := range vs.Compose.Include {
			include := &vs.Compose.Include[i]
			system := deref(include.System)
			for j := range include.Concept {
				concept := &include.Concept[j]
				codings = append(codings, Coding{
					System:  system,
					Code:    deref(concept.Code),
					Display: deref(concept.Display),
				})
			}
		}
	}
	if vs.Expansion != nil {
		for i := range vs.Expansion.Contains {
			codings = appendContains(codings, &vs.Expansion.Contains[i])
		}
	}
	return codings
}

func appendContains(codings []Coding, c *r4.ValueSetExpansionContains) []Coding {
	if c.Code != nil {
		codings = append(codings, Coding{
			System:  deref(c.System),
			Code:    *c.Code,
			Display: deref(c.Display),
		})
	}
	for i := range c.Contains {
		codings = appendContains(codings, &c.Contains[i])
	}
	return codings
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
