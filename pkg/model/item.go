// Package model defines the in-memory document model of a questionnaire being
// edited: a flat map of items, a separate order tree, metadata, translations
// and contained value sets.
package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Coding is a FHIR Coding.
type Coding struct {
	System  string `json:"system,omitempty"`
	Code    string `json:"code,omitempty"`
	Display string `json:"display,omitempty"`
}

// CodeableConcept is a FHIR CodeableConcept.
type CodeableConcept struct {
	Coding []Coding `json:"coding,omitempty"`
	Text   string   `json:"text,omitempty"`
}

// Quantity is a FHIR Quantity.
type Quantity struct {
	Value  *float64 `json:"value,omitempty"`
	Unit   string   `json:"unit,omitempty"`
	System string   `json:"system,omitempty"`
	Code   string   `json:"code,omitempty"`
}

// Reference is a FHIR Reference.
type Reference struct {
	Reference string `json:"reference,omitempty"`
	Display   string `json:"display,omitempty"`
}

// Expression is a FHIR Expression.
type Expression struct {
	Name       string `json:"name,omitempty"`
	Language   string `json:"language,omitempty"`
	Expression string `json:"expression,omitempty"`
}

// Extension is a url plus exactly one typed value (or nested extensions).
type Extension struct {
	URL                  string           `json:"url,omitempty"`
	ValueString          *string          `json:"valueString,omitempty"`
	ValueMarkdown        *string          `json:"valueMarkdown,omitempty"`
	ValueCode            *string          `json:"valueCode,omitempty"`
	ValueBoolean         *bool            `json:"valueBoolean,omitempty"`
	ValueInteger         *int             `json:"valueInteger,omitempty"`
	ValueDecimal         *float64         `json:"valueDecimal,omitempty"`
	ValueDate            *string          `json:"valueDate,omitempty"`
	ValueDateTime        *string          `json:"valueDateTime,omitempty"`
	ValueURI             *string          `json:"valueUri,omitempty"`
	ValueCoding          *Coding          `json:"valueCoding,omitempty"`
	ValueCodeableConcept *CodeableConcept `json:"valueCodeableConcept,omitempty"`
	ValueReference       *Reference       `json:"valueReference,omitempty"`
	ValueQuantity        *Quantity        `json:"valueQuantity,omitempty"`
	ValueExpression      *Expression      `json:"valueExpression,omitempty"`
	Extension            []Extension      `json:"extension,omitempty"`

	// valueKeys counts the value[x] keys seen when decoding from JSON,
	// including value types without a typed field above.
	valueKeys int
}

// UnmarshalJSON decodes the typed fields and records every value[x] key.
func (e *Extension) UnmarshalJSON(data []byte) error {
	type plain Extension
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to decode extension keys: %w", err)
	}
	*e = Extension(p)
	for key, value := range raw {
		if strings.HasPrefix(key, "value") && !bytes.Equal(bytes.TrimSpace(value), []byte("null")) {
			e.valueKeys++
		}
	}
	return nil
}

// ValueCount returns the number of value[x] entries. For a decoded extension
// this is the number of value[x] keys in the JSON, otherwise the number of
// typed value fields that are set.
func (e *Extension) ValueCount() int {
	if e.valueKeys > 0 {
		return e.valueKeys
	}
	n := 0
	for _, set := range []bool{
		e.ValueString != nil,
		e.ValueMarkdown != nil,
		e.ValueCode != nil,
		e.ValueBoolean != nil,
		e.ValueInteger != nil,
		e.ValueDecimal != nil,
		e.ValueDate != nil,
		e.ValueDateTime != nil,
		e.ValueURI != nil,
		e.ValueCoding != nil,
		e.ValueCodeableConcept != nil,
		e.ValueReference != nil,
		e.ValueQuantity != nil,
		e.ValueExpression != nil,
	} {
		if set {
			n++
		}
	}
	return n
}

// Element carries the extensions of a primitive, e.g. "_text".
type Element struct {
	Extension []Extension `json:"extension,omitempty"`
}

// AnswerOption is one permitted answer of a choice item.
type AnswerOption struct {
	ValueCoding     *Coding     `json:"valueCoding,omitempty"`
	ValueString     *string     `json:"valueString,omitempty"`
	ValueInteger    *int        `json:"valueInteger,omitempty"`
	ValueDate       *string     `json:"valueDate,omitempty"`
	ValueTime       *string     `json:"valueTime,omitempty"`
	ValueReference  *Reference  `json:"valueReference,omitempty"`
	InitialSelected bool        `json:"initialSelected,omitempty"`
	Extension       []Extension `json:"extension,omitempty"`
}

// EnableWhen makes an item conditionally visible.
type EnableWhen struct {
	Question        string     `json:"question,omitempty"`
	Operator        string     `json:"operator,omitempty"`
	AnswerBoolean   *bool      `json:"answerBoolean,omitempty"`
	AnswerDecimal   *float64   `json:"answerDecimal,omitempty"`
	AnswerInteger   *int       `json:"answerInteger,omitempty"`
	AnswerDate      *string    `json:"answerDate,omitempty"`
	AnswerDateTime  *string    `json:"answerDateTime,omitempty"`
	AnswerTime      *string    `json:"answerTime,omitempty"`
	AnswerString    *string    `json:"answerString,omitempty"`
	AnswerCoding    *Coding    `json:"answerCoding,omitempty"`
	AnswerQuantity  *Quantity  `json:"answerQuantity,omitempty"`
	AnswerReference *Reference `json:"answerReference,omitempty"`
}

// KeyCount returns the number of populated keys (question, operator and each answer[x]).
func (e *EnableWhen) KeyCount() int {
	n := 0
	for _, set := range []bool{
		e.Question != "",
		e.Operator != "",
		e.AnswerBoolean != nil,
		e.AnswerDecimal != nil,
		e.AnswerInteger != nil,
		e.AnswerDate != nil,
		e.AnswerDateTime != nil,
		e.AnswerTime != nil,
		e.AnswerString != nil,
		e.AnswerCoding != nil,
		e.AnswerQuantity != nil,
		e.AnswerReference != nil,
	} {
		if set {
			n++
		}
	}
	return n
}

// Attachment is a FHIR Attachment.
type Attachment struct {
	ContentType string `json:"contentType,omitempty"`
	Data        string `json:"data,omitempty"`
	URL         string `json:"url,omitempty"`
	Title       string `json:"title,omitempty"`
}

// Initial is the default answer of an item.
type Initial struct {
	ValueBoolean   *bool      `json:"valueBoolean,omitempty"`
	ValueDecimal   *float64   `json:"valueDecimal,omitempty"`
	ValueInteger   *int       `json:"valueInteger,omitempty"`
	ValueDate      *string    `json:"valueDate,omitempty"`
	ValueDateTime  *string    `json:"valueDateTime,omitempty"`
	ValueTime      *string    `json:"valueTime,omitempty"`
	ValueString    *string    `json:"valueString,omitempty"`
	ValueURI       *string    `json:"valueUri,omitempty"`
	ValueCoding    *Coding    `json:"valueCoding,omitempty"`
	ValueQuantity  *Quantity  `json:"valueQuantity,omitempty"`
	ValueReference *Reference `json:"valueReference,omitempty"`

	ValueAttachment *Attachment `json:"valueAttachment,omitempty"`
}

// HasValue reports whether any value[x] is set.
func (i *Initial) HasValue() bool {
	return i.ValueBoolean != nil || i.ValueDecimal != nil || i.ValueInteger != nil ||
		i.ValueDate != nil || i.ValueDateTime != nil || i.ValueTime != nil ||
		i.ValueString != nil || i.ValueURI != nil || i.ValueCoding != nil ||
		i.ValueQuantity != nil || i.ValueReference != nil || i.ValueAttachment != nil
}

// Item is one question, group or display element. Items carry no children:
// nesting is recorded in the order tree.
type Item struct {
	LinkID         string         `json:"linkId"`
	Type           ItemType       `json:"type"`
	Text           string         `json:"text,omitempty"`
	TextElement    *Element       `json:"_text,omitempty"`
	Prefix         string         `json:"prefix,omitempty"`
	Definition     string         `json:"definition,omitempty"`
	Code           []Coding       `json:"code,omitempty"`
	Extension      []Extension    `json:"extension,omitempty"`
	AnswerOption   []AnswerOption `json:"answerOption,omitempty"`
	AnswerValueSet string         `json:"answerValueSet,omitempty"`
	EnableWhen     []EnableWhen   `json:"enableWhen,omitempty"`
	EnableBehavior string         `json:"enableBehavior,omitempty"`
	Initial        []Initial      `json:"initial,omitempty"`
	Required       bool           `json:"required,omitempty"`
	ReadOnly       bool           `json:"readOnly,omitempty"`
	Repeats        bool           `json:"repeats,omitempty"`
	MaxLength      *int           `json:"maxLength,omitempty"`
}

// HasInitialValue reports whether the item carries at least one initial value.
func (i *Item) HasInitialValue() bool {
	for k := range i.Initial {
		if i.Initial[k].HasValue() {
			return true
		}
	}
	return false
}

// OrderItem is a node of the order tree.
type OrderItem struct {
	LinkID string       `json:"linkId"`
	Items  []*OrderItem `json:"items,omitempty"`
}
