// Package modeltest provides builders for questionnaire documents used in
// tests.
package modeltest

import (
	"github.com/gofhir/fhir/r4"

	"github.com/helsenorge/structor-export-sub000/pkg/model"
	"github.com/helsenorge/structor-export-sub000/pkg/walker"
)

// QuestionnaireID is the id of the questionnaire returned by Questionnaire.
const QuestionnaireID = "test-questionnaire"

// Builder assembles a Document item by item.
type Builder struct {
	doc *model.Document
}

// New starts an empty document.
func New() *Builder {
	return &Builder{doc: &model.Document{Items: make(map[string]*model.Item)}}
}

// Valid starts a document whose questionnaire metadata passes every
// document-level rule.
func Valid() *Builder {
	b := New()
	b.doc.Questionnaire = Questionnaire()
	return b
}

// Questionnaire returns metadata that passes every document-level rule.
func Questionnaire() model.Questionnaire {
	return model.Questionnaire{
		ID:       QuestionnaireID,
		Title:    "Test questionnaire",
		Name:     "Test_questionnaire",
		URL:      "http://ehelse.no/fhir/Questionnaire/" + QuestionnaireID,
		Language: "nb-NO",
		Status:   "draft",
		Meta: &model.Meta{Security: []model.Coding{
			{System: model.SystemSecurityLabel, Code: "3"},
		}},
	}
}

// Add places items under the node with linkId parent ("" for the root) and
// registers them in the item map.
func (b *Builder) Add(parent string, items ...*model.Item) *Builder {
	for _, item := range items {
		b.doc.Items[item.LinkID] = item
		b.Node(parent, item.LinkID)
	}
	return b
}

// Node places an order tree node under parent without touching the item map.
func (b *Builder) Node(parent, linkID string) *Builder {
	node := &model.OrderItem{LinkID: linkID}
	if parent == "" {
		b.doc.Order = append(b.doc.Order, node)
		return b
	}
	p := walker.Find(b.doc.Order, parent)
	if p == nil {
		panic("modeltest: unknown parent " + parent)
	}
	p.Items = append(p.Items, node)
	return b
}

// Orphan registers items in the item map only.
func (b *Builder) Orphan(items ...*model.Item) *Builder {
	for _, item := range items {
		b.doc.Items[item.LinkID] = item
	}
	return b
}

// MapAs registers item under a map key that differs from its linkId.
func (b *Builder) MapAs(key string, item *model.Item) *Builder {
	b.doc.Items[key] = item
	return b
}

// Meta edits the questionnaire metadata.
func (b *Builder) Meta(fn func(q *model.Questionnaire)) *Builder {
	fn(&b.doc.Questionnaire)
	return b
}

// Translation adds a translation set.
func (b *Builder) Translation(lang string, t *model.Translation) *Builder {
	if b.doc.Translations == nil {
		b.doc.Translations = make(map[string]*model.Translation)
	}
	b.doc.Translations[lang] = t
	return b
}

// ValueSet adds a contained value set with compose concepts.
func (b *Builder) ValueSet(id, system string, codes ...string) *Builder {
	vs := r4.ValueSet{Id: ptr(id), Name: ptr(id)}
	include := r4.ValueSetComposeInclude{System: ptr(system)}
	for _, code := range codes {
		include.Concept = append(include.Concept, r4.ValueSetComposeIncludeConcept{
			Code:    ptr(code),
			Display: ptr("Display " + code),
		})
	}
	vs.Compose = &r4.ValueSetCompose{Include: []r4.ValueSetComposeInclude{include}}
	b.doc.Contained = append(b.doc.Contained, vs)
	return b
}

// Doc returns the document.
func (b *Builder) Doc() *model.Document {
	return b.doc
}

// Item creates an item with text.
func Item(linkID string, t model.ItemType, exts ...model.Extension) *model.Item {
	return &model.Item{LinkID: linkID, Type: t, Text: "Item " + linkID, Extension: exts}
}

// Control returns an item-control extension.
func Control(codes ...string) model.Extension {
	cc := &model.CodeableConcept{}
	for _, c := range codes {
		cc.Coding = append(cc.Coding, model.Coding{System: model.SystemItemControl, Code: c})
	}
	return model.Extension{URL: model.ExtItemControl, ValueCodeableConcept: cc}
}

// String returns an extension with a string value.
func String(url, v string) model.Extension {
	return model.Extension{URL: url, ValueString: ptr(v)}
}

// Bool returns an extension with a boolean value.
func Bool(url string, v bool) model.Extension {
	return model.Extension{URL: url, ValueBoolean: &v}
}

// Int returns an extension with an integer value.
func Int(url string, v int) model.Extension {
	return model.Extension{URL: url, ValueInteger: &v}
}

// Decimal returns an extension with a decimal value.
func Decimal(url string, v float64) model.Extension {
	return model.Extension{URL: url, ValueDecimal: &v}
}

// CodingExt returns an extension with a Coding value.
func CodingExt(url, system, code string) model.Extension {
	return model.Extension{URL: url, ValueCoding: &model.Coding{System: system, Code: code}}
}

// Reference returns an extension with a Reference value.
func Reference(url, ref string) model.Extension {
	return model.Extension{URL: url, ValueReference: &model.Reference{Reference: ref}}
}

// Expression returns an extension with a FHIRPath Expression value.
func Expression(url, expr string) model.Extension {
	return model.Extension{URL: url, ValueExpression: &model.Expression{Language: "text/fhirpath", Expression: expr}}
}

// Calculated returns a calculated-expression extension.
func Calculated(expr string) model.Extension {
	return Expression(model.ExtCalculatedExpression, expr)
}

// Copy returns a copy-expression extension.
func Copy(expr string) model.Extension {
	return String(model.ExtCopyExpression, expr)
}

// CopyFrom returns a copy-expression extension reading the answer of linkID.
func CopyFrom(linkID string) model.Extension {
	return Copy("QuestionnaireResponse.descendants().where(linkId='" + linkID + "').answer.value")
}

// Option returns a coded answer option.
func Option(system, code, display string) model.AnswerOption {
	return model.AnswerOption{ValueCoding: &model.Coding{System: system, Code: code, Display: display}}
}

// Code returns an item code.
func Code(system, code, display string) model.Coding {
	return model.Coding{System: system, Code: code, Display: display}
}

// InitialCoding returns an initial value with a Coding.
func InitialCoding(system, code string) model.Initial {
	return model.Initial{ValueCoding: &model.Coding{System: system, Code: code}}
}

// InitialString returns an initial value with a string.
func InitialString(v string) model.Initial {
	return model.Initial{ValueString: ptr(v)}
}

func ptr[T any](v T) *T { return &v }
