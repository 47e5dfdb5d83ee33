package predicate

import "github.com/helsenorge/structor-export-sub000/pkg/model"

// Traits is the typed view of an item's extensions and tagging codes,
// decoded once per item so rules never re-scan extension arrays.
type Traits struct {
	Controls []string

	CalculatedExpression string
	HasCalculated        bool
	CopyExpression       string
	HasCopy              bool
	FhirPath             string
	HasFhirPath          bool

	HasMinValue  bool
	HasMaxValue  bool
	HasMinLength bool
	MinLength    int

	MinDateFhirPath    string
	HasMinDateFhirPath bool
	MaxDateFhirPath    string
	HasMaxDateFhirPath bool

	Hidden         bool
	Markdown       string
	Sublabel       string
	RepeatsText    string
	ValidationText string
	EntryFormat    string

	ExtractionContext string
	Unit              *model.Coding

	// Scoring is set when the item is tagged as a score field.
	Scoring bool
	// ScoringFormula is the section/total/question score code, if any.
	ScoringFormula string
}

// Decode builds the Traits of an item. A nil item yields empty traits.
func Decode(item *model.Item) *Traits {
	t := &Traits{}
	if item == nil {
		return t
	}
	exts := item.Extension

	t.Controls = ItemControlCodes(item)
	t.CalculatedExpression, t.HasCalculated = ExtensionExpression(exts, model.ExtCalculatedExpression)
	t.CopyExpression, t.HasCopy = ExtensionExpression(exts, model.ExtCopyExpression)
	t.FhirPath, t.HasFhirPath = ExtensionExpression(exts, model.ExtFhirPath)
	t.HasMinValue = HasExtension(exts, model.ExtMinValue)
	t.HasMaxValue = HasExtension(exts, model.ExtMaxValue)
	if ext := FindExtension(exts, model.ExtMinLength); ext != nil {
		t.HasMinLength = true
		if ext.ValueInteger != nil {
			t.MinLength = *ext.ValueInteger
		}
	}
	t.MinDateFhirPath, t.HasMinDateFhirPath = ExtensionExpression(exts, model.ExtMinDateFhirPath)
	t.MaxDateFhirPath, t.HasMaxDateFhirPath = ExtensionExpression(exts, model.ExtMaxDateFhirPath)
	t.Hidden, _ = ExtensionBoolean(exts, model.ExtHidden)
	t.Sublabel, _ = ExtensionString(exts, model.ExtSublabel)
	t.RepeatsText, _ = ExtensionString(exts, model.ExtRepeatsText)
	t.ValidationText, _ = ExtensionString(exts, model.ExtValidationText)
	t.EntryFormat, _ = ExtensionString(exts, model.ExtEntryFormat)
	t.ExtractionContext, _ = ExtensionString(exts, model.ExtExtractionContext)
	if unit, ok := ExtensionCoding(exts, model.ExtQuestionnaireUnit); ok {
		t.Unit = &unit
	}
	if item.TextElement != nil {
		t.Markdown, _ = ExtensionString(item.TextElement.Extension, model.ExtMarkdown)
	}

	t.Scoring = HasCode(item, model.SystemScore, model.CodeScore)
	for _, c := range CodesWithSystem(item, model.SystemScoringFormula) {
		switch c.Code {
		case model.CodeSectionScore, model.CodeTotalScore, model.CodeQuestionScore:
			t.ScoringFormula = c.Code
		}
		if t.ScoringFormula != "" {
			break
		}
	}
	return t
}

// HasControl reports whether the item is tagged with the control code.
func (t *Traits) HasControl(code string) bool {
	for _, c := range t.Controls {
		if c == code {
			return true
		}
	}
	return false
}

// HasAnyControl reports whether the item is tagged with one or more of the codes.
func (t *Traits) HasAnyControl(codes ...string) bool {
	for _, code := range codes {
		if t.HasControl(code) {
			return true
		}
	}
	return false
}

// IsDataReceiver reports whether the item is tagged as a data receiver.
func (t *Traits) IsDataReceiver() bool {
	return t.HasControl(model.ControlDataReceiver)
}

// IsConfiguredDataReceiver reports whether the item is a data receiver with a
// copy expression.
func (t *Traits) IsConfiguredDataReceiver() bool {
	return t.IsDataReceiver() && t.HasCopy && t.CopyExpression != ""
}

// TableKind returns the first table control code of the item, or "".
func (t *Traits) TableKind() string {
	for _, c := range t.Controls {
		for _, table := range model.TableControls {
			if c == table {
				return c
			}
		}
	}
	return ""
}

// IsScoreItem reports whether the item is tagged as a score field or carries
// a scoring formula code.
func (t *Traits) IsScoreItem() bool {
	return t.Scoring || t.ScoringFormula != ""
}
