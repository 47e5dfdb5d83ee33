package structural

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helsenorge/structor-export-sub000/pkg/issue"
	"github.com/helsenorge/structor-export-sub000/pkg/model"
	"github.com/helsenorge/structor-export-sub000/pkg/model/modeltest"
	"github.com/helsenorge/structor-export-sub000/pkg/snapshot"
)

const sys = "urn:oid:2.16.578.1.12.4.1.1.9999"

var tr = issue.DefaultTranslator

func texts(errs []issue.ValidationError) []string {
	out := make([]string, 0, len(errs))
	for _, e := range errs {
		out = append(out, e.Text)
	}
	return out
}

func validateItem(b *modeltest.Builder, linkID string) []issue.ValidationError {
	doc := b.Doc()
	return ValidateItem(tr, doc.Items[linkID], snapshot.New(doc))
}

func TestValidItem(t *testing.T) {
	item := modeltest.Item("q", model.ItemTypeChoice)
	item.Code = []model.Coding{modeltest.Code(sys, "1", "One")}
	item.AnswerOption = []model.AnswerOption{modeltest.Option(sys, "1", "One")}
	item.Initial = []model.Initial{modeltest.InitialCoding(sys, "1")}
	assert.Empty(t, validateItem(modeltest.New().Add("", item), "q"))
}

func TestValidateNode(t *testing.T) {
	t.Run("missing item", func(t *testing.T) {
		doc := modeltest.New().Node("", "ghost").Doc()
		snap := snapshot.New(doc)
		errs := ValidateNode(tr, doc.Order[0], snap)
		require.Len(t, errs, 1)
		assert.Equal(t, "Item with linkId ghost is in the order but does not exist", errs[0].Text)
		assert.Equal(t, "ghost", errs[0].LinkID)
	})

	t.Run("empty linkId", func(t *testing.T) {
		item := modeltest.Item("", model.ItemTypeString)
		doc := modeltest.New().MapAs("k", item).Node("", "k").Doc()
		errs := ValidateNode(tr, doc.Order[0], snapshot.New(doc))
		require.Len(t, errs, 1)
		assert.Equal(t, issue.MsgLinkIDMissing, errs[0].Text)
		assert.Equal(t, "k", errs[0].LinkID)
	})

	t.Run("duplicate reported once", func(t *testing.T) {
		doc := modeltest.New().
			Add("", modeltest.Item("1", model.ItemTypeString)).
			MapAs("2", modeltest.Item("1", model.ItemTypeString)).
			Node("", "2").
			Doc()
		snap := snapshot.New(doc)

		var errs []issue.ValidationError
		for _, node := range doc.Order {
			errs = append(errs, ValidateNode(tr, node, snap)...)
		}
		require.Len(t, errs, 1)
		assert.Equal(t, "1", errs[0].LinkID)
		assert.Equal(t, issue.PropLinkID, errs[0].Property)
		assert.Equal(t, issue.LevelError, errs[0].Level)
		assert.Equal(t, "LinkId 1 is used by more than one item", errs[0].Text)
	})

	assert.Nil(t, ValidateNode(tr, nil, snapshot.New(nil)))
}

func TestValidateOrder(t *testing.T) {
	doc := modeltest.New().
		Add("", modeltest.Item("a", model.ItemTypeString)).
		Orphan(modeltest.Item("z", model.ItemTypeString), modeltest.Item("b", model.ItemTypeString)).
		Doc()
	errs := ValidateOrder(tr, snapshot.New(doc))
	require.Len(t, errs, 2)
	assert.Equal(t, "b", errs[0].LinkID)
	assert.Equal(t, "z", errs[1].LinkID)
	assert.Equal(t, "Item with linkId b is not placed in the questionnaire", errs[0].Text)
}

func TestUnknownType(t *testing.T) {
	item := modeltest.Item("q", model.ItemType("signature"))
	assert.Equal(t, []string{"Item type signature is not supported"}, texts(validateItem(modeltest.New().Add("", item), "q")))
}

func TestFlags(t *testing.T) {
	maxLength := 10
	tests := []struct {
		name  string
		build func() *model.Item
		want  []string
	}{
		{
			name: "read-only with max length",
			build: func() *model.Item {
				item := modeltest.Item("q", model.ItemTypeString)
				item.ReadOnly, item.MaxLength = true, &maxLength
				return item
			},
			want: []string{issue.MsgReadOnlyValidation},
		},
		{
			name: "read-only with min length",
			build: func() *model.Item {
				item := modeltest.Item("q", model.ItemTypeString, modeltest.Int(model.ExtMinLength, 2))
				item.ReadOnly = true
				return item
			},
			want: []string{issue.MsgReadOnlyValidation},
		},
		{
			name: "read-only help text with max length",
			build: func() *model.Item {
				item := modeltest.Item("q", model.ItemTypeText, modeltest.Control(model.ControlHelp))
				item.ReadOnly, item.MaxLength = true, &maxLength
				return item
			},
		},
		{
			name: "required group",
			build: func() *model.Item {
				item := modeltest.Item("q", model.ItemTypeGroup)
				item.Required = true
				return item
			},
			want: []string{issue.MsgRequiredNotAllowed},
		},
		{
			name: "required display",
			build: func() *model.Item {
				item := modeltest.Item("q", model.ItemTypeDisplay)
				item.Required = true
				return item
			},
			want: []string{issue.MsgRequiredNotAllowed},
		},
		{
			name: "required hidden",
			build: func() *model.Item {
				item := modeltest.Item("q", model.ItemTypeString, modeltest.Bool(model.ExtHidden, true))
				item.Required = true
				return item
			},
			want: []string{issue.MsgRequiredNotAllowed},
		},
		{
			name: "required sidebar",
			build: func() *model.Item {
				item := modeltest.Item("q", model.ItemTypeText, modeltest.Control(model.ControlSidebar))
				item.Required = true
				return item
			},
			want: []string{issue.MsgRequiredNotAllowed},
		},
		{
			name: "required question",
			build: func() *model.Item {
				item := modeltest.Item("q", model.ItemTypeString)
				item.Required = true
				return item
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := texts(validateItem(modeltest.New().Add("", tt.build()), "q"))
			if len(tt.want) == 0 {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDateLimits(t *testing.T) {
	tests := []struct {
		expr    string
		wantErr bool
	}{
		{"today()", false},
		{"today() - 7 days", false},
		{"today() -7 days", true},
		{"today() - 7 days 1", true},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			item := modeltest.Item("q", model.ItemTypeDate, modeltest.Expression(model.ExtMinDateFhirPath, tt.expr))
			errs := validateItem(modeltest.New().Add("", item), "q")
			if !tt.wantErr {
				assert.Empty(t, errs)
				return
			}
			require.Len(t, errs, 1)
			assert.Equal(t, "Date limit expression "+tt.expr+" must consist of 1 or 4 parts", errs[0].Text)
		})
	}
}

func TestCodes(t *testing.T) {
	item := modeltest.Item("q", model.ItemTypeString)
	item.Code = []model.Coding{
		modeltest.Code(sys, "1", ""),
		modeltest.Code(sys, "", ""),
		modeltest.Code("", "2", ""),
		modeltest.Code("not a uri", "3", ""),
	}
	errs := validateItem(modeltest.New().Add("", item), "q")
	require.Len(t, errs, 3)

	assert.Equal(t, issue.MsgCodeMissingCode, errs[0].Text)
	assert.Equal(t, 1, *errs[0].Index)
	assert.Equal(t, issue.MsgCodeMissingSystem, errs[1].Text)
	assert.Equal(t, 2, *errs[1].Index)
	assert.Equal(t, "Code system not a uri is not a valid uri", errs[2].Text)
	assert.Equal(t, 3, *errs[2].Index)
}

func TestAnswerOptionSystem(t *testing.T) {
	item := modeltest.Item("q", model.ItemTypeChoice)
	item.AnswerOption = []model.AnswerOption{modeltest.Option("local", "1", "One")}
	errs := validateItem(modeltest.New().Add("", item), "q")
	require.Len(t, errs, 1)
	assert.Equal(t, "Answer option system local is not a valid uri", errs[0].Text)
	assert.Equal(t, 0, *errs[0].Index)
}

func TestExtensions(t *testing.T) {
	s, b := "x", true
	item := modeltest.Item("q", model.ItemTypeString,
		modeltest.String(model.ExtEntryFormat, "dd.mm.yyyy"),
		model.Extension{ValueString: &s},
		model.Extension{URL: "http://example.org/empty"},
		model.Extension{URL: "http://example.org/two", ValueString: &s, ValueBoolean: &b},
		model.Extension{URL: "http://example.org/complex", Extension: []model.Extension{modeltest.String("part", "v")}},
	)
	errs := validateItem(modeltest.New().Add("", item), "q")
	assert.Equal(t, []string{
		issue.MsgExtensionURL,
		"Extension http://example.org/empty must have exactly one value",
		"Extension http://example.org/two must have exactly one value",
	}, texts(errs))
	assert.Equal(t, 1, *errs[0].Index)
	assert.Equal(t, 2, *errs[1].Index)
	assert.Equal(t, 3, *errs[2].Index)
}

func TestExtensionsDecodedValueTypes(t *testing.T) {
	var exts []model.Extension
	require.NoError(t, json.Unmarshal([]byte(`[
		{"url": "http://hl7.org/fhir/StructureDefinition/questionnaire-referenceProfile", "valueCanonical": "http://hl7.org/fhir/StructureDefinition/Patient"},
		{"url": "http://hl7.org/fhir/uv/sdc/StructureDefinition/sdc-questionnaire-preferredTerminologyServer", "valueUrl": "http://tx.example.org"},
		{"url": "http://hl7.org/fhir/StructureDefinition/questionnaire-sliderStepValue", "valuePositiveInt": 5}
	]`), &exts))
	item := modeltest.Item("q", model.ItemTypeString, exts...)
	assert.Empty(t, validateItem(modeltest.New().Add("", item), "q"))

	exts = nil
	require.NoError(t, json.Unmarshal([]byte(`[
		{"url": "http://example.org/two", "valueId": "a", "valueTime": "10:00:00"}
	]`), &exts))
	item = modeltest.Item("q", model.ItemTypeString, exts...)
	errs := validateItem(modeltest.New().Add("", item), "q")
	assert.Equal(t, []string{"Extension http://example.org/two must have exactly one value"}, texts(errs))
	assert.Equal(t, 0, *errs[0].Index)
}

func scored(linkID string, t model.ItemType, formula string) *model.Item {
	item := modeltest.Item(linkID, t)
	item.Code = []model.Coding{modeltest.Code(model.SystemScoringFormula, formula, "")}
	return item
}

func withOrdinals(item *model.Item, n int) *model.Item {
	for i := 0; i < n; i++ {
		opt := modeltest.Option(sys, itoa(i), "Option")
		opt.Extension = []model.Extension{modeltest.Decimal(model.ExtOrdinalValue, float64(i))}
		item.AnswerOption = append(item.AnswerOption, opt)
	}
	return item
}

func TestScoring(t *testing.T) {
	t.Run("valid section", func(t *testing.T) {
		b := modeltest.New().
			Add("", modeltest.Item("g", model.ItemTypeGroup)).
			Add("g", withOrdinals(scored("q", model.ItemTypeChoice, model.CodeQuestionScore), 2),
				scored("ss", model.ItemTypeQuantity, model.CodeSectionScore))
		assert.Empty(t, validateItem(b, "q"))
		assert.Empty(t, validateItem(b, "ss"))
	})

	t.Run("section score at root without questions", func(t *testing.T) {
		b := modeltest.New().Add("", scored("ss", model.ItemTypeQuantity, model.CodeSectionScore))
		assert.Equal(t, []string{issue.MsgSectionScoreNotInGroup, issue.MsgScoreNeedsQuestion}, texts(validateItem(b, "ss")))
	})

	t.Run("calculated total score", func(t *testing.T) {
		ts := scored("ts", model.ItemTypeQuantity, model.CodeTotalScore)
		ts.Extension = []model.Extension{modeltest.Calculated("1")}
		b := modeltest.New().
			Add("", ts).
			Add("", withOrdinals(scored("q", model.ItemTypeChoice, model.CodeQuestionScore), 1))
		assert.Equal(t, []string{issue.MsgScoreCalculated}, texts(validateItem(b, "ts")))
		// A total score anywhere satisfies the question score.
		assert.Empty(t, validateItem(b, "q"))
	})

	t.Run("question score without sum and ordinals", func(t *testing.T) {
		q := scored("q", model.ItemTypeChoice, model.CodeQuestionScore)
		q.AnswerOption = []model.AnswerOption{modeltest.Option(sys, "1", "One")}
		withOrdinals(q, 1)
		b := modeltest.New().Add("", q)
		errs := validateItem(b, "q")
		assert.Equal(t, []string{issue.MsgQuestionScoreNeedsSum, "Answer option 1 must have an ordinal value"}, texts(errs))
		assert.Equal(t, 0, *errs[1].Index)
	})
}

func TestInitial(t *testing.T) {
	t.Run("not in options", func(t *testing.T) {
		item := modeltest.Item("q", model.ItemTypeChoice)
		item.AnswerOption = []model.AnswerOption{modeltest.Option(sys, "1", "One")}
		item.Initial = []model.Initial{modeltest.InitialCoding(sys, "2")}
		errs := validateItem(modeltest.New().Add("", item), "q")
		assert.Equal(t, []string{"Initial value 2 is not one of the answer options"}, texts(errs))
	})

	t.Run("system ignored when initial has none", func(t *testing.T) {
		item := modeltest.Item("q", model.ItemTypeChoice)
		item.AnswerOption = []model.AnswerOption{modeltest.Option(sys, "1", "One")}
		item.Initial = []model.Initial{modeltest.InitialCoding("", "1")}
		assert.Empty(t, validateItem(modeltest.New().Add("", item), "q"))
	})

	t.Run("value set", func(t *testing.T) {
		item := modeltest.Item("q", model.ItemTypeChoice)
		item.AnswerValueSet = "#vs"
		item.Initial = []model.Initial{modeltest.InitialCoding(sys, "b"), modeltest.InitialCoding(sys, "x")}
		b := modeltest.New().Add("", item).ValueSet("vs", sys, "a", "b")
		errs := validateItem(b, "q")
		require.Len(t, errs, 1)
		assert.Equal(t, "Initial value x is not in value set #vs", errs[0].Text)
		assert.Equal(t, 1, *errs[0].Index)
	})

	t.Run("missing value set", func(t *testing.T) {
		item := modeltest.Item("q", model.ItemTypeChoice)
		item.AnswerValueSet = "#gone"
		item.Initial = []model.Initial{modeltest.InitialCoding(sys, "a")}
		assert.Equal(t, []string{"Value set #gone does not exist"}, texts(validateItem(modeltest.New().Add("", item), "q")))
	})

	t.Run("external value set not resolved", func(t *testing.T) {
		item := modeltest.Item("q", model.ItemTypeChoice)
		item.AnswerValueSet = "http://example.org/ValueSet/x"
		item.Initial = []model.Initial{modeltest.InitialCoding(sys, "a")}
		assert.Empty(t, validateItem(modeltest.New().Add("", item), "q"))
	})
}

func boolPtr(v bool) *bool { return &v }

func TestEnableWhen(t *testing.T) {
	target := func() *model.Item {
		item := modeltest.Item("a", model.ItemTypeChoice)
		item.AnswerOption = []model.AnswerOption{modeltest.Option(sys, "1", "Yes")}
		return item
	}

	t.Run("valid", func(t *testing.T) {
		item := modeltest.Item("q", model.ItemTypeString)
		item.EnableWhen = []model.EnableWhen{{Question: "a", Operator: "=", AnswerCoding: &model.Coding{System: sys, Code: "1"}}}
		assert.Empty(t, validateItem(modeltest.New().Add("", target(), item), "q"))
	})

	t.Run("missing question", func(t *testing.T) {
		item := modeltest.Item("q", model.ItemTypeString)
		item.EnableWhen = []model.EnableWhen{{Question: "gone", Operator: "exists"}}
		errs := validateItem(modeltest.New().Add("", item), "q")
		assert.Equal(t, []string{"Enable when refers to linkId gone which does not exist"}, texts(errs))
		assert.Equal(t, 0, *errs[0].Index)
	})

	t.Run("wrong key count and behavior", func(t *testing.T) {
		item := modeltest.Item("q", model.ItemTypeString)
		item.EnableWhen = []model.EnableWhen{
			{Question: "a", Operator: "exists"},
			{Question: "a", Operator: "=", AnswerBoolean: boolPtr(true), AnswerString: new(string)},
		}
		errs := validateItem(modeltest.New().Add("", target(), item), "q")
		assert.Equal(t, []string{issue.MsgEnableWhenKeys, issue.MsgEnableWhenKeys, issue.MsgEnableBehavior}, texts(errs))
		assert.Equal(t, 0, *errs[0].Index)
		assert.Equal(t, 1, *errs[1].Index)
		assert.Nil(t, errs[2].Index)

		item.EnableWhen[0].AnswerBoolean = boolPtr(true)
		item.EnableWhen[1].AnswerString = nil
		item.EnableBehavior = "any"
		assert.Empty(t, validateItem(modeltest.New().Add("", target(), item), "q"))
	})

	t.Run("coding not an option", func(t *testing.T) {
		item := modeltest.Item("q", model.ItemTypeString)
		item.EnableWhen = []model.EnableWhen{{Question: "a", Operator: "=", AnswerCoding: &model.Coding{System: sys, Code: "9"}}}
		errs := validateItem(modeltest.New().Add("", target(), item), "q")
		assert.Equal(t, []string{"Enable when answer 9 is not an answer option of item a"}, texts(errs))
	})

	t.Run("coding not in value set", func(t *testing.T) {
		a := modeltest.Item("a", model.ItemTypeChoice)
		a.AnswerValueSet = "#vs"
		item := modeltest.Item("q", model.ItemTypeString)
		item.EnableWhen = []model.EnableWhen{{Question: "a", Operator: "=", AnswerCoding: &model.Coding{System: sys, Code: "z"}}}
		b := modeltest.New().Add("", a, item).ValueSet("vs", sys, "x")
		assert.Equal(t, []string{"Enable when answer z is not in the value set of item a"}, texts(validateItem(b, "q")))
	})

	t.Run("quantity unit", func(t *testing.T) {
		a := modeltest.Item("a", model.ItemTypeQuantity,
			modeltest.CodingExt(model.ExtQuestionnaireUnit, "http://unitsofmeasure.org", "kg"))
		item := modeltest.Item("q", model.ItemTypeString)
		v := 70.0
		item.EnableWhen = []model.EnableWhen{{Question: "a", Operator: ">", AnswerQuantity: &model.Quantity{
			Value: &v, System: "http://unitsofmeasure.org", Code: "g",
		}}}
		b := modeltest.New().Add("", a, item)
		assert.Equal(t, []string{"Enable when answer unit does not match the unit of item a"}, texts(validateItem(b, "q")))

		item.EnableWhen[0].AnswerQuantity.Code = "kg"
		assert.Empty(t, validateItem(b, "q"))
	})
}

func TestDefinitionResourceType(t *testing.T) {
	tests := []struct {
		definition string
		want       string
	}{
		{"http://hl7.org/fhir/StructureDefinition/ServiceRequest#ServiceRequest.code", "ServiceRequest"},
		{"http://hl7.org/fhir/StructureDefinition/Patient#Patient", "Patient"},
		{"http://hl7.org/fhir/StructureDefinition/Patient", ""},
		{"http://hl7.org/fhir/StructureDefinition/Patient#", ""},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DefinitionResourceType(tt.definition), tt.definition)
	}
}

func TestExtraction(t *testing.T) {
	const serviceRequest = "http://hl7.org/fhir/StructureDefinition/ServiceRequest#ServiceRequest.code"

	t.Run("service request without context", func(t *testing.T) {
		item := modeltest.Item("q", model.ItemTypeString)
		item.Definition = serviceRequest
		assert.Equal(t, []string{issue.MsgExtractionContext}, texts(validateItem(modeltest.New().Add("", item), "q")))
	})

	t.Run("other resources need no context", func(t *testing.T) {
		item := modeltest.Item("q", model.ItemTypeString)
		item.Definition = "http://hl7.org/fhir/StructureDefinition/Patient#Patient.name"
		assert.Empty(t, validateItem(modeltest.New().Add("", item), "q"))
	})

	t.Run("context inherited from ancestor", func(t *testing.T) {
		g := modeltest.Item("g", model.ItemTypeGroup,
			modeltest.String(model.ExtExtractionContext, "http://hl7.org/fhir/StructureDefinition/ServiceRequest"))
		item := modeltest.Item("q", model.ItemTypeString)
		item.Definition = serviceRequest
		b := modeltest.New().Add("", g).Add("g", modeltest.Item("inner", model.ItemTypeGroup)).Add("inner", item)
		assert.Empty(t, validateItem(b, "q"))
	})

	t.Run("context from questionnaire", func(t *testing.T) {
		item := modeltest.Item("q", model.ItemTypeString)
		item.Definition = serviceRequest
		b := modeltest.New().Add("", item).Meta(func(q *model.Questionnaire) {
			q.Extension = []model.Extension{modeltest.String(model.ExtExtractionContext, "Observation")}
		})
		assert.Equal(t, []string{"Definition resource type ServiceRequest does not match the extraction context Observation"},
			texts(validateItem(b, "q")))
	})
}
