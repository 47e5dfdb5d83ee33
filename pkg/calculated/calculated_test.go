package calculated

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helsenorge/structor-export-sub000/pkg/expression"
	"github.com/helsenorge/structor-export-sub000/pkg/issue"
	"github.com/helsenorge/structor-export-sub000/pkg/model"
	"github.com/helsenorge/structor-export-sub000/pkg/model/modeltest"
	"github.com/helsenorge/structor-export-sub000/pkg/snapshot"
)

func validate(item *model.Item, checker *expression.Checker) []issue.ValidationError {
	doc := modeltest.New().
		Add("", modeltest.Item("g", model.ItemTypeGroup)).
		Add("g", modeltest.Item("1", model.ItemTypeDecimal)).
		Add("", item).
		Doc()
	return Validate(issue.DefaultTranslator, item, snapshot.New(doc), checker)
}

func TestReferencesExistingItem(t *testing.T) {
	item := modeltest.Item("c", model.ItemTypeDecimal,
		modeltest.Calculated("QuestionnaireResponse.descendants().where(linkId='1').answer.value.value / 100"))
	assert.Empty(t, validate(item, nil))
}

func TestMissingReference(t *testing.T) {
	item := modeltest.Item("c", model.ItemTypeDecimal,
		modeltest.Calculated("QuestionnaireResponse.descendants().where(linkId='A').answer.value.value / 100"))
	errs := validate(item, nil)
	require.Len(t, errs, 1)
	assert.Equal(t, "Calculated expression refers to linkId A which does not exist", errs[0].Text)
	assert.Equal(t, issue.PropCalculatedExpression, errs[0].Property)
}

func TestMissingReferenceReportedOnce(t *testing.T) {
	item := modeltest.Item("c", model.ItemTypeDecimal, modeltest.Calculated(
		"where(linkId='X').answer.value + where(linkId='X').answer.value * where(linkId=\"X\").answer.value"))
	errs := validate(item, nil)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Text, "linkId X")
}

func TestOneErrorPerDistinctMissingReference(t *testing.T) {
	item := modeltest.Item("c", model.ItemTypeInteger, modeltest.Calculated(
		"where(linkId='A') + where(linkId='1') + where(linkId=\"B\") + where(linkId='A')"))
	errs := validate(item, nil)
	require.Len(t, errs, 2)
	assert.Contains(t, errs[0].Text, "linkId A")
	assert.Contains(t, errs[1].Text, "linkId B")
}

func TestMinMaxAndType(t *testing.T) {
	item := modeltest.Item("c", model.ItemTypeString,
		modeltest.Calculated("1"),
		modeltest.Decimal(model.ExtMaxValue, 10))
	errs := validate(item, nil)
	require.Len(t, errs, 2)
	assert.Equal(t, issue.MsgCalculatedMinMax, errs[0].Text)
	assert.Equal(t, issue.MsgCalculatedType, errs[1].Text)
}

func TestNumericTypes(t *testing.T) {
	for _, typ := range []model.ItemType{model.ItemTypeQuantity, model.ItemTypeDecimal, model.ItemTypeInteger} {
		t.Run(string(typ), func(t *testing.T) {
			assert.Empty(t, validate(modeltest.Item("c", typ, modeltest.Calculated("1")), nil))
		})
	}
}

func TestNoCalculatedExpression(t *testing.T) {
	assert.Empty(t, validate(modeltest.Item("c", model.ItemTypeString, modeltest.Decimal(model.ExtMinValue, 1)), nil))
	assert.Empty(t, Validate(issue.DefaultTranslator, nil, snapshot.New(nil), nil))
}

func TestExpressionCheck(t *testing.T) {
	checker := expression.NewChecker()

	ok := modeltest.Item("c", model.ItemTypeDecimal, modeltest.Calculated("1 + 2"))
	assert.Empty(t, validate(ok, checker))

	broken := modeltest.Item("c", model.ItemTypeDecimal, modeltest.Calculated("(("))
	errs := validate(broken, checker)
	require.Len(t, errs, 1)
	assert.Equal(t, issue.LevelWarning, errs[0].Level)

	// Without a checker the same expression passes.
	assert.Empty(t, validate(broken, nil))
}
