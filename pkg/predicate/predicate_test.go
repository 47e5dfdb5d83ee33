package predicate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helsenorge/structor-export-sub000/pkg/model"
	"github.com/helsenorge/structor-export-sub000/pkg/model/modeltest"
)

func TestExtensionLookup(t *testing.T) {
	exts := []model.Extension{
		modeltest.String(model.ExtSublabel, "sub"),
		modeltest.Int(model.ExtMinLength, 3),
		modeltest.Bool(model.ExtHidden, true),
		modeltest.CodingExt(model.ExtQuestionnaireUnit, "http://unitsofmeasure.org", "kg"),
		modeltest.Reference(model.ExtEndpoint, "Endpoint/1"),
		modeltest.Calculated("1 + 1"),
		modeltest.Copy("copy"),
	}

	assert.True(t, HasExtension(exts, model.ExtSublabel))
	assert.False(t, HasExtension(exts, model.ExtRegex))
	assert.False(t, HasExtension(nil, model.ExtRegex))

	s, ok := ExtensionString(exts, model.ExtSublabel)
	assert.True(t, ok)
	assert.Equal(t, "sub", s)

	n, ok := ExtensionInteger(exts, model.ExtMinLength)
	assert.True(t, ok)
	assert.Equal(t, 3, n)
	_, ok = ExtensionInteger(exts, model.ExtSublabel)
	assert.False(t, ok)

	b, ok := ExtensionBoolean(exts, model.ExtHidden)
	assert.True(t, ok)
	assert.True(t, b)

	c, ok := ExtensionCoding(exts, model.ExtQuestionnaireUnit)
	assert.True(t, ok)
	assert.Equal(t, "kg", c.Code)

	ref, ok := ExtensionReference(exts, model.ExtEndpoint)
	assert.True(t, ok)
	assert.Equal(t, "Endpoint/1", ref)

	expr, ok := ExtensionExpression(exts, model.ExtCalculatedExpression)
	assert.True(t, ok)
	assert.Equal(t, "1 + 1", expr)

	expr, ok = ExtensionExpression(exts, model.ExtCopyExpression)
	assert.True(t, ok)
	assert.Equal(t, "copy", expr)
}

func TestExtensionCodingFromCodeableConcept(t *testing.T) {
	exts := []model.Extension{modeltest.Control(model.ControlTable)}
	c, ok := ExtensionCoding(exts, model.ExtItemControl)
	assert.True(t, ok)
	assert.Equal(t, model.ControlTable, c.Code)
}

func TestItemControl(t *testing.T) {
	item := modeltest.Item("1", model.ItemTypeString,
		modeltest.Control(model.ControlHelp, model.ControlInline))

	assert.Equal(t, []string{model.ControlHelp, model.ControlInline}, ItemControlCodes(item))
	assert.True(t, HasItemControl(item, model.ControlInline))
	assert.False(t, HasItemControl(item, model.ControlSidebar))
	assert.True(t, HasAnyItemControl(item, model.ControlSidebar, model.ControlHelp))
	assert.False(t, HasAnyItemControl(item))
	assert.Empty(t, ItemControlCodes(nil))
}

func TestCodeSystems(t *testing.T) {
	item := modeltest.Item("1", model.ItemTypeGroup)
	item.Code = []model.Coding{
		modeltest.Code(model.SystemTableColumnName, "name", "Name"),
		modeltest.Code(model.SystemTableColumn, "col", ""),
	}

	assert.True(t, HasCodeSystem(item, model.SystemTableColumnName))
	assert.False(t, HasCodeSystem(item, model.SystemScore))
	assert.True(t, HasAnyCodeSystem(item, model.SystemScore, model.SystemTableColumn))
	assert.True(t, HasCodeWithDisplay(item, model.SystemTableColumnName))
	assert.False(t, HasCodeWithDisplay(item, model.SystemTableColumn))
	assert.Len(t, CodesWithSystem(item, model.SystemTableColumn), 1)
	assert.True(t, HasCode(item, model.SystemTableColumn, "col"))
	assert.False(t, HasCode(item, model.SystemTableColumn, "name"))
	assert.False(t, HasCodeSystem(nil, model.SystemScore))
}

func TestIsValidURI(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"http://snomed.info/sct", true},
		{"https://example.org/fhir/CodeSystem/x", true},
		{"urn:oid:2.16.578.1.12.4.1.1.7618", true},
		{"urn:uuid:53fefa32-fcbb-4ff8-8a92-55ee120877b7", true},
		{"", false},
		{"not a uri", false},
		{"relative/path", false},
		{"http://", false},
		{"http://exa mple.org", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidURI(tt.in))
		})
	}
}

func treeDoc() *model.Document {
	return modeltest.New().
		Add("", modeltest.Item("g", model.ItemTypeGroup)).
		Add("g", modeltest.Item("g.1", model.ItemTypeString), modeltest.Item("g.2", model.ItemTypeGroup)).
		Add("g.2", modeltest.Item("g.2.1", model.ItemTypeString)).
		Add("", modeltest.Item("s", model.ItemTypeString)).
		Doc()
}

func TestTreeQueries(t *testing.T) {
	doc := treeDoc()

	assert.Equal(t, []string{"g", "g.2"}, FindItemsOfType(doc.Order, doc.Items, model.ItemTypeGroup))
	assert.Equal(t, []string{"g.1", "g.2.1", "s"}, FindItemsOfType(doc.Order, doc.Items, model.ItemTypeString))

	children := Children(doc.Order, "g")
	require.Len(t, children, 2)
	assert.Equal(t, "g.1", children[0].LinkID)
	assert.Nil(t, Children(doc.Order, "missing"))

	assert.Equal(t, []string{"g.1", "g.2", "g.2.1"}, Descendants(doc.Order, "g"))

	parent := ParentOf(doc.Order, "g.2.1")
	require.NotNil(t, parent)
	assert.Equal(t, "g.2", parent.LinkID)
	assert.Nil(t, ParentOf(doc.Order, "g"))

	assert.True(t, IsDescendantOfType(doc.Order, doc.Items, "g.2.1", model.ItemTypeGroup))
	assert.False(t, IsDescendantOfType(doc.Order, doc.Items, "s", model.ItemTypeGroup))
	assert.False(t, IsDescendantOfType(doc.Order, doc.Items, "g", model.ItemTypeGroup))

	assert.True(t, ExistsInOrder(doc.Order, "g.2.1"))
	assert.False(t, ExistsInOrder(doc.Order, "nope"))
	assert.False(t, ExistsInOrder(doc.Order, ""))
}

func TestDuplicateLinkIDs(t *testing.T) {
	doc := modeltest.New().
		Add("", modeltest.Item("a", model.ItemTypeString)).
		Node("", "b").
		Node("", "a").
		Node("", "b").
		Node("", "c").
		Doc()
	assert.Equal(t, []string{"a", "b"}, DuplicateLinkIDs(doc.Order, doc.Items))
	assert.Empty(t, DuplicateLinkIDs(treeDoc().Order, treeDoc().Items))
}

func TestDuplicateLinkIDsUsesItemLinkID(t *testing.T) {
	// Two map entries whose items both claim linkId "1".
	b := modeltest.New()
	b.MapAs("1", modeltest.Item("1", model.ItemTypeString))
	b.MapAs("k2", modeltest.Item("1", model.ItemTypeString))
	doc := b.Node("", "1").Node("", "k2").Doc()
	assert.Equal(t, []string{"1"}, DuplicateLinkIDs(doc.Order, doc.Items))
}

func TestDecode(t *testing.T) {
	item := modeltest.Item("q", model.ItemTypeDecimal,
		modeltest.Control(model.ControlSlider),
		modeltest.Calculated("where(linkId='a')"),
		modeltest.Decimal(model.ExtMinValue, 1),
		modeltest.Int(model.ExtMinLength, 2),
		modeltest.Bool(model.ExtHidden, true),
		modeltest.String(model.ExtRepeatsText, "Add"),
		modeltest.Expression(model.ExtMinDateFhirPath, "today() - 7 days"),
		modeltest.String(model.ExtExtractionContext, "Observation"),
		modeltest.CodingExt(model.ExtQuestionnaireUnit, "http://unitsofmeasure.org", "cm"),
	)
	item.TextElement = &model.Element{Extension: []model.Extension{modeltest.String(model.ExtMarkdown, "**b**")}}
	item.Code = []model.Coding{
		modeltest.Code(model.SystemScore, model.CodeScore, ""),
		modeltest.Code(model.SystemScoringFormula, model.CodeSectionScore, ""),
	}

	tr := Decode(item)
	assert.Equal(t, []string{model.ControlSlider}, tr.Controls)
	assert.True(t, tr.HasCalculated)
	assert.Equal(t, "where(linkId='a')", tr.CalculatedExpression)
	assert.True(t, tr.HasMinValue)
	assert.False(t, tr.HasMaxValue)
	assert.True(t, tr.HasMinLength)
	assert.Equal(t, 2, tr.MinLength)
	assert.True(t, tr.Hidden)
	assert.Equal(t, "Add", tr.RepeatsText)
	assert.True(t, tr.HasMinDateFhirPath)
	assert.Equal(t, "today() - 7 days", tr.MinDateFhirPath)
	assert.Equal(t, "Observation", tr.ExtractionContext)
	require.NotNil(t, tr.Unit)
	assert.Equal(t, "cm", tr.Unit.Code)
	assert.Equal(t, "**b**", tr.Markdown)
	assert.True(t, tr.Scoring)
	assert.Equal(t, model.CodeSectionScore, tr.ScoringFormula)
	assert.True(t, tr.IsScoreItem())
	assert.False(t, tr.IsDataReceiver())

	empty := Decode(nil)
	assert.Empty(t, empty.Controls)
	assert.False(t, empty.IsScoreItem())
}

func TestTraitsReceiverAndTable(t *testing.T) {
	receiver := Decode(modeltest.Item("r", model.ItemTypeString,
		modeltest.Control(model.ControlDataReceiver), modeltest.CopyFrom("src")))
	assert.True(t, receiver.IsDataReceiver())
	assert.True(t, receiver.IsConfiguredDataReceiver())

	unconfigured := Decode(modeltest.Item("r", model.ItemTypeString, modeltest.Control(model.ControlDataReceiver)))
	assert.True(t, unconfigured.IsDataReceiver())
	assert.False(t, unconfigured.IsConfiguredDataReceiver())

	table := Decode(modeltest.Item("t", model.ItemTypeGroup, modeltest.Control(model.ControlInline, model.ControlGTable)))
	assert.Equal(t, model.ControlGTable, table.TableKind())
	assert.Equal(t, "", receiver.TableKind())
}

func TestIsAllowedTableItem(t *testing.T) {
	withInitial := modeltest.Item("i", model.ItemTypeString)
	withInitial.Initial = []model.Initial{modeltest.InitialString("x")}
	scored := modeltest.Item("s", model.ItemTypeInteger)
	scored.Code = []model.Coding{modeltest.Code(model.SystemScore, model.CodeScore, "")}

	tests := []struct {
		name string
		item *model.Item
		want bool
	}{
		{"display", modeltest.Item("d", model.ItemTypeDisplay), true},
		{"configured receiver", modeltest.Item("r", model.ItemTypeString, modeltest.Control(model.ControlDataReceiver), modeltest.CopyFrom("x")), true},
		{"initial value", withInitial, true},
		{"fhirpath", modeltest.Item("f", model.ItemTypeString, modeltest.Expression(model.ExtFhirPath, "Patient.name")), true},
		{"calculated", modeltest.Item("c", model.ItemTypeDecimal, modeltest.Calculated("1")), true},
		{"scoring", scored, true},
		{"plain question", modeltest.Item("q", model.ItemTypeString), false},
		{"receiver without copy", modeltest.Item("r", model.ItemTypeString, modeltest.Control(model.ControlDataReceiver)), false},
		{"nil", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsAllowedTableItem(tt.item, nil))
		})
	}
}

func TestTableGroup(t *testing.T) {
	group := modeltest.Item("g", model.ItemTypeGroup, modeltest.Control(model.ControlTableHN2))
	assert.True(t, IsTableGroup(group, nil))
	assert.False(t, IsTableGroup(modeltest.Item("g", model.ItemTypeGroup), nil))
	assert.False(t, IsTableGroup(modeltest.Item("s", model.ItemTypeString, modeltest.Control(model.ControlTable)), nil))

	withCodes := modeltest.Item("x", model.ItemTypeString)
	assert.False(t, HasTableCodes(withCodes))
	withCodes.Code = []model.Coding{modeltest.Code(model.SystemTableOrderingFunctions, "ASC", "")}
	assert.True(t, HasTableCodes(withCodes))
}
