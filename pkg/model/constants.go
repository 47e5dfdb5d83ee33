package model

// ItemType is the FHIR Questionnaire item type.
type ItemType string

// Item types.
const (
	ItemTypeGroup      ItemType = "group"
	ItemTypeDisplay    ItemType = "display"
	ItemTypeBoolean    ItemType = "boolean"
	ItemTypeDecimal    ItemType = "decimal"
	ItemTypeInteger    ItemType = "integer"
	ItemTypeDate       ItemType = "date"
	ItemTypeDateTime   ItemType = "dateTime"
	ItemTypeTime       ItemType = "time"
	ItemTypeString     ItemType = "string"
	ItemTypeText       ItemType = "text"
	ItemTypeURL        ItemType = "url"
	ItemTypeChoice     ItemType = "choice"
	ItemTypeOpenChoice ItemType = "open-choice"
	ItemTypeAttachment ItemType = "attachment"
	ItemTypeReference  ItemType = "reference"
	ItemTypeQuantity   ItemType = "quantity"
)

// IsKnown reports whether t is one of the supported item types.
func (t ItemType) IsKnown() bool {
	switch t {
	case ItemTypeGroup, ItemTypeDisplay, ItemTypeBoolean, ItemTypeDecimal, ItemTypeInteger,
		ItemTypeDate, ItemTypeDateTime, ItemTypeTime, ItemTypeString, ItemTypeText,
		ItemTypeURL, ItemTypeChoice, ItemTypeOpenChoice, ItemTypeAttachment,
		ItemTypeReference, ItemTypeQuantity:
		return true
	}
	return false
}

// Extension URLs used on items.
const (
	ExtItemControl          = "http://hl7.org/fhir/StructureDefinition/questionnaire-itemControl"
	ExtHidden               = "http://hl7.org/fhir/StructureDefinition/questionnaire-hidden"
	ExtMinValue             = "http://hl7.org/fhir/StructureDefinition/minValue"
	ExtMaxValue             = "http://hl7.org/fhir/StructureDefinition/maxValue"
	ExtMinLength            = "http://hl7.org/fhir/StructureDefinition/minLength"
	ExtRegex                = "http://hl7.org/fhir/StructureDefinition/regex"
	ExtEntryFormat          = "http://hl7.org/fhir/StructureDefinition/entryFormat"
	ExtMarkdown             = "http://hl7.org/fhir/StructureDefinition/rendering-markdown"
	ExtOrdinalValue         = "http://hl7.org/fhir/StructureDefinition/ordinalValue"
	ExtQuestionnaireUnit    = "http://hl7.org/fhir/StructureDefinition/questionnaire-unit"
	ExtCalculatedExpression = "http://hl7.org/fhir/uv/sdc/StructureDefinition/sdc-questionnaire-calculatedExpression"
	ExtCopyExpression       = "http://hl7.org/fhir/uv/sdc/StructureDefinition/sdc-questionnaire-copyExpression"
	ExtExtractionContext    = "http://hl7.org/fhir/uv/sdc/StructureDefinition/sdc-questionnaire-itemExtractionContext"
	ExtFhirPath             = "http://ehelse.no/fhir/StructureDefinition/sdf-fhirpath"
	ExtMinDateFhirPath      = "http://ehelse.no/fhir/StructureDefinition/sdf-minvalue-fhirpath"
	ExtMaxDateFhirPath      = "http://ehelse.no/fhir/StructureDefinition/sdf-maxvalue-fhirpath"
	ExtValidationText       = "http://ehelse.no/fhir/StructureDefinition/validationtext"
	ExtRepeatsText          = "http://ehelse.no/fhir/StructureDefinition/repeatstext"
	ExtSublabel             = "http://helsenorge.no/fhir/StructureDefinition/sdf-sublabel"
	ExtGuidanceAction       = "http://ehelse.no/fhir/StructureDefinition/sdf-guidanceaction"
	ExtHyperlinkTarget      = "http://helsenorge.no/fhir/StructureDefinition/sdf-hyperlink-target"
)

// Extension URLs used on the questionnaire itself.
const (
	ExtEndpoint                  = "http://ehelse.no/fhir/StructureDefinition/sdf-endpoint"
	ExtPrintVersion              = "http://ehelse.no/fhir/StructureDefinition/sdf-questionnaire-print-version"
	ExtAuthenticationRequirement = "http://ehelse.no/fhir/StructureDefinition/sdf-authenticationrequirement"
	ExtCanBePerformedBy          = "http://ehelse.no/fhir/StructureDefinition/sdf-canbeperformedby"
	ExtPresentationButtons       = "http://helsenorge.no/fhir/StructureDefinition/sdf-presentationbuttons"
	ExtNavigator                 = "http://helsenorge.no/fhir/StructureDefinition/sdf-navigator"
	ExtInformationMessage        = "http://helsenorge.no/fhir/StructureDefinition/sdf-information-message"
	ExtGuidanceText              = "http://helsenorge.no/fhir/StructureDefinition/sdf-guidance-text"
)

// Item control codes carried in the itemControl extension.
const (
	ControlInline           = "inline"
	ControlHelp             = "help"
	ControlHighlight        = "highlight"
	ControlSidebar          = "sidebar"
	ControlAutocomplete     = "autocomplete"
	ControlCheckBox         = "check-box"
	ControlDropDown         = "drop-down"
	ControlRadioButton      = "radio-button"
	ControlSlider           = "slider"
	ControlSummary          = "summary"
	ControlSummaryContainer = "summary-container"
	ControlStep             = "step"
	ControlDataReceiver     = "data-receiver"
	ControlTable            = "table"
	ControlTableHN1         = "table-hn1"
	ControlTableHN2         = "table-hn2"
	ControlGTable           = "gtable"
)

// TableControls lists every group-level table presentation.
var TableControls = []string{ControlTable, ControlTableHN1, ControlTableHN2, ControlGTable}

// Code systems.
const (
	SystemItemControl            = "http://hl7.org/fhir/questionnaire-item-control"
	SystemTableColumnName        = "http://helsenorge.no/fhir/CodeSystem/TableColumnName"
	SystemTableColumn            = "http://helsenorge.no/fhir/CodeSystem/TableColumn"
	SystemTableOrderingColumn    = "http://helsenorge.no/fhir/CodeSystem/TableOrderingColum"
	SystemTableOrderingFunctions = "http://helsenorge.no/fhir/CodeSystem/TableOrderingFunctions"
	SystemTableType              = "http://helsenorge.no/fhir/CodeSystem/TableType"
	SystemScore                  = "http://ehelse.no/Score"
	SystemScoringFormula         = "http://ehelse.no/scoringFormulas"
	SystemSecurityLabel          = "urn:oid:2.16.578.1.12.4.1.1.7618"
	SystemAuthenticationRequired = "http://ehelse.no/fhir/ValueSet/AuthenticationRequirement"
	SystemCanBePerformedBy       = "http://ehelse.no/fhir/ValueSet/CanBePerformedBy"
	SystemPresentationButtons    = "http://helsenorge.no/fhir/ValueSet/presentationbuttons"
	SystemNavigator              = "http://helsenorge.no/fhir/ValueSet/navigator"
)

// Codes within the code systems above.
const (
	CodeTableAnswerOptions = "table"
	CodeScore              = "score"
	CodeSectionScore       = "SS"
	CodeTotalScore         = "TS"
	CodeQuestionScore      = "QS"
)

// Resource types that may appear in item extraction contexts and definitions.
const (
	ResourceServiceRequest = "ServiceRequest"
	ResourceObservation    = "Observation"
	ResourcePatient        = "Patient"
)
