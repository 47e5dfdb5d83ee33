package issue

// Message keys. A key is the English template itself; positional
// placeholders {0}, {1} are substituted by the Translator.

// Groups.
const (
	MsgRepeatingGroupNotInGroup = "Repeating group must be placed inside another group"
	MsgRepeatingGroupStep       = "Repeating group can not be a step"
)

// Choice items.
const (
	MsgAnswerOptionCodeDisplay = "Answer option {0} must have both code and display"
	MsgAnswerOptionSystems     = "All answer options must have the same system"
)

// Tables.
const (
	MsgTableCodesOnNonTable              = "Item with table codes must be a group with a table item control"
	MsgTableOrderingColumnNeedsFunctions = "Table with ordering column code must also have the table ordering functions code"
	MsgTableOrderingFunctionsNeedsColumn = "Table with ordering functions code must also have the table ordering column code"
	MsgTableOrderingColumnUnknown        = "Ordering column {0} is not a child of the table"
	MsgTableChildReadOnly                = "Item with linkId {0} inside a table must be read-only"
	MsgTableEmpty                        = "Table must have at least one child"
	MsgTableChildChoice                  = "Item with linkId {0} in a table must be of type choice or open-choice"
	MsgTableChildInitialOrReceiver       = "Item with linkId {0} in a table must have an initial value or be a data receiver"
	MsgTableItemNotAllowed               = "Item with linkId {0} is not allowed in a table"
	MsgTableValueSets                    = "All items in an answer option table must use the same value set"
	MsgTableHN1Ordering                  = "Table HN1 can not be sorted"
	MsgTableHN2ColumnName                = "Table HN2 must have a column name code with code and display"
	MsgTableHN2Column                    = "Item with linkId {0} in table HN2 must have a column code with code and display"
	MsgGTableText                        = "Item with linkId {0} in a gtable must have text"
	MsgGTableReceiver                    = "Item with linkId {0} in a gtable must be a data receiver"
	MsgGTableRequired                    = "Item with linkId {0} in a gtable must be required"
	MsgGTableSourceRequired              = "Item with linkId {0} are not required"
)

// Calculated expressions.
const (
	MsgCalculatedMinMax        = "Item with calculated expression can not have min or max value"
	MsgCalculatedMissingLinkID = "Calculated expression refers to linkId {0} which does not exist"
	MsgCalculatedType          = "Item with calculated expression must be of type quantity, decimal or integer"
	MsgCalculatedSyntax        = "Calculated expression could not be parsed: {0}"
)

// Data receivers.
const (
	MsgReceiverNoCopy             = "Data receiver must have a copy expression"
	MsgReceiverMissingSource      = "Data receiver refers to linkId {0} which does not exist"
	MsgReceiverReadOnly           = "Data receiver must be read-only"
	MsgReceiverMandatory          = "Data receiver can not be required"
	MsgReceiverScoring            = "Data receiver can not have scoring codes"
	MsgReceiverCalculatedMismatch = "Data receiver must have the same calculated expression as item with linkId {0}"
)

// Structure.
const (
	MsgLinkIDMissing          = "Item must have a linkId"
	MsgDuplicateLinkID        = "LinkId {0} is used by more than one item"
	MsgOrderItemMissing       = "Item with linkId {0} is in the order but does not exist"
	MsgItemNotInOrder         = "Item with linkId {0} is not placed in the questionnaire"
	MsgUnknownItemType        = "Item type {0} is not supported"
	MsgReadOnlyValidation     = "Read-only item can not have validation"
	MsgRequiredNotAllowed     = "Item of this kind can not be required"
	MsgDateFhirPath           = "Date limit expression {0} must consist of 1 or 4 parts"
	MsgCodeMissingCode        = "Code must have a code"
	MsgCodeMissingSystem      = "Code must have a system"
	MsgCodeInvalidSystem      = "Code system {0} is not a valid uri"
	MsgSectionScoreNotInGroup = "Section score must be placed inside a group"
	MsgScoreNeedsQuestion     = "Section score and total score require at least one question score item"
	MsgScoreCalculated        = "Score item can not have a calculated expression"
	MsgQuestionScoreNeedsSum  = "Question score requires a section score or total score item"
	MsgQuestionScoreOrdinal   = "Answer option {0} must have an ordinal value"
	MsgAnswerOptionSystem     = "Answer option system {0} is not a valid uri"
	MsgExtensionURL           = "Extension must have a url"
	MsgExtensionValue         = "Extension {0} must have exactly one value"
	MsgInitialNotInOptions    = "Initial value {0} is not one of the answer options"
	MsgValueSetMissing        = "Value set {0} does not exist"
	MsgInitialNotInValueSet   = "Initial value {0} is not in value set {1}"
	MsgEnableWhenQuestion     = "Enable when refers to linkId {0} which does not exist"
	MsgEnableWhenKeys         = "Enable when must have question, operator and exactly one answer"
	MsgEnableBehavior         = "Enable behavior must be set when there is more than one enable when"
	MsgEnableWhenUnit         = "Enable when answer unit does not match the unit of item {0}"
	MsgEnableWhenCoding       = "Enable when answer {0} is not an answer option of item {1}"
	MsgEnableWhenValueSet     = "Enable when answer {0} is not in the value set of item {1}"
	MsgExtractionContext      = "Item with a ServiceRequest definition requires the ServiceRequest extraction context"
	MsgDefinitionResourceType = "Definition resource type {0} does not match the extraction context {1}"
)

// Translations.
const (
	MsgTranslationText            = "Translation not found for form text"
	MsgTranslationPrefix          = "Translation not found for prefix"
	MsgTranslationSublabel        = "Translation not found for sublabel"
	MsgTranslationRepeatsText     = "Translation not found for repeat text"
	MsgTranslationValidationText  = "Translation not found for validation message"
	MsgTranslationEntryFormat     = "Translation not found for placeholder text"
	MsgTranslationInitial         = "Translation not found for initial value"
	MsgTranslationOption          = "Translation not found for answer option {0}"
	MsgTranslationSidebar         = "Translation not found for sidebar text"
	MsgTranslationValueSet        = "Translation not found for value set {0}"
	MsgTranslationConcept         = "Translation not found for code {0} in value set {1}"
	MsgTranslationMetadata        = "Translation not found for {0}"
	MsgTranslationMetadataInvalid = "Translation for {0} is not valid"
	MsgTranslationSetting         = "Translation not found for setting {0}"
)

// Questionnaire details, language and bundle.
const (
	MsgIDMissing           = "Questionnaire must have an id"
	MsgIDInvalid           = "Id {0} can only contain letters, numbers, - and . and be at most 64 characters"
	MsgTitleMissing        = "Questionnaire must have a title"
	MsgTitleInvalid        = "Title can not contain line breaks or tabs"
	MsgNameMissing         = "Questionnaire must have a technical name"
	MsgNameInvalid         = "Technical name {0} should start with a capital letter and only contain letters, numbers and _"
	MsgURLMissing          = "Questionnaire has no url"
	MsgURLPrefix           = "Url should start with {0}"
	MsgURLID               = "The last part of the url must equal the questionnaire id {0}"
	MsgReferenceEmpty      = "Reference for {0} is empty"
	MsgReferencePrefix     = "Reference for {0} should start with {1}"
	MsgReferenceID         = "Reference {0} does not end with a valid id"
	MsgBundleDuplicateID   = "Questionnaire id {0} is used by more than one questionnaire in the bundle"
	MsgBundleEmpty         = "Bundle does not contain any questionnaires"
	MsgLanguageMissing     = "Questionnaire must have a language"
	MsgLanguageInvalid     = "Language code {0} is not valid"
	MsgLanguageUnsupported = "Language code {0} is not supported"
)

// Security and settings.
const (
	MsgSecurityMissing        = "Questionnaire has no security label"
	MsgSecurityInvalid        = "Security label {0} is not valid"
	MsgSettingInvalid         = "Setting {0} has an invalid code {1}"
	MsgSettingAnonymousOthers = "Anonymous questionnaires can not be performed by others"
)
