package issue

var bokmaalMessages = map[string]string{
	MsgRepeatingGroupNotInGroup: "Repeterende gruppe må ligge inne i en annen gruppe",
	MsgRepeatingGroupStep:       "Repeterende gruppe kan ikke være et steg",

	MsgAnswerOptionCodeDisplay: "Svaralternativ {0} må ha både kode og visningstekst",
	MsgAnswerOptionSystems:     "Alle svaralternativer må ha samme system",

	MsgTableCodesOnNonTable:              "Element med tabellkoder må være en gruppe med tabellvisning",
	MsgTableOrderingColumnNeedsFunctions: "Tabell med sorteringskolonne må også ha koden for sorteringsfunksjon",
	MsgTableOrderingFunctionsNeedsColumn: "Tabell med sorteringsfunksjon må også ha koden for sorteringskolonne",
	MsgTableOrderingColumnUnknown:        "Sorteringskolonne {0} er ikke et underelement i tabellen",
	MsgTableChildReadOnly:                "Element med linkId {0} i en tabell må være skrivebeskyttet",
	MsgTableEmpty:                        "Tabellen må ha minst ett underelement",
	MsgTableChildChoice:                  "Element med linkId {0} i en tabell må være av typen choice eller open-choice",
	MsgTableChildInitialOrReceiver:       "Element med linkId {0} i en tabell må ha en startverdi eller være en datamottaker",
	MsgTableItemNotAllowed:               "Element med linkId {0} er ikke tillatt i en tabell",
	MsgTableValueSets:                    "Alle elementer i en svaralternativtabell må bruke samme verdisett",
	MsgTableHN1Ordering:                  "Tabell HN1 kan ikke sorteres",
	MsgTableHN2ColumnName:                "Tabell HN2 må ha en kolonnenavnkode med kode og visningstekst",
	MsgTableHN2Column:                    "Element med linkId {0} i tabell HN2 må ha en kolonnekode med kode og visningstekst",
	MsgGTableText:                        "Element med linkId {0} i en gtable må ha tekst",
	MsgGTableReceiver:                    "Element med linkId {0} i en gtable må være en datamottaker",
	MsgGTableRequired:                    "Element med linkId {0} i en gtable må være påkrevd",
	MsgGTableSourceRequired:              "Element med linkId {0} er ikke påkrevd",

	MsgCalculatedMinMax:        "Element med beregnet uttrykk kan ikke ha min- eller maksverdi",
	MsgCalculatedMissingLinkID: "Beregnet uttrykk refererer til linkId {0} som ikke finnes",
	MsgCalculatedType:          "Element med beregnet uttrykk må være av typen quantity, decimal eller integer",
	MsgCalculatedSyntax:        "Beregnet uttrykk kunne ikke tolkes: {0}",

	MsgReceiverNoCopy:             "Datamottaker må ha et kopieringsuttrykk",
	MsgReceiverMissingSource:      "Datamottaker refererer til linkId {0} som ikke finnes",
	MsgReceiverReadOnly:           "Datamottaker må være skrivebeskyttet",
	MsgReceiverMandatory:          "Datamottaker kan ikke være påkrevd",
	MsgReceiverScoring:            "Datamottaker kan ikke ha poengkoder",
	MsgReceiverCalculatedMismatch: "Datamottaker må ha samme beregnede uttrykk som elementet med linkId {0}",

	MsgLinkIDMissing:          "Elementet må ha en linkId",
	MsgDuplicateLinkID:        "LinkId {0} brukes av mer enn ett element",
	MsgOrderItemMissing:       "Element med linkId {0} ligger i rekkefølgen, men finnes ikke",
	MsgItemNotInOrder:         "Element med linkId {0} er ikke plassert i skjemaet",
	MsgUnknownItemType:        "Elementtypen {0} støttes ikke",
	MsgReadOnlyValidation:     "Skrivebeskyttet element kan ikke ha validering",
	MsgRequiredNotAllowed:     "Denne typen element kan ikke være påkrevd",
	MsgDateFhirPath:           "Datogrenseuttrykket {0} må bestå av 1 eller 4 deler",
	MsgCodeMissingCode:        "Koden må ha en kode",
	MsgCodeMissingSystem:      "Koden må ha et system",
	MsgCodeInvalidSystem:      "Kodesystemet {0} er ikke en gyldig uri",
	MsgSectionScoreNotInGroup: "Seksjonssum må ligge inne i en gruppe",
	MsgScoreNeedsQuestion:     "Seksjonssum og totalsum krever minst ett element med spørsmålspoeng",
	MsgScoreCalculated:        "Poengelement kan ikke ha beregnet uttrykk",
	MsgQuestionScoreNeedsSum:  "Spørsmålspoeng krever et element med seksjonssum eller totalsum",
	MsgQuestionScoreOrdinal:   "Svaralternativ {0} må ha en ordinalverdi",
	MsgAnswerOptionSystem:     "Svaralternativsystemet {0} er ikke en gyldig uri",
	MsgExtensionURL:           "Utvidelsen må ha en url",
	MsgExtensionValue:         "Utvidelsen {0} må ha nøyaktig én verdi",
	MsgInitialNotInOptions:    "Startverdien {0} er ikke et av svaralternativene",
	MsgValueSetMissing:        "Verdisettet {0} finnes ikke",
	MsgInitialNotInValueSet:   "Startverdien {0} finnes ikke i verdisettet {1}",
	MsgEnableWhenQuestion:     "Vis hvis refererer til linkId {0} som ikke finnes",
	MsgEnableWhenKeys:         "Vis hvis må ha spørsmål, operator og nøyaktig ett svar",
	MsgEnableBehavior:         "Vis hvis-oppførsel må settes når det er mer enn én betingelse",
	MsgEnableWhenUnit:         "Enheten i vis hvis-svaret samsvarer ikke med enheten til element {0}",
	MsgEnableWhenCoding:       "Vis hvis-svaret {0} er ikke et svaralternativ for element {1}",
	MsgEnableWhenValueSet:     "Vis hvis-svaret {0} finnes ikke i verdisettet til element {1}",
	MsgExtractionContext:      "Element med en ServiceRequest-definisjon krever ekstraksjonskonteksten ServiceRequest",
	MsgDefinitionResourceType: "Ressurstypen {0} i definisjonen samsvarer ikke med ekstraksjonskonteksten {1}",

	MsgTranslationText:            "Fant ikke oversettelse for skjematekst",
	MsgTranslationPrefix:          "Fant ikke oversettelse for prefiks",
	MsgTranslationSublabel:        "Fant ikke oversettelse for sublabel",
	MsgTranslationRepeatsText:     "Fant ikke oversettelse for gjentakelsestekst",
	MsgTranslationValidationText:  "Fant ikke oversettelse for valideringsmelding",
	MsgTranslationEntryFormat:     "Fant ikke oversettelse for plassholdertekst",
	MsgTranslationInitial:         "Fant ikke oversettelse for startverdi",
	MsgTranslationOption:          "Fant ikke oversettelse for svaralternativ {0}",
	MsgTranslationSidebar:         "Fant ikke oversettelse for sidebar-tekst",
	MsgTranslationValueSet:        "Fant ikke oversettelse for verdisettet {0}",
	MsgTranslationConcept:         "Fant ikke oversettelse for koden {0} i verdisettet {1}",
	MsgTranslationMetadata:        "Fant ikke oversettelse for {0}",
	MsgTranslationMetadataInvalid: "Oversettelsen for {0} er ikke gyldig",
	MsgTranslationSetting:         "Fant ikke oversettelse for innstillingen {0}",

	MsgIDMissing:           "Skjemaet må ha en id",
	MsgIDInvalid:           "Id {0} kan bare inneholde bokstaver, tall, - og . og være maks 64 tegn",
	MsgTitleMissing:        "Skjemaet må ha en tittel",
	MsgTitleInvalid:        "Tittelen kan ikke inneholde linjeskift eller tabulator",
	MsgNameMissing:         "Skjemaet må ha et teknisk navn",
	MsgNameInvalid:         "Teknisk navn {0} bør starte med stor bokstav og bare inneholde bokstaver, tall og _",
	MsgURLMissing:          "Skjemaet har ingen url",
	MsgURLPrefix:           "Url bør starte med {0}",
	MsgURLID:               "Siste del av url-en må være lik skjemaets id {0}",
	MsgReferenceEmpty:      "Referansen for {0} er tom",
	MsgReferencePrefix:     "Referansen for {0} bør starte med {1}",
	MsgReferenceID:         "Referansen {0} slutter ikke med en gyldig id",
	MsgBundleDuplicateID:   "Skjema-id {0} brukes av mer enn ett skjema i bundelen",
	MsgBundleEmpty:         "Bundelen inneholder ingen skjema",
	MsgLanguageMissing:     "Skjemaet må ha et språk",
	MsgLanguageInvalid:     "Språkkoden {0} er ikke gyldig",
	MsgLanguageUnsupported: "Språkkode {0} støttes ikke",

	MsgSecurityMissing:        "Skjemaet har ingen sikkerhetsmerking",
	MsgSecurityInvalid:        "Sikkerhetsmerkingen {0} er ikke gyldig",
	MsgSettingInvalid:         "Innstillingen {0} har en ugyldig kode {1}",
	MsgSettingAnonymousOthers: "Anonyme skjema kan ikke fylles ut av andre",
}
