// Package structor validates FHIR Questionnaires edited in the Structor
// form builder.
//
// A questionnaire under edit is held as a Document: a flat map of items by
// linkId, a separate order tree recording nesting, questionnaire metadata,
// translations per additional language and contained value sets. The engine
// reads a Document and returns a flat list of validation errors. It never
// modifies the document.
//
// # Quick Start
//
//	import (
//	    "github.com/helsenorge/structor-export-sub000/pkg/model"
//	    "github.com/helsenorge/structor-export-sub000/pkg/validator"
//	)
//
//	doc, err := model.ParseDocument(snapshotJSON)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	v := validator.New(validator.WithExpressionCheck(true))
//	report := v.Validate(doc)
//	for _, e := range report.Errors {
//	    fmt.Println(e)
//	}
//
// # Rule Concerns
//
// Per item, in order tree pre-order:
//
//   - Group: repeating groups
//   - Choice: answer option code, display and system
//   - Table: table, table-hn1, table-hn2 and gtable groups
//   - Calculated: calculated expression references and item type
//   - Receiver: data receiver wiring
//   - Structural: linkIds, flags, codes, extensions, scoring, initial
//     values, enableWhen and extraction context
//
// Once per document, in this order: order tree consistency, questionnaire
// details, security and settings, language, translations.
//
// # Messages
//
// Rules never produce user-facing text directly. Every message is rendered
// through an issue.Translator from a fixed key with positional parameters.
// issue.NewCatalogTranslator serves the bundled Norwegian messages.
package structor
