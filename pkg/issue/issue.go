// Package issue defines the validation error produced by every rule, and the
// message keys and translator used to render it.
package issue

import "strconv"

// Level is the severity of a validation error.
type Level string

// Levels, from most to least severe.
const (
	LevelError   Level = "error"
	LevelWarning Level = "warning"
	LevelInfo    Level = "info"
)

// Rank orders levels: lower is more severe.
func (l Level) Rank() int {
	switch l {
	case LevelError:
		return 0
	case LevelWarning:
		return 1
	case LevelInfo:
		return 2
	default:
		return 3
	}
}

// Property names the part of an item or questionnaire that violated a rule.
type Property string

// Properties.
const (
	PropLinkID               Property = "linkId"
	PropType                 Property = "type"
	PropText                 Property = "text"
	PropPrefix               Property = "prefix"
	PropCode                 Property = "code"
	PropExtension            Property = "extension"
	PropItemControl          Property = "itemControl"
	PropAnswerOption         Property = "answerOption"
	PropAnswerValueSet       Property = "answerValueSet"
	PropEnableWhen           Property = "enableWhen"
	PropEnableBehavior       Property = "enableBehavior"
	PropInitial              Property = "initial"
	PropRequired             Property = "required"
	PropReadOnly             Property = "readOnly"
	PropRepeats              Property = "repeats"
	PropMaxLength            Property = "maxLength"
	PropItem                 Property = "item"
	PropCalculatedExpression Property = "calculatedExpression"
	PropCopyExpression       Property = "copyExpression"
	PropDefinition           Property = "definition"
	PropScoring              Property = "scoring"
	PropID                   Property = "id"
	PropTitle                Property = "title"
	PropName                 Property = "name"
	PropURL                  Property = "url"
	PropLanguage             Property = "language"
	PropEndpoint             Property = "endpoint"
	PropPrintVersion         Property = "printVersion"
	PropSecurity             Property = "security"
	PropSettings             Property = "settings"
	PropMetadata             Property = "metadata"
	PropValueSet             Property = "valueSet"
	PropSidebar              Property = "sidebar"
)

// ValidationError is one violated rule. It is an immutable value: the
// builder methods return modified copies.
type ValidationError struct {
	LinkID       string   `json:"linkId"`
	Index        *int     `json:"index,omitempty"`
	Property     Property `json:"errorProperty"`
	Level        Level    `json:"errorLevel"`
	Text         string   `json:"errorReadableText"`
	LanguageCode string   `json:"languagecode,omitempty"`
}

// New creates a validation error.
func New(level Level, linkID string, prop Property, text string) ValidationError {
	return ValidationError{
		LinkID:   linkID,
		Property: prop,
		Level:    level,
		Text:     text,
	}
}

// Error creates an error-level validation error.
func Error(linkID string, prop Property, text string) ValidationError {
	return New(LevelError, linkID, prop, text)
}

// Warning creates a warning-level validation error.
func Warning(linkID string, prop Property, text string) ValidationError {
	return New(LevelWarning, linkID, prop, text)
}

// Info creates an info-level validation error.
func Info(linkID string, prop Property, text string) ValidationError {
	return New(LevelInfo, linkID, prop, text)
}

// At returns a copy pointing at the array element with index i.
func (e ValidationError) At(i int) ValidationError {
	e.Index = &i
	return e
}

// InLanguage returns a copy tagged with a translation language.
func (e ValidationError) InLanguage(code string) ValidationError {
	e.LanguageCode = code
	return e
}

// IsError reports whether the level is error.
func (e ValidationError) IsError() bool {
	return e.Level == LevelError
}

// IsWarning reports whether the level is warning.
func (e ValidationError) IsWarning() bool {
	return e.Level == LevelWarning
}

// String returns a human-readable representation of the error.
func (e ValidationError) String() string {
	s := string(e.Level) + ": " + e.Text
	if e.LinkID != "" {
		s += " (linkId " + e.LinkID
		if e.Index != nil {
			s += "[" + strconv.Itoa(*e.Index) + "]"
		}
		s += ")"
	}
	if e.LanguageCode != "" {
		s += " [" + e.LanguageCode + "]"
	}
	return s
}

// CountLevel returns the number of errors with the given level.
func CountLevel(errs []ValidationError, level Level) int {
	n := 0
	for i := range errs {
		if errs[i].Level == level {
			n++
		}
	}
	return n
}

// Filter returns the errors with the given level.
func Filter(errs []ValidationError, level Level) []ValidationError {
	var out []ValidationError
	for i := range errs {
		if errs[i].Level == level {
			out = append(out, errs[i])
		}
	}
	return out
}

// ForLinkID returns the errors reported against one linkId.
func ForLinkID(errs []ValidationError, linkID string) []ValidationError {
	var out []ValidationError
	for i := range errs {
		if errs[i].LinkID == linkID {
			out = append(out, errs[i])
		}
	}
	return out
}
