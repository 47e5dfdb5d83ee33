package validator

import (
	"github.com/helsenorge/structor-export-sub000/pkg/issue"
	"github.com/helsenorge/structor-export-sub000/pkg/logger"
	"github.com/helsenorge/structor-export-sub000/pkg/metadata"
)

// DefaultQuestionnaireURLPrefix is the expected start of questionnaire urls.
const DefaultQuestionnaireURLPrefix = "http://ehelse.no/fhir/Questionnaire/"

// Config holds the validator configuration.
type Config struct {
	SupportedLanguages     []string         // Language codes the renderer supports
	QuestionnaireURLPrefix string           // Expected start of the questionnaire url
	ExpressionCheck        bool             // Compile calculated expressions with FHIRPath
	Translator             issue.Translator // Renders message keys
	Logger                 *logger.Logger   // Debug logging of validation passes
}

// Option is a functional option for configuring the validator.
type Option func(*Config)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		SupportedLanguages:     append([]string(nil), metadata.DefaultSupportedLanguages...),
		QuestionnaireURLPrefix: DefaultQuestionnaireURLPrefix,
		Translator:             issue.DefaultTranslator,
		Logger:                 logger.Default(),
	}
}

// WithSupportedLanguages replaces the supported language codes.
func WithSupportedLanguages(codes ...string) Option {
	return func(c *Config) {
		c.SupportedLanguages = append([]string(nil), codes...)
	}
}

// WithQuestionnaireURLPrefix sets the expected questionnaire url prefix.
// An empty prefix disables the prefix warning.
func WithQuestionnaireURLPrefix(prefix string) Option {
	return func(c *Config) {
		c.QuestionnaireURLPrefix = prefix
	}
}

// WithExpressionCheck enables FHIRPath compilation of calculated expressions.
// Expressions that do not compile are reported as warnings.
func WithExpressionCheck(enabled bool) Option {
	return func(c *Config) {
		c.ExpressionCheck = enabled
	}
}

// WithTranslator sets the message translator. Nil keeps the default.
func WithTranslator(tr issue.Translator) Option {
	return func(c *Config) {
		if tr != nil {
			c.Translator = tr
		}
	}
}

// WithLogger sets the logger. Nil keeps the default.
func WithLogger(l *logger.Logger) Option {
	return func(c *Config) {
		if l != nil {
			c.Logger = l
		}
	}
}
