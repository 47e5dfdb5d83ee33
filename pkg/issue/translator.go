package issue

import (
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Translator renders a message key with positional parameters. The engine
// never produces user-facing text any other way.
type Translator func(key string, params ...string) string

// Format substitutes {0}, {1}, ... in template with params.
func Format(template string, params ...string) string {
	if len(params) == 0 {
		return template
	}
	result := template
	for i, p := range params {
		result = strings.ReplaceAll(result, "{"+strconv.Itoa(i)+"}", p)
	}
	return result
}

// DefaultTranslator renders the English template.
func DefaultTranslator(key string, params ...string) string {
	return Format(key, params...)
}

// NewCatalogTranslator returns a Translator backed by the built-in message
// catalog. Keys without a translation for tag render in English.
func NewCatalogTranslator(tag language.Tag) Translator {
	printer := message.NewPrinter(tag, message.Catalog(builtinCatalog))
	return func(key string, params ...string) string {
		return Format(printer.Sprintf(key), params...)
	}
}

// Bokmaal is the language of the bundled Norwegian messages.
var Bokmaal = language.MustParse("nb-NO")

var builtinCatalog = buildCatalog()

func buildCatalog() catalog.Catalog {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for key, text := range bokmaalMessages {
		if err := b.SetString(Bokmaal, key, text); err != nil {
			panic(err)
		}
	}
	return b
}
