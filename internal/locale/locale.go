// Package locale is the one stop shop for all user facing text, so that
// wording lives in one reviewable file rather than being scattered over
// format strings.
package locale

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/nicksnyder/go-i18n/i18n"

	"github.com/py-app-standalone/cli/internal/assets"
)

var translateFunction i18n.TranslateFunc

func init() {
	data, err := assets.ReadFileBytes("locale/en-us.yaml")
	if err != nil {
		panic(fmt.Sprintf("Could not read locale asset: %v", err))
	}

	if err := i18n.ParseTranslationFileBytes("en-us.yaml", data); err != nil {
		panic(fmt.Sprintf("Could not parse locale asset: %v", err))
	}

	translateFunction, err = i18n.Tfunc("en-us")
	if err != nil {
		panic(fmt.Sprintf("Could not initialize translate function: %v", err))
	}
}

// T aliases to i18n.Tfunc()
func T(translationID string, args ...interface{}) string {
	return translateFunction(translationID, args...)
}

// Tr is T with positional values, accessed from the translation as {{.V0}}, {{.V1}} etc.
func Tr(translationID string, values ...string) string {
	return T(translationID, argsMap(values))
}

// Tl is Tr with a fallback text that is used when the translation id is not
// in the locale file, so one-off strings don't have to go through the yaml.
func Tl(translationID, fallback string, values ...string) string {
	args := argsMap(values)
	translation := T(translationID, args)
	if translation != translationID {
		return translation
	}
	return expand(fallback, args)
}

// Tt aliases to T, but before returning the string it replaces `[[` and `]]` with `{{` and `}}`,
// allowing for the localized strings to use these template tags without triggering i18n
func Tt(translationID string, args ...interface{}) string {
	translation := T(translationID, args...)
	translation = strings.Replace(translation, "[[", "{{", -1)
	translation = strings.Replace(translation, "]]", "}}", -1)

	// For templates we want to manually specify the linebreaks as the way YAML gets parsed makes
	// this very painful otherwise
	translation = strings.Replace(translation, "\n", "", -1)
	translation = strings.Replace(translation, "{{BR}}", "\n", -1)

	translation = strings.Trim(translation, " ")
	return translation
}

func argsMap(values []string) map[string]interface{} {
	args := map[string]interface{}{}
	for i, v := range values {
		args[fmt.Sprintf("V%d", i)] = v
	}
	return args
}

func expand(text string, args map[string]interface{}) string {
	tpl, err := template.New("locale").Parse(text)
	if err != nil {
		return text
	}
	var out bytes.Buffer
	if err := tpl.Execute(&out, args); err != nil {
		return text
	}
	return out.String()
}
