// Package elements renders the interactive components an article mounts.
// Each renderer produces a static, accessible fallback that client scripts
// hydrate; none of them keeps UI state.
package elements

import (
	"bytes"
	"html/template"
	"log"

	"github.com/dailystar-data/police-story-go/internal/domain/entities/locale"
	"github.com/dailystar-data/police-story-go/internal/domain/localize"
)

// funcs are shared by every component template. Authored strings that carry
// inline markup go through "trusted"; everything else is escaped.
var funcs = template.FuncMap{
	"trusted": func(s string) template.HTML { return template.HTML(s) },
	"num": func(v any, l locale.Locale) any {
		return localize.ToLocaleNumerals(v, l)
	},
	"inc": func(i int) int { return i + 1 },
}

func parse(name, text string) *template.Template {
	return template.Must(template.New(name).Funcs(funcs).Parse(text))
}

func execute(tmpl *template.Template, data any) string {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		log.Printf("ERROR: Failed to execute %s template: %v", tmpl.Name(), err)
		return `<!-- template error -->`
	}
	return buf.String()
}
