package templates

import (
	"html/template"

	"github.com/dailystar-data/police-story-go/internal/domain/entities/content"
)

var pageTemplate = template.Must(template.New("page").Funcs(template.FuncMap{
	"trusted": func(s string) template.HTML { return template.HTML(s) },
}).Parse(`<!DOCTYPE html>
<html lang="{{.Lang}}">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Meta.Title}}</title>
<meta name="description" content="{{.Meta.Description}}">
<meta name="keywords" content="{{.Meta.Keywords}}">
<meta name="author" content="{{.Meta.Author}}">
{{range .Alternates}}<link rel="alternate" hreflang="{{.Tag}}" href="{{.Href}}">
{{end}}<script type="application/ld+json">{{.StructuredData}}</script>
</head>
<body>
<article>
{{with .Headline}}<header class="headline">
<p class="kicker">{{.Line1}}</p>
<h1>{{.Line2}}</h1>
<p class="dek">{{.Line3}}</p>
<dl class="byline">
<dt>{{.CreditReporting}}</dt><dd>{{.NameReporting}}</dd>
<dt>{{.CreditDataViz}}</dt><dd>{{.NameDataViz}}</dd>
<dt>{{.CreditGraphics}}</dt><dd>{{.NameGraphics}}</dd>
<dt>{{.CreditEditing}}</dt><dd>{{.NameEditing}}</dd>
</dl>
</header>{{end}}
<div class="article-body">{{.Body}}</div>
{{with .Credits}}<p class="credits">{{trusted .Line}}</p>{{end}}
{{with .Method}}<section id="methodology" class="methodology">
<h2>{{.Title}}</h2>
{{range .Paragraphs}}<p>{{trusted .}}</p>
{{end}}{{if .ClusterTable.Headers}}<table class="cluster-table">
<thead><tr>{{range .ClusterTable.Headers}}<th>{{.}}</th>{{end}}</tr></thead>
<tbody>{{range .ClusterTable.Rows}}<tr>{{range .}}<td>{{.}}</td>{{end}}</tr>{{end}}</tbody>
</table>{{end}}
</section>{{end}}
</article>
</body>
</html>
`))

type pageData struct {
	Lang           string
	Meta           content.Meta
	Headline       *content.Headline
	Body           template.HTML
	Credits        *content.Credits
	Method         *content.MethodologySection
	Alternates     []alternateLink
	StructuredData map[string]any
}
