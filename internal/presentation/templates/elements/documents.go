package elements

import "github.com/dailystar-data/police-story-go/internal/domain/entities/content"

var documentsTmpl = parse("sourceDocuments",
	`<section id="source-documents" class="component source-documents">`+
		`<h3>{{.Title}}</h3>`+
		`{{range .Items}}<figure data-document="{{.Index}}"><div class="document-scan" role="img" aria-label="{{.Alt}}"></div><figcaption>{{.Caption}}</figcaption></figure>{{end}}`+
		`</section>`,
)

type documentItem struct {
	Index   int
	Caption string
	Alt     string
}

type documentsData struct {
	Title string
	Items []documentItem
}

// RenderDocuments pairs captions with alt texts by index. A caption with no
// alt text falls back to the caption itself.
func RenderDocuments(docs *content.DocumentsSection) string {
	data := documentsData{Title: docs.Title}
	for i, caption := range docs.Captions {
		alt := caption
		if i < len(docs.AltTexts) && docs.AltTexts[i] != "" {
			alt = docs.AltTexts[i]
		}
		data.Items = append(data.Items, documentItem{Index: i, Caption: caption, Alt: alt})
	}
	return execute(documentsTmpl, data)
}
