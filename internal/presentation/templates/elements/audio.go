package elements

import "github.com/dailystar-data/police-story-go/internal/domain/entities/content"

var audioTmpl = parse("audioSection",
	`<section id="audio-section" class="component audio-section">`+
		`<h3>{{.Heading}}</h3><p>{{.Text}}</p>{{range .Paragraphs}}<p>{{.}}</p>{{end}}`+
		`<div class="accordion" aria-label="{{.AccordionTitle}}">{{range $i, $item := .Items}}`+
		`<details data-item="{{$i}}"><summary>{{$item.Headline}}</summary><p>{{$item.Text}}</p>`+
		`{{if $item.HasPlayer}}<iframe class="audio-player" title="{{$item.Headline}}" src="{{$item.EmbedSrc}}" loading="lazy" allow="autoplay"></iframe>{{end}}`+
		`</details>{{end}}</div>`+
		`</section>`,
)

// RenderAudio renders the accordion. Items without an embed source get no
// player.
func RenderAudio(audio *content.AudioSection) string {
	return execute(audioTmpl, audio)
}
