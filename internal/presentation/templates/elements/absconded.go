package elements

import (
	"github.com/dailystar-data/police-story-go/internal/domain/entities/content"
	"github.com/dailystar-data/police-story-go/internal/domain/entities/locale"
)

var abscondedTmpl = parse("absconded",
	`<section id="absconded" class="component absconded">`+
		`<h3>{{.Bag.Title}}</h3>`+
		`<ul class="legend"><li class="tier-top-ranked">{{.Bag.LegendTopRanked}} ({{num .TopRanked .Locale}})</li><li class="tier-other">{{.Bag.LegendOtherRanks}} ({{num .Other .Locale}})</li></ul>`+
		`{{if .Entries}}<ol class="timeline">{{range .Entries}}`+
		`<li class="dot tier-{{.RankTier}}{{if .Highlight}} highlight{{end}}" data-date="{{.Date.Format "2006-01-02"}}">`+
		`<span class="name">{{.OfficerName}}</span> <span class="rank">{{$.Bag.TooltipRank}} {{.Rank}}</span> <span class="date">{{$.Bag.TooltipDate}} {{.DateLabel}}</span></li>`+
		`{{end}}</ol>`+
		`{{if .HasTarget}}<p class="annotation">{{trusted .Bag.AnnotationText}}</p>{{end}}`+
		`{{else}}<p class="no-data">{{.Bag.NoData}}</p>{{end}}`+
		`<p class="caption">{{.Bag.Caption}}</p><p class="footnote">{{.Bag.Footnote}}</p>`+
		`</section>`,
)

// TimelineDot is one rendered timeline entry.
type TimelineDot struct {
	content.AbscondedRecord
	DateLabel string
	Highlight bool
}

type abscondedData struct {
	Bag       *content.Absconded
	Entries   []TimelineDot
	TopRanked int
	Other     int
	HasTarget bool
	Locale    locale.Locale
}

// RenderAbsconded renders pre-sorted timeline dots with the tier legend.
func RenderAbsconded(bag *content.Absconded, dots []TimelineDot, topRanked, other int, l locale.Locale) string {
	data := abscondedData{Bag: bag, Entries: dots, TopRanked: topRanked, Other: other, Locale: l}
	for _, d := range dots {
		if d.Highlight {
			data.HasTarget = true
			break
		}
	}
	return execute(abscondedTmpl, data)
}
