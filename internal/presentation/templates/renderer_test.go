package templates

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dailystar-data/police-story-go/internal/application/services"
	"github.com/dailystar-data/police-story-go/internal/domain/entities/content"
	"github.com/dailystar-data/police-story-go/internal/domain/entities/locale"
	"github.com/dailystar-data/police-story-go/internal/infrastructure/observability/logging"
	"github.com/dailystar-data/police-story-go/internal/infrastructure/persistence"
)

func embeddedStore(t *testing.T) *services.ContentStore {
	t.Helper()
	store, err := services.NewContentStore(persistence.NewSource("", "", nil), logging.NewDiscardLogger())
	require.NoError(t, err)
	return store
}

func TestRenderArticleBothLocales(t *testing.T) {
	store := embeddedStore(t)
	r := NewArticleRenderer("/police_story_ds/", logging.NewDiscardLogger())

	for _, l := range locale.All() {
		lc, err := store.GetLocale(l)
		require.NoError(t, err)

		var buf bytes.Buffer
		require.NoError(t, r.RenderArticle(&buf, lc))
		html := buf.String()

		assert.Contains(t, html, `<html lang="`+l.Tag()+`">`)
		assert.Contains(t, html, `application/ld+json`)
		assert.Contains(t, html, `id="officer-table"`)
		assert.Contains(t, html, `id="absconded"`)
		assert.NotContains(t, html, "template error")

		other := locale.English
		if l == locale.English {
			other = locale.Bengali
		}
		assert.Contains(t, html, `href="/police_story_ds/article/`+string(other)+`"`)
	}
}

func TestRenderBengaliUsesBengaliNumerals(t *testing.T) {
	store := embeddedStore(t)
	lc, err := store.GetLocale(locale.Bengali)
	require.NoError(t, err)

	r := NewArticleRenderer("", nil)
	html, ok := r.RenderComponent(lc, content.ComponentAbsconded)
	require.True(t, ok)
	assert.Contains(t, html, "৬ আগস্ট")
	assert.Contains(t, html, "(৩)")
}

func TestRenderAudioPlayers(t *testing.T) {
	lc := &content.LocaleContent{
		Locale: locale.English,
		Tag:    "en-US",
		Audio: &content.AudioSection{
			Heading: "Voices",
			Items: []content.AudioItem{
				{Headline: "Wireless one", Text: "first", EmbedSrc: "https://player.example.org/1"},
				{Headline: "Wireless two", Text: "second"},
			},
		},
	}

	html, ok := NewArticleRenderer("", nil).RenderComponent(lc, content.ComponentAudioSection)
	require.True(t, ok)
	assert.Equal(t, 1, strings.Count(html, "<iframe"))
	assert.Contains(t, html, "Wireless two")
}

func TestRenderBlocksSkipsUnresolvedComponent(t *testing.T) {
	lc := &content.LocaleContent{
		Locale: locale.English,
		Tag:    "en-US",
		Article: []content.Block{
			content.Heading{Text: "Orders"},
			content.Paragraph{Text: "Fire <only> when ordered"},
			content.ComponentReference{Name: content.ComponentTransfers},
			content.Quote{Text: "Shoot", Citation: "Wireless log"},
		},
	}

	html := string(NewArticleRenderer("", nil).RenderBlocks(lc))
	assert.Equal(t,
		`<h2 id="section-0">Orders</h2>`+
			`<p>Fire &lt;only&gt; when ordered</p>`+
			`<blockquote><p>Shoot</p><cite>Wireless log</cite></blockquote>`,
		html)
}

func TestRenderOfficerTableHidesOverflow(t *testing.T) {
	recs := make([]content.OfficerRecord, 7)
	for i := range recs {
		recs[i] = content.OfficerRecord{Name: "Officer", RankAndZone: "ADC", Status: content.StatusTransferred, TableRowID: string(rune('a' + i))}
	}
	lc := &content.LocaleContent{
		Locale: locale.Bengali,
		Tag:    "bn-BD",
		OfficerTable: &content.OfficerTable{
			Data:   recs,
			UIText: content.OfficerTableUIText{ShowMorePrefix: "+ আরও", ShowMoreSuffix: "দেখুন"},
		},
	}

	html, ok := NewArticleRenderer("", nil).RenderComponent(lc, content.ComponentOfficerTable)
	require.True(t, ok)
	assert.Equal(t, 2, strings.Count(html, " hidden>"))
	assert.Contains(t, html, "+ আরও ২ দেখুন")
}

func TestRenderPoliceMapThanaLegend(t *testing.T) {
	lc := &content.LocaleContent{
		Locale: locale.Bengali,
		Tag:    "bn-BD",
		PoliceMap: &content.PoliceMap{
			ScrollyTextboxes: map[string]string{"1": "প্রথম"},
			ThanaNames:       map[string]string{"Jatrabari": "যাত্রাবাড়ী", "Badda": "বাড্ডা", "Kafrul": ""},
			UIText:           content.PoliceMapUIText{ThanaHeader: "থানা", TotalLabel: "মোট"},
		},
	}

	html, ok := NewArticleRenderer("", nil).RenderComponent(lc, content.ComponentPoliceMap)
	require.True(t, ok)
	assert.Contains(t, html,
		`<h3>থানা</h3><ul class="thana-legend">`+
			`<li data-thana="Badda">বাড্ডা</li>`+
			`<li data-thana="Jatrabari">যাত্রাবাড়ী</li>`+
			`<li data-thana="Kafrul">Kafrul</li></ul>`)
	assert.Contains(t, html, `<p class="map-total">মোট ৩</p>`)
}
