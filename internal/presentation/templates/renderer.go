// Package templates renders a locale tree to a standalone HTML article.
package templates

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"strings"
	"time"

	"github.com/dailystar-data/police-story-go/internal/application/services"
	"github.com/dailystar-data/police-story-go/internal/domain/entities/content"
	"github.com/dailystar-data/police-story-go/internal/domain/entities/locale"
	"github.com/dailystar-data/police-story-go/internal/infrastructure/observability/logging"
	"github.com/dailystar-data/police-story-go/internal/presentation/templates/elements"
)

var blockTemplates = template.Must(template.New("blocks").Parse(
	`{{define "p"}}<p>{{.Text}}</p>{{end}}` +
		`{{define "h2"}}<h2 id="{{.ID}}">{{.Text}}</h2>{{end}}` +
		`{{define "blockquote"}}<blockquote><p>{{.Text}}</p>{{if .Citation}}<cite>{{.Citation}}</cite>{{end}}</blockquote>{{end}}`,
))

type headingData struct {
	ID   string
	Text string
}

// ArticleRenderer walks an article's blocks in order and mounts component
// renderers for component references.
type ArticleRenderer struct {
	basePath string
	logger   *logging.ChanneledLogger
}

// NewArticleRenderer creates a renderer whose links are rooted at basePath.
func NewArticleRenderer(basePath string, logger *logging.ChanneledLogger) *ArticleRenderer {
	return &ArticleRenderer{basePath: strings.TrimRight(basePath, "/"), logger: logger}
}

// RenderArticle writes the full HTML document for lc.
func (r *ArticleRenderer) RenderArticle(w io.Writer, lc *content.LocaleContent) error {
	start := time.Now()

	data := pageData{
		Lang:       lc.Tag,
		Meta:       lc.Meta,
		Headline:   lc.Headline,
		Body:       r.RenderBlocks(lc),
		Credits:    lc.Credits,
		Method:     lc.Methodology,
		Alternates: r.alternates(lc.Locale),
		StructuredData: map[string]any{
			"@context":   "https://schema.org",
			"@type":      "NewsArticle",
			"headline":   lc.Meta.StructuredDataHeadline,
			"author":     lc.Meta.Author,
			"inLanguage": lc.Tag,
		},
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		return fmt.Errorf("failed to render %s article: %w", lc.Locale, err)
	}
	if _, err := buf.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write %s article: %w", lc.Locale, err)
	}

	if r.logger != nil {
		r.logger.Render().Info("Article rendered",
			"locale", lc.Locale,
			"blocks", len(lc.Article),
			"bytes", buf.Len(),
			"duration", time.Since(start))
	}
	return nil
}

// RenderBlocks renders the article body.
func (r *ArticleRenderer) RenderBlocks(lc *content.LocaleContent) template.HTML {
	var html strings.Builder
	for i, b := range lc.Article {
		html.WriteString(r.RenderBlock(lc, i, b))
	}
	return template.HTML(html.String())
}

// RenderBlock renders one block. Component references that do not resolve
// render nothing.
func (r *ArticleRenderer) RenderBlock(lc *content.LocaleContent, index int, b content.Block) string {
	switch v := b.(type) {
	case content.Paragraph:
		return r.executeTemplate("p", v)
	case content.Heading:
		return r.executeTemplate("h2", headingData{ID: fmt.Sprintf("section-%d", index), Text: v.Text})
	case content.Quote:
		return r.executeTemplate("blockquote", v)
	case content.ComponentReference:
		html, ok := r.RenderComponent(lc, v.Name)
		if !ok {
			if r.logger != nil {
				r.logger.Render().Warn("Skipping unresolved component",
					"locale", lc.Locale, "component", v.Name, "block", index)
			}
			return ""
		}
		return html
	default:
		if r.logger != nil {
			r.logger.Render().Error("Unknown block type", "locale", lc.Locale, "block", index, "type", fmt.Sprintf("%T", b))
		}
		return ""
	}
}

// RenderComponent renders the named component from lc's bags.
func (r *ArticleRenderer) RenderComponent(lc *content.LocaleContent, name content.ComponentName) (string, bool) {
	bag, ok := lc.Component(name)
	if !ok {
		return "", false
	}

	switch v := bag.(type) {
	case *content.PoliceMap:
		return elements.RenderPoliceMap(v, lc.MapAccessToken, lc.Locale), true
	case *content.DocumentsSection:
		return elements.RenderDocuments(v), true
	case *content.OfficerTable:
		page, err := services.PageOfficers(lc.Locale, v, "", 0, services.DefaultOfficerPageSize)
		if err != nil {
			return "", false
		}
		return elements.RenderOfficerTable(v, len(page.Records), page.ShowMoreLabel, lc.Locale), true
	case *content.AudioSection:
		return elements.RenderAudio(v), true
	case *content.Absconded:
		tl := services.BuildAbscondedTimeline(lc.Locale, v)
		dots := make([]elements.TimelineDot, len(tl.Entries))
		for i, e := range tl.Entries {
			dots[i] = elements.TimelineDot{AbscondedRecord: e.AbscondedRecord, DateLabel: e.DateLabel, Highlight: e.Highlight}
		}
		return elements.RenderAbsconded(v, dots, tl.TopRanked, tl.Other, lc.Locale), true
	case *content.Transfers:
		return elements.RenderTransfers(v, lc.Locale), true
	default:
		return "", false
	}
}

func (r *ArticleRenderer) executeTemplate(name string, data any) string {
	var buf bytes.Buffer
	if err := blockTemplates.ExecuteTemplate(&buf, name, data); err != nil {
		if r.logger != nil {
			r.logger.Render().Error("Failed to execute block template", "template", name, "error", err)
		}
		return `<!-- template error -->`
	}
	return buf.String()
}

type alternateLink struct {
	Tag  string
	Href string
}

func (r *ArticleRenderer) alternates(current locale.Locale) []alternateLink {
	var links []alternateLink
	for _, l := range locale.All() {
		if l == current {
			continue
		}
		links = append(links, alternateLink{Tag: l.Tag(), Href: r.basePath + "/article/" + string(l)})
	}
	return links
}
