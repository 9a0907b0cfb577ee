// Package authored decodes the hand-written half of each locale tree from
// YAML: article blocks plus every auxiliary bag except the datasets.
package authored

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/dailystar-data/police-story-go/internal/domain/entities/content"
	"github.com/dailystar-data/police-story-go/internal/domain/entities/locale"
	"github.com/dailystar-data/police-story-go/internal/infrastructure/observability/logging"
)

//go:embed data/*.yaml
var embedded embed.FS

// document mirrors one <locale>.yaml file.
type document struct {
	Locale         string                      `yaml:"locale"`
	Tag            string                      `yaml:"tag"`
	MapAccessToken string                      `yaml:"mapAccessToken"`
	Meta           content.Meta                `yaml:"meta"`
	Article        []articleBlock              `yaml:"article"`
	Documents      *content.DocumentsSection   `yaml:"documents"`
	Methodology    *content.MethodologySection `yaml:"methodology"`
	Credits        *content.Credits            `yaml:"credits"`
	Headline       *content.Headline           `yaml:"headline"`
	PoliceMap      *content.PoliceMap          `yaml:"policeMap"`
	Transfers      *content.Transfers          `yaml:"transfers"`
	Audio          *content.AudioSection       `yaml:"audio"`
	OfficerTable   *content.OfficerTable       `yaml:"officerTable"`
	Absconded      *content.Absconded          `yaml:"absconded"`
}

// articleBlock decodes a single-key mapping such as {p: "..."} or
// {component: PoliceMap} into a content.Block.
type articleBlock struct {
	block content.Block
}

type quoteNode struct {
	Text     string `yaml:"text"`
	Citation string `yaml:"citation"`
}

func (ab *articleBlock) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode || len(node.Content) != 2 {
		return fmt.Errorf("line %d: article block must be a mapping with exactly one key", node.Line)
	}
	key, value := node.Content[0].Value, node.Content[1]

	switch key {
	case "p", "h2":
		var text string
		if err := value.Decode(&text); err != nil {
			return fmt.Errorf("line %d: %s block: %w", value.Line, key, err)
		}
		if key == "p" {
			ab.block = content.Paragraph{Text: text}
		} else {
			ab.block = content.Heading{Text: text}
		}
	case "quote":
		var q quoteNode
		if err := value.Decode(&q); err != nil {
			return fmt.Errorf("line %d: quote block: %w", value.Line, err)
		}
		ab.block = content.Quote{Text: q.Text, Citation: q.Citation}
	case "component":
		name, ok := content.ParseComponentName(value.Value)
		if !ok {
			return fmt.Errorf("line %d: unknown component %q", value.Line, value.Value)
		}
		ab.block = content.ComponentReference{Name: name}
	default:
		return fmt.Errorf("line %d: unknown article block kind %q", node.Line, key)
	}
	return nil
}

// Repository loads <locale>.yaml documents from a filesystem.
type Repository struct {
	fsys           fs.FS
	mapAccessToken string
	logger         *logging.ChanneledLogger
}

// NewRepository reads authored documents from fsys. A non-empty
// mapAccessToken replaces the token stored in the documents.
func NewRepository(fsys fs.FS, mapAccessToken string, logger *logging.ChanneledLogger) *Repository {
	return &Repository{fsys: fsys, mapAccessToken: mapAccessToken, logger: logger}
}

// NewEmbeddedRepository reads the documents compiled into the binary.
func NewEmbeddedRepository(mapAccessToken string, logger *logging.ChanneledLogger) *Repository {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		panic(err)
	}
	return NewRepository(sub, mapAccessToken, logger)
}

// Load decodes the authored tree for l. Dataset slices are left empty.
func (r *Repository) Load(l locale.Locale) (*content.LocaleContent, error) {
	start := time.Now()
	name := string(l) + ".yaml"

	raw, err := fs.ReadFile(r.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}

	doc, err := decode(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", name, err)
	}
	if doc.Locale != string(l) {
		return nil, fmt.Errorf("%s declares locale %q", name, doc.Locale)
	}

	lc := &content.LocaleContent{
		Locale:         l,
		Tag:            doc.Tag,
		MapAccessToken: doc.MapAccessToken,
		Meta:           doc.Meta,
		Article:        make([]content.Block, 0, len(doc.Article)),
		Documents:      doc.Documents,
		Methodology:    doc.Methodology,
		Credits:        doc.Credits,
		Headline:       doc.Headline,
		PoliceMap:      doc.PoliceMap,
		Transfers:      doc.Transfers,
		Audio:          doc.Audio,
		OfficerTable:   doc.OfficerTable,
		Absconded:      doc.Absconded,
	}
	if lc.Tag == "" {
		lc.Tag = l.Tag()
	}
	if r.mapAccessToken != "" {
		lc.MapAccessToken = r.mapAccessToken
	}
	for _, b := range doc.Article {
		lc.Article = append(lc.Article, b.block)
	}

	if r.logger != nil {
		r.logger.Content().Debug("Decoded authored content",
			"locale", l, "blocks", len(lc.Article), "duration", time.Since(start))
	}
	return lc, nil
}

func decode(raw []byte) (*document, error) {
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("document is empty")
		}
		return nil, err
	}
	return &doc, nil
}
