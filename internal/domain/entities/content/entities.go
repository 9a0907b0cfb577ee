// Package content defines the localized article tree: ordered article blocks
// plus the auxiliary data bags the interactive components render.
package content

import "github.com/dailystar-data/police-story-go/internal/domain/entities/locale"

// PoliceMapStageCount is the number of camera/data stages the map walks
// through; every stage needs a caption.
const PoliceMapStageCount = 14

// LocaleContent is the complete, read-only tree for one language version of
// the article.
type LocaleContent struct {
	Locale         locale.Locale `json:"locale"`
	Tag            string        `json:"tag"`
	MapAccessToken string        `json:"mapAccessToken"`
	Meta           Meta          `json:"meta"`
	Article        []Block       `json:"articleContent"`

	Documents    *DocumentsSection   `json:"documentsSection"`
	Methodology  *MethodologySection `json:"methodologySection"`
	Credits      *Credits            `json:"credits"`
	Headline     *Headline           `json:"headline"`
	PoliceMap    *PoliceMap          `json:"policeMap"`
	Transfers    *Transfers          `json:"transfers"`
	Audio        *AudioSection       `json:"audioSection"`
	OfficerTable *OfficerTable       `json:"officerTable"`
	Absconded    *Absconded          `json:"absconded"`
}

type Meta struct {
	Title                  string `json:"title" yaml:"title"`
	Description            string `json:"description" yaml:"description"`
	Author                 string `json:"author" yaml:"author"`
	Keywords               string `json:"keywords" yaml:"keywords"`
	StructuredDataHeadline string `json:"headlineForStructuredData" yaml:"structuredDataHeadline"`
}

// DocumentsSection pairs FIR scan captions with their alt texts by index.
type DocumentsSection struct {
	Title    string   `json:"title" yaml:"title"`
	Captions []string `json:"captions" yaml:"captions"`
	AltTexts []string `json:"altTexts" yaml:"altTexts"`
}

type MethodologySection struct {
	Title        string       `json:"title" yaml:"title"`
	Paragraphs   []string     `json:"paragraphs" yaml:"paragraphs"`
	ClusterTable ClusterTable `json:"clusterTable" yaml:"clusterTable"`
}

// ClusterTable maps transfer destinations (cells) to destination clusters
// (column headers). Empty cells pad ragged columns.
type ClusterTable struct {
	Headers []string   `json:"headers" yaml:"headers"`
	Rows    [][]string `json:"rows" yaml:"rows"`
}

type Credits struct {
	Line string `json:"line" yaml:"line"`
}

type Headline struct {
	Line1           string `json:"line1" yaml:"line1"`
	Line2           string `json:"line2" yaml:"line2"`
	Line3           string `json:"line3" yaml:"line3"`
	DatePublished   string `json:"datePublished" yaml:"datePublished"`
	DateUpdated     string `json:"dateUpdated" yaml:"dateUpdated"`
	CreditReporting string `json:"creditReporting" yaml:"creditReporting"`
	CreditDataViz   string `json:"creditDataViz" yaml:"creditDataViz"`
	CreditGraphics  string `json:"creditGraphics" yaml:"creditGraphics"`
	CreditEditing   string `json:"creditEditing" yaml:"creditEditing"`
	NameReporting   string `json:"nameReporting" yaml:"nameReporting"`
	NameDataViz     string `json:"nameDataViz" yaml:"nameDataViz"`
	NameGraphics    string `json:"nameGraphics" yaml:"nameGraphics"`
	NameEditing     string `json:"nameEditing" yaml:"nameEditing"`
}

type PoliceMap struct {
	// ScrollyTextboxes is keyed by stage ordinal "1".."PoliceMapStageCount".
	ScrollyTextboxes map[string]string `json:"scrollyTextboxes" yaml:"scrollyTextboxes"`
	ThanaNames       map[string]string `json:"thanaNames" yaml:"thanaNames"`
	UIText           PoliceMapUIText   `json:"uiText" yaml:"uiText"`
	FinalNotes       []string          `json:"finalNotes" yaml:"finalNotes"`
}

type PoliceMapUIText struct {
	ThanaHeader string            `json:"thanaHeader" yaml:"thanaHeader"`
	TotalLabel  string            `json:"totalLabel" yaml:"totalLabel"`
	SeeDetail   string            `json:"seeDetail" yaml:"seeDetail"`
	AmmoLabels  map[string]string `json:"ammoLabels" yaml:"ammoLabels"`
	MonthNames  []string          `json:"monthNames" yaml:"monthNames"`
}

// ThanaLabel returns the display label for a police station key, falling back
// to the raw key when the locale has no entry.
func (pm *PoliceMap) ThanaLabel(key string) string {
	if label, ok := pm.ThanaNames[key]; ok && label != "" {
		return label
	}
	return key
}

// AmmoLabel returns the legend label for an ammunition key, falling back to
// the raw key.
func (pm *PoliceMap) AmmoLabel(key string) string {
	if label, ok := pm.UIText.AmmoLabels[key]; ok && label != "" {
		return label
	}
	return key
}

type Transfers struct {
	ScrollySteps  []TransferScrollyStep `json:"scrollySteps" yaml:"scrollySteps"`
	TooltipLabels map[string]string     `json:"tooltipLabels" yaml:"tooltipLabels"`
	ClusterLabels map[string]string     `json:"clusterLabels" yaml:"clusterLabels"`
}

// TransferScrollyStep drives one stage of the transfer chart. Description may
// carry inline styled markup.
type TransferScrollyStep struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
}

type AudioSection struct {
	Heading        string      `json:"heading" yaml:"heading"`
	Text           string      `json:"text" yaml:"text"`
	Paragraphs     []string    `json:"paragraphs,omitempty" yaml:"paragraphs,omitempty"`
	AccordionTitle string      `json:"accordionTitle" yaml:"accordionTitle"`
	Items          []AudioItem `json:"items" yaml:"items"`
}

// AudioItem is one accordion entry; EmbedSrc is empty when no player exists.
type AudioItem struct {
	Headline string `json:"headline" yaml:"headline"`
	Text     string `json:"text" yaml:"text"`
	EmbedSrc string `json:"embedSrc,omitempty" yaml:"embedSrc,omitempty"`
}

func (a AudioItem) HasPlayer() bool {
	return a.EmbedSrc != ""
}

type OfficerTable struct {
	Data   []OfficerRecord    `json:"data" yaml:"-"`
	UIText OfficerTableUIText `json:"uiText" yaml:"uiText"`
}

type OfficerTableUIText struct {
	NameHeader     string `json:"nameHeader" yaml:"nameHeader"`
	AreaHeader     string `json:"areaHeader" yaml:"areaHeader"`
	RankHeader     string `json:"rankHeader" yaml:"rankHeader"`
	StatusHeader   string `json:"statusHeader" yaml:"statusHeader"`
	DateHeader     string `json:"dateHeader" yaml:"dateHeader"`
	ShowLess       string `json:"showLess" yaml:"showLess"`
	ShowMorePrefix string `json:"showMorePrefix" yaml:"showMorePrefix"`
	ShowMoreSuffix string `json:"showMoreSuffix" yaml:"showMoreSuffix"`
	Caption        string `json:"caption" yaml:"caption"`
}

type Absconded struct {
	Data              []AbscondedRecord `json:"data" yaml:"-"`
	Title             string            `json:"title" yaml:"title"`
	Caption           string            `json:"caption" yaml:"caption"`
	LegendTopRanked   string            `json:"legendTopRanked" yaml:"legendTopRanked"`
	LegendOtherRanks  string            `json:"legendOtherRanks" yaml:"legendOtherRanks"`
	AnnotationText    string            `json:"annotationText" yaml:"annotationText"`
	Footnote          string            `json:"footnote" yaml:"footnote"`
	TargetOfficerName string            `json:"targetOfficerName" yaml:"targetOfficerName"`
	TooltipRank       string            `json:"tooltipRank" yaml:"tooltipRank"`
	TooltipDate       string            `json:"tooltipDate" yaml:"tooltipDate"`
	Loading           string            `json:"loading" yaml:"loading"`
	Error             string            `json:"error" yaml:"error"`
	NoData            string            `json:"noData" yaml:"noData"`
	// RankMap translates localized rank titles to the canonical English ones
	// used for tier classification.
	RankMap map[string]string `json:"rankMap,omitempty" yaml:"rankMap,omitempty"`
}
