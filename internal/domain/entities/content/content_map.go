package content

import "strconv"

// ContentMapItem is one entry of the article outline: a section heading or a
// mounted component, with its block position.
type ContentMapItem struct {
	ID    string         `json:"id"`
	Title string         `json:"title"`
	Type  BlockKind      `json:"type"`
	Index int            `json:"index"`
	Extra map[string]any `json:"extra,omitempty"`
}

// ContentMap builds the outline of the article. Component items record the
// heading they sit under so navigation can group them.
func (lc *LocaleContent) ContentMap() []ContentMapItem {
	items := make([]ContentMapItem, 0)
	section := ""
	for i, b := range lc.Article {
		switch v := b.(type) {
		case Heading:
			section = v.Text
			items = append(items, ContentMapItem{
				ID:    "section-" + strconv.Itoa(i),
				Title: v.Text,
				Type:  KindHeading,
				Index: i,
			})
		case ComponentReference:
			items = append(items, ContentMapItem{
				ID:    "component-" + string(v.Name),
				Title: string(v.Name),
				Type:  KindComponent,
				Index: i,
				Extra: map[string]any{"section": section},
			})
		}
	}
	return items
}
