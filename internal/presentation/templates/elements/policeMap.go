package elements

import (
	"sort"
	"strconv"
	"strings"

	"github.com/dailystar-data/police-story-go/internal/domain/entities/content"
	"github.com/dailystar-data/police-story-go/internal/domain/entities/locale"
)

var policeMapTmpl = parse("policeMap",
	`<section id="police-map" class="component police-map" data-map-token="{{.Token}}" data-months="{{.Months}}">`+
		`<div class="map-canvas" aria-hidden="true"></div>`+
		`<div class="scrolly">{{range .Stages}}<div class="scrolly-step" data-stage="{{.Index}}"><p>{{trusted .Text}}</p></div>{{end}}</div>`+
		`<aside class="map-legend"><ul class="ammo-legend">{{range .Ammo}}<li data-ammo="{{.Key}}">{{.Label}}</li>{{end}}</ul>`+
		`<h3>{{.UI.ThanaHeader}}</h3><ul class="thana-legend">{{range .Thanas}}<li data-thana="{{.Key}}">{{.Label}}</li>{{end}}</ul>`+
		`<p class="map-total">{{.UI.TotalLabel}} {{num (len .Thanas) .Locale}}</p></aside>`+
		`{{if .Notes}}<div class="map-notes">{{range .Notes}}<p>{{.}}</p>{{end}}</div>{{end}}`+
		`</section>`,
)

type mapStage struct {
	Index int
	Text  string
}

type labelledKey struct {
	Key   string
	Label string
}

type policeMapData struct {
	Locale locale.Locale
	Token  string
	Months string
	Stages []mapStage
	Ammo   []labelledKey
	Thanas []labelledKey
	UI     content.PoliceMapUIText
	Notes  []string
}

// RenderPoliceMap renders the stage captions in order. Stages without a
// caption are left out. The legend lists thanas by key with labels and the
// count in l.
func RenderPoliceMap(pm *content.PoliceMap, token string, l locale.Locale) string {
	data := policeMapData{Locale: l, Token: token, UI: pm.UIText, Notes: pm.FinalNotes}

	for i := 1; i <= content.PoliceMapStageCount; i++ {
		if text, ok := pm.ScrollyTextboxes[strconv.Itoa(i)]; ok && text != "" {
			data.Stages = append(data.Stages, mapStage{Index: i, Text: text})
		}
	}

	for _, k := range sortedKeys(pm.UIText.AmmoLabels) {
		data.Ammo = append(data.Ammo, labelledKey{Key: k, Label: pm.AmmoLabel(k)})
	}
	for _, k := range sortedKeys(pm.ThanaNames) {
		data.Thanas = append(data.Thanas, labelledKey{Key: k, Label: pm.ThanaLabel(k)})
	}

	data.Months = strings.Join(pm.UIText.MonthNames, ",")

	return execute(policeMapTmpl, data)
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
