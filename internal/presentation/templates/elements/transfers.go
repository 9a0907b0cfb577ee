package elements

import (
	"sort"

	"github.com/dailystar-data/police-story-go/internal/domain/entities/content"
	"github.com/dailystar-data/police-story-go/internal/domain/entities/locale"
)

var transfersTmpl = parse("transfers",
	`<section id="transfers" class="component transfers">`+
		`<div class="transfer-chart" aria-hidden="true"></div>`+
		`<div class="scrolly">{{range $i, $s := .Steps}}<div class="scrolly-step" data-step="{{inc $i}}">`+
		`<h3><span class="step-number">{{num (inc $i) $.Locale}}</span> {{$s.Title}}</h3><p>{{trusted $s.Description}}</p></div>{{end}}</div>`+
		`{{if .Clusters}}<dl class="cluster-labels">{{range .Clusters}}<dt data-cluster="{{.Key}}">{{.Label}}</dt>{{end}}</dl>{{end}}`+
		`</section>`,
)

type transfersData struct {
	Steps    []content.TransferScrollyStep
	Clusters []labelledKey
	Locale   locale.Locale
}

// RenderTransfers renders the scrolly steps in authored order.
func RenderTransfers(tr *content.Transfers, l locale.Locale) string {
	data := transfersData{Steps: tr.ScrollySteps, Locale: l}

	keys := make([]string, 0, len(tr.ClusterLabels))
	for k := range tr.ClusterLabels {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		data.Clusters = append(data.Clusters, labelledKey{Key: k, Label: tr.ClusterLabels[k]})
	}
	return execute(transfersTmpl, data)
}
