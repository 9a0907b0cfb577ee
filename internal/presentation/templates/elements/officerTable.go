package elements

import (
	"github.com/dailystar-data/police-story-go/internal/domain/entities/content"
	"github.com/dailystar-data/police-story-go/internal/domain/entities/locale"
	"github.com/dailystar-data/police-story-go/internal/domain/localize"
)

var officerTableTmpl = parse("officerTable",
	`<section id="officer-table" class="component officer-table">`+
		`<table><caption>{{.UI.Caption}}</caption>`+
		`<thead><tr><th>{{.UI.NameHeader}}</th><th>{{.UI.AreaHeader}}</th><th>{{.UI.RankHeader}}</th><th>{{.UI.StatusHeader}}</th><th>{{.UI.DateHeader}}</th></tr></thead>`+
		`<tbody>{{range .Rows}}<tr id="officer-{{.ID}}" data-status="{{.Status}}"{{if .Hidden}} hidden{{end}}>`+
		`<td>{{.Name}}</td><td>{{.Area}}</td><td>{{.RankAndZone}}</td><td>{{.Status}}</td><td>{{.Date}}</td></tr>{{end}}</tbody></table>`+
		`{{if .ShowMore}}<button type="button" class="show-more" data-show-less="{{.UI.ShowLess}}">{{.ShowMore}}</button>{{end}}`+
		`</section>`,
)

type officerRow struct {
	ID          string
	Name        string
	Area        string
	RankAndZone string
	Status      content.OfficerStatus
	Date        string
	Hidden      bool
}

type officerTableData struct {
	UI       content.OfficerTableUIText
	Rows     []officerRow
	ShowMore string
}

// RenderOfficerTable renders every row and hides those past visible. The
// show-more label is supplied by the caller.
func RenderOfficerTable(table *content.OfficerTable, visible int, showMore string, l locale.Locale) string {
	data := officerTableData{UI: table.UIText, ShowMore: showMore}
	for i, rec := range table.Data {
		data.Rows = append(data.Rows, officerRow{
			ID:          rec.TableRowID,
			Name:        rec.Name,
			Area:        rec.Area,
			RankAndZone: rec.RankAndZone,
			Status:      rec.Status,
			Date:        localize.FormatDateString(rec.Date, l),
			Hidden:      i >= visible,
		})
	}
	return execute(officerTableTmpl, data)
}
