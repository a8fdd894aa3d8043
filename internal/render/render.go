// Package render turns a FlightBatch into the plain-text alert sent to
// subscribers. One fixed template; styling is not configurable.
package render

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/DeafMist/award-seat-radar/backend/internal/models"
)

const alertTemplate = `✈️ ALERTA DE MILHAS

{{.OriginFlag}} {{.Origin}} ({{.OriginCode}}) → {{.DestFlag}} {{.Destination}} ({{.DestCode}})

🛫 Companhia: {{.Airline}}
🎯 Programa: {{.Program}}
💺 Classe: {{.Cabin}}
💰 Valor: {{.Cost}}{{if .CostRange}} ({{.CostRange}}){{end}}

🗓 Datas de ida:
{{.OutboundDates}}

🗓 Datas de volta:
{{.InboundDates}}

📝 {{.Notes}}`

var tmpl = template.Must(template.New("alert").Parse(alertTemplate))

type alertView struct {
	models.FlightBatch
	CostRange     string
	OutboundDates string
	InboundDates  string
}

// Alert renders the alert text for one batch. Batches that were not yet
// enriched with airport data are enriched here so the header never shows
// empty city names.
func Alert(batch models.FlightBatch) (string, error) {
	if batch.Origin == "" || batch.Destination == "" {
		batch.EnrichAirportData()
	}

	view := alertView{
		FlightBatch:   batch,
		OutboundDates: batch.FormattedOutboundDates(),
		InboundDates:  batch.FormattedInboundDates(),
	}
	if batch.MinCost != nil && batch.MaxCost != nil {
		view.CostRange = fmt.Sprintf("min: %d / max: %d milhas", *batch.MinCost, *batch.MaxCost)
	}

	var sb strings.Builder
	if err := tmpl.Execute(&sb, view); err != nil {
		return "", fmt.Errorf("render alert: %w", err)
	}
	return sb.String(), nil
}
