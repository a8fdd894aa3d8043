package models

import (
	"github.com/DeafMist/award-seat-radar/backend/internal/airports"
	"github.com/DeafMist/award-seat-radar/backend/internal/dates"
)

// FlightBatch is the aggregated alert unit for one route/airline/program
// combination: every surviving travel date plus the cost summary.
type FlightBatch struct {
	ID            string           `json:"id"`
	Origin        string           `json:"origin"`
	OriginCode    string           `json:"origin_code"`
	OriginFlag    string           `json:"origin_flag"`
	Destination   string           `json:"destination"`
	DestCode      string           `json:"dest_code"`
	DestFlag      string           `json:"dest_flag"`
	Airline       string           `json:"airline"`
	Program       string           `json:"program"`
	Cost          string           `json:"cost"`
	Cabin         string           `json:"cabin"`
	MinCost       *int             `json:"min_cost,omitempty"`
	MaxCost       *int             `json:"max_cost,omitempty"`
	DatesOutbound []dates.DateSeat `json:"dates_outbound"`
	DatesInbound  []dates.DateSeat `json:"dates_inbound"`
	Notes         string           `json:"notes"`
}

// EnrichAirportData fills city names and flags from the airport table.
// Codes absent from the table keep the raw IATA code and a generic flag.
func (b *FlightBatch) EnrichAirportData() {
	origin := airports.Lookup(b.OriginCode)
	b.Origin = origin.City
	b.OriginFlag = origin.Flag

	dest := airports.Lookup(b.DestCode)
	b.Destination = dest.City
	b.DestFlag = dest.Flag
}

// OutboundBuckets returns the outbound dates grouped by calendar month,
// earliest month first.
func (b *FlightBatch) OutboundBuckets() []dates.Bucket {
	return dates.BucketByMonth(b.DatesOutbound)
}

// InboundBuckets returns the inbound dates grouped by calendar month.
func (b *FlightBatch) InboundBuckets() []dates.Bucket {
	return dates.BucketByMonth(b.DatesInbound)
}

// FormattedOutboundDates renders outbound dates as one alert line.
func (b *FlightBatch) FormattedOutboundDates() string {
	return dates.FormatByMonth(b.DatesOutbound)
}

// FormattedInboundDates renders inbound dates as one alert line.
func (b *FlightBatch) FormattedInboundDates() string {
	return dates.FormatByMonth(b.DatesInbound)
}
