package importer_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/DeafMist/award-seat-radar/backend/internal/dates"
	"github.com/DeafMist/award-seat-radar/backend/internal/importer"
)

const sampleBlock = `ROUTE: GRU DOH
AIRLINE: Qatar Airways
PROGRAM: Qatar Privilege Club
COST: 70k-90k
CABIN: Executiva
NOTE: Encontrado via API Seats.aero
DATES_OUT: 2026-06-15=4, 2026-06-20=2
DATES_IN: 2026-07-01=3`

func TestParseBlock(t *testing.T) {
	batch, err := importer.ParseBlock(sampleBlock)
	require.NoError(t, err)

	require.Equal(t, "GRU", batch.OriginCode)
	require.Equal(t, "DOH", batch.DestCode)
	require.Equal(t, "Qatar Airways", batch.Airline)
	require.Equal(t, "Qatar Privilege Club", batch.Program)
	require.Equal(t, "70k-90k", batch.Cost)
	require.Equal(t, "Executiva", batch.Cabin)
	require.NotEmpty(t, batch.ID)

	require.Equal(t, []dates.DateSeat{
		{Date: "2026-06-15", Seats: 4},
		{Date: "2026-06-20", Seats: 2},
	}, batch.DatesOutbound)
	require.Equal(t, []dates.DateSeat{
		{Date: "2026-07-01", Seats: 3},
	}, batch.DatesInbound)
}

func TestParseBlockMonthGrammar(t *testing.T) {
	block := `ROUTE: gru mia
AIRLINE: United
PROGRAM: MileagePlus
COST: 80k
CABIN: Executiva
NOTE: teste
DATES_OUT:
  Mar 2026: 31 (1)
  Abr 2026: 05 (5), 24 (7)
DATES_IN: 2026-05-10=2`

	batch, err := importer.ParseBlock(block)
	require.NoError(t, err)

	require.Equal(t, "GRU", batch.OriginCode)
	require.Equal(t, "MIA", batch.DestCode)
	require.Equal(t, []dates.DateSeat{
		{Date: "2026-03-31", Seats: 1},
		{Date: "2026-04-05", Seats: 5},
		{Date: "2026-04-24", Seats: 7},
	}, batch.DatesOutbound)
}

func TestParseBlockMissingFields(t *testing.T) {
	_, err := importer.ParseBlock("ROUTE: GRU DOH\nAIRLINE: Qatar Airways")
	require.Error(t, err)
	require.Contains(t, err.Error(), "missing required fields")
	require.Contains(t, err.Error(), "PROGRAM")
	require.Contains(t, err.Error(), "DATES_IN")
}

func TestParseBlockBadRoute(t *testing.T) {
	block := `ROUTE: GRU
AIRLINE: Qatar Airways
PROGRAM: Qatar Privilege Club
COST: 70k
CABIN: Executiva
NOTE: x
DATES_OUT: 2026-06-15=4
DATES_IN: 2026-07-01=3`

	_, err := importer.ParseBlock(block)
	require.Error(t, err)
	require.Contains(t, err.Error(), "ROUTE must be exactly two IATA codes")
}

func TestParseBatchMultipleBlocks(t *testing.T) {
	content := sampleBlock + "\n---\n" + sampleBlock + "\n------\n" + sampleBlock

	batches, err := importer.ParseBatch(content)
	require.NoError(t, err)
	require.Len(t, batches, 3)
}

func TestParseBatchReportsBlockOrdinal(t *testing.T) {
	content := sampleBlock + "\n---\nROUTE: GRU DOH\nAIRLINE: Qatar Airways"

	_, err := importer.ParseBatch(content)
	require.Error(t, err)
	require.Contains(t, err.Error(), "block 2:")
}

func TestParseBatchEmptyInput(t *testing.T) {
	_, err := importer.ParseBatch("")
	require.Error(t, err)
	require.Contains(t, err.Error(), "no flight blocks found")

	_, err = importer.ParseBatch("---\n---\n")
	require.Error(t, err)
	require.Contains(t, err.Error(), "no flight blocks found")
}

func TestParseBatchSkipsComments(t *testing.T) {
	content := "# alerta manual\n" + sampleBlock

	batches, err := importer.ParseBatch(content)
	require.NoError(t, err)
	require.Len(t, batches, 1)
}

func TestParseDatesISOList(t *testing.T) {
	out, err := importer.ParseDates("2026-02-15=9, 2026-02-18=4")
	require.NoError(t, err)
	require.Equal(t, []dates.DateSeat{
		{Date: "2026-02-15", Seats: 9},
		{Date: "2026-02-18", Seats: 4},
	}, out)
}

func TestParseDatesISOListErrors(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want string
	}{
		{"missing seats", "2026-02-15", "expected YYYY-MM-DD=N"},
		{"bad date shape", "2026/02/15=3", "expected YYYY-MM-DD"},
		{"bad seat count", "2026-02-15=muitos", "invalid seat count"},
		{"negative seats", "2026-02-15=-2", "cannot be negative"},
		{"only commas", ", ,", "no valid dates found"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := importer.ParseDates(tc.raw)
			require.Error(t, err)
			require.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestParseDatesMonthGrammar(t *testing.T) {
	out, err := importer.ParseDates("Mai 2026: 01 (9), 05 (7)\nJun 2026: 10 (2)")
	require.NoError(t, err)
	require.Equal(t, []dates.DateSeat{
		{Date: "2026-05-01", Seats: 9},
		{Date: "2026-05-05", Seats: 7},
		{Date: "2026-06-10", Seats: 2},
	}, out)
}

func TestParseDatesMonthGrammarSingleLine(t *testing.T) {
	// No newline, but the month pattern still selects the month grammar.
	out, err := importer.ParseDates("Dez 2026: 24 (1)")
	require.NoError(t, err)
	require.Equal(t, []dates.DateSeat{{Date: "2026-12-24", Seats: 1}}, out)
}

func TestParseDatesEnglishMonths(t *testing.T) {
	out, err := importer.ParseDates("May 2026: 01 (2)\nAug 2026: 15 (3)")
	require.NoError(t, err)
	require.Equal(t, []dates.DateSeat{
		{Date: "2026-05-01", Seats: 2},
		{Date: "2026-08-15", Seats: 3},
	}, out)
}

func TestParseDatesUnknownMonth(t *testing.T) {
	_, err := importer.ParseDates("Xyz 2026: 01 (2)")
	require.Error(t, err)
	require.Contains(t, err.Error(), `unknown month abbreviation "Xyz"`)
}

func TestParseDatesMonthLineWithoutDays(t *testing.T) {
	_, err := importer.ParseDates("Mai 2026: sem assentos")
	require.Error(t, err)
	require.Contains(t, err.Error(), "no day entries")
}
