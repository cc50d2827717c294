package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/cast"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// FallbackAmount is the conservative default returned when no rate row can
// be resolved or a row's amount is unparseable.
const FallbackAmount = 50000

// PlotAreaBands are the five rate-table bands, in ascending order.
var PlotAreaBands = []string{"0-500", "500-2000", "2000-4000", "4000-6500", "6500 and above"}

// RateEntry is one row of the rate table. The JSON keys mirror the source
// spreadsheet's column headers, trailing spaces included; comparisons always
// trim. Amount may be a number, a formatted string like "1,50,000", or the
// "-" not-offered sentinel.
type RateEntry struct {
	Category string `json:"Developer Type "`
	Region   string `json:"Project location "`
	PlotArea string `json:"Plot Area"`
	Service  string `json:"Service"`
	Amount   any    `json:"Amount"`
}

// MatchStage records which tier of the lookup produced a resolved amount.
type MatchStage string

const (
	StageExact    MatchStage = "exact"
	StageRelaxed  MatchStage = "relaxed"
	StageFallback MatchStage = "fallback"
)

// RateMatch is a resolved amount tagged with the stage that produced it.
type RateMatch struct {
	Amount float64
	Stage  MatchStage
}

// LoadRateTable reads a rate table from a JSON file. A missing file yields
// an empty table, in which case every lookup degrades to FallbackAmount.
func LoadRateTable(path string) ([]RateEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read rate table: %w", err)
	}
	var entries []RateEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse rate table %s: %w", path, err)
	}
	return entries, nil
}

// PlotAreaBand maps a plot area in square meters to its band label. The
// partition is total: every area, including negative or zero input, falls in
// exactly one band (upper bounds inclusive).
func PlotAreaBand(area float64) string {
	switch {
	case area <= 500:
		return PlotAreaBands[0]
	case area <= 2000:
		return PlotAreaBands[1]
	case area <= 4000:
		return PlotAreaBands[2]
	case area <= 6500:
		return PlotAreaBands[3]
	default:
		return PlotAreaBands[4]
	}
}

// normalizeCategory title-cases a "category N" token to match the rate
// table's casing. Anything else passes through uninterpreted.
func normalizeCategory(category string) string {
	if strings.HasPrefix(strings.ToLower(category), "category") {
		return cases.Title(language.English).String(strings.ToLower(category))
	}
	return category
}

// ResolveRate finds the amount for one service. The lookup is tiered: an
// exact match on category, region, band and canonical service name; then a
// relaxed match on category and name only (the table is sparse for some
// region/band combinations); then FallbackAmount. The returned stage tag
// exists for audit logging and never changes the numeric outcome.
func (c *Catalog) ResolveRate(rates []RateEntry, category, region string, plotArea float64, serviceName string) RateMatch {
	formattedCategory := normalizeCategory(category)
	band := PlotAreaBand(plotArea)
	canonical := strings.TrimSpace(c.CanonicalName(serviceName))

	for _, entry := range rates {
		if entry.Category == formattedCategory &&
			entry.Region == region &&
			entry.PlotArea == band &&
			strings.TrimSpace(entry.Service) == canonical {
			amount, ok := parseAmount(entry.Amount)
			if !ok {
				amount = FallbackAmount
			}
			return RateMatch{Amount: amount, Stage: StageExact}
		}
	}

	for _, entry := range rates {
		if entry.Category == formattedCategory &&
			strings.TrimSpace(entry.Service) == canonical {
			amount, ok := parseAmount(entry.Amount)
			if !ok {
				// A junk amount at the relaxed tier keeps scanning.
				continue
			}
			return RateMatch{Amount: amount, Stage: StageRelaxed}
		}
	}

	return RateMatch{Amount: FallbackAmount, Stage: StageFallback}
}

// parseAmount interprets a rate-table amount cell. Blank or "-" means the
// service is not offered for that row and prices at zero. The second return
// is false when the cell is present but unparseable.
func parseAmount(v any) (float64, bool) {
	switch amount := v.(type) {
	case string:
		trimmed := strings.TrimSpace(amount)
		if trimmed == "" || trimmed == "-" {
			return 0, true
		}
		parsed, err := cast.ToFloat64E(strings.ReplaceAll(trimmed, ",", ""))
		if err != nil {
			return 0, false
		}
		return parsed, true
	case nil:
		return 0, false
	default:
		parsed, err := cast.ToFloat64E(amount)
		if err != nil {
			return 0, false
		}
		return parsed, true
	}
}
