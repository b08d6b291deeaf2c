package airlookup

import (
	"embed"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"sscsrobotics/internal/config"
)

//go:embed airlookup.csv
var embedded embed.FS

// BenefitVenues holds the hearing venue names for a postcode, one per benefit
// stream. The dispatcher picks the field matching the case's benefit type.
type BenefitVenues struct {
	PIPVenue string
	ESAVenue string
}

// Service resolves a postcode to its hearing venues.
type Service interface {
	Lookup(postcode string) (BenefitVenues, error)
}

// Table is a Service backed by an in-memory outward-code index.
type Table struct {
	venues   map[string]BenefitVenues
	fallback BenefitVenues
}

// Venue names fall back to the national processing venue when the outward
// code is not in the table.
const fallbackVenue = "Bradford"

// Load builds the lookup table, preferring the configured CSV override and
// falling back to the embedded table.
func Load(cfg *config.Config) (*Table, error) {
	if cfg != nil && cfg.AirLookup.CSVPath != "" {
		file, err := os.Open(cfg.AirLookup.CSVPath)
		if err != nil {
			return nil, fmt.Errorf("open airlookup table: %w", err)
		}
		defer file.Close()
		return Parse(file)
	}

	file, err := embedded.Open("airlookup.csv")
	if err != nil {
		return nil, fmt.Errorf("open embedded airlookup table: %w", err)
	}
	defer file.Close()
	return Parse(file)
}

// Parse reads a venue table from CSV rows of the form
// outward_code,pip_venue,esa_venue. A header row is skipped when present.
func Parse(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 3
	reader.TrimLeadingSpace = true

	caser := cases.Title(language.BritishEnglish)
	venues := make(map[string]BenefitVenues)
	line := 0
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse airlookup table: %w", err)
		}
		line++
		outward := strings.ToUpper(strings.TrimSpace(record[0]))
		if line == 1 && strings.EqualFold(outward, "outward_code") {
			continue
		}
		if outward == "" {
			return nil, fmt.Errorf("airlookup table line %d: empty outward code", line)
		}
		venues[outward] = BenefitVenues{
			PIPVenue: caser.String(strings.ToLower(strings.TrimSpace(record[1]))),
			ESAVenue: caser.String(strings.ToLower(strings.TrimSpace(record[2]))),
		}
	}
	if len(venues) == 0 {
		return nil, errors.New("airlookup table contains no venues")
	}

	return &Table{
		venues:   venues,
		fallback: BenefitVenues{PIPVenue: fallbackVenue, ESAVenue: fallbackVenue},
	}, nil
}

// Lookup resolves the hearing venues for a postcode. Unknown outward codes
// resolve to the fallback venue; an unusable postcode is an error.
func (t *Table) Lookup(postcode string) (BenefitVenues, error) {
	outward, err := outwardCode(postcode)
	if err != nil {
		return BenefitVenues{}, err
	}
	if venues, ok := t.venues[outward]; ok {
		return venues, nil
	}
	return t.fallback, nil
}

// outwardCode extracts the leading postcode district: the part before the
// space, or everything except the final three characters when unspaced.
func outwardCode(postcode string) (string, error) {
	cleaned := strings.ToUpper(strings.TrimSpace(postcode))
	if cleaned == "" {
		return "", errors.New("postcode is empty")
	}
	if idx := strings.IndexAny(cleaned, " \t"); idx > 0 {
		return cleaned[:idx], nil
	}
	if len(cleaned) <= 3 {
		return cleaned, nil
	}
	return strings.TrimSpace(cleaned[:len(cleaned)-3]), nil
}
