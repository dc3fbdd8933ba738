// Package loader reads parcel batches, comparable sales and buyer profiles
// from the formats brokers actually deliver them in. It normalizes and
// filters rows here so the evaluation engine only ever sees clean structs.
package loader

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"

	"github.com/spigell/land-advisor/internal/land"
	"github.com/spigell/land-advisor/internal/match"
)

// csvColumns is the required header of a parcel CSV, in any order.
var csvColumns = []string{
	"address",
	"land_category",
	"area_m2",
	"official_unit_price",
	"zone_type",
	"has_road_access",
	"distance_to_station_km",
}

// ParcelsFromFile reads a parcel batch from a .json or .csv file. Rows that
// cannot be evaluated are skipped, not fatal; the returned slice of skip
// reasons lets the caller report them.
func ParcelsFromFile(path string) ([]land.Parcel, []string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading parcels file: %w", err)
	}

	var parcels []land.Parcel
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := json.Unmarshal(data, &parcels); err != nil {
			return nil, nil, fmt.Errorf("parsing parcels json: %w", err)
		}
	case ".csv":
		parcels, err = parseParcelCSV(data)
		if err != nil {
			return nil, nil, fmt.Errorf("parsing parcels csv: %w", err)
		}
	default:
		return nil, nil, fmt.Errorf("%w: unsupported parcels file extension %q", land.ErrInvalidInput, filepath.Ext(path))
	}

	var usable []land.Parcel
	var skipped []string
	for i, p := range parcels {
		if strings.TrimSpace(p.Address) == "" {
			skipped = append(skipped, fmt.Sprintf("row %d: missing address", i+1))
			continue
		}
		if err := p.Validate(); err != nil {
			skipped = append(skipped, fmt.Sprintf("row %d (%s): %v", i+1, p.Address, err))
			continue
		}
		usable = append(usable, p)
	}
	return usable, skipped, nil
}

func parseParcelCSV(data []byte) ([]land.Parcel, error) {
	reader := csv.NewReader(strings.NewReader(string(data)))
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("empty file")
	}

	index := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		index[strings.TrimSpace(strings.ToLower(name))] = i
	}
	for _, column := range csvColumns {
		if _, ok := index[column]; !ok {
			return nil, fmt.Errorf("missing column %q", column)
		}
	}

	field := func(record []string, column string) string {
		return strings.TrimSpace(record[index[column]])
	}

	parcels := make([]land.Parcel, 0, len(records)-1)
	for _, record := range records[1:] {
		area, _ := strconv.ParseFloat(field(record, "area_m2"), 64)
		price, _ := strconv.ParseFloat(field(record, "official_unit_price"), 64)
		station, _ := strconv.ParseFloat(field(record, "distance_to_station_km"), 64)
		road, _ := strconv.ParseBool(field(record, "has_road_access"))

		p := land.Parcel{
			Address:       field(record, "address"),
			LandCategory:  land.LandCategory(field(record, "land_category")),
			AreaM2:        area,
			OfficialPrice: price,
			ZoneType:      field(record, "zone_type"),
			HasRoadAccess: road,
			StationKm:     station,
		}
		if i, ok := index["district_overlay"]; ok && i < len(record) {
			p.DistrictOverlay = strings.TrimSpace(record[i])
		}
		parcels = append(parcels, p)
	}
	return parcels, nil
}

// TransactionsFromFile reads comparable sales for the comps estimator from a
// JSON array of {deal_amount, area_m2} records.
func TransactionsFromFile(path string) ([]land.Transaction, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading comps file: %w", err)
	}

	var comps []land.Transaction
	if err := json.Unmarshal(data, &comps); err != nil {
		return nil, fmt.Errorf("parsing comps json: %w", err)
	}
	return comps, nil
}

// ProfileFromMap decodes a buyer profile from loosely-typed config data, the
// shape viper hands back for a config subsection. String budgets and the like
// are coerced rather than rejected.
func ProfileFromMap(raw map[string]any) (match.BuyerProfile, error) {
	var profile match.BuyerProfile

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &profile,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return match.BuyerProfile{}, fmt.Errorf("building profile decoder: %w", err)
	}
	if err := decoder.Decode(raw); err != nil {
		return match.BuyerProfile{}, fmt.Errorf("decoding buyer profile: %w", err)
	}

	if strings.TrimSpace(profile.Name) == "" {
		return match.BuyerProfile{}, fmt.Errorf("%w: buyer profile needs a name", land.ErrInvalidInput)
	}
	if profile.BudgetMaxEok < profile.BudgetMinEok {
		return match.BuyerProfile{}, fmt.Errorf("%w: budget range is inverted (%g > %g eok)",
			land.ErrInvalidInput, profile.BudgetMinEok, profile.BudgetMaxEok)
	}
	return profile, nil
}
