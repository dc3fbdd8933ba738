package land

import (
	"fmt"
	"math"
)

// PyeongPerM2 converts square meters to pyeong, the traditional unit still
// used in Korean land listings.
const PyeongPerM2 = 0.3025

// LandCategory is the cadastral category (jimok) of a parcel.
type LandCategory string

const (
	CategoryResidentialLot LandCategory = "residential-lot"
	CategoryDryField       LandCategory = "dry-field"
	CategoryPaddy          LandCategory = "paddy"
	CategoryOrchard        LandCategory = "orchard"
	CategoryForestLand     LandCategory = "forest-land"
	CategoryPastureLot     LandCategory = "pasture-lot"
	CategoryFactoryLot     LandCategory = "factory-lot"
	CategorySchoolLot      LandCategory = "school-lot"
	CategoryParkingLot     LandCategory = "parking-lot"
	CategoryGasStationLot  LandCategory = "gas-station-lot"
)

// Planning-zone types. Scoring and price estimation match on the keyword
// substrings below ("commercial", "residential", ...), so unknown zone names
// still land on a sensible branch instead of failing.
const (
	ZoneExclusiveResidential1  = "first-class exclusive residential"
	ZoneExclusiveResidential2  = "second-class exclusive residential"
	ZoneGeneralResidential1    = "first-class general residential"
	ZoneGeneralResidential2    = "second-class general residential"
	ZoneGeneralResidential3    = "third-class general residential"
	ZoneQuasiResidential       = "quasi-residential"
	ZoneCentralCommercial      = "central commercial"
	ZoneGeneralCommercial      = "general commercial"
	ZoneNeighborhoodCommercial = "neighborhood commercial"
	ZoneGeneralIndustrial      = "general industrial"
	ZoneQuasiIndustrial        = "quasi-industrial"
	ZoneNaturalGreenBelt       = "natural green-belt"
	ZoneProductionGreenBelt    = "production green-belt"
	ZoneConservationGreenBelt  = "conservation green-belt"
)

// Parcel is the immutable input record for one land evaluation. Validation
// and normalization of raw uploads happen in the loader; the engine only
// rejects values it cannot produce meaningful numbers from.
type Parcel struct {
	Address         string       `json:"address"`
	LandCategory    LandCategory `json:"land_category"`
	AreaM2          float64      `json:"area_m2"`
	OfficialPrice   float64      `json:"official_unit_price"` // won per m², government-assessed
	ZoneType        string       `json:"zone_type"`
	DistrictOverlay string       `json:"district_overlay,omitempty"`
	HasRoadAccess   bool         `json:"has_road_access"`
	StationKm       float64      `json:"distance_to_station_km"`
}

// AreaPyeong returns the parcel area in pyeong, rounded to two decimals.
func (p Parcel) AreaPyeong() float64 {
	return round2(p.AreaM2 * PyeongPerM2)
}

// TotalOfficialValue is the government-assessed value of the whole parcel in
// won, truncated to an integer amount.
func (p Parcel) TotalOfficialValue() float64 {
	return math.Trunc(p.AreaM2 * p.OfficialPrice)
}

// Validate reports whether the parcel carries the positive area and official
// price every evaluator needs.
func (p Parcel) Validate() error {
	if p.AreaM2 <= 0 {
		return fmt.Errorf("%w: area must be positive, got %g m²", ErrInvalidInput, p.AreaM2)
	}
	if p.OfficialPrice <= 0 {
		return fmt.Errorf("%w: official unit price must be positive, got %g won/m²", ErrInvalidInput, p.OfficialPrice)
	}
	return nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// eok converts won to 100-million-won units rounded to two decimals, the
// scale used for human-facing price figures.
func eok(won float64) float64 {
	return round2(won / 1e8)
}
