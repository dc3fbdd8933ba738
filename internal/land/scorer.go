package land

import "strings"

// DevelopmentScore is the outcome of the weighted development-potential
// evaluation. Factors keep the order the checks ran in so two runs over the
// same parcel produce identical output.
type DevelopmentScore struct {
	Score   int      `json:"score"`
	Grade   string   `json:"grade"`
	Factors []string `json:"factors"`
}

// ScoreDevelopment rates the development potential of a parcel on a 25–100
// scale. Four independent evaluations contribute: area tier (max 20), zone
// category (max 30), road access (max 20) and transit proximity (max 30).
func ScoreDevelopment(p Parcel) (DevelopmentScore, error) {
	if err := p.Validate(); err != nil {
		return DevelopmentScore{}, err
	}

	score := 0
	factors := make([]string, 0, 4)

	switch pyeong := p.AreaPyeong(); {
	case pyeong >= 300:
		score += 20
		factors = append(factors, "large-scale development possible (300+ pyeong)")
	case pyeong >= 100:
		score += 15
		factors = append(factors, "mid-scale development possible (100+ pyeong)")
	case pyeong >= 50:
		score += 10
		factors = append(factors, "small-scale development possible (50+ pyeong)")
	default:
		score += 5
		factors = append(factors, "undersized parcel (below 50 pyeong)")
	}

	switch {
	case strings.Contains(p.ZoneType, "commercial"):
		score += 30
		factors = append(factors, "commercial zone - strong profit potential")
	case strings.Contains(p.ZoneType, "residential"):
		score += 25
		factors = append(factors, "residential zone - stable demand")
	case strings.Contains(p.ZoneType, "industrial"):
		score += 20
		factors = append(factors, "industrial zone - easy to lease or sell")
	default:
		score += 10
		factors = append(factors, "green-belt or other zone - development restricted")
	}

	if p.HasRoadAccess {
		score += 20
		factors = append(factors, "road access - buildable")
	} else {
		score += 5
		factors = append(factors, "possible landlocked parcel - access route must be verified")
	}

	switch {
	case p.StationKm <= 0.5:
		score += 30
		factors = append(factors, "station area (within 500m) - prime location")
	case p.StationKm <= 1.0:
		score += 25
		factors = append(factors, "near station (within 1km) - excellent location")
	case p.StationKm <= 2.0:
		score += 15
		factors = append(factors, "station walkable (within 2km)")
	default:
		score += 5
		factors = append(factors, "far from station - weak transit access")
	}

	return DevelopmentScore{
		Score:   score,
		Grade:   developmentGrade(score),
		Factors: factors,
	}, nil
}

// developmentGrade maps a score to its letter grade with inclusive lower
// bounds: S ≥ 85, A ≥ 70, B ≥ 55, C ≥ 40, otherwise D.
func developmentGrade(score int) string {
	switch {
	case score >= 85:
		return "S"
	case score >= 70:
		return "A"
	case score >= 55:
		return "B"
	case score >= 40:
		return "C"
	default:
		return "D"
	}
}

// Envelope describes the maximum building footprint and total floor area the
// zone regulations permit on a parcel.
type Envelope struct {
	ZoneType         string  `json:"zone_type"`
	CoveragePct      int     `json:"coverage_ratio_pct"`
	FloorAreaPct     int     `json:"floor_area_ratio_pct"`
	FootprintM2      float64 `json:"max_footprint_m2"`
	FootprintPyeong  float64 `json:"max_footprint_pyeong"`
	TotalFloorM2     float64 `json:"max_total_floor_m2"`
	TotalFloorPyeong float64 `json:"max_total_floor_pyeong"`
}

// BuildingEnvelope computes the buildable figures from the regulation table.
// Unknown zone types resolve to the default ratios.
func BuildingEnvelope(p Parcel) (Envelope, error) {
	if err := p.Validate(); err != nil {
		return Envelope{}, err
	}

	entry := Regulations(p.ZoneType)
	footprint := p.AreaM2 * float64(entry.CoveragePct) / 100
	totalFloor := p.AreaM2 * float64(entry.FloorAreaPct) / 100

	return Envelope{
		ZoneType:         p.ZoneType,
		CoveragePct:      entry.CoveragePct,
		FloorAreaPct:     entry.FloorAreaPct,
		FootprintM2:      round2(footprint),
		FootprintPyeong:  round2(footprint * PyeongPerM2),
		TotalFloorM2:     round2(totalFloor),
		TotalFloorPyeong: round2(totalFloor * PyeongPerM2),
	}, nil
}
