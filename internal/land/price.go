package land

import (
	"math"
	"strings"
)

// PriceEstimate is a market price band derived from the official price.
// Raw won amounts sit next to their 100-million-won (eok) display values.
type PriceEstimate struct {
	UnitPrice     float64 `json:"unit_price_won_m2"` // integer-valued won per m²
	TotalPrice    float64 `json:"total_price_won"`
	Multiplier    float64 `json:"multiplier"`
	RangeLow      float64 `json:"range_low_won"`
	RangeHigh     float64 `json:"range_high_won"`
	TotalEok      float64 `json:"total_price_eok"`
	RangeLowEok   float64 `json:"range_low_eok"`
	RangeHighEok  float64 `json:"range_high_eok"`
	UnitManPyeong float64 `json:"unit_price_man_won_pyeong"` // 10k won per pyeong, for listings
}

// Estimator produces a price estimate for a parcel. The heuristic multiplier
// model is the default; a statistical predictor can be swapped in behind the
// same contract without touching the rest of the engine.
type Estimator interface {
	Estimate(p Parcel) (PriceEstimate, error)
}

// HeuristicEstimator models the market price as the official price times a
// zone- and location-derived multiplier. Market prices typically run 1.2–2.0
// times the official assessment.
type HeuristicEstimator struct{}

// Estimate applies the multiplier model. The zone sets the base value
// (first matching keyword wins), transit proximity and road access stack
// additive bonuses on top, and the unit price truncates to integer won.
func (HeuristicEstimator) Estimate(p Parcel) (PriceEstimate, error) {
	if err := p.Validate(); err != nil {
		return PriceEstimate{}, err
	}

	multiplier := 1.5
	switch {
	case strings.Contains(p.ZoneType, "commercial"):
		multiplier = 1.8
	case strings.Contains(p.ZoneType, "quasi-residential"):
		multiplier = 1.7
	case strings.Contains(p.ZoneType, "residential"):
		multiplier = 1.6
	case strings.Contains(p.ZoneType, "green-belt"):
		multiplier = 1.3
	}

	if p.StationKm <= 0.5 {
		multiplier += 0.3
	} else if p.StationKm <= 1.0 {
		multiplier += 0.2
	}

	if p.HasRoadAccess {
		multiplier += 0.1
	}

	unitPrice := math.Trunc(p.OfficialPrice * multiplier)
	totalPrice := math.Trunc(p.AreaM2 * unitPrice)

	return PriceEstimate{
		UnitPrice:     unitPrice,
		TotalPrice:    totalPrice,
		Multiplier:    round2(multiplier),
		RangeLow:      totalPrice * 0.9,
		RangeHigh:     totalPrice * 1.1,
		TotalEok:      eok(totalPrice),
		RangeLowEok:   eok(totalPrice * 0.9),
		RangeHighEok:  eok(totalPrice * 1.1),
		UnitManPyeong: math.Trunc(unitPrice * PyeongPerM2 / 10000),
	}, nil
}
