package land

import (
	"fmt"
	"math"
	"sort"
)

// Transaction is one comparable land sale used by the statistical estimator.
type Transaction struct {
	DealAmount float64 `json:"deal_amount_won"`
	AreaM2     float64 `json:"area_m2"`
}

// CompsEstimator estimates from comparable transactions instead of the
// multiplier heuristic: unit price is the median price per m² of the comps,
// and the band widens with how dispersed the comps are.
type CompsEstimator struct {
	comps []Transaction
}

// NewCompsEstimator builds an estimator over the given comparable sales.
// Rows without a positive area or amount are dropped; at least one usable
// comp is required.
func NewCompsEstimator(comps []Transaction) (*CompsEstimator, error) {
	usable := make([]Transaction, 0, len(comps))
	for _, c := range comps {
		if c.AreaM2 > 0 && c.DealAmount > 0 {
			usable = append(usable, c)
		}
	}
	if len(usable) == 0 {
		return nil, fmt.Errorf("%w: at least one comparable transaction is required", ErrInvalidInput)
	}
	return &CompsEstimator{comps: usable}, nil
}

// Estimate prices the parcel at the comps' median unit price. The reported
// multiplier is the implied ratio against the official price, so the result
// reads the same way as the heuristic estimate.
func (e *CompsEstimator) Estimate(p Parcel) (PriceEstimate, error) {
	if err := p.Validate(); err != nil {
		return PriceEstimate{}, err
	}

	unitPrices := make([]float64, 0, len(e.comps))
	for _, c := range e.comps {
		unitPrices = append(unitPrices, c.DealAmount/c.AreaM2)
	}
	sort.Float64s(unitPrices)

	unitPrice := math.Trunc(median(unitPrices))
	totalPrice := math.Trunc(p.AreaM2 * unitPrice)
	spread := bandSpread(unitPrices)

	return PriceEstimate{
		UnitPrice:     unitPrice,
		TotalPrice:    totalPrice,
		Multiplier:    round2(unitPrice / p.OfficialPrice),
		RangeLow:      totalPrice * (1 - spread),
		RangeHigh:     totalPrice * (1 + spread),
		TotalEok:      eok(totalPrice),
		RangeLowEok:   eok(totalPrice * (1 - spread)),
		RangeHighEok:  eok(totalPrice * (1 + spread)),
		UnitManPyeong: math.Trunc(unitPrice * PyeongPerM2 / 10000),
	}, nil
}

func median(sorted []float64) float64 {
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// bandSpread derives the ± band width from the coefficient of variation of
// the comps, clamped to [0.1, 0.25] so a thin sample still yields the
// familiar ±10% band and a noisy one does not explode.
func bandSpread(unitPrices []float64) float64 {
	if len(unitPrices) < 2 {
		return 0.1
	}

	var sum float64
	for _, v := range unitPrices {
		sum += v
	}
	mean := sum / float64(len(unitPrices))
	if mean == 0 {
		return 0.1
	}

	var sq float64
	for _, v := range unitPrices {
		sq += (v - mean) * (v - mean)
	}
	cv := math.Sqrt(sq/float64(len(unitPrices))) / mean

	switch {
	case cv < 0.1:
		return 0.1
	case cv > 0.25:
		return 0.25
	default:
		return cv
	}
}
