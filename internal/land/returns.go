package land

import (
	"fmt"
	"math"
)

// Fixed assumptions of the holding simulation. Conservative figures: land
// appreciation compounds at 5% a year, property tax runs at 0.3% of the
// official value, and capital gains are taxed at a flat 30%.
const (
	annualAppreciation  = 0.05
	annualTaxRate       = 0.003
	capitalGainsTaxRate = 0.30
)

// ReturnProjection is the outcome of a multi-year holding simulation. Raw
// won values carry the exact arithmetic; the eok/man-won fields are the
// rounded display scale.
type ReturnProjection struct {
	PurchasePrice    float64 `json:"purchase_price_won"`
	HoldYears        int     `json:"hold_years"`
	FutureValue      float64 `json:"future_value_won"`
	CapitalGain      float64 `json:"capital_gain_won"`
	TotalTaxPaid     float64 `json:"total_tax_paid_won"`
	CapitalGainTax   float64 `json:"capital_gain_tax_won"`
	NetProfit        float64 `json:"net_profit_won"`
	ROIPct           float64 `json:"roi_pct"`
	AnnualizedROIPct float64 `json:"annualized_roi_pct"`

	PurchaseEok       float64 `json:"purchase_price_eok"`
	FutureValueEok    float64 `json:"future_value_eok"`
	CapitalGainEok    float64 `json:"capital_gain_eok"`
	CapitalGainTaxEok float64 `json:"capital_gain_tax_eok"`
	NetProfitEok      float64 `json:"net_profit_eok"`
	TotalTaxPaidMan   float64 `json:"total_tax_paid_man_won"` // 10k won units
}

// SimulateReturn projects the return of buying the parcel at purchasePrice
// and holding it for holdYears. The annual property tax is charged on the
// parcel's total official value, not the purchase price, and capital-gains
// tax applies to positive gains only.
func SimulateReturn(purchasePrice float64, p Parcel, holdYears int) (ReturnProjection, error) {
	if purchasePrice <= 0 {
		return ReturnProjection{}, fmt.Errorf("%w: purchase price must be positive, got %g", ErrInvalidInput, purchasePrice)
	}
	if holdYears <= 0 {
		return ReturnProjection{}, fmt.Errorf("%w: hold years must be positive, got %d", ErrInvalidInput, holdYears)
	}
	if err := p.Validate(); err != nil {
		return ReturnProjection{}, err
	}

	futureValue := purchasePrice * math.Pow(1+annualAppreciation, float64(holdYears))
	annualTax := p.TotalOfficialValue() * annualTaxRate
	totalTaxPaid := annualTax * float64(holdYears)

	capitalGain := futureValue - purchasePrice
	capitalGainTax := 0.0
	if capitalGain > 0 {
		capitalGainTax = capitalGain * capitalGainsTaxRate
	}

	netProfit := capitalGain - totalTaxPaid - capitalGainTax
	roi := netProfit / purchasePrice * 100

	return ReturnProjection{
		PurchasePrice:    purchasePrice,
		HoldYears:        holdYears,
		FutureValue:      futureValue,
		CapitalGain:      capitalGain,
		TotalTaxPaid:     totalTaxPaid,
		CapitalGainTax:   capitalGainTax,
		NetProfit:        netProfit,
		ROIPct:           roi,
		AnnualizedROIPct: roi / float64(holdYears),

		PurchaseEok:       eok(purchasePrice),
		FutureValueEok:    eok(futureValue),
		CapitalGainEok:    eok(capitalGain),
		CapitalGainTaxEok: eok(capitalGainTax),
		NetProfitEok:      eok(netProfit),
		TotalTaxPaidMan:   math.Round(totalTaxPaid / 10000),
	}, nil
}
