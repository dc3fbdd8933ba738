package land

import "strings"

// Severity grades how serious a risk entry is.
type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityLow    Severity = "low"
)

// Risk is one qualitative flag raised by the checklist, with a suggested
// mitigation for the buyer.
type Risk struct {
	Category    string   `json:"category"`
	Severity    Severity `json:"severity"`
	Description string   `json:"description"`
	Mitigation  string   `json:"mitigation"`
}

// AssessRisks runs the qualitative checklist over a parcel. The checks are
// independent and always evaluated in the same order, so the output order is
// reproducible. The returned list is never empty: when nothing fires a
// single low-severity sentinel entry takes its place, which lets consumers
// assume at least one entry.
func AssessRisks(p Parcel) []Risk {
	var risks []Risk

	if !p.HasRoadAccess {
		risks = append(risks, Risk{
			Category:    "access route verification required",
			Severity:    SeverityHigh,
			Description: "No road access is recorded. A landlocked parcel cannot be built on, or requires paying for an access route.",
			Mitigation:  "Check the cadastral map and the site, confirm right-of-way arrangements.",
		})
	}

	if strings.Contains(p.ZoneType, "green-belt") {
		risks = append(risks, Risk{
			Category:    "development activity restricted",
			Severity:    SeverityHigh,
			Description: "Green-belt zones carry very low coverage and floor-area ratios, and development permits are hard to obtain.",
			Mitigation:  "Investigate rezoning prospects and whether a district unit plan exists.",
		})
	}

	if p.AreaPyeong() < 50 {
		risks = append(risks, Risk{
			Category:    "undersized parcel",
			Severity:    SeverityMedium,
			Description: "Parcels under 50 pyeong have limited practical use.",
			Mitigation:  "Consider acquiring adjacent land or planning a small-footprint building.",
		})
	}

	if p.StationKm > 2.0 {
		risks = append(risks, Risk{
			Category:    "poor accessibility",
			Severity:    SeverityMedium,
			Description: "The parcel is far from the nearest station, so public-transit access is weak.",
			Mitigation:  "Check bus routes, assume car access, review planned transit improvements.",
		})
	}

	switch p.LandCategory {
	case CategoryDryField, CategoryPaddy, CategoryOrchard:
		risks = append(risks, Risk{
			Category:    "farmland conversion required",
			Severity:    SeverityHigh,
			Description: "Using farmland for another purpose requires a farmland conversion permit.",
			Mitigation:  "Confirm the conversion levy (30% of the official price) and whether conversion is possible at all.",
		})
	case CategoryForestLand:
		risks = append(risks, Risk{
			Category:    "forest conversion required",
			Severity:    SeverityHigh,
			Description: "Developing forest land requires a mountain-district conversion permit and a replacement-forest levy.",
			Mitigation:  "Confirm conversion feasibility and estimate the levy (tens of thousands of won per m²).",
		})
	}

	if len(risks) == 0 {
		risks = append(risks, Risk{
			Category:    "none",
			Severity:    SeverityLow,
			Description: "No major risk identified from the available attributes.",
			Mitigation:  "A detailed due-diligence review is still recommended.",
		})
	}

	return risks
}
