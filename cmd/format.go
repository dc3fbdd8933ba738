package cmd

import (
	"fmt"
	"strings"

	"github.com/spigell/land-advisor/internal/ai"
	"github.com/spigell/land-advisor/internal/land"
	"github.com/spigell/land-advisor/internal/match"
)

// renderSummary prints one line per report, enough to decide what to look at.
func renderSummary(reports *land.Reports) string {
	var b strings.Builder

	fmt.Fprintf(&b, "\nAnalyzed %d parcel(s):\n", reports.Len())
	for _, report := range reports.Items {
		fmt.Fprintf(&b, "  [%s] %s | %.2f pyeong | %s | est. %.2f eok\n",
			report.Development.Grade,
			report.Parcel.Address,
			report.AreaPyeong,
			report.Parcel.ZoneType,
			report.Price.TotalEok,
		)
	}
	b.WriteString("\n")

	return b.String()
}

func renderReport(report *land.AnalysisResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "\n=== %s ===\n", report.Parcel.Address)
	fmt.Fprintf(&b, "Category: %s | Zone: %s\n", report.Parcel.LandCategory, report.Parcel.ZoneType)
	fmt.Fprintf(&b, "Area: %.0f m² (%.2f pyeong) | Official value: %.2f eok\n",
		report.Parcel.AreaM2, report.AreaPyeong, report.TotalOfficialValue/1e8)

	fmt.Fprintf(&b, "\nDevelopment score: %d (grade %s)\n", report.Development.Score, report.Development.Grade)
	for _, factor := range report.Development.Factors {
		fmt.Fprintf(&b, "  - %s\n", factor)
	}

	fmt.Fprintf(&b, "\nBuilding envelope (coverage %d%%, floor area %d%%):\n",
		report.Envelope.CoveragePct, report.Envelope.FloorAreaPct)
	fmt.Fprintf(&b, "  max footprint: %.2f m² (%.2f pyeong)\n",
		report.Envelope.FootprintM2, report.Envelope.FootprintPyeong)
	fmt.Fprintf(&b, "  max total floor: %.2f m² (%.2f pyeong)\n",
		report.Envelope.TotalFloorM2, report.Envelope.TotalFloorPyeong)

	fmt.Fprintf(&b, "\nEstimated price: %.2f eok (%.2f ~ %.2f eok, multiplier %.2f)\n",
		report.Price.TotalEok, report.Price.RangeLowEok, report.Price.RangeHighEok, report.Price.Multiplier)
	fmt.Fprintf(&b, "  unit: %.0f won/m² (%.0f man won/pyeong)\n",
		report.Price.UnitPrice, report.Price.UnitManPyeong)

	fmt.Fprintf(&b, "\nRisks:\n")
	for _, risk := range report.Risks {
		fmt.Fprintf(&b, "  [%s] %s: %s (%s)\n", risk.Severity, risk.Category, risk.Description, risk.Mitigation)
	}

	return b.String()
}

func renderProjection(report *land.AnalysisResult, projection land.ReturnProjection) string {
	var b strings.Builder

	fmt.Fprintf(&b, "\n--- %d-year projection for %s ---\n", projection.HoldYears, report.Parcel.Address)
	fmt.Fprintf(&b, "Purchase price: %.2f eok\n", projection.PurchaseEok)
	fmt.Fprintf(&b, "Future value:   %.2f eok\n", projection.FutureValueEok)
	fmt.Fprintf(&b, "Capital gain:   %.2f eok (tax %.2f eok)\n", projection.CapitalGainEok, projection.CapitalGainTaxEok)
	fmt.Fprintf(&b, "Holding tax:    %.0f man won\n", projection.TotalTaxPaidMan)
	fmt.Fprintf(&b, "Net profit:     %.2f eok\n", projection.NetProfitEok)
	fmt.Fprintf(&b, "ROI: %.2f%% total, %.2f%% annualized\n", projection.ROIPct, projection.AnnualizedROIPct)

	return b.String()
}

func renderMatches(profile match.BuyerProfile, results []match.MatchResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "\nRecommendations for %s (%s, %s, budget %.1f-%.1f eok):\n",
		profile.Name, profile.Purpose, profile.RiskTolerance, profile.BudgetMinEok, profile.BudgetMaxEok)

	for i, result := range results {
		fmt.Fprintf(&b, "\n%d. %s — %.1f points (%s)\n", i+1, result.Address, result.Score, result.Grade)
		fmt.Fprintf(&b, "   price %.2f eok, development grade %s\n", result.PriceEok, result.DevelopmentGrade)
		for _, reason := range result.Reasons {
			fmt.Fprintf(&b, "   - %s\n", reason)
		}
	}
	b.WriteString("\n")

	return b.String()
}

func renderCommentary(report *land.AnalysisResult, commentary *ai.Commentary) string {
	var b strings.Builder

	fmt.Fprintf(&b, "\n--- AI commentary on %s ---\n", report.Parcel.Address)
	if commentary.Summary != "" {
		fmt.Fprintf(&b, "%s\n", commentary.Summary)
	}
	if commentary.Opinion != "" {
		fmt.Fprintf(&b, "\nOpinion: %s\n", commentary.Opinion)
	}
	if len(commentary.Cautions) > 0 {
		b.WriteString("\nBefore purchase, verify:\n")
		for _, caution := range commentary.Cautions {
			fmt.Fprintf(&b, "  - %s\n", caution)
		}
	}

	return b.String()
}
