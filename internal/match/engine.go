package match

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/spigell/land-advisor/internal/land"
)

// Purpose is the buyer's investment intent.
type Purpose string

const (
	PurposeShortTermGain Purpose = "short-term-gain"
	PurposeLongTermHold  Purpose = "mid/long-term-hold"
	PurposeDevelopment   Purpose = "development-project"
)

// RiskTolerance is how much identified risk the buyer accepts.
type RiskTolerance string

const (
	ToleranceAggressive   RiskTolerance = "aggressive"
	ToleranceModerate     RiskTolerance = "moderate"
	ToleranceConservative RiskTolerance = "conservative"
)

// MatchGrade buckets a match score into a recommendation tier.
type MatchGrade string

const (
	GradeStrongRecommend MatchGrade = "strong-recommend"
	GradeRecommend       MatchGrade = "recommend"
	GradeWorthReviewing  MatchGrade = "worth-reviewing"
	GradeUnsuitable      MatchGrade = "unsuitable"
)

// BuyerProfile describes one buyer. Budgets are in eok (100M won) units to
// match the scale analysis reports present prices in.
type BuyerProfile struct {
	ID                  string        `json:"id" mapstructure:"id"`
	Name                string        `json:"name" mapstructure:"name"`
	BudgetMinEok        float64       `json:"budget_min_eok" mapstructure:"budget-min-eok"`
	BudgetMaxEok        float64       `json:"budget_max_eok" mapstructure:"budget-max-eok"`
	Purpose             Purpose       `json:"purpose" mapstructure:"purpose"`
	RiskTolerance       RiskTolerance `json:"risk_tolerance" mapstructure:"risk-tolerance"`
	PreferredZones      []string      `json:"preferred_zones" mapstructure:"preferred-zones"`
	PreferredCategories []string      `json:"preferred_categories" mapstructure:"preferred-categories"`
}

// MatchResult scores one analysis report against one buyer. Results are
// recomputed on every request and never act as a source of truth.
type MatchResult struct {
	Address          string     `json:"address"`
	Score            float64    `json:"score"`
	Grade            MatchGrade `json:"grade"`
	Reasons          []string   `json:"reasons"`
	PriceEok         float64    `json:"price_eok"`
	DevelopmentGrade string     `json:"development_grade"`
}

// Engine scores buyer profiles against assembled analysis reports.
type Engine struct{}

// Score combines four weighted fit terms: budget (30), development quality
// (25), purpose (25) and risk tolerance (20). The risk term can go negative
// and low-risk aggressive buyers can total above 100; neither end is
// clamped, matching the established scoring behavior. The result is rounded
// to one decimal.
func (Engine) Score(profile BuyerProfile, analysis *land.AnalysisResult) (float64, []string) {
	score := 0.0
	var reasons []string

	price := analysis.Price.TotalEok
	switch {
	case profile.BudgetMinEok <= price && price <= profile.BudgetMaxEok:
		score += 30
		reasons = append(reasons, fmt.Sprintf("within budget (%.2f eok)", price))
	case price < profile.BudgetMinEok:
		score += 20
		reasons = append(reasons, fmt.Sprintf("below budget (%.2f eok)", price))
	default:
		score += 5
		reasons = append(reasons, fmt.Sprintf("above budget, caution (%.2f eok)", price))
	}

	devScore := analysis.Development.Score
	score += float64(devScore) * 0.25
	reasons = append(reasons, "development potential: "+analysis.Development.Grade)

	zone := analysis.Parcel.ZoneType
	switch profile.Purpose {
	case PurposeShortTermGain:
		if strings.Contains(zone, "commercial") || strings.Contains(zone, "quasi-residential") {
			score += 25
			reasons = append(reasons, "favorable zone for short-term gains")
		} else {
			score += 10
		}
	case PurposeLongTermHold:
		if strings.Contains(zone, "residential") || strings.Contains(zone, "green-belt") {
			score += 25
			reasons = append(reasons, "suited to stable long-term holding")
		} else {
			score += 15
		}
	case PurposeDevelopment:
		if devScore >= 70 {
			score += 25
			reasons = append(reasons, "development project viable")
		} else {
			score += 5
		}
	}

	highRisks := 0
	for _, risk := range analysis.Risks {
		if risk.Severity == land.SeverityHigh {
			highRisks++
		}
	}

	switch profile.RiskTolerance {
	case ToleranceAggressive:
		score += 20 - float64(highRisks)*2
		reasons = append(reasons, fmt.Sprintf("high-severity risk factors: %d", highRisks))
	case ToleranceModerate:
		score += 20 - float64(highRisks)*5
		if highRisks <= 1 {
			reasons = append(reasons, "acceptable risk level")
		}
	default: // conservative
		score += 20 - float64(highRisks)*10
		if highRisks == 0 {
			reasons = append(reasons, "stable investment target")
		}
	}

	return math.Round(score*10) / 10, reasons
}

// Rank scores every report for the profile and returns them sorted by score
// descending. The sort is stable: ties keep the input order, so repeated
// calls over identical input are byte-identical.
func (e Engine) Rank(profile BuyerProfile, reports *land.Reports) []MatchResult {
	if reports == nil {
		return []MatchResult{}
	}

	results := make([]MatchResult, 0, reports.Len())
	for _, analysis := range reports.Items {
		score, reasons := e.Score(profile, analysis)
		results = append(results, MatchResult{
			Address:          analysis.Parcel.Address,
			Score:            score,
			Grade:            matchGrade(score),
			Reasons:          reasons,
			PriceEok:         analysis.Price.TotalEok,
			DevelopmentGrade: analysis.Development.Grade,
		})
	}

	sort.SliceStable(results, func(i, j int) bool { return results[i].Score > results[j].Score })
	return results
}

// matchGrade maps a score to a recommendation tier with inclusive lower
// bounds: ≥80 strong-recommend, ≥65 recommend, ≥50 worth-reviewing.
func matchGrade(score float64) MatchGrade {
	switch {
	case score >= 80:
		return GradeStrongRecommend
	case score >= 65:
		return GradeRecommend
	case score >= 50:
		return GradeWorthReviewing
	default:
		return GradeUnsuitable
	}
}
