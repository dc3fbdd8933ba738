package land

import (
	"encoding/json"
	"os"
	"time"

	"github.com/google/uuid"
)

// AnalysisResult is the immutable outcome of one full parcel evaluation.
// Re-analyzing a parcel produces a fresh record with a new ID and timestamp;
// nothing mutates an existing result, so stored reports stay comparable over
// time.
type AnalysisResult struct {
	ID                 string           `json:"id"`
	Parcel             Parcel           `json:"parcel"`
	AreaPyeong         float64          `json:"area_pyeong"`
	TotalOfficialValue float64          `json:"total_official_value_won"`
	Envelope           Envelope         `json:"building_envelope"`
	Development        DevelopmentScore `json:"development"`
	Price              PriceEstimate    `json:"price"`
	Risks              []Risk           `json:"risks"`
	GeneratedAt        time.Time        `json:"generated_at"`
}

// Assembler composes the scorer, envelope, estimator and risk checklist into
// analysis records. It performs no validation of its own; component errors
// are propagated as-is.
type Assembler struct {
	estimator Estimator

	// Overridable in tests for deterministic output.
	now   func() time.Time
	newID func() string
}

// NewAssembler creates an assembler using the given price estimator. A nil
// estimator selects the heuristic multiplier model.
func NewAssembler(estimator Estimator) *Assembler {
	if estimator == nil {
		estimator = HeuristicEstimator{}
	}
	return &Assembler{
		estimator: estimator,
		now:       time.Now,
		newID:     uuid.NewString,
	}
}

// Assemble evaluates the parcel with every component and merges the results
// into one record.
func (a *Assembler) Assemble(p Parcel) (*AnalysisResult, error) {
	development, err := ScoreDevelopment(p)
	if err != nil {
		return nil, err
	}

	envelope, err := BuildingEnvelope(p)
	if err != nil {
		return nil, err
	}

	price, err := a.estimator.Estimate(p)
	if err != nil {
		return nil, err
	}

	return &AnalysisResult{
		ID:                 a.newID(),
		Parcel:             p,
		AreaPyeong:         p.AreaPyeong(),
		TotalOfficialValue: p.TotalOfficialValue(),
		Envelope:           envelope,
		Development:        development,
		Price:              price,
		Risks:              AssessRisks(p),
		GeneratedAt:        a.now(),
	}, nil
}

// Reports is a collection of analysis records.
type Reports struct {
	Items []*AnalysisResult
}

func (r *Reports) Len() int {
	return len(r.Items)
}

// FindByAddress returns the first report for the given parcel address, or nil.
func (r *Reports) FindByAddress(address string) *AnalysisResult {
	for _, report := range r.Items {
		if report.Parcel.Address == address {
			return report
		}
	}
	return nil
}

// DumpToTmpFile writes the reports as indented JSON to a temp file and
// returns its name.
func (r *Reports) DumpToTmpFile() (string, error) {
	file, err := os.CreateTemp("", "land_reports_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return "", err
	}
	return file.Name(), nil
}
