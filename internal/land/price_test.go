package land

import (
	"errors"
	"testing"
)

func TestHeuristicEstimateSampleParcel(t *testing.T) {
	// residential 1.6 + within 1km 0.2 + road 0.1 = 1.9 exactly.
	got, err := HeuristicEstimator{}.Estimate(sampleParcel())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.Multiplier != 1.9 {
		t.Fatalf("expected multiplier 1.9, got %g", got.Multiplier)
	}
	if got.UnitPrice != 5700000 {
		t.Fatalf("expected unit price 5700000, got %g", got.UnitPrice)
	}
	if got.TotalPrice != 2850000000 {
		t.Fatalf("expected total price 2850000000, got %g", got.TotalPrice)
	}
	if got.TotalEok != 28.5 {
		t.Fatalf("expected 28.5 eok, got %g", got.TotalEok)
	}
	if got.RangeLowEok != 25.65 || got.RangeHighEok != 31.35 {
		t.Fatalf("expected ±10%% band (25.65, 31.35), got (%g, %g)", got.RangeLowEok, got.RangeHighEok)
	}
}

func TestHeuristicEstimateMultipliers(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(p *Parcel)
		want   float64
	}{
		{"commercial overrides base", func(p *Parcel) {
			p.ZoneType = ZoneGeneralCommercial
			p.StationKm = 3
			p.HasRoadAccess = false
		}, 1.8},
		{"quasi-residential wins over residential keyword", func(p *Parcel) {
			p.ZoneType = ZoneQuasiResidential
			p.StationKm = 3
			p.HasRoadAccess = false
		}, 1.7},
		{"green-belt discount", func(p *Parcel) {
			p.ZoneType = ZoneProductionGreenBelt
			p.StationKm = 3
			p.HasRoadAccess = false
		}, 1.3},
		{"unknown zone keeps base", func(p *Parcel) {
			p.ZoneType = "special district"
			p.StationKm = 3
			p.HasRoadAccess = false
		}, 1.5},
		{"station area bonus stacks", func(p *Parcel) {
			p.ZoneType = ZoneCentralCommercial
			p.StationKm = 0.4
			p.HasRoadAccess = false
		}, 2.1},
		{"all bonuses stack", func(p *Parcel) {
			p.ZoneType = ZoneCentralCommercial
			p.StationKm = 0.4
			p.HasRoadAccess = true
		}, 2.2},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := sampleParcel()
			tc.mutate(&p)

			got, err := HeuristicEstimator{}.Estimate(p)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Multiplier != tc.want {
				t.Fatalf("expected multiplier %g, got %g", tc.want, got.Multiplier)
			}
		})
	}
}

func TestHeuristicEstimateTruncatesUnitPrice(t *testing.T) {
	p := sampleParcel()
	p.OfficialPrice = 333333 // 333333 * 1.9 = 633332.7

	got, err := HeuristicEstimator{}.Estimate(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.UnitPrice != 633332 {
		t.Fatalf("expected truncated unit price 633332, got %g", got.UnitPrice)
	}
}

func TestHeuristicEstimateInvalidInput(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(p *Parcel)
	}{
		{"zero area", func(p *Parcel) { p.AreaM2 = 0 }},
		{"negative area", func(p *Parcel) { p.AreaM2 = -10 }},
		{"zero official price", func(p *Parcel) { p.OfficialPrice = 0 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := sampleParcel()
			tc.mutate(&p)

			if _, err := (HeuristicEstimator{}).Estimate(p); !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}
