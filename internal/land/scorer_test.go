package land

import (
	"errors"
	"strings"
	"testing"
)

func sampleParcel() Parcel {
	return Parcel{
		Address:       "123-45 Jeongja-dong, Bundang-gu, Seongnam",
		LandCategory:  CategoryResidentialLot,
		AreaM2:        500,
		OfficialPrice: 3000000,
		ZoneType:      ZoneGeneralResidential2,
		HasRoadAccess: true,
		StationKm:     0.8,
	}
}

func TestScoreDevelopmentSampleParcel(t *testing.T) {
	// 151.25 pyeong (15) + residential (25) + road (20) + within 1km (25).
	got, err := ScoreDevelopment(sampleParcel())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.Score != 85 {
		t.Fatalf("expected score 85, got %d", got.Score)
	}
	if got.Grade != "S" {
		t.Fatalf("expected grade S, got %s", got.Grade)
	}
	if len(got.Factors) != 4 {
		t.Fatalf("expected 4 factors, got %d: %v", len(got.Factors), got.Factors)
	}
}

func TestScoreDevelopmentFactorOrder(t *testing.T) {
	got, err := ScoreDevelopment(sampleParcel())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	order := []string{"mid-scale", "residential", "road access", "near station"}
	for i, want := range order {
		if !strings.Contains(got.Factors[i], want) {
			t.Fatalf("factor %d: expected to contain %q, got %q", i, want, got.Factors[i])
		}
	}
}

func TestScoreDevelopmentTiers(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(p *Parcel)
		want   int
	}{
		{"large area commercial station area", func(p *Parcel) {
			p.AreaM2 = 1000 // 302.5 pyeong
			p.ZoneType = ZoneCentralCommercial
			p.StationKm = 0.3
		}, 20 + 30 + 20 + 30},
		{"small area industrial walkable", func(p *Parcel) {
			p.AreaM2 = 200 // 60.5 pyeong
			p.ZoneType = ZoneGeneralIndustrial
			p.StationKm = 1.5
		}, 10 + 20 + 20 + 15},
		{"undersized green-belt landlocked remote", func(p *Parcel) {
			p.AreaM2 = 100 // 30.25 pyeong
			p.ZoneType = ZoneNaturalGreenBelt
			p.HasRoadAccess = false
			p.StationKm = 5
		}, 5 + 10 + 5 + 5},
		{"unknown zone falls to other branch", func(p *Parcel) {
			p.ZoneType = "special district"
		}, 15 + 10 + 20 + 25},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := sampleParcel()
			tc.mutate(&p)

			got, err := ScoreDevelopment(p)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Score != tc.want {
				t.Fatalf("expected score %d, got %d", tc.want, got.Score)
			}
		})
	}
}

func TestScoreDevelopmentRangeAndGrades(t *testing.T) {
	// The additive branches bound every score to [25,100].
	cases := []struct {
		score int
		want  string
	}{
		{100, "S"}, {85, "S"}, {84, "A"}, {70, "A"}, {69, "B"},
		{55, "B"}, {54, "C"}, {40, "C"}, {39, "D"}, {25, "D"},
	}
	for _, tc := range cases {
		if got := developmentGrade(tc.score); got != tc.want {
			t.Fatalf("grade(%d): expected %s, got %s", tc.score, tc.want, got)
		}
	}
}

func TestScoreDevelopmentLandlockedComponent(t *testing.T) {
	p := sampleParcel()
	p.HasRoadAccess = false

	got, err := ScoreDevelopment(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Same parcel minus the 15-point road swing.
	if got.Score != 70 {
		t.Fatalf("expected score 70, got %d", got.Score)
	}
	if !strings.Contains(got.Factors[2], "landlocked") {
		t.Fatalf("expected landlocked factor, got %q", got.Factors[2])
	}
}

func TestScoreDevelopmentInvalidParcel(t *testing.T) {
	p := sampleParcel()
	p.AreaM2 = 0

	if _, err := ScoreDevelopment(p); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestBuildingEnvelope(t *testing.T) {
	got, err := BuildingEnvelope(sampleParcel())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Second-class general residential: 60% coverage, 250% floor area.
	if got.CoveragePct != 60 || got.FloorAreaPct != 250 {
		t.Fatalf("unexpected ratios: %+v", got)
	}
	if got.FootprintM2 != 300 {
		t.Fatalf("expected footprint 300 m², got %g", got.FootprintM2)
	}
	if got.TotalFloorM2 != 1250 {
		t.Fatalf("expected total floor 1250 m², got %g", got.TotalFloorM2)
	}
	if got.FootprintPyeong != 90.75 {
		t.Fatalf("expected footprint 90.75 pyeong, got %g", got.FootprintPyeong)
	}
}

func TestBuildingEnvelopeUnknownZoneUsesDefault(t *testing.T) {
	p := sampleParcel()
	p.ZoneType = "unzoned"

	got, err := BuildingEnvelope(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.CoveragePct != 60 || got.FloorAreaPct != 200 {
		t.Fatalf("expected default ratios (60, 200), got %+v", got)
	}
}
