package land

import "testing"

func TestAssessRisksSentinelWhenClean(t *testing.T) {
	got := AssessRisks(sampleParcel())

	if len(got) != 1 {
		t.Fatalf("expected exactly the sentinel entry, got %d entries", len(got))
	}
	if got[0].Category != "none" || got[0].Severity != SeverityLow {
		t.Fatalf("unexpected sentinel entry: %+v", got[0])
	}
}

func TestAssessRisksLandlockedIsFirst(t *testing.T) {
	p := sampleParcel()
	p.HasRoadAccess = false
	p.StationKm = 5

	got := AssessRisks(p)
	if len(got) != 2 {
		t.Fatalf("expected 2 risks, got %d", len(got))
	}
	if got[0].Severity != SeverityHigh || got[0].Category != "access route verification required" {
		t.Fatalf("expected landlocked risk first, got %+v", got[0])
	}
	if got[1].Category != "poor accessibility" {
		t.Fatalf("expected accessibility risk second, got %+v", got[1])
	}
}

func TestAssessRisksChecklist(t *testing.T) {
	cases := []struct {
		name     string
		mutate   func(p *Parcel)
		category string
		severity Severity
	}{
		{"green-belt restriction", func(p *Parcel) { p.ZoneType = ZoneNaturalGreenBelt }, "development activity restricted", SeverityHigh},
		{"undersized parcel", func(p *Parcel) { p.AreaM2 = 100 }, "undersized parcel", SeverityMedium},
		{"far station", func(p *Parcel) { p.StationKm = 2.5 }, "poor accessibility", SeverityMedium},
		{"dry field conversion", func(p *Parcel) { p.LandCategory = CategoryDryField }, "farmland conversion required", SeverityHigh},
		{"paddy conversion", func(p *Parcel) { p.LandCategory = CategoryPaddy }, "farmland conversion required", SeverityHigh},
		{"orchard conversion", func(p *Parcel) { p.LandCategory = CategoryOrchard }, "farmland conversion required", SeverityHigh},
		{"forest conversion", func(p *Parcel) { p.LandCategory = CategoryForestLand }, "forest conversion required", SeverityHigh},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := sampleParcel()
			tc.mutate(&p)

			got := AssessRisks(p)
			if len(got) != 1 {
				t.Fatalf("expected a single risk, got %d: %+v", len(got), got)
			}
			if got[0].Category != tc.category || got[0].Severity != tc.severity {
				t.Fatalf("expected %s/%s, got %+v", tc.category, tc.severity, got[0])
			}
		})
	}
}

func TestAssessRisksExactBoundariesDoNotFire(t *testing.T) {
	p := sampleParcel()
	p.StationKm = 2.0          // not > 2.0
	p.AreaM2 = 50 / PyeongPerM2 // exactly 50 pyeong

	got := AssessRisks(p)
	if len(got) != 1 || got[0].Category != "none" {
		t.Fatalf("expected only the sentinel, got %+v", got)
	}
}

func TestAssessRisksNeverEmpty(t *testing.T) {
	// Even a fully degenerate parcel gets at least one entry.
	got := AssessRisks(Parcel{})
	if len(got) == 0 {
		t.Fatal("risk list must never be empty")
	}
}
