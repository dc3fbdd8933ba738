package land

import "testing"

func TestRegulationsLookup(t *testing.T) {
	cases := []struct {
		zone      string
		coverage  int
		floorArea int
	}{
		{ZoneCentralCommercial, 90, 1500},
		{ZoneGeneralResidential3, 50, 300},
		{ZoneConservationGreenBelt, 20, 80},
		{ZoneQuasiIndustrial, 70, 400},
	}

	for _, tc := range cases {
		got := Regulations(tc.zone)
		if got.CoveragePct != tc.coverage || got.FloorAreaPct != tc.floorArea {
			t.Fatalf("%s: expected (%d, %d), got %+v", tc.zone, tc.coverage, tc.floorArea, got)
		}
	}
}

func TestRegulationsUnknownZoneFallsBack(t *testing.T) {
	got := Regulations("martian settlement zone")
	if got.CoveragePct != 60 || got.FloorAreaPct != 200 {
		t.Fatalf("expected default (60, 200), got %+v", got)
	}
}
