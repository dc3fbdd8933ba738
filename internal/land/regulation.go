package land

// RegulationEntry holds the building-coverage and floor-area ratios a
// planning zone permits, in percent.
type RegulationEntry struct {
	CoveragePct  int
	FloorAreaPct int
}

// defaultRegulation is applied to zone types missing from the table. Unknown
// zones are not an error: upstream input checking is the caller's job, the
// lookup stays total.
var defaultRegulation = RegulationEntry{CoveragePct: 60, FloorAreaPct: 200}

// zoneRegulations lists the common statutory ratios per planning zone. The
// table is fixed at compile time and never mutated.
var zoneRegulations = map[string]RegulationEntry{
	ZoneExclusiveResidential1:  {CoveragePct: 50, FloorAreaPct: 100},
	ZoneExclusiveResidential2:  {CoveragePct: 50, FloorAreaPct: 150},
	ZoneGeneralResidential1:    {CoveragePct: 60, FloorAreaPct: 200},
	ZoneGeneralResidential2:    {CoveragePct: 60, FloorAreaPct: 250},
	ZoneGeneralResidential3:    {CoveragePct: 50, FloorAreaPct: 300},
	ZoneQuasiResidential:       {CoveragePct: 70, FloorAreaPct: 500},
	ZoneCentralCommercial:      {CoveragePct: 90, FloorAreaPct: 1500},
	ZoneGeneralCommercial:      {CoveragePct: 80, FloorAreaPct: 1300},
	ZoneNeighborhoodCommercial: {CoveragePct: 70, FloorAreaPct: 900},
	ZoneGeneralIndustrial:      {CoveragePct: 70, FloorAreaPct: 350},
	ZoneQuasiIndustrial:        {CoveragePct: 70, FloorAreaPct: 400},
	ZoneNaturalGreenBelt:       {CoveragePct: 20, FloorAreaPct: 100},
	ZoneProductionGreenBelt:    {CoveragePct: 20, FloorAreaPct: 100},
	ZoneConservationGreenBelt:  {CoveragePct: 20, FloorAreaPct: 80},
}

// Regulations returns the coverage and floor-area ratios for the given zone
// type, falling back to the default entry for unmapped zones.
func Regulations(zoneType string) RegulationEntry {
	if entry, ok := zoneRegulations[zoneType]; ok {
		return entry
	}
	return defaultRegulation
}
