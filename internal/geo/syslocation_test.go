package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractSystemLocation_RejectionPatterns(t *testing.T) {
	// Each of these must yield no evidence even when a later cascade pattern
	// would otherwise match (e.g. "NY" is a real state code).
	rejected := []string{
		"cevChassis1",
		"ex4200-48t",
		"Model Type",
		"UNKNOWN",
		"UNKNOWNN",
		"zeroDotZero",
		"NY",
		"KY",
		"GAS",
		"Unknown (edit /etc/snmp/snmpd.conf)",
		"Single Chassis",
		"chassis 2 slot 1",
		"model xyz",
		"1",
		"100",
		"'-1",
		"7.1.0.0",
		"-7.2.0.0",
		"FG100D3G14824251",
		"FG100E4Q17024688",
		"component unique identifier",
		"2024-01-15 build",
		"10.0.0.1",
		"DEADBEEF01",
		"null",
		"n/a",
		"none",
		"",
		"Unknown",
		"   ",
	}
	for _, loc := range rejected {
		assert.Nilf(t, extractSystemLocation(loc), "expected rejection for %q", loc)
	}
}

func TestExtractSystemLocation_Cascade(t *testing.T) {
	tests := []struct {
		name       string
		loc        string
		wantCity   string
		wantState  string
		wantCode   string
		wantConf   int
		wantRegion WorldRegion
	}{
		{"city comma state code", "Austin, TX", "Austin", "Texas", "TX", 95, RegionUS},
		{"city comma code no space", "Austin,TX", "Austin", "Texas", "TX", 94, RegionUS},
		{"city comma full name no space", "Austin,Texas", "Austin", "Texas", "TX", 93, RegionUS},
		{"city comma full name", "Madison, Wisconsin", "Madison", "Wisconsin", "WI", 92, RegionUS},
		{"city underscore code", "Germantown_MD", "Germantown", "Maryland", "MD", 90, RegionUS},
		{"multiword city underscore", "North_Las_Vegas_NV", "North Las Vegas", "Nevada", "NV", 90, RegionUS},
		{"state site", "TX_DCA", "", "Texas", "TX", 85, RegionUS},
		{"state hub", "RI_Hub", "", "Rhode Island", "RI", 85, RegionUS},
		{"embedded state city abbrev", "bldg 7 TX AUS rack 12", "Austin", "Texas", "TX", 88, RegionUS},
		{"embedded state abbrev unresolved city", "1833,NOC,DCA,F10,RI WG DCA2 nexus leaf 1", "", "Rhode Island", "RI", 85, RegionUS},
		{"known city substring", "atc austin computer room", "Austin", "Texas", "TX", 80, RegionUS},
		{"territory city", "somewhere near st thomas", "St. Thomas", "US Virgin Islands", "VI", 80, RegionUS},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev := extractSystemLocation(tt.loc)
			require.NotNil(t, ev)
			assert.Equal(t, SourceSystemLocation, ev.Source)
			assert.Equal(t, tt.wantCity, ev.City)
			assert.Equal(t, tt.wantState, ev.State)
			assert.Equal(t, tt.wantCode, ev.StateCode)
			assert.Equal(t, tt.wantConf, ev.Confidence)
			assert.Equal(t, tt.wantRegion, ev.WorldRegion)
			assert.Equal(t, "United States", ev.Country)
		})
	}
}

func TestExtractSystemLocation_International(t *testing.T) {
	ev := extractSystemLocation("datacenter frankfurt germany")
	require.NotNil(t, ev)
	assert.Equal(t, "Germany", ev.Country)
	assert.Equal(t, RegionEU, ev.WorldRegion)
	assert.Equal(t, 75, ev.Confidence)
	assert.Empty(t, ev.State)
}

func TestExtractSystemLocation_EmbeddedAbbrevUnknownCity(t *testing.T) {
	// Valid state code but unresolvable city abbreviation: state-only, 85.
	ev := extractSystemLocation("rack 4 RI ZZ row 9")
	require.NotNil(t, ev)
	assert.Equal(t, "Rhode Island", ev.State)
	assert.Empty(t, ev.City)
	assert.Equal(t, 85, ev.Confidence)
}

func TestExtractSystemLocation_NoMatch(t *testing.T) {
	assert.Nil(t, extractSystemLocation("somewhere over the rainbow"))
}
