package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractTenant(t *testing.T) {
	tests := []struct {
		name      string
		tenant    string
		wantState string
		wantCode  string
	}{
		{"plain state", "Wisconsin", "Wisconsin", "WI"},
		{"tenant suffix", "California_Tenant", "California", "CA"},
		{"abbreviation", "fla", "Florida", "FL"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev := extractTenant(tt.tenant)
			require.NotNil(t, ev)
			assert.Equal(t, SourceTenant, ev.Source)
			assert.Equal(t, tt.wantState, ev.State)
			assert.Equal(t, tt.wantCode, ev.StateCode)
			assert.Equal(t, 70, ev.Confidence)
		})
	}
}

func TestExtractTenant_International(t *testing.T) {
	ev := extractTenant("Singapore")
	require.NotNil(t, ev)
	assert.Equal(t, "Singapore", ev.Country)
	assert.Equal(t, RegionAP, ev.WorldRegion)
	assert.Equal(t, 70, ev.Confidence)
}

func TestExtractTenant_Skipped(t *testing.T) {
	for _, tenant := range []string{"", "Default Tenant", "tenant-42", "Atlantis"} {
		assert.Nilf(t, extractTenant(tenant), "expected no evidence for %q", tenant)
	}
}

func TestExtractIPAddress(t *testing.T) {
	t.Run("private ranges yield no evidence", func(t *testing.T) {
		for _, ip := range []string{"10.0.0.5", "172.16.4.1", "192.168.1.10"} {
			assert.Nilf(t, extractIPAddress(ip), "expected no evidence for %q", ip)
		}
	})

	t.Run("known datacenter range", func(t *testing.T) {
		ev := extractIPAddress("156.24.95.6")
		require.NotNil(t, ev)
		assert.Equal(t, SourceIPAddress, ev.Source)
		assert.Equal(t, "West Greenwich", ev.City)
		assert.Equal(t, "Rhode Island", ev.State)
		assert.Equal(t, "RI", ev.StateCode)
		assert.Equal(t, 80, ev.Confidence)
	})

	t.Run("partial range", func(t *testing.T) {
		ev := extractIPAddress("100.65.12.1")
		require.NotNil(t, ev)
		assert.Empty(t, ev.City)
		assert.Equal(t, RegionUS, ev.WorldRegion)
		assert.Equal(t, "United States", ev.Country)
		assert.Equal(t, 50, ev.Confidence)
	})

	t.Run("unknown range", func(t *testing.T) {
		assert.Nil(t, extractIPAddress("8.8.8.8"))
	})

	t.Run("empty", func(t *testing.T) {
		assert.Nil(t, extractIPAddress(""))
	})
}

func TestCorrelateHostname(t *testing.T) {
	sheet := Evidence{
		Source:      SourceSheetName,
		State:       "Texas",
		StateCode:   "TX",
		Country:     "United States",
		WorldRegion: RegionUS,
		Confidence:  98,
	}

	t.Run("positive boosts capped at 99", func(t *testing.T) {
		ev := correlateHostname("tx-core-fw01", sheet)
		require.NotNil(t, ev)
		assert.Equal(t, CorrelationPositive, ev.Correlation)
		assert.Equal(t, 99, ev.Confidence)
		assert.Equal(t, "Texas", ev.State)
	})

	t.Run("negative keeps location fields", func(t *testing.T) {
		ev := correlateHostname("ny-edge-rtr02", sheet)
		require.NotNil(t, ev)
		assert.Equal(t, CorrelationNegative, ev.Correlation)
		assert.Equal(t, "New York", ev.ConflictState)
		assert.Equal(t, 88, ev.Confidence)
		// Sheet still wins: state/country untouched.
		assert.Equal(t, "Texas", ev.State)
		assert.Equal(t, "TX", ev.StateCode)
	})

	t.Run("neutral when no pattern set for state", func(t *testing.T) {
		ohio := sheet
		ohio.State, ohio.StateCode = "Ohio", "OH"
		assert.Nil(t, correlateHostname("oh-core-sw01", ohio))
	})

	t.Run("neutral when nothing matches", func(t *testing.T) {
		assert.Nil(t, correlateHostname("device-generic-01", sheet))
	})

	t.Run("no hostname or no state", func(t *testing.T) {
		assert.Nil(t, correlateHostname("", sheet))
		intl := Evidence{Source: SourceSheetName, Country: "Germany", Confidence: 98}
		assert.Nil(t, correlateHostname("de-fw01", intl))
	})
}
