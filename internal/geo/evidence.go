// Package geo assigns a validated geographic location to network-device
// inventory records by extracting scored evidence from several noisy text
// fields and cross-validating the claims into a single verdict.
package geo

// WorldRegion is the coarse geographic bucket above country/state granularity.
type WorldRegion string

const (
	RegionUS      WorldRegion = "US"
	RegionEU      WorldRegion = "EU"
	RegionAP      WorldRegion = "AP"
	RegionLA      WorldRegion = "LA"
	RegionUnknown WorldRegion = "UNKNOWN"
)

// Source identifies which device field produced a piece of evidence.
type Source string

const (
	SourceSheetName           Source = "SheetName"
	SourceHostnameCorrelation Source = "HostnameCorrelation"
	SourceSystemLocation      Source = "SystemLocation"
	SourceTenant              Source = "Tenant"
	SourceIPAddress           Source = "IPAddress"
)

// Correlation tags hostname evidence as agreeing or disagreeing with the
// sheet-name claim.
type Correlation string

const (
	CorrelationPositive Correlation = "positive"
	CorrelationNegative Correlation = "negative"
)

// Evidence is a single source's scored claim about a device's location.
// Extractors produce at most one Evidence per field; a produced Evidence is
// never mutated afterwards.
type Evidence struct {
	Source        Source      `json:"source"`
	Country       string      `json:"country"`
	State         string      `json:"state"`
	StateCode     string      `json:"state_code"`
	City          string      `json:"city"`
	WorldRegion   WorldRegion `json:"world_region"`
	Confidence    int         `json:"confidence"`
	Correlation   Correlation `json:"correlation,omitempty"`
	ConflictState string      `json:"conflict_state,omitempty"`
}

// ValidatedLocation is the fused verdict for one device. Rejection is
// explicit: Validated is false, every descriptive field is empty, and
// Confidence is zero.
type ValidatedLocation struct {
	Country     string      `json:"country"`
	State       string      `json:"state"`
	StateCode   string      `json:"state_code"`
	City        string      `json:"city"`
	WorldRegion WorldRegion `json:"world_region"`
	Confidence  int         `json:"confidence"`
	Validated   bool        `json:"validated"`
}

// Rejected returns the explicit rejection verdict.
func Rejected() ValidatedLocation {
	return ValidatedLocation{WorldRegion: RegionUnknown}
}

// clampConfidence bounds a confidence score to [0,100].
func clampConfidence(c int) int {
	if c < 0 {
		return 0
	}
	if c > 100 {
		return 100
	}
	return c
}
