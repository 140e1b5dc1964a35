package geo

import (
	"regexp"
	"strings"
)

// rejectionPatterns disqualify a raw system-location string outright. SNMP
// sysLocation is routinely polluted with chassis names, serial numbers,
// firmware versions, and placeholders; any hit here permanently vetoes the
// string, even if a later cascade pattern would otherwise match.
var rejectionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^cevChassis`),      // Cisco entity names
	regexp.MustCompile(`(?i)^ex\d{4}-`),        // Juniper model numbers
	regexp.MustCompile(`(?i)^Model Type$`),     // generic placeholder
	regexp.MustCompile(`(?i)^UNKNOWNN?$`),      // Unknown variations
	regexp.MustCompile(`(?i)^zeroDotZero$`),    // OID placeholder
	regexp.MustCompile(`^\w{1,3}$`),            // bare 1-3 char tokens (NY, GAS)
	regexp.MustCompile(`(?i)^Unknown \(edit`),  // SNMP default text
	regexp.MustCompile(`(?i)chassis`),          // any chassis reference
	regexp.MustCompile(`(?i)^model`),           // model references
	regexp.MustCompile(`^'?-?\d+$`),            // pure numbers: "1", "'-1"
	regexp.MustCompile(`^-?\d+\.\d+`),          // version numbers: "7.1.0.0"
	regexp.MustCompile(`^[A-Z]{2,}\d{5,}`),     // serials: "FG100D3G14824251"
	regexp.MustCompile(`(?i)component.*identifier`),
	regexp.MustCompile(`(?i)^Single\s+Chassis`),
	regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`),   // date stamps
	regexp.MustCompile(`^[\d.]+$`),             // digits and dots only
	regexp.MustCompile(`(?i)^[A-F0-9]{8,}`),    // long hex (MACs, IDs)
	regexp.MustCompile(`(?i)^null$`),
	regexp.MustCompile(`(?i)^n/a$`),
	regexp.MustCompile(`(?i)^none$`),
}

var (
	reCityState           = regexp.MustCompile(`^([^,]+),\s*([A-Z]{2})\b`)
	reCityStateNoSpace    = regexp.MustCompile(`^([^,]+),([A-Za-z]+)$`)
	reCityFullState       = regexp.MustCompile(`^([^,]+),\s+([A-Za-z\s]+)$`)
	reCityStateUnderscore = regexp.MustCompile(`^([^_]+(?:_[^_]+)*)_([A-Z]{2})$`)
	reStateSite           = regexp.MustCompile(`^([A-Z]{2})_(.+)$`)
	reStateCityAbbrev     = regexp.MustCompile(`\b([A-Z]{2})\s+([A-Z]{2,})\b`)
)

// extractSystemLocation parses the free-text SNMP system-location field.
// Patterns are tried in a fixed order and the first success wins; confidence
// reflects how explicit the matched format is.
func extractSystemLocation(systemLocation string) *Evidence {
	loc := strings.TrimSpace(systemLocation)
	if loc == "" || loc == "Unknown" {
		return nil
	}

	for _, p := range rejectionPatterns {
		if p.MatchString(loc) {
			return nil
		}
	}

	locLower := strings.ToLower(loc)

	// "City, ST"
	if m := reCityState.FindStringSubmatch(loc); m != nil {
		if s, ok := StateByCode(m[2]); ok {
			return stateEvidence(s, strings.TrimSpace(m[1]), 95)
		}
	}

	// "City,ST" or "City,Statename" with no space after the comma.
	if m := reCityStateNoSpace.FindStringSubmatch(loc); m != nil {
		city := strings.TrimSpace(m[1])
		if len(m[2]) == 2 {
			if s, ok := StateByCode(m[2]); ok {
				return stateEvidence(s, city, 94)
			}
		}
		if s, ok := matchStateName(strings.ToLower(m[2]), false); ok {
			return stateEvidence(s, city, 93)
		}
	}

	// "City, Full State Name"
	if m := reCityFullState.FindStringSubmatch(loc); m != nil {
		if s, ok := matchStateName(strings.ToLower(strings.TrimSpace(m[2])), false); ok {
			return stateEvidence(s, strings.TrimSpace(m[1]), 92)
		}
	}

	// "City_ST", underscores in the city restored to spaces.
	if m := reCityStateUnderscore.FindStringSubmatch(loc); m != nil {
		if s, ok := StateByCode(m[2]); ok {
			city := strings.TrimSpace(strings.ReplaceAll(m[1], "_", " "))
			return stateEvidence(s, city, 90)
		}
	}

	// "ST_SITE" such as "TX_DCA" or "RI_Hub".
	if m := reStateSite.FindStringSubmatch(loc); m != nil {
		if s, ok := StateByCode(m[1]); ok {
			return stateEvidence(s, "", 85)
		}
	}

	// Embedded "ST CITYABBR" inside longer strings, e.g.
	// "1833,NOC,DCA,F10,RI WG DCA2 nexus leaf 1".
	if m := reStateCityAbbrev.FindStringSubmatch(loc); m != nil {
		if s, ok := StateByCode(m[1]); ok {
			abbrev := strings.ToLower(m[2])
			ev := stateEvidence(s, "", 85)
			if city, ok := cityByAbbrev(s.Code, abbrev); ok {
				ev.City = city.City
				ev.Confidence = 88
			}
			ev.WorldRegion = RegionUS
			return ev
		}
	}

	// Known city anywhere in the string.
	for _, c := range knownCities {
		if strings.Contains(locLower, c.Key) {
			return &Evidence{
				Source:      SourceSystemLocation,
				City:        c.City,
				State:       c.State,
				StateCode:   c.StateCode,
				Country:     "United States",
				WorldRegion: RegionUS,
				Confidence:  80,
			}
		}
	}

	// International alias anywhere in the string.
	for _, c := range international {
		for _, alias := range c.Aliases {
			if strings.Contains(locLower, alias) {
				return &Evidence{
					Source:      SourceSystemLocation,
					Country:     c.Name,
					WorldRegion: c.Region,
					Confidence:  75,
				}
			}
		}
	}

	return nil
}

// stateEvidence builds SystemLocation evidence for a validated US state.
func stateEvidence(s StateRecord, city string, confidence int) *Evidence {
	return &Evidence{
		Source:      SourceSystemLocation,
		City:        city,
		State:       s.Name,
		StateCode:   s.Code,
		Country:     "United States",
		WorldRegion: s.Region,
		Confidence:  confidence,
	}
}

// cityByAbbrev resolves a city abbreviation ("WG") against the known-city
// table for a given state. The abbreviation may shorten the whole city name
// or any single word of it.
func cityByAbbrev(stateCode, abbrev string) (CityRecord, bool) {
	for _, c := range knownCities {
		if c.StateCode != stateCode {
			continue
		}
		cityLower := strings.ToLower(c.City)
		if strings.HasPrefix(cityLower, abbrev) {
			return c, true
		}
		for _, word := range strings.Fields(cityLower) {
			if strings.HasPrefix(word, abbrev) {
				return c, true
			}
		}
	}
	return CityRecord{}, false
}
