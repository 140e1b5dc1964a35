package geo

import "strings"

// extractIPAddress prefix-matches a management IP against the range table.
// A private-range hit returns nil deliberately: private addressing carries no
// geographic signal, which is a different statement from "no rule matched"
// even though both produce no evidence.
func extractIPAddress(ipAddress string) *Evidence {
	if ipAddress == "" {
		return nil
	}

	for _, r := range ipRanges {
		if !strings.HasPrefix(ipAddress, r.Prefix) {
			continue
		}
		if r.Location == nil {
			return nil
		}

		confidence := r.Location.Confidence
		if confidence == 0 {
			confidence = 50
		}
		country := ""
		if r.Location.Region == RegionUS {
			country = "United States"
		}
		return &Evidence{
			Source:      SourceIPAddress,
			City:        r.Location.City,
			State:       r.Location.State,
			StateCode:   r.Location.StateCode,
			Country:     country,
			WorldRegion: r.Location.Region,
			Confidence:  confidence,
		}
	}

	return nil
}
