package geo

import (
	"regexp"
	"strings"
)

var reTenantName = regexp.MustCompile(`^([A-Za-z\s]+)(?:_Tenant)?$`)

// extractTenant matches a tenant label ("Texas_Tenant", "Wisconsin") against
// the state and international tables. Tenant labels are weaker than location
// strings, so a hit only scores 70 and needs corroboration to validate.
func extractTenant(tenant string) *Evidence {
	if tenant == "" || tenant == "Default Tenant" {
		return nil
	}

	m := reTenantName.FindStringSubmatch(tenant)
	if m == nil {
		return nil
	}
	lower := strings.ToLower(strings.TrimSpace(m[1]))

	if s, ok := matchStateName(lower, false); ok {
		return &Evidence{
			Source:      SourceTenant,
			State:       s.Name,
			StateCode:   s.Code,
			Country:     "United States",
			WorldRegion: s.Region,
			Confidence:  70,
		}
	}

	if c, ok := matchCountryName(lower); ok {
		return &Evidence{
			Source:      SourceTenant,
			Country:     c.Name,
			WorldRegion: c.Region,
			Confidence:  70,
		}
	}

	return nil
}
