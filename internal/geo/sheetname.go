package geo

import (
	"regexp"
	"strings"
)

// Generic tab labels that never carry location meaning.
var genericSheetNames = map[string]bool{
	"Default":             true,
	"DCA Hosted Services": true,
	"NRC":                 true,
	"Antilles":            true,
}

var (
	sheetTenantSuffix = regexp.MustCompile(`(?i)_Tenant$`)
	sheetExportPrefix = regexp.MustCompile(`(?i)^node-list-`)
)

// extractSheetName turns a spreadsheet tab label into ground-truth evidence.
// Tab names are maintained by hand upstream and are operationally guaranteed
// accurate, hence the 98 confidence and the conflict immunity the fusion step
// grants this source.
func extractSheetName(sheetName string) *Evidence {
	if sheetName == "" {
		return nil
	}

	clean := sheetTenantSuffix.ReplaceAllString(sheetName, "")
	clean = sheetExportPrefix.ReplaceAllString(clean, "")
	clean = strings.TrimSpace(strings.ReplaceAll(clean, "_", " "))

	if genericSheetNames[clean] {
		return nil
	}

	lower := strings.ToLower(clean)

	if s, ok := matchStateName(lower, true); ok {
		return &Evidence{
			Source:      SourceSheetName,
			State:       s.Name,
			StateCode:   s.Code,
			Country:     "United States",
			WorldRegion: s.Region,
			Confidence:  98,
		}
	}

	if c, ok := matchCountryName(lower); ok {
		return &Evidence{
			Source:      SourceSheetName,
			Country:     c.Name,
			WorldRegion: c.Region,
			Confidence:  98,
		}
	}

	return nil
}
