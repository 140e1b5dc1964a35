package geo

import (
	"embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var tableFS embed.FS

// StateRecord describes one US state or territory.
type StateRecord struct {
	Code    string      `yaml:"code"`
	Name    string      `yaml:"name"`
	Region  WorldRegion `yaml:"region"`
	Aliases []string    `yaml:"aliases"`
}

// CountryRecord describes one international location.
type CountryRecord struct {
	Code    string      `yaml:"code"`
	Name    string      `yaml:"name"`
	Region  WorldRegion `yaml:"region"`
	Aliases []string    `yaml:"aliases"`
}

// CityRecord describes one known city, keyed by its lowercase lookup string.
type CityRecord struct {
	Key       string `yaml:"key"`
	City      string `yaml:"city"`
	State     string `yaml:"state"`
	StateCode string `yaml:"state_code"`
}

// IPLocation is the geographic payload of an IP range rule.
type IPLocation struct {
	City       string      `yaml:"city"`
	State      string      `yaml:"state"`
	StateCode  string      `yaml:"state_code"`
	Region     WorldRegion `yaml:"region"`
	Confidence int         `yaml:"confidence"`
}

// IPRangeRecord maps an address prefix to a location. A nil Location marks
// private addressing: the prefix matched, but no geographic inference is
// possible. That is distinct from no rule matching at all.
type IPRangeRecord struct {
	Prefix   string      `yaml:"prefix"`
	Note     string      `yaml:"note"`
	Location *IPLocation `yaml:"location"`
}

// Reference tables, loaded once at process start and read-only afterwards.
// The slices preserve file order for the cascades that depend on it; the maps
// serve lookup-by-code.
var (
	usStates      []StateRecord
	usStateByCode map[string]StateRecord
	international []CountryRecord
	knownCities   []CityRecord
	ipRanges      []IPRangeRecord
)

func init() {
	mustLoad("data/states.yaml", &usStates)
	mustLoad("data/international.yaml", &international)
	mustLoad("data/cities.yaml", &knownCities)
	mustLoad("data/ip_ranges.yaml", &ipRanges)

	usStateByCode = make(map[string]StateRecord, len(usStates))
	for _, s := range usStates {
		usStateByCode[s.Code] = s
	}
}

func mustLoad(name string, dst any) {
	raw, err := tableFS.ReadFile(name)
	if err != nil {
		panic(fmt.Sprintf("geo: read embedded table %s: %v", name, err))
	}
	if err := yaml.Unmarshal(raw, dst); err != nil {
		panic(fmt.Sprintf("geo: parse embedded table %s: %v", name, err))
	}
}

// StateByCode looks up a US state by its two-letter code.
func StateByCode(code string) (StateRecord, bool) {
	s, ok := usStateByCode[strings.ToUpper(code)]
	return s, ok
}

// StateName returns the full state name for a two-letter code, or the code
// itself when unknown.
func StateName(code string) string {
	if s, ok := StateByCode(code); ok {
		return s.Name
	}
	return code
}

// matchStateName finds a state whose name or alias equals the given
// lowercase string. When squash is true, names are also compared with all
// spaces removed (sheet names like "newyork").
func matchStateName(lower string, squash bool) (StateRecord, bool) {
	squashed := strings.ReplaceAll(lower, " ", "")
	for _, s := range usStates {
		nameLower := strings.ToLower(s.Name)
		if nameLower == lower {
			return s, true
		}
		for _, a := range s.Aliases {
			if a == lower {
				return s, true
			}
		}
		if squash && strings.ReplaceAll(nameLower, " ", "") == squashed {
			return s, true
		}
	}
	return StateRecord{}, false
}

// matchCountryName finds an international location whose name or alias equals
// the given lowercase string.
func matchCountryName(lower string) (CountryRecord, bool) {
	for _, c := range international {
		if strings.ToLower(c.Name) == lower {
			return c, true
		}
		for _, a := range c.Aliases {
			if a == lower {
				return c, true
			}
		}
	}
	return CountryRecord{}, false
}
