// Package hostparse decodes the structural naming convention embedded in
// device hostnames: jurisdiction prefix, site type, pod/stack digits, device
// role, and high-availability pairing. Scores are additive heuristic weights
// clamped to [0,100]; they live on a different scale than the location
// analyzer's confidence and are never compared against it.
package hostparse

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/MrNetsudo/NetAssets/internal/geo"
)

// Result holds everything a hostname (plus optional system location and IP
// address) reveals about a device. Zero value means "nothing recognized".
type Result struct {
	Country      string `json:"country,omitempty"`
	State        string `json:"state,omitempty"`
	StateCode    string `json:"stateCode,omitempty"`
	City         string `json:"city,omitempty"`
	Jurisdiction string `json:"jurisdiction,omitempty"`

	SiteType string `json:"siteType,omitempty"`
	SiteName string `json:"siteName,omitempty"`
	Pod      string `json:"pod,omitempty"`
	Stack    string `json:"stack,omitempty"`

	DeviceRole     string `json:"deviceRole,omitempty"`
	DeviceFunction string `json:"deviceFunction,omitempty"`
	Vendor         string `json:"vendor,omitempty"`

	HAGroup   string `json:"haGroup,omitempty"`
	HARole    string `json:"haRole,omitempty"`
	IsPrimary bool   `json:"isPrimary"`
	HAPartner string `json:"haPartner,omitempty"`
	HasHA     bool   `json:"hasHA"`

	Confidence int `json:"confidence"`
}

type jurisdictionEntry struct {
	prefix       string
	jurisdiction string
	state        string
	stateCode    string
	country      string
}

// Order matters: longer operator prefixes (lil, ris, risp) must be tried
// before the bare two-letter state codes they start with.
var jurisdictions = []jurisdictionEntry{
	{"lil", "Lottery IL", "Illinois", "IL", "US"},
	{"ris", "RI Sports", "Rhode Island", "RI", "US"},
	{"risp", "RI Sports", "Rhode Island", "RI", "US"},
	{"ri", "Rhode Island", "Rhode Island", "RI", "US"},
	{"tx", "Texas", "Texas", "TX", "US"},
	{"ant", "Antilles", "Antilles", "ANT", "Caribbean"},
	{"usvi", "US Virgin Islands", "US Virgin Islands", "VI", "US"},
	{"atc", "ATC", "Unknown", "ATC", "US"},
	{"ca", "California", "California", "CA", "US"},
	{"co", "Colorado", "Colorado", "CO", "US"},
	{"ct", "Connecticut", "Connecticut", "CT", "US"},
	{"fl", "Florida", "Florida", "FL", "US"},
	{"ga", "Georgia", "Georgia", "GA", "US"},
	{"in", "Indiana", "Indiana", "IN", "US"},
	{"ky", "Kentucky", "Kentucky", "KY", "US"},
	{"mi", "Michigan", "Michigan", "MI", "US"},
	{"mn", "Minnesota", "Minnesota", "MN", "US"},
	{"ms", "Mississippi", "Mississippi", "MS", "US"},
	{"mo", "Missouri", "Missouri", "MO", "US"},
	{"ne", "Nebraska", "Nebraska", "NE", "US"},
	{"nj", "New Jersey", "New Jersey", "NJ", "US"},
	{"ny", "New York", "New York", "NY", "US"},
	{"nc", "North Carolina", "North Carolina", "NC", "US"},
	{"or", "Oregon", "Oregon", "OR", "US"},
	{"sc", "South Carolina", "South Carolina", "SC", "US"},
	{"sd", "South Dakota", "South Dakota", "SD", "US"},
	{"tn", "Tennessee", "Tennessee", "TN", "US"},
	{"va", "Virginia", "Virginia", "VA", "US"},
	{"wa", "Washington", "Washington", "WA", "US"},
	{"wv", "West Virginia", "West Virginia", "WV", "US"},
	{"wi", "Wisconsin", "Wisconsin", "WI", "US"},
}

type cityEntry struct {
	key       string
	city      string
	state     string
	stateCode string
}

var cityCodes = []cityEntry{
	{"austin", "Austin", "Texas", "TX"},
	{"aust", "Austin", "Texas", "TX"},
	{"west greenwich", "West Greenwich", "Rhode Island", "RI"},
	{"wg", "West Greenwich", "Rhode Island", "RI"},
	{"st.thomas", "St. Thomas", "US Virgin Islands", "VI"},
	{"st thomas", "St. Thomas", "US Virgin Islands", "VI"},
}

// Most specific first so DCA2/DCA3 are not swallowed by the bare DCA check.
var siteTypes = []struct {
	needle string
	label  string
}{
	{"dca3", "DCA3"},
	{"dca2", "DCA2"},
	{"dca1", "DCA"},
	{"dca", "DCA"},
	{"pdc", "PDC"},
	{"bdc", "BDC"},
	{"cat", "CAT"},
	{"hub", "Hub"},
}

type roleEntry struct {
	needle   string
	role     string
	function string
	vendor   string
}

var deviceRoles = []roleEntry{
	{"fw", "Firewall", "Security", ""},
	{"firewall", "Firewall", "Security", ""},
	{"crsw", "Core Switch", "Core Switching", ""},
	{"wansw", "WAN Switch", "WAN Edge", ""},
	{"vtlb", "Virtual Load Balancer", "Load Balancing", ""},
	{"lb", "Load Balancer", "Load Balancing", ""},
	{"corertr", "Core Router", "Core Routing", ""},
	{"swleaf", "Leaf Switch", "Access Switching", ""},
	{"swspine", "Spine Switch", "Core Switching", ""},
	{"hp", "HP Server", "Compute", "Hewlett Packard"},
	{"acon", "Console Server", "Management", ""},
	{"lantronix", "Console Server", "Management", "Lantronix"},
	{"pix", "Firewall", "Security", "Cisco"},
	{"asa", "Firewall", "Security", "Cisco"},
}

type ipSiteEntry struct {
	prefix string
	city   string
	state  string
	site   string
}

var ipSites = []ipSiteEntry{
	{"10.215.49.", "Austin", "Texas", "Site 1"},
	{"10.215.59.", "West Greenwich", "Rhode Island", "Site 2"},
	{"10.96.237.", "Providence", "Rhode Island", "Site 1"},
	{"10.96.247.", "Providence", "Rhode Island", "Site 2"},
	{"172.25.1.", "Austin", "Texas", "DCA"},
	{"172.25.245.", "Austin", "Texas", "DCA3"},
	{"156.24.", "West Greenwich", "Rhode Island", "Hub"},
	{"10.203.58.", "West Greenwich", "Rhode Island", "DCA2"},
	{"10.201.201.", "Austin", "Texas", "DCA3"},
}

var (
	rePod      = regexp.MustCompile(`p(\d+)`)
	reStack    = regexp.MustCompile(`s(\d+)`)
	reSuffix   = regexp.MustCompile(`(\d{2})$`)
	reLocState = regexp.MustCompile(`,\s*([A-Z]{2})\b`)
	reLocCity  = regexp.MustCompile(`^([^,]+),\s*[A-Z]{2}`)
)

// Parse decodes a single hostname. The optional systemLocation and ipAddress
// arguments only assist fields the hostname itself did not establish; an empty
// hostname returns the zero Result.
func Parse(hostname, systemLocation, ipAddress string) Result {
	var r Result
	if hostname == "" {
		return r
	}

	lower := strings.ToLower(hostname)
	locLower := strings.ToLower(systemLocation)
	score := 0

	for _, j := range jurisdictions {
		if strings.HasPrefix(lower, j.prefix) {
			r.Jurisdiction = j.jurisdiction
			r.State = j.state
			r.StateCode = j.stateCode
			r.Country = j.country
			score += 30
			break
		}
	}

	for _, c := range cityCodes {
		if strings.Contains(locLower, c.key) {
			r.City = c.city
			if r.State == "" {
				r.State = c.state
			}
			if r.StateCode == "" {
				r.StateCode = c.stateCode
			}
			score += 20
			break
		}
	}
	if strings.Contains(lower, "aust") || strings.Contains(lower, "austin") {
		r.City = "Austin"
		if r.State == "" {
			r.State = "Texas"
		}
		if r.StateCode == "" {
			r.StateCode = "TX"
		}
		score += 15
	}

	for _, s := range siteTypes {
		if strings.Contains(lower, s.needle) || strings.Contains(locLower, s.needle) {
			r.SiteType = s.label
			score += 15
			break
		}
	}

	if m := rePod.FindStringSubmatch(lower); m != nil {
		r.Pod = "Pod " + m[1]
		score += 10
	}

	var siteDigit string
	if m := reStack.FindStringSubmatch(lower); m != nil {
		siteDigit = m[1]
		r.Stack = "Site " + siteDigit
		r.HAGroup = siteDigit
		score += 10
	}

	for _, d := range deviceRoles {
		if strings.Contains(lower, d.needle) {
			r.DeviceRole = d.role
			r.DeviceFunction = d.function
			if d.vendor != "" {
				r.Vendor = d.vendor
			}
			score += 25
			break
		}
	}

	if siteDigit != "" {
		switch siteDigit {
		case "1":
			r.IsPrimary = true
			r.HARole = "Primary"
			r.HAPartner = strings.Replace(hostname, "s1", "s2", 1)
		case "2":
			r.IsPrimary = false
			r.HARole = "Secondary"
			r.HAPartner = strings.Replace(hostname, "s2", "s1", 1)
		}
		score += 15
	}

	if m := reSuffix.FindStringSubmatch(lower); m != nil {
		// Metadata-only fallback: no score, and an explicit HA role from the
		// site digit is kept.
		switch n, _ := strconv.Atoi(m[1]); n {
		case 1:
			r.IsPrimary = true
			if r.HARole == "" {
				r.HARole = "Primary"
			}
		case 2:
			r.IsPrimary = false
			if r.HARole == "" {
				r.HARole = "Secondary"
			}
		}
	}

	if ipAddress != "" {
		for _, e := range ipSites {
			if strings.HasPrefix(ipAddress, e.prefix) {
				if r.City == "" {
					r.City = e.city
				}
				if r.State == "" {
					r.State = e.state
				}
				if r.SiteType == "" && e.site != "" {
					r.SiteName = e.site
				}
				score += 10
				break
			}
		}
	}

	if m := reLocState.FindStringSubmatch(systemLocation); m != nil {
		code := m[1]
		if r.StateCode == "" {
			r.StateCode = code
		}
		if r.State == "" {
			if rec, ok := geo.StateByCode(code); ok {
				r.State = rec.Name
			}
		}
		score += 15
	}
	if m := reLocCity.FindStringSubmatch(systemLocation); m != nil && r.City == "" {
		r.City = strings.TrimSpace(m[1])
		score += 10
	}

	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}
	r.Confidence = score
	return r
}
