// Package importer loads device inventories from XLSX workbooks and CSV
// exports, mapping whatever column headers the monitoring system produced
// onto the canonical record fields.
package importer

import (
	"regexp"
	"strings"
)

// Candidate header names per canonical field, tried in order.
var (
	NameColumns     = []string{"name", "device name", "hostname"}
	LocationColumns = []string{"system location", "location"}
	TenantColumns   = []string{"tenant"}
	RegionColumns   = []string{"region"}
	IPColumns       = []string{"management ip", "management address", "ip address", "ip"}
)

// FindColumn maps a canonical field onto a header index. Exact matches win;
// otherwise the candidates are retried as whole-word partial matches guarded
// by exclusion rules, because NMS exports are full of near-miss headers:
// "state last modified" must not satisfy a geographic "state" lookup, nor
// "management address icmp state" an "ip" lookup. Returns -1 when nothing
// matches.
func FindColumn(headers []string, candidates []string) int {
	lower := make([]string, len(headers))
	for i, h := range headers {
		lower[i] = strings.ToLower(strings.TrimSpace(h))
	}

	for _, name := range candidates {
		n := strings.ToLower(name)
		for i, h := range lower {
			if h == n {
				return i
			}
		}
	}

	for _, name := range candidates {
		n := strings.ToLower(name)
		re := regexp.MustCompile(`\b` + regexp.QuoteMeta(n) + `\b`)
		for i, h := range lower {
			if excludedHeader(n, h) {
				continue
			}
			if re.MatchString(h) {
				return i
			}
		}
	}

	return -1
}

func excludedHeader(name, header string) bool {
	// Boolean/HA columns never back a text field.
	if strings.Contains(header, "ha ") || strings.Contains(header, "configured") {
		return true
	}

	if name == "state" || name == "province" {
		if containsAny(header,
			"modified", "last", "admin", "oper", "discovery",
			"icmp", "snmp", "agent", "power", "link", "port",
			"device", "interface", "connection") {
			return true
		}
	}

	if strings.Contains(name, "ip") || strings.Contains(name, "address") {
		if containsAny(header,
			"modified", "last", "time", "date", "discovery", "learned",
			"first", "updated", "changed", "timestamp", "scan", "added",
			"created", "when", "aging") {
			return true
		}
	}

	if strings.Contains(header, "status") && !strings.Contains(name, "status") {
		return true
	}

	if name == "sn" || name == "s/n" {
		if containsAny(header, "snmp", "agent", "enabled", "protocol", "version", "monitoring") {
			return true
		}
	}

	if name == "ip" {
		if containsAny(header, "icmp", "snmp", "description", "script", "chip", "equip") {
			return true
		}
	}

	return false
}

func containsAny(s string, needles ...string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}

// columnMap holds the resolved header indexes of one sheet.
type columnMap struct {
	name     int
	location int
	tenant   int
	region   int
	ip       int
}

func resolveColumns(headers []string) columnMap {
	return columnMap{
		name:     FindColumn(headers, NameColumns),
		location: FindColumn(headers, LocationColumns),
		tenant:   FindColumn(headers, TenantColumns),
		region:   FindColumn(headers, RegionColumns),
		ip:       FindColumn(headers, IPColumns),
	}
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
