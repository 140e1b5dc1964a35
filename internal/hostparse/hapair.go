package hostparse

import "strings"

// IsHAPair reports whether two device names form a high-availability pair:
// either they share a template differing only in an s1/s2 site digit, or they
// carry the same prefix with complementary 01/02 suffixes. Comparison is
// case-insensitive and symmetric.
func IsHAPair(a, b string) bool {
	n1 := strings.ToLower(a)
	n2 := strings.ToLower(b)

	if siteTemplateMatch(n1, n2) || siteTemplateMatch(n2, n1) {
		return true
	}

	if len(n1) >= 2 && len(n2) >= 2 && n1[:len(n1)-2] == n2[:len(n2)-2] {
		s1, s2 := n1[len(n1)-2:], n2[len(n2)-2:]
		if (s1 == "01" && s2 == "02") || (s1 == "02" && s2 == "01") {
			return true
		}
	}

	return false
}

// siteTemplateMatch checks whether primary and secondary collapse to the same
// name once their first s1/s2 tokens are masked out.
func siteTemplateMatch(primary, secondary string) bool {
	if !strings.Contains(primary, "s1") || !strings.Contains(secondary, "s2") {
		return false
	}
	const mask = "\x00"
	return strings.Replace(primary, "s1", mask, 1) == strings.Replace(secondary, "s2", mask, 1)
}

// LinkPairs runs the pairwise HA scan over an already-parsed device list.
// names[i] must be the hostname that produced results[i]. Matched pairs get
// HasHA set and each other's name as HAPartner, replacing any partner guess
// synthesized during parsing. Call it after all per-device parsing is done;
// it is the one step that needs the whole list at once.
func LinkPairs(names []string, results []Result) {
	for i := range names {
		for j := i + 1; j < len(names); j++ {
			if !IsHAPair(names[i], names[j]) {
				continue
			}
			results[i].HasHA = true
			results[j].HasHA = true
			results[i].HAPartner = names[j]
			results[j].HAPartner = names[i]
		}
	}
}
