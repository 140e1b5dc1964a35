// Package report aggregates classification output into batch statistics.
package report

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"github.com/rotisserie/eris"

	"github.com/MrNetsudo/NetAssets/internal/classify"
)

// Confidence histogram bucket labels, highest first.
var bucketLabels = []string{"95-100", "90-94", "85-89", "80-84", "75-79", "70-74", "<70"}

// Summary is the aggregate view of one classification run.
type Summary struct {
	Total     int `json:"total"`
	Validated int `json:"validated"`
	Rejected  int `json:"rejected"`

	ValidatedPct  float64 `json:"validated_pct"`
	AvgConfidence float64 `json:"avg_confidence"`

	ByRegion map[string]int `json:"by_region"`
	ByState  map[string]int `json:"by_state"`
	Buckets  map[string]int `json:"buckets"`

	// Raw system-location strings that most often failed validation,
	// most frequent first. Capped at ten entries.
	TopRejectedLocations []LocationCount `json:"top_rejected_locations"`
}

// LocationCount pairs a raw location string with its occurrence count.
type LocationCount struct {
	Location string `json:"location"`
	Count    int    `json:"count"`
}

// Summarize builds the aggregate statistics for a batch of results.
func Summarize(results []classify.Result) Summary {
	s := Summary{
		Total:    len(results),
		ByRegion: make(map[string]int),
		ByState:  make(map[string]int),
		Buckets:  make(map[string]int),
	}

	rejectedLocs := make(map[string]int)
	confidenceSum := 0

	for _, r := range results {
		if !r.Location.Validated {
			s.Rejected++
			if loc := r.Device.SystemLocation; loc != "" {
				rejectedLocs[loc]++
			}
			continue
		}

		s.Validated++
		confidenceSum += r.Location.Confidence
		s.ByRegion[string(r.Location.WorldRegion)]++
		if r.Location.State != "" {
			s.ByState[r.Location.State]++
		}
		s.Buckets[bucketFor(r.Location.Confidence)]++
	}

	if s.Total > 0 {
		s.ValidatedPct = float64(s.Validated) / float64(s.Total) * 100
	}
	if s.Validated > 0 {
		s.AvgConfidence = float64(confidenceSum) / float64(s.Validated)
	}

	s.TopRejectedLocations = topLocations(rejectedLocs, 10)
	return s
}

func bucketFor(confidence int) string {
	switch {
	case confidence >= 95:
		return "95-100"
	case confidence >= 90:
		return "90-94"
	case confidence >= 85:
		return "85-89"
	case confidence >= 80:
		return "80-84"
	case confidence >= 75:
		return "75-79"
	case confidence >= 70:
		return "70-74"
	default:
		return "<70"
	}
}

func topLocations(counts map[string]int, limit int) []LocationCount {
	out := make([]LocationCount, 0, len(counts))
	for loc, n := range counts {
		out = append(out, LocationCount{Location: loc, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Location < out[j].Location
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// WriteText renders the console report.
func (s Summary) WriteText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "Devices analyzed:\t%d\n", s.Total)
	fmt.Fprintf(tw, "Validated:\t%d (%.1f%%)\n", s.Validated, s.ValidatedPct)
	fmt.Fprintf(tw, "Rejected:\t%d\n", s.Rejected)
	if s.Validated > 0 {
		fmt.Fprintf(tw, "Avg confidence:\t%.1f\n", s.AvgConfidence)
	}

	if len(s.ByRegion) > 0 {
		fmt.Fprintln(tw, "\nBy region:")
		for _, k := range sortedKeys(s.ByRegion) {
			fmt.Fprintf(tw, "  %s\t%d\n", k, s.ByRegion[k])
		}
	}

	if len(s.ByState) > 0 {
		fmt.Fprintln(tw, "\nBy state:")
		for _, k := range sortedKeys(s.ByState) {
			fmt.Fprintf(tw, "  %s\t%d\n", k, s.ByState[k])
		}
	}

	if len(s.Buckets) > 0 {
		fmt.Fprintln(tw, "\nConfidence distribution:")
		for _, label := range bucketLabels {
			if n, ok := s.Buckets[label]; ok {
				fmt.Fprintf(tw, "  %s\t%d\n", label, n)
			}
		}
	}

	if len(s.TopRejectedLocations) > 0 {
		fmt.Fprintln(tw, "\nMost common rejected locations:")
		for _, lc := range s.TopRejectedLocations {
			fmt.Fprintf(tw, "  %q\t%d\n", lc.Location, lc.Count)
		}
	}

	if err := tw.Flush(); err != nil {
		return eris.Wrap(err, "report: flush")
	}
	return nil
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
