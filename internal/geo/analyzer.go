package geo

import (
	"math"
	"sort"

	"go.uber.org/zap"

	"github.com/MrNetsudo/NetAssets/internal/model"
)

// Analyzer runs the evidence extractors and fusion for single devices. It is
// stateless apart from the injected logger; the same input always produces
// the same verdict, and a single Analyzer is safe for concurrent use.
type Analyzer struct {
	log *zap.Logger
}

// NewAnalyzer returns an Analyzer logging through the given logger. Batch
// callers that want a quiet tight loop pass zap.NewNop().
func NewAnalyzer(log *zap.Logger) *Analyzer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Analyzer{log: log}
}

// Analyze extracts evidence from every field of the device record and fuses
// it into one verdict. Extractors run in priority order: sheet name first
// (ground truth), then hostname correlation against the sheet state, system
// location, tenant, and management IP.
func (a *Analyzer) Analyze(d model.DeviceRecord) ValidatedLocation {
	return a.fuse(a.collect(d))
}

// collect runs the extractors and assembles the per-device evidence list.
func (a *Analyzer) collect(d model.DeviceRecord) []Evidence {
	var results []Evidence

	if sheet := extractSheetName(d.SheetName); sheet != nil {
		results = append(results, *sheet)
		a.log.Debug("sheet name evidence",
			zap.String("device", d.DeviceName),
			zap.String("state", sheet.State),
			zap.String("country", sheet.Country),
			zap.Int("confidence", sheet.Confidence),
		)

		if corr := correlateHostname(d.DeviceName, *sheet); corr != nil {
			switch corr.Correlation {
			case CorrelationPositive:
				// The boost replaces the sheet evidence but keeps SheetName
				// as the source so fusion still treats it as ground truth.
				boosted := *corr
				boosted.Source = SourceSheetName
				results[0] = boosted
				a.log.Debug("hostname correlates with sheet state",
					zap.String("device", d.DeviceName),
					zap.String("state", sheet.State),
					zap.Int("confidence", boosted.Confidence),
				)
			case CorrelationNegative:
				// Informational only; the sheet still wins.
				a.log.Warn("hostname suggests different state than sheet",
					zap.String("device", d.DeviceName),
					zap.String("sheet_state", sheet.State),
					zap.String("hostname_state", corr.ConflictState),
				)
			}
		}
	}

	if ev := extractSystemLocation(d.SystemLocation); ev != nil {
		results = append(results, *ev)
	}

	tenant := d.Tenant
	if tenant == "" {
		tenant = d.Region
	}
	if ev := extractTenant(tenant); ev != nil {
		results = append(results, *ev)
	}

	if ev := extractIPAddress(d.ManagementIP); ev != nil {
		results = append(results, *ev)
	}

	return results
}

// fuse merges the evidence list into one verdict.
//
// Two tiers: when sheet-name evidence exists it is the base result and other
// sources may only supply a missing city (states that disagree with it are
// discarded, logged, and never affect the verdict). Without a sheet name, a
// lone source must score at least 85, and multiple sources must agree on
// state and country before their fields are merged highest-confidence-first,
// with the final score the rounded mean of the top two.
func (a *Analyzer) fuse(results []Evidence) ValidatedLocation {
	if len(results) == 0 {
		return Rejected()
	}

	for _, ev := range results {
		if ev.Source == SourceSheetName {
			return a.fuseWithGroundTruth(ev, results)
		}
	}

	if len(results) == 1 {
		if results[0].Confidence >= 85 {
			return accepted(results[0])
		}
		return Rejected()
	}

	var states, countries []string
	for _, ev := range results {
		if ev.State != "" {
			states = append(states, ev.State)
		}
		if ev.Country != "" {
			countries = append(countries, ev.Country)
		}
	}
	if disagree(states) {
		a.log.Warn("state disagreement across sources", zap.Strings("states", states))
		return Rejected()
	}
	if disagree(countries) {
		a.log.Warn("country disagreement across sources", zap.Strings("countries", countries))
		return Rejected()
	}

	// Merge fields highest-confidence-first, never overwriting a field once
	// filled. The sort is stable so extractor order breaks confidence ties.
	sorted := make([]Evidence, len(results))
	copy(sorted, results)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Confidence > sorted[j].Confidence
	})

	merged := ValidatedLocation{Validated: true}
	for _, ev := range sorted {
		if merged.City == "" {
			merged.City = ev.City
		}
		if merged.State == "" {
			merged.State = ev.State
		}
		if merged.StateCode == "" {
			merged.StateCode = ev.StateCode
		}
		if merged.Country == "" {
			merged.Country = ev.Country
		}
		if merged.WorldRegion == "" {
			merged.WorldRegion = ev.WorldRegion
		}
	}

	sum := sorted[0].Confidence
	n := 1
	if len(sorted) > 1 {
		sum += sorted[1].Confidence
		n = 2
	}
	merged.Confidence = clampConfidence(int(math.Round(float64(sum) / float64(n))))

	if merged.Confidence < 70 {
		a.log.Warn("combined confidence below threshold", zap.Int("confidence", merged.Confidence))
		return Rejected()
	}

	return merged
}

// fuseWithGroundTruth applies the sheet-name short circuit. The sheet
// evidence becomes the verdict; agreeing sources may fill in a missing city
// for a +2 boost, conflicting ones are dropped.
func (a *Analyzer) fuseWithGroundTruth(sheet Evidence, results []Evidence) ValidatedLocation {
	merged := accepted(sheet)

	for _, other := range results {
		if other.Source == SourceSheetName {
			continue
		}
		if other.State == "" || other.State == merged.State {
			if merged.City == "" && other.City != "" {
				merged.City = other.City
				if merged.Confidence += 2; merged.Confidence > 99 {
					merged.Confidence = 99
				}
			}
		} else {
			a.log.Debug("ignoring source conflicting with sheet name",
				zap.String("source", string(other.Source)),
				zap.String("source_state", other.State),
				zap.String("sheet_state", merged.State),
			)
		}
	}

	merged.Confidence = clampConfidence(merged.Confidence)
	return merged
}

func accepted(ev Evidence) ValidatedLocation {
	return ValidatedLocation{
		Country:     ev.Country,
		State:       ev.State,
		StateCode:   ev.StateCode,
		City:        ev.City,
		WorldRegion: ev.WorldRegion,
		Confidence:  clampConfidence(ev.Confidence),
		Validated:   true,
	}
}

// disagree reports whether a collected value set contains more than one
// distinct value.
func disagree(values []string) bool {
	if len(values) < 2 {
		return false
	}
	for _, v := range values[1:] {
		if v != values[0] {
			return true
		}
	}
	return false
}
