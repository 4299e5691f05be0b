package mullion

import (
	"fmt"
	"math"
	"sort"
)

// rank orders the evaluable candidates: passing sections first, sorted by
// SLS utilisation descending (closest to the deflection limit without
// crossing it), then failing sections by max utilisation ascending. Stable
// sorts keep equal keys in catalog order, so reruns are bit-identical.
func rank(raw []SectionResult) []SectionResult {
	var passing, failing []SectionResult
	for _, r := range raw {
		if !r.Evaluable {
			continue
		}
		if r.MaxUtil <= 1.0 {
			passing = append(passing, r)
		} else {
			failing = append(failing, r)
		}
	}
	sort.SliceStable(passing, func(i, j int) bool {
		return passing[i].SLSUtil > passing[j].SLSUtil
	})
	sort.SliceStable(failing, func(i, j int) bool {
		return failing[i].MaxUtil < failing[j].MaxUtil
	})
	return append(passing, failing...)
}

// recommend picks the shallowest section passing both checks. Equal depths
// are broken by the larger combined utilisation distance
// sqrt(ULS² + SLS²) — the most material-efficient of the equally shallow
// options. Remaining exact ties go to the earliest catalog row.
func recommend(raw []SectionResult) Recommendation {
	best := -1
	for i, r := range raw {
		if !r.Evaluable || r.ULSUtil > 1.0 || r.SLSUtil > 1.0 {
			continue
		}
		if best < 0 {
			best = i
			continue
		}
		b := raw[best]
		switch {
		case r.DepthMM < b.DepthMM:
			best = i
		case r.DepthMM == b.DepthMM && utilDistance(r) > utilDistance(b):
			best = i
		}
	}
	if best < 0 {
		return Recommendation{
			Found: false,
			Note:  "No suitable profile - choose a custom one!",
		}
	}
	r := raw[best]
	return Recommendation{
		Found:    true,
		Supplier: r.Supplier,
		Profile:  r.Profile,
		DepthMM:  r.DepthMM,
		ULSUtil:  r.ULSUtil,
		SLSUtil:  r.SLSUtil,
		Note:     fmt.Sprintf("Recommended Profile: %s: %s", r.Supplier, r.Profile),
	}
}

func utilDistance(r SectionResult) float64 {
	return math.Sqrt(r.ULSUtil*r.ULSUtil + r.SLSUtil*r.SLSUtil)
}
