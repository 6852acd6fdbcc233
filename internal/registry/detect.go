package registry

import (
	"sort"

	"oes-harmonize/internal/match"
)

// Detection thresholds.
const (
	// DefaultMinDetectScore is the lowest score Best accepts.
	DefaultMinDetectScore = 0.8
	// unknownPenalty weighs the share of header columns a dialect does not know.
	unknownPenalty = 0.25
)

// Detection scores how well a raw header fits one dialect.
type Detection struct {
	Dialect string `json:"dialect"`
	// Matched are the dialect's raw columns present in the header.
	Matched []string `json:"matched"`
	// Missing are the dialect's raw columns absent from the header.
	Missing []string `json:"missing"`
	// Unknown are header columns the dialect does not rename.
	Unknown []string `json:"unknown"`
	// Score is matched/expected minus a penalty for unknown columns.
	Score float64 `json:"score"`
}

// DetectionList is sorted best first.
type DetectionList []Detection

// Detect ranks every registered dialect against a raw header. Headers are
// compared after match.NormalizeColumn, so case and separators do not matter.
func (r *Registry) Detect(columns []string) DetectionList {
	header := make(map[string]string, len(columns))
	for _, c := range columns {
		header[match.NormalizeColumn(c)] = c
	}

	out := make(DetectionList, 0, len(r.dialects))

	for _, id := range r.Dialects() {
		out = append(out, detectOne(r.dialects[id].dialect, header, len(columns)))
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}

		return out[i].Dialect < out[j].Dialect
	})

	return out
}

func detectOne(d *Dialect, header map[string]string, width int) Detection {
	det := Detection{Dialect: d.ID}
	known := make(map[string]struct{}, len(d.Rename))

	for _, raw := range d.RawColumns() {
		norm := match.NormalizeColumn(raw)
		known[norm] = struct{}{}

		if _, ok := header[norm]; ok {
			det.Matched = append(det.Matched, raw)
		} else {
			det.Missing = append(det.Missing, raw)
		}
	}

	for _, norm := range sortedKeys(header) {
		if _, ok := known[norm]; !ok {
			det.Unknown = append(det.Unknown, header[norm])
		}
	}

	if len(d.Rename) > 0 {
		det.Score = float64(len(det.Matched)) / float64(len(d.Rename))
	}

	if width > 0 {
		det.Score -= unknownPenalty * float64(len(det.Unknown)) / float64(width)
	}

	return det
}

// Best returns the top detection if it scores at least minScore and beats
// the runner-up, or nil.
func (l DetectionList) Best(minScore float64) *Detection {
	if len(l) == 0 || l[0].Score < minScore {
		return nil
	}

	if len(l) > 1 && l[1].Score == l[0].Score {
		return nil
	}

	return &l[0]
}
