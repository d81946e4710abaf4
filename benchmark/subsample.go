package benchmark

import (
	"strconv"
	"strings"

	"github.com/knakk/rdf"

	"github.com/mindcube/mindcube/vocabulary/mh"
)

// Subsample returns the triples whose subject is a Person entity with row
// identifier <= maxUserID, plus every dimension-entity triple regardless of
// the cutoff. Dimension entities are shared reference data, so they stay in
// full even when no remaining Person references them. Per-row fact subjects
// (mental_health/, lifestyle/, measurement/) are not retained.
func Subsample(triples []rdf.Triple, maxUserID int) []rdf.Triple {
	userPrefix := mh.Namespace + mh.SegmentUser + "/"

	dimPrefixes := make([]string, 0, len(mh.DimensionSegments))
	for _, seg := range mh.DimensionSegments {
		dimPrefixes = append(dimPrefixes, mh.Namespace+seg+"/")
	}

	var out []rdf.Triple
	for _, t := range triples {
		if t.Subj.Type() != rdf.TermIRI {
			continue
		}
		subj := t.Subj.String()

		if strings.HasPrefix(subj, userPrefix) {
			id, err := strconv.Atoi(subj[len(userPrefix):])
			if err == nil && id <= maxUserID {
				out = append(out, t)
			}
			continue
		}

		for _, prefix := range dimPrefixes {
			if strings.HasPrefix(subj, prefix) {
				out = append(out, t)
				break
			}
		}
	}
	return out
}
