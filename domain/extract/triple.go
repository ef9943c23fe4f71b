package extract

import "strings"

/*
Triple is one (subject, relation, object) fact extracted from text. All three
fields are non-empty after trimming; the relation is a lowercased verb lemma.
Triples are never mutated after creation.
*/
type Triple struct {
	Subject  string `json:"subject"`
	Relation string `json:"relation"`
	Object   string `json:"object"`
}

func (t Triple) trimmed() Triple {
	return Triple{
		Subject:  strings.TrimSpace(t.Subject),
		Relation: strings.TrimSpace(t.Relation),
		Object:   strings.TrimSpace(t.Object),
	}
}

func (t Triple) complete() bool {
	return t.Subject != "" && t.Relation != "" && t.Object != ""
}

/*
dedupTriples trims every candidate, drops incomplete ones and keeps each
unique tuple once (case-sensitive comparison). First-seen order is preserved,
but callers must not rely on any particular order.
*/
func dedupTriples(candidates []Triple) []Triple {
	seen := make(map[Triple]struct{}, len(candidates))
	ret := make([]Triple, 0, len(candidates))

	for _, candidate := range candidates {
		triple := candidate.trimmed()
		if !triple.complete() {
			continue
		}

		if _, ok := seen[triple]; ok {
			continue
		}

		seen[triple] = struct{}{}
		ret = append(ret, triple)
	}

	return ret
}
