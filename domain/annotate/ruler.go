package annotate

import (
	"sort"
	"strings"

	"knowmap-backend/domain/refdata"
)

type rulerPattern struct {
	words []string // surface tokens of the entity name
	label string   // uppercased entity type
}

/*
ruler retags known entity names inside an annotated document, the way the
original entity-recognition patterns were primed from the reference dataset.
Matching is case-sensitive on token surface forms, leftmost-longest; ruler
spans replace overlapping engine entities.
*/
type ruler struct {
	patterns []rulerPattern
}

func newRuler(lookups *refdata.Lookups) *ruler {
	ret := &ruler{}
	if lookups == nil {
		return ret
	}

	lookups.EachEntity(func(name, typ string) {
		words := strings.Fields(name)
		if len(words) == 0 {
			return
		}
		ret.patterns = append(ret.patterns, rulerPattern{
			words: words,
			label: strings.ToUpper(typ),
		})
	})

	// longest pattern first so multi-word names beat their prefixes
	sort.SliceStable(ret.patterns, func(i, j int) bool {
		return len(ret.patterns[i].words) > len(ret.patterns[j].words)
	})

	return ret
}

func (r *ruler) matchAt(doc *Document, start int) (rulerPattern, bool) {
	for _, pattern := range r.patterns {
		if start+len(pattern.words) > len(doc.Tokens) {
			continue
		}

		matched := true
		for i, word := range pattern.words {
			if doc.Tokens[start+i].Text != word {
				matched = false
				break
			}
		}

		if matched {
			return pattern, true
		}
	}

	return rulerPattern{}, false
}

func (r *ruler) apply(doc *Document) {
	if doc == nil || len(r.patterns) == 0 {
		return
	}

	var spans []Span

	for i := 0; i < len(doc.Tokens); {
		pattern, ok := r.matchAt(doc, i)
		if !ok {
			i++
			continue
		}

		end := i + len(pattern.words)
		spans = append(spans, Span{
			Start: i,
			End:   end,
			Label: pattern.label,
			Text:  doc.TokenRangeText(i, end),
		})
		i = end
	}

	if len(spans) == 0 {
		return
	}

	// keep engine entities that do not collide with a ruler span
	for _, ent := range doc.Ents {
		overlaps := false
		for _, span := range spans {
			if ent.Start < span.End && span.Start < ent.End {
				overlaps = true
				break
			}
		}
		if !overlaps {
			spans = append(spans, ent)
		}
	}

	sort.Slice(spans, func(i, j int) bool {
		return spans[i].Start < spans[j].Start
	})

	doc.Ents = spans
}
