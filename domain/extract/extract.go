package extract

import (
	"strings"

	"knowmap-backend/domain/annotate"
)

var subjectDeps = map[string]struct{}{
	annotate.DepNsubj:     {},
	annotate.DepNsubjPass: {},
}

var objectDeps = map[string]struct{}{
	annotate.DepDobj:   {},
	annotate.DepPobj:   {},
	annotate.DepAttr:   {},
	annotate.DepDative: {},
	annotate.DepOprd:   {},
}

var fallbackObjectDeps = map[string]struct{}{
	annotate.DepDobj: {},
	annotate.DepPobj: {},
	annotate.DepAttr: {},
}

var fallbackPreps = map[string]struct{}{
	"to": {}, "with": {}, "on": {}, "in": {}, "by": {},
}

var copulaSurface = map[string]struct{}{
	"is": {}, "are": {}, "was": {}, "were": {},
}

/*
FromDocument extracts the deduplicated triples of one annotated document.
Two strategies run independently and their outputs are unioned: the primary
dependency pattern walk and the shallow surface-pattern fallback.
*/
func FromDocument(doc *annotate.Document) []Triple {
	if doc == nil || len(doc.Tokens) == 0 {
		return []Triple{}
	}

	e := docExtractor{doc: doc}

	candidates := e.dependencyTriples()
	candidates = append(candidates, e.surfaceTriples()...)

	return dedupTriples(candidates)
}

type docExtractor struct {
	doc *annotate.Document
}

func isVerbToken(token *annotate.Token) bool {
	return token.POS == annotate.POSVerb || token.POS == annotate.POSAux
}

/*
dependencyTriples walks every verb/auxiliary token and pairs each subject
child (nsubj, nsubjpass) with each object child (dobj, pobj, attr, dative,
oprd). A verb with several qualifying objects yields one triple per object.
*/
func (e *docExtractor) dependencyTriples() []Triple {
	var ret []Triple

	for i := range e.doc.Tokens {
		verb := &e.doc.Tokens[i]
		if !isVerbToken(verb) {
			continue
		}

		var subjects, objects []int
		for _, child := range e.doc.Children(i) {
			dep := e.doc.Tokens[child].Dep
			if _, ok := subjectDeps[dep]; ok {
				subjects = append(subjects, child)
			}
			if _, ok := objectDeps[dep]; ok {
				objects = append(objects, child)
			}
		}

		relation := strings.ToLower(verb.Lemma)
		for _, subject := range subjects {
			for _, object := range objects {
				ret = append(ret, Triple{
					Subject:  e.expandPhrase(subject),
					Relation: relation,
					Object:   e.expandPhrase(object),
				})
			}
		}
	}

	return ret
}

/*
surfaceTriples scans for three fixed linear patterns over consecutive tokens:

	(1) nsubj, verb/aux, direct/prepositional object or attribute
	(2) nsubj, verb/aux, preposition from {to, with, on, in, by}, pobj
	(3) nsubj, copula from {is, are, was, were}, attribute

Within a matched span the first token satisfying each role is picked, exactly
as the original fallback matcher does.
*/
func (e *docExtractor) surfaceTriples() []Triple {
	var ret []Triple

	for start := range e.doc.Tokens {
		for _, length := range e.matchLengthsAt(start) {
			if triple, ok := e.tripleFromSpan(start, start+length); ok {
				ret = append(ret, triple)
			}
		}
	}

	return ret
}

func (e *docExtractor) matchLengthsAt(start int) []int {
	tokens := e.doc.Tokens
	var ret []int

	lower := func(i int) string {
		return strings.ToLower(tokens[i].Text)
	}
	hasDep := func(i int, set map[string]struct{}) bool {
		_, ok := set[tokens[i].Dep]
		return ok
	}

	// (1) nsubj, verb/aux, object-role
	if start+3 <= len(tokens) &&
		tokens[start].Dep == annotate.DepNsubj &&
		isVerbToken(&tokens[start+1]) &&
		hasDep(start+2, fallbackObjectDeps) {
		ret = append(ret, 3)
	}

	// (2) nsubj, verb/aux, closed-set preposition, pobj
	if start+4 <= len(tokens) &&
		tokens[start].Dep == annotate.DepNsubj &&
		isVerbToken(&tokens[start+1]) &&
		mapHas(fallbackPreps, lower(start+2)) &&
		tokens[start+3].Dep == annotate.DepPobj {
		ret = append(ret, 4)
	}

	// (3) nsubj, copula surface form, attribute
	if start+3 <= len(tokens) &&
		tokens[start].Dep == annotate.DepNsubj &&
		mapHas(copulaSurface, lower(start+1)) &&
		tokens[start+2].Dep == annotate.DepAttr {
		ret = append(ret, 3)
	}

	return ret
}

func mapHas(set map[string]struct{}, key string) bool {
	_, ok := set[key]
	return ok
}

func (e *docExtractor) tripleFromSpan(start, end int) (Triple, bool) {
	subject, verb, object := -1, -1, -1

	for i := start; i < end; i++ {
		token := &e.doc.Tokens[i]
		switch {
		case token.Dep == annotate.DepNsubj && subject < 0:
			subject = i
		case isVerbToken(token) && verb < 0:
			verb = i
		case mapHas(fallbackObjectDeps, token.Dep) && object < 0:
			object = i
		}
	}

	if subject < 0 || verb < 0 || object < 0 {
		return Triple{}, false
	}

	return Triple{
		Subject:  e.expandPhrase(subject),
		Relation: strings.ToLower(e.doc.Tokens[verb].Lemma),
		Object:   e.expandPhrase(object),
	}, true
}

/*
expandPhrase widens a subject/object token to its full phrase: the containing
noun-phrase chunk if there is one, otherwise the contiguous span covering the
token's dependency subtree, otherwise the token's own text.
*/
func (e *docExtractor) expandPhrase(index int) string {
	if chunk, ok := e.doc.ChunkAt(index); ok {
		return chunk.Text
	}

	start, end := e.doc.SubtreeSpan(index)
	if text := e.doc.TokenRangeText(start, end); text != "" {
		return text
	}

	return e.doc.Tokens[index].Text
}
