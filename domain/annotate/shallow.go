package annotate

import (
	"context"
	"strings"

	prose "github.com/tsawler/prose/v3"
)

/*
ShallowEngine is the built-in fallback Engine. It runs prose for tokenization,
part-of-speech tagging and named-entity recognition, then assigns dependency
roles with linear heuristics over noun chunks. The heuristics cover the
subject/object/attribute roles the extractor consumes; anything subtler needs
the remote parser.
*/
type ShallowEngine struct{}

func NewShallowEngine() *ShallowEngine {
	return &ShallowEngine{}
}

func (e *ShallowEngine) Annotate(ctx context.Context, text string) (*Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	pdoc, err := prose.NewDocument(text)
	if err != nil {
		return nil, err
	}

	words := make([]taggedWord, 0, len(pdoc.Tokens()))
	for _, token := range pdoc.Tokens() {
		words = append(words, taggedWord{text: token.Text, tag: token.Tag})
	}

	doc := buildShallowDocument(text, words)
	attachEntities(doc, pdoc)

	return doc, nil
}

type taggedWord struct {
	text string
	tag  string // Penn Treebank tag
}

var copulaForms = map[string]struct{}{
	"is": {}, "are": {}, "was": {}, "were": {}, "am": {}, "be": {}, "been": {}, "being": {},
}

func coarsePOS(word taggedWord) string {
	lower := strings.ToLower(word.text)
	if _, ok := copulaForms[lower]; ok {
		return POSAux
	}

	switch {
	case strings.HasPrefix(word.tag, "VB"):
		return POSVerb
	case word.tag == "MD":
		return POSAux
	case word.tag == "NNP" || word.tag == "NNPS":
		return POSPropn
	case strings.HasPrefix(word.tag, "NN"):
		return POSNoun
	case strings.HasPrefix(word.tag, "JJ"):
		return POSAdj
	case word.tag == "DT" || word.tag == "PDT":
		return POSDet
	case word.tag == "IN" || word.tag == "TO":
		return POSAdp
	case strings.HasPrefix(word.tag, "PRP"):
		return POSPron
	case word.tag == "CD":
		return POSNum
	case strings.HasPrefix(word.tag, "RB"):
		return POSAdv
	case word.tag == "." || word.tag == "," || word.tag == ":" || word.tag == "(" || word.tag == ")":
		return POSPunct
	default:
		return POSOther
	}
}

func isNouny(pos string) bool {
	return pos == POSNoun || pos == POSPropn || pos == POSPron
}

func isChunkable(pos string) bool {
	return isNouny(pos) || pos == POSAdj || pos == POSDet || pos == POSNum
}

func isVerbal(pos string) bool {
	return pos == POSVerb || pos == POSAux
}

func isSentenceEnd(word taggedWord) bool {
	return word.text == "." || word.text == "!" || word.text == "?"
}

/*
buildShallowDocument turns tagged words into a Document: coarse POS, noun
chunks (maximal runs of determiner/adjective/noun tokens holding at least one
noun), and heuristic dependency roles assigned chunk-wise. The chunk's last
noun is its head; the remaining chunk tokens attach to it as compounds.
*/
func buildShallowDocument(text string, words []taggedWord) *Document {
	doc := &Document{Text: text}

	doc.Tokens = make([]Token, len(words))
	for i, word := range words {
		pos := coarsePOS(word)
		doc.Tokens[i] = Token{
			Text:  word.text,
			Lemma: lemmaOf(word.text, pos),
			POS:   pos,
			Dep:   DepOther,
			Head:  i,
		}
	}

	doc.Chunks = findNounChunks(doc)
	assignRoles(doc, words)

	return doc
}

func findNounChunks(doc *Document) []Span {
	var ret []Span

	for i := 0; i < len(doc.Tokens); {
		if !isChunkable(doc.Tokens[i].POS) {
			i++
			continue
		}

		end := i
		hasNoun := false
		for end < len(doc.Tokens) && isChunkable(doc.Tokens[end].POS) {
			if isNouny(doc.Tokens[end].POS) {
				hasNoun = true
			}
			end++
		}

		if hasNoun {
			ret = append(ret, Span{
				Start: i,
				End:   end,
				Text:  doc.TokenRangeText(i, end),
			})
		}

		i = end
	}

	return ret
}

// chunkHead is the last noun-like token of the chunk.
func chunkHead(doc *Document, chunk Span) int {
	for i := chunk.End - 1; i >= chunk.Start; i-- {
		if isNouny(doc.Tokens[i].POS) {
			return i
		}
	}
	return chunk.End - 1
}

func nextVerbAfter(doc *Document, index, limit int) int {
	for i := index; i < limit && i < len(doc.Tokens); i++ {
		if isVerbal(doc.Tokens[i].POS) {
			return i
		}
	}
	return -1
}

func assignRoles(doc *Document, words []taggedWord) {
	// sentence boundaries keep roles from leaking across periods
	sentenceStart := 0
	for i := 0; i <= len(words); i++ {
		if i == len(words) || isSentenceEnd(words[i]) {
			end := i
			if i < len(words) {
				end = i + 1
			}
			assignSentenceRoles(doc, sentenceStart, end)
			sentenceStart = i + 1
		}
	}
}

func assignSentenceRoles(doc *Document, start, end int) {
	lastVerb := -1
	lastCopula := false
	subjectAssigned := false

	headWithin := func(i int) bool {
		return i >= start && i < end
	}

	for i := start; i < end && i < len(doc.Tokens); i++ {
		token := &doc.Tokens[i]

		if isVerbal(token.POS) {
			token.Dep = DepRoot
			token.Head = i
			lastVerb = i
			_, lastCopula = copulaForms[strings.ToLower(token.Text)]
			continue
		}

		if token.POS == POSAdp {
			token.Dep = DepPrep
			if lastVerb >= 0 {
				token.Head = lastVerb
			}
			continue
		}

		if token.POS == POSPunct {
			token.Dep = DepPunct
			if lastVerb >= 0 {
				token.Head = lastVerb
			}
			continue
		}

		chunk, inChunk := doc.ChunkAt(i)
		if !inChunk || chunkHead(doc, chunk) != i {
			if inChunk {
				token.Dep = DepCompound
				token.Head = chunkHead(doc, chunk)
			}
			continue
		}

		// i is the head noun of its chunk
		switch {
		case lastVerb < 0 && !subjectAssigned:
			token.Dep = DepNsubj
			if verb := nextVerbAfter(doc, chunk.End, end); verb >= 0 {
				token.Head = verb
			}
			subjectAssigned = true
		case chunk.Start-1 >= start && headWithin(chunk.Start-1) && doc.Tokens[chunk.Start-1].POS == POSAdp:
			token.Dep = DepPobj
			token.Head = chunk.Start - 1
		case lastVerb >= 0 && lastCopula:
			token.Dep = DepAttr
			token.Head = lastVerb
		case lastVerb >= 0:
			token.Dep = DepDobj
			token.Head = lastVerb
		}
	}
}

func attachEntities(doc *Document, pdoc *prose.Document) {
	for _, ent := range pdoc.Entities() {
		words := strings.Fields(ent.Text)
		if len(words) == 0 {
			continue
		}

		if start, ok := findTokenSequence(doc, words); ok {
			doc.Ents = append(doc.Ents, Span{
				Start: start,
				End:   start + len(words),
				Label: ent.Label,
				Text:  doc.TokenRangeText(start, start+len(words)),
			})
		}
	}
}

func findTokenSequence(doc *Document, words []string) (int, bool) {
	for i := 0; i+len(words) <= len(doc.Tokens); i++ {
		matched := true
		for j, word := range words {
			if doc.Tokens[i+j].Text != word {
				matched = false
				break
			}
		}
		if matched {
			return i, true
		}
	}
	return 0, false
}
