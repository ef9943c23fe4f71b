package annotate

// Coarse part-of-speech tags, following the usual universal tagset names.
const (
	POSVerb  = "VERB"
	POSAux   = "AUX"
	POSNoun  = "NOUN"
	POSPropn = "PROPN"
	POSAdj   = "ADJ"
	POSDet   = "DET"
	POSAdp   = "ADP"
	POSPron  = "PRON"
	POSNum   = "NUM"
	POSAdv   = "ADV"
	POSPunct = "PUNCT"
	POSOther = "X"
)

// Dependency relation labels consumed by the extractor.
const (
	DepNsubj     = "nsubj"
	DepNsubjPass = "nsubjpass"
	DepDobj      = "dobj"
	DepPobj      = "pobj"
	DepAttr      = "attr"
	DepDative    = "dative"
	DepOprd      = "oprd"
	DepPrep      = "prep"
	DepCompound  = "compound"
	DepPunct     = "punct"
	DepRoot      = "ROOT"
	DepOther     = "dep"
)

/*
Token is one annotated word.

Head is the index of the syntactic head token within the document; the root
token points at itself.
*/
type Token struct {
	Text  string `json:"text"`
	Lemma string `json:"lemma"`
	POS   string `json:"pos"`
	Dep   string `json:"dep"`
	Head  int    `json:"head"`
}

/*
Span is a contiguous token range [Start, End) with an optional label. Used for
noun-phrase chunks (Label empty) and recognized entities.
*/
type Span struct {
	Start int    `json:"start"`
	End   int    `json:"end"`
	Label string `json:"label,omitempty"`
	Text  string `json:"text"`
}

func (s *Span) Contains(index int) bool {
	return index >= s.Start && index < s.End
}

/*
Document is the annotated form of one text unit. It is produced once by an
Engine, optionally augmented with ruler entities, and then read-only.
*/
type Document struct {
	Text   string  `json:"text"`
	Tokens []Token `json:"tokens"`
	Chunks []Span  `json:"chunks,omitempty"`
	Ents   []Span  `json:"ents,omitempty"`
}

// ChunkAt returns the noun-phrase chunk containing the token, if any.
func (d *Document) ChunkAt(index int) (Span, bool) {
	for _, chunk := range d.Chunks {
		if chunk.Contains(index) {
			return chunk, true
		}
	}
	return Span{}, false
}

// Children returns the indexes of tokens whose head is the given token.
func (d *Document) Children(index int) []int {
	var ret []int
	for i := range d.Tokens {
		if i != index && d.Tokens[i].Head == index {
			ret = append(ret, i)
		}
	}
	return ret
}

/*
SubtreeSpan returns the minimal contiguous token range covering the token and
all of its descendants, in document order.
*/
func (d *Document) SubtreeSpan(index int) (start, end int) {
	start, end = index, index+1

	queue := []int{index}
	seen := map[int]struct{}{index: {}}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if current < start {
			start = current
		}
		if current+1 > end {
			end = current + 1
		}

		for _, child := range d.Children(current) {
			if _, ok := seen[child]; ok {
				continue
			}
			seen[child] = struct{}{}
			queue = append(queue, child)
		}
	}

	return start, end
}

// TokenRangeText joins the surface text of tokens in [start, end) with single
// spaces.
func (d *Document) TokenRangeText(start, end int) string {
	if start < 0 {
		start = 0
	}
	if end > len(d.Tokens) {
		end = len(d.Tokens)
	}
	if start >= end {
		return ""
	}

	ret := d.Tokens[start].Text
	for i := start + 1; i < end; i++ {
		ret += " " + d.Tokens[i].Text
	}
	return ret
}
