package annotate

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func taggedSentence() []taggedWord {
	// "Drought reduces wheat yield ."
	return []taggedWord{
		{text: "Drought", tag: "NN"},
		{text: "reduces", tag: "VBZ"},
		{text: "wheat", tag: "NN"},
		{text: "yield", tag: "NN"},
		{text: ".", tag: "."},
	}
}

func TestBuildShallowDocumentRoles(t *testing.T) {
	doc := buildShallowDocument("Drought reduces wheat yield.", taggedSentence())

	require.Equal(t, 5, len(doc.Tokens))

	assert.Equal(t, DepNsubj, doc.Tokens[0].Dep)
	assert.Equal(t, 1, doc.Tokens[0].Head)

	assert.Equal(t, DepRoot, doc.Tokens[1].Dep)
	assert.Equal(t, POSVerb, doc.Tokens[1].POS)
	assert.Equal(t, "reduce", doc.Tokens[1].Lemma)

	// "wheat" is a compound of the chunk head "yield"
	assert.Equal(t, DepCompound, doc.Tokens[2].Dep)
	assert.Equal(t, 3, doc.Tokens[2].Head)

	assert.Equal(t, DepDobj, doc.Tokens[3].Dep)
	assert.Equal(t, 1, doc.Tokens[3].Head)
}

func TestBuildShallowDocumentChunks(t *testing.T) {
	doc := buildShallowDocument("Drought reduces wheat yield.", taggedSentence())

	require.Equal(t, 2, len(doc.Chunks))
	assert.Equal(t, "Drought", doc.Chunks[0].Text)
	assert.Equal(t, "wheat yield", doc.Chunks[1].Text)
}

func TestBuildShallowDocumentCopula(t *testing.T) {
	// "Compost is a fertilizer ."
	words := []taggedWord{
		{text: "Compost", tag: "NN"},
		{text: "is", tag: "VBZ"},
		{text: "a", tag: "DT"},
		{text: "fertilizer", tag: "NN"},
		{text: ".", tag: "."},
	}

	doc := buildShallowDocument("Compost is a fertilizer.", words)

	assert.Equal(t, DepNsubj, doc.Tokens[0].Dep)
	assert.Equal(t, POSAux, doc.Tokens[1].POS)
	assert.Equal(t, "be", doc.Tokens[1].Lemma)
	assert.Equal(t, DepAttr, doc.Tokens[3].Dep)
	assert.Equal(t, 1, doc.Tokens[3].Head)
}

func TestBuildShallowDocumentPreposition(t *testing.T) {
	// "Farmers rely on irrigation ."
	words := []taggedWord{
		{text: "Farmers", tag: "NNS"},
		{text: "rely", tag: "VBP"},
		{text: "on", tag: "IN"},
		{text: "irrigation", tag: "NN"},
		{text: ".", tag: "."},
	}

	doc := buildShallowDocument("Farmers rely on irrigation.", words)

	assert.Equal(t, DepPrep, doc.Tokens[2].Dep)
	assert.Equal(t, 1, doc.Tokens[2].Head)
	assert.Equal(t, DepPobj, doc.Tokens[3].Dep)
	assert.Equal(t, 2, doc.Tokens[3].Head)
}

func TestBuildShallowDocumentSentenceBoundary(t *testing.T) {
	// roles must not leak across the period
	words := []taggedWord{
		{text: "Drought", tag: "NN"},
		{text: "reduces", tag: "VBZ"},
		{text: "yield", tag: "NN"},
		{text: ".", tag: "."},
		{text: "Compost", tag: "NN"},
		{text: "improves", tag: "VBZ"},
		{text: "soil", tag: "NN"},
		{text: ".", tag: "."},
	}

	doc := buildShallowDocument("Drought reduces yield. Compost improves soil.", words)

	assert.Equal(t, DepNsubj, doc.Tokens[4].Dep)
	assert.Equal(t, 5, doc.Tokens[4].Head)
	assert.Equal(t, DepDobj, doc.Tokens[6].Dep)
	assert.Equal(t, 5, doc.Tokens[6].Head)
}

func TestSubtreeSpan(t *testing.T) {
	doc := buildShallowDocument("Drought reduces wheat yield.", taggedSentence())

	// subtree of "yield" covers its compound "wheat"
	start, end := doc.SubtreeSpan(3)
	assert.Equal(t, 2, start)
	assert.Equal(t, 4, end)

	// subtree of the verb covers the whole clause
	start, end = doc.SubtreeSpan(1)
	assert.Equal(t, 0, start)
	assert.True(t, end >= 4)
}

func TestLemmatizeVerb(t *testing.T) {
	cases := map[string]string{
		"reduces":  "reduce",
		"improves": "improve",
		"requires": "require",
		"affects":  "affect",
		"applies":  "apply",
		"reaches":  "reach",
		"passes":   "pass",
		"planned":  "plan",
		"farmed":   "farm",
		"supports": "support",
	}

	for in, want := range cases {
		assert.Equal(t, want, lemmatizeVerb(in), "lemmatizeVerb(%s)", in)
	}

	assert.Equal(t, "be", lemmaOf("is", POSAux))
	assert.Equal(t, "be", lemmaOf("were", POSAux))
	assert.Equal(t, "have", lemmaOf("has", POSVerb))
	// non-verbs are just lowercased
	assert.Equal(t, "wheat", lemmaOf("Wheat", POSNoun))
}

func TestShallowEngineAnnotateSmoke(t *testing.T) {
	engine := NewShallowEngine()

	doc, err := engine.Annotate(context.Background(), "Drought reduces wheat yield in dry regions.")
	require.Nil(t, err)
	require.NotNil(t, doc)
	assert.True(t, len(doc.Tokens) > 0)
}
