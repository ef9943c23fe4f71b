package annotate

import (
	"context"
	"strings"
	"testing"

	"knowmap-backend/domain/refdata"
	"knowmap-backend/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookupsFromCSV(t *testing.T, csv string) *refdata.Lookups {
	lookups, err := refdata.BuildLookups(strings.NewReader(csv))
	require.Nil(t, err)
	return lookups
}

func TestRulerTagsKnownEntities(t *testing.T) {
	lookups := lookupsFromCSV(t, "source,target,relation,source_type,target_type\n"+
		"Drought,wheat yield,reduces,Climate Event,Crop Metric\n")

	doc := buildShallowDocument("Drought reduces wheat yield.", taggedSentence())

	r := newRuler(lookups)
	r.apply(doc)

	require.Equal(t, 2, len(doc.Ents))
	assert.Equal(t, "CLIMATE EVENT", doc.Ents[0].Label)
	assert.Equal(t, "Drought", doc.Ents[0].Text)
	assert.Equal(t, "CROP METRIC", doc.Ents[1].Label)
	assert.Equal(t, "wheat yield", doc.Ents[1].Text)
}

func TestRulerPrefersLongestMatch(t *testing.T) {
	lookups := lookupsFromCSV(t, "source,target,relation,source_type,target_type\n"+
		"yield,wheat yield,relates,Metric,Crop Metric\n")

	doc := buildShallowDocument("Drought reduces wheat yield.", taggedSentence())

	newRuler(lookups).apply(doc)

	require.Equal(t, 1, len(doc.Ents))
	assert.Equal(t, "wheat yield", doc.Ents[0].Text)
	assert.Equal(t, "CROP METRIC", doc.Ents[0].Label)
}

func TestRulerCaseSensitive(t *testing.T) {
	lookups := lookupsFromCSV(t, "source,target,relation,source_type,target_type\n"+
		"drought,Soil,affects,Event,Soil\n")

	doc := buildShallowDocument("Drought reduces wheat yield.", taggedSentence())

	newRuler(lookups).apply(doc)

	assert.Zero(t, len(doc.Ents))
}

func TestRulerEmptyLookupsIsNoop(t *testing.T) {
	doc := buildShallowDocument("Drought reduces wheat yield.", taggedSentence())
	before := len(doc.Ents)

	newRuler(lookupsFromCSV(t, "source,target,relation\n")).apply(doc)

	assert.Equal(t, before, len(doc.Ents))
}

func TestAnnotatorNilEngine(t *testing.T) {
	logging.SetDefaultConfig(logging.GenerateTestConfig(t))

	annotator := New(nil, lookupsFromCSV(t, "source,target,relation\n"), logging.NewLogger())
	assert.Nil(t, annotator)
}

func TestAnnotatorAppliesRuler(t *testing.T) {
	logging.SetDefaultConfig(logging.GenerateTestConfig(t))

	lookups := lookupsFromCSV(t, "source,target,relation,source_type,target_type\n"+
		"Drought,Soil,affects,Climate Event,Soil\n")

	annotator := New(fixedEngine{doc: func() *Document {
		return buildShallowDocument("Drought reduces wheat yield.", taggedSentence())
	}}, lookups, logging.NewLogger())
	require.NotNil(t, annotator)

	doc, err := annotator.Annotate(context.Background(), "Drought reduces wheat yield.")
	require.Nil(t, err)

	require.Equal(t, 1, len(doc.Ents))
	assert.Equal(t, "CLIMATE EVENT", doc.Ents[0].Label)
}

type fixedEngine struct {
	doc func() *Document
}

func (e fixedEngine) Annotate(ctx context.Context, text string) (*Document, error) {
	return e.doc(), nil
}
