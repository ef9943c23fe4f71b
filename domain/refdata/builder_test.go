package refdata

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"knowmap-backend/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = `source,target,relation,source_type,target_type
Wheat,Soil,REQUIRES,Crop,Soil
Drought,Wheat,reduces,Climate Event,Crop
Irrigation,Rice,supports,,Crop
Compost,Soil Fertility,improves,Amendment,
`

func TestBuildLookups(t *testing.T) {
	lookups, err := BuildLookups(strings.NewReader(sampleCSV))
	require.Nil(t, err)

	typ, ok := lookups.TypeOf("Wheat")
	require.True(t, ok)
	assert.Equal(t, "Crop", typ)

	typ, ok = lookups.TypeOf("Drought")
	require.True(t, ok)
	assert.Equal(t, "Climate Event", typ)

	// rows with an empty type cell add no entry
	_, ok = lookups.TypeOf("Irrigation")
	assert.False(t, ok)
	_, ok = lookups.TypeOf("Compost")
	assert.True(t, ok)
	_, ok = lookups.TypeOf("Soil Fertility")
	assert.False(t, ok)

	assert.Equal(t, "Entity", lookups.EntityTypeOrDefault("Unknown Thing"))

	assert.True(t, lookups.HasRelationLemma("requires"))
	assert.True(t, lookups.HasRelationLemma("reduces"))
	assert.False(t, lookups.HasRelationLemma("REQUIRES"))
	assert.Equal(t, 4, lookups.RelationLemmaCount())
}

func TestBuildLookupsOverwritesOnDuplicateName(t *testing.T) {
	csv := "source,target,relation,source_type,target_type\n" +
		"Wheat,Soil,requires,Crop,Soil\n" +
		"Wheat,Water,needs,Plant,Resource\n"

	lookups, err := BuildLookups(strings.NewReader(csv))
	require.Nil(t, err)

	typ, _ := lookups.TypeOf("Wheat")
	assert.Equal(t, "Plant", typ)
}

func TestBuildLookupsMissingColumn(t *testing.T) {
	_, err := BuildLookups(strings.NewReader("source,target\nWheat,Soil\n"))
	require.NotNil(t, err)
	assert.ErrorIs(t, err, ErrMissingColumn)
}

func TestBuildLookupsIdempotent(t *testing.T) {
	first, err := BuildLookups(strings.NewReader(sampleCSV))
	require.Nil(t, err)
	second, err := BuildLookups(strings.NewReader(sampleCSV))
	require.Nil(t, err)

	assert.Equal(t, first.entityTypes, second.entityTypes)
	assert.Equal(t, first.relationLemmas, second.relationLemmas)
}

func TestLoadLookupsMissingFileYieldsEmpty(t *testing.T) {
	logging.SetDefaultConfig(logging.GenerateTestConfig(t))

	setting := Setting{
		Logger: logging.NewLogger(),
		Path:   filepath.Join(t.TempDir(), "does-not-exist.csv"),
	}

	lookups := loadLookups(&setting)
	require.NotNil(t, lookups)
	assert.Zero(t, lookups.EntityCount())
	assert.Zero(t, lookups.RelationLemmaCount())
	assert.Equal(t, "Entity", lookups.EntityTypeOrDefault("anything"))
}

func TestInitAndReload(t *testing.T) {
	logging.SetDefaultConfig(logging.GenerateTestConfig(t))

	path := filepath.Join(t.TempDir(), "relations.csv")
	require.Nil(t, os.WriteFile(path, []byte(sampleCSV), 0o644))

	Init(&Setting{
		Logger: logging.NewLogger(),
		Path:   path,
	})

	before := Get()
	assert.Equal(t, 4, before.EntityCount())

	// reload swaps the pointer; the old value stays usable
	require.Nil(t, os.WriteFile(path, []byte("source,target,relation\nA,B,links\n"), 0o644))
	Reload()

	after := Get()
	assert.NotSame(t, before, after)
	assert.Equal(t, 4, before.EntityCount())
	assert.Zero(t, after.EntityCount())
	assert.True(t, after.HasRelationLemma("links"))
}
