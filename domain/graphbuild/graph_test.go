package graphbuild

import (
	"strings"
	"testing"

	"knowmap-backend/domain/extract"
	"knowmap-backend/domain/refdata"

	"github.com/stretchr/testify/assert"
)

func testLookups(t *testing.T) *refdata.Lookups {
	t.Helper()

	const csv = `source,target,relation,source_type,target_type
Wheat,Drought,affected by,Crop,Climate Event
Soil,Irrigation,needs,Soil,Practice
`
	lookups, err := refdata.BuildLookups(strings.NewReader(csv))
	assert.NoError(t, err)
	return lookups
}

func TestAssembleDedupNodes(t *testing.T) {
	graph := Assemble([]extract.Triple{
		{Subject: "Drought", Relation: "reduce", Object: "yield"},
		{Subject: "Drought", Relation: "threaten", Object: "Wheat"},
	}, testLookups(t))

	assert.Equal(t, 3, graph.NodeCount())

	names := make([]string, 0)
	for _, node := range graph.Nodes() {
		names = append(names, node.Name)
	}
	assert.Equal(t, []string{"Drought", "yield", "Wheat"}, names)
}

func TestAssembleNodeTypes(t *testing.T) {
	graph := Assemble([]extract.Triple{
		{Subject: "Wheat", Relation: "grow", Object: "Soil"},
		{Subject: "Soil", Relation: "hold", Object: "water"},
	}, testLookups(t))

	byName := make(map[string]Node)
	for _, node := range graph.Nodes() {
		byName[node.Name] = node
	}

	assert.Equal(t, "Crop", byName["Wheat"].Type)
	assert.Equal(t, "Soil", byName["Soil"].Type)
	assert.Equal(t, refdata.DefaultEntityType, byName["water"].Type)
}

func TestAssembleSingleEdgePerPair(t *testing.T) {
	// repeated facts over the same pair keep only the newest relation, in
	// either direction
	graph := Assemble([]extract.Triple{
		{Subject: "Drought", Relation: "reduce", Object: "yield"},
		{Subject: "yield", Relation: "suffer", Object: "Drought"},
	}, testLookups(t))

	assert.Equal(t, 1, graph.EdgeCount())

	edges := graph.Edges()
	assert.Equal(t, "suffer", edges[0].Relation)
	assert.Equal(t, "yield", edges[0].Source)
	assert.Equal(t, "Drought", edges[0].Target)
}

func TestAssembleLastRelationWins(t *testing.T) {
	graph := Assemble([]extract.Triple{
		{Subject: "Compost", Relation: "enrich", Object: "Soil"},
		{Subject: "Compost", Relation: "improve", Object: "Soil"},
	}, testLookups(t))

	assert.Equal(t, 2, graph.NodeCount())
	assert.Equal(t, 1, graph.EdgeCount())
	assert.Equal(t, "improve", graph.Edges()[0].Relation)
}

func TestAssembleEmpty(t *testing.T) {
	graph := Assemble(nil, testLookups(t))

	assert.Equal(t, 0, graph.NodeCount())
	assert.Equal(t, 0, graph.EdgeCount())
	assert.Empty(t, graph.Nodes())
	assert.Empty(t, graph.Edges())
}

func TestTransGraphToCSV(t *testing.T) {
	graph := Assemble([]extract.Triple{
		{Subject: "Wheat", Relation: "need", Object: "water"},
	}, testLookups(t))

	nodeCSV, edgeCSV, err := TransGraphToCSV(graph)
	assert.NoError(t, err)

	nodeLines := strings.Split(string(nodeCSV), "\n")
	assert.Equal(t, "name,type", nodeLines[0])
	assert.Contains(t, nodeLines, `"Wheat","Crop"`)
	assert.Contains(t, nodeLines, `"water","Entity"`)

	edgeLines := strings.Split(string(edgeCSV), "\n")
	assert.Equal(t, "source,relation,target", edgeLines[0])
	assert.Contains(t, edgeLines, `"Wheat","need","water"`)
}
