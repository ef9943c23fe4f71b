package neograph

import (
	"knowmap-backend/utils"

	"github.com/neo4j/neo4j-go-driver/v4/neo4j"
)

type SubgraphNode struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

type SubgraphEdge struct {
	Source   string `json:"source"`
	Relation string `json:"relation"`
	Target   string `json:"target"`
}

type Subgraph struct {
	Nodes []SubgraphNode `json:"nodes"`
	Edges []SubgraphEdge `json:"edges"`
}

const subgraphCypher = `
UNWIND $names AS name
MATCH (n:Entity {name: name})
OPTIONAL MATCH (n)-[r]-(m:Entity)
RETURN n.name AS source, n.type AS sourceType,
       type(r) AS relation, m.name AS target, m.type AS targetType`

/*
SubgraphByNames returns the matched entities plus their direct neighborhood:
every node whose name is in names, each neighbor one hop away, and the
relationships between them. Unknown names simply match nothing.
*/
func SubgraphByNames(names []string) (*Subgraph, error) {
	session := readSession()
	defer session.Close()

	result, err := session.Run(subgraphCypher, map[string]interface{}{"names": names})
	if err != nil {
		return nil, utils.WrapError(err, "run subgraph query fail")
	}

	return collectSubgraph(result)
}

func collectSubgraph(result neo4j.Result) (*Subgraph, error) {
	ret := &Subgraph{
		Nodes: make([]SubgraphNode, 0),
		Edges: make([]SubgraphEdge, 0),
	}

	seenNodes := make(map[string]struct{})
	seenEdges := make(map[SubgraphEdge]struct{})

	addNode := func(name, typ string) {
		if name == "" {
			return
		}
		if _, ok := seenNodes[name]; ok {
			return
		}
		seenNodes[name] = struct{}{}
		ret.Nodes = append(ret.Nodes, SubgraphNode{Name: name, Type: typ})
	}

	for result.Next() {
		record := result.Record()

		source := stringAt(record, "source")
		sourceType := stringAt(record, "sourceType")
		relation := stringAt(record, "relation")
		target := stringAt(record, "target")
		targetType := stringAt(record, "targetType")

		addNode(source, sourceType)
		addNode(target, targetType)

		if relation == "" || target == "" {
			continue
		}

		edge := SubgraphEdge{Source: source, Relation: relation, Target: target}
		if _, ok := seenEdges[edge]; ok {
			continue
		}
		seenEdges[edge] = struct{}{}
		ret.Edges = append(ret.Edges, edge)
	}

	if err := result.Err(); err != nil {
		return nil, utils.WrapError(err, "consume subgraph result fail")
	}

	return ret, nil
}

func stringAt(record *neo4j.Record, key string) string {
	value, ok := record.Get(key)
	if !ok || value == nil {
		return ""
	}

	str, ok := value.(string)
	if !ok {
		return ""
	}
	return str
}

type Stats struct {
	NodeCount int64 `json:"node_count"`
	EdgeCount int64 `json:"edge_count"`
}

// GraphStats reports the total node and relationship counts.
func GraphStats() (*Stats, error) {
	session := readSession()
	defer session.Close()

	nodes, err := countQuery(session, "MATCH (n:Entity) RETURN count(n)")
	if err != nil {
		return nil, utils.WrapError(err, "count nodes fail")
	}

	edges, err := countQuery(session, "MATCH (:Entity)-[r]->(:Entity) RETURN count(r)")
	if err != nil {
		return nil, utils.WrapError(err, "count relationships fail")
	}

	return &Stats{NodeCount: nodes, EdgeCount: edges}, nil
}

func countQuery(session neo4j.Session, cypher string) (int64, error) {
	result, err := session.Run(cypher, nil)
	if err != nil {
		return 0, err
	}

	record, err := result.Single()
	if err != nil {
		return 0, err
	}

	count, ok := record.Values[0].(int64)
	if !ok {
		return 0, nil
	}
	return count, nil
}

// Clear removes every node and relationship. There is no undo.
func Clear() error {
	session := writeSession()
	defer session.Close()

	if _, err := session.Run("MATCH (n) DETACH DELETE n", nil); err != nil {
		return utils.WrapError(err, "clear graph fail")
	}

	return nil
}
