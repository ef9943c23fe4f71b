package graphbuild

/*
Node is a graph vertex keyed by its exact surface name. Type comes from the
entity dictionary and defaults to refdata.DefaultEntityType.
*/
type Node struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

/*
Edge connects two nodes with a relation label. The pair is undirected for
uniqueness purposes but keeps the orientation of the triple that produced it.
*/
type Edge struct {
	Source   string `json:"source"`
	Target   string `json:"target"`
	Relation string `json:"relation"`
}

// edgeKey identifies an unordered node pair. Endpoints are stored sorted, so
// (a, b) and (b, a) collapse onto one key.
type edgeKey struct {
	lo, hi string
}

func keyFor(a, b string) edgeKey {
	if a > b {
		a, b = b, a
	}
	return edgeKey{lo: a, hi: b}
}

/*
Graph accumulates deduplicated nodes and edges from extracted triples. Nodes
keep insertion order; each unordered node pair carries at most one edge, the
most recently added one.
*/
type Graph struct {
	nodes     map[string]Node
	nodeOrder []string
	edges     map[edgeKey]Edge
	edgeOrder []edgeKey
}

func newGraph() *Graph {
	return &Graph{
		nodes: make(map[string]Node),
		edges: make(map[edgeKey]Edge),
	}
}

func (g *Graph) addNode(name, typ string) {
	if _, ok := g.nodes[name]; ok {
		return
	}

	g.nodes[name] = Node{Name: name, Type: typ}
	g.nodeOrder = append(g.nodeOrder, name)
}

func (g *Graph) addEdge(source, target, relation string) {
	key := keyFor(source, target)
	if _, ok := g.edges[key]; !ok {
		g.edgeOrder = append(g.edgeOrder, key)
	}

	// a later triple over the same pair replaces the stored relation
	g.edges[key] = Edge{Source: source, Target: target, Relation: relation}
}

// Nodes returns the vertices in first-insertion order.
func (g *Graph) Nodes() []Node {
	ret := make([]Node, 0, len(g.nodeOrder))
	for _, name := range g.nodeOrder {
		ret = append(ret, g.nodes[name])
	}
	return ret
}

// Edges returns one edge per unordered node pair, in first-insertion order of
// the pair.
func (g *Graph) Edges() []Edge {
	ret := make([]Edge, 0, len(g.edgeOrder))
	for _, key := range g.edgeOrder {
		ret = append(ret, g.edges[key])
	}
	return ret
}

func (g *Graph) NodeCount() int {
	return len(g.nodes)
}

func (g *Graph) EdgeCount() int {
	return len(g.edges)
}
