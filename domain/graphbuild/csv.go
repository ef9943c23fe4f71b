package graphbuild

import (
	"bytes"
	"fmt"

	"knowmap-backend/utils"
)

/*
TransGraphToCSV renders a graph as two CSV files, one for nodes and one for
edges, returned as raw bytes ready to ship as attachments or downloads.
*/
func TransGraphToCSV(graph *Graph) ([]byte, []byte, error) {
	builder := &csvBuilder{graph: graph}

	if err := builder.buildCSV(); err != nil {
		return nil, nil, utils.WrapError(err, "build csv fail")
	}

	return builder.nodeCSV.Bytes(), builder.edgeCSV.Bytes(), nil
}

type csvBuilder struct {
	// input
	graph *Graph

	// output
	nodeCSV bytes.Buffer
	edgeCSV bytes.Buffer
}

func (b *csvBuilder) buildCSV() error {
	b.nodeCSV.WriteString("name,type")
	b.edgeCSV.WriteString("source,relation,target")

	for _, node := range b.graph.Nodes() {
		if err := b.recordNode(&node); err != nil {
			return utils.WrapErrorf(err, "produce node [%s] fail", node.Name)
		}
	}

	for _, edge := range b.graph.Edges() {
		if err := b.recordEdge(&edge); err != nil {
			return utils.WrapErrorf(err, "produce edge [%s]-[%s] fail", edge.Source, edge.Target)
		}
	}

	return nil
}

func (b *csvBuilder) recordNode(node *Node) error {
	_, err := b.nodeCSV.WriteString(fmt.Sprintf("\n%#v,%#v", node.Name, node.Type))
	if err != nil {
		return utils.WrapErrorf(err, "record node [%#v] fail", node.Name)
	}

	return nil
}

func (b *csvBuilder) recordEdge(edge *Edge) error {
	_, err := b.edgeCSV.WriteString(fmt.Sprintf("\n%#v,%#v,%#v", edge.Source, edge.Relation, edge.Target))
	if err != nil {
		return utils.WrapErrorf(err, "record edge <%#v, %#v, %#v> fail", edge.Source, edge.Relation, edge.Target)
	}

	return nil
}
