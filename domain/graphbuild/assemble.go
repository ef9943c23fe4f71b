package graphbuild

import (
	"knowmap-backend/domain/extract"
	"knowmap-backend/domain/refdata"
)

/*
Assemble turns extracted triples into a graph. Every subject and object
becomes a node typed through the entity dictionary; every triple becomes an
edge. Triples over the same unordered node pair overwrite each other, last
one wins, which mirrors how repeated facts collapse during graph loads.
*/
func Assemble(triples []extract.Triple, lookups *refdata.Lookups) *Graph {
	g := newGraph()

	if lookups == nil {
		lookups = refdata.Get()
	}

	for _, triple := range triples {
		g.addNode(triple.Subject, lookups.EntityTypeOrDefault(triple.Subject))
		g.addNode(triple.Object, lookups.EntityTypeOrDefault(triple.Object))
		g.addEdge(triple.Subject, triple.Object, triple.Relation)
	}

	if globalSetting.Logger != nil {
		globalSetting.Logger.Debugf("assembled graph: %d nodes, %d edges from %d triples",
			g.NodeCount(), g.EdgeCount(), len(triples))
	}

	return g
}
