package handler

import (
	"net/http"

	"knowmap-backend/domain/extract"
	"knowmap-backend/domain/graphbuild"
	"knowmap-backend/domain/refdata"
	"knowmap-backend/logging"
	"knowmap-backend/repository/filesave"
	"knowmap-backend/repository/metadata"
	"knowmap-backend/repository/neograph"
	"knowmap-backend/server/common"
	"knowmap-backend/utils"

	"github.com/gin-gonic/gin"
)

func GraphStats(ctx *gin.Context) {
	stats, err := neograph.GraphStats()
	if err != nil {
		logging.Default().WithError(err).Errorf("GraphStats produce error: %s", err.Error())
		ctx.JSON(http.StatusInternalServerError, common.MakeUnknownErrorResp())
		return
	}

	ctx.JSON(http.StatusOK, common.MakeSuccessResp(stats))
}

// ClearGraph wipes the whole graph database. The provenance rows in the
// metadata database are kept, so the graph can be rebuilt from them.
func ClearGraph(ctx *gin.Context) {
	if err := neograph.Clear(); err != nil {
		logging.Default().WithError(err).Errorf("ClearGraph produce error: %s", err.Error())
		ctx.JSON(http.StatusInternalServerError, common.MakeUnknownErrorResp())
		return
	}

	ctx.JSON(http.StatusOK, common.MakeSuccessResp(nil))
}

type exportGraphRespSchema struct {
	NodeFileURL string `json:"node_file_url"`
	EdgeFileURL string `json:"edge_file_url"`
	NodeCount   int    `json:"node_count"`
	EdgeCount   int    `json:"edge_count"`
}

/*
ExportGraph assembles the graph from all recorded triples and writes it into
the file store as two CSV files, nodes and edges. The response carries their
store-relative URLs.
*/
func ExportGraph(ctx *gin.Context) {
	resp, err := exportGraph()
	if err != nil {
		logging.Default().WithError(err).Errorf("ExportGraph produce error: %s", err.Error())
		ctx.JSON(http.StatusInternalServerError, common.MakeUnknownErrorResp())
		return
	}

	ctx.JSON(http.StatusOK, common.MakeSuccessResp(resp))
}

func exportGraph() (*exportGraphRespSchema, error) {
	var records []metadata.TripleRecord
	if err := metadata.DatabaseRaw().Find(&records).Error; err != nil {
		return nil, utils.WrapError(err, "select triple records fail")
	}

	triples := make([]extract.Triple, 0, len(records))
	for _, record := range records {
		triples = append(triples, extract.Triple{
			Subject:  record.Subject,
			Relation: record.Relation,
			Object:   record.Object,
		})
	}

	graph := graphbuild.Assemble(triples, refdata.Get())

	nodeData, edgeData, err := graphbuild.TransGraphToCSV(graph)
	if err != nil {
		return nil, utils.WrapError(err, "transform graph to csv fail")
	}

	nodeFileInfo, err := filesave.SaveFile(nodeData, "nodes.csv")
	if err != nil {
		return nil, utils.WrapError(err, "save node csv fail")
	}

	edgeFileInfo, err := filesave.SaveFile(edgeData, "edges.csv")
	if err != nil {
		return nil, utils.WrapError(err, "save edge csv fail")
	}

	return &exportGraphRespSchema{
		NodeFileURL: nodeFileInfo.URL,
		EdgeFileURL: edgeFileInfo.URL,
		NodeCount:   graph.NodeCount(),
		EdgeCount:   graph.EdgeCount(),
	}, nil
}
