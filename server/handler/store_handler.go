package handler

import (
	"net/http"

	"knowmap-backend/domain/extract"
	"knowmap-backend/domain/refdata"
	"knowmap-backend/logging"
	"knowmap-backend/repository/metadata"
	"knowmap-backend/repository/neograph"
	"knowmap-backend/server/common"
	"knowmap-backend/utils"

	"github.com/gin-gonic/gin"
)

func StoreTriples(ctx *gin.Context) {
	handler := storeTriplesHandler{ctx: ctx}

	if err := handler.checkParam(); err != nil {
		logging.Default().WithError(err).Errorf("parse req error: %s", err.Error())
		ctx.JSON(http.StatusBadRequest, common.MakeUnknownErrorResp())
		return
	}

	resp, err := handler.produce()
	if err != nil {
		logging.Default().WithError(err).Errorf("produce error: %s", err.Error())
		ctx.JSON(http.StatusInternalServerError, common.MakeUnknownErrorResp())
		return
	}

	ctx.JSON(http.StatusOK, common.MakeSuccessResp(resp))
}

type storeTriplesHandler struct {
	ctx *gin.Context

	// params
	triples []extract.Triple
}

type storeTriplesReqSchema struct {
	Triples []extract.Triple `json:"triples"`
}

type storeTriplesRespSchema struct {
	Stored int `json:"stored"`
}

func (h *storeTriplesHandler) checkParam() error {
	var req storeTriplesReqSchema
	if err := h.ctx.Bind(&req); err != nil {
		return utils.WrapError(err, "bind req fail")
	}

	if len(req.Triples) == 0 {
		return utils.WrapError(common.ErrRequestParamEmpty, "param triples is empty")
	}

	for _, triple := range req.Triples {
		if triple.Subject == "" || triple.Relation == "" || triple.Object == "" {
			return utils.WrapErrorf(common.ErrRequestParamInvalid,
				"triple <%#v, %#v, %#v> has empty field", triple.Subject, triple.Relation, triple.Object)
		}
	}

	h.triples = req.Triples

	return nil
}

func (h *storeTriplesHandler) produce() (*storeTriplesRespSchema, error) {
	count, err := neograph.StoreTriples(h.triples, refdata.Get())
	if err != nil {
		return nil, utils.WrapError(err, "store triples to graph fail")
	}

	records := make([]metadata.TripleRecord, 0, len(h.triples))
	for _, triple := range h.triples {
		records = append(records, metadata.TripleRecord{
			Subject:  triple.Subject,
			Relation: triple.Relation,
			Object:   triple.Object,
		})
	}

	if err := metadata.DatabaseRaw().CreateInBatches(&records, 128).Error; err != nil {
		return nil, utils.WrapError(err, "save triple records fail")
	}

	return &storeTriplesRespSchema{Stored: count}, nil
}
