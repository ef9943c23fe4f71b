package handler

import (
	"net/http"

	"knowmap-backend/domain/extract"
	"knowmap-backend/logging"
	"knowmap-backend/server/common"
	"knowmap-backend/utils"

	"github.com/gin-gonic/gin"
)

func ExtractText(ctx *gin.Context) {
	handler := extractTextHandler{ctx: ctx}

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

type extractTextHandler struct {
	ctx *gin.Context

	// params
	text string
}

type extractTextReqSchema struct {
	Text string `json:"text"`
}

type extractTextRespSchema struct {
	Triples []extract.Triple `json:"triples"`
}

func (h *extractTextHandler) checkParam() error {
	var req extractTextReqSchema
	if err := h.ctx.Bind(&req); err != nil {
		return utils.WrapError(err, "bind req fail")
	}

	if len(req.Text) == 0 {
		return utils.WrapError(common.ErrRequestParamEmpty, "param text is empty")
	}

	h.text = req.Text

	return nil
}

func (h *extractTextHandler) produce() (*extractTextRespSchema, error) {
	triples, err := extract.FromText(h.ctx.Request.Context(), h.text)
	if err != nil {
		return nil, utils.WrapError(err, "extract from text fail")
	}

	return &extractTextRespSchema{Triples: triples}, nil
}
