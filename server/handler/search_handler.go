package handler

import (
	"net/http"

	"knowmap-backend/logging"
	"knowmap-backend/repository/neograph"
	"knowmap-backend/server/common"
	"knowmap-backend/utils"

	"github.com/gin-gonic/gin"
)

func Search(ctx *gin.Context) {
	handler := searchHandler{ctx: ctx}

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

type searchHandler struct {
	ctx *gin.Context

	// params
	names []string
}

func (h *searchHandler) checkParam() error {
	names := h.ctx.QueryArray("name")
	if len(names) == 0 {
		return utils.WrapError(common.ErrRequestParamEmpty, "query 'name' is empty")
	}

	h.names = names

	return nil
}

func (h *searchHandler) produce() (*neograph.Subgraph, error) {
	subgraph, err := neograph.SubgraphByNames(h.names)
	if err != nil {
		return nil, utils.WrapErrorf(err, "search subgraph with names=%#v fail", h.names)
	}

	return subgraph, nil
}
