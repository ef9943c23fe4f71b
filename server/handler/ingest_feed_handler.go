package handler

import (
	"net/http"

	"knowmap-backend/domain/ingest"
	"knowmap-backend/logging"
	"knowmap-backend/repository/metadata"
	"knowmap-backend/server/common"
	"knowmap-backend/utils"

	"github.com/gin-gonic/gin"
)

func IngestFeed(ctx *gin.Context) {
	handler := ingestFeedHandler{ctx: ctx}

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

type ingestFeedHandler struct {
	ctx *gin.Context

	// params
	source   string
	query    string
	maxItems int
}

type ingestFeedReqSchema struct {
	Source   string `json:"source"`
	Query    string `json:"query"`
	MaxItems int    `json:"max_items"`
}

type ingestFeedRespSchema struct {
	TaskID uint `json:"task_id"`
}

func (h *ingestFeedHandler) checkParam() error {
	var req ingestFeedReqSchema
	if err := h.ctx.Bind(&req); err != nil {
		return utils.WrapError(err, "bind req fail")
	}

	switch req.Source {
	case metadata.FeedSourceWikipedia, metadata.FeedSourceNews, metadata.FeedSourceArxiv:
	default:
		return utils.WrapErrorf(common.ErrRequestParamInvalid, "unknown source [%s]", req.Source)
	}

	if len(req.Query) == 0 {
		return utils.WrapError(common.ErrRequestParamEmpty, "param query is empty")
	}

	h.source = req.Source
	h.query = req.Query
	h.maxItems = req.MaxItems

	return nil
}

func (h *ingestFeedHandler) produce() (*ingestFeedRespSchema, error) {
	email := ""
	user, exist := h.ctx.Get(common.RequestContextKeyUser)
	if exist {
		userInfo, ok := user.(*common.UserInfo)
		if ok {
			email = userInfo.Email
		} else {
			logging.Default().Errorf("ctx.Get(%s) get [%#v] not (*common.UserInfo)", common.RequestContextKeyUser, user)
		}
	}

	taskID, err := ingest.CreateFeedTask(h.source, h.query, h.maxItems, email)
	if err != nil {
		return nil, utils.WrapError(err, "create feed task fail")
	}

	return &ingestFeedRespSchema{TaskID: taskID}, nil
}
