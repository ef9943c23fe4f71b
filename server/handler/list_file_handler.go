package handler

import (
	"fmt"
	"net/http"
	"time"

	"knowmap-backend/logging"
	"knowmap-backend/repository/metadata"
	"knowmap-backend/server/common"
	"knowmap-backend/utils"

	"github.com/gin-gonic/gin"
)

func ListFile(ctx *gin.Context) {
	res, err := listFile()
	if err != nil {
		logging.Default().WithError(err).Errorf("ListFile produce error: %s", err.Error())
		ctx.JSON(http.StatusInternalServerError, common.MakeUnknownErrorResp())
		return
	}

	ctx.JSON(http.StatusOK, res)
}

type listFileItem struct {
	ID            uint   `json:"id"`
	Name          string `json:"name"`
	Type          string `json:"type"`
	CreateTime    int64  `json:"create_time"`
	CreateTimeStr string `json:"create_time_str"`
}

func listFile() ([]listFileItem, error) {
	var fileList []metadata.File
	res := metadata.DatabaseRaw().Find(&fileList)
	err := res.Error
	if err != nil {
		return nil, utils.WrapError(err, "select all files fail")
	}

	ret := make([]listFileItem, 0, res.RowsAffected)
	for _, file := range fileList {
		ret = append(ret, listFileItem{
			ID:            file.ID,
			Name:          fmt.Sprintf("%s.%s", file.Name, file.Type),
			Type:          file.Type,
			CreateTime:    file.CreatedAt.Unix(),
			CreateTimeStr: file.CreatedAt.Format(time.RFC3339),
		})
	}

	return ret, nil
}
