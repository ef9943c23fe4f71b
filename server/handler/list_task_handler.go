package handler

import (
	"net/http"
	"time"

	"knowmap-backend/logging"
	"knowmap-backend/repository/metadata"
	"knowmap-backend/server/common"
	"knowmap-backend/utils"

	"github.com/gin-gonic/gin"
)

func ListTask(ctx *gin.Context) {
	res, err := listTask()
	if err != nil {
		logging.Default().WithError(err).Errorf("ListTask produce error: %s", err.Error())
		ctx.JSON(http.StatusInternalServerError, common.MakeUnknownErrorResp())
		return
	}

	ctx.JSON(http.StatusOK, res)
}

type listTaskItem struct {
	ID          uint   `json:"id"`
	Time        int64  `json:"time"`
	TimeStr     string `json:"time_str"`
	Name        string `json:"name"`
	Source      string `json:"source"`
	Status      uint   `json:"status"`
	TripleCount uint   `json:"triple_count"`
}

func listTask() ([]listTaskItem, error) {
	taskList := make([]metadata.IngestTask, 0)
	res := metadata.DatabaseRaw().Find(&taskList)
	err := res.Error
	if err != nil {
		return nil, utils.WrapError(err, "select all tasks fail")
	}

	ret := make([]listTaskItem, 0, res.RowsAffected)
	for _, task := range taskList {
		ret = append(ret, listTaskItem{
			ID:          task.ID,
			Time:        task.CreatedAt.Unix(),
			TimeStr:     task.CreatedAt.Format(time.RFC3339),
			Name:        task.Name,
			Source:      task.Source,
			Status:      task.Status,
			TripleCount: task.TripleCount,
		})
	}

	return ret, nil
}
