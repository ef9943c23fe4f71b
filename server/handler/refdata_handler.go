package handler

import (
	"net/http"

	"knowmap-backend/domain/refdata"
	"knowmap-backend/server/common"

	"github.com/gin-gonic/gin"
)

// ReloadRefdata rebuilds the entity dictionary from the reference dataset on
// disk. Running extractions keep the lookups they already hold.
func ReloadRefdata(ctx *gin.Context) {
	refdata.Reload()

	ctx.JSON(http.StatusOK, common.MakeSuccessResp(refdataStats()))
}

func GetRefdataStats(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, common.MakeSuccessResp(refdataStats()))
}

type refdataStatsSchema struct {
	EntityCount        int `json:"entity_count"`
	RelationLemmaCount int `json:"relation_lemma_count"`
}

func refdataStats() *refdataStatsSchema {
	lookups := refdata.Get()
	return &refdataStatsSchema{
		EntityCount:        lookups.EntityCount(),
		RelationLemmaCount: lookups.RelationLemmaCount(),
	}
}
