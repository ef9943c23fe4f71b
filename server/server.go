package server

import (
	"fmt"

	"knowmap-backend/server/common"
	"knowmap-backend/server/handler"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Config struct {
	Host      string
	Port      int
	DebugMode bool
}

type Server struct {
	engine *gin.Engine
	config *Config
}

func New(config *Config) *Server {
	eng := gin.Default()

	eng.Use(common.LogRequest)
	eng.Use(common.SetUserInfo(config.DebugMode))
	eng.Use(cors.Default())

	eng.GET("/test/coffee", coffeeHandler)

	eng.GET("/fileinfo", handler.GetFileInfo)
	eng.GET("/search", handler.Search)
	eng.GET("/graph/stats", handler.GraphStats)

	// routes that require login
	adminGroup := eng.Group("admin")
	{
		adminGroup.Use(common.RejectNotLogin(config.DebugMode))

		adminGroup.POST("/extract", handler.ExtractText)
		adminGroup.POST("/store", handler.StoreTriples)
		adminGroup.POST("/upload", handler.UploadFile)
		adminGroup.POST("/ingest", handler.IngestFeed)
		adminGroup.GET("/listfile", handler.ListFile)
		adminGroup.GET("/listtask", handler.ListTask)
		adminGroup.GET("/export", handler.ExportGraph)
		adminGroup.POST("/clear", handler.ClearGraph)
		adminGroup.POST("/refdata/reload", handler.ReloadRefdata)
		adminGroup.GET("/refdata/stats", handler.GetRefdataStats)
	}

	return &Server{
		engine: eng,
		config: config,
	}
}

func (s *Server) RunServer() error {
	return s.engine.Run(fmt.Sprintf("%s:%d", s.config.Host, s.config.Port))
}
