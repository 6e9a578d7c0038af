package main

import (
	"github.com/gin-gonic/gin"
	"log/slog"
	"net/http"
	"sheetsApi/contracts"
)

const ApiVersion = "v1"

const sheetsPath = "sheets"
const cellsPath = "cells"
const subscribePath = "subscribe"
const exportPath = "export"

func SetupRouter(controller contracts.ApiController, logger *slog.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	if logger != nil {
		router.Use(RequestLogger(logger))
	}

	apiRouterGroup := router.Group("/api/" + ApiVersion)
	apiRouterGroup.GET("/", controller.IndexAction)

	apiRouterGroup.GET("/"+sheetsPath, controller.GetSheetListAction)
	apiRouterGroup.POST("/"+sheetsPath, controller.CreateSheetAction)
	apiRouterGroup.GET("/"+cellsPath, controller.GetCellListAction)
	apiRouterGroup.POST("/"+cellsPath, controller.CreateCellAction)

	apiRouterGroup.POST("/:sheet_id/:cell_id/"+subscribePath, controller.SubscribeAction)

	apiRouterGroup.GET("/:sheet_id/:cell_id", controller.GetCellAction)
	apiRouterGroup.POST("/:sheet_id/:cell_id", controller.UpdateCellAction)
	apiRouterGroup.DELETE("/:sheet_id/:cell_id", controller.DeleteCellAction)

	apiRouterGroup.GET("/:sheet_id", controller.GetSheetAction)
	apiRouterGroup.DELETE("/:sheet_id", controller.DeleteSheetAction)

	router.GET("/"+exportPath+"/:sheet_id", controller.ExportSheetAction)

	router.GET("/healthcheck", func(c *gin.Context) {
		c.String(http.StatusOK, "health")
	})

	return router
}
