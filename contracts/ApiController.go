package contracts

import "github.com/gin-gonic/gin"

type ApiController interface {
	IndexAction(c *gin.Context)

	GetSheetListAction(c *gin.Context)
	CreateSheetAction(c *gin.Context)
	GetSheetAction(c *gin.Context)
	DeleteSheetAction(c *gin.Context)
	ExportSheetAction(c *gin.Context)

	GetCellListAction(c *gin.Context)
	CreateCellAction(c *gin.Context)
	GetCellAction(c *gin.Context)
	UpdateCellAction(c *gin.Context)
	DeleteCellAction(c *gin.Context)
	SubscribeAction(c *gin.Context)
}
