package main

import (
	"bytes"
	"errors"
	"github.com/gin-gonic/gin"
	"net/http"
	"sheetsApi/contracts"
)

type ApiController struct {
	SheetRepository   contracts.SheetRepository
	WebhookDispatcher contracts.WebhookDispatcher
	SheetExporter     contracts.SheetExporter
}

type CellEndpointParams struct {
	SheetId string `uri:"sheet_id" binding:"required"`
	CellId  string `uri:"cell_id" binding:"required"`
}

type SheetEndpointParams struct {
	SheetId string `uri:"sheet_id" binding:"required"`
}

type CreateSheetRequest struct {
	SheetId string `json:"sheet_id" binding:"required"`
}

type CreateCellRequest struct {
	SheetId string `json:"sheet_id" binding:"required"`
	CellId  string `json:"cell_id" binding:"required"`
	Value   string `json:"value" binding:"required"`
}

type UpdateCellRequest struct {
	Value string `json:"value" binding:"required"`
}

type SubscribeRequest struct {
	WebhookUrl string `json:"webhook_url" binding:"required,url"`
}

type SubscribeResponse struct {
	WebhookUrl string `json:"webhook_url"`
}

// errors caused by request content, everything else except not found is a server error
var clientErrors = []error{
	contracts.CellIdInvalidError,
	contracts.CellAlreadyExistsError,
	contracts.SheetAlreadyExistsError,
	contracts.FieldEmptyError,
	contracts.FieldTooLongError,
	contracts.UnknownReferenceError,
	contracts.NumericConversionError,
	contracts.EvaluationError,
}

func NewApiController(sheetRepository contracts.SheetRepository, webhookDispatcher contracts.WebhookDispatcher, sheetExporter contracts.SheetExporter) *ApiController {
	return &ApiController{
		SheetRepository:   sheetRepository,
		WebhookDispatcher: webhookDispatcher,
		SheetExporter:     sheetExporter,
	}
}

func (api *ApiController) IndexAction(c *gin.Context) {
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	base := scheme + "://" + c.Request.Host + "/api/" + ApiVersion

	c.JSON(http.StatusOK, gin.H{
		"List of all available urls":     base + "/",
		"List all sheets and create new": base + "/" + sheetsPath,
		"List all cells and create new":  base + "/" + cellsPath,
		"Sheet detail and delete":        base + "/sheet_id",
		"Cell detail":                    base + "/sheet_id/cell_id",
		"Cell subscribe":                 base + "/sheet_id/cell_id/" + subscribePath,
		"Sheet export":                   scheme + "://" + c.Request.Host + "/" + exportPath + "/sheet_id",
	})
}

func (api *ApiController) GetSheetListAction(c *gin.Context) {
	response, err := api.SheetRepository.GetSheetList(c.Request.Context())

	if err != nil {
		api.respondError(c, err)
	} else {
		c.JSON(http.StatusOK, response)
	}
}

func (api *ApiController) CreateSheetAction(c *gin.Context) {
	request := CreateSheetRequest{}
	var response *contracts.Sheet

	err := c.ShouldBindJSON(&request)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	response, err = api.SheetRepository.CreateSheet(c.Request.Context(), request.SheetId)

	if err != nil {
		api.respondError(c, err)
	} else {
		c.JSON(http.StatusCreated, response)
	}
}

func (api *ApiController) GetSheetAction(c *gin.Context) {
	params := SheetEndpointParams{}
	response := &contracts.CellList{}

	err := c.ShouldBindUri(&params)

	if err == nil {
		response, err = api.SheetRepository.GetCellList(c.Request.Context(), params.SheetId)
	}

	if err != nil {
		api.respondError(c, err)
	} else {
		c.JSON(http.StatusOK, response)
	}
}

func (api *ApiController) DeleteSheetAction(c *gin.Context) {
	params := SheetEndpointParams{}

	err := c.ShouldBindUri(&params)

	if err == nil {
		err = api.SheetRepository.DeleteSheet(c.Request.Context(), params.SheetId)
	}

	if err != nil {
		api.respondError(c, err)
	} else {
		c.Status(http.StatusNoContent)
	}
}

func (api *ApiController) ExportSheetAction(c *gin.Context) {
	params := SheetEndpointParams{}
	var cells *contracts.CellList

	err := c.ShouldBindUri(&params)

	if err == nil {
		cells, err = api.SheetRepository.GetCellList(c.Request.Context(), params.SheetId)
	}

	if err != nil {
		api.respondError(c, err)
		return
	}

	buffer := &bytes.Buffer{}
	if err = api.SheetExporter.Export(params.SheetId, cells, buffer); err != nil {
		api.respondError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+params.SheetId+`.xlsx"`)
	c.Data(http.StatusOK, api.SheetExporter.ContentType(), buffer.Bytes())
}

func (api *ApiController) GetCellListAction(c *gin.Context) {
	response, err := api.SheetRepository.GetAllCells(c.Request.Context())

	if err != nil {
		api.respondError(c, err)
	} else {
		c.JSON(http.StatusOK, response)
	}
}

func (api *ApiController) CreateCellAction(c *gin.Context) {
	request := CreateCellRequest{}
	var response *contracts.Cell

	err := c.ShouldBindJSON(&request)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	response, err = api.SheetRepository.CreateCell(c.Request.Context(), request.SheetId, request.CellId, request.Value)

	if err != nil {
		api.respondError(c, err)
	} else {
		c.JSON(http.StatusCreated, response)
	}
}

func (api *ApiController) GetCellAction(c *gin.Context) {
	params := CellEndpointParams{}
	var response *contracts.Cell

	err := c.ShouldBindUri(&params)

	if err == nil {
		response, err = api.SheetRepository.GetCell(c.Request.Context(), params.SheetId, params.CellId)
	}

	if err != nil {
		api.respondError(c, err)
	} else {
		c.JSON(http.StatusOK, response)
	}
}

func (api *ApiController) UpdateCellAction(c *gin.Context) {
	params := CellEndpointParams{}
	request := UpdateCellRequest{}
	var response *contracts.Cell

	err := c.ShouldBindUri(&params)
	if err == nil {
		err = c.ShouldBindJSON(&request)
	}

	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	response, err = api.SheetRepository.UpdateCell(c.Request.Context(), params.SheetId, params.CellId, request.Value)

	if err != nil {
		api.respondError(c, err)
	} else {
		c.JSON(http.StatusOK, response)
	}
}

func (api *ApiController) DeleteCellAction(c *gin.Context) {
	params := CellEndpointParams{}

	err := c.ShouldBindUri(&params)

	if err == nil {
		err = api.SheetRepository.DeleteCell(c.Request.Context(), params.SheetId, params.CellId)
	}

	if err != nil {
		api.respondError(c, err)
	} else {
		c.Status(http.StatusNoContent)
	}
}

func (api *ApiController) SubscribeAction(c *gin.Context) {
	params := CellEndpointParams{}
	request := SubscribeRequest{}

	err := c.ShouldBindUri(&params)
	if err == nil {
		err = c.ShouldBindJSON(&request)
	}

	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// only existing cells can be subscribed
	if _, err = api.SheetRepository.GetCell(c.Request.Context(), params.SheetId, params.CellId); err != nil {
		api.respondError(c, err)
		return
	}

	api.WebhookDispatcher.SetWebhookUrl(params.SheetId, params.CellId, request.WebhookUrl)
	c.JSON(http.StatusCreated, SubscribeResponse{WebhookUrl: request.WebhookUrl})
}

func (api *ApiController) respondError(c *gin.Context, err error) {
	_ = c.Error(err)

	if errors.Is(err, contracts.CellNotFoundError) || errors.Is(err, contracts.SheetNotFoundError) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	for _, clientError := range clientErrors {
		if errors.Is(err, clientError) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
