package main

import (
	"github.com/gin-gonic/gin"
	"go.etcd.io/bbolt"
	"log/slog"
	"sheetsApi/contracts"
	"time"
)

const databaseOpenTimeout = time.Second

type ServiceContainer struct {
	Database          *bbolt.DB
	Logger            *slog.Logger
	FormulaEngine     contracts.FormulaEngine
	WebhookDispatcher contracts.WebhookDispatcher
	SheetRepository   contracts.SheetRepository
	SheetExporter     contracts.SheetExporter
	ApiController     contracts.ApiController
	Router            *gin.Engine
}

func BuildServiceContainer(config Config, logger *slog.Logger) (container ServiceContainer, err error) {
	extractor := NewReferenceExtractor()
	substituter, err := NewSubstituter(config.Substitution, extractor)
	if err != nil {
		return
	}

	container.Database, err = bbolt.Open(config.DatabasePath, 0600, &bbolt.Options{Timeout: databaseOpenTimeout})
	if err != nil {
		return
	}

	serializer := NewCellBinarySerializer()
	canonicalizer := NewCanonicalizer()

	container.Logger = logger
	container.FormulaEngine = NewFormulaEngine(extractor, substituter)
	container.WebhookDispatcher = NewWebhookDispatcher(canonicalizer, config.WebhookWorkers, config.WebhookTimeout, logger)
	container.SheetRepository = NewSheetRepository(
		container.Database, container.FormulaEngine, serializer, canonicalizer, container.WebhookDispatcher, logger,
	)
	container.SheetExporter = NewXlsxSheetExporter()
	container.ApiController = NewApiController(container.SheetRepository, container.WebhookDispatcher, container.SheetExporter)

	container.Router = SetupRouter(container.ApiController, logger)

	return
}
