package main

import (
	"bytes"
	json "github.com/bytedance/sonic"
	"log/slog"
	"net/http"
	"sheetsApi/contracts"
	"sync"
	"time"
)

const WebhookQueueSize = 20

type SheetWebhooks map[string]string

type WebhookSendCommand struct {
	Webhook string
	Cell    *contracts.SheetCell
}

type WebhookDispatcher struct {
	canonicalizer contracts.Canonicalizer
	workersCount  int
	client        *http.Client
	logger        *slog.Logger

	queue    chan WebhookSendCommand
	webhooks map[string]SheetWebhooks
	mutex    sync.RWMutex
	workers  sync.WaitGroup
	pending  sync.WaitGroup
}

func NewWebhookDispatcher(canonicalizer contracts.Canonicalizer, workersCount int, timeout time.Duration, logger *slog.Logger) *WebhookDispatcher {
	return &WebhookDispatcher{
		canonicalizer: canonicalizer,
		workersCount:  workersCount,
		client: &http.Client{
			Timeout: timeout,
		},
		logger:   logger,
		queue:    make(chan WebhookSendCommand, WebhookQueueSize),
		webhooks: map[string]SheetWebhooks{},
	}
}

// SetWebhookUrl subscribes url to changes of the cell, empty url unsubscribes
func (manager *WebhookDispatcher) SetWebhookUrl(sheetId string, cellId string, webhookUrl string) {
	canonicalSheetId := manager.canonicalizer.Canonicalize(sheetId)

	manager.mutex.Lock()
	defer manager.mutex.Unlock()

	if _, ok := manager.webhooks[canonicalSheetId]; !ok {
		manager.webhooks[canonicalSheetId] = SheetWebhooks{}
	}

	if webhookUrl == "" {
		delete(manager.webhooks[canonicalSheetId], cellId)
	} else {
		manager.webhooks[canonicalSheetId][cellId] = webhookUrl
	}
}

func (manager *WebhookDispatcher) GetWebhookUrl(sheetId string, cellId string) string {
	manager.mutex.RLock()
	defer manager.mutex.RUnlock()

	return manager.webhooks[manager.canonicalizer.Canonicalize(sheetId)][cellId]
}

func (manager *WebhookDispatcher) Notify(cells []*contracts.SheetCell) {
	commands := make([]WebhookSendCommand, 0, len(cells))
	for _, cell := range cells {
		if webhook := manager.GetWebhookUrl(cell.SheetId, cell.CellId); webhook != "" {
			commands = append(commands, WebhookSendCommand{Webhook: webhook, Cell: cell})
		}
	}

	if len(commands) == 0 {
		return
	}

	manager.pending.Add(1)
	go manager.addToQueue(commands)
}

func (manager *WebhookDispatcher) addToQueue(commands []WebhookSendCommand) {
	defer manager.pending.Done()

	for _, command := range commands {
		manager.queue <- command
	}
}

func (manager *WebhookDispatcher) Start() {
	for i := 0; i < manager.workersCount; i++ {
		manager.workers.Add(1)
		go manager.runWebhookSenderWorker()
	}
}

// Close waits for queued notifications to be sent
func (manager *WebhookDispatcher) Close() {
	manager.pending.Wait()
	close(manager.queue)
	manager.workers.Wait()
}

func (manager *WebhookDispatcher) runWebhookSenderWorker() {
	defer manager.workers.Done()

	for command := range manager.queue {
		manager.send(command)
	}
}

func (manager *WebhookDispatcher) send(command WebhookSendCommand) {
	logger := manager.logger.With(
		slog.String("webhook", command.Webhook),
		slog.String("sheet_id", command.Cell.SheetId),
		slog.String("cell_id", command.Cell.CellId),
	)

	payload, err := json.Marshal(command.Cell)
	if err != nil {
		logger.Error("webhook payload error", slog.String("error", err.Error()))
		return
	}

	response, err := manager.client.Post(command.Webhook, "application/json", bytes.NewBuffer(payload))
	if err != nil {
		logger.Warn("webhook send error", slog.String("error", err.Error()))
		return
	}
	defer response.Body.Close()

	if response.StatusCode >= 300 {
		logger.Warn("unexpected webhook response", slog.String("status", response.Status))
	}
}
