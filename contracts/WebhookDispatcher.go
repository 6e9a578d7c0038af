package contracts

type WebhookDispatcher interface {
	SetWebhookUrl(sheetId string, cellId string, webhookUrl string)
	GetWebhookUrl(sheetId string, cellId string) string
	Notify(cells []*SheetCell)
	Start()
	Close()
}
