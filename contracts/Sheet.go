package contracts

import (
	"errors"
	"time"
)

type Sheet struct {
	SheetId   string    `json:"sheet_id"`
	CreatedAt time.Time `json:"created_at"`
}

var SheetNotFoundError = errors.New("sheet not found")

var SheetAlreadyExistsError = errors.New("sheet with this sheet_id already exists")
