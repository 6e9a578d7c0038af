package main

import (
	"context"
	"fmt"
	json "github.com/bytedance/sonic"
	"go.etcd.io/bbolt"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"log/slog"
	"sheetsApi/contracts"
	"strings"
	"time"
	"unicode/utf8"
)

const tracerName = "sheetsApi"

var (
	// canonical sheet id => sheet json
	sheetsBucket = []byte("sheets")
	// nested bucket per canonical sheet id, cell_id => serialized cell
	cellsBucket = []byte("cells")
	// cell_id => canonical sheet id, cell ids are unique across all sheets
	cellIndexBucket = []byte("cell_index")
)

type SheetRepository struct {
	db                *bbolt.DB
	engine            contracts.FormulaEngine
	serializer        contracts.CellSerializer
	canonicalizer     contracts.Canonicalizer
	webhookDispatcher contracts.WebhookDispatcher
	logger            *slog.Logger
}

func NewSheetRepository(
	db *bbolt.DB, engine contracts.FormulaEngine,
	serializer contracts.CellSerializer, canonicalizer contracts.Canonicalizer,
	webhookDispatcher contracts.WebhookDispatcher, logger *slog.Logger,
) *SheetRepository {
	return &SheetRepository{
		db:                db,
		engine:            engine,
		serializer:        serializer,
		canonicalizer:     canonicalizer,
		webhookDispatcher: webhookDispatcher,
		logger:            logger,
	}
}

func (s *SheetRepository) CreateSheet(ctx context.Context, sheetId string) (sheet *contracts.Sheet, err error) {
	_, span := s.startSpan(ctx, "CreateSheet", attribute.String("sheet_id", sheetId))
	defer func() { finishSpan(span, err) }()

	sheetId = strings.TrimSpace(sheetId)
	if err = validateId("sheet_id", sheetId); err != nil {
		return nil, err
	}

	sheet = &contracts.Sheet{SheetId: sheetId, CreatedAt: time.Now().UTC()}
	payload, err := json.Marshal(sheet)
	if err != nil {
		return nil, err
	}

	sheetKey := s.sheetKey(sheetId)
	err = s.db.Update(func(tx *bbolt.Tx) error {
		sheets, err := tx.CreateBucketIfNotExists(sheetsBucket)
		if err != nil {
			return err
		}

		if sheets.Get(sheetKey) != nil {
			return fmt.Errorf("sheet_id `%s`: %w", sheetId, contracts.SheetAlreadyExistsError)
		}

		if _, err = s.createSheetCellsBucket(tx, sheetKey); err != nil {
			return err
		}

		return sheets.Put(sheetKey, payload)
	})

	if err != nil {
		return nil, err
	}

	return sheet, nil
}

func (s *SheetRepository) GetSheetList(ctx context.Context) (list []*contracts.Sheet, err error) {
	_, span := s.startSpan(ctx, "GetSheetList")
	defer func() { finishSpan(span, err) }()

	list = make([]*contracts.Sheet, 0)
	err = s.db.View(func(tx *bbolt.Tx) error {
		sheets := tx.Bucket(sheetsBucket)
		if sheets == nil {
			return nil
		}

		return sheets.ForEach(func(k, v []byte) error {
			sheet := &contracts.Sheet{}
			if err := json.Unmarshal(v, sheet); err != nil {
				return fmt.Errorf("sheet %s: %w", k, err)
			}
			list = append(list, sheet)
			return nil
		})
	})

	return
}

// DeleteSheet deletes the sheet with all its cells
func (s *SheetRepository) DeleteSheet(ctx context.Context, sheetId string) (err error) {
	_, span := s.startSpan(ctx, "DeleteSheet", attribute.String("sheet_id", sheetId))
	defer func() { finishSpan(span, err) }()

	sheetKey := s.sheetKey(sheetId)
	return s.db.Update(func(tx *bbolt.Tx) error {
		if _, err := s.getSheet(tx, sheetId, sheetKey); err != nil {
			return err
		}

		if cells := s.sheetCellsBucket(tx, sheetKey); cells != nil {
			if index := tx.Bucket(cellIndexBucket); index != nil {
				err := cells.ForEach(func(cellId, _ []byte) error {
					return index.Delete(cellId)
				})
				if err != nil {
					return err
				}
			}

			if err := tx.Bucket(cellsBucket).DeleteBucket(sheetKey); err != nil {
				return err
			}
		}

		return tx.Bucket(sheetsBucket).Delete(sheetKey)
	})
}

// CreateCell computes the result and stores the cell in one transaction, nothing is stored when computing fails
func (s *SheetRepository) CreateCell(ctx context.Context, sheetId string, cellId string, value string) (cell *contracts.Cell, err error) {
	_, span := s.startSpan(ctx, "CreateCell",
		attribute.String("sheet_id", sheetId),
		attribute.String("cell_id", cellId),
		attribute.Bool("formula", s.engine.IsFormula(value)),
	)
	defer func() { finishSpan(span, err) }()

	if err = validateId("sheet_id", sheetId); err == nil {
		if err = validateCellId(cellId); err == nil {
			err = validateValue(value)
		}
	}
	if err != nil {
		return nil, err
	}

	cell = &contracts.Cell{Value: value}
	cellKey := []byte(cellId)
	sheetKey := s.sheetKey(sheetId)

	var sheet *contracts.Sheet
	err = s.db.Update(func(tx *bbolt.Tx) (err error) {
		sheet, err = s.getSheet(tx, sheetId, sheetKey)
		if err != nil {
			return
		}

		index, err := tx.CreateBucketIfNotExists(cellIndexBucket)
		if err != nil {
			return
		}
		if index.Get(cellKey) != nil {
			return fmt.Errorf("cell_id `%s`: %w", cellId, contracts.CellAlreadyExistsError)
		}

		cells, err := s.createSheetCellsBucket(tx, sheetKey)
		if err != nil {
			return
		}

		cell.Result, err = s.engine.Compute(value, s.makeCellLookup(cells))
		if err != nil {
			return
		}

		if err = cells.Put(cellKey, s.serializer.Marshal(cellId, cell)); err != nil {
			return
		}

		return index.Put(cellKey, sheetKey)
	})

	if err != nil {
		return nil, err
	}

	s.notify(sheet.SheetId, cellId, cell)
	return cell, nil
}

// UpdateCell replaces value and result of existing cell, cells which reference it keep their stored results
func (s *SheetRepository) UpdateCell(ctx context.Context, sheetId string, cellId string, value string) (cell *contracts.Cell, err error) {
	_, span := s.startSpan(ctx, "UpdateCell",
		attribute.String("sheet_id", sheetId),
		attribute.String("cell_id", cellId),
		attribute.Bool("formula", s.engine.IsFormula(value)),
	)
	defer func() { finishSpan(span, err) }()

	if err = validateValue(value); err != nil {
		return nil, err
	}

	cell = &contracts.Cell{Value: value}
	cellKey := []byte(cellId)
	sheetKey := s.sheetKey(sheetId)

	var sheet *contracts.Sheet
	err = s.db.Update(func(tx *bbolt.Tx) (err error) {
		sheet, err = s.getSheet(tx, sheetId, sheetKey)
		if err != nil {
			return
		}

		cells := s.sheetCellsBucket(tx, sheetKey)
		if cells == nil || cells.Get(cellKey) == nil {
			return fmt.Errorf("%s: %w", cellId, contracts.CellNotFoundError)
		}

		cell.Result, err = s.engine.Compute(value, s.makeCellLookup(cells))
		if err != nil {
			return
		}

		return cells.Put(cellKey, s.serializer.Marshal(cellId, cell))
	})

	if err != nil {
		return nil, err
	}

	s.notify(sheet.SheetId, cellId, cell)
	return cell, nil
}

func (s *SheetRepository) GetCell(ctx context.Context, sheetId string, cellId string) (cell *contracts.Cell, err error) {
	_, span := s.startSpan(ctx, "GetCell",
		attribute.String("sheet_id", sheetId),
		attribute.String("cell_id", cellId),
	)
	defer func() { finishSpan(span, err) }()

	sheetKey := s.sheetKey(sheetId)
	err = s.db.View(func(tx *bbolt.Tx) (err error) {
		if _, err = s.getSheet(tx, sheetId, sheetKey); err != nil {
			return
		}

		var byteValue []byte
		if cells := s.sheetCellsBucket(tx, sheetKey); cells != nil {
			byteValue = cells.Get([]byte(cellId))
		}

		if byteValue == nil {
			return fmt.Errorf("%s: %w", cellId, contracts.CellNotFoundError)
		}

		_, cell, err = s.serializer.Unmarshal(byteValue)
		return
	})

	if err != nil {
		return nil, err
	}

	return cell, nil
}

// DeleteCell does not touch results of cells which reference the deleted one
func (s *SheetRepository) DeleteCell(ctx context.Context, sheetId string, cellId string) (err error) {
	_, span := s.startSpan(ctx, "DeleteCell",
		attribute.String("sheet_id", sheetId),
		attribute.String("cell_id", cellId),
	)
	defer func() { finishSpan(span, err) }()

	cellKey := []byte(cellId)
	sheetKey := s.sheetKey(sheetId)

	return s.db.Update(func(tx *bbolt.Tx) error {
		if _, err := s.getSheet(tx, sheetId, sheetKey); err != nil {
			return err
		}

		cells := s.sheetCellsBucket(tx, sheetKey)
		if cells == nil || cells.Get(cellKey) == nil {
			return fmt.Errorf("%s: %w", cellId, contracts.CellNotFoundError)
		}

		if err := cells.Delete(cellKey); err != nil {
			return err
		}

		if index := tx.Bucket(cellIndexBucket); index != nil {
			return index.Delete(cellKey)
		}
		return nil
	})
}

func (s *SheetRepository) GetCellList(ctx context.Context, sheetId string) (list *contracts.CellList, err error) {
	_, span := s.startSpan(ctx, "GetCellList", attribute.String("sheet_id", sheetId))
	defer func() { finishSpan(span, err) }()

	cellList := contracts.CellList{}
	sheetKey := s.sheetKey(sheetId)

	err = s.db.View(func(tx *bbolt.Tx) error {
		if _, err := s.getSheet(tx, sheetId, sheetKey); err != nil {
			return err
		}

		s.forEachCell(s.sheetCellsBucket(tx, sheetKey), func(cellId string, cell *contracts.Cell) {
			cellList[cellId] = cell
		})
		return nil
	})

	if err != nil {
		return nil, err
	}

	return &cellList, nil
}

func (s *SheetRepository) GetAllCells(ctx context.Context) (list []*contracts.SheetCell, err error) {
	_, span := s.startSpan(ctx, "GetAllCells")
	defer func() { finishSpan(span, err) }()

	list = make([]*contracts.SheetCell, 0)
	err = s.db.View(func(tx *bbolt.Tx) error {
		sheets := tx.Bucket(sheetsBucket)
		if sheets == nil {
			return nil
		}

		return sheets.ForEach(func(sheetKey, payload []byte) error {
			sheet := &contracts.Sheet{}
			if err := json.Unmarshal(payload, sheet); err != nil {
				return fmt.Errorf("sheet %s: %w", sheetKey, err)
			}

			s.forEachCell(s.sheetCellsBucket(tx, sheetKey), func(cellId string, cell *contracts.Cell) {
				list = append(list, &contracts.SheetCell{SheetId: sheet.SheetId, CellId: cellId, Cell: *cell})
			})
			return nil
		})
	})

	return
}

func (s *SheetRepository) sheetKey(sheetId string) []byte {
	return []byte(s.canonicalizer.Canonicalize(sheetId))
}

func (s *SheetRepository) getSheet(tx *bbolt.Tx, sheetId string, sheetKey []byte) (*contracts.Sheet, error) {
	var payload []byte
	if sheets := tx.Bucket(sheetsBucket); sheets != nil {
		payload = sheets.Get(sheetKey)
	}

	if payload == nil {
		return nil, fmt.Errorf("%s: %w", sheetId, contracts.SheetNotFoundError)
	}

	sheet := &contracts.Sheet{}
	if err := json.Unmarshal(payload, sheet); err != nil {
		return nil, fmt.Errorf("sheet %s: %w", sheetId, err)
	}
	return sheet, nil
}

func (s *SheetRepository) sheetCellsBucket(tx *bbolt.Tx, sheetKey []byte) *bbolt.Bucket {
	cells := tx.Bucket(cellsBucket)
	if cells == nil {
		return nil
	}

	return cells.Bucket(sheetKey)
}

func (s *SheetRepository) createSheetCellsBucket(tx *bbolt.Tx, sheetKey []byte) (*bbolt.Bucket, error) {
	cells, err := tx.CreateBucketIfNotExists(cellsBucket)
	if err != nil {
		return nil, err
	}

	return cells.CreateBucketIfNotExists(sheetKey)
}

// makeCellLookup binds the formula engine to one sheet inside the current transaction
func (s *SheetRepository) makeCellLookup(cells *bbolt.Bucket) contracts.CellLookup {
	return func(cellIds []string) []*contracts.Cell {
		found := make([]*contracts.Cell, len(cellIds))

		for index, cellId := range cellIds {
			byteValue := cells.Get([]byte(cellId))
			if byteValue == nil {
				continue
			}

			_, cell, err := s.serializer.Unmarshal(byteValue)
			if err != nil {
				s.log().Warn("skip corrupted cell", slog.String("cell_id", cellId), slog.String("error", err.Error()))
				continue
			}
			found[index] = cell
		}

		return found
	}
}

func (s *SheetRepository) forEachCell(cells *bbolt.Bucket, callback func(cellId string, cell *contracts.Cell)) {
	if cells == nil {
		return
	}

	c := cells.Cursor()
	for k, v := c.First(); k != nil; k, v = c.Next() {
		cellId, cell, err := s.serializer.Unmarshal(v)
		if err != nil {
			s.log().Warn("skip corrupted cell", slog.String("cell_id", string(k)), slog.String("error", err.Error()))
			continue
		}
		callback(cellId, cell)
	}
}

func (s *SheetRepository) notify(sheetId string, cellId string, cell *contracts.Cell) {
	if s.webhookDispatcher != nil {
		s.webhookDispatcher.Notify([]*contracts.SheetCell{
			{SheetId: sheetId, CellId: cellId, Cell: *cell},
		})
	}
}

func (s *SheetRepository) log() *slog.Logger {
	if s.logger == nil {
		return slog.Default()
	}
	return s.logger
}

func (s *SheetRepository) startSpan(ctx context.Context, name string, attributes ...attribute.KeyValue) (context.Context, trace.Span) {
	return otel.Tracer(tracerName).Start(ctx, "SheetRepository."+name, trace.WithAttributes(attributes...))
}

func finishSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

func validateId(field string, id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%s: %w", field, contracts.FieldEmptyError)
	}

	if utf8.RuneCountInString(id) > contracts.MaxFieldLength {
		return fmt.Errorf("%s: %w", field, contracts.FieldTooLongError)
	}

	return nil
}

func validateCellId(cellId string) error {
	if err := validateId("cell_id", cellId); err != nil {
		return err
	}

	if isDigit(cellId[0]) {
		return fmt.Errorf("cell_id `%s`: %w", cellId, contracts.CellIdInvalidError)
	}

	return nil
}

func validateValue(value string) error {
	if value == "" {
		return fmt.Errorf("value: %w", contracts.FieldEmptyError)
	}

	if utf8.RuneCountInString(value) > contracts.MaxFieldLength {
		return fmt.Errorf("value: %w", contracts.FieldTooLongError)
	}

	return nil
}
