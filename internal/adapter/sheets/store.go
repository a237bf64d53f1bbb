// Package sheets implements the RowStore over a Google Sheets worksheet
// accessed with a service account. Rows are positional; cleaning and the
// header invariant are the caller's responsibility.
package sheets

import (
	"context"
	"fmt"
	"log/slog"

	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	"github.com/yhlin/vocabsheet/internal/config"
)

// Store reads and writes rows of one worksheet.
type Store struct {
	svc           *sheetsapi.Service
	spreadsheetID string
	worksheet     string
	sheetID       int64
	log           *slog.Logger
}

// New connects to the spreadsheet and resolves the configured worksheet,
// creating it when absent.
func New(ctx context.Context, cfg config.SheetConfig, logger *slog.Logger) (*Store, error) {
	svc, err := sheetsapi.NewService(ctx,
		option.WithCredentialsFile(cfg.CredentialsFile),
		option.WithScopes(sheetsapi.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("sheets: create client: %w", err)
	}

	store := &Store{
		svc:           svc,
		spreadsheetID: cfg.SpreadsheetID,
		worksheet:     cfg.Worksheet,
		log:           logger.With("adapter", "sheets"),
	}

	if err := store.resolveWorksheet(ctx); err != nil {
		return nil, err
	}
	return store, nil
}

// resolveWorksheet finds the worksheet's numeric ID, adding the worksheet
// to the spreadsheet when it does not exist yet.
func (s *Store) resolveWorksheet(ctx context.Context) error {
	spreadsheet, err := s.svc.Spreadsheets.Get(s.spreadsheetID).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("sheets: get spreadsheet: %w", err)
	}

	for _, sheet := range spreadsheet.Sheets {
		if sheet.Properties.Title == s.worksheet {
			s.sheetID = sheet.Properties.SheetId
			return nil
		}
	}

	s.log.InfoContext(ctx, "worksheet missing, creating", slog.String("worksheet", s.worksheet))

	resp, err := s.svc.Spreadsheets.BatchUpdate(s.spreadsheetID, &sheetsapi.BatchUpdateSpreadsheetRequest{
		Requests: []*sheetsapi.Request{{
			AddSheet: &sheetsapi.AddSheetRequest{
				Properties: &sheetsapi.SheetProperties{Title: s.worksheet},
			},
		}},
	}).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("sheets: add worksheet %q: %w", s.worksheet, err)
	}

	s.sheetID = resp.Replies[0].AddSheet.Properties.SheetId
	return nil
}

// ReadAll returns every row of the worksheet, including row 1, with cells
// coerced to strings. Trailing empty rows are not reported by the API.
func (s *Store) ReadAll(ctx context.Context) ([][]string, error) {
	resp, err := s.svc.Spreadsheets.Values.Get(s.spreadsheetID, s.rangeAll()).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("sheets: read %s: %w", s.worksheet, err)
	}

	rows := make([][]string, len(resp.Values))
	for i, cells := range resp.Values {
		row := make([]string, len(cells))
		for j, cell := range cells {
			row[j] = fmt.Sprint(cell)
		}
		rows[i] = row
	}
	return rows, nil
}

// AppendRows appends the rows after the last non-empty row.
func (s *Store) AppendRows(ctx context.Context, rows [][]string) error {
	_, err := s.svc.Spreadsheets.Values.Append(s.spreadsheetID, s.rangeAll(), valueRange(rows)).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("sheets: append %d rows: %w", len(rows), err)
	}
	return nil
}

// WriteRow overwrites the row at the given 1-based index.
func (s *Store) WriteRow(ctx context.Context, index int, row []string) error {
	rng := fmt.Sprintf("'%s'!A%d", s.worksheet, index)
	_, err := s.svc.Spreadsheets.Values.Update(s.spreadsheetID, rng, valueRange([][]string{row})).
		ValueInputOption("RAW").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("sheets: write row %d: %w", index, err)
	}
	return nil
}

// InsertRowAt inserts a new row at the given 1-based index; the existing
// row at that index and everything below shift down by one.
func (s *Store) InsertRowAt(ctx context.Context, index int, row []string) error {
	_, err := s.svc.Spreadsheets.BatchUpdate(s.spreadsheetID, &sheetsapi.BatchUpdateSpreadsheetRequest{
		Requests: []*sheetsapi.Request{{
			InsertDimension: &sheetsapi.InsertDimensionRequest{
				Range: &sheetsapi.DimensionRange{
					SheetId:    s.sheetID,
					Dimension:  "ROWS",
					StartIndex: int64(index - 1),
					EndIndex:   int64(index),
				},
			},
		}},
	}).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("sheets: insert row %d: %w", index, err)
	}
	return s.WriteRow(ctx, index, row)
}

func (s *Store) rangeAll() string {
	return fmt.Sprintf("'%s'", s.worksheet)
}

func valueRange(rows [][]string) *sheetsapi.ValueRange {
	values := make([][]interface{}, len(rows))
	for i, row := range rows {
		cells := make([]interface{}, len(row))
		for j, cell := range row {
			cells[j] = cell
		}
		values[i] = cells
	}
	return &sheetsapi.ValueRange{Values: values}
}
