package gsheets

import (
	"context"
	"fmt"

	"google.golang.org/api/sheets/v4"
)

// Client wraps the spreadsheet values API of a single spreadsheet. All cell
// values are read and written as plain strings.
type Client struct {
	values        *sheets.SpreadsheetsValuesService
	spreadsheetID string
}

// NewClient creates a values client bound to one spreadsheet.
func NewClient(svc *sheets.Service, spreadsheetID string) *Client {
	return &Client{
		values:        svc.Spreadsheets.Values,
		spreadsheetID: spreadsheetID,
	}
}

// Get reads a range and normalizes every cell to a string. Cells the API
// returns as missing come back as empty strings.
func (c *Client) Get(ctx context.Context, readRange string) ([][]string, error) {
	resp, err := c.values.Get(c.spreadsheetID, readRange).Context(ctx).Do()
	if err != nil {
		return nil, err
	}

	rows := make([][]string, 0, len(resp.Values))
	for _, raw := range resp.Values {
		row := make([]string, len(raw))
		for i, cell := range raw {
			row[i] = cellString(cell)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// Append adds one row at the end of the given table.
func (c *Client) Append(ctx context.Context, writeRange string, row []string) error {
	_, err := c.values.Append(c.spreadsheetID, writeRange, valueRange(row)).
		ValueInputOption("USER_ENTERED").
		Context(ctx).
		Do()
	return err
}

// Update overwrites the cells of the given range with one row.
func (c *Client) Update(ctx context.Context, writeRange string, row []string) error {
	_, err := c.values.Update(c.spreadsheetID, writeRange, valueRange(row)).
		ValueInputOption("USER_ENTERED").
		Context(ctx).
		Do()
	return err
}

// Clear blanks the cells of the given range. The row itself is not removed.
func (c *Client) Clear(ctx context.Context, clearRange string) error {
	_, err := c.values.Clear(c.spreadsheetID, clearRange, &sheets.ClearValuesRequest{}).
		Context(ctx).
		Do()
	return err
}

func valueRange(row []string) *sheets.ValueRange {
	cells := make([]interface{}, len(row))
	for i, v := range row {
		cells[i] = v
	}
	return &sheets.ValueRange{Values: [][]interface{}{cells}}
}

func cellString(v interface{}) string {
	switch cell := v.(type) {
	case nil:
		return ""
	case string:
		return cell
	default:
		return fmt.Sprint(cell)
	}
}
