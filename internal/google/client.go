// Package google wraps the Sheets and Forms services behind the two
// narrow contracts the dashboard needs: a tabular record store
// (list/write/append rows) and a form service (create a form, replace a
// choice question's options).  Nothing outside this package talks to
// the Google APIs directly.
package google

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"

	"google.golang.org/api/forms/v1"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// Client holds authenticated Sheets and Forms services plus a cache of
// resolved data-sheet titles.  The title of the sheet holding form
// responses is not fixed (it depends on the form's locale), so it is
// discovered once per spreadsheet and reused for every subsequent
// range operation.
type Client struct {
	Sheets *sheets.Service
	Forms  *forms.Service

	mu     sync.Mutex
	titles map[string]string // spreadsheet ID -> data sheet title
}

// NewClient builds the services from explicit service-account JSON in
// GOOGLE_CREDENTIALS_JSON when present, otherwise from Application
// Default Credentials (GOOGLE_APPLICATION_CREDENTIALS or the runtime
// service account).
func NewClient(ctx context.Context) (*Client, error) {
	var opts []option.ClientOption
	if credJSON := os.Getenv("GOOGLE_CREDENTIALS_JSON"); strings.TrimSpace(credJSON) != "" {
		opts = append(opts, option.WithCredentialsJSON([]byte(credJSON)))
	}

	sheetsSvc, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("init sheets service: %w", err)
	}
	formsSvc, err := forms.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("init forms service: %w", err)
	}
	return &Client{
		Sheets: sheetsSvc,
		Forms:  formsSvc,
		titles: make(map[string]string),
	}, nil
}

// dataSheetTitle resolves which sheet of the spreadsheet holds the data
// rows.  Form-linked spreadsheets name their response sheet "Form
// Responses N" (or the localized equivalent); standalone sheets use
// their first sheet.  The result is cached for the client's lifetime.
func (c *Client) dataSheetTitle(ctx context.Context, spreadsheetID string) (string, error) {
	c.mu.Lock()
	if t, ok := c.titles[spreadsheetID]; ok {
		c.mu.Unlock()
		return t, nil
	}
	c.mu.Unlock()

	meta, err := c.Sheets.Spreadsheets.Get(spreadsheetID).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("get spreadsheet %s: %w", spreadsheetID, err)
	}
	if len(meta.Sheets) == 0 {
		return "", fmt.Errorf("spreadsheet %s has no sheets", spreadsheetID)
	}
	title := meta.Sheets[0].Properties.Title
	for _, s := range meta.Sheets {
		t := s.Properties.Title
		if strings.Contains(t, "Form Responses") || strings.Contains(t, "フォームの回答") || strings.Contains(t, "回答") {
			title = t
			break
		}
	}

	c.mu.Lock()
	c.titles[spreadsheetID] = title
	c.mu.Unlock()
	return title, nil
}

// qualify prefixes a span like "A2:H" or "H5" with the resolved data
// sheet title, producing a full A1-notation range.
func (c *Client) qualify(ctx context.Context, spreadsheetID, span string) (string, error) {
	title, err := c.dataSheetTitle(ctx, spreadsheetID)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("'%s'!%s", title, span), nil
}

// ListRows returns the cell values of the given span as a row-major
// slice.  A spreadsheet with no data rows beyond the header yields an
// empty (nil) result, not an error.
func (c *Client) ListRows(ctx context.Context, spreadsheetID, span string) ([][]any, error) {
	rng, err := c.qualify(ctx, spreadsheetID, span)
	if err != nil {
		return nil, err
	}
	resp, err := c.Sheets.Spreadsheets.Values.Get(spreadsheetID, rng).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", rng, err)
	}
	return resp.Values, nil
}

// WriteRow overwrites exactly the addressed cells with values, using
// RAW input so the store does not reinterpret the strings.
func (c *Client) WriteRow(ctx context.Context, spreadsheetID, span string, values []any) error {
	rng, err := c.qualify(ctx, spreadsheetID, span)
	if err != nil {
		return err
	}
	vr := &sheets.ValueRange{Values: [][]any{values}}
	_, err = c.Sheets.Spreadsheets.Values.Update(spreadsheetID, rng, vr).
		ValueInputOption("RAW").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("write %s: %w", rng, err)
	}
	return nil
}

// AppendRow adds a new row after the last row of the addressed range.
func (c *Client) AppendRow(ctx context.Context, spreadsheetID, span string, values []any) error {
	rng, err := c.qualify(ctx, spreadsheetID, span)
	if err != nil {
		return err
	}
	vr := &sheets.ValueRange{Values: [][]any{values}}
	_, err = c.Sheets.Spreadsheets.Values.Append(spreadsheetID, rng, vr).
		ValueInputOption("RAW").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("append %s: %w", rng, err)
	}
	return nil
}
