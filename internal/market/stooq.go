package market

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Stooq serves index quotes from stooq.com's CSV endpoint. The daily
// snapshot carries open and close, so the change column is intraday
// (close vs open) rather than 24h.
type Stooq struct {
	client  *Client
	baseURL string
}

// NewStooq creates a Stooq provider. baseURL is the quote endpoint,
// e.g. https://stooq.com/q/l/.
func NewStooq(client *Client, baseURL string) *Stooq {
	return &Stooq{client: client, baseURL: baseURL}
}

func (s *Stooq) Name() string { return "stooq" }

// Fetch returns the daily snapshot for a symbol like ^spx.
func (s *Stooq) Fetch(ctx context.Context, symbol string) (Quote, error) {
	// s=<symbol>, f=sd2t2ohlcv selects symbol/date/time/OHLC/volume,
	// h adds the header row, e=csv picks the format.
	u := fmt.Sprintf("%s?s=%s&f=sd2t2ohlcv&h&e=csv", s.baseURL, url.QueryEscape(symbol))

	body, err := s.client.get(ctx, s.Name(), u)
	if err != nil {
		return Quote{}, fmt.Errorf("stooq %s: %w", symbol, err)
	}

	open, closePrice, err := parseStooqCSV(body)
	if err != nil {
		return Quote{}, fmt.Errorf("stooq %s: %w", symbol, err)
	}

	quote := Quote{
		Symbol:    symbol,
		Price:     closePrice,
		Source:    s.Name(),
		FetchedAt: time.Now().UTC(),
	}
	if open != 0 {
		change := (closePrice - open) / open * 100
		quote.Change24h = &change
	}

	return quote, nil
}

// parseStooqCSV extracts Open and Close from the one-row CSV payload.
// Unknown symbols come back with "N/D" in every field.
func parseStooqCSV(body []byte) (open, closePrice float64, err error) {
	records, err := csv.NewReader(bytes.NewReader(body)).ReadAll()
	if err != nil {
		return 0, 0, fmt.Errorf("parse csv: %w", err)
	}
	if len(records) < 2 {
		return 0, 0, fmt.Errorf("csv has no data row")
	}

	header, row := records[0], records[1]

	openIdx, closeIdx := -1, -1
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "open":
			openIdx = i
		case "close":
			closeIdx = i
		}
	}
	if openIdx < 0 || closeIdx < 0 || len(row) <= openIdx || len(row) <= closeIdx {
		return 0, 0, fmt.Errorf("csv missing open/close columns")
	}

	if row[closeIdx] == "N/D" {
		return 0, 0, fmt.Errorf("no data for symbol")
	}

	open, err = strconv.ParseFloat(row[openIdx], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("parse open %q: %w", row[openIdx], err)
	}
	closePrice, err = strconv.ParseFloat(row[closeIdx], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("parse close %q: %w", row[closeIdx], err)
	}

	return open, closePrice, nil
}
