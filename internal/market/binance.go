package market

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	jsoniter "github.com/json-iterator/go"
)

// Binance serves crypto pairs from the Binance spot REST API.
type Binance struct {
	client  *Client
	baseURL string
}

// NewBinance creates a Binance provider. baseURL is the API root,
// e.g. https://api.binance.com/api/v3.
func NewBinance(client *Client, baseURL string) *Binance {
	return &Binance{client: client, baseURL: baseURL}
}

func (b *Binance) Name() string { return "binance" }

// binanceTicker mirrors the /ticker/24hr fields we read. Binance
// serializes numbers as strings.
type binanceTicker struct {
	Symbol             string `json:"symbol"`
	LastPrice          string `json:"lastPrice"`
	PriceChangePercent string `json:"priceChangePercent"`
}

// Fetch returns the 24h rolling ticker for a symbol like BTCUSDT.
func (b *Binance) Fetch(ctx context.Context, symbol string) (Quote, error) {
	u := fmt.Sprintf("%s/ticker/24hr?symbol=%s", b.baseURL, url.QueryEscape(symbol))

	body, err := b.client.get(ctx, b.Name(), u)
	if err != nil {
		return Quote{}, fmt.Errorf("binance %s: %w", symbol, err)
	}

	var tick binanceTicker
	if err := jsoniter.Unmarshal(body, &tick); err != nil {
		return Quote{}, fmt.Errorf("binance %s: decode: %w", symbol, err)
	}

	price, err := strconv.ParseFloat(tick.LastPrice, 64)
	if err != nil {
		return Quote{}, fmt.Errorf("binance %s: parse price %q: %w", symbol, tick.LastPrice, err)
	}

	quote := Quote{
		Symbol:    symbol,
		Price:     price,
		Source:    b.Name(),
		FetchedAt: time.Now().UTC(),
	}
	if change, err := strconv.ParseFloat(tick.PriceChangePercent, 64); err == nil {
		quote.Change24h = &change
	}

	return quote, nil
}
