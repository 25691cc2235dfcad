package market

import (
	"context"
	"fmt"
	"strconv"
	"time"

	jsoniter "github.com/json-iterator/go"
)

// Coinbase serves crypto pairs from the Coinbase Exchange REST API.
// Its product ticker carries no 24h change; Resolve computes one from
// history.
type Coinbase struct {
	client  *Client
	baseURL string
}

// NewCoinbase creates a Coinbase provider. baseURL is the API root,
// e.g. https://api.exchange.coinbase.com.
func NewCoinbase(client *Client, baseURL string) *Coinbase {
	return &Coinbase{client: client, baseURL: baseURL}
}

func (c *Coinbase) Name() string { return "coinbase" }

type coinbaseTicker struct {
	Price string `json:"price"`
	Time  string `json:"time"`
}

// Fetch returns the last trade price for a product like BTC-USD.
func (c *Coinbase) Fetch(ctx context.Context, symbol string) (Quote, error) {
	u := fmt.Sprintf("%s/products/%s/ticker", c.baseURL, symbol)

	body, err := c.client.get(ctx, c.Name(), u)
	if err != nil {
		return Quote{}, fmt.Errorf("coinbase %s: %w", symbol, err)
	}

	var tick coinbaseTicker
	if err := jsoniter.Unmarshal(body, &tick); err != nil {
		return Quote{}, fmt.Errorf("coinbase %s: decode: %w", symbol, err)
	}

	price, err := strconv.ParseFloat(tick.Price, 64)
	if err != nil {
		return Quote{}, fmt.Errorf("coinbase %s: parse price %q: %w", symbol, tick.Price, err)
	}

	return Quote{
		Symbol:    symbol,
		Price:     price,
		Source:    c.Name(),
		FetchedAt: time.Now().UTC(),
	}, nil
}
