package market

import (
	"context"
	"fmt"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
)

// Frankfurter serves FX rates from the frankfurter.app API (ECB
// reference rates, one fixing per business day). No change data;
// Resolve computes one from history.
type Frankfurter struct {
	client  *Client
	baseURL string
}

// NewFrankfurter creates a Frankfurter provider. baseURL is the API
// root, e.g. https://api.frankfurter.app.
func NewFrankfurter(client *Client, baseURL string) *Frankfurter {
	return &Frankfurter{client: client, baseURL: baseURL}
}

func (f *Frankfurter) Name() string { return "frankfurter" }

type frankfurterLatest struct {
	Base  string             `json:"base"`
	Date  string             `json:"date"`
	Rates map[string]float64 `json:"rates"`
}

// Fetch returns the latest fixing for a pair like USD/JPY.
func (f *Frankfurter) Fetch(ctx context.Context, symbol string) (Quote, error) {
	base, quoteCur, ok := strings.Cut(symbol, "/")
	if !ok || base == "" || quoteCur == "" {
		return Quote{}, fmt.Errorf("frankfurter: symbol %q is not a BASE/QUOTE pair", symbol)
	}

	u := fmt.Sprintf("%s/latest?from=%s&to=%s", f.baseURL, base, quoteCur)

	body, err := f.client.get(ctx, f.Name(), u)
	if err != nil {
		return Quote{}, fmt.Errorf("frankfurter %s: %w", symbol, err)
	}

	var latest frankfurterLatest
	if err := jsoniter.Unmarshal(body, &latest); err != nil {
		return Quote{}, fmt.Errorf("frankfurter %s: decode: %w", symbol, err)
	}

	rate, ok := latest.Rates[quoteCur]
	if !ok {
		return Quote{}, fmt.Errorf("frankfurter %s: response has no %s rate", symbol, quoteCur)
	}

	return Quote{
		Symbol:    symbol,
		Price:     rate,
		Source:    f.Name(),
		FetchedAt: time.Now().UTC(),
	}, nil
}
