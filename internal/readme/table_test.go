package readme

import (
	"strings"
	"testing"
	"time"

	"github.com/Sora4431/Sora4431/internal/market"
)

func ptr(v float64) *float64 { return &v }

func TestRenderTable(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	rows := []market.Row{
		{Label: "BTC / USD", Price: 65123.45, Change: ptr(2.31), Source: "binance", Status: market.StatusLive, AsOf: now},
		{Label: "S&P 500", Price: 5431.60, Change: ptr(-0.42), Source: "stooq", Status: market.StatusStale, AsOf: now.Add(-26 * time.Hour)},
		{Label: "USD / JPY", Price: 157.34, Source: "frankfurter", Status: market.StatusLive, AsOf: now},
	}

	table := RenderTable(rows, now)

	for _, want := range []string{
		"| Market | Price | 24h | Source |",
		"| BTC / USD | 65,123.45 | ▲ +2.31% | binance |",
		"| S&P 500 | 5,431.60 | ▼ -0.42% | stooq (stale, 2024-06-14) |",
		"| USD / JPY | 157.34 | • | frankfurter |",
		"<!-- updated 2024-06-15T12:00:00Z -->",
	} {
		if !strings.Contains(table, want) {
			t.Errorf("table missing %q\n%s", want, table)
		}
	}
}

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		row  market.Row
		want string
	}{
		{market.Row{Price: 65123.45, Status: market.StatusLive}, "65,123.45"},
		{market.Row{Price: 157.34, Status: market.StatusLive}, "157.34"},
		{market.Row{Price: 1.0843, Status: market.StatusLive}, "1.0843"},
		{market.Row{Status: market.StatusMissing}, "n/a"},
	}

	for _, tt := range tests {
		if got := formatPrice(tt.row); got != tt.want {
			t.Errorf("formatPrice(%v) = %q, want %q", tt.row.Price, got, tt.want)
		}
	}
}

func TestFormatChange(t *testing.T) {
	tests := []struct {
		change *float64
		want   string
	}{
		{ptr(2.31), "▲ +2.31%"},
		{ptr(-0.42), "▼ -0.42%"},
		{ptr(0.001), "• 0.00%"},
		{ptr(-0.004), "• 0.00%"},
		{nil, "•"},
	}

	for _, tt := range tests {
		if got := formatChange(tt.change); got != tt.want {
			t.Errorf("formatChange = %q, want %q", got, tt.want)
		}
	}
}
