package readme

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/Sora4431/Sora4431/internal/market"
)

// printer groups thousands the way the rest of the document reads.
var printer = message.NewPrinter(language.English)

// RenderTable renders the market region content: a GFM table plus an
// HTML comment carrying the update timestamp. Callers splice the
// result between the markers.
func RenderTable(rows []market.Row, updatedAt time.Time) string {
	var b strings.Builder

	b.WriteString("| Market | Price | 24h | Source |\n")
	b.WriteString("| --- | ---: | ---: | --- |\n")

	for _, row := range rows {
		b.WriteString("| ")
		b.WriteString(row.Label)
		b.WriteString(" | ")
		b.WriteString(formatPrice(row))
		b.WriteString(" | ")
		b.WriteString(formatChange(row.Change))
		b.WriteString(" | ")
		b.WriteString(formatSource(row))
		b.WriteString(" |\n")
	}

	fmt.Fprintf(&b, "\n<!-- updated %s -->", updatedAt.UTC().Format(time.RFC3339))

	return b.String()
}

// formatPrice picks precision by magnitude: FX-style rates under 10
// keep four decimals, everything else two, with thousand separators.
func formatPrice(row market.Row) string {
	if row.Status == market.StatusMissing {
		return "n/a"
	}
	if row.Price < 10 {
		return printer.Sprintf("%.4f", row.Price)
	}
	return printer.Sprintf("%.2f", row.Price)
}

// formatChange renders the signed percent with a direction glyph. A
// nil change renders the neutral glyph alone.
func formatChange(change *float64) string {
	if change == nil {
		return "•"
	}

	switch v := *change; {
	case v >= 0.005:
		return fmt.Sprintf("▲ +%.2f%%", v)
	case v <= -0.005:
		return fmt.Sprintf("▼ %.2f%%", v)
	default:
		return "• 0.00%"
	}
}

// formatSource names the provider, with the snapshot date appended on
// stale rows so readers can see how old the number is.
func formatSource(row market.Row) string {
	if row.Status == market.StatusStale {
		return fmt.Sprintf("%s (stale, %s)", row.Source, row.AsOf.UTC().Format("2006-01-02"))
	}
	return row.Source
}
