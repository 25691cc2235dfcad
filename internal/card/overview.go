package card

import (
	"fmt"
	"strings"

	"github.com/Sora4431/Sora4431/internal/stats"
)

// Overview renders the 400x272 stats card: six value boxes in a
// two-column grid under a "since" subtitle. publicOnly appends the
// footnote shown when contributions were counted without a PAT.
func Overview(t Theme, totals stats.Totals, publicOnly bool) string {
	items := []struct {
		label string
		value int
	}{
		{"Commits", totals.Commits},
		{"Pull Requests", totals.PullRequests},
		{"PR Reviews", totals.Reviews},
		{"Issues", totals.Issues},
		{"Stars Earned", totals.Stars},
		{"Repositories", totals.Repos},
	}

	var boxes strings.Builder
	for i, item := range items {
		fmt.Fprintf(&boxes,
			`<div style="background:%s;border:1px solid %s;border-radius:8px;padding:12px 14px;">`+
				`<div style="font-size:22px;font-weight:700;color:%s;">%s</div>`+
				`<div style="font-size:11px;color:%s;margin-top:3px;">%s</div>`+
				`</div>`,
			t.CardBG, t.Border, t.Colors[i], formatCount(item.value), t.Muted, escape(item.label))
	}

	note := ""
	if publicOnly {
		note = fmt.Sprintf(`<div style="font-size:10px;color:%s;margin-top:10px;text-align:right;">* public contributions only</div>`, t.Muted)
	}

	body := fmt.Sprintf(
		`<div style="padding:18px;font-family:-apple-system,BlinkMacSystemFont,'Segoe UI',sans-serif;">`+
			`<div style="font-size:14px;font-weight:600;color:%s;margin-bottom:3px;">📊 GitHub Stats</div>`+
			`<div style="font-size:11px;color:%s;margin-bottom:14px;">since %s</div>`+
			`<div style="display:grid;grid-template-columns:1fr 1fr;gap:8px;">%s</div>`+
			`%s</div>`,
		t.Text, t.Muted, escape(totals.Since), boxes.String(), note)

	return wrapSVG(400, 272, body)
}
