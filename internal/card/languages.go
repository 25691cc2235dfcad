package card

import (
	"fmt"
	"strings"

	"github.com/Sora4431/Sora4431/internal/stats"
)

// TopLanguages is how many languages the languages card shows.
const TopLanguages = 7

// Languages renders the 400x120 top-languages card: a stacked share
// bar plus a legend with one-decimal percentages. Empty input renders
// a placeholder card instead.
func Languages(t Theme, shares []stats.Share) string {
	if len(shares) == 0 {
		return wrapSVG(400, 80, `<div style="padding:18px;color:#8b949e;">No language data</div>`)
	}

	var bar, legend strings.Builder
	for _, s := range shares {
		color := colorFor(s.Name, s.Color)

		fmt.Fprintf(&bar,
			`<span style="width:%.2f%%;background:%s;display:inline-block;height:100%%;"></span>`,
			s.Percent, color)

		fmt.Fprintf(&legend,
			`<span style="display:inline-flex;align-items:center;gap:4px;margin:0 12px 6px 0;">`+
				`<span style="width:10px;height:10px;border-radius:50%%;background:%s;flex-shrink:0;display:inline-block;"></span>`+
				`<span style="font-size:11px;color:%s;">%s</span>`+
				`<span style="font-size:11px;color:%s;">%.1f%%</span>`+
				`</span>`,
			color, t.Text, escape(s.Name), t.Muted, s.Percent)
	}

	body := fmt.Sprintf(
		`<div style="padding:18px;font-family:-apple-system,BlinkMacSystemFont,'Segoe UI',sans-serif;">`+
			`<div style="font-size:14px;font-weight:600;color:%s;margin-bottom:14px;">💻 Top Languages</div>`+
			`<div style="height:8px;border-radius:4px;overflow:hidden;display:flex;margin-bottom:12px;">%s</div>`+
			`<div style="display:flex;flex-wrap:wrap;">%s</div>`+
			`</div>`,
		t.Text, bar.String(), legend.String())

	return wrapSVG(400, 120, body)
}
