package card

import (
	"fmt"
	"strconv"
	"strings"
)

// escaper covers the characters XML treats specially in text and
// attribute values.
var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

func escape(s string) string {
	return escaper.Replace(s)
}

// formatCount shortens stat box values: 1234 renders "1.2k", 12000
// renders "12k", values under 1000 render unchanged.
func formatCount(n int) string {
	if n >= 1000 {
		s := fmt.Sprintf("%.1fk", float64(n)/1000)
		return strings.Replace(s, ".0k", "k", 1)
	}
	return strconv.Itoa(n)
}

// wrapSVG embeds an XHTML body in a fixed-size SVG foreignObject.
func wrapSVG(width, height int, body string) string {
	return fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d">`+
		`<foreignObject width="%d" height="%d">`+
		`<div xmlns="http://www.w3.org/1999/xhtml">%s</div>`+
		`</foreignObject></svg>`,
		width, height, width, height, body)
}
