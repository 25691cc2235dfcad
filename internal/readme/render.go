package readme

import (
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/Sora4431/Sora4431/internal/market"
)

// Document holds what Render needs to assemble the profile README
// from scratch.
type Document struct {
	Login     string       // Account the profile belongs to
	SVGDir    string       // Repo-relative dir holding the generated cards
	Rows      []market.Row // Market table rows
	UpdatedAt time.Time
}

// Render assembles the complete profile document. marketsync uses it
// once to bootstrap a missing README; afterwards only the marker
// region is ever rewritten.
func Render(doc Document) string {
	raw := fmt.Sprintf("https://raw.githubusercontent.com/%s/%s/main", doc.Login, doc.Login)
	// The raw CDN caches aggressively; a date query parameter makes
	// refreshed charts show up without waiting out the cache.
	buster := doc.UpdatedAt.UTC().Format("20060102")

	var b strings.Builder

	fmt.Fprintf(&b, "## Hi, I'm %s 👋\n\n", doc.Login)

	b.WriteString(picture(
		path.Join(doc.SVGDir, "overview-dark.svg"),
		path.Join(doc.SVGDir, "overview-light.svg"),
		"GitHub stats",
	))
	b.WriteString("\n")
	b.WriteString(picture(
		path.Join(doc.SVGDir, "languages-dark.svg"),
		path.Join(doc.SVGDir, "languages-light.svg"),
		"Top languages",
	))
	b.WriteString("\n\n")

	b.WriteString(picture(
		fmt.Sprintf("%s/output/assets/monthly-contributions-dark.svg?v=%s", raw, buster),
		fmt.Sprintf("%s/output/assets/monthly-contributions-light.svg?v=%s", raw, buster),
		"Monthly contributions",
	))
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "![GitHub streak](https://streak-stats.demolab.com?user=%s&hide_border=true)\n\n", doc.Login)

	b.WriteString("### Markets\n\n")
	b.WriteString(StartMarker)
	b.WriteString("\n")
	b.WriteString(RenderTable(doc.Rows, doc.UpdatedAt))
	b.WriteString("\n")
	b.WriteString(EndMarker)
	b.WriteString("\n\n")

	b.WriteString("<sub>Stats refresh weekly and market data daily through scheduled workflows.</sub>\n")

	return b.String()
}

// picture emits a theme-switched image embed. The light variant doubles
// as the fallback for clients without media query support.
func picture(darkSrc, lightSrc, alt string) string {
	return fmt.Sprintf(`<picture>
  <source media="(prefers-color-scheme: dark)" srcset="%s">
  <source media="(prefers-color-scheme: light)" srcset="%s">
  <img alt="%s" src="%s">
</picture>`, darkSrc, lightSrc, alt, lightSrc)
}
