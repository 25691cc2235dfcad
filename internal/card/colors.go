package card

// langColors pins well-known languages to GitHub's linguist colors so
// both themes render them identically regardless of what the API
// carried.
var langColors = map[string]string{
	"TypeScript": "#3178c6",
	"Python":     "#3572A5",
	"JavaScript": "#f1e05a",
	"Ruby":       "#701516",
	"CSS":        "#563d7c",
	"HTML":       "#e34c26",
	"Shell":      "#89e051",
	"Go":         "#00ADD8",
	"Rust":       "#dea584",
	"Svelte":     "#ff3e00",
	"Vue":        "#41b883",
	"SCSS":       "#c6538c",
	"Java":       "#b07219",
	"Kotlin":     "#A97BFF",
	"Swift":      "#F05138",
	"C":          "#555555",
	"C++":        "#f34b7d",
	"Dockerfile": "#384d54",
}

// colorFor prefers the pinned color for a language and falls back to
// the color carried with the data.
func colorFor(name, fallback string) string {
	if c, ok := langColors[name]; ok {
		return c
	}
	return fallback
}
