package card

import "fmt"

// Theme is one card palette. Colors holds the per-box value colors of
// the overview card, in box order.
type Theme struct {
	Name   string
	Text   string
	Muted  string
	Border string
	CardBG string
	Accent string
	Colors [6]string
}

var (
	// Dark matches GitHub's dark UI.
	Dark = Theme{
		Name:   "dark",
		Text:   "#e6edf3",
		Muted:  "#8b949e",
		Border: "#30363d",
		CardBG: "#161b22",
		Accent: "#58a6ff",
		Colors: [6]string{"#58a6ff", "#3fb950", "#a371f7", "#f78166", "#e3b341", "#79c0ff"},
	}

	// Light matches GitHub's default light UI.
	Light = Theme{
		Name:   "light",
		Text:   "#24292f",
		Muted:  "#656d76",
		Border: "#d0d7de",
		CardBG: "#f6f8fa",
		Accent: "#0969da",
		Colors: [6]string{"#0969da", "#1a7f37", "#8250df", "#d1242f", "#9a6700", "#0550ae"},
	}
)

// ByName returns the named theme.
func ByName(name string) (Theme, error) {
	switch name {
	case "dark":
		return Dark, nil
	case "light":
		return Light, nil
	}
	return Theme{}, fmt.Errorf("unknown theme %q", name)
}
