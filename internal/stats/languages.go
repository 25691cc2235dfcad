package stats

import "sort"

// neutralColor substitutes for languages GitHub returns without a color.
const neutralColor = "#8b949e"

// LanguageTotal is the accumulated byte count for one language across
// every contributed repository.
type LanguageTotal struct {
	Name  string
	Color string
	Size  int64
}

// Share is a language's slice of the rendered top-N bar.
type Share struct {
	Name    string
	Color   string
	Size    int64
	Percent float64
}

// languageAccumulator sums language sizes across repositories,
// skipping forks. The first color seen for a name wins.
type languageAccumulator struct {
	sizes  map[string]int64
	colors map[string]string
}

func newLanguageAccumulator() *languageAccumulator {
	return &languageAccumulator{
		sizes:  make(map[string]int64),
		colors: make(map[string]string),
	}
}

func (a *languageAccumulator) add(name, color string, size int64) {
	if _, seen := a.sizes[name]; !seen {
		if color == "" {
			color = neutralColor
		}
		a.colors[name] = color
	}
	a.sizes[name] += size
}

// totals returns the accumulated languages ordered by descending size,
// name ascending on ties.
func (a *languageAccumulator) totals() []LanguageTotal {
	out := make([]LanguageTotal, 0, len(a.sizes))
	for name, size := range a.sizes {
		out = append(out, LanguageTotal{Name: name, Color: a.colors[name], Size: size})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Size != out[j].Size {
			return out[i].Size > out[j].Size
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// TopShares selects the n largest languages and computes each one's
// percentage of that selection. Percentages are relative to the
// selected set, not the full total, so the bar always fills.
func TopShares(langs []LanguageTotal, n int) []Share {
	if n > len(langs) {
		n = len(langs)
	}
	if n <= 0 {
		return nil
	}

	top := langs[:n]

	var total int64
	for _, l := range top {
		total += l.Size
	}
	if total == 0 {
		return nil
	}

	shares := make([]Share, 0, n)
	for _, l := range top {
		shares = append(shares, Share{
			Name:    l.Name,
			Color:   l.Color,
			Size:    l.Size,
			Percent: float64(l.Size) / float64(total) * 100,
		})
	}
	return shares
}
