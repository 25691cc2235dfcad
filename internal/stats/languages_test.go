package stats

import (
	"math"
	"testing"
)

func TestLanguageAccumulator(t *testing.T) {
	t.Run("sums sizes and keeps first color", func(t *testing.T) {
		acc := newLanguageAccumulator()
		acc.add("Go", "#00ADD8", 1000)
		acc.add("Go", "#ffffff", 500)
		acc.add("Python", "#3572A5", 700)

		totals := acc.totals()
		if len(totals) != 2 {
			t.Fatalf("len(totals) = %d, want 2", len(totals))
		}
		if totals[0].Name != "Go" || totals[0].Size != 1500 {
			t.Errorf("totals[0] = %+v, want Go size 1500", totals[0])
		}
		if totals[0].Color != "#00ADD8" {
			t.Errorf("Color = %q, want first seen #00ADD8", totals[0].Color)
		}
	})

	t.Run("empty color falls back to neutral", func(t *testing.T) {
		acc := newLanguageAccumulator()
		acc.add("Brainfuck", "", 10)

		totals := acc.totals()
		if totals[0].Color != neutralColor {
			t.Errorf("Color = %q, want %q", totals[0].Color, neutralColor)
		}
	})

	t.Run("orders by size then name", func(t *testing.T) {
		acc := newLanguageAccumulator()
		acc.add("Ruby", "#701516", 300)
		acc.add("Go", "#00ADD8", 900)
		acc.add("CSS", "#563d7c", 300)

		totals := acc.totals()
		got := []string{totals[0].Name, totals[1].Name, totals[2].Name}
		want := []string{"Go", "CSS", "Ruby"}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("totals[%d].Name = %q, want %q", i, got[i], want[i])
			}
		}
	})
}

func TestTopShares(t *testing.T) {
	langs := []LanguageTotal{
		{Name: "Go", Color: "#00ADD8", Size: 600},
		{Name: "Python", Color: "#3572A5", Size: 300},
		{Name: "Shell", Color: "#89e051", Size: 100},
	}

	t.Run("percent over selected set", func(t *testing.T) {
		shares := TopShares(langs, 2)

		if len(shares) != 2 {
			t.Fatalf("len(shares) = %d, want 2", len(shares))
		}
		// 600 and 300 of a 900 total: the dropped 100 does not dilute.
		if math.Abs(shares[0].Percent-66.666) > 0.01 {
			t.Errorf("shares[0].Percent = %v, want ~66.67", shares[0].Percent)
		}
		if math.Abs(shares[1].Percent-33.333) > 0.01 {
			t.Errorf("shares[1].Percent = %v, want ~33.33", shares[1].Percent)
		}
	})

	t.Run("percentages sum to 100", func(t *testing.T) {
		shares := TopShares(langs, 3)

		var sum float64
		for _, s := range shares {
			sum += s.Percent
		}
		if math.Abs(sum-100) > 0.001 {
			t.Errorf("sum = %v, want 100", sum)
		}
	})

	t.Run("n larger than list", func(t *testing.T) {
		if got := TopShares(langs, 10); len(got) != 3 {
			t.Errorf("len = %d, want 3", len(got))
		}
	})

	t.Run("empty input", func(t *testing.T) {
		if got := TopShares(nil, 7); got != nil {
			t.Errorf("TopShares(nil) = %v, want nil", got)
		}
	})

	t.Run("zero sizes", func(t *testing.T) {
		zeros := []LanguageTotal{{Name: "Go", Size: 0}}
		if got := TopShares(zeros, 7); got != nil {
			t.Errorf("TopShares(zero sizes) = %v, want nil", got)
		}
	})
}
