package readme

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Sora4431/Sora4431/internal/market"
)

// writeAsset creates an empty file under root, making directories as
// needed.
func writeAsset(t *testing.T, root, rel string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("<svg/>"), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestVerify_RenderedDocumentPasses(t *testing.T) {
	root := t.TempDir()
	for _, rel := range []string{
		"output/assets/svg/overview-dark.svg",
		"output/assets/svg/overview-light.svg",
		"output/assets/svg/languages-dark.svg",
		"output/assets/svg/languages-light.svg",
	} {
		writeAsset(t, root, rel)
	}

	doc := Render(Document{
		Login:  "Sora4431",
		SVGDir: "output/assets/svg",
		Rows: []market.Row{
			{Label: "BTC / USD", Price: 65000, Source: "binance", Status: market.StatusLive},
		},
		UpdatedAt: time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC),
	})

	findings := Verify([]byte(doc), root)
	if len(findings) != 0 {
		t.Errorf("Verify() findings = %v, want none", findings)
	}
}

func TestVerify_Findings(t *testing.T) {
	root := t.TempDir()

	t.Run("missing marker", func(t *testing.T) {
		findings := Verify([]byte("# doc without markers\n"), root)
		if !hasFinding(findings, "marker missing") {
			t.Errorf("findings = %v, want marker missing", findings)
		}
	})

	t.Run("duplicated marker", func(t *testing.T) {
		doc := StartMarker + "\n" + StartMarker + "\n" + EndMarker + "\n"
		findings := Verify([]byte(doc), root)
		if !hasFinding(findings, "duplicated") {
			t.Errorf("findings = %v, want duplicated marker", findings)
		}
	})

	t.Run("unbalanced picture", func(t *testing.T) {
		doc := StartMarker + "\n" + EndMarker + "\n\n<picture>\n  <img src=\"https://example.com/x.svg\">\n"
		findings := Verify([]byte(doc), root)
		if !hasFinding(findings, "unbalanced picture") {
			t.Errorf("findings = %v, want unbalanced picture", findings)
		}
	})

	t.Run("unresolved image path", func(t *testing.T) {
		doc := StartMarker + "\n" + EndMarker + "\n\n![chart](output/missing.svg)\n"
		findings := Verify([]byte(doc), root)
		if !hasFinding(findings, "does not resolve") {
			t.Errorf("findings = %v, want unresolved path", findings)
		}
	})

	t.Run("remote urls are not checked", func(t *testing.T) {
		doc := StartMarker + "\n" + EndMarker + "\n\n![badge](https://example.com/badge.svg)\n"
		findings := Verify([]byte(doc), root)
		if len(findings) != 0 {
			t.Errorf("findings = %v, want none for remote image", findings)
		}
	})

	t.Run("query parameters ignored for existence", func(t *testing.T) {
		writeAsset(t, root, "output/chart.svg")
		doc := StartMarker + "\n" + EndMarker + "\n\n![chart](output/chart.svg?v=20240615)\n"
		findings := Verify([]byte(doc), root)
		if len(findings) != 0 {
			t.Errorf("findings = %v, want none", findings)
		}
	})

	t.Run("html srcset attributes checked", func(t *testing.T) {
		doc := StartMarker + "\n" + EndMarker + "\n\n<picture>\n  <source media=\"(prefers-color-scheme: dark)\" srcset=\"output/nope-dark.svg\">\n  <img src=\"output/nope-light.svg\">\n</picture>\n"
		findings := Verify([]byte(doc), root)

		var unresolved int
		for _, f := range findings {
			if strings.Contains(f, "does not resolve") {
				unresolved++
			}
		}
		if unresolved != 2 {
			t.Errorf("findings = %v, want 2 unresolved html refs", findings)
		}
	})
}

func hasFinding(findings []string, substr string) bool {
	for _, f := range findings {
		if strings.Contains(f, substr) {
			return true
		}
	}
	return false
}

func TestRender_Structure(t *testing.T) {
	doc := Render(Document{
		Login:     "Sora4431",
		SVGDir:    "output/assets/svg",
		UpdatedAt: time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC),
	})

	if got := strings.Count(doc, StartMarker); got != 1 {
		t.Errorf("start marker count = %d, want 1", got)
	}
	if got := strings.Count(doc, EndMarker); got != 1 {
		t.Errorf("end marker count = %d, want 1", got)
	}
	if strings.Index(doc, StartMarker) > strings.Index(doc, EndMarker) {
		t.Error("markers out of order")
	}

	for _, want := range []string{
		"streak-stats.demolab.com?user=Sora4431",
		"?v=20240615",
		"monthly-contributions-dark.svg",
		"overview-dark.svg",
		"languages-light.svg",
		"scheduled workflows",
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("document missing %q", want)
		}
	}

	if strings.Count(doc, "<picture>") != strings.Count(doc, "</picture>") {
		t.Error("unbalanced picture blocks in rendered document")
	}
}
