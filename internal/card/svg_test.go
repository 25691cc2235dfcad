package card

import (
	"strings"
	"testing"
)

func TestFormatCount(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, "0"},
		{44, "44"},
		{999, "999"},
		{1000, "1k"},
		{1234, "1.2k"},
		{1950, "2.0k"},
		{12000, "12k"},
		{284000, "284k"},
	}

	for _, tt := range tests {
		if got := formatCount(tt.n); got != tt.want {
			t.Errorf("formatCount(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestEscape(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"a&b", "a&amp;b"},
		{"<script>", "&lt;script&gt;"},
		{`say "hi"`, "say &quot;hi&quot;"},
	}

	for _, tt := range tests {
		if got := escape(tt.in); got != tt.want {
			t.Errorf("escape(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestWrapSVG(t *testing.T) {
	svg := wrapSVG(400, 272, "<p>hello</p>")

	for _, want := range []string{
		`<svg xmlns="http://www.w3.org/2000/svg" width="400" height="272">`,
		`<foreignObject width="400" height="272">`,
		`<div xmlns="http://www.w3.org/1999/xhtml"><p>hello</p></div>`,
		`</foreignObject></svg>`,
	} {
		if !strings.Contains(svg, want) {
			t.Errorf("wrapSVG output missing %q", want)
		}
	}
}

func TestThemeByName(t *testing.T) {
	for _, name := range []string{"dark", "light"} {
		th, err := ByName(name)
		if err != nil {
			t.Fatalf("ByName(%q) error = %v", name, err)
		}
		if th.Name != name {
			t.Errorf("Name = %q, want %q", th.Name, name)
		}
	}

	if _, err := ByName("solarized"); err == nil {
		t.Error("ByName(solarized) expected error")
	}
}

func TestColorFor(t *testing.T) {
	if got := colorFor("Go", "#123456"); got != "#00ADD8" {
		t.Errorf("colorFor(Go) = %q, want pinned #00ADD8", got)
	}
	if got := colorFor("Zig", "#f7a41d"); got != "#f7a41d" {
		t.Errorf("colorFor(Zig) = %q, want fallback #f7a41d", got)
	}
}
