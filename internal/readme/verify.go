package readme

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Verify checks the structural properties the profile depends on:
// exactly one ordered marker pair, balanced picture blocks, and every
// relative image path resolving to a file under root. Remote URLs are
// not fetched. The returned findings are human-readable; an empty
// slice means the document passes.
func Verify(src []byte, root string) []string {
	var findings []string

	doc := string(src)

	if _, err := findRegion(doc); err != nil {
		findings = append(findings, err.Error())
	}

	opens := strings.Count(doc, "<picture>")
	closes := strings.Count(doc, "</picture>")
	if opens != closes {
		findings = append(findings, fmt.Sprintf("unbalanced picture blocks: %d open, %d close", opens, closes))
	}

	for _, ref := range imageRefs(src) {
		if isRemote(ref) {
			continue
		}
		clean := ref
		if i := strings.IndexAny(clean, "?#"); i >= 0 {
			clean = clean[:i]
		}
		if _, err := os.Stat(filepath.Join(root, filepath.FromSlash(clean))); err != nil {
			findings = append(findings, fmt.Sprintf("image path %s does not resolve under %s", ref, root))
		}
	}

	return findings
}

// srcAttrRe pulls src/srcset values out of embedded HTML. Markdown
// treats raw HTML as opaque text, so the AST cannot do this part.
var srcAttrRe = regexp.MustCompile(`(?:src|srcset)="([^"]+)"`)

// imageRefs collects image destinations from markdown image nodes and
// from src/srcset attributes inside embedded HTML.
func imageRefs(src []byte) []string {
	md := goldmark.New()
	docNode := md.Parser().Parse(text.NewReader(src))

	var refs []string

	ast.Walk(docNode, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Image:
			refs = append(refs, string(node.Destination))
		case *ast.HTMLBlock:
			refs = append(refs, htmlRefs(htmlBlockText(node, src))...)
		case *ast.RawHTML:
			refs = append(refs, htmlRefs(segmentsText(node.Segments, src))...)
		}
		return ast.WalkContinue, nil
	})

	return refs
}

func htmlBlockText(n *ast.HTMLBlock, src []byte) string {
	var b strings.Builder
	for i := 0; i < n.Lines().Len(); i++ {
		line := n.Lines().At(i)
		b.Write(line.Value(src))
	}
	if n.HasClosure() {
		b.Write(n.ClosureLine.Value(src))
	}
	return b.String()
}

func segmentsText(segs *text.Segments, src []byte) string {
	var b strings.Builder
	for i := 0; i < segs.Len(); i++ {
		seg := segs.At(i)
		b.Write(seg.Value(src))
	}
	return b.String()
}

func htmlRefs(html string) []string {
	var refs []string
	for _, m := range srcAttrRe.FindAllStringSubmatch(html, -1) {
		refs = append(refs, m[1])
	}
	return refs
}

func isRemote(ref string) bool {
	return strings.HasPrefix(ref, "http://") ||
		strings.HasPrefix(ref, "https://") ||
		strings.HasPrefix(ref, "//")
}
