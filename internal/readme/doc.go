// Package readme assembles and maintains the profile document.
//
// The README is mostly static markup; the only part machines rewrite
// is the market table between two HTML-comment markers. Splice
// replaces exactly that region and leaves every other byte alone, so
// manual edits outside the markers survive automation runs. Verify
// checks the structural properties CI gates on: parseable markdown,
// one ordered marker pair, balanced picture blocks, and resolvable
// local image paths.
package readme
