// Package card renders the profile's SVG stat cards.
//
// Each card embeds an XHTML body in a foreignObject so CSS layout
// works inside an <img>-referenced SVG. Cards render once per theme
// and the README selects the right file with a picture element.
package card
