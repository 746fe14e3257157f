// Package main provides the entry point for the svg2pptx CLI.
//
// svg2pptx converts the declarative animations of an SVG document
// (SMIL attributes and CSS @keyframes) into presentation timing XML.
//
// Usage:
//
//	svg2pptx convert input.svg
//	svg2pptx stats input.svg
//
// See --help for all available options.
package main

// main is the entry point for svg2pptx.
func main() {
	Execute()
}
