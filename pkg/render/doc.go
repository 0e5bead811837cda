// Package render turns flattened pedigree graphs into images.
//
// # Overview
//
// Rendering runs in two stages. [ToDOT] writes Graphviz DOT source
// from an [export.Graph], with parents ranked above their children.
// [RenderSVG] rasterizes that source in process via goccy/go-graphviz.
// PDF and PNG come from the SVG through the external rsvg-convert
// tool.
//
// # Usage
//
//	dot := render.ToDOT(g, render.Options{})
//	svg, err := render.RenderSVG(dot)
//	pdf, err := render.ToPDF(svg)
//	png, err := render.ToPNG(svg, 2.0)  // 2x scale
//
// [RenderPDF] and [RenderPNG] bundle the two steps.
//
// # DOT Format
//
// The generated DOT can equally be saved and processed with external
// Graphviz tools or customized before rendering. Layout is top to
// bottom (rankdir=TB): ancestors above, descendants below, the way
// pedigree charts are usually read.
//
// # Dependencies
//
// SVG rendering is self-contained. PDF and PNG conversion requires
// librsvg (rsvg-convert) on the PATH.
//
// [export.Graph]: github.com/sligocki/gedcom/pkg/export
package render
