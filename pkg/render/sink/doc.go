// Package sink serializes icon scenes to their final file formats.
//
// Both sinks consume the same [icon.Scene], so a variant saved as SVG and PNG
// is guaranteed to contain identical geometry. RenderSVG writes the markup
// directly; RenderPNG rasterizes in-process with fogleman/gg, so no external
// converter is required.
//
// [icon.Scene]: github.com/tkoehlen/axisgen/pkg/icon
package sink
