package qrgen

import (
	"fmt"
	"strings"
)

// renderSVG builds a vector rendering of the module matrix. Every dark
// module contributes one unit cell to a single path element, which
// keeps the output compact regardless of symbol size.
func renderSVG(matrix [][]bool) []byte {
	modules := len(matrix)
	width := modules * boxSize

	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>`)
	fmt.Fprintf(&b,
		`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d" shape-rendering="crispEdges">`,
		width, width, modules, modules)
	fmt.Fprintf(&b, `<rect width="%d" height="%d" fill="#ffffff"/>`, modules, modules)
	b.WriteString(`<path fill="#000000" d="`)
	for y, row := range matrix {
		for x, dark := range row {
			if dark {
				fmt.Fprintf(&b, "M%d,%dh1v1h-1z", x, y)
			}
		}
	}
	b.WriteString(`"/></svg>`)
	return []byte(b.String())
}
