package qrgen

import "image/color"

var (
	white = color.NRGBA{255, 255, 255, 255}
	black = color.NRGBA{0, 0, 0, 255}

	matrixGreen   = color.NRGBA{0, 255, 65, 255}
	cyberpunkBase = color.NRGBA{10, 10, 35, 255}
	cyberpunkPink = color.NRGBA{255, 0, 255, 255}
	cyberpunkCyan = color.NRGBA{0, 255, 255, 255}
	terminalGray  = color.NRGBA{30, 30, 30, 255}
	terminalGreen = color.NRGBA{0, 255, 0, 255}
)

// styleFor maps a theme to its rendering style. Unknown themes render
// as plain black-on-white squares.
func styleFor(theme Theme) style {
	switch theme {
	case ThemeMatrix:
		return style{shape: shapeRounded, background: black, fill: solid(matrixGreen)}
	case ThemeCyberpunk:
		return style{shape: shapeCircle, background: cyberpunkBase, fill: radial(cyberpunkPink, cyberpunkCyan)}
	case ThemeTerminal:
		return style{shape: shapeGapped, background: terminalGray, fill: solid(terminalGreen)}
	default:
		return plainStyle()
	}
}

func plainStyle() style {
	return style{shape: shapeSquare, background: white, fill: solid(black)}
}
