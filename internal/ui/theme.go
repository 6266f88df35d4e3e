package ui

import "image/color"

var (
	colBackground = color.RGBA{255, 255, 255, 255}
	colText       = color.RGBA{0, 0, 0, 255}
	colGridLine   = color.RGBA{180, 180, 180, 255}

	colSelectFill   = color.RGBA{255, 230, 100, 255}
	colSelectBorder = color.RGBA{80, 160, 255, 255}
	colLastBorder   = color.RGBA{255, 60, 60, 255}

	colOverlay      = color.NRGBA{255, 255, 255, 235}
	colButtonBorder = colGridLine
)

const (
	fontSize      = 24
	titleFontSize = 48

	gridLineWidth   = 2
	selectLineWidth = 4
)
