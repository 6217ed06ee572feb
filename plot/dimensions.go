package plot

// Chart dimensions scale with item count and clamp to sane bounds so a
// 5-model run and a 100-model run both stay readable.
const (
	barBaseWidth  = 1200
	barPerItem    = 52
	barMaxWidth   = 2500
	barHeight     = 700
	barPaddingX   = 200

	scatterWidth  = 1800
	scatterHeight = 1500

	heatCellWidth  = 90
	heatCellHeight = 34
	heatHeaderH    = 80
	heatMaxLabelW  = 420
	heatMinWidth   = 800
	heatMinHeight  = 400
)

// BarChartSize returns the pixel dimensions for a bar chart with n bars.
func BarChartSize(n int) (width, height int) {
	width = barPaddingX + n*barPerItem
	if width < barBaseWidth {
		width = barBaseWidth
	}
	if width > barMaxWidth {
		width = barMaxWidth
	}
	return width, barHeight
}

// ScatterSize returns the fixed scatter plot dimensions.
func ScatterSize() (width, height int) {
	return scatterWidth, scatterHeight
}

// HeatmapSize returns pixel dimensions for a rows x cols heatmap plus the
// label gutter width for the given longest row label.
func HeatmapSize(rows, cols, longestLabel int) (width, height, gutter int) {
	gutter = longestLabel*7 + 24
	if gutter > heatMaxLabelW {
		gutter = heatMaxLabelW
	}
	width = gutter + cols*heatCellWidth + 40
	if width < heatMinWidth {
		width = heatMinWidth
	}
	height = heatHeaderH + rows*heatCellHeight + 24
	if height < heatMinHeight {
		height = heatMinHeight
	}
	return width, height, gutter
}
