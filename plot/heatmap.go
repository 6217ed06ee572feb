package plot

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/modelbench/benchgraph/stats"
)

// DrawHeatmap renders a correctness matrix as an annotated heatmap PNG.
// Cells hold 0-100 percentages; NaN cells render gray.
func DrawHeatmap(m *stats.Matrix, title string) ([]byte, error) {
	if m == nil || len(m.Rows) == 0 || len(m.Cols) == 0 {
		return nil, fmt.Errorf("%w: empty heatmap matrix", ErrRenderSkipped)
	}

	longest := 0
	for _, r := range m.Rows {
		if len(r) > longest {
			longest = len(r)
		}
	}
	width, height, gutter := HeatmapSize(len(m.Rows), len(m.Cols), longest)

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	drawText(img, title, 8, 18, color.Black)

	// column headers
	for j, col := range m.Cols {
		x := gutter + j*heatCellWidth + 4
		drawText(img, truncate(col, heatCellWidth/7-1), x, heatHeaderH-10, color.Black)
	}

	for i, row := range m.Rows {
		y := heatHeaderH + i*heatCellHeight
		drawText(img, truncate(row, gutter/7-2), 8, y+heatCellHeight-12, color.Black)
		for j := range m.Cols {
			v := m.Cells[i][j]
			rect := image.Rect(gutter+j*heatCellWidth, y, gutter+(j+1)*heatCellWidth-1, y+heatCellHeight-1)
			draw.Draw(img, rect, image.NewUniform(cellColor(v)), image.Point{}, draw.Src)
			if !math.IsNaN(v) {
				label := fmt.Sprintf("%.1f", v)
				tx := rect.Min.X + (heatCellWidth-len(label)*7)/2
				drawText(img, label, tx, y+heatCellHeight-12, annotationColor(v))
			}
		}
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := png.Encode(buffer, img); err != nil {
		return nil, fmt.Errorf("error rendering chart: %v", err)
	}
	return buffer.Bytes(), nil
}

// cellColor maps 0-100 onto a diverging red-white-blue palette centered at 50.
func cellColor(v float64) color.Color {
	if math.IsNaN(v) {
		return color.RGBA{R: 225, G: 225, B: 225, A: 255}
	}
	if v < 0 {
		v = 0
	}
	if v > 100 {
		v = 100
	}
	low := color.RGBA{R: 178, G: 24, B: 43, A: 255}
	high := color.RGBA{R: 33, G: 102, B: 172, A: 255}
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	if v < 50 {
		return lerpColor(low, white, v/50)
	}
	return lerpColor(white, high, (v-50)/50)
}

// annotationColor keeps cell labels readable against saturated ends.
func annotationColor(v float64) color.Color {
	if v <= 15 || v >= 85 {
		return color.White
	}
	return color.Black
}

func lerpColor(a, b color.RGBA, t float64) color.Color {
	lerp := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t)
	}
	return color.RGBA{R: lerp(a.R, b.R), G: lerp(a.G, b.G), B: lerp(a.B, b.B), A: 255}
}

func drawText(img *image.RGBA, text string, x, y int, col color.Color) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col),
		Face: basicfont.Face7x13,
		Dot:  fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)},
	}
	d.DrawString(text)
}

func truncate(s string, max int) string {
	if max < 1 {
		max = 1
	}
	if len(s) <= max {
		return s
	}
	if max <= 2 {
		return s[:max]
	}
	return s[:max-2] + ".."
}
