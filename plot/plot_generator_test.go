package plot

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodePNG(t *testing.T, data []byte) (int, int) {
	t.Helper()
	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	b := img.Bounds()
	return b.Dx(), b.Dy()
}

func TestDrawPercentageBar(t *testing.T) {
	labels := []string{"alpha  82.5%", "beta  64.0%", "gamma  40.0%"}
	values := []float64{82.5, 64.0, 40.0}

	data, err := DrawPercentageBar(labels, values, "Top Models")
	require.NoError(t, err)
	w, h := decodePNG(t, data)
	expectW, expectH := BarChartSize(3)
	assert.Equal(t, expectW, w)
	assert.Equal(t, expectH, h)
}

func TestDrawPercentageBarEmpty(t *testing.T) {
	_, err := DrawPercentageBar(nil, nil, "Top Models")
	assert.ErrorIs(t, err, ErrRenderSkipped)
}

func TestDrawPercentageBarMismatchedLengths(t *testing.T) {
	_, err := DrawPercentageBar([]string{"a"}, []float64{1, 2}, "t")
	assert.ErrorIs(t, err, ErrRenderSkipped)
}

func TestDrawScatter(t *testing.T) {
	groups := []ScatterGroup{
		{Name: "Q1", XValues: []float64{10, 20, 30}, YValues: []float64{1, 2, 3}, Color: QuantileColor(0)},
		{Name: "Q5", XValues: []float64{400, 500}, YValues: []float64{40, 50}, Color: QuantileColor(4)},
	}

	data, err := DrawScatter(groups, "Speeds", "Prompt t/s", "Gen t/s", true, false)
	require.NoError(t, err)
	w, h := decodePNG(t, data)
	expectW, expectH := ScatterSize()
	assert.Equal(t, expectW, w)
	assert.Equal(t, expectH, h)
}

func TestDrawScatterNoPoints(t *testing.T) {
	_, err := DrawScatter([]ScatterGroup{{Name: "Q1"}}, "t", "x", "y", false, false)
	assert.ErrorIs(t, err, ErrRenderSkipped)
}

func TestQuantileColorClamped(t *testing.T) {
	assert.Equal(t, QuantileColor(0), QuantileColor(-3))
	assert.Equal(t, QuantileColor(4), QuantileColor(99))
}
