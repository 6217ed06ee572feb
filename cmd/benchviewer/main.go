package main

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	png "image/png"
	"log"
	"strings"

	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/modelbench/benchgraph/config"
	"github.com/modelbench/benchgraph/dataset"
	"github.com/modelbench/benchgraph/plot"
	"github.com/modelbench/benchgraph/stats"
)

const allCategories = "All"

var chartTypes = []string{
	"Correctness Bar",
	"Speed Scatter",
	"Prompt Speed vs Quality",
	"Gen Speed vs Quality",
	"Category Heatmap",
	"Category Bar",
}

type uiState struct {
	app    fyne.App
	window fyne.Window

	filePath string
	ds       *dataset.Dataset // kept across failed reloads

	chartType  string
	category   string
	minSamples int
	selected   map[string]bool // model id -> shown

	chartCanvas     *canvas.Image
	fileLabel       *widget.Label
	categorySelect  *widget.Select
	modelChecks     *widget.CheckGroup
	minSamplesLabel *widget.Label
}

func main() {
	cfg := config.GetConfig()

	a := app.NewWithID("com.modelbench.benchviewer")
	w := a.NewWindow("Benchmark Viewer")
	w.Resize(fyne.NewSize(1280, 860))

	state := &uiState{
		app:        a,
		window:     w,
		filePath:   cfg.DBPath,
		chartType:  chartTypes[0],
		minSamples: cfg.MinSamples,
		selected:   map[string]bool{},
	}

	state.fileLabel = widget.NewLabel(truncatePath(state.filePath, 50))
	state.chartCanvas = canvas.NewImageFromImage(blank(900, 600))
	state.chartCanvas.FillMode = canvas.ImageFillContain
	state.chartCanvas.SetMinSize(fyne.NewSize(900, 600))

	chartSelect := widget.NewSelect(chartTypes, func(v string) {
		state.chartType = v
		redraw(state)
	})
	chartSelect.Selected = state.chartType

	state.categorySelect = widget.NewSelect([]string{allCategories}, func(v string) {
		if v == allCategories {
			state.category = ""
		} else {
			state.category = v
		}
		redraw(state)
	})
	state.categorySelect.PlaceHolder = allCategories

	// min samples control: - [label] +
	state.minSamplesLabel = widget.NewLabel(fmt.Sprintf("%d", state.minSamples))
	decS := widget.NewButton("-", func() {
		if state.minSamples > 1 {
			state.minSamples--
			state.minSamplesLabel.SetText(fmt.Sprintf("%d", state.minSamples))
			redraw(state)
		}
	})
	incS := widget.NewButton("+", func() {
		state.minSamples++
		state.minSamplesLabel.SetText(fmt.Sprintf("%d", state.minSamples))
		redraw(state)
	})

	state.modelChecks = widget.NewCheckGroup(nil, func(checked []string) {
		for id := range state.selected {
			state.selected[id] = false
		}
		for _, id := range checked {
			state.selected[id] = true
		}
		redraw(state)
	})
	modelScroll := container.NewVScroll(state.modelChecks)
	modelScroll.SetMinSize(fyne.NewSize(260, 600))

	top := container.NewHBox(
		widget.NewButton("Open…", func() { openFileDialog(state) }),
		widget.NewButton("Reload", func() { loadAll(state) }),
		widget.NewLabel("Chart:"), chartSelect,
		widget.NewLabel("Category:"), state.categorySelect,
		widget.NewLabel("Min samples:"), decS, state.minSamplesLabel, incS,
		widget.NewLabel("File:"), state.fileLabel,
	)
	left := container.NewBorder(widget.NewLabel("Models"), nil, nil, nil, modelScroll)
	content := container.NewBorder(top, nil, left, nil, container.NewVScroll(state.chartCanvas))
	w.SetContent(content)

	buildMenus(state)
	loadAll(state)

	w.ShowAndRun()
}

func buildMenus(state *uiState) {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Open…", func() { openFileDialog(state) }),
		fyne.NewMenuItem("Reload", func() { loadAll(state) }),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Export Chart…", func() { exportChartPNG(state) }),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() { state.window.Close() }),
	)
	state.window.SetMainMenu(fyne.NewMainMenu(fileMenu))
}

func openFileDialog(state *uiState) {
	d := dialog.NewFileOpen(func(rc fyne.URIReadCloser, err error) {
		if err != nil || rc == nil {
			return
		}
		defer rc.Close()
		state.filePath = rc.URI().Path()
		state.fileLabel.SetText(truncatePath(state.filePath, 50))
		loadAll(state)
	}, state.window)
	d.Show()
}

// loadAll replaces the dataset snapshot wholesale; a failed load keeps the
// previous one in place.
func loadAll(state *uiState) {
	ds, err := dataset.Load(state.filePath)
	if err != nil {
		log.Println("load failed:", err)
		dialog.ShowError(err, state.window)
		return
	}
	state.ds = ds

	// category options
	opts := append([]string{allCategories}, stats.Categories(ds.Runs)...)
	state.categorySelect.Options = opts
	if state.category != "" && !containsString(opts, state.category) {
		state.category = ""
	}
	if state.category == "" {
		state.categorySelect.Selected = allCategories
	}
	state.categorySelect.Refresh()

	// model multi-select: everything visible after a fresh load
	ids := make([]string, 0, len(ds.ModelStats))
	for _, m := range ds.ModelStats {
		ids = append(ids, m.ModelID)
	}
	state.selected = map[string]bool{}
	for _, id := range ids {
		state.selected[id] = true
	}
	state.modelChecks.Options = ids
	state.modelChecks.SetSelected(ids)
	state.modelChecks.Refresh()

	redraw(state)
}

func redraw(state *uiState) {
	img := renderChart(state)
	state.chartCanvas.Image = img
	b := img.Bounds()
	w := float32(b.Dx())
	h := float32(b.Dy())
	if w > 900 {
		h = h * 900 / w
		w = 900
	}
	state.chartCanvas.SetMinSize(fyne.NewSize(w, h))
	state.chartCanvas.Refresh()
}

func renderChart(state *uiState) image.Image {
	if state.ds == nil {
		return messageImage("No dataset loaded. Use File > Open…")
	}
	cfg := config.GetConfig()
	options := plot.Options{
		TopNOverall:     cfg.TopNOverall,
		TopNPerCategory: cfg.TopNPerCategory,
		MinSamples:      state.minSamples,
		QuantileBuckets: cfg.QuantileBuckets,
		LogScaleRatio:   cfg.LogScaleRatio,
	}
	models := filteredModels(state)
	runs := filteredRuns(state)

	var data []byte
	var err error
	switch state.chartType {
	case "Correctness Bar":
		data, err = plot.OverallCorrectnessBar(models, options)
	case "Speed Scatter":
		data, err = plot.SpeedScatter(models, options)
	case "Prompt Speed vs Quality":
		data, err = plot.QualityScatter(models, plot.PromptEvalSpeed, options)
	case "Gen Speed vs Quality":
		data, err = plot.QualityScatter(models, plot.TokenGenSpeed, options)
	case "Category Heatmap":
		data, err = plot.CategoryHeatmap(models, runs, options)
	case "Category Bar":
		if state.category == "" {
			return messageImage("Pick a category for the category bar chart.")
		}
		data, err = plot.CategoryBar(runs, state.category, options)
	default:
		return messageImage("Unknown chart type.")
	}
	if err != nil {
		log.Println("chart skipped:", err)
		return messageImage(err.Error())
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		log.Println("chart decode failed:", err)
		return messageImage("chart decode failed")
	}
	return img
}

func filteredModels(state *uiState) []dataset.ModelStat {
	out := make([]dataset.ModelStat, 0, len(state.ds.ModelStats))
	for _, m := range state.ds.ModelStats {
		if state.selected[m.ModelID] {
			out = append(out, m)
		}
	}
	return out
}

func filteredRuns(state *uiState) []dataset.BenchmarkRun {
	out := make([]dataset.BenchmarkRun, 0, len(state.ds.Runs))
	for _, r := range state.ds.Runs {
		if state.selected[r.ModelID] {
			out = append(out, r)
		}
	}
	return out
}

func exportChartPNG(state *uiState) {
	if state.chartCanvas == nil || state.chartCanvas.Image == nil {
		dialog.ShowInformation("Export", "No chart to export.", state.window)
		return
	}
	fs := dialog.NewFileSave(func(wc fyne.URIWriteCloser, err error) {
		if err != nil || wc == nil {
			return
		}
		defer wc.Close()
		_ = png.Encode(wc, state.chartCanvas.Image)
	}, state.window)
	fs.SetFileName(stats.SanitizeName(state.chartType) + ".png")
	fs.Show()
}

func blank(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{R: 245, G: 245, B: 245, A: 255})
		}
	}
	return img
}

// messageImage renders a diagnostic line into an otherwise blank canvas so
// skipped charts stay visible instead of freezing the previous image.
func messageImage(text string) image.Image {
	img := blank(900, 600).(*image.RGBA)
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.RGBA{R: 60, G: 60, B: 60, A: 255}),
		Face: basicfont.Face7x13,
		Dot:  fixed.Point26_6{X: fixed.I(24), Y: fixed.I(40)},
	}
	d.DrawString(text)
	return img
}

func truncatePath(p string, n int) string {
	if len(p) <= n {
		return p
	}
	return "…" + p[len(p)-n:]
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if strings.EqualFold(v, s) {
			return true
		}
	}
	return false
}
