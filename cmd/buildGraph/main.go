package main

import (
	"flag"
	"fmt"
	"image/color"
	"math"
	"os"
	"sort"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/i5heu/GoPoolQueue/internal/report"
)

// statsPoints implements XYer and YErrorer for batchStats, so we can plot lines + error bars.
type statsPoints []batchStats

func (s statsPoints) Len() int                { return len(s) }
func (s statsPoints) XY(i int) (x, y float64) { return s[i].x, s[i].median }
func (s statsPoints) YError(i int) (low, high float64) {
	low = s[i].median - s[i].min
	high = s[i].max - s[i].median
	return low, high
}

// categoryTicks implements a categorical X-axis: 0,1,2,... => labels for batch sizes.
type categoryTicks struct {
	positions []float64
	labels    []string
}

func (ct categoryTicks) Ticks(min, max float64) []plot.Tick {
	var ticks []plot.Tick
	for i, pos := range ct.positions {
		if pos >= min && pos <= max {
			ticks = append(ticks, plot.Tick{Value: pos, Label: ct.labels[i]})
		}
	}
	return ticks
}

// samples maps capacity -> implementation -> batch size -> ns/op values.
type samples map[uint64]map[string]map[float64][]float64

func groupSamples(sessions []report.FullReport) samples {
	out := make(samples)
	for _, session := range sessions {
		for _, b := range session.Benchmarks {
			if b.NsPerOp <= 0 {
				continue
			}
			implMap, ok := out[b.Capacity]
			if !ok {
				implMap = make(map[string]map[float64][]float64)
				out[b.Capacity] = implMap
			}
			if _, ok := implMap[b.Implementation]; !ok {
				implMap[b.Implementation] = make(map[float64][]float64)
			}
			x := float64(b.BatchSize)
			implMap[b.Implementation][x] = append(implMap[b.Implementation][x], b.NsPerOp)
		}
	}
	return out
}

func main() {
	jsonFile := flag.String("jsonfile", "test-results.json", "Path to JSON file containing test sessions")
	outputPrefix := flag.String("out", "benchmark_graph", "Output graph image filename prefix")
	flag.Parse()

	sessions, err := report.Load(*jsonFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading results: %v\n", err)
		os.Exit(1)
	}
	if len(sessions) == 0 {
		fmt.Fprintf(os.Stderr, "No sessions found in %s\n", *jsonFile)
		os.Exit(1)
	}

	for capacity, implMap := range groupSamples(sessions) {
		p := newDarkPlot(fmt.Sprintf("Benchmark (5%%-avg-min / Median / 5%%-avg-max) vs. Batch Size, capacity %d", capacity))
		addSeries(p, implMap)

		filename := fmt.Sprintf("%s_cap%d.png", *outputPrefix, capacity)
		if err := p.Save(12*vg.Inch, 9*vg.Inch, filename); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving plot for capacity %d: %v\n", capacity, err)
			continue
		}
		fmt.Printf("Graph for capacity %d saved to %s\n", capacity, filename)
	}
}

func newDarkPlot(title string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Batch size (elements enqueued per drain)"
	p.Y.Label.Text = "Time per op (ns) [log scale]"
	p.Y.Scale = plot.LogScale{}

	// Dark theme.
	p.BackgroundColor = color.RGBA{R: 30, G: 30, B: 30, A: 255}
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	p.Title.TextStyle.Color = white
	p.X.Label.TextStyle.Color = white
	p.Y.Label.TextStyle.Color = white
	p.X.Color = white
	p.Y.Color = white
	p.X.Tick.Label.Color = white
	p.Y.Tick.Label.Color = white
	p.Legend.Top = true
	p.Legend.Left = true
	p.Legend.TextStyle.Color = white

	p.Y.Tick.Marker = plot.TickerFunc(func(min, max float64) []plot.Tick {
		// About 9 inches at 72 dpi with a label every 30 px.
		const pxHeight = 648.0
		const pxSpacing = 30.0
		nTicks := pxHeight / pxSpacing

		if min <= 0 {
			min = 1e-9
		}
		start := math.Log10(min)
		end := math.Log10(max)
		step := (end - start) / nTicks

		var ticks []plot.Tick
		for i := 0.0; i <= nTicks; i++ {
			y := math.Pow(10, start+i*step)
			ticks = append(ticks, plot.Tick{Value: y, Label: formatNs(y)})
		}
		return ticks
	})

	p.Add(plotter.NewGrid())
	return p
}

func addSeries(p *plot.Plot, implMap map[string]map[float64][]float64) {
	// Union of batch sizes for this capacity.
	batchSet := make(map[float64]struct{})
	for _, implData := range implMap {
		for batch := range implData {
			batchSet[batch] = struct{}{}
		}
	}
	var batchValues []float64
	for val := range batchSet {
		batchValues = append(batchValues, val)
	}
	sort.Float64s(batchValues)

	// Map batch size => category index.
	mapping := make(map[float64]float64)
	var positions []float64
	var labels []string
	for i, val := range batchValues {
		mapping[val] = float64(i)
		positions = append(positions, float64(i))
		labels = append(labels, strconv.FormatFloat(val, 'f', -1, 64))
	}
	p.X.Tick.Marker = categoryTicks{positions: positions, labels: labels}

	// Sort implementations alphabetically for consistent legend ordering.
	var implNames []string
	for implName := range implMap {
		implNames = append(implNames, implName)
	}
	sort.Strings(implNames)

	colors := plotutil.SoftColors
	shapes := []draw.GlyphDrawer{
		draw.CircleGlyph{},
		draw.SquareGlyph{},
		draw.TriangleGlyph{},
		draw.CrossGlyph{},
		draw.PlusGlyph{},
	}

	// Slight offset so each implementation is visually separated.
	offsetRange := 0.4
	offsetStep := offsetRange / float64(len(implNames))
	startOffset := -offsetRange/2 + offsetStep/2

	for i, impl := range implNames {
		stats := buildStats(implMap[impl])
		if len(stats) == 0 {
			continue
		}
		for j := range stats {
			stats[j].x = mapping[stats[j].batch] + startOffset + float64(i)*offsetStep
		}
		sort.Slice(stats, func(a, b int) bool {
			return stats[a].x < stats[b].x
		})
		sp := statsPoints(stats)

		line, err := plotter.NewLine(sp)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating line: %v\n", err)
			continue
		}
		line.Color = colors[i%len(colors)]

		points, err := plotter.NewScatter(sp)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating scatter: %v\n", err)
			continue
		}
		points.GlyphStyle.Radius = vg.Points(5)
		points.Color = colors[i%len(colors)]
		points.Shape = shapes[i%len(shapes)]

		yErrBars, err := plotter.NewYErrorBars(sp)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating error bars: %v\n", err)
			continue
		}
		yErrBars.Color = colors[i%len(colors)]

		p.Add(line, points, yErrBars)
		p.Legend.Add(impl, line, points)
	}
}
