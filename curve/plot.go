package curve

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/wcharczuk/go-chart/v2"
)

// Plot renders the per-size subset counts of est as a PNG bar chart.
func Plot(w io.Writer, est Estimate) error {
	if len(est.Sizes) == 0 {
		return errors.New("curve: nothing to plot, fewer than three features")
	}

	bars := make([]chart.Value, 0, len(est.Sizes))
	var tallest float64
	for _, sc := range est.Sizes {
		v := float64(sc.Combinations)
		if v > tallest {
			tallest = v
		}
		bars = append(bars, chart.Value{Value: v, Label: strconv.Itoa(sc.Size)})
	}

	graph := chart.BarChart{
		Title:    fmt.Sprintf("Sample subsets by size (%d features, %d total)", est.Features, est.Total),
		Height:   512,
		Width:    64 + 40*len(bars),
		BarWidth: 30,
		Background: chart.Style{
			Padding: chart.Box{Top: 48},
		},
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: tallest * 1.05},
		},
		Bars: bars,
	}

	return graph.Render(chart.PNG, w)
}
