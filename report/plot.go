package report

import (
	"fmt"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/alanwang67/requestgen/workload"
)

const userBins = workload.UserMax + 1

// PlotUsers builds a histogram of user ids with one bin per id, which makes
// the boundary spikes at 0 and 255 visible.
func PlotUsers(users []float64) (*plot.Plot, error) {
	if len(users) == 0 {
		return nil, fmt.Errorf("no user ids to plot")
	}

	p := plot.New()
	p.Title.Text = "User IDs"
	p.X.Label.Text = "User"
	p.Y.Label.Text = "Requests"

	hist, err := plotter.NewHist(plotter.Values(users), userBins)
	if err != nil {
		return nil, fmt.Errorf("failed creating histogram : %w", err)
	}

	p.Add(hist)
	p.X.Min = workload.UserMin
	p.X.Max = workload.UserMax + 1

	return p, nil
}

// PlotUsersAndStore wraps PlotUsers and writes the chart as PNG to out.
func PlotUsersAndStore(users []float64, out io.Writer) error {
	p, err := PlotUsers(users)
	if err != nil {
		return fmt.Errorf("failed to create plot : %w", err)
	}
	writerTo, err := p.WriterTo(8*vg.Inch, 6*vg.Inch, "png")
	if err != nil {
		return fmt.Errorf("failed to render plot : %w", err)
	}
	if _, err := writerTo.WriteTo(out); err != nil {
		return fmt.Errorf("failed to store plot : %w", err)
	}
	return nil
}
