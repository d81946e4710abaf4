package benchmark

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// RenderEfficiency renders the full-dataset bar chart: one bar per query,
// execution time in milliseconds. Failed queries are omitted.
func RenderEfficiency(path string, results []Result) error {
	p := plot.New()
	p.Title.Text = "OLAP Query Efficiency (Full Dataset)"
	p.Y.Label.Text = "Execution Time (ms)"
	p.X.Label.Text = "Query Type"

	var names []string
	var values plotter.Values
	for _, res := range results {
		if res.Err != nil {
			continue
		}
		names = append(names, res.Query)
		values = append(values, float64(res.Duration.Microseconds())/1000)
	}
	if len(values) == 0 {
		return fmt.Errorf("no successful results to chart")
	}

	bars, err := plotter.NewBarChart(values, vg.Points(30))
	if err != nil {
		return fmt.Errorf("build bar chart: %w", err)
	}
	p.Add(bars)
	p.NominalX(names...)

	if err := p.Save(10*vg.Inch, 6*vg.Inch, path); err != nil {
		return fmt.Errorf("save chart %s: %w", path, err)
	}
	return nil
}

// RenderScalability renders the line chart of execution time versus
// subsample size, one line per query. Failed measurements are skipped.
func RenderScalability(path string, report *Report) error {
	p := plot.New()
	p.Title.Text = "Scalability: Dataset Size vs. Query Performance"
	p.X.Label.Text = "Dataset Size (records)"
	p.Y.Label.Text = "Execution Time (ms)"
	p.Add(plotter.NewGrid())

	var series []interface{}
	for _, q := range Catalog() {
		var pts plotter.XYs
		for _, sized := range report.Scaled {
			for _, res := range sized.Results {
				if res.Query != q.Name || res.Err != nil {
					continue
				}
				pts = append(pts, plotter.XY{
					X: float64(sized.Size),
					Y: float64(res.Duration.Microseconds()) / 1000,
				})
			}
		}
		if len(pts) > 0 {
			series = append(series, q.Name, pts)
		}
	}
	if len(series) == 0 {
		return fmt.Errorf("no successful results to chart")
	}

	if err := plotutil.AddLinePoints(p, series...); err != nil {
		return fmt.Errorf("add series: %w", err)
	}

	if err := p.Save(10*vg.Inch, 6*vg.Inch, path); err != nil {
		return fmt.Errorf("save chart %s: %w", path, err)
	}
	return nil
}
