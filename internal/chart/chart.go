// Package chart renders diagnostic line charts of finished lookup
// tables as a single HTML page, one chart per table, for visual
// verification before the arrays are flashed.
package chart

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	lutgen "github.com/tphakala/go-dac-lutgen"
)

const (
	chartWidth  = "1100px"
	chartHeight = "320px"
	pageTitle   = "DAC Lookup Tables"
)

// Render writes one line chart per table to w as a standalone HTML
// page.
func Render(w io.Writer, tables []*lutgen.Table, resolution int) error {
	page := components.NewPage()
	page.PageTitle = pageTitle

	for _, table := range tables {
		page.AddCharts(lineChart(table, resolution))
	}

	return page.Render(w)
}

// lineChart builds the chart for a single table.
func lineChart(table *lutgen.Table, resolution int) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Width:  chartWidth,
			Height: chartHeight,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    table.Name,
			Subtitle: subtitle(table, resolution),
		}),
	)

	xs := make([]int, len(table.Data))
	values := make([]opts.LineData, len(table.Data))
	for i, v := range table.Data {
		xs[i] = i
		values[i] = opts.LineData{Value: v}
	}

	line.SetXAxis(xs).AddSeries(table.Name, values)
	return line
}

// subtitle summarizes the table's provenance and value range.
func subtitle(table *lutgen.Table, resolution int) string {
	switch {
	case table.Fallback:
		return fmt.Sprintf("decode failed, placeholder sine (0-%d)", resolution)
	case table.Audio:
		return fmt.Sprintf("source rate %d Hz, DAC range 0-%d", table.SampleRate, resolution)
	default:
		return fmt.Sprintf("single-cycle waveform, DAC range 0-%d", resolution)
	}
}
