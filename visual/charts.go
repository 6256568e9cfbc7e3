package visual

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

const (
	chartWidth  = 900
	chartHeight = 500
)

// chartOpts are the options every chart shares: size, assets and title
func chartOpts(title, assetsHost string) []charts.GlobalOpts {
	return []charts.GlobalOpts{
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle:  title,
			Width:      fmt.Sprintf("%dpx", chartWidth),
			Height:     fmt.Sprintf("%dpx", chartHeight),
			AssetsHost: assetsHost,
		}),
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true}),
	}
}

func pieChart(host string, slices []Slice) *charts.Pie {
	pie := charts.NewPie()
	pie.SetGlobalOptions(append(chartOpts("Video Distribution by Category", host),
		charts.WithLegendOpts(opts.Legend{Show: true}),
	)...)

	data := make([]opts.PieData, len(slices))
	for i, s := range slices {
		data[i] = opts.PieData{Name: s.Label, Value: s.Value}
	}
	pie.AddSeries("Categories", data).SetSeriesOptions(
		charts.WithLabelOpts(opts.Label{Show: true, Formatter: "{b}: {d}%"}),
	)
	return pie
}

func histogramChart(host string, h Histogram) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(append(chartOpts(h.Title, host),
		charts.WithXAxisOpts(opts.XAxis{AxisLabel: &opts.AxisLabel{Show: true, Rotate: 45}}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Count", AxisLabel: &opts.AxisLabel{Show: true}}),
	)...)

	labels := make([]string, len(h.Bins))
	data := make([]opts.BarData, len(h.Bins))
	for i, b := range h.Bins {
		labels[i] = fmt.Sprintf("%.0f-%.0f", b.Lo, b.Hi)
		data[i] = opts.BarData{Value: b.Count}
	}
	bar.SetXAxis(labels).AddSeries("Count", data,
		charts.WithItemStyleOpts(opts.ItemStyle{Color: h.Color}),
	)
	return bar
}

func lineChart(host string, points []LinePoint) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(append(chartOpts("Average Trending Duration per Category", host),
		charts.WithXAxisOpts(opts.XAxis{Name: "Category ID", AxisLabel: &opts.AxisLabel{Show: true}}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Average Duration (Days)", AxisLabel: &opts.AxisLabel{Show: true}}),
	)...)

	labels := make([]string, len(points))
	data := make([]opts.LineData, len(points))
	for i, p := range points {
		labels[i] = p.Label
		data[i] = opts.LineData{Value: p.Value}
	}
	line.SetXAxis(labels).AddSeries("Average days", data)
	return line
}

func groupedBarChart(host string, groups []BarGroup) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(append(chartOpts("Engagement Metrics for Top 10 Videos", host),
		charts.WithLegendOpts(opts.Legend{Show: true}),
		charts.WithXAxisOpts(opts.XAxis{AxisLabel: &opts.AxisLabel{Show: true, Rotate: 45}}),
	)...)

	labels := make([]string, len(groups))
	likes := make([]opts.BarData, len(groups))
	dislikes := make([]opts.BarData, len(groups))
	comments := make([]opts.BarData, len(groups))
	for i, g := range groups {
		labels[i] = g.Label
		likes[i] = opts.BarData{Value: g.Likes}
		dislikes[i] = opts.BarData{Value: g.Dislikes}
		comments[i] = opts.BarData{Value: g.Comments}
	}
	bar.SetXAxis(labels).
		AddSeries("Likes", likes, charts.WithItemStyleOpts(opts.ItemStyle{Color: "green"})).
		AddSeries("Dislikes", dislikes, charts.WithItemStyleOpts(opts.ItemStyle{Color: "red"})).
		AddSeries("Comments", comments, charts.WithItemStyleOpts(opts.ItemStyle{Color: "blue"}))
	return bar
}

// scatterChart draws one series per point group in first-seen order.
// Groups listed in highlight get that colour and larger markers.
func scatterChart(host, title, xName, yName string, points []Point, highlight map[string]string) *charts.Scatter {
	sc := charts.NewScatter()
	sc.SetGlobalOptions(append(chartOpts(title, host),
		charts.WithLegendOpts(opts.Legend{Show: true}),
		charts.WithXAxisOpts(opts.XAxis{Type: "value", Name: xName, AxisLabel: &opts.AxisLabel{Show: true}}),
		charts.WithYAxisOpts(opts.YAxis{Type: "value", Name: yName, AxisLabel: &opts.AxisLabel{Show: true}}),
	)...)

	var order []string
	series := make(map[string][]opts.ScatterData)
	for _, p := range points {
		if _, ok := series[p.Group]; !ok {
			order = append(order, p.Group)
		}
		size := 6
		if _, hi := highlight[p.Group]; hi {
			size = 12
		}
		series[p.Group] = append(series[p.Group], opts.ScatterData{
			Name:       p.Label,
			Value:      []interface{}{p.X, p.Y},
			SymbolSize: size,
		})
	}

	for _, g := range order {
		if color, hi := highlight[g]; hi {
			sc.AddSeries(g, series[g], charts.WithItemStyleOpts(opts.ItemStyle{Color: color}))
			continue
		}
		sc.AddSeries(g, series[g])
	}
	return sc
}

func wordCloudChart(host string, tags []WeightedTag) *charts.WordCloud {
	wc := charts.NewWordCloud()
	wc.SetGlobalOptions(chartOpts("Tag Frequency Word Cloud", host)...)

	data := make([]opts.WordCloudData, len(tags))
	for i, t := range tags {
		data[i] = opts.WordCloudData{Name: t.Tag, Value: t.Count}
	}
	wc.AddSeries("Tags", data)
	return wc
}

// writePage renders the charts into one standalone HTML page
func writePage(path, title, assetsHost string, items ...components.Charter) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create chart directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create chart page: %w", err)
	}
	defer file.Close()

	page := components.NewPage()
	page.PageTitle = title
	page.AssetsHost = assetsHost
	page.AddCharts(items...)

	if err := page.Render(file); err != nil {
		return fmt.Errorf("failed to render chart page: %w", err)
	}
	return nil
}
