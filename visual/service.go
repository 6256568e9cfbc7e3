package visual

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-echarts/go-echarts/v2/components"

	"youtube-trending/models"
	"youtube-trending/utils"
)

// ChartKind identifies one of the available charts
type ChartKind int

const (
	CategoryPie ChartKind = iota + 1
	EngagementHistogram
	CategoryTrendLines
	TopVideoBars
	Dashboard
	AnomalyScatter
	TagWordCloud
)

var chartNames = map[ChartKind]string{
	CategoryPie:         "category_pie",
	EngagementHistogram: "engagement_histograms",
	CategoryTrendLines:  "category_trend_lines",
	TopVideoBars:        "top_video_bars",
	Dashboard:           "engagement_dashboard",
	AnomalyScatter:      "anomaly_overlay",
	TagWordCloud:        "tag_wordcloud",
}

func (k ChartKind) String() string {
	if name, ok := chartNames[k]; ok {
		return name
	}
	return fmt.Sprintf("chart_%d", int(k))
}

// PageRenderer turns a chart page into an image
type PageRenderer interface {
	Render(ctx context.Context, htmlPath, pngPath string) error
}

// Output lists the files produced for one chart
type Output struct {
	HTML string
	PNG  string
}

// Service builds chart pages under a directory and optionally renders them
type Service struct {
	dir        string
	assetsHost string
	renderer   PageRenderer
	logger     *utils.Logger
}

// NewService creates a chart Service. assetsHost is where pages load the
// echarts scripts from (empty for the public CDN); renderer may be nil to
// skip PNG output.
func NewService(dir, assetsHost string, renderer PageRenderer, logger *utils.Logger) *Service {
	return &Service{dir: dir, assetsHost: assetsHost, renderer: renderer, logger: logger}
}

// Generate writes the chart page for kind and, when a renderer is set, a
// PNG next to it. A failed render is logged and the HTML page is kept.
func (s *Service) Generate(ctx context.Context, kind ChartKind, records []*models.Record) (Output, error) {
	if len(records) == 0 {
		return Output{}, fmt.Errorf("no data loaded")
	}

	title, items, err := buildCharts(kind, s.assetsHost, records)
	if err != nil {
		return Output{}, err
	}

	out := Output{HTML: filepath.Join(s.dir, kind.String()+".html")}
	if err := writePage(out.HTML, title, s.assetsHost, items...); err != nil {
		return Output{}, err
	}
	s.logger.Info("Chart page written: %s", out.HTML)

	if s.renderer == nil {
		return out, nil
	}
	png := strings.TrimSuffix(out.HTML, ".html") + ".png"
	if err := s.renderer.Render(ctx, out.HTML, png); err != nil {
		s.logger.Warn("PNG rendering skipped for %s: %v", kind, err)
		return out, nil
	}
	out.PNG = png
	return out, nil
}

func buildCharts(kind ChartKind, host string, records []*models.Record) (string, []components.Charter, error) {
	switch kind {
	case CategoryPie:
		return "Video Distribution by Category", []components.Charter{pieChart(host, CategoryShares(records))}, nil
	case EngagementHistogram:
		var items []components.Charter
		for _, h := range EngagementHistograms(records, HistogramBins) {
			items = append(items, histogramChart(host, h))
		}
		return "Engagement Distributions", items, nil
	case CategoryTrendLines:
		return "Average Trending Duration per Category", []components.Charter{lineChart(host, CategoryTrendLine(records))}, nil
	case TopVideoBars:
		return "Engagement Metrics for Top 10 Videos", []components.Charter{groupedBarChart(host, TopBars(records))}, nil
	case Dashboard:
		return "Interactive Engagement Dashboard", []components.Charter{
			scatterChart(host, "Interactive Engagement Dashboard", "Views", "Likes", EngagementScatter(records), nil),
		}, nil
	case AnomalyScatter:
		normal, flagged := AnomalyOverlay(records)
		points := append(normal, flagged...)
		return "Anomaly Detection Overlay", []components.Charter{
			scatterChart(host, "Anomaly Detection Overlay", "Likes", "Comment Count", points, map[string]string{"Anomalies": "red"}),
		}, nil
	case TagWordCloud:
		return "Tag Frequency Word Cloud", []components.Charter{wordCloudChart(host, TagCloud(records, tagCloudSize))}, nil
	}
	return "", nil, fmt.Errorf("unknown chart kind %d", int(kind))
}
