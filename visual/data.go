package visual

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"youtube-trending/models"
	"youtube-trending/services"
)

// HistogramBins matches the bin count used for engagement histograms
const HistogramBins = 30

const (
	topBarLabelRunes = 20
	tagCloudSize     = 60
)

// Slice is one pie wedge
type Slice struct {
	Label   string
	Value   int
	Percent float64
}

// Bin is one histogram bucket covering [Lo, Hi)
type Bin struct {
	Lo    float64
	Hi    float64
	Count int
}

// Histogram is a titled set of equal-width bins
type Histogram struct {
	Title string
	Color string
	Bins  []Bin
}

// LinePoint is one labelled y value
type LinePoint struct {
	Label string
	Value float64
}

// BarGroup holds the grouped bars for one top video
type BarGroup struct {
	Label    string
	Likes    int64
	Dislikes int64
	Comments int64
}

// Point is one scatter marker
type Point struct {
	X     float64
	Y     float64
	Group string
	Label string
}

// WeightedTag is one tag cloud word sized by its frequency
type WeightedTag struct {
	Tag   string
	Count int
}

// CategoryShares returns the record share per category in first-seen order
func CategoryShares(records []*models.Record) []Slice {
	counts := services.ListCategories(records)
	total := len(records)

	slices := make([]Slice, 0, len(counts))
	for _, cat := range categoryOrder(records) {
		s := Slice{Label: cat, Value: counts[cat]}
		if total > 0 {
			s.Percent = float64(s.Value) * 100 / float64(total)
		}
		slices = append(slices, s)
	}
	return slices
}

// EngagementHistograms bins views, likes and comment counts
func EngagementHistograms(records []*models.Record, bins int) []Histogram {
	views := make([]float64, len(records))
	likes := make([]float64, len(records))
	comments := make([]float64, len(records))
	for i, r := range records {
		views[i] = float64(r.Views)
		likes[i] = float64(r.Likes)
		comments[i] = float64(r.CommentCount)
	}
	return []Histogram{
		{Title: "Views Distribution", Color: "#1f77b4", Bins: histogram(views, bins)},
		{Title: "Likes Distribution", Color: "#2ca02c", Bins: histogram(likes, bins)},
		{Title: "Comment Count Distribution", Color: "#d62728", Bins: histogram(comments, bins)},
	}
}

// histogram splits values into equal-width bins between their min and max
func histogram(values []float64, bins int) []Bin {
	if len(values) == 0 || bins <= 0 {
		return nil
	}
	x := append([]float64(nil), values...)
	sort.Float64s(x)

	lo, hi := x[0], x[len(x)-1]
	if hi == lo {
		hi = lo + 1
	}
	dividers := floats.Span(make([]float64, bins+1), lo, hi)
	// the last divider is exclusive, so nudge it past the maximum
	dividers[bins] = math.Nextafter(hi, math.Inf(1))

	counts := stat.Histogram(nil, dividers, x, nil)
	out := make([]Bin, bins)
	for i := range out {
		out[i] = Bin{Lo: dividers[i], Hi: dividers[i+1], Count: int(counts[i])}
	}
	return out
}

// CategoryTrendLine returns the mean trending duration per category in
// first-seen order
func CategoryTrendLine(records []*models.Record) []LinePoint {
	avg := services.AvgTrendingDurationByCategory(records)

	points := make([]LinePoint, 0, len(avg))
	for _, cat := range categoryOrder(records) {
		points = append(points, LinePoint{Label: cat, Value: avg[cat]})
	}
	return points
}

// TopBars returns likes, dislikes and comments for the top ten videos
func TopBars(records []*models.Record) []BarGroup {
	top := services.TopTenItems(records)

	groups := make([]BarGroup, len(top))
	for i, r := range top {
		groups[i] = BarGroup{
			Label:    shortLabel(r.Title),
			Likes:    r.Likes,
			Dislikes: r.Dislikes,
			Comments: r.CommentCount,
		}
	}
	return groups
}

// shortLabel keeps the first 20 runes and always appends "..."
func shortLabel(title string) string {
	runes := []rune(title)
	if len(runes) > topBarLabelRunes {
		runes = runes[:topBarLabelRunes]
	}
	return string(runes) + "..."
}

// EngagementScatter plots views against likes, grouped by category
func EngagementScatter(records []*models.Record) []Point {
	points := make([]Point, len(records))
	for i, r := range records {
		points[i] = Point{X: float64(r.Views), Y: float64(r.Likes), Group: r.CategoryID, Label: r.Title}
	}
	return points
}

// AnomalyOverlay splits likes/comment points into normal and anomalous sets
func AnomalyOverlay(records []*models.Record) (normal, flagged []Point) {
	for _, r := range records {
		p := Point{X: float64(r.Likes), Y: float64(r.CommentCount), Label: r.Title}
		if services.IsEngagementAnomaly(r) {
			p.Group = "Anomalies"
			flagged = append(flagged, p)
		} else {
			p.Group = "Normal"
			normal = append(normal, p)
		}
	}
	return normal, flagged
}

// TagCloud returns the most frequent tags, most frequent first
func TagCloud(records []*models.Record, limit int) []WeightedTag {
	top := services.TopTags(services.TagKeywords(records), limit)
	if len(top) == 0 {
		return nil
	}

	cloud := make([]WeightedTag, len(top))
	for i, t := range top {
		cloud[i] = WeightedTag{Tag: t.Tag, Count: t.Count}
	}
	return cloud
}

func categoryOrder(records []*models.Record) []string {
	seen := make(map[string]struct{})
	var order []string
	for _, r := range records {
		if _, ok := seen[r.CategoryID]; ok {
			continue
		}
		seen[r.CategoryID] = struct{}{}
		order = append(order, r.CategoryID)
	}
	return order
}
