package services

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"youtube-trending/models"
)

// PrintInsightReport formats the overview report for the terminal
func PrintInsightReport(w io.Writer, report *models.InsightReport) {
	border := strings.Repeat("═", 60)
	thin := strings.Repeat("─", 60)

	fmt.Fprintf(w, "\n╔%s╗\n", border)
	fmt.Fprintf(w, "║%s║\n", center("YOUTUBE TRENDING OVERVIEW", 60))
	fmt.Fprintf(w, "╚%s╝\n", border)

	fmt.Fprintf(w, "\n OVERVIEW\n%s\n", thin)
	fmt.Fprintf(w, "  Trending Records        : %d\n", report.TotalVideos)
	fmt.Fprintf(w, "  Distinct Videos         : %d\n", report.UniqueVideos)
	fmt.Fprintf(w, "  Distinct Channels       : %d\n", report.TotalChannels)
	fmt.Fprintf(w, "  Odd Like Ratio Flags    : %d\n", report.OddRatioCount)
	fmt.Fprintf(w, "  Engagement Anomalies    : %d\n", report.AnomalyCount)

	if report.MostViewed != nil {
		fmt.Fprintf(w, "\n MOST VIEWED\n%s\n", thin)
		fmt.Fprintf(w, "  Title    : %s\n", report.MostViewed.Title)
		fmt.Fprintf(w, "  Channel  : %s\n", report.MostViewed.ChannelTitle)
		fmt.Fprintf(w, "  Views    : %d\n", report.MostViewed.Views)
	}
	if report.LongestTrending != "" {
		fmt.Fprintf(w, "  Longest trending: %s (%d days)\n", report.LongestTrending, report.LongestDays)
	}

	if len(report.Categories) > 0 {
		fmt.Fprintf(w, "\n RECORDS PER CATEGORY\n%s\n", thin)
		cats := sortedCounts(report.Categories)
		max := cats[0].count
		for _, c := range cats {
			eng := report.Engagement[c.key]
			fmt.Fprintf(w, "  %-6s %6d  %-20s likes~%d comments~%d\n",
				c.key, c.count, bar(c.count, max, 20), eng.AvgLikes, eng.AvgComments)
		}
	}

	if len(report.TopTen) > 0 {
		fmt.Fprintf(w, "\n TOP %d BY ENGAGEMENT\n%s\n", len(report.TopTen), thin)
		for i, r := range report.TopTen {
			fmt.Fprintf(w, "  %2d. %-40s %d\n", i+1, truncate(r.Title, 40), EngagementScore(r))
		}
	}

	if len(report.TopTags) > 0 {
		fmt.Fprintf(w, "\n TOP TAGS\n%s\n", thin)
		for _, t := range report.TopTags {
			fmt.Fprintf(w, "  %-30s %d\n", truncate(t.Tag, 30), t.Count)
		}
	}

	fmt.Fprintf(w, "\n%s\n\n", border)
}

type keyCount struct {
	key   string
	count int
}

// sortedCounts orders a count map by count descending, key ascending
func sortedCounts(m map[string]int) []keyCount {
	out := make([]keyCount, 0, len(m))
	for k, c := range m {
		out = append(out, keyCount{k, c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].count != out[j].count {
			return out[i].count > out[j].count
		}
		return out[i].key < out[j].key
	})
	return out
}

func bar(n, max, width int) string {
	if max <= 0 || n <= 0 {
		return ""
	}
	filled := n * width / max
	if filled == 0 {
		filled = 1
	}
	return strings.Repeat("▓", filled)
}

func center(s string, width int) string {
	runes := []rune(s)
	if len(runes) >= width {
		return s
	}
	pad := (width - len(runes)) / 2
	return strings.Repeat(" ", pad) + s + strings.Repeat(" ", width-len(runes)-pad)
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
