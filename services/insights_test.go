package services

import (
	"bytes"
	"strings"
	"testing"

	"youtube-trending/models"
	"youtube-trending/utils"
)

func sampleDataset() []*models.Record {
	a1 := rec("a", "17.14.11", "10", 500000, 60000, 100, 10)
	a1.Title = "Music Video"
	a1.Tags = "music|pop"
	a2 := rec("a", "17.15.11", "10", 600000, 61000, 100, 12)
	a2.Title = "Music Video"
	a2.Tags = "music|pop"
	b := rec("b", "17.14.11", "24", 1000, 30, 5, 4)
	b.Tags = "news|[none]"
	return []*models.Record{a1, a2, b}
}

func TestInsightService_Generate(t *testing.T) {
	report := NewInsightService(utils.NewNopLogger()).Generate(sampleDataset())

	if report.TotalVideos != 3 || report.UniqueVideos != 2 || report.TotalChannels != 2 {
		t.Errorf("counts = %d/%d/%d", report.TotalVideos, report.UniqueVideos, report.TotalChannels)
	}
	if report.LongestTrending != "a" || report.LongestDays != 2 {
		t.Errorf("longest = %s (%d)", report.LongestTrending, report.LongestDays)
	}
	if report.AnomalyCount != 2 {
		t.Errorf("anomalies = %d, want 2", report.AnomalyCount)
	}
	if report.OddRatioCount != 2 {
		t.Errorf("odd ratio = %d, want 2", report.OddRatioCount)
	}
	if report.MostViewed == nil || report.MostViewed.Views != 600000 {
		t.Errorf("most viewed = %+v", report.MostViewed)
	}
	if len(report.TopTags) == 0 || report.TopTags[0].Count != 2 {
		t.Errorf("top tags = %+v", report.TopTags)
	}
}

func TestInsightService_GenerateEmpty(t *testing.T) {
	report := NewInsightService(utils.NewNopLogger()).Generate(nil)
	if report.TotalVideos != 0 || report.MostViewed != nil || report.Categories == nil {
		t.Errorf("unexpected empty report: %+v", report)
	}
}

func TestPrintInsightReport(t *testing.T) {
	report := NewInsightService(utils.NewNopLogger()).Generate(sampleDataset())

	var buf bytes.Buffer
	PrintInsightReport(&buf, report)
	out := buf.String()

	for _, want := range []string{"YOUTUBE TRENDING OVERVIEW", "Trending Records        : 3", "Music Video", "RECORDS PER CATEGORY", "music"} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q", want)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Errorf("truncate short = %q", got)
	}
	if got := truncate("héllo wörld", 8); got != "héllo..." {
		t.Errorf("truncate runes = %q", got)
	}
}
