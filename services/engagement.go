package services

import (
	"youtube-trending/models"
)

type categoryTotals struct {
	likes    int64
	dislikes int64
	comments int64
	count    int64
}

// AvgEngagementByCategory averages likes, dislikes and comments per category
// using integer (floor) division.
func AvgEngagementByCategory(records []*models.Record) map[string]models.CategoryEngagement {
	agg := make(map[string]*categoryTotals)
	for _, r := range records {
		t, ok := agg[r.CategoryID]
		if !ok {
			t = &categoryTotals{}
			agg[r.CategoryID] = t
		}
		t.likes += r.Likes
		t.dislikes += r.Dislikes
		t.comments += r.CommentCount
		t.count++
	}

	final := make(map[string]models.CategoryEngagement, len(agg))
	for cat, t := range agg {
		if t.count == 0 {
			continue
		}
		final[cat] = models.CategoryEngagement{
			AvgLikes:    t.likes / t.count,
			AvgDislikes: t.dislikes / t.count,
			AvgComments: t.comments / t.count,
		}
	}
	return final
}

// TrendingDuration counts distinct non-empty trending dates per video_id.
// Videos without any dated record are absent from the result.
func TrendingDuration(records []*models.Record) map[string]int {
	days := trendingDays(records)

	result := make(map[string]int, len(days))
	for vid, set := range days {
		result[vid] = len(set)
	}
	return result
}

// AvgTrendingDurationByCategory attributes each record's video trending
// duration to the record's category and returns the mean per category.
func AvgTrendingDurationByCategory(records []*models.Record) map[string]float64 {
	days := trendingDays(records)

	sums := make(map[string]int)
	counts := make(map[string]int)
	for _, r := range records {
		sums[r.CategoryID] += len(days[r.VideoID])
		counts[r.CategoryID]++
	}

	avg := make(map[string]float64, len(counts))
	for cat, n := range counts {
		avg[cat] = float64(sums[cat]) / float64(n)
	}
	return avg
}

func trendingDays(records []*models.Record) map[string]map[string]struct{} {
	days := make(map[string]map[string]struct{})
	for _, r := range records {
		if r.TrendingDate == "" {
			continue
		}
		set, ok := days[r.VideoID]
		if !ok {
			set = make(map[string]struct{})
			days[r.VideoID] = set
		}
		set[r.TrendingDate] = struct{}{}
	}
	return days
}
