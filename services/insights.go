package services

import (
	"youtube-trending/models"
	"youtube-trending/utils"
)

const reportTopTags = 10

// InsightService builds the dataset overview from the analytics functions
type InsightService struct {
	logger *utils.Logger
}

// NewInsightService creates a new InsightService
func NewInsightService(logger *utils.Logger) *InsightService {
	return &InsightService{logger: logger}
}

// Generate computes the overview report for a dataset
func (s *InsightService) Generate(records []*models.Record) *models.InsightReport {
	report := &models.InsightReport{
		Categories: make(map[string]int),
		Engagement: make(map[string]models.CategoryEngagement),
	}

	if len(records) == 0 {
		s.logger.Warn("No records to generate insights from")
		return report
	}

	report.TotalVideos = CountVideos(records)
	report.TotalChannels = CountChannels(records)
	report.Categories = ListCategories(records)
	report.TopTen = TopTenItems(records)
	report.Engagement = AvgEngagementByCategory(records)
	report.OddRatioCount = len(OddLikeRatio(records))
	report.AnomalyCount = len(CatchAnomalies(records))
	report.TopTags = TopTags(TagKeywords(records), reportTopTags)

	durations := TrendingDuration(records)
	report.UniqueVideos = countUniqueVideos(records)
	for vid, days := range durations {
		// Ties resolve to the smallest video_id so the report is stable
		if days > report.LongestDays || (days == report.LongestDays && vid < report.LongestTrending) {
			report.LongestTrending = vid
			report.LongestDays = days
		}
	}

	for _, r := range records {
		if report.MostViewed == nil || r.Views > report.MostViewed.Views {
			report.MostViewed = r
		}
	}

	s.logger.Info("Insights generated for %d records across %d categories",
		report.TotalVideos, len(report.Categories))
	return report
}

func countUniqueVideos(records []*models.Record) int {
	seen := make(map[string]struct{})
	for _, r := range records {
		seen[r.VideoID] = struct{}{}
	}
	return len(seen)
}
