package services

import (
	"youtube-trending/models"
)

// Heuristic thresholds
const (
	OddRatioThreshold    = 20
	AnomalyMinLikes      = 50000
	AnomalyMaxComments   = 50
	ViewsPerPredictedDay = 100000
	LikesPerPredictedDay = 5000
)

// OddLikeRatio flags records whose likes/dislikes ratio exceeds 20. With no
// dislikes the raw like count stands in for the ratio.
func OddLikeRatio(records []*models.Record) []*models.Record {
	var flagged []*models.Record
	for _, r := range records {
		var ratio float64
		if r.Dislikes > 0 {
			ratio = float64(r.Likes) / float64(r.Dislikes)
		} else {
			ratio = float64(r.Likes)
		}
		if ratio > OddRatioThreshold {
			flagged = append(flagged, r)
		}
	}
	return flagged
}

// CatchAnomalies flags records with many likes but almost no comments
func CatchAnomalies(records []*models.Record) []*models.Record {
	var flagged []*models.Record
	for _, r := range records {
		if IsEngagementAnomaly(r) {
			flagged = append(flagged, r)
		}
	}
	return flagged
}

// IsEngagementAnomaly reports whether r has likes > 50000 and fewer than 50 comments
func IsEngagementAnomaly(r *models.Record) bool {
	return r.Likes > AnomalyMinLikes && r.CommentCount < AnomalyMaxComments
}

// PredictTrendDays estimates trending days per video as
// views/100000 + likes/5000, at least 1. The last record of a video wins.
func PredictTrendDays(records []*models.Record) map[string]int {
	pred := make(map[string]int)
	for _, r := range records {
		days := int(r.Views/ViewsPerPredictedDay + r.Likes/LikesPerPredictedDay)
		if days < 1 {
			days = 1
		}
		pred[r.VideoID] = days
	}
	return pred
}
