package services

import (
	"youtube-trending/models"
)

// rec builds a record with the fields most tests care about
func rec(id, date, category string, views, likes, dislikes, comments int64) *models.Record {
	return &models.Record{
		VideoID:      id,
		TrendingDate: date,
		Title:        "video " + id,
		ChannelTitle: "channel " + id,
		CategoryID:   category,
		Views:        views,
		Likes:        likes,
		Dislikes:     dislikes,
		CommentCount: comments,
	}
}

func tagged(id, category, tags string) *models.Record {
	r := rec(id, "17.14.11", category, 0, 0, 0, 0)
	r.Tags = tags
	return r
}

func ids(records []*models.Record) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.VideoID
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
