package services

import (
	"sort"

	"youtube-trending/models"
)

const (
	topTenLimit         = 10
	recommendationLimit = 5
)

type scoredRecord struct {
	score  int64
	record *models.Record
}

// EngagementScore is views + likes + comment_count
func EngagementScore(r *models.Record) int64 {
	return r.Views + r.Likes + r.CommentCount
}

// TopTenItems returns up to ten records with the highest engagement score.
// Equal scores keep dataset order.
func TopTenItems(records []*models.Record) []*models.Record {
	scored := make([]scoredRecord, 0, len(records))
	for _, r := range records {
		scored = append(scored, scoredRecord{score: EngagementScore(r), record: r})
	}
	return rankTop(scored, topTenLimit)
}

// rankTop stable-sorts by descending score and keeps the first limit records
func rankTop(scored []scoredRecord, limit int) []*models.Record {
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})
	if len(scored) > limit {
		scored = scored[:limit]
	}

	out := make([]*models.Record, len(scored))
	for i, s := range scored {
		out[i] = s.record
	}
	return out
}

// TopTags orders a tag frequency map by count (descending, then tag
// ascending) and keeps the first n entries; n <= 0 keeps all.
func TopTags(freq map[string]int, n int) []models.TagCount {
	tags := make([]models.TagCount, 0, len(freq))
	for tag, count := range freq {
		tags = append(tags, models.TagCount{Tag: tag, Count: count})
	}
	sort.Slice(tags, func(i, j int) bool {
		if tags[i].Count != tags[j].Count {
			return tags[i].Count > tags[j].Count
		}
		return tags[i].Tag < tags[j].Tag
	})
	if n > 0 && len(tags) > n {
		tags = tags[:n]
	}
	return tags
}
