package services

import (
	"strings"

	"youtube-trending/models"
)

// CountVideos returns the number of records (one per video per trending day)
func CountVideos(records []*models.Record) int {
	return len(records)
}

// CountChannels returns the number of distinct channel titles (case-sensitive)
func CountChannels(records []*models.Record) int {
	seen := make(map[string]struct{})
	for _, r := range records {
		seen[r.ChannelTitle] = struct{}{}
	}
	return len(seen)
}

// ListCategories counts records per category_id
func ListCategories(records []*models.Record) map[string]int {
	counts := make(map[string]int)
	for _, r := range records {
		counts[r.CategoryID]++
	}
	return counts
}

// FetchVideoInfo returns the first record matching videoID exactly. When
// videoID is empty it falls back to the first record whose title matches
// title ignoring case and surrounding whitespace. The bool is false on a miss.
func FetchVideoInfo(records []*models.Record, videoID, title string) (*models.Record, bool) {
	if videoID != "" {
		for _, r := range records {
			if r.VideoID == videoID {
				return r, true
			}
		}
		return nil, false
	}

	if title == "" {
		return nil, false
	}
	want := normalizeTitle(title)
	for _, r := range records {
		if normalizeTitle(r.Title) == want {
			return r, true
		}
	}
	return nil, false
}

func normalizeTitle(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
