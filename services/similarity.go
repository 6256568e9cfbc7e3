package services

import (
	"strings"

	"youtube-trending/models"
)

const categoryMatchWeight = 3

// Tag tokens that mean "no tag"
var tagSentinels = map[string]struct{}{
	"":       {},
	"nan":    {},
	"[none]": {},
}

// RecommendSimilar ranks other videos by 3 points for a shared category plus
// one point per shared tag token, and returns the top five. Every record of
// the base video is excluded. Ties keep dataset order.
func RecommendSimilar(records []*models.Record, base *models.Record) []*models.Record {
	if base == nil {
		return []*models.Record{}
	}

	baseTags := tagSet(base.Tags)

	var scored []scoredRecord
	for _, r := range records {
		if r.VideoID == base.VideoID {
			continue
		}
		score := similarity(base.CategoryID, baseTags, r)
		scored = append(scored, scoredRecord{score: int64(score), record: r})
	}
	return rankTop(scored, recommendationLimit)
}

// SimilarityScore is the score RecommendSimilar assigns to candidate
func SimilarityScore(base, candidate *models.Record) int {
	return similarity(base.CategoryID, tagSet(base.Tags), candidate)
}

func similarity(category string, tags map[string]struct{}, candidate *models.Record) int {
	score := overlap(tags, tagSet(candidate.Tags))
	if candidate.CategoryID == category {
		score += categoryMatchWeight
	}
	return score
}

// TagKeywords counts tag tokens across all records, ignoring case,
// surrounding whitespace and sentinel tokens.
func TagKeywords(records []*models.Record) map[string]int {
	bag := make(map[string]int)
	for _, r := range records {
		for _, t := range splitTags(r.Tags) {
			if IsSentinelTag(t) {
				continue
			}
			bag[t]++
		}
	}
	return bag
}

// IsSentinelTag reports whether a normalized token means "no tag"
func IsSentinelTag(tag string) bool {
	_, ok := tagSentinels[tag]
	return ok
}

// splitTags splits on "|" and trims and lower-cases every token. Sentinels
// are kept.
func splitTags(tags string) []string {
	parts := strings.Split(tags, "|")
	for i, p := range parts {
		parts[i] = strings.ToLower(strings.TrimSpace(p))
	}
	return parts
}

func tagSet(tags string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, t := range splitTags(tags) {
		set[t] = struct{}{}
	}
	return set
}

func overlap(a, b map[string]struct{}) int {
	if len(b) < len(a) {
		a, b = b, a
	}
	n := 0
	for t := range a {
		if _, ok := b[t]; ok {
			n++
		}
	}
	return n
}
