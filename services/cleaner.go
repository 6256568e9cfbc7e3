package services

import (
	"strconv"
	"strings"

	"youtube-trending/models"
	"youtube-trending/utils"
)

// DataCleaner normalizes raw CSV rows into Records
type DataCleaner struct {
	logger *utils.Logger
}

// NewDataCleaner creates a new DataCleaner
func NewDataCleaner(logger *utils.Logger) *DataCleaner {
	return &DataCleaner{logger: logger}
}

// Clean converts raw rows to Records, one per row, keeping file order.
// Counters that are missing, malformed or negative become 0.
func (c *DataCleaner) Clean(raw []*models.RawRecord) []*models.Record {
	cleaned := make([]*models.Record, 0, len(raw))
	coerced := 0

	for _, r := range raw {
		if r == nil {
			continue
		}
		rec, n := cleanRecord(r)
		coerced += n
		cleaned = append(cleaned, rec)
	}

	if coerced > 0 {
		c.logger.Debug("Coerced %d malformed numeric fields to 0", coerced)
	}
	c.logger.Info("Cleaned %d records from %d raw rows", len(cleaned), len(raw))
	return cleaned
}

func cleanRecord(r *models.RawRecord) (*models.Record, int) {
	bad := 0
	count := func(raw string) int64 {
		n, ok := parseCount(raw)
		if !ok {
			bad++
		}
		return n
	}

	rec := &models.Record{
		VideoID:             r.VideoID,
		TrendingDate:        r.TrendingDate,
		Title:               r.Title,
		ChannelTitle:        r.ChannelTitle,
		CategoryID:          r.CategoryID,
		PublishTime:         r.PublishTime,
		Tags:                r.Tags,
		Views:               count(r.Views),
		Likes:               count(r.Likes),
		Dislikes:            count(r.Dislikes),
		CommentCount:        count(r.CommentCount),
		ThumbnailLink:       r.ThumbnailLink,
		CommentsDisabled:    r.CommentsDisabled,
		RatingsDisabled:     r.RatingsDisabled,
		VideoErrorOrRemoved: r.VideoErrorOrRemoved,
		Description:         r.Description,
	}
	return rec, bad
}

// parseCount reads a non-negative integer counter. The bool is false when
// the input had to be coerced to 0.
func parseCount(raw string) (int64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
