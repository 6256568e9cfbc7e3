package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"youtube-trending/models"
	"youtube-trending/utils"
)

// CSVWriter writes records as CSV in the fixed export column order
type CSVWriter struct {
	logger *utils.Logger
}

// NewCSVWriter creates a new CSVWriter
func NewCSVWriter(logger *utils.Logger) *CSVWriter {
	return &CSVWriter{logger: logger}
}

// WriteRecords writes a header plus one row per record to filePath
func (w *CSVWriter) WriteRecords(filePath string, records []*models.Record) error {
	if err := ensureDir(filePath); err != nil {
		return err
	}

	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	if err := writer.Write(models.CSVHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, r := range records {
		if err := writer.Write(recordRow(r)); err != nil {
			return fmt.Errorf("failed to write CSV row for '%s': %w", r.VideoID, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV file: %w", err)
	}

	w.logger.Info("Records written to: %s (%d rows)", filePath, len(records))
	return nil
}

func recordRow(r *models.Record) []string {
	return []string{
		r.VideoID,
		r.Title,
		r.ChannelTitle,
		r.CategoryID,
		r.PublishTime,
		r.TrendingDate,
		r.Tags,
		strconv.FormatInt(r.Views, 10),
		strconv.FormatInt(r.Likes, 10),
		strconv.FormatInt(r.Dislikes, 10),
		strconv.FormatInt(r.CommentCount, 10),
		r.ThumbnailLink,
		r.CommentsDisabled,
		r.RatingsDisabled,
		r.VideoErrorOrRemoved,
		r.Description,
	}
}
