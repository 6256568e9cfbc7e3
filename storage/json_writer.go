package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"youtube-trending/models"
	"youtube-trending/utils"
)

// ErrNoRecord is returned when exporting details of a video that was not found
var ErrNoRecord = errors.New("no matching video found")

// JSONWriter writes analytics results as indented JSON files
type JSONWriter struct {
	logger *utils.Logger
}

// NewJSONWriter creates a new JSONWriter
func NewJSONWriter(logger *utils.Logger) *JSONWriter {
	return &JSONWriter{logger: logger}
}

// WriteVideoDetails saves a single record as a JSON object
func (w *JSONWriter) WriteVideoDetails(filePath string, r *models.Record) error {
	if r == nil {
		return ErrNoRecord
	}
	return w.write(filePath, r, "video details")
}

// WriteRecords saves records as a JSON array (top ten, filtered, recommendations)
func (w *JSONWriter) WriteRecords(filePath string, records []*models.Record, label string) error {
	if records == nil {
		records = []*models.Record{}
	}
	return w.write(filePath, records, label)
}

// WriteEngagementSummary saves per-category average engagement
func (w *JSONWriter) WriteEngagementSummary(filePath string, summary map[string]models.CategoryEngagement) error {
	return w.write(filePath, summary, "engagement summary")
}

// WriteAnomalyReport saves flagged records under an "anomalies" key
func (w *JSONWriter) WriteAnomalyReport(filePath string, flagged []*models.Record) error {
	if flagged == nil {
		flagged = []*models.Record{}
	}
	report := struct {
		Anomalies []*models.Record `json:"anomalies"`
	}{Anomalies: flagged}
	return w.write(filePath, report, "anomaly report")
}

// WriteTrendPrediction saves predicted trending days per video_id
func (w *JSONWriter) WriteTrendPrediction(filePath string, pred map[string]int) error {
	return w.write(filePath, pred, "trend prediction")
}

func (w *JSONWriter) write(filePath string, v interface{}, label string) error {
	if err := ensureDir(filePath); err != nil {
		return err
	}

	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create JSON file: %w", err)
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "    ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode %s: %w", label, err)
	}

	w.logger.Info("Saved %s at: %s", label, filePath)
	return nil
}

// ensureDir creates the parent directory of filePath if needed
func ensureDir(filePath string) error {
	dir := filepath.Dir(filePath)
	if dir == "" || dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	return nil
}
