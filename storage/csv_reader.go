package storage

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"youtube-trending/models"
	"youtube-trending/utils"
)

// ErrNoRows is returned when the CSV holds a header but no data rows
var ErrNoRows = errors.New("dataset has no rows")

// CSVReader loads the trending dataset into raw rows
type CSVReader struct {
	logger *utils.Logger
}

// NewCSVReader creates a new CSVReader
func NewCSVReader(logger *utils.Logger) *CSVReader {
	return &CSVReader{logger: logger}
}

// Read opens path and parses it with ReadFrom
func (r *CSVReader) Read(path string) ([]*models.RawRecord, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer file.Close()

	rows, err := r.ReadFrom(file)
	if err != nil {
		return nil, err
	}
	r.logger.Info("Loaded %d rows from %s", len(rows), path)
	return rows, nil
}

// ReadFrom parses CSV with a header row. Every column is read as text so
// that counters are normalized later by the cleaner. Unknown columns are
// ignored and missing ones stay empty. Input without a data row yields
// ErrNoRows.
func (r *CSVReader) ReadFrom(src io.Reader) ([]*models.RawRecord, error) {
	data, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset: %w", err)
	}
	if !hasDataRow(data) {
		return nil, ErrNoRows
	}

	df := dataframe.ReadCSV(bytes.NewReader(data),
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
		dataframe.NaNValues(nil),
	)
	if df.Err != nil {
		return nil, fmt.Errorf("failed to parse dataset: %w", df.Err)
	}

	table := df.Records()
	setters := make([]func(*models.RawRecord, string), len(table[0]))
	for i, name := range table[0] {
		setters[i] = columnSetter(strings.TrimSpace(name))
	}

	rows := make([]*models.RawRecord, 0, len(table)-1)
	for _, row := range table[1:] {
		raw := &models.RawRecord{}
		for i, val := range row {
			if i < len(setters) && setters[i] != nil {
				setters[i](raw, val)
			}
		}
		rows = append(rows, raw)
	}
	return rows, nil
}

// hasDataRow reports whether data holds a header plus at least one more
// record. Malformed input counts as having rows so the parser reports it.
func hasDataRow(data []byte) bool {
	cr := csv.NewReader(bytes.NewReader(data))
	cr.FieldsPerRecord = -1
	for i := 0; i < 2; i++ {
		if _, err := cr.Read(); err != nil {
			return !errors.Is(err, io.EOF)
		}
	}
	return true
}

func columnSetter(name string) func(*models.RawRecord, string) {
	switch name {
	case "video_id":
		return func(r *models.RawRecord, v string) { r.VideoID = v }
	case "trending_date":
		return func(r *models.RawRecord, v string) { r.TrendingDate = v }
	case "title":
		return func(r *models.RawRecord, v string) { r.Title = v }
	case "channel_title":
		return func(r *models.RawRecord, v string) { r.ChannelTitle = v }
	case "category_id":
		return func(r *models.RawRecord, v string) { r.CategoryID = v }
	case "publish_time":
		return func(r *models.RawRecord, v string) { r.PublishTime = v }
	case "tags":
		return func(r *models.RawRecord, v string) { r.Tags = v }
	case "views":
		return func(r *models.RawRecord, v string) { r.Views = v }
	case "likes":
		return func(r *models.RawRecord, v string) { r.Likes = v }
	case "dislikes":
		return func(r *models.RawRecord, v string) { r.Dislikes = v }
	case "comment_count":
		return func(r *models.RawRecord, v string) { r.CommentCount = v }
	case "thumbnail_link":
		return func(r *models.RawRecord, v string) { r.ThumbnailLink = v }
	case "comments_disabled":
		return func(r *models.RawRecord, v string) { r.CommentsDisabled = v }
	case "ratings_disabled":
		return func(r *models.RawRecord, v string) { r.RatingsDisabled = v }
	case "video_error_or_removed":
		return func(r *models.RawRecord, v string) { r.VideoErrorOrRemoved = v }
	case "description":
		return func(r *models.RawRecord, v string) { r.Description = v }
	}
	return nil
}
