package storage

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"youtube-trending/models"
	"youtube-trending/utils"
)

const sampleCSV = `video_id,trending_date,title,channel_title,category_id,publish_time,tags,views,likes,dislikes,comment_count,thumbnail_link,comments_disabled,ratings_disabled,video_error_or_removed,description,extra
2kyS6SvSYSE,17.14.11,WE WANT TO TALK,CaseyNeistat,22,2017-11-13T17:13:01.000Z,"SHANtell martin|vlog",748374,57527,2966,15954,https://i.ytimg.com/a.jpg,False,False,False,"line one
line two",ignored
1ZAPwfrtAFY,17.14.11,The Trump Presidency,LastWeekTonight,24,2017-11-13T07:30:00.000Z,[none],n/a,97185,,12703,https://i.ytimg.com/b.jpg,False,False,False,,x
`

func sampleRecords() []*models.Record {
	return []*models.Record{
		{VideoID: "a", TrendingDate: "17.14.11", Title: `Quote "this", please`, ChannelTitle: "Chan", CategoryID: "10", Tags: "x|y", Views: 10, Likes: 2, Dislikes: 1, CommentCount: 3, Description: "multi\nline"},
		{VideoID: "b", TrendingDate: "17.15.11", Title: "<b>Second</b>", CategoryID: "24", Views: 5},
	}
}

func TestCSVReader_ReadFrom(t *testing.T) {
	rows, err := NewCSVReader(utils.NewNopLogger()).ReadFrom(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("ReadFrom: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}

	first := rows[0]
	if first.VideoID != "2kyS6SvSYSE" || first.Tags != "SHANtell martin|vlog" || first.Views != "748374" {
		t.Errorf("first row = %+v", first)
	}
	if first.Description != "line one\nline two" {
		t.Errorf("description = %q", first.Description)
	}

	second := rows[1]
	if second.Views != "n/a" || second.Dislikes != "" || second.Tags != "[none]" {
		t.Errorf("second row = %+v", second)
	}
}

func TestCSVReader_Read(t *testing.T) {
	path := filepath.Join(t.TempDir(), "videos.csv")
	if err := os.WriteFile(path, []byte(sampleCSV), 0644); err != nil {
		t.Fatal(err)
	}
	rows, err := NewCSVReader(utils.NewNopLogger()).Read(path)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(rows) != 2 {
		t.Errorf("rows = %d, want 2", len(rows))
	}
}

func TestCSVReader_Failures(t *testing.T) {
	r := NewCSVReader(utils.NewNopLogger())

	if _, err := r.Read(filepath.Join(t.TempDir(), "missing.csv")); err == nil {
		t.Error("expected error for missing file")
	}

	if _, err := r.Read(filepath.Join(t.TempDir(), "missing.csv")); errors.Is(err, ErrNoRows) {
		t.Error("missing file is not an empty dataset")
	}
}

func TestCSVReader_NoRows(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty input", ""},
		{"header only", "video_id,title\n"},
		{"header and blank lines", "video_id,title\n\n\n"},
	}

	r := NewCSVReader(utils.NewNopLogger())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := r.ReadFrom(strings.NewReader(tt.input))
			if !errors.Is(err, ErrNoRows) {
				t.Errorf("err = %v, want ErrNoRows", err)
			}
		})
	}

	path := filepath.Join(t.TempDir(), "header.csv")
	if err := os.WriteFile(path, []byte("video_id,title\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := r.Read(path); !errors.Is(err, ErrNoRows) {
		t.Errorf("Read err = %v, want ErrNoRows", err)
	}
}

func TestCSVWriter_WriteRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "top.csv")
	if err := NewCSVWriter(utils.NewNopLogger()).WriteRecords(path, sampleRecords()); err != nil {
		t.Fatalf("WriteRecords: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want header + 2", len(rows))
	}
	if strings.Join(rows[0], ",") != strings.Join(models.CSVHeader, ",") {
		t.Errorf("header = %v", rows[0])
	}
	first := rows[1]
	if first[0] != "a" || first[1] != `Quote "this", please` || first[5] != "17.14.11" || first[7] != "10" || first[15] != "multi\nline" {
		t.Errorf("first row = %v", first)
	}
}

func TestCSVWriter_RoundTripThroughReader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.csv")
	records := sampleRecords()
	if err := NewCSVWriter(utils.NewNopLogger()).WriteRecords(path, records); err != nil {
		t.Fatal(err)
	}
	rows, err := NewCSVReader(utils.NewNopLogger()).Read(path)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if rows[0].Title != records[0].Title || rows[0].Likes != "2" || rows[1].VideoID != "b" {
		t.Errorf("round trip rows = %+v, %+v", rows[0], rows[1])
	}
}

func TestJSONWriter_VideoDetailsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "video.json")
	w := NewJSONWriter(utils.NewNopLogger())
	orig := sampleRecords()[0]

	if err := w.WriteVideoDetails(path, orig); err != nil {
		t.Fatalf("WriteVideoDetails: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "\n    \"video_id\": \"a\"") {
		t.Errorf("expected 4-space indentation, got:\n%s", data)
	}

	var back models.Record
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back != *orig {
		t.Errorf("round trip = %+v, want %+v", back, *orig)
	}
}

func TestJSONWriter_NilRecord(t *testing.T) {
	err := NewJSONWriter(utils.NewNopLogger()).WriteVideoDetails(filepath.Join(t.TempDir(), "x.json"), nil)
	if !errors.Is(err, ErrNoRecord) {
		t.Errorf("err = %v, want ErrNoRecord", err)
	}
}

func TestJSONWriter_Reports(t *testing.T) {
	dir := t.TempDir()
	w := NewJSONWriter(utils.NewNopLogger())

	anomalyPath := filepath.Join(dir, "anomalies.json")
	if err := w.WriteAnomalyReport(anomalyPath, nil); err != nil {
		t.Fatal(err)
	}
	var anomalies map[string][]models.Record
	readJSON(t, anomalyPath, &anomalies)
	if list, ok := anomalies["anomalies"]; !ok || len(list) != 0 {
		t.Errorf("anomaly report = %v", anomalies)
	}

	summaryPath := filepath.Join(dir, "summary.json")
	summary := map[string]models.CategoryEngagement{"10": {AvgLikes: 7, AvgDislikes: 2, AvgComments: 1}}
	if err := w.WriteEngagementSummary(summaryPath, summary); err != nil {
		t.Fatal(err)
	}
	var rawSummary map[string]map[string]int
	readJSON(t, summaryPath, &rawSummary)
	if rawSummary["10"]["avg_likes"] != 7 || rawSummary["10"]["avg_comments"] != 1 {
		t.Errorf("summary = %v", rawSummary)
	}

	predPath := filepath.Join(dir, "pred.json")
	if err := w.WriteTrendPrediction(predPath, map[string]int{"a": 4}); err != nil {
		t.Fatal(err)
	}
	var pred map[string]int
	readJSON(t, predPath, &pred)
	if pred["a"] != 4 {
		t.Errorf("prediction = %v", pred)
	}

	listPath := filepath.Join(dir, "list.json")
	if err := w.WriteRecords(listPath, sampleRecords(), "recommendations"); err != nil {
		t.Fatal(err)
	}
	var list []models.Record
	readJSON(t, listPath, &list)
	if len(list) != 2 || list[1].Title != "<b>Second</b>" {
		t.Errorf("list = %+v", list)
	}
}

func readJSON(t *testing.T, path string, v interface{}) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		t.Fatalf("unmarshal %s: %v", path, err)
	}
}

func TestSQLWriter_ExportSQLite(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "trending.db")

	w, err := NewSQLWriter(ctx, "sqlite", dsn, 1, utils.NewNopLogger())
	if err != nil {
		t.Fatalf("NewSQLWriter: %v", err)
	}
	defer w.Close()

	runID, err := w.Export(ctx, "videos.csv", sampleRecords(), map[string]int{"a": 1, "b": 3})
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if runID == "" {
		t.Fatal("empty run id")
	}

	var count int
	if err := w.db.GetContext(ctx, &count, w.db.Rebind(`SELECT COUNT(*) FROM trending_records WHERE run_id = ?`), runID); err != nil {
		t.Fatal(err)
	}
	if count != 2 {
		t.Errorf("records = %d, want 2", count)
	}

	var days int64
	if err := w.db.GetContext(ctx, &days, w.db.Rebind(`SELECT predicted_days FROM trend_predictions WHERE run_id = ? AND video_id = ?`), runID, "b"); err != nil {
		t.Fatal(err)
	}
	if days != 3 {
		t.Errorf("predicted days = %d, want 3", days)
	}

	var title string
	if err := w.db.GetContext(ctx, &title, w.db.Rebind(`SELECT title FROM trending_records WHERE run_id = ? AND position = 0`), runID); err != nil {
		t.Fatal(err)
	}
	if title != `Quote "this", please` {
		t.Errorf("title = %q", title)
	}

	second, err := w.Export(ctx, "videos.csv", sampleRecords()[:1], nil)
	if err != nil {
		t.Fatalf("second Export: %v", err)
	}
	if second == runID {
		t.Error("run ids should differ between exports")
	}
}

func TestSQLWriter_BadDriver(t *testing.T) {
	if _, err := NewSQLWriter(context.Background(), "nope", "x", 1, utils.NewNopLogger()); err == nil {
		t.Error("expected error for unknown driver")
	}
}
