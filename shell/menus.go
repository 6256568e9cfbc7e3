package shell

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"youtube-trending/services"
	"youtube-trending/visual"
)

func (s *Session) mainMenu() string {
	s.say("")
	s.say("======================")
	s.say("   MAIN MENU")
	s.say("======================")
	s.say("1. Load Dataset")
	s.say("2. Basic Processing")
	s.say("3. Intermediate Processing")
	s.say("4. Advanced Processing")
	s.say("5. Visualisations")
	s.say("6. Export Options")
	s.say("7. Overview Report")
	s.say("0. Exit")
	s.say("----------------------")
	return s.ask("Select an option: ")
}

// subMenu prints a heading and its options, then reads the choice
func (s *Session) subMenu(heading string, options ...string) string {
	s.say("")
	s.say("--- " + heading + " ---")
	for _, o := range options {
		s.say(o)
	}
	return s.ask("Pick an option: ")
}

func (s *Session) basicMenu() {
	for {
		switch s.subMenu("BASIC PROCESSING",
			"1. Count total videos",
			"2. Count total channels",
			"3. List all categories",
			"4. Fetch video details (ID)",
			"5. Fetch video details (Title)",
			"6. Show top 10 videos",
			"0. Back to main menu",
		) {
		case "1":
			s.sayf("Total videos: %d", services.CountVideos(s.records))
		case "2":
			s.sayf("Total channels: %d", services.CountChannels(s.records))
		case "3":
			s.printCounts(services.ListCategories(s.records))
		case "4":
			id := s.ask("Enter Video ID: ")
			s.printVideo(services.FetchVideoInfo(s.records, id, ""))
		case "5":
			title := s.ask("Enter Video Title: ")
			s.printVideo(services.FetchVideoInfo(s.records, "", title))
		case "6":
			for _, r := range services.TopTenItems(s.records) {
				s.say(r.Title)
			}
		case "0":
			return
		default:
			if s.eof {
				return
			}
			s.say("Invalid option.")
		}
	}
}

func (s *Session) intermediateMenu() {
	for {
		switch s.subMenu("INTERMEDIATE PROCESSING",
			"1. Average engagement per category",
			"2. Trending duration of each video",
			"3. Videos with unusual like/dislike ratio",
			"0. Back",
		) {
		case "1":
			s.printEngagement(services.AvgEngagementByCategory(s.records))
		case "2":
			s.printCounts(services.TrendingDuration(s.records))
		case "3":
			s.sayf("Flagged videos: %d", len(services.OddLikeRatio(s.records)))
		case "0":
			return
		default:
			if s.eof {
				return
			}
			s.say("Invalid option.")
		}
	}
}

func (s *Session) advancedMenu() {
	for {
		switch s.subMenu("ADVANCED PROCESSING",
			"1. Recommend similar videos",
			"2. Extract tag keywords",
			"3. Detect anomalies",
			"4. Predict trending duration",
			"0. Back",
		) {
		case "1":
			base, _ := services.FetchVideoInfo(s.records, s.ask("Enter Video ID: "), "")
			for _, r := range services.RecommendSimilar(s.records, base) {
				s.say(r.Title)
			}
		case "2":
			s.sayf("Found %d unique keywords.", len(services.TagKeywords(s.records)))
		case "3":
			s.sayf("Anomalies detected: %d", len(services.CatchAnomalies(s.records)))
		case "4":
			preds := services.PredictTrendDays(s.records)
			s.sayf("Predictions computed for %d videos.", len(preds))
		case "0":
			return
		default:
			if s.eof {
				return
			}
			s.say("Invalid option.")
		}
	}
}

func (s *Session) visualsMenu(ctx context.Context) {
	for {
		choice := s.subMenu("VISUALISATIONS",
			"1. Category pie chart",
			"2. Histograms (views/likes/comments)",
			"3. Category trending duration lines",
			"4. Top-video bar comparison",
			"5. Interactive dashboard",
			"6. Anomaly overlay chart",
			"7. Tag word cloud",
			"0. Back",
		)
		if choice == "0" || s.eof {
			return
		}

		kind, ok := chartChoices[choice]
		if !ok {
			s.say("Invalid option.")
			continue
		}
		out, err := s.charts.Generate(ctx, kind, s.records)
		if err != nil {
			s.logger.Error("Chart %s failed: %v", kind, err)
			s.say("Chart generation failed.")
			continue
		}
		s.sayf("Chart saved to %s", out.HTML)
		if out.PNG != "" {
			s.sayf("Image saved to %s", out.PNG)
		}
	}
}

var chartChoices = map[string]visual.ChartKind{
	"1": visual.CategoryPie,
	"2": visual.EngagementHistogram,
	"3": visual.CategoryTrendLines,
	"4": visual.TopVideoBars,
	"5": visual.Dashboard,
	"6": visual.AnomalyScatter,
	"7": visual.TagWordCloud,
}

func (s *Session) exportMenu(ctx context.Context) {
	for {
		var err error
		switch s.subMenu("EXPORT OPTIONS",
			"1. Export video details (JSON)",
			"2. Export top 10 videos (JSON/CSV)",
			"3. Export engagement summary (JSON)",
			"4. Export filtered dataset",
			"5. Export recommendations",
			"6. Export anomaly report",
			"7. Export trending prediction results",
			"8. Export to database",
			"0. Back",
		) {
		case "1":
			entry, ok := services.FetchVideoInfo(s.records, s.ask("Enter Video ID: "), "")
			if !ok {
				s.say("Video not found.")
				continue
			}
			err = s.jsonOut.WriteVideoDetails(s.exportPath("video_details.json"), entry)
		case "2":
			mode := s.askFormat()
			top := services.TopTenItems(s.records)
			if mode == "csv" {
				err = s.csvOut.WriteRecords(s.exportPath("top_ten.csv"), top)
			} else {
				err = s.jsonOut.WriteRecords(s.exportPath("top_ten.json"), top, "Top 10")
			}
		case "3":
			summary := services.AvgEngagementByCategory(s.records)
			err = s.jsonOut.WriteEngagementSummary(s.exportPath("engagement_summary.json"), summary)
		case "4":
			pred := s.askFilter()
			err = s.jsonOut.WriteRecords(s.exportPath("filtered.json"), services.Filter(s.records, pred), "Filtered dataset")
		case "5":
			base, _ := services.FetchVideoInfo(s.records, s.ask("Enter Video ID: "), "")
			recs := services.RecommendSimilar(s.records, base)
			err = s.jsonOut.WriteRecords(s.exportPath("recommendations.json"), recs, "Recommendations")
		case "6":
			err = s.jsonOut.WriteAnomalyReport(s.exportPath("anomaly_report.json"), services.CatchAnomalies(s.records))
		case "7":
			err = s.jsonOut.WriteTrendPrediction(s.exportPath("trend_prediction.json"), services.PredictTrendDays(s.records))
		case "8":
			err = s.exportDatabase(ctx)
		case "0":
			return
		default:
			if s.eof {
				return
			}
			s.say("Invalid option.")
			continue
		}

		if err != nil {
			s.logger.Error("Export failed: %v", err)
			s.say("Export failed.")
			continue
		}
		s.say("Export complete.")
	}
}

// askFilter builds the predicate for a filtered export
func (s *Session) askFilter() services.Predicate {
	switch s.ask("Filter by (1) category, (2) channel or (3) trending date: ") {
	case "1":
		return services.CategoryFilter{CategoryID: s.ask("Enter category ID to filter: ")}
	case "3":
		return services.TrendingDateFilter{Date: s.ask("Enter trending date to filter: ")}
	default:
		return services.ChannelFilter{Channel: s.ask("Enter channel name to filter: ")}
	}
}

func (s *Session) askFormat() string {
	if strings.ToLower(s.ask("Choose file type (csv/json): ")) == "csv" {
		return "csv"
	}
	return "json"
}

// exportPath asks for a destination, falling back to a file under the
// configured export directory
func (s *Session) exportPath(defaultName string) string {
	fallback := filepath.Join(s.cfg.ExportDir, defaultName)
	path := s.ask(fmt.Sprintf("Enter file save path [%s]: ", fallback))
	if path == "" {
		return fallback
	}
	return path
}

var errDatabaseDisabled = errors.New("database export is not configured, set DATABASE_URL")

func (s *Session) exportDatabase(ctx context.Context) error {
	if !s.cfg.DatabaseEnabled() {
		return errDatabaseDisabled
	}

	sink, err := s.openSink(ctx)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer sink.Close()

	runID, err := sink.Export(ctx, s.source, s.records, services.PredictTrendDays(s.records))
	if err != nil {
		return err
	}
	s.sayf("Exported %d records to database (run %s)", len(s.records), runID)
	return nil
}
