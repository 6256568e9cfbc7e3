package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"time"

	"youtube-trending/config"
	"youtube-trending/models"
	"youtube-trending/services"
	"youtube-trending/storage"
	"youtube-trending/utils"
	"youtube-trending/visual"
)

// SinkOpener connects to the database export target on demand
type SinkOpener func(ctx context.Context) (storage.RecordSink, error)

// Session is the state of one interactive run: the loaded dataset plus the
// collaborators the menus call into. The dataset is replaced wholesale on
// every load and never modified in place.
type Session struct {
	cfg    *config.Config
	logger *utils.Logger

	in  *bufio.Scanner
	out io.Writer
	eof bool

	reader   *storage.CSVReader
	cleaner  *services.DataCleaner
	insights *services.InsightService
	jsonOut  *storage.JSONWriter
	csvOut   *storage.CSVWriter
	charts   *visual.Service
	openSink SinkOpener

	records []*models.Record
	source  string
}

// Option customizes a Session
type Option func(*Session)

// WithChartService replaces the default chart service
func WithChartService(svc *visual.Service) Option {
	return func(s *Session) { s.charts = svc }
}

// WithSinkOpener replaces the default database connector
func WithSinkOpener(open SinkOpener) Option {
	return func(s *Session) { s.openSink = open }
}

// NewSession wires the default collaborators from cfg
func NewSession(cfg *config.Config, logger *utils.Logger, in io.Reader, out io.Writer, opts ...Option) *Session {
	s := &Session{
		cfg:      cfg,
		logger:   logger,
		in:       bufio.NewScanner(in),
		out:      out,
		reader:   storage.NewCSVReader(logger),
		cleaner:  services.NewDataCleaner(logger),
		insights: services.NewInsightService(logger),
		jsonOut:  storage.NewJSONWriter(logger),
		csvOut:   storage.NewCSVWriter(logger),
	}
	// descriptions can be long
	s.in.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var renderer visual.PageRenderer
	if cfg.RenderPNG {
		renderer = visual.NewRenderer(time.Duration(cfg.ChromeTimeoutSec)*time.Second, logger)
	}
	s.charts = visual.NewService(cfg.ChartDir, cfg.ChartAssetsHost, renderer, logger)

	s.openSink = func(ctx context.Context) (storage.RecordSink, error) {
		return storage.NewSQLWriter(ctx, cfg.DBDriver, cfg.DatabaseURL, cfg.DBMaxRetries, logger)
	}

	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Records returns the currently loaded dataset (nil when none is loaded)
func (s *Session) Records() []*models.Record {
	return s.records
}

// Load replaces the dataset with the contents of path. On failure the
// session is left without a dataset.
func (s *Session) Load(path string) error {
	s.records = nil
	s.source = ""

	raw, err := s.reader.Read(path)
	if err != nil {
		return err
	}
	s.records = s.cleaner.Clean(raw)
	s.source = path
	return nil
}

// Run drives the main menu until the user exits or input ends
func (s *Session) Run(ctx context.Context) error {
	s.say("System started. Select an option from the menu.")

	for !s.eof {
		choice := s.mainMenu()
		if s.eof {
			break
		}

		loaded := len(s.records) > 0
		switch {
		case choice == "1":
			s.loadDataset()
		case choice == "2" && loaded:
			s.basicMenu()
		case choice == "3" && loaded:
			s.intermediateMenu()
		case choice == "4" && loaded:
			s.advancedMenu()
		case choice == "5" && loaded:
			s.visualsMenu(ctx)
		case choice == "6" && loaded:
			s.exportMenu(ctx)
		case choice == "7" && loaded:
			services.PrintInsightReport(s.out, s.insights.Generate(s.records))
		case choice == "0":
			s.say("Closing system... Goodbye.")
			return nil
		default:
			s.say("Invalid option or dataset not loaded.")
		}

		if err := ctx.Err(); err != nil {
			return err
		}
	}
	return s.in.Err()
}

func (s *Session) loadDataset() {
	path := s.ask(fmt.Sprintf("Enter dataset path [%s]: ", s.cfg.DataPath))
	if path == "" {
		path = s.cfg.DataPath
	}

	if err := s.Load(path); err != nil {
		s.logger.Error("Dataset load failed: %v", err)
		s.say("Dataset load failed.")
		return
	}
	s.say("Dataset loaded successfully.")
}
