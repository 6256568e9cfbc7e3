package storage

import (
	"context"

	"youtube-trending/models"
)

// RecordSink persists a dataset snapshot and its trend predictions
type RecordSink interface {
	Export(ctx context.Context, source string, records []*models.Record, predictions map[string]int) (string, error)
	Close() error
}
