package usecase

import (
	"context"

	"github.com/totegamma/council-reports/internal/domain"
	"github.com/totegamma/council-reports/internal/record"
)

// RecordSource fetches one collection from the record store. Every call is
// a single attempt; no retries are made.
type RecordSource interface {
	Fetch(ctx context.Context, collection domain.Collection) ([]record.Record, error)
}
