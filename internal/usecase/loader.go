package usecase

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/totegamma/council-reports/internal/domain"
	"github.com/totegamma/council-reports/internal/record"
	"github.com/totegamma/council-reports/internal/report"
)

// DefaultWatchdog bounds how long a page waits for its fetches.
const DefaultWatchdog = 8 * time.Second

type fetched struct {
	collection domain.Collection
	records    []record.Record
	err        error
}

// snapshot is what each launched fetch had delivered when the page was
// assembled. Collections missing from results were still in flight.
type snapshot struct {
	results  map[domain.Collection]fetched
	complete bool
}

// gather fetches every collection concurrently and waits until all of them
// settle, the watchdog fires or ctx is done. A failing fetch never affects
// the others. Fetches still running when gather returns are left to finish
// on their own.
func (uc *PageUsecase) gather(ctx context.Context, collections ...domain.Collection) snapshot {
	results := make(chan fetched, len(collections))
	fetchCtx := context.WithoutCancel(ctx)

	var g errgroup.Group
	for _, c := range collections {
		g.Go(func() error {
			records, err := uc.source.Fetch(fetchCtx, c)
			if err != nil {
				slog.WarnContext(
					ctx, "fetch failed",
					slog.String("collection", c.String()),
					slog.String("error", err.Error()),
					slog.String("module", "usecase"),
				)
			}
			results <- fetched{collection: c, records: records, err: err}
			return nil
		})
	}

	settled := make(chan struct{})
	go func() {
		_ = g.Wait()
		close(settled)
	}()

	timer := time.NewTimer(uc.watchdog)
	defer timer.Stop()

	select {
	case <-settled:
	case <-timer.C:
		slog.WarnContext(
			ctx, "watchdog fired before all fetches settled",
			slog.Duration("watchdog", uc.watchdog),
			slog.String("module", "usecase"),
		)
	case <-ctx.Done():
	}

	snap := snapshot{results: make(map[domain.Collection]fetched, len(collections))}
	for {
		select {
		case f := <-results:
			snap.results[f.collection] = f
		default:
			snap.complete = len(snap.results) == len(collections)
			return snap
		}
	}
}

func feedOf[T any](snap snapshot, c domain.Collection, decode func([]record.Record) []T) report.Feed[T] {
	f, ok := snap.results[c]
	if !ok {
		return report.Feed[T]{Pending: true}
	}
	if f.err != nil {
		return report.Feed[T]{Err: f.err}
	}
	return report.Feed[T]{Items: decode(f.records)}
}

func (s snapshot) entities() report.Feed[domain.Entity] {
	return feedOf(s, domain.CollectionEntities, record.Entities)
}

func (s snapshot) offerings() report.Feed[domain.Offering] {
	return feedOf(s, domain.CollectionOfferings, record.Offerings)
}

func (s snapshot) projects() report.Feed[domain.Project] {
	return feedOf(s, domain.CollectionProjects, record.Projects)
}
