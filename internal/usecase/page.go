package usecase

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/totegamma/council-reports/internal/domain"
	"github.com/totegamma/council-reports/internal/report"
)

var tracer = otel.Tracer("usecase")

// ErrPending is returned when a page cannot be built because the feed it
// depends on had not settled before the watchdog fired.
var ErrPending = errors.New("feed still pending")

type PageUsecase struct {
	source   RecordSource
	builder  *report.Builder
	watchdog time.Duration
}

func NewPageUsecase(source RecordSource, builder *report.Builder, watchdog time.Duration) *PageUsecase {
	if watchdog <= 0 {
		watchdog = DefaultWatchdog
	}
	return &PageUsecase{
		source:   source,
		builder:  builder,
		watchdog: watchdog,
	}
}

func (uc *PageUsecase) Home(ctx context.Context) report.HomeStats {
	ctx, span := tracer.Start(ctx, "Usecase.Page.Home")
	defer span.End()

	snap := uc.gather(ctx, domain.CollectionEntities)
	home := uc.builder.Home(snap.entities())
	home.Complete = snap.complete
	return home
}

func (uc *PageUsecase) Directory(ctx context.Context) report.Directory {
	ctx, span := tracer.Start(ctx, "Usecase.Page.Directory")
	defer span.End()

	snap := uc.gather(ctx, domain.CollectionEntities)
	dir := uc.builder.Directory(snap.entities())
	dir.Complete = snap.complete
	return dir
}

func (uc *PageUsecase) Offerings(ctx context.Context) report.OfferingList {
	ctx, span := tracer.Start(ctx, "Usecase.Page.Offerings")
	defer span.End()

	snap := uc.gather(ctx, domain.CollectionOfferings)
	list := uc.builder.Offerings(snap.offerings())
	list.Complete = snap.complete
	return list
}

func (uc *PageUsecase) Explorer(ctx context.Context) report.Explorer {
	ctx, span := tracer.Start(ctx, "Usecase.Page.Explorer")
	defer span.End()

	snap := uc.gather(ctx, domain.CollectionEntities)
	ex := uc.builder.Explorer(snap.entities())
	ex.Complete = snap.complete
	return ex
}

// Dashboard builds the page for one council. The three collections are
// fetched together; only the councils feed is required.
func (uc *PageUsecase) Dashboard(ctx context.Context, id string) (report.Dashboard, error) {
	ctx, span := tracer.Start(ctx, "Usecase.Page.Dashboard")
	defer span.End()
	span.SetAttributes(attribute.String("council.id", id))

	snap := uc.gather(ctx, domain.CollectionEntities, domain.CollectionOfferings, domain.CollectionProjects)

	entities := snap.entities()
	switch {
	case entities.Pending:
		span.RecordError(ErrPending)
		return report.Dashboard{}, errors.Wrap(ErrPending, "load councils")
	case entities.Err != nil:
		err := errors.Wrap(entities.Err, "load councils")
		span.RecordError(err)
		return report.Dashboard{}, err
	}

	entity, ok := report.FindEntity(report.Included(entities.Items), id)
	if !ok {
		return report.Dashboard{}, domain.NotFoundError{Resource: "council", ID: id}
	}

	d := uc.builder.Dashboard(entity, snap.offerings(), snap.projects())
	d.Complete = snap.complete
	return d, nil
}
