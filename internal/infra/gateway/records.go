package gateway

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/totegamma/council-reports/client"
	"github.com/totegamma/council-reports/internal/domain"
	"github.com/totegamma/council-reports/internal/record"
	"github.com/totegamma/council-reports/internal/usecase"
)

var tracer = otel.Tracer("gateway")

// Endpoints are the collection URLs of the record store.
type Endpoints struct {
	Entities  string
	Offerings string
	Projects  string
}

func (e Endpoints) url(c domain.Collection) string {
	switch c {
	case domain.CollectionEntities:
		return e.Entities
	case domain.CollectionOfferings:
		return e.Offerings
	case domain.CollectionProjects:
		return e.Projects
	default:
		return ""
	}
}

// RecordGateway reads collections from the HTTP record store.
type RecordGateway struct {
	client    *client.Client
	endpoints Endpoints
}

var _ usecase.RecordSource = (*RecordGateway)(nil)

func NewRecordGateway(cl *client.Client, endpoints Endpoints) *RecordGateway {
	return &RecordGateway{
		client:    cl,
		endpoints: endpoints,
	}
}

func (g *RecordGateway) Fetch(ctx context.Context, collection domain.Collection) ([]record.Record, error) {
	ctx, span := tracer.Start(ctx, "Gateway.Record.Fetch")
	defer span.End()
	span.SetAttributes(attribute.String("collection", collection.String()))

	url := g.endpoints.url(collection)
	if url == "" {
		err := errors.Errorf("no endpoint configured for %s", collection)
		span.RecordError(err)
		return nil, err
	}

	body, err := g.client.Get(ctx, url)
	if err != nil {
		err = errors.Wrapf(err, "fetch %s", collection)
		span.RecordError(err)
		return nil, err
	}

	return decode(ctx, collection, body)
}

func decode(ctx context.Context, collection domain.Collection, body []byte) ([]record.Record, error) {
	records, err := record.Parse(body)
	if err != nil {
		return nil, errors.Wrapf(err, "parse %s", collection)
	}
	slog.DebugContext(
		ctx, "collection loaded",
		slog.String("collection", collection.String()),
		slog.Int("records", len(records)),
		slog.String("digest", record.Digest(body)),
		slog.String("module", "gateway"),
	)
	return records, nil
}
