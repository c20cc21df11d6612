package main

import (
	"log/slog"

	"github.com/totegamma/council-reports/client"
	"github.com/totegamma/council-reports/internal/chart"
	"github.com/totegamma/council-reports/internal/config"
	"github.com/totegamma/council-reports/internal/format"
	"github.com/totegamma/council-reports/internal/infra/gateway"
	"github.com/totegamma/council-reports/internal/report"
	"github.com/totegamma/council-reports/internal/usecase"
)

func newSource(conf config.Config) usecase.RecordSource {
	if conf.Source.Dir != "" {
		slog.Info("reading collections from directory", slog.String("dir", conf.Source.Dir))
		return gateway.NewDirectorySource(conf.Source.Dir)
	}

	cl := client.New(conf.Source.UserAgent, conf.Source.Timeout)
	return gateway.NewRecordGateway(cl, gateway.Endpoints{
		Entities:  conf.Source.EntitiesURL,
		Offerings: conf.Source.OfferingsURL,
		Projects:  conf.Source.ProjectsURL,
	})
}

func newPageUsecase(conf config.Config) *usecase.PageUsecase {
	builder := report.NewBuilder(format.ForLocale(conf.Server.Locale), chart.DefaultPalette, conf.Site)
	return usecase.NewPageUsecase(newSource(conf), builder, conf.Server.Watchdog)
}
