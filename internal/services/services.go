package services

import (
	"github.com/finworks/go-sepa-export/internal/common/idgenerator"
	"github.com/finworks/go-sepa-export/internal/common/metrics"
	"github.com/finworks/go-sepa-export/internal/config"
	"github.com/finworks/go-sepa-export/internal/repositories"
)

type service struct {
	srv *Services
}

type Services struct {
	conf config.Config

	sqlRepo     repositories.SQLRepository
	idgenerator idgenerator.Generator
	metrics     metrics.Metrics

	common service

	SepaExport *sepaExport
}

func New(
	conf config.Config,
	sqlRepo repositories.SQLRepository,
	idgenerator idgenerator.Generator,
	metrics metrics.Metrics,
) *Services {
	srv := &Services{
		conf:        conf,
		sqlRepo:     sqlRepo,
		idgenerator: idgenerator,
		metrics:     metrics,
	}
	srv.common.srv = srv
	srv.SepaExport = (*sepaExport)(&srv.common)

	return srv
}
