package fx

import (
	"go.uber.org/fx"

	"github.com/reimbazz/GF-Innovation-service/config"
	"github.com/reimbazz/GF-Innovation-service/internal/domain/investment"
	"github.com/reimbazz/GF-Innovation-service/internal/infrastructure"
	"github.com/reimbazz/GF-Innovation-service/internal/logger"
)

var InfrastructureModule = fx.Module("infrastructure",
	fx.Provide(
		newInvestmentRepository,
	),
)

func newInvestmentRepository(cfg *config.Config) (investment.Repository, error) {
	if cfg.Database.Driver == "memory" {
		logger.Warn().Msg("Banco em memória ativo; os dados não sobrevivem ao processo")
		return infrastructure.NewMemoryRepository(), nil
	}

	db, err := infrastructure.NewDb(cfg)
	if err != nil {
		return nil, err
	}
	return &infrastructure.InvestmentRepository{DB: db}, nil
}
